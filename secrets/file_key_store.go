package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"

	"github.com/idstack/idstack-cli/faults"
)

const (
	envelopeVersion = 1
	keyLengthBytes  = 32
	saltLengthBytes = 16

	kdfTime    = 3
	kdfMemory  = 64 * 1024
	kdfThreads = 4
)

// ErrKeyStoreNotFound reports that the encrypted key store file does not
// exist yet.
var ErrKeyStoreNotFound = errors.New("api key store not found")

// APIKey is the plaintext carried inside the encrypted envelope.
type APIKey struct {
	ID     string `json:"api_key_id"`
	Secret string `json:"api_key_secret"`
}

type envelope struct {
	Version    int    `json:"version"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// FileKeyStore keeps the tenant API key pair in a single encrypted file.
// The key is derived from an operator passphrase with argon2id and the
// payload sealed with AES-256-GCM.
type FileKeyStore struct {
	Path string
}

func (s *FileKeyStore) Save(key APIKey, passphrase []byte) error {
	if key.ID == "" || key.Secret == "" {
		return faults.Validation("api key id and secret are required", nil)
	}
	if len(passphrase) == 0 {
		return faults.Validation("key store passphrase is required", nil)
	}

	salt := make([]byte, saltLengthBytes)
	if _, err := rand.Read(salt); err != nil {
		return faults.Internal("cannot generate key store salt", err)
	}

	gcm, err := sealCipher(passphrase, salt)
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return faults.Internal("cannot generate key store nonce", err)
	}

	plaintext, err := json.Marshal(key)
	if err != nil {
		return faults.Internal("cannot encode api key", err)
	}

	sealed := envelope{
		Version:    envelopeVersion,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(gcm.Seal(nil, nonce, plaintext, nil)),
	}
	encoded, err := json.Marshal(sealed)
	if err != nil {
		return faults.Internal("cannot encode key store envelope", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return faults.Internal("cannot create key store directory", err)
	}
	return os.WriteFile(s.Path, encoded, 0o600)
}

func (s *FileKeyStore) Load(passphrase []byte) (APIKey, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return APIKey{}, ErrKeyStoreNotFound
	}
	if err != nil {
		return APIKey{}, faults.Internal("cannot read key store", err)
	}

	var sealed envelope
	if err := json.Unmarshal(data, &sealed); err != nil {
		return APIKey{}, faults.Validation("key store envelope is malformed", err)
	}
	if sealed.Version != envelopeVersion {
		return APIKey{}, faults.Validation("unsupported key store version", nil)
	}

	salt, err := base64.StdEncoding.DecodeString(sealed.Salt)
	if err != nil {
		return APIKey{}, faults.Validation("key store salt is malformed", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(sealed.Nonce)
	if err != nil {
		return APIKey{}, faults.Validation("key store nonce is malformed", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(sealed.Ciphertext)
	if err != nil {
		return APIKey{}, faults.Validation("key store ciphertext is malformed", err)
	}

	gcm, err := sealCipher(passphrase, salt)
	if err != nil {
		return APIKey{}, err
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return APIKey{}, faults.Auth("cannot decrypt key store; wrong passphrase?", err)
	}

	var key APIKey
	if err := json.Unmarshal(plaintext, &key); err != nil {
		return APIKey{}, faults.Internal("key store payload is malformed", err)
	}
	return key, nil
}

func sealCipher(passphrase, salt []byte) (cipher.AEAD, error) {
	if len(passphrase) == 0 {
		return nil, faults.Validation("key store passphrase is required", nil)
	}
	if len(salt) == 0 {
		return nil, faults.Validation("key store salt is missing", nil)
	}

	key := argon2.IDKey(passphrase, salt, kdfTime, kdfMemory, kdfThreads, keyLengthBytes)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, faults.Internal("cannot initialize key store cipher", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, faults.Internal("cannot initialize key store cipher mode", err)
	}
	return gcm, nil
}
