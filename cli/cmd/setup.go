package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idstack/idstack-cli/config"
	idctx "github.com/idstack/idstack-cli/context"
	"github.com/idstack/idstack-cli/secrets"
)

func newSetupCommand() *cobra.Command {
	var (
		apiKeyID     string
		apiKeySecret string
		baseURL      string
		encrypt      bool
		keyStorePath string
	)

	cmd := &cobra.Command{
		Use:     "setup",
		GroupID: groupUtility,
		Short:   "Store the tenant API key pair used to authenticate",
		Long: `Stores the tenant API key pair in the profile under ~/.idstack/.

With --encrypt the pair is sealed into a passphrase-protected key store file
instead of being written to the profile in the clear; the passphrase is asked
again on every command that talks to the remote API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(cmd, "setup takes no arguments")
			}

			prompt := newPrompterFor(cmd)

			keyID := strings.TrimSpace(apiKeyID)
			if keyID == "" {
				value, err := prompt.Ask("API key id")
				if err != nil {
					return err
				}
				keyID = strings.TrimSpace(value)
			}
			if keyID == "" {
				return errors.New("api key id is required")
			}

			keySecret := strings.TrimSpace(apiKeySecret)
			if keySecret == "" {
				value, err := prompt.AskSecret("API key secret")
				if err != nil {
					return err
				}
				keySecret = strings.TrimSpace(value)
			}
			if keySecret == "" {
				return errors.New("api key secret is required")
			}

			manager := &idctx.ProfileManager{}
			profile, err := manager.Load()
			if err != nil {
				return err
			}
			if baseURL != "" {
				profile.BaseURL = strings.TrimSpace(baseURL)
			}

			if encrypt {
				passphrase, err := prompt.AskSecret("Key store passphrase")
				if err != nil {
					return err
				}
				confirmed, err := prompt.AskSecret("Confirm passphrase")
				if err != nil {
					return err
				}
				if passphrase == "" || passphrase != confirmed {
					return errors.New("passphrases are empty or do not match")
				}

				path := keyStorePath
				if path == "" {
					path, err = defaultKeyStorePath()
					if err != nil {
						return err
					}
				}
				store := &secrets.FileKeyStore{Path: path}
				if err := store.Save(secrets.APIKey{ID: keyID, Secret: keySecret}, []byte(passphrase)); err != nil {
					return err
				}
				profile.Credentials = config.Credentials{KeyStorePath: path}
				if err := manager.Save(profile); err != nil {
					return err
				}
				successf(cmd, "api key sealed into %s", path)
				return nil
			}

			profile.Credentials = config.Credentials{APIKeyID: keyID, APIKeySecret: keySecret}
			if err := manager.Save(profile); err != nil {
				return err
			}
			successf(cmd, "api key stored")
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKeyID, "api-key-id", "", "Tenant API key id (prompted when omitted)")
	cmd.Flags().StringVar(&apiKeySecret, "api-key-secret", "", "Tenant API key secret (prompted when omitted)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API endpoint (defaults to "+config.DefaultBaseURL+")")
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "Seal the key pair into a passphrase-protected key store")
	cmd.Flags().StringVar(&keyStorePath, "key-store", "", "Key store file location (defaults to ~/.idstack/apikey.enc)")

	return cmd
}

func defaultKeyStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".idstack", "apikey.enc"), nil
}
