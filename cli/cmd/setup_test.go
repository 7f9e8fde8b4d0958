package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/idstack/idstack-cli/config"
	idctx "github.com/idstack/idstack-cli/context"
	"github.com/idstack/idstack-cli/secrets"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	t.Setenv("IDSTACK_CONFIG", path)
	return path
}

func TestSetupStoresInlineCredentials(t *testing.T) {
	path := useTempConfig(t)

	_, _, err := runCommand(t, "", "setup", "--api-key-id", "AKID", "--api-key-secret", "SEKRET")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	manager := &idctx.ProfileManager{ConfigFilePath: path}
	profile, err := manager.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if profile.Credentials.APIKeyID != "AKID" || profile.Credentials.APIKeySecret != "SEKRET" {
		t.Fatalf("credentials: %+v", profile.Credentials)
	}
}

func TestSetupPromptsForMissingKey(t *testing.T) {
	path := useTempConfig(t)

	_, _, err := runCommand(t, "AKID\nSEKRET\n", "setup")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	manager := &idctx.ProfileManager{ConfigFilePath: path}
	profile, err := manager.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !profile.Credentials.Inline() {
		t.Fatalf("credentials: %+v", profile.Credentials)
	}
}

func TestSetupEncryptSealsTheKeyStore(t *testing.T) {
	path := useTempConfig(t)
	storePath := filepath.Join(t.TempDir(), "apikey.enc")

	_, _, err := runCommand(t, "hunter2\nhunter2\n",
		"setup", "--api-key-id", "AKID", "--api-key-secret", "SEKRET",
		"--encrypt", "--key-store", storePath)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	manager := &idctx.ProfileManager{ConfigFilePath: path}
	profile, err := manager.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if profile.Credentials.Inline() {
		t.Fatalf("inline credentials must not be stored alongside a key store")
	}
	if profile.Credentials.KeyStorePath != storePath {
		t.Fatalf("key store path: %q", profile.Credentials.KeyStorePath)
	}

	store := &secrets.FileKeyStore{Path: storePath}
	key, err := store.Load([]byte("hunter2"))
	if err != nil {
		t.Fatalf("load key store: %v", err)
	}
	if key.ID != "AKID" || key.Secret != "SEKRET" {
		t.Fatalf("key: %+v", key)
	}
}

func TestSetupRejectsMismatchedPassphrases(t *testing.T) {
	useTempConfig(t)

	_, _, err := runCommand(t, "one\ntwo\n",
		"setup", "--api-key-id", "AKID", "--api-key-secret", "SEKRET", "--encrypt")
	if err == nil || !strings.Contains(err.Error(), "do not match") {
		t.Fatalf("expected passphrase mismatch, got %v", err)
	}
}

func TestConfigShowRedactsTheSecret(t *testing.T) {
	path := useTempConfig(t)
	manager := &idctx.ProfileManager{ConfigFilePath: path}
	if err := manager.Save(&config.Profile{
		Credentials: config.Credentials{APIKeyID: "AKID", APIKeySecret: "SEKRET"},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	stdout, _, err := runCommand(t, "", "config", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if strings.Contains(stdout, "SEKRET") {
		t.Fatalf("secret leaked: %q", stdout)
	}
	if !strings.Contains(stdout, "****") || !strings.Contains(stdout, "AKID") {
		t.Fatalf("output: %q", stdout)
	}
}

func TestConfigUnsetClearsContext(t *testing.T) {
	path := useTempConfig(t)
	manager := &idctx.ProfileManager{ConfigFilePath: path}
	if err := manager.Save(&config.Profile{
		Credentials: config.Credentials{APIKeyID: "AKID", APIKeySecret: "SEKRET"},
		Context: &config.Context{
			Application: &config.Ref{Name: "my-app", Href: "https://x/a1"},
			Directory:   &config.Ref{Name: "Staff", Href: "https://x/d1"},
		},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, _, err := runCommand(t, "", "config", "unset", "directory"); err != nil {
		t.Fatalf("unset: %v", err)
	}
	profile, err := manager.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if profile.Context == nil || !profile.Context.Directory.Empty() {
		t.Fatalf("directory still set: %+v", profile.Context)
	}
	if profile.Context.Application.Empty() {
		t.Fatalf("application must survive a directory unset")
	}

	if _, _, err := runCommand(t, "", "config", "unset"); err != nil {
		t.Fatalf("unset all: %v", err)
	}
	profile, err = manager.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if profile.Context != nil {
		t.Fatalf("context must collapse to nil: %+v", profile.Context)
	}
}

func TestConfigUnsetRejectsUnknownTarget(t *testing.T) {
	useTempConfig(t)

	_, _, err := runCommand(t, "", "config", "unset", "tenant")
	if err == nil || !IsHandledError(err) {
		t.Fatalf("expected a usage error, got %v", err)
	}
}
