package context

import (
	"os"

	"github.com/idstack/idstack-cli/config"
)

// Environment variables that override the stored profile. Scripted pipelines
// use these to avoid touching the config file at all.
const (
	EnvAPIKeyID     = "IDSTACK_API_KEY_ID"
	EnvAPIKeySecret = "IDSTACK_API_KEY_SECRET"
	EnvBaseURL      = "IDSTACK_BASE_URL"
	EnvConfigPath   = "IDSTACK_CONFIG"
)

// ApplyEnvOverrides layers process environment values over the loaded
// profile. Inline env credentials take precedence over both the inline file
// credentials and an encrypted key store reference.
func ApplyEnvOverrides(profile *config.Profile) *config.Profile {
	if profile == nil {
		profile = &config.Profile{}
	}
	if id := os.Getenv(EnvAPIKeyID); id != "" {
		profile.Credentials.APIKeyID = id
		profile.Credentials.KeyStorePath = ""
	}
	if secret := os.Getenv(EnvAPIKeySecret); secret != "" {
		profile.Credentials.APIKeySecret = secret
		profile.Credentials.KeyStorePath = ""
	}
	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		profile.BaseURL = baseURL
	}
	return profile
}

// LoadProfileWithEnv loads the stored profile and applies env overrides.
func LoadProfileWithEnv(manager *ProfileManager) (*config.Profile, error) {
	profile, err := manager.Load()
	if err != nil {
		return nil, err
	}
	return ApplyEnvOverrides(profile), nil
}
