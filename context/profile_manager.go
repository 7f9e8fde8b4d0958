package context

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/idstack/idstack-cli/config"

	"go.yaml.in/yaml/v3"
)

const (
	defaultConfigDir  = ".idstack"
	defaultConfigFile = "config"
)

// ProfileManager loads and persists the CLI profile stored under the
// operator's home directory. All writes go through a temp file rename so a
// crash never leaves a torn config behind.
type ProfileManager struct {
	ConfigFilePath string

	mu sync.Mutex
}

func (m *ProfileManager) path() (string, error) {
	if m.ConfigFilePath != "" {
		return m.ConfigFilePath, nil
	}
	if override := os.Getenv("IDSTACK_CONFIG"); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigDir, defaultConfigFile), nil
}

// Load reads the stored profile. A missing file yields an empty profile, not
// an error; setup has simply not run yet.
func (m *ProfileManager) Load() (*config.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked()
}

func (m *ProfileManager) loadLocked() (*config.Profile, error) {
	path, err := m.path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &config.Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	profile := &config.Profile{}
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("cannot parse config file %s: %w", path, err)
	}
	return profile, nil
}

// Save persists the profile with owner-only permissions.
func (m *ProfileManager) Save(profile *config.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked(profile)
}

func (m *ProfileManager) saveLocked(profile *config.Profile) error {
	if profile == nil {
		return errors.New("profile is required")
	}
	path, err := m.path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*")
	if err != nil {
		return fmt.Errorf("cannot stage config file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("cannot write config file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("cannot restrict config permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// SetContext stores the application or directory selection.
func (m *ProfileManager) SetContext(apply func(*config.Context)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	profile, err := m.loadLocked()
	if err != nil {
		return err
	}
	if profile.Context == nil {
		profile.Context = &config.Context{}
	}
	apply(profile.Context)
	if profile.Context.Application.Empty() && profile.Context.Directory.Empty() {
		profile.Context = nil
	}
	return m.saveLocked(profile)
}

// UnsetContext clears the named selection ("application" or "directory"),
// or the whole context when name is empty.
func (m *ProfileManager) UnsetContext(name string) error {
	return m.SetContext(func(ctx *config.Context) {
		switch name {
		case "application":
			ctx.Application = nil
		case "directory":
			ctx.Directory = nil
		case "":
			ctx.Application = nil
			ctx.Directory = nil
		}
	})
}
