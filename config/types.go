package config

// DefaultBaseURL is used when the profile does not name an API endpoint.
const DefaultBaseURL = "https://api.idstack.io"

// Credentials identify the tenant API key pair used for basic auth against
// the remote API. Either the inline pair or KeyStorePath is set; the key
// store variant points at an encrypted file managed by the secrets package.
type Credentials struct {
	APIKeyID     string `yaml:"api_key_id,omitempty"`
	APIKeySecret string `yaml:"api_key_secret,omitempty"`
	KeyStorePath string `yaml:"api_key_store,omitempty"`
}

func (c Credentials) Inline() bool {
	return c.APIKeyID != "" && c.APIKeySecret != ""
}

func (c Credentials) Encrypted() bool {
	return c.KeyStorePath != ""
}

// Ref names one remote resource by display name and canonical href.
type Ref struct {
	Name string `yaml:"name,omitempty"`
	Href string `yaml:"href,omitempty"`
}

func (r *Ref) Empty() bool {
	return r == nil || (r.Name == "" && r.Href == "")
}

// Context narrows account and group operations to one application or
// directory. Both may be unset; directory wins when both are set.
type Context struct {
	Application *Ref `yaml:"application,omitempty"`
	Directory   *Ref `yaml:"directory,omitempty"`
}

// Profile is the persisted CLI configuration.
type Profile struct {
	BaseURL     string      `yaml:"base_url,omitempty"`
	Credentials Credentials `yaml:",inline"`
	Context     *Context    `yaml:"context,omitempty"`
}

func (p *Profile) EffectiveBaseURL() string {
	if p == nil || p.BaseURL == "" {
		return DefaultBaseURL
	}
	return p.BaseURL
}
