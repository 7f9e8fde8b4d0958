package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/idstack/idstack-cli/config"
	"github.com/idstack/idstack-cli/schema"
	"github.com/idstack/idstack-cli/server"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	mediaTypeJSON      = "application/json"
	userAgent          = "idstack-cli"
)

// Config carries everything the gateway needs: the API endpoint, the resolved
// API key pair, and the optional application/directory scope for account and
// group listings.
type Config struct {
	BaseURL      string
	APIKeyID     string
	APIKeySecret string
	Scope        *config.Context
	Client       *http.Client
}

// Gateway implements the resource collection abstraction over the remote
// REST API.
type Gateway struct {
	baseURL *url.URL
	keyID   string
	secret  string
	scope   *config.Context
	client  *http.Client
}

var _ server.CollectionProvider = (*Gateway)(nil)

func NewGateway(cfg Config) (*Gateway, error) {
	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.APIKeyID == "" || cfg.APIKeySecret == "" {
		return nil, authError("api key id and secret are required; run `idstack setup`", nil)
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &Gateway{
		baseURL: baseURL,
		keyID:   cfg.APIKeyID,
		secret:  cfg.APIKeySecret,
		scope:   cfg.Scope,
		client:  client,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = config.DefaultBaseURL
	}
	baseURL, err := url.Parse(trimmed)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, validationError("base url is invalid", err)
	}
	baseURL.Path = strings.TrimRight(baseURL.Path, "/")
	return baseURL, nil
}

func (g *Gateway) Collection(kind schema.Kind) server.Collection {
	return &apiCollection{gateway: g, kind: kind}
}

var collectionPaths = map[schema.Kind]string{
	schema.Account:             "/v1/accounts",
	schema.Application:         "/v1/applications",
	schema.Directory:           "/v1/directories",
	schema.Group:               "/v1/groups",
	schema.AccountStoreMapping: "/v1/accountStoreMappings",
}

// collectionURL resolves the listing endpoint for a kind. Account and group
// listings narrow to the selected directory or application when the profile
// carries one; every other kind always lists tenant-wide.
func (g *Gateway) collectionURL(kind schema.Kind) string {
	if kind == schema.Account || kind == schema.Group {
		if scoped := g.scopeHref(); scoped != "" {
			return scoped + collectionSuffix(kind)
		}
	}
	return g.baseURL.String() + collectionPaths[kind]
}

func (g *Gateway) scopeHref() string {
	if g.scope == nil {
		return ""
	}
	if !g.scope.Directory.Empty() && g.scope.Directory.Href != "" {
		return g.scope.Directory.Href
	}
	if !g.scope.Application.Empty() && g.scope.Application.Href != "" {
		return g.scope.Application.Href
	}
	return ""
}

func collectionSuffix(kind schema.Kind) string {
	if kind == schema.Group {
		return "/groups"
	}
	return "/accounts"
}
