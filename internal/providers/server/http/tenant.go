package http

import (
	"context"
	"net/http"
)

// CurrentTenant fetches the tenant the configured API key belongs to. The
// endpoint redirects to the canonical tenant href; the client follows it.
func (g *Gateway) CurrentTenant(ctx context.Context) (map[string]any, error) {
	fields, err := g.do(ctx, http.MethodGet, g.baseURL.String()+"/v1/tenants/current", nil)
	if err != nil {
		return nil, err
	}
	return fromWireFields(fields), nil
}
