package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/idstack/idstack-cli/schema"
	"github.com/idstack/idstack-cli/server"
)

// apiResource is the remote handle for one persisted instance. Field writes
// are tracked and only the dirty set is sent on Save.
type apiResource struct {
	gateway *Gateway
	fields  map[string]any
	dirty   map[string]any
}

var _ server.Resource = (*apiResource)(nil)

func (g *Gateway) newResource(kind schema.Kind, wireFields map[string]any) server.Resource {
	res := &apiResource{
		gateway: g,
		fields:  fromWireFields(wireFields),
		dirty:   make(map[string]any),
	}
	if kind == schema.Account {
		return &accountResource{apiResource: res}
	}
	return res
}

func (r *apiResource) Href() string {
	href, _ := r.fields["href"].(string)
	return href
}

func (r *apiResource) Field(name string) (any, bool) {
	value, ok := r.fields[name]
	return value, ok
}

func (r *apiResource) SetField(name string, value any) {
	r.fields[name] = value
	r.dirty[name] = value
}

func (r *apiResource) Fields() map[string]any {
	out := make(map[string]any, len(r.fields))
	for name, value := range r.fields {
		out[name] = value
	}
	return out
}

func (r *apiResource) Save(ctx context.Context) error {
	href := r.Href()
	if href == "" {
		return validationError("resource has no href to save against", nil)
	}
	if len(r.dirty) == 0 {
		return nil
	}

	updated, err := r.gateway.do(ctx, http.MethodPost, href, toWireFields(r.dirty))
	if err != nil {
		return err
	}
	if updated != nil {
		r.fields = fromWireFields(updated)
	}
	r.dirty = make(map[string]any)
	return nil
}

func (r *apiResource) Delete(ctx context.Context) error {
	href := r.Href()
	if href == "" {
		return validationError("resource has no href to delete", nil)
	}
	_, err := r.gateway.do(ctx, http.MethodDelete, href, nil)
	return err
}

// accountResource adds the group membership capability that only accounts
// carry.
type accountResource struct {
	*apiResource
}

var _ server.GroupAdder = (*accountResource)(nil)

func (a *accountResource) AddGroup(ctx context.Context, group string) error {
	groupHref, err := a.gateway.resolveGroupHref(ctx, group)
	if err != nil {
		return err
	}

	body := map[string]any{
		"account": map[string]any{"href": a.Href()},
		"group":   map[string]any{"href": groupHref},
	}
	_, err = a.gateway.do(ctx, http.MethodPost, a.gateway.baseURL.String()+"/v1/groupMemberships", body)
	return err
}

// resolveGroupHref accepts either a group href or a group name. Names go
// through a tenant-wide lookup.
func (g *Gateway) resolveGroupHref(ctx context.Context, group string) (string, error) {
	if isHref(group) {
		return group, nil
	}
	found, err := (&apiCollection{gateway: g, kind: schema.Group}).FindFirst(ctx, "name", group)
	if err != nil {
		return "", err
	}
	return found.Href(), nil
}

func isHref(value string) bool {
	return strings.HasPrefix(value, "https://") || strings.HasPrefix(value, "http://")
}
