package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/idstack/idstack-cli/schema"
	"github.com/idstack/idstack-cli/server"
)

type apiCollection struct {
	gateway *Gateway
	kind    schema.Kind
}

var _ server.Collection = (*apiCollection)(nil)

func (c *apiCollection) Create(ctx context.Context, attrs, extra map[string]any) (server.Resource, error) {
	target := c.gateway.baseURL.String() + collectionPaths[c.kind]
	if len(extra) > 0 {
		params := url.Values{}
		for name, value := range extra {
			params.Set(toWireName(name), fmt.Sprint(value))
		}
		target += "?" + params.Encode()
	}

	created, err := c.gateway.do(ctx, http.MethodPost, target, toWireFields(attrs))
	if err != nil {
		return nil, err
	}
	return c.gateway.newResource(c.kind, created), nil
}

func (c *apiCollection) List(ctx context.Context) (server.Iterator, error) {
	return newPageIterator(c.gateway, c.kind, c.gateway.collectionURL(c.kind), nil), nil
}

func (c *apiCollection) Search(ctx context.Context, filters map[string]string) (server.Iterator, error) {
	params := url.Values{}
	for name, value := range filters {
		params.Set(toWireName(name), value)
	}
	return newPageIterator(c.gateway, c.kind, c.gateway.collectionURL(c.kind), params), nil
}

// FindFirst locates the single instance identified by (field, value). Href
// values fetch directly; anything else narrows the collection with a filter
// and takes the first match.
func (c *apiCollection) FindFirst(ctx context.Context, field, value string) (server.Resource, error) {
	if strings.TrimSpace(value) == "" {
		return nil, validationError(fmt.Sprintf("empty value for %s lookup", field), nil)
	}

	if field == schema.FieldHref || isHref(value) {
		fields, err := c.gateway.do(ctx, http.MethodGet, value, nil)
		if err != nil {
			return nil, err
		}
		return c.gateway.newResource(c.kind, fields), nil
	}

	iter, err := c.Search(ctx, map[string]string{field: value})
	if err != nil {
		return nil, err
	}
	found, ok, err := iter.Next(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFoundError(fmt.Sprintf("no %s found with %s %q", c.kind, field, value), nil)
	}
	return found, nil
}
