package http

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/idstack/idstack-cli/schema"
	"github.com/idstack/idstack-cli/server"
)

const pageLimit = 25

// pageIterator walks a collection endpoint page by page using the API's
// offset/limit envelope. Pages are fetched on demand; nothing is buffered
// beyond the current page.
type pageIterator struct {
	gateway *Gateway
	kind    schema.Kind
	baseURL string
	params  url.Values

	page      []map[string]any
	pos       int
	offset    int
	exhausted bool
}

func newPageIterator(gateway *Gateway, kind schema.Kind, baseURL string, params url.Values) *pageIterator {
	return &pageIterator{
		gateway: gateway,
		kind:    kind,
		baseURL: baseURL,
		params:  params,
	}
}

func (it *pageIterator) Next(ctx context.Context) (server.Resource, bool, error) {
	for it.pos >= len(it.page) {
		if it.exhausted {
			return nil, false, nil
		}
		if err := it.fetchPage(ctx); err != nil {
			return nil, false, err
		}
	}

	fields := it.page[it.pos]
	it.pos++
	return it.gateway.newResource(it.kind, fields), true, nil
}

func (it *pageIterator) fetchPage(ctx context.Context) error {
	params := url.Values{}
	for name, values := range it.params {
		for _, value := range values {
			params.Add(name, value)
		}
	}
	params.Set("offset", strconv.Itoa(it.offset))
	params.Set("limit", strconv.Itoa(pageLimit))

	envelope, err := it.gateway.do(ctx, http.MethodGet, it.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	items, _ := envelope["items"].([]any)
	it.page = it.page[:0]
	it.pos = 0
	for _, item := range items {
		if fields, ok := item.(map[string]any); ok {
			it.page = append(it.page, fields)
		}
	}

	it.offset += len(it.page)
	if len(it.page) < pageLimit {
		it.exhausted = true
	}
	if size, ok := envelope["size"].(float64); ok && it.offset >= int(size) {
		it.exhausted = true
	}
	return nil
}
