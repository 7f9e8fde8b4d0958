package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/idstack/idstack-cli/action"
	"github.com/idstack/idstack-cli/schema"
	"github.com/idstack/idstack-cli/server"
)

type fakeResource struct {
	fields map[string]any
	sets   map[string]any
	saved  bool
	gone   bool
}

func newFakeResource(fields map[string]any) *fakeResource {
	return &fakeResource{fields: fields, sets: make(map[string]any)}
}

func (r *fakeResource) Href() string {
	href, _ := r.fields["href"].(string)
	return href
}

func (r *fakeResource) Field(name string) (any, bool) {
	value, ok := r.fields[name]
	return value, ok
}

func (r *fakeResource) SetField(name string, value any) {
	r.fields[name] = value
	r.sets[name] = value
}

func (r *fakeResource) Fields() map[string]any {
	out := make(map[string]any, len(r.fields))
	for name, value := range r.fields {
		out[name] = value
	}
	return out
}

func (r *fakeResource) Save(context.Context) error   { r.saved = true; return nil }
func (r *fakeResource) Delete(context.Context) error { r.gone = true; return nil }

type sliceIterator struct {
	items []server.Resource
	pos   int
}

func (it *sliceIterator) Next(context.Context) (server.Resource, bool, error) {
	if it.pos >= len(it.items) {
		return nil, false, nil
	}
	item := it.items[it.pos]
	it.pos++
	return item, true, nil
}

type fakeCollection struct {
	items []server.Resource

	createdAttrs  map[string]any
	createdExtra  map[string]any
	listCalled    bool
	searchFilters map[string]string
	findResult    server.Resource
}

func (c *fakeCollection) Create(_ context.Context, attrs, extra map[string]any) (server.Resource, error) {
	c.createdAttrs = attrs
	c.createdExtra = extra
	created := map[string]any{"href": "https://x/created"}
	for name, value := range attrs {
		created[name] = value
	}
	return newFakeResource(created), nil
}

func (c *fakeCollection) List(context.Context) (server.Iterator, error) {
	c.listCalled = true
	return &sliceIterator{items: c.items}, nil
}

func (c *fakeCollection) Search(_ context.Context, filters map[string]string) (server.Iterator, error) {
	c.searchFilters = filters
	return &sliceIterator{items: c.items}, nil
}

func (c *fakeCollection) FindFirst(context.Context, string, string) (server.Resource, error) {
	return c.findResult, nil
}

type fakeProvider struct {
	collections map[schema.Kind]*fakeCollection
}

func (p *fakeProvider) Collection(kind schema.Kind) server.Collection {
	if p.collections == nil {
		p.collections = make(map[schema.Kind]*fakeCollection)
	}
	if p.collections[kind] == nil {
		p.collections[kind] = &fakeCollection{}
	}
	return p.collections[kind]
}

// stubDispatcher routes resource commands at the given provider for the
// duration of one test.
func stubDispatcher(t *testing.T, provider server.CollectionProvider) {
	t.Helper()
	previous := dispatcherFactory
	dispatcherFactory = func(cmd *cobra.Command) (*action.Dispatcher, error) {
		return action.NewDispatcher(provider, newLinePrompter(cmd.InOrStdin(), cmd.ErrOrStderr())), nil
	}
	t.Cleanup(func() { dispatcherFactory = previous })
}

func runCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := newRootCommand()
	var out, errOut bytes.Buffer
	root.SetIn(bytes.NewBufferString(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}
