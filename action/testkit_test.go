package action

import (
	"context"
	"fmt"

	"github.com/idstack/idstack-cli/schema"
	"github.com/idstack/idstack-cli/server"
)

type fakeResource struct {
	fields  map[string]any
	sets    []string
	saved   bool
	deleted bool
}

func newFakeResource(fields map[string]any) *fakeResource {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &fakeResource{fields: copied}
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
	r.sets = append(r.sets, name)
	r.fields[name] = value
}

func (r *fakeResource) Fields() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

func (r *fakeResource) Save(context.Context) error {
	r.saved = true
	return nil
}

func (r *fakeResource) Delete(context.Context) error {
	r.deleted = true
	return nil
}

type fakeAccount struct {
	*fakeResource
	groups []string
}

func (a *fakeAccount) AddGroup(_ context.Context, group string) error {
	a.groups = append(a.groups, group)
	return nil
}

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
	items         []server.Resource
	created       server.Resource
	createdAttrs  map[string]any
	createdExtra  map[string]any
	createCalled  bool
	listCalled    bool
	searchFilters map[string]string
	findField     string
	findValue     string
	findResult    server.Resource
	findErr       error
}

func (c *fakeCollection) Create(_ context.Context, attrs, extra map[string]any) (server.Resource, error) {
	c.createCalled = true
	c.createdAttrs = attrs
	c.createdExtra = extra
	if c.created == nil {
		c.created = newFakeResource(attrs)
	}
	return c.created, nil
}

func (c *fakeCollection) List(context.Context) (server.Iterator, error) {
	c.listCalled = true
	return &sliceIterator{items: c.items}, nil
}

func (c *fakeCollection) Search(_ context.Context, filters map[string]string) (server.Iterator, error) {
	c.searchFilters = filters
	return &sliceIterator{items: c.items}, nil
}

func (c *fakeCollection) FindFirst(_ context.Context, field, value string) (server.Resource, error) {
	c.findField = field
	c.findValue = value
	if c.findErr != nil {
		return nil, c.findErr
	}
	if c.findResult == nil {
		return nil, fmt.Errorf("no fixture resource for %s=%s", field, value)
	}
	return c.findResult, nil
}

type fakeProvider struct {
	collections map[schema.Kind]*fakeCollection
}

func (p *fakeProvider) Collection(kind schema.Kind) server.Collection {
	if coll, ok := p.collections[kind]; ok {
		return coll
	}
	coll := &fakeCollection{}
	if p.collections == nil {
		p.collections = make(map[schema.Kind]*fakeCollection)
	}
	p.collections[kind] = coll
	return coll
}

type scriptedPrompter struct {
	answers       []string
	secretAnswers []string
	confirmAnswer bool
	askLabels     []string
	secretLabels  []string
	messages      []string
}

func (p *scriptedPrompter) Ask(label string) (string, error) {
	p.askLabels = append(p.askLabels, label)
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) AskSecret(label string) (string, error) {
	p.secretLabels = append(p.secretLabels, label)
	if len(p.secretAnswers) == 0 {
		return "", nil
	}
	answer := p.secretAnswers[0]
	p.secretAnswers = p.secretAnswers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Confirm(string, bool) (bool, error) {
	return p.confirmAnswer, nil
}

func (p *scriptedPrompter) Messagef(format string, args ...any) {
	p.messages = append(p.messages, fmt.Sprintf(format, args...))
}
