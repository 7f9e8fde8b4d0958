package action

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/idstack/idstack-cli/resource"
	"github.com/idstack/idstack-cli/schema"
	"github.com/idstack/idstack-cli/server"
)

// Dispatcher drives the four generic operations over any resource kind by
// composing schema lookup, attribute resolution, prompting, and primary-key
// resolution in front of the remote collection.
type Dispatcher struct {
	provider server.CollectionProvider
	prompt   Prompter
}

func NewDispatcher(provider server.CollectionProvider, prompt Prompter) *Dispatcher {
	return &Dispatcher{provider: provider, prompt: prompt}
}

// ListResult lazily yields normalized records from a fresh remote query.
type ListResult struct {
	iter server.Iterator
}

func (l *ListResult) Next(ctx context.Context) (*resource.Record, bool, error) {
	res, ok, err := l.iter.Next(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	return resource.FromFields(res.Fields()), true, nil
}

// List resolves search attributes and iterates the collection. Filters apply
// to every kind except account-store-mappings, whose listing is always
// unfiltered; supplying filters there draws a warning, not an error.
func (d *Dispatcher) List(ctx context.Context, kind schema.Kind, rawArgs *Args) (*ListResult, error) {
	args := rawArgs.clone()
	if err := gatherInlineAttributes(kind, args); err != nil {
		return nil, err
	}
	attrs, err := resolveAttributes(args, schema.Search(kind))
	if err != nil {
		return nil, err
	}

	coll := d.provider.Collection(kind)
	filters := searchFilters(attrs)

	if len(filters) > 0 && !schema.SupportsQuery(kind) {
		d.prompt.Messagef("Warning: %s listings do not support filters; showing the full collection.\n", kind)
		filters = nil
	}

	var iter server.Iterator
	if len(filters) > 0 {
		iter, err = coll.Search(ctx, filters)
	} else {
		iter, err = coll.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &ListResult{iter: iter}, nil
}

// Create resolves attributes, prompts for missing required fields, and
// creates the resource. A resolvable primary attribute must exist in the
// payload before the remote call is made.
func (d *Dispatcher) Create(ctx context.Context, kind schema.Kind, rawArgs *Args) (*resource.Record, error) {
	args := rawArgs.clone()
	if err := gatherInlineAttributes(kind, args); err != nil {
		return nil, err
	}
	if err := ensureRequired(kind, args, d.prompt); err != nil {
		return nil, err
	}
	attrs, err := resolveAttributes(args, schema.Full(kind))
	if err != nil {
		return nil, err
	}
	attrs = applyMappingReferences(kind, attrs)
	if _, _, err := primaryAttribute(kind, attrs); err != nil {
		return nil, err
	}
	extra, err := resolveAttributes(args, schema.Extra(kind))
	if err != nil {
		return nil, err
	}

	created, err := d.provider.Collection(kind).Create(ctx, attrs, extra)
	if err != nil {
		return nil, err
	}
	if err := attachGroups(ctx, created, args); err != nil {
		return nil, err
	}
	return resource.FromFields(created.Fields()), nil
}

// Update fetches the resource identified by the primary attribute and
// overwrites every resolved field except the identifier and href.
func (d *Dispatcher) Update(ctx context.Context, kind schema.Kind, rawArgs *Args) (*resource.Record, error) {
	args := rawArgs.clone()
	if err := gatherInlineAttributes(kind, args); err != nil {
		return nil, err
	}
	attrs, err := resolveAttributes(args, schema.Full(kind))
	if err != nil {
		return nil, err
	}
	name, value, err := primaryAttribute(kind, attrs)
	if err != nil {
		return nil, err
	}

	existing, err := d.provider.Collection(kind).FindFirst(ctx, name, identifierString(value))
	if err != nil {
		return nil, err
	}

	for field, fieldValue := range attrs {
		if field == name || field == schema.FieldHref {
			continue
		}
		existing.SetField(field, fieldValue)
	}
	if err := existing.Save(ctx); err != nil {
		return nil, err
	}
	if err := attachGroups(ctx, existing, args); err != nil {
		return nil, err
	}
	return resource.FromFields(existing.Fields()), nil
}

// Delete fetches the resource, asks for confirmation unless forced, and
// deletes it. A forced delete returns the pre-deletion record for scripted
// pipelines; an unforced success returns nothing. The deleted result reports
// whether the remote delete actually happened.
func (d *Dispatcher) Delete(ctx context.Context, kind schema.Kind, rawArgs *Args) (record *resource.Record, deleted bool, err error) {
	args := rawArgs.clone()
	if err := gatherInlineAttributes(kind, args); err != nil {
		return nil, false, err
	}
	attrs, err := resolveAttributes(args, schema.Full(kind))
	if err != nil {
		return nil, false, err
	}
	name, value, err := primaryAttribute(kind, attrs)
	if err != nil {
		return nil, false, err
	}

	existing, err := d.provider.Collection(kind).FindFirst(ctx, name, identifierString(value))
	if err != nil {
		return nil, false, err
	}
	data := resource.FromFields(existing.Fields())

	forced := args.forced()
	if !forced {
		rendered, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, false, err
		}
		d.prompt.Messagef("Are you sure you want to delete the following resource?\n%s\n", rendered)
		answer, err := d.prompt.Ask("Delete this resource [y/N]? ")
		if err != nil {
			return nil, false, err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			return nil, false, nil
		}
	}

	if err := existing.Delete(ctx); err != nil {
		return nil, false, err
	}
	if forced {
		return data, true, nil
	}
	return nil, true, nil
}

// attachGroups adds the resource to each comma-separated group named by
// --groups, in order. Kinds whose handles lack the capability are skipped.
func attachGroups(ctx context.Context, res server.Resource, args *Args) error {
	raw := args.flag(FlagGroups)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	adder, ok := res.(server.GroupAdder)
	if !ok {
		return nil
	}
	for _, group := range strings.Split(raw, ",") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		if err := adder.AddGroup(ctx, group); err != nil {
			return err
		}
	}
	return nil
}
