package server

import (
	"context"

	"github.com/idstack/idstack-cli/schema"
)

// Resource is an opaque handle to one persisted remote instance. The action
// engine only reads and writes named fields on it and calls Save or Delete.
type Resource interface {
	Href() string
	Field(name string) (any, bool)
	SetField(name string, value any)
	Fields() map[string]any
	Save(ctx context.Context) error
	Delete(ctx context.Context) error
}

// GroupAdder is the narrow capability of resources that support group
// membership. Only account handles implement it.
type GroupAdder interface {
	AddGroup(ctx context.Context, group string) error
}

// Iterator walks a remote collection lazily. Next returns false when the
// collection is exhausted; each List or Search call issues a fresh query.
type Iterator interface {
	Next(ctx context.Context) (Resource, bool, error)
}

// Collection exposes the remote operations for one resource kind.
type Collection interface {
	Create(ctx context.Context, attrs map[string]any, extra map[string]any) (Resource, error)
	List(ctx context.Context) (Iterator, error)
	Search(ctx context.Context, filters map[string]string) (Iterator, error)
	FindFirst(ctx context.Context, field, value string) (Resource, error)
}

// CollectionProvider hands out the Collection for a resource kind.
type CollectionProvider interface {
	Collection(kind schema.Kind) Collection
}
