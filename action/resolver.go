package action

import (
	"encoding/json"
	"strings"

	"github.com/idstack/idstack-cli/schema"
)

// AttributeSet maps semantic field names to resolved values, scoped to one
// action invocation.
type AttributeSet map[string]any

// gatherInlineAttributes folds inline name=value tokens into the flag map.
// Names may use hyphens or underscores interchangeably; they must exist in
// the kind's full schema. Later tokens overwrite earlier ones.
func gatherInlineAttributes(kind schema.Kind, args *Args) error {
	full := schema.Full(kind)
	for _, token := range args.Attributes {
		name, value, found := strings.Cut(token, "=")
		if !found {
			return &UnknownAttributeError{Name: token}
		}
		name = strings.ReplaceAll(name, "-", "_")
		field, ok := full.Lookup(name)
		if !ok {
			return &UnknownAttributeError{Name: name}
		}
		args.Flags[field.Flag] = value
	}
	return nil
}

// resolveAttributes builds the attribute set for one invocation against the
// target schema. A --json payload bypasses flag merging entirely and is
// returned verbatim; the remote API validates it downstream.
func resolveAttributes(args *Args, target schema.Schema) (AttributeSet, error) {
	if payload := args.flag(FlagJSON); payload != "" {
		attrs := make(AttributeSet)
		if err := json.Unmarshal([]byte(payload), &attrs); err != nil {
			return nil, &MalformedPayloadError{Cause: err}
		}
		return attrs, nil
	}

	attrs := make(AttributeSet)
	for _, field := range target.Fields() {
		value := args.flag(field.Flag)
		if value == "" {
			continue
		}
		attrs[field.Name] = value
	}
	return attrs, nil
}

// applyMappingReferences wraps the application and account_store values of an
// account-store-mapping into nested {href: value} objects. The remote API
// expects reference objects, not bare strings.
func applyMappingReferences(kind schema.Kind, attrs AttributeSet) AttributeSet {
	if kind != schema.AccountStoreMapping {
		return attrs
	}
	for _, name := range []string{schema.FieldApplication, schema.FieldAccountStore} {
		value, ok := attrs[name]
		if !ok {
			continue
		}
		if href, isString := value.(string); isString {
			attrs[name] = map[string]any{"href": href}
		}
	}
	return attrs
}

// searchFilters converts a resolved search attribute set into string filters
// for the collection query.
func searchFilters(attrs AttributeSet) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	filters := make(map[string]string, len(attrs))
	for name, value := range attrs {
		if text, ok := value.(string); ok {
			filters[name] = text
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			continue
		}
		filters[name] = strings.Trim(string(encoded), `"`)
	}
	return filters
}
