package action

import "github.com/idstack/idstack-cli/schema"

// primaryAttribute walks the kind's primary attribute order and returns the
// first field present with a non-empty value. Absence of every candidate is a
// hard error naming all of them.
func primaryAttribute(kind schema.Kind, attrs AttributeSet) (string, any, error) {
	order := schema.PrimaryOrder(kind)
	for _, name := range order {
		value, ok := attrs[name]
		if !ok || !presentValue(value) {
			continue
		}
		return name, value, nil
	}
	return "", nil, &MissingIdentifierError{Candidates: order}
}

func presentValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case string:
		return typed != ""
	case map[string]any:
		return len(typed) > 0
	default:
		return true
	}
}

// identifierString flattens a primary attribute value for lookups. A nested
// reference object contributes its href.
func identifierString(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case map[string]any:
		if href, ok := typed["href"].(string); ok {
			return href
		}
		return ""
	default:
		return ""
	}
}
