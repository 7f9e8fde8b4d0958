package http

import "strings"

// The engine speaks snake_case semantic names; the wire format is camelCase.
// Conversion happens at the gateway boundary so neither side leaks into the
// other.

func toWireName(name string) string {
	parts := strings.Split(name, "_")
	if len(parts) == 1 {
		return name
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func fromWireName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toWireFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for name, value := range fields {
		if nested, ok := value.(map[string]any); ok {
			value = toWireFields(nested)
		}
		out[toWireName(name)] = value
	}
	return out
}

func fromWireFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for name, value := range fields {
		if nested, ok := value.(map[string]any); ok {
			value = fromWireFields(nested)
		}
		out[fromWireName(name)] = value
	}
	return out
}
