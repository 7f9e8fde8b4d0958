package action

import "strings"

// Flags consumed by the engine itself rather than by a resource schema.
const (
	FlagJSON   = "--json"
	FlagForce  = "--force"
	FlagGroups = "--groups"
)

// Args is the flat argument surface handed over by the CLI layer: external
// flag names mapped to string values, plus the raw inline name=value tokens.
type Args struct {
	Flags      map[string]string
	Attributes []string
}

func NewArgs() *Args {
	return &Args{Flags: make(map[string]string)}
}

func (a *Args) flag(name string) string {
	if a == nil || a.Flags == nil {
		return ""
	}
	return a.Flags[name]
}

func (a *Args) hasFlag(name string) bool {
	return strings.TrimSpace(a.flag(name)) != ""
}

func (a *Args) forced() bool {
	switch strings.ToLower(strings.TrimSpace(a.flag(FlagForce))) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// clone returns a deep copy so attribute gathering and prompting never mutate
// the caller's argument map.
func (a *Args) clone() *Args {
	if a == nil {
		return NewArgs()
	}
	flags := make(map[string]string, len(a.Flags))
	for name, value := range a.Flags {
		flags[name] = value
	}
	attrs := make([]string, len(a.Attributes))
	copy(attrs, a.Attributes)
	return &Args{Flags: flags, Attributes: attrs}
}
