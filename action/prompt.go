package action

import (
	"sort"
	"strings"

	"github.com/idstack/idstack-cli/schema"
)

// Prompter solicits values from the operator. The engine depends on this
// interface only, so tests drive it with a scripted implementation and the
// CLI wires an interactive one.
type Prompter interface {
	Ask(label string) (string, error)
	AskSecret(label string) (string, error)
	Confirm(question string, defaultYes bool) (bool, error)
	Messagef(format string, args ...any)
}

// ensureRequired checks that every required field of the kind is supplied and
// otherwise interviews the operator for the remaining fields. Only the create
// path calls this; list, update, and delete never prompt.
func ensureRequired(kind schema.Kind, args *Args, prompt Prompter) error {
	required := schema.Required(kind)
	satisfied := 0
	for _, field := range required.Fields() {
		if args.hasFlag(field.Flag) {
			satisfied++
		}
	}
	if satisfied == required.Len() {
		return nil
	}

	full := schema.Full(kind)
	remaining := make([]schema.Field, 0, full.Len())
	for _, field := range full.Fields() {
		if field.Name == schema.FieldHref {
			continue
		}
		if args.hasFlag(field.Flag) {
			continue
		}
		remaining = append(remaining, field)
	}
	if len(remaining) == 0 {
		return nil
	}
	sort.Slice(remaining, func(i, j int) bool {
		return remaining[i].Name < remaining[j].Name
	})

	prompt.Messagef("Please enter the following information. Fields with an asterisk (*) are required.\n")
	prompt.Messagef("Fields without an asterisk are optional.\n")

	for _, field := range remaining {
		label := fieldLabel(field, args)
		var (
			value string
			err   error
		)
		if field.Secret {
			value, err = prompt.AskSecret(label)
		} else {
			value, err = prompt.Ask(label)
		}
		if err != nil {
			return err
		}
		args.Flags[field.Flag] = value
	}

	if extra := schema.Extra(kind); extra.Len() > 0 {
		yes, err := prompt.Confirm("Create a directory for this application?", true)
		if err != nil {
			return err
		}
		if yes {
			args.Flags["--create-directory"] = "true"
		}
	}
	return nil
}

// fieldLabel renders the human label for a prompted field. The password field
// surfaces the previously entered email instead of its own name.
func fieldLabel(field schema.Field, args *Args) string {
	if field.Name == schema.FieldPassword {
		return args.flag("--email")
	}
	label := strings.ReplaceAll(field.Name, "_", " ")
	label = strings.ToUpper(label[:1]) + label[1:]
	if field.Required {
		label += "*"
	}
	return label
}
