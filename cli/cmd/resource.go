package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idstack/idstack-cli/action"
	"github.com/idstack/idstack-cli/schema"
)

// Every spelling accepted as a kind token. The command tree exposes them as
// cobra aliases so "idstack apps list" and "idstack application list" are the
// same invocation.
var kindTokens = []string{
	"account", "accounts",
	"application", "applications", "app", "apps",
	"directory", "directories", "dir", "dirs",
	"group", "groups",
	"account-store-mapping", "account-store-mappings", "mapping", "mappings",
}

func kindAliases(kind schema.Kind) []string {
	aliases := make([]string, 0, 3)
	for _, token := range kindTokens {
		parsed, ok := schema.ParseKind(token)
		if !ok || parsed != kind || token == kind.String() {
			continue
		}
		aliases = append(aliases, token)
	}
	return aliases
}

func newKindCommand(kind schema.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:     kind.String(),
		Aliases: kindAliases(kind),
		GroupID: groupResource,
		Short:   fmt.Sprintf("Manage %s resources", kind),
	}

	cmd.AddCommand(newListCommand(kind))
	cmd.AddCommand(newCreateCommand(kind))
	cmd.AddCommand(newUpdateCommand(kind))
	cmd.AddCommand(newDeleteCommand(kind))

	return cmd
}

// registerSchemaFlags exposes every schema field as a string flag. Fields may
// share an external flag (the mapping's account store is addressed by href),
// so registration dedupes by flag name.
func registerSchemaFlags(cmd *cobra.Command, schemas ...schema.Schema) {
	seen := make(map[string]bool)
	for _, s := range schemas {
		for _, field := range s.Fields() {
			name := strings.TrimPrefix(field.Flag, "--")
			if seen[name] {
				continue
			}
			seen[name] = true
			cmd.Flags().String(name, "", fieldUsage(field))
		}
	}
}

func fieldUsage(field schema.Field) string {
	usage := strings.ReplaceAll(field.Name, "_", " ")
	usage = strings.ToUpper(usage[:1]) + usage[1:]
	if field.Required {
		usage += " (required)"
	}
	return usage
}

// collectArgs translates the flags the operator actually set, plus the
// positional name=value tokens, into the engine's argument surface. The jq
// flag is CLI output plumbing and never reaches the engine.
func collectArgs(cmd *cobra.Command, positional []string) *action.Args {
	args := action.NewArgs()
	cmd.Flags().Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "jq", "help":
			return
		}
		args.Flags["--"+flag.Name] = flag.Value.String()
	})
	args.Attributes = append(args.Attributes, positional...)
	return args
}

func newListCommand(kind schema.Kind) *cobra.Command {
	var jqFilter string

	cmd := &cobra.Command{
		Use:   "list [name=value ...]",
		Short: fmt.Sprintf("List %s resources, optionally filtered", kind),
	}

	registerSchemaFlags(cmd, schema.Search(kind))
	cmd.Flags().String("json", "", "Filters as a raw JSON object, bypassing flag handling")
	cmd.Flags().StringVar(&jqFilter, "jq", "", "Post-process the listed records with a jq expression")

	cmd.RunE = func(cmd *cobra.Command, positional []string) error {
		dispatcher, err := dispatcherFactory(cmd)
		if err != nil {
			return err
		}

		result, err := dispatcher.List(cmd.Context(), kind, collectArgs(cmd, positional))
		if err != nil {
			return err
		}

		records := make([]any, 0, 16)
		for {
			record, ok, err := result.Next(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			records = append(records, record.Plain())
		}

		var output any = records
		output, err = applyListJQ(cmd.Context(), output, jqFilter)
		if err != nil {
			return err
		}
		return printJSON(cmd, output)
	}
	return cmd
}

func newCreateCommand(kind schema.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name=value ...]",
		Short: fmt.Sprintf("Create a %s", kind),
	}

	registerSchemaFlags(cmd, schema.Full(kind), schema.Extra(kind))
	cmd.Flags().String("json", "", "Resource attributes as a raw JSON object, bypassing flag handling")
	if kind == schema.Account {
		cmd.Flags().String("groups", "", "Comma-separated group names or hrefs to join after creation")
	}

	cmd.RunE = func(cmd *cobra.Command, positional []string) error {
		dispatcher, err := dispatcherFactory(cmd)
		if err != nil {
			return err
		}

		record, err := dispatcher.Create(cmd.Context(), kind, collectArgs(cmd, positional))
		if err != nil {
			return err
		}
		if err := printJSON(cmd, record); err != nil {
			return err
		}
		successf(cmd, "created %s", kind)
		return nil
	}
	return cmd
}

func newUpdateCommand(kind schema.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [name=value ...]",
		Short: fmt.Sprintf("Update a %s identified by its primary attribute", kind),
	}

	registerSchemaFlags(cmd, schema.Full(kind))
	cmd.Flags().String("json", "", "Resource attributes as a raw JSON object, bypassing flag handling")
	if kind == schema.Account {
		cmd.Flags().String("groups", "", "Comma-separated group names or hrefs to join after the update")
	}

	cmd.RunE = func(cmd *cobra.Command, positional []string) error {
		dispatcher, err := dispatcherFactory(cmd)
		if err != nil {
			return err
		}

		record, err := dispatcher.Update(cmd.Context(), kind, collectArgs(cmd, positional))
		if err != nil {
			return err
		}
		if err := printJSON(cmd, record); err != nil {
			return err
		}
		successf(cmd, "updated %s", kind)
		return nil
	}
	return cmd
}

func newDeleteCommand(kind schema.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [name=value ...]",
		Short: fmt.Sprintf("Delete a %s after confirmation", kind),
	}

	registerSchemaFlags(cmd, schema.Full(kind))
	cmd.Flags().String("json", "", "Resource attributes as a raw JSON object, bypassing flag handling")
	cmd.Flags().Bool("force", false, "Skip the confirmation prompt and print the deleted resource")

	cmd.RunE = func(cmd *cobra.Command, positional []string) error {
		dispatcher, err := dispatcherFactory(cmd)
		if err != nil {
			return err
		}

		record, deleted, err := dispatcher.Delete(cmd.Context(), kind, collectArgs(cmd, positional))
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}
		if record != nil {
			if err := printJSON(cmd, record); err != nil {
				return err
			}
		}
		successf(cmd, "deleted %s", kind)
		return nil
	}
	return cmd
}
