package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/idstack/idstack-cli/config"
	idctx "github.com/idstack/idstack-cli/context"
	"github.com/idstack/idstack-cli/schema"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		GroupID: groupUtility,
		Short:   "Inspect and adjust the stored profile and context",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored profile with the key secret redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := &idctx.ProfileManager{}
			profile, err := manager.Load()
			if err != nil {
				return err
			}
			if profile.Credentials.APIKeySecret != "" {
				profile.Credentials.APIKeySecret = "****"
			}

			rendered, err := yaml.Marshal(profile)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(rendered))
			return nil
		},
	}
}

// newConfigSetCommand narrows account and group operations to one application
// or directory. Names resolve against the remote tenant so the stored context
// carries both the display name and the canonical href.
func newConfigSetCommand() *cobra.Command {
	var (
		applicationName string
		directoryName   string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Select the application or directory scoping account and group commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			applicationName = strings.TrimSpace(applicationName)
			directoryName = strings.TrimSpace(directoryName)
			if applicationName == "" && directoryName == "" {
				return usageError(cmd, "at least one of --application or --directory is required")
			}

			gateway, _, err := loadGateway(cmd)
			if err != nil {
				return err
			}

			manager := &idctx.ProfileManager{}
			ctx := cmd.Context()

			if applicationName != "" {
				found, err := gateway.Collection(schema.Application).FindFirst(ctx, schema.FieldName, applicationName)
				if err != nil {
					return err
				}
				ref := &config.Ref{Name: applicationName, Href: found.Href()}
				if err := manager.SetContext(func(c *config.Context) { c.Application = ref }); err != nil {
					return err
				}
				successf(cmd, "application context set to %s", applicationName)
			}

			if directoryName != "" {
				found, err := gateway.Collection(schema.Directory).FindFirst(ctx, schema.FieldName, directoryName)
				if err != nil {
					return err
				}
				ref := &config.Ref{Name: directoryName, Href: found.Href()}
				if err := manager.SetContext(func(c *config.Context) { c.Directory = ref }); err != nil {
					return err
				}
				successf(cmd, "directory context set to %s", directoryName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&applicationName, "application", "", "Application name to scope account and group commands to")
	cmd.Flags().StringVar(&directoryName, "directory", "", "Directory name to scope account and group commands to")

	return cmd
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "unset [application|directory]",
		Short:     "Clear the selected context, or one half of it",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"application", "directory"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = strings.ToLower(strings.TrimSpace(args[0]))
				if target != "application" && target != "directory" {
					return usageError(cmd, fmt.Sprintf("unknown context %q", args[0]))
				}
			}

			manager := &idctx.ProfileManager{}
			if err := manager.UnsetContext(target); err != nil {
				return err
			}
			if target == "" {
				successf(cmd, "context cleared")
			} else {
				successf(cmd, "%s context cleared", target)
			}
			return nil
		},
	}
}
