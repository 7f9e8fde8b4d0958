package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/idstack/idstack-cli/schema"
)

var (
	noStatusOutput bool
)

var rootCmd = newRootCommand()

const (
	groupUtility  = "utility"
	groupResource = "resource"
)

func Execute() error {
	return rootCmd.Execute()
}

func NewRootCommand() *cobra.Command {
	return newRootCommand()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idstack",
		Short: "Manage accounts, applications, directories, and groups on an IDStack tenant",
		Long: `idstack manages the identity resources of an IDStack tenant from the
command line: accounts, applications, directories, groups, and the
account-store mappings that bind them together.

Run "idstack setup" once to store your tenant API key, then address any
resource kind with the same four verbs.`,
		Example: `  # Store the tenant API key pair
  idstack setup

  # List accounts, optionally filtered
  idstack account list --status ENABLED

  # Create an application interactively
  idstack application create

  # Delete a directory without the confirmation prompt
  idstack directory delete --name "Old Staff" --force`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetHelpCommandGroupID(groupUtility)
	cmd.SetCompletionCommandGroupID(groupUtility)

	configureUsage(cmd)

	cmd.PersistentFlags().BoolVar(&noStatusOutput, "no-status", false, "Suppress status messages and print only command output")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err == nil {
			return nil
		}
		return usageError(cmd, err.Error())
	})

	cmd.AddGroup(&cobra.Group{ID: groupResource, Title: "Resource Commands:"})
	cmd.AddGroup(&cobra.Group{ID: groupUtility, Title: "Utility Commands:"})

	for _, kind := range schema.Kinds() {
		cmd.AddCommand(newKindCommand(kind))
	}
	cmd.AddCommand(newSetupCommand())
	cmd.AddCommand(newConfigCommand())
	cmd.AddCommand(newStatusCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}
