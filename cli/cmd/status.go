package cmd

import (
	"github.com/spf13/cobra"

	"github.com/idstack/idstack-cli/config"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		GroupID: groupUtility,
		Short:   "Show the current tenant, endpoint, and selected context",
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, profile, err := loadGateway(cmd)
			if err != nil {
				return err
			}

			tenant, err := gateway.CurrentTenant(cmd.Context())
			if err != nil {
				return err
			}

			infof(cmd, "endpoint: %s", profile.EffectiveBaseURL())
			if name, ok := tenant["name"].(string); ok && name != "" {
				infof(cmd, "tenant:   %s", name)
			}
			infof(cmd, "context:  %s", describeContext(profile.Context))
			return nil
		},
	}
}

func describeContext(ctx *config.Context) string {
	if ctx == nil {
		return "none"
	}
	switch {
	case !ctx.Directory.Empty() && !ctx.Application.Empty():
		return "directory " + ctx.Directory.Name + ", application " + ctx.Application.Name
	case !ctx.Directory.Empty():
		return "directory " + ctx.Directory.Name
	case !ctx.Application.Empty():
		return "application " + ctx.Application.Name
	default:
		return "none"
	}
}
