package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/config"
	"tableflip.dev/diary/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	output := &base.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the resolved configuration.",
		Example: `
diary info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := config.Load()
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config: cfg,
				Out:    cmd.OutOrStdout(),
				JSON:   output.JSON,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
