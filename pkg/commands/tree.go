package commands

import (
	"os"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/tree"
)

func addTree(topLevel *cobra.Command) {
	to := &options.TodayOptions{}
	tro := &options.TreeOptions{}
	ido := &options.IDOptions{}
	co := &options.ColorOptions{}
	output := &base.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: base.Wrap80("Print a sample diary grouped by year and month, newest first."),
		Example: `
diary tree
diary tree --days=40 --boxes=1
diary tree --today=2024-01-02 --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(nil, logToStderr)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.close()

			today, ok, err := to.GetToday(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			if !ok {
				today, _ = s.cfg.Today()
			}

			t := tree.Tree{
				Today:    today,
				Days:     tro.Days,
				Boxes:    tro.Boxes,
				JSON:     output.JSON,
				Table:    tro.Table,
				Calendar: tro.Calendar,
				ShowID:   ido.ShowID,
				Color:    co.Enabled(os.Stdout),
				Out:      cmd.OutOrStdout(),
				Log:      s.log,
			}
			return output.HandleError(t.Do(cmd.Context()))
		},
	}

	options.AddTodayArgs(cmd, to)
	options.AddTreeArgs(cmd, tro)
	options.AddShowIDArgs(cmd, ido)
	options.AddColorArgs(cmd, co)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
