package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	to := &options.TodayOptions{}
	var mcpAddr string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
diary ui
diary ui --today=2024-02-28
diary ui --mcp-addr=127.0.0.1:8080
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(to, logToFile)
			if err != nil {
				return err
			}
			defer s.close()

			i := ui.UI{
				Service:   s.svc,
				Log:       s.log,
				NoticeTTL: s.cfg.NoticeDuration(),
				MCPAddr:   mcpAddr,
				Version:   version,
			}
			return i.Do(cmd.Context())
		},
	}

	options.AddTodayArgs(cmd, to)
	cmd.Flags().StringVar(&mcpAddr, "mcp-addr", "", "also serve MCP over HTTP on this address while the UI runs")

	topLevel.AddCommand(cmd)
}
