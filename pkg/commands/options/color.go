package options

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ColorOptions decide whether printers emit ANSI styling.
type ColorOptions struct {
	NoColor bool
}

func AddColorArgs(cmd *cobra.Command, o *ColorOptions) {
	cmd.Flags().BoolVar(&o.NoColor, "no-color", false,
		"Disable colored output.")
}

// Enabled reports whether f should get colored output. NO_COLOR in the
// environment disables it as well.
func (o *ColorOptions) Enabled(f *os.File) bool {
	if o.NoColor || os.Getenv("NO_COLOR") != "" || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
