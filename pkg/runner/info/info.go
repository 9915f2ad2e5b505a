package info

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/diary/pkg/config"
)

type Info struct {
	Config config.Config
	Out    io.Writer
	JSON   bool
}

// Summary is the resolved configuration as shown by `diary info`.
type Summary struct {
	ConfigPathEnv  string `json:"configPathEnv"`
	ConfigFile     string `json:"configFile"`
	Today          string `json:"today"`
	LogFile        string `json:"logFile"`
	LogLevel       string `json:"logLevel"`
	NoticeDuration string `json:"noticeDuration"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	s := n.Summary()
	if n.JSON {
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	if s.ConfigPathEnv != "" {
		_, _ = fmt.Fprintln(out, config.EnvConfigPath, "found on env, using", s.ConfigPathEnv)
	} else {
		_, _ = fmt.Fprintln(out, config.EnvConfigPath, "env var not set")
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("Value"))
	tbl.AddRow("config file", orNone(s.ConfigFile))
	tbl.AddRow("today", orNone(s.Today))
	tbl.AddRow("log.file", orNone(s.LogFile))
	tbl.AddRow("log.level", s.LogLevel)
	tbl.AddRow("ui.notice", s.NoticeDuration)
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

// Summary collects the values printed by Do.
func (n *Info) Summary() Summary {
	s := Summary{
		ConfigPathEnv:  os.Getenv(config.EnvConfigPath),
		ConfigFile:     n.Config.Source(),
		LogFile:        n.Config.LogFile(),
		LogLevel:       n.Config.LogLevel(),
		NoticeDuration: n.Config.NoticeDuration().String(),
	}
	if d, ok := n.Config.Today(); ok {
		s.Today = d.String()
	}
	return s
}

func orNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}
