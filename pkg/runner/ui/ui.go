package ui

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/runner/mcp"
	teaui "tableflip.dev/diary/pkg/tui/app"
)

// UI runs the terminal interface, optionally serving MCP over HTTP against
// the same diary so agent edits show up live.
type UI struct {
	Service   *app.Service
	Log       *zap.Logger
	NoticeTTL time.Duration

	// MCPAddr, when set, starts the streamable HTTP MCP server alongside
	// the TUI.
	MCPAddr string
	Version string

	// run is swapped in tests.
	run func(ctx context.Context, svc *app.Service, opts teaui.Options) error
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("ui requires a diary service")
	}
	log := u.Log
	if log == nil {
		log = zap.NewNop()
	}
	run := u.run
	if run == nil {
		run = teaui.Run
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	mcpErr := make(chan error, 1)
	if u.MCPAddr != "" {
		ready := make(chan struct{})
		r := mcp.Runner{
			Service:        u.Service,
			Log:            log,
			Name:           "diary",
			Version:        u.Version,
			Transport:      mcp.TransportHTTP,
			HTTPListenAddr: u.MCPAddr,
			OnHTTPListening: func(a net.Addr) {
				log.Info("mcp co-hosted with ui", zap.String("addr", a.String()))
				close(ready)
			},
		}
		go func() { mcpErr <- r.Do(ctx) }()
		select {
		case <-ready:
		case err := <-mcpErr:
			return errors.Wrap(err, "start mcp")
		}
	}

	log.Info("starting ui")
	err := run(ctx, u.Service, teaui.Options{NoticeTTL: u.NoticeTTL, Log: log})
	cancel()
	if u.MCPAddr != "" {
		if serr := <-mcpErr; serr != nil && err == nil {
			err = serr
		}
	}
	return err
}
