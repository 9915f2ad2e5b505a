package commands

import (
	"time"

	"go.uber.org/zap"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/config"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/logging"
)

type logSink int

const (
	// logToFile keeps stdout and stderr free for a full-screen UI.
	logToFile logSink = iota
	logToStderr
)

type session struct {
	cfg   config.Config
	log   *zap.Logger
	svc   *app.Service
	close func()
}

// openSession loads configuration, builds the logger and a fresh in-memory
// diary. The --today flag wins over the config file.
func openSession(to *options.TodayOptions, sink logSink) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var (
		log     *zap.Logger
		closeFn = func() {}
	)
	switch sink {
	case logToStderr:
		log = logging.Stderr(cfg.LogLevel())
		closeFn = func() { _ = log.Sync() }
	default:
		log, closeFn, err = logging.File(cfg.LogFile(), cfg.LogLevel())
		if err != nil {
			return nil, err
		}
	}

	var opts []journal.Option
	if d, ok := cfg.Today(); ok {
		opts = append(opts, journal.WithToday(d))
	}
	if to != nil {
		d, ok, err := to.GetToday(time.Now())
		if err != nil {
			closeFn()
			return nil, err
		}
		if ok {
			opts = append(opts, journal.WithToday(d))
		}
	}

	log.Debug("session opened", zap.String("config", cfg.Source()))
	return &session{
		cfg:   cfg,
		log:   log,
		svc:   app.New(journal.New(opts...), log),
		close: closeFn,
	}, nil
}
