// Package config loads the optional .diary.yaml settings file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"tableflip.dev/diary/pkg/entry"
)

const (
	// EnvConfigPath names an extra directory searched for .diary.yaml.
	EnvConfigPath = "DIARY_CONFIG_PATH"

	defaultLogFile       = "~/.diary.log"
	defaultLogLevel      = "info"
	defaultNoticeSeconds = 4
)

// Config is the resolved runtime configuration.
type Config interface {
	// Today overrides the seed date. ok is false when unset.
	Today() (d entry.Date, ok bool)
	// LogFile is the expanded log path. Empty disables logging.
	LogFile() string
	LogLevel() string
	NoticeDuration() time.Duration
	// Source is the config file that was read, if any.
	Source() string
}

// Load reads .diary.yaml from DIARY_CONFIG_PATH or the working directory.
// A missing file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("log.file", defaultLogFile)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("ui.notice_seconds", defaultNoticeSeconds)
	v.SetConfigName(".diary") // .yaml is implicit
	v.SetEnvPrefix("DIARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "config: read")
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*fileConfig, error) {
	fc := &fileConfig{
		Level:  strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		Notice: v.GetInt("ui.notice_seconds"),
		File:   v.ConfigFileUsed(),
	}

	if raw := strings.TrimSpace(v.GetString("today")); raw != "" {
		d, err := entry.ParseDate(raw)
		if err != nil {
			return nil, errors.Wrap(err, "config: today")
		}
		fc.TodayDate = d
	}

	if raw := strings.TrimSpace(v.GetString("log.file")); raw != "" {
		expanded, err := homedir.Expand(raw)
		if err != nil {
			return nil, errors.Wrap(err, "config: log.file")
		}
		fc.Log = expanded
	}

	if fc.Notice <= 0 {
		fc.Notice = defaultNoticeSeconds
	}
	if fc.Level == "" {
		fc.Level = defaultLogLevel
	}
	return fc, nil
}

type fileConfig struct {
	TodayDate entry.Date `json:"today,omitempty"`
	Log       string     `json:"logFile"`
	Level     string     `json:"logLevel"`
	Notice    int        `json:"noticeSeconds"`
	File      string     `json:"configFile,omitempty"`
}

func (f *fileConfig) Today() (entry.Date, bool) {
	return f.TodayDate, !f.TodayDate.IsZero()
}

func (f *fileConfig) LogFile() string {
	return f.Log
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

func (f *fileConfig) NoticeDuration() time.Duration {
	return time.Duration(f.Notice) * time.Second
}

func (f *fileConfig) Source() string {
	return f.File
}
