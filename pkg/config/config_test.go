package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	body := "today: \"2024-05-06\"\nlog:\n  file: /tmp/diary-test.log\n  level: DEBUG\nui:\n  notice_seconds: 7\n"
	if err := os.WriteFile(filepath.Join(dir, ".diary.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfigPath, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d, ok := cfg.Today()
	if !ok || d.String() != "2024-05-06" {
		t.Fatalf("today = %v %v", d, ok)
	}
	if cfg.LogFile() != "/tmp/diary-test.log" {
		t.Fatalf("log file = %q", cfg.LogFile())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("log level = %q", cfg.LogLevel())
	}
	if cfg.NoticeDuration() != 7*time.Second {
		t.Fatalf("notice = %v", cfg.NoticeDuration())
	}
	if !strings.HasSuffix(cfg.Source(), ".diary.yaml") {
		t.Fatalf("source = %q", cfg.Source())
	}
}

func TestDefaults(t *testing.T) {
	v := viper.New()
	v.SetDefault("log.file", defaultLogFile)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("ui.notice_seconds", defaultNoticeSeconds)

	cfg, err := fromViper(v)
	if err != nil {
		t.Fatalf("from viper: %v", err)
	}
	if _, ok := cfg.Today(); ok {
		t.Fatalf("today should be unset")
	}
	if strings.HasPrefix(cfg.LogFile(), "~") || !strings.HasSuffix(cfg.LogFile(), ".diary.log") {
		t.Fatalf("log file not expanded: %q", cfg.LogFile())
	}
	if cfg.NoticeDuration() != defaultNoticeSeconds*time.Second {
		t.Fatalf("notice = %v", cfg.NoticeDuration())
	}
}

func TestEmptyLogFileDisablesLogging(t *testing.T) {
	v := viper.New()
	v.Set("log.file", "")
	cfg, err := fromViper(v)
	if err != nil {
		t.Fatalf("from viper: %v", err)
	}
	if cfg.LogFile() != "" {
		t.Fatalf("expected empty log file, got %q", cfg.LogFile())
	}
	if cfg.LogLevel() != defaultLogLevel {
		t.Fatalf("level = %q", cfg.LogLevel())
	}
}

func TestBadToday(t *testing.T) {
	v := viper.New()
	v.Set("today", "yesterday")
	if _, err := fromViper(v); err == nil {
		t.Fatal("expected parse error")
	}
}
