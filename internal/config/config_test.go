package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "typelog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Notice != defaultNotice {
		t.Fatalf("expected default notice, got %q", cfg.App.Notice)
	}
	if cfg.App.NoticeDuration != 2*time.Second {
		t.Fatalf("expected 2s notice, got %s", cfg.App.NoticeDuration)
	}
	if cfg.App.ReplayInterval != 250*time.Millisecond {
		t.Fatalf("expected 250ms replay interval, got %s", cfg.App.ReplayInterval)
	}
	if cfg.Logging.FilePath != defaultLogFile || cfg.Logging.Trace {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 || cfg.App.ShowFooter {
		t.Fatalf("unexpected viewport config %#v", cfg.App)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		envWidth + "=100",
		envNotice + "=from env",
		envTrace + "=true",
	}
	cfg, err := LoadArgs([]string{"--width", "80", "--notice", "from flag"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag width 80, got %d", cfg.App.Width)
	}
	if cfg.App.Notice != "from flag" {
		t.Fatalf("expected flag notice, got %q", cfg.App.Notice)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from env")
	}
	if len(cfg.Args) != 4 || cfg.Args[0] != "--width" {
		t.Fatalf("expected raw args kept, got %#v", cfg.Args)
	}
}

func TestLoadArgsInvalidEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envHeight + "=tall", envNoticeDuration + "=soon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.NoticeDuration != defaultNoticeDuration {
		t.Fatalf("expected defaults for unparseable env, got %#v", cfg.App)
	}
}

func TestLoadArgsConfigFileLayering(t *testing.T) {
	path := writeConfigFile(t, strings.Join([]string{
		"width: 60",
		"height: 20",
		"footer: true",
		"notice: from file",
		"notice_duration: 5s",
		"replay_interval: 10ms",
	}, "\n"))
	env := []string{envHeight + "=30"}
	cfg, err := LoadArgs([]string{"--config", path, "--footer=false"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 60 {
		t.Fatalf("expected file width, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 30 {
		t.Fatalf("expected env height to beat file, got %d", cfg.App.Height)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected flag footer to beat file")
	}
	if cfg.App.Notice != "from file" || cfg.App.NoticeDuration != 5*time.Second {
		t.Fatalf("unexpected notice config %q %s", cfg.App.Notice, cfg.App.NoticeDuration)
	}
	if cfg.App.ReplayInterval != 10*time.Millisecond {
		t.Fatalf("expected file replay interval, got %s", cfg.App.ReplayInterval)
	}
	if cfg.ConfigFile != path {
		t.Fatalf("expected config path recorded, got %q", cfg.ConfigFile)
	}
}

func TestLoadArgsConfigFileFromEnv(t *testing.T) {
	path := writeConfigFile(t, "trace: true\nlog_file: /tmp/typelog-test.log\n")
	cfg, err := LoadArgs(nil, []string{envConfigFile + "=" + path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/typelog-test.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestLoadArgsConfigFileErrors(t *testing.T) {
	if _, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
	unknown := writeConfigFile(t, "colour: blue\n")
	if _, err := LoadArgs([]string{"--config", unknown}, nil); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	badDuration := writeConfigFile(t, "notice_duration: forever\n")
	if _, err := LoadArgs([]string{"--config", badDuration}, nil); err == nil || !strings.Contains(err.Error(), "notice_duration") {
		t.Fatalf("expected notice_duration error, got %v", err)
	}
	empty := writeConfigFile(t, "")
	if _, err := LoadArgs([]string{"--config", empty}, nil); err != nil {
		t.Fatalf("expected empty file to be accepted, got %v", err)
	}
}

func TestLoadArgsValidation(t *testing.T) {
	cases := [][]string{
		{"--width=-1"},
		{"--height=-5"},
		{"--notice-duration=0s"},
		{"--replay-interval=-1s"},
	}
	for _, args := range cases {
		cfg, err := LoadArgs(args, nil)
		if err != nil {
			t.Fatalf("unexpected parse error for %v: %v", args, err)
		}
		if err := Validate(cfg); err == nil {
			t.Fatalf("expected validation error for %v", args)
		}
	}
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsHelp(t *testing.T) {
	_, err := LoadArgs([]string{"--help"}, nil)
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	var help *HelpError
	if !errors.As(err, &help) || !strings.Contains(help.Usage, "--notice-duration") {
		t.Fatalf("expected usage text, got %#v", err)
	}
}
