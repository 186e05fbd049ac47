package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/typelog/internal/app"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	ConfigFile string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth          = "TYPELOG_WIDTH"
	envHeight         = "TYPELOG_HEIGHT"
	envShowFooter     = "TYPELOG_FOOTER"
	envNotice         = "TYPELOG_NOTICE"
	envNoticeDuration = "TYPELOG_NOTICE_DURATION"
	envReplay         = "TYPELOG_REPLAY"
	envReplayInterval = "TYPELOG_REPLAY_INTERVAL"
	envTrace          = "TYPELOG_TRACE"
	envLogFile        = "TYPELOG_LOG_FILE"
	envConfigFile     = "TYPELOG_CONFIG"
)

const (
	defaultNotice         = "I am updating data"
	defaultNoticeDuration = 2 * time.Second
	defaultReplayInterval = 250 * time.Millisecond
	defaultLogFile        = "typelog.log"
)

// HelpError is returned by LoadArgs when --help was requested. It matches
// pflag.ErrHelp under errors.Is.
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string {
	return pflag.ErrHelp.Error()
}

func (e *HelpError) Is(target error) bool {
	return target == pflag.ErrHelp
}

// fileConfig mirrors the flags in the optional YAML file. Pointers tell an
// absent key from a zero value.
type fileConfig struct {
	Width          *int    `yaml:"width"`
	Height         *int    `yaml:"height"`
	Footer         *bool   `yaml:"footer"`
	Notice         *string `yaml:"notice"`
	NoticeDuration *string `yaml:"notice_duration"`
	Replay         *string `yaml:"replay"`
	ReplayInterval *string `yaml:"replay_interval"`
	Trace          *bool   `yaml:"trace"`
	LogFile        *string `yaml:"log_file"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flag, then environment, then config file, then default. The result is not
// validated; see Validate.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("typelog", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show the key help footer")
	notice := fs.String("notice", envOrDefault(env, envNotice, defaultNotice), "text of the notice shown on every change")
	noticeDuration := fs.Duration("notice-duration", envOrDuration(env, envNoticeDuration, defaultNoticeDuration), "how long the notice stays visible")
	replay := fs.String("replay", envOrDefault(env, envReplay, ""), "file of lines to feed into the text field")
	replayInterval := fs.Duration("replay-interval", envOrDuration(env, envReplayInterval, defaultReplayInterval), "pause between replayed lines")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, defaultLogFile), "path to the log file")
	configFile := fs.String("config", envOrDefault(env, envConfigFile, ""), "path to a YAML config file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, &HelpError{Usage: fs.FlagUsages()}
		}
		return Config{}, err
	}

	if path := strings.TrimSpace(*configFile); path != "" {
		file, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		// A file value only applies when neither the flag nor its
		// environment variable was given.
		unset := func(flag, key string) bool {
			if fs.Changed(flag) {
				return false
			}
			_, ok := env[key]
			return !ok
		}
		if file.Width != nil && unset("width", envWidth) {
			*width = *file.Width
		}
		if file.Height != nil && unset("height", envHeight) {
			*height = *file.Height
		}
		if file.Footer != nil && unset("footer", envShowFooter) {
			*footer = *file.Footer
		}
		if file.Notice != nil && unset("notice", envNotice) {
			*notice = *file.Notice
		}
		if file.NoticeDuration != nil && unset("notice-duration", envNoticeDuration) {
			d, err := time.ParseDuration(*file.NoticeDuration)
			if err != nil {
				return Config{}, fmt.Errorf("config file %s: notice_duration: %w", path, err)
			}
			*noticeDuration = d
		}
		if file.Replay != nil && unset("replay", envReplay) {
			*replay = *file.Replay
		}
		if file.ReplayInterval != nil && unset("replay-interval", envReplayInterval) {
			d, err := time.ParseDuration(*file.ReplayInterval)
			if err != nil {
				return Config{}, fmt.Errorf("config file %s: replay_interval: %w", path, err)
			}
			*replayInterval = d
		}
		if file.Trace != nil && unset("trace", envTrace) {
			*trace = *file.Trace
		}
		if file.LogFile != nil && unset("log-file", envLogFile) {
			*logFile = *file.LogFile
		}
	}

	cfg := Config{
		App: app.Config{
			Width:          *width,
			Height:         *height,
			ShowFooter:     *footer,
			Notice:         *notice,
			NoticeDuration: *noticeDuration,
			ReplayPath:     *replay,
			ReplayInterval: *replayInterval,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		ConfigFile: *configFile,
		Args:       append([]string(nil), args...),
	}

	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var file fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return file, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects values the program cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.NoticeDuration <= 0 {
		return fmt.Errorf("notice-duration must be > 0 (got %s)", cfg.App.NoticeDuration)
	}
	if cfg.App.ReplayInterval <= 0 {
		return fmt.Errorf("replay-interval must be > 0 (got %s)", cfg.App.ReplayInterval)
	}
	return nil
}

// MustLoad returns configuration or exits. --help prints usage and exits 0.
// Values are not validated here; callers run Validate.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		var help *HelpError
		if errors.As(err, &help) {
			fmt.Fprintf(os.Stdout, "Usage: typelog [flags]\n\n%s", help.Usage)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
