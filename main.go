package main

import (
	"fmt"
	"os"
	"time"

	"github.com/atomicstack/typelog/internal/app"
	"github.com/atomicstack/typelog/internal/config"
	"github.com/atomicstack/typelog/internal/logging"
	"github.com/atomicstack/typelog/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg, terminalSize))
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sizeProbe reports the terminal size and which descriptor it came from.
type sizeProbe func() (width, height int, source string, ok bool)

// terminalSize asks stdout first since that is where the alt screen is
// drawn, then stdin.
func terminalSize() (int, int, string, bool) {
	for _, probe := range []struct {
		name string
		fd   int
	}{
		{"stdout", int(os.Stdout.Fd())},
		{"stdin", int(os.Stdin.Fd())},
	} {
		if !term.IsTerminal(probe.fd) {
			continue
		}
		if w, h, err := term.GetSize(probe.fd); err == nil {
			return w, h, probe.name, true
		}
	}
	return 0, 0, "", false
}

type viewportTrace struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	FixedWidth  bool   `json:"fixed_width"`
	FixedHeight bool   `json:"fixed_height"`
	Source      string `json:"source"`
}

// resolveViewport reports the size the screen will start with. Fixed
// dimensions win; the rest come from the terminal when there is one.
func resolveViewport(cfg app.Config, probe sizeProbe) viewportTrace {
	vp := viewportTrace{
		Width:       cfg.Width,
		Height:      cfg.Height,
		FixedWidth:  cfg.Width > 0,
		FixedHeight: cfg.Height > 0,
		Source:      "flags",
	}
	if vp.FixedWidth && vp.FixedHeight {
		return vp
	}
	w, h, source, ok := probe()
	if !ok {
		vp.Source = "unknown"
		return vp
	}
	vp.Source = source
	if !vp.FixedWidth {
		vp.Width = w
	}
	if !vp.FixedHeight {
		vp.Height = h
	}
	return vp
}

type replayTrace struct {
	Enabled  bool   `json:"enabled"`
	Path     string `json:"path,omitempty"`
	Interval string `json:"interval,omitempty"`
	Bytes    int64  `json:"bytes,omitempty"`
	Error    string `json:"error,omitempty"`
}

func describeReplay(cfg app.Config) replayTrace {
	if cfg.ReplayPath == "" {
		return replayTrace{}
	}
	rt := replayTrace{
		Enabled:  true,
		Path:     cfg.ReplayPath,
		Interval: cfg.ReplayInterval.String(),
	}
	if info, err := os.Stat(cfg.ReplayPath); err == nil {
		rt.Bytes = info.Size()
	} else {
		rt.Error = err.Error()
	}
	return rt
}

// startupTracePayload records the settings the screen actually runs with.
func startupTracePayload(cfg config.Config, probe sizeProbe) map[string]interface{} {
	payload := map[string]interface{}{
		"viewport": resolveViewport(cfg.App, probe),
		"footer":   cfg.App.ShowFooter,
		"notice": map[string]interface{}{
			"text":     cfg.App.Notice,
			"duration": cfg.App.NoticeDuration.Round(time.Millisecond).String(),
		},
		"replay":  describeReplay(cfg.App),
		"logFile": cfg.Logging.FilePath,
		"args":    cfg.Args,
	}
	if cfg.ConfigFile != "" {
		payload["configFile"] = cfg.ConfigFile
	}
	return payload
}
