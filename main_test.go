package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/typelog/internal/app"
	"github.com/atomicstack/typelog/internal/config"
)

func fixedProbe(w, h int) sizeProbe {
	return func() (int, int, string, bool) { return w, h, "stdout", true }
}

func noTerminal() (int, int, string, bool) {
	return 0, 0, "", false
}

func TestResolveViewportFixedSkipsProbe(t *testing.T) {
	called := false
	probe := func() (int, int, string, bool) {
		called = true
		return 0, 0, "", false
	}
	vp := resolveViewport(app.Config{Width: 40, Height: 10}, probe)
	if called {
		t.Fatalf("expected no terminal probe when both dimensions are fixed")
	}
	if vp.Width != 40 || vp.Height != 10 || vp.Source != "flags" {
		t.Fatalf("unexpected viewport %#v", vp)
	}
}

func TestResolveViewportFillsFromTerminal(t *testing.T) {
	vp := resolveViewport(app.Config{Width: 50}, fixedProbe(120, 40))
	if vp.Width != 50 || vp.Height != 40 {
		t.Fatalf("expected fixed width and terminal height, got %#v", vp)
	}
	if !vp.FixedWidth || vp.FixedHeight || vp.Source != "stdout" {
		t.Fatalf("unexpected viewport flags %#v", vp)
	}
}

func TestResolveViewportWithoutTerminal(t *testing.T) {
	vp := resolveViewport(app.Config{}, noTerminal)
	if vp.Source != "unknown" || vp.Width != 0 || vp.Height != 0 {
		t.Fatalf("unexpected viewport %#v", vp)
	}
}

func TestDescribeReplay(t *testing.T) {
	if rt := describeReplay(app.Config{}); rt.Enabled {
		t.Fatalf("expected replay disabled, got %#v", rt)
	}
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("a\nab\n"), 0o644); err != nil {
		t.Fatalf("failed to write replay file: %v", err)
	}
	rt := describeReplay(app.Config{ReplayPath: path, ReplayInterval: 100 * time.Millisecond})
	if !rt.Enabled || rt.Bytes != 5 || rt.Interval != "100ms" || rt.Error != "" {
		t.Fatalf("unexpected replay trace %#v", rt)
	}
	missing := describeReplay(app.Config{ReplayPath: filepath.Join(t.TempDir(), "gone.txt")})
	if missing.Error == "" {
		t.Fatalf("expected stat error for missing file")
	}
}

func TestStartupTracePayload(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:          80,
			ShowFooter:     true,
			Notice:         "saving",
			NoticeDuration: 3 * time.Second,
		},
		Logging:    config.Logging{FilePath: "trace.log", Trace: true},
		ConfigFile: "typelog.yaml",
		Args:       []string{"--notice", "saving"},
	}

	payload := startupTracePayload(cfg, fixedProbe(100, 30))

	vp, ok := payload["viewport"].(viewportTrace)
	if !ok || vp.Width != 80 || vp.Height != 30 {
		t.Fatalf("expected resolved viewport 80x30, got %#v", payload["viewport"])
	}
	notice, ok := payload["notice"].(map[string]interface{})
	if !ok || notice["text"] != "saving" || notice["duration"] != "3s" {
		t.Fatalf("unexpected notice payload %#v", payload["notice"])
	}
	if rt, ok := payload["replay"].(replayTrace); !ok || rt.Enabled {
		t.Fatalf("expected disabled replay, got %#v", payload["replay"])
	}
	if payload["configFile"] != "typelog.yaml" || payload["logFile"] != "trace.log" {
		t.Fatalf("unexpected file settings %#v", payload)
	}
	if payload["footer"] != true {
		t.Fatalf("expected footer true, got %v", payload["footer"])
	}
}
