package llogs

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/airesearchhub/site/metal/env"
)

func TestFilesLogs(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	dir := t.TempDir()
	e := &env.Environment{
		App:  env.AppEnvironment{Name: "research-hub"},
		Logs: env.LogsEnvironment{Level: "warn", Dir: dir + "/log-%s.txt", DateFormat: "2006"},
	}

	d, err := MakeFilesLogs(e)
	if err != nil {
		t.Fatalf("make logs: %v", err)
	}

	fl := d.(FilesLogs)
	if !strings.HasPrefix(fl.path, dir) {
		t.Fatalf("path not in dir")
	}

	slog.Info("hidden")
	slog.Warn("visible")

	if !fl.Close() {
		t.Fatalf("close")
	}

	content, err := os.ReadFile(fl.path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	if strings.Contains(string(content), "hidden") || !strings.Contains(string(content), "visible") {
		t.Fatalf("unexpected log content %q", content)
	}
}

func TestDefaultPath(t *testing.T) {
	e := &env.Environment{Logs: env.LogsEnvironment{Dir: "foo-%s", DateFormat: "2006"}}
	fl := FilesLogs{env: e}
	p := fl.DefaultPath()
	if !strings.HasPrefix(p, "foo-") {
		t.Fatalf("path prefix")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}

	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}
