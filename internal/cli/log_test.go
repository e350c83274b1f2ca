package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	uitree "github.com/grindlemire/go-uitree"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    log.Level
		logFunc  func(*log.Logger)
		wantLog  bool
		contains string
	}{
		{
			name:     "info at info level",
			level:    log.InfoLevel,
			logFunc:  func(l *log.Logger) { l.Info("hello") },
			wantLog:  true,
			contains: "hello",
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("hidden") },
			wantLog: false,
		},
		{
			name:     "debug at debug level",
			level:    log.DebugLevel,
			logFunc:  func(l *log.Logger) { l.Debug("visible") },
			wantLog:  true,
			contains: "visible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			got := buf.String()
			if tt.wantLog && !strings.Contains(got, tt.contains) {
				t.Errorf("log output %q does not contain %q", got, tt.contains)
			}
			if !tt.wantLog && got != "" {
				t.Errorf("expected no output, got %q", got)
			}
		})
	}
}

func TestLoggerFrom(t *testing.T) {
	if l := loggerFrom(context.Background()); l != log.Default() {
		t.Error("expected the default logger for a bare context")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	if got := loggerFrom(withLogger(context.Background(), l)); got != l {
		t.Error("expected the attached logger")
	}
}

func TestSceneLog(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))

	sl := startScene(ctx, "testdata/scene.toml")
	s, err := uitree.NewScreen(uitree.WithSize(200, 100), uitree.WithLogger(sl.Logger))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddElement(uitree.New(s, "a", uitree.V(0, 0), uitree.V(10, 10))); err != nil {
		t.Fatal(err)
	}
	sl.built(s)

	got := buf.String()
	for _, want := range []string{"uitree:", "Built scene", "scene=scene.toml", "roots=1", "elements=1", "took="} {
		if !strings.Contains(got, want) {
			t.Errorf("log output %q does not contain %q", got, want)
		}
	}
	if strings.Contains(got, "loading scene") {
		t.Errorf("debug line leaked at info level: %q", got)
	}
}
