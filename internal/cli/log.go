package cli

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	uitree "github.com/grindlemire/go-uitree"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "uitree",
	})
}

// sceneLog scopes log lines to one scene file and times its build.
type sceneLog struct {
	*log.Logger
	start time.Time
}

func startScene(ctx context.Context, path string) *sceneLog {
	l := loggerFrom(ctx).With("scene", filepath.Base(path))
	l.Debug("loading scene", "path", path)
	return &sceneLog{Logger: l, start: time.Now()}
}

// built reports the size of the finished screen and how long it took.
func (l *sceneLog) built(s *uitree.Screen) {
	l.Info("Built scene",
		"roots", len(s.Roots()),
		"elements", s.Registry().Len(),
		"took", time.Since(l.start).Round(time.Microsecond),
	)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFrom falls back to log.Default() for commands run without the root's
// pre-run hook.
func loggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
