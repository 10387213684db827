package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netdraw/pkg/diagram"
)

// newLogger creates the netdraw logger: timestamps as "HH:MM:SS.ms"
// (e.g. "14:32:01.45") and every line prefixed with the app name.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// progress times one CLI stage and logs its completion with structured
// fields. It is meant for a single goroutine.
type progress struct {
	logger *log.Logger
	stage  string
	start  time.Time
}

// newProgress starts timing stage (for example "draw" or "layout").
func newProgress(l *log.Logger, stage string) *progress {
	return &progress{logger: l, stage: stage, start: time.Now()}
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// done logs msg with the stage, any extra key/value pairs and the elapsed
// time. Example output: "INFO Rendered stage=draw blocks=4 formats=svg elapsed=1ms"
func (p *progress) done(msg string, keyvals ...any) {
	kv := make([]any, 0, len(keyvals)+4)
	kv = append(kv, "stage", p.stage)
	kv = append(kv, keyvals...)
	kv = append(kv, "elapsed", p.elapsed())
	p.logger.Info(msg, kv...)
}

// logDiagram writes the computed geometry at debug level, one line per block
// and per skip connection.
func logDiagram(l *log.Logger, d *diagram.Diagram) {
	for _, b := range d.Blocks {
		l.Debug("block",
			"index", b.Index,
			"channels", b.Channels,
			"pool", b.Pool,
			"x", b.X, "y", b.Y,
			"width", b.Width, "height", b.Height,
			"color", b.Palette)
	}
	for _, r := range d.Routes {
		l.Debug("connection", "index", r.Index, "start", r.Start, "end", r.End, "baseline", r.Baseline)
	}
}

type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger attaches l to ctx for the command's pipeline run.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
