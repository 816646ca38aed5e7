package rastercore

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/rastercore/coarse"
	"github.com/gogpu/rastercore/fine"
	"github.com/gogpu/rastercore/gpucore"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger can
// be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for rastercore and its coarse/fine/
// gpucore sub-packages. By default rastercore produces no log output.
//
// Log levels:
//   - [slog.LevelDebug]: one line per coarse and fine dispatch, with its
//     dimensions
//   - [slog.LevelWarn]: recoverable anomalies (bump overflow, malformed PTCL)
//
// Nothing is logged at [slog.LevelInfo].
//
// SetLogger is safe for concurrent use. Pass nil to restore silent
// behavior.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	coarse.SetLogger(l)
	fine.SetLogger(l)
	gpucore.SetLogger(l)
}

// Logger returns the current logger used by rastercore.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
