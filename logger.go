package svgnative

import (
	"log/slog"
	"sync/atomic"
)

var (
	silent = slog.New(slog.DiscardHandler)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(silent)
}

// SetLogger routes diagnostics from svgnative, its backends and the
// recording package to l. Nothing is logged until SetLogger is called;
// SetLogger(nil) silences output again.
//
// Records are emitted at two levels. Debug reports calls that were accepted
// but had no effect: path edits after Finalize, DrawPath with neither fill
// nor stroke, images with an empty area, surface binding. Warn reports
// input that was drawn differently from what was asked, such as a gradient
// with a singular transform or an unknown spread method, and recordings
// finished with unmatched Save calls.
//
//	svgnative.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
//
// It may be called concurrently with rendering.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger. Renderers capture it
// when they are created.
func Logger() *slog.Logger {
	return logger.Load()
}
