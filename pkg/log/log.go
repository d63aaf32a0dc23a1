// Package log provides structured logging for kernelreg on top of zerolog.
//
// The package owns a single process-wide logger and hands out component
// loggers derived from it. It also bridges the warning system in
// pkg/errors into zerolog, so non-fatal conditions such as a
// ConvergenceWarning show up as structured warn-level events.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/kernelreg/pkg/errors"
)

var (
	mu   sync.RWMutex
	root = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

func init() {
	// Route errors.Warn through zerolog. Warnings carrying
	// MarshalZerologObject are emitted with their structured fields.
	errors.SetZerologWarnFunc(func(warning error) {
		logger := Logger()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().EmbedObject(obj).Msg(warning.Error())
			return
		}
		logger.Warn().Err(warning).Msg("warning")
	})
}

// Logger returns the process-wide logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// SetLogger replaces the process-wide logger. Useful in tests for
// capturing output.
func SetLogger(logger zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	root = logger
}

// SetOutput redirects the process-wide logger to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	root = root.Output(w)
}

// SetLevel sets the minimum level on the process-wide logger.
// Unknown strings fall back to the info level.
func SetLevel(level string) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		l = zerolog.InfoLevel
	}
	mu.Lock()
	defer mu.Unlock()
	root = root.Level(l)
}

// With returns a component logger carrying a "component" field, e.g.
// "kernelmethods" or "kernel".
func With(component string) zerolog.Logger {
	return Logger().With().Str("component", component).Logger()
}

// ForModel returns a logger pre-populated with the model name, the shape
// used by estimator constructors and Fit/Predict instrumentation.
func ForModel(modelName string) zerolog.Logger {
	return Logger().With().Str("model", modelName).Logger()
}
