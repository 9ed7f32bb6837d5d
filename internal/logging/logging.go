package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Debug-level output is opt-in; tool output goes to stdout, logs to stderr.
var (
	mu   sync.Mutex
	out  io.Writer = os.Stderr
	file *os.File
)

// SetDebugFile mirrors all log output to the given file in addition to
// stderr. Call once at startup; a failure to open falls back to stderr only.
func SetDebugFile(path string) error {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	file = f
	out = io.MultiWriter(os.Stderr, f)
	return nil
}

// Close releases the debug file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	out = os.Stderr
	return err
}

// New returns a logger scoped to one component ("analysis", "template", ...).
func New(component string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: false,
		Prefix:          component,
	})
	if os.Getenv("DIARO_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
