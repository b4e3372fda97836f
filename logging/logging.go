// Package logging is a thin level gate over the standard library logger.
// The CLI configures it once from the logging section of the config file;
// everything else calls Infof and Debugf.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level controls how much gets logged.
type Level int

const (
	// Quiet suppresses everything.
	Quiet Level = iota
	// Info logs progress messages.
	Info
	// Debug additionally logs diagnostics.
	Debug
)

// ParseLevel maps a config level string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "quiet":
		return Quiet, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	}
	return Quiet, fmt.Errorf("unknown log level %q", s)
}

var (
	mu     sync.Mutex
	level  = Info
	logger = log.New(os.Stderr, "", log.LstdFlags)
)

// Configure sets the level and output destination.
func Configure(l Level, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	logger = log.New(w, "", log.LstdFlags)
}

// Infof logs a progress message.
func Infof(format string, args ...any) {
	logf(Info, format, args...)
}

// Debugf logs a diagnostic message.
func Debugf(format string, args ...any) {
	logf(Debug, format, args...)
}

func logf(min Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level < min {
		return
	}
	logger.Printf(format, args...)
}
