package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/showreel/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Log   *logger.Logger
	close func() error
}

// newAppContext opens the log destination. The TUI owns the terminal, so logs only go
// to a file.
func newAppContext(flags *rootFlags) (*AppContext, error) {
	var (
		writer io.Writer = io.Discard
		closer           = func() error { return nil }
	)
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writer, closer = f, f.Close
	}

	log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: writer, Component: "showreel"})
	if err != nil {
		_ = closer()
		return nil, fmt.Errorf("configure logger: %w", err)
	}
	return &AppContext{Log: log, close: closer}, nil
}

// Close flushes and releases the log destination.
func (a *AppContext) Close() error {
	if a == nil || a.close == nil {
		return nil
	}
	return a.close()
}
