package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
	maxLogSize  = 10 << 20
)

// setupLogging routes the standard logger to logs/snake.log when debug is
// set and discards it otherwise; the terminal frontend owns stdout and
// stderr while a game runs. An oversized log is renamed with a timestamp
// before the new one is opened. The returned file, if any, must be closed
// by the caller.
func setupLogging(debug bool) *os.File {
	log.SetOutput(io.Discard)
	if !debug {
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil
	}
	path := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snake-%s.log", time.Now().Format("20060102-150405")))
		// On failure the old file keeps growing.
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("logging started (pid %d)", os.Getpid())
	return f
}
