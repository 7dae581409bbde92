package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "vi-snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logNotice receives setup failures; it is written before the screen opens
var logNotice io.Writer = os.Stderr

// setupLogging returns the process logger and its open file
// The terminal belongs to the UI, so without debug every record is discarded
// The standard library logger is redirected the same way for dependencies that use it
func setupLogging(debug bool, dir, level string) (zerolog.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(logNotice, "vi-snake: debug logging disabled: %v\n", err)
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("vi-snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(logNotice, "vi-snake: log rotation failed, appending: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(logNotice, "vi-snake: debug logging disabled: %v\n", err)
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}
	log.SetOutput(f)

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Int("pid", os.Getpid()).Logger()
	return logger, f
}
