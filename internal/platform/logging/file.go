package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation controls when a log file is rolled over and how many old files
// are kept. Zero values use lumberjack's defaults (100 MB, keep all).
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// OpenFile returns a size-rotated writer appending to path. The directory is
// created on first write. Close it on shutdown.
func OpenFile(path string, r Rotation) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    r.MaxSizeMB,
		MaxBackups: r.MaxBackups,
		MaxAge:     r.MaxAgeDays,
		Compress:   r.Compress,
	}
}
