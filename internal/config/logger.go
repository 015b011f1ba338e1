package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds a timestamped logger writing to w. The level comes from
// LOG_LEVEL and defaults to info; unknown values also mean info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		Level:           level,
	})
}
