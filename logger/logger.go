package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

var logger *slog.Logger

var output io.Writer = os.Stderr

// Init installs the process logger. verbose enables debug records, json
// switches from the colored text handler to JSON lines.
func Init(verbose bool, json bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if json {
		logger = slog.New(
			slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}),
		)
	} else {
		logger = slog.New(
			tint.NewHandler(output, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			}))
	}
	slog.SetDefault(logger)
}

// SetOutput redirects log output. Call Init afterwards to apply it.
func SetOutput(w io.Writer) {
	output = w
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

type summaryStatement struct {
	level slog.Level
	msg   string
	args  []any
}

var summary = []summaryStatement{}

// AddSummaryError queues an error to be repeated by Close.
func AddSummaryError(msg string, args ...any) {
	summary = append(summary, summaryStatement{slog.LevelError, msg, args})
}

// Close flushes queued summary statements between separator lines.
func Close() {
	if len(summary) == 0 {
		return
	}
	line := []byte("------------\n")

	output.Write(line)
	for _, i := range summary {
		logger.Log(context.TODO(), i.level, i.msg, i.args...)
	}
	output.Write(line)
	summary = summary[:0]
}

func init() {
	Init(false, false)
}
