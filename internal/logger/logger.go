package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L receives every mockdiff log line. Until Init turns logging on it writes
// nowhere, so library code can log unconditionally.
var L *slog.Logger = discard()

const (
	logPrefix     = "mockdiff-"
	logSuffix     = ".log"
	dayLayout     = "2006-01-02"
	retentionDays = 30
)

// Options selects where log lines go.
type Options struct {
	Enabled bool
	LogDir  string     // empty means ~/.mockdiff/logs
	Level   slog.Level // zero means info
	Writer  io.Writer  // overrides LogDir, mostly for tests
}

// Init replaces L according to opts. Both binaries call it once, right after
// reading config.
func Init(opts Options) error {
	if !opts.Enabled {
		L = discard()
		return nil
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}

	w := opts.Writer
	if w == nil {
		f, err := openDayFile(opts.LogDir, time.Now())
		if err != nil {
			return err
		}
		w = f
	}

	L = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openDayFile appends to today's file in dir, pruning expired ones first.
func openDayFile(dir string, now time.Time) (*os.File, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".mockdiff", "logs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	cleanOldLogs(dir, now)

	name := filepath.Join(dir, logPrefix+now.Format(dayLayout)+logSuffix)
	return os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

// ParseLevel maps a config string to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// cleanOldLogs deletes mockdiff-<day>.log files dated before the retention
// window. Anything it cannot read or parse is left in place.
func cleanOldLogs(dir string, now time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	cutoff := now.AddDate(0, 0, -retentionDays)
	for _, entry := range entries {
		day, ok := strings.CutPrefix(entry.Name(), logPrefix)
		if !ok {
			continue
		}
		day, ok = strings.CutSuffix(day, logSuffix)
		if !ok {
			continue
		}
		if t, err := time.Parse(dayLayout, day); err == nil && t.Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, entry.Name()))
		}
	}
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
