// Package logger wraps log/slog with the handler setup shared by every command.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/smmpanel/panel/internal/shared/config"
)

var (
	logger      *slog.Logger
	loggerMu    sync.RWMutex
	atomicLevel = new(slog.LevelVar)
)

// Init builds the process logger from cfg and installs it as the slog default.
func Init(cfg *config.LoggerConfig) error {
	atomicLevel.Set(ParseLevel(cfg.Level))

	var writer io.Writer
	switch strings.ToLower(cfg.OutputPath) {
	case "stdout", "":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		file, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		writer = file
	}

	// warn and error carry source locations; debug mode adds them everywhere
	sourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.Debug {
		sourceLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: atomicLevel})
	} else {
		base = newTintHandler(writer, atomicLevel, !isTerminal(writer))
	}

	set(slog.New(NewSourceLevelHandler(base, sourceLevels...)))
	return nil
}

// ParseLevel maps a config level name onto a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func newTintHandler(w io.Writer, level slog.Leveler, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func set(l *slog.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
	slog.SetDefault(l)
}

func SetLevel(level slog.Level) {
	atomicLevel.Set(level)
}

// Get returns the process logger, creating a console logger on first use.
func Get() *slog.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}

	base := newTintHandler(os.Stdout, atomicLevel, !isTerminal(os.Stdout))
	l = slog.New(NewSourceLevelHandler(base, slog.LevelWarn, slog.LevelError))
	set(l)
	return l
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}

type sourceLevelHandler struct {
	next   slog.Handler
	levels map[slog.Level]bool
}

// NewSourceLevelHandler wraps next so that records at the given levels carry
// their call site. next should be configured with AddSource disabled.
func NewSourceLevelHandler(next slog.Handler, levels ...slog.Level) slog.Handler {
	enabled := make(map[slog.Level]bool, len(levels))
	for _, l := range levels {
		enabled[l] = true
	}
	return &sourceLevelHandler{next: next, levels: enabled}
}

func (h *sourceLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sourceLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.levels[r.Level] && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := frames.Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceLevelHandler{next: h.next.WithAttrs(attrs), levels: h.levels}
}

func (h *sourceLevelHandler) WithGroup(name string) slog.Handler {
	return &sourceLevelHandler{next: h.next.WithGroup(name), levels: h.levels}
}
