package logger

import "log/slog"

// Interface is the structured logger injected into repositories, use cases and handlers.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type slogLogger struct {
	logger *slog.Logger
}

func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogLogger{logger: l}
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...any) { l.logger.Debug(msg, keysAndValues...) }
func (l *slogLogger) Infow(msg string, keysAndValues ...any)  { l.logger.Info(msg, keysAndValues...) }
func (l *slogLogger) Warnw(msg string, keysAndValues ...any)  { l.logger.Warn(msg, keysAndValues...) }
func (l *slogLogger) Errorw(msg string, keysAndValues ...any) { l.logger.Error(msg, keysAndValues...) }
