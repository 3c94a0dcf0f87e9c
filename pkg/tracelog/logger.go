// Package tracelog wraps go.uber.org/zap behind the minimal logging shape
// this module's hot path expects: a Printf-style call for ad-hoc messages
// plus structured Infow/Warnw for scene load and render stats.
package tracelog

import "go.uber.org/zap"

// Logger is the interface every package that logs depends on, so the
// shading/render hot path never imports zap directly.
type Logger interface {
	Printf(format string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

// zapLogger adapts a *zap.SugaredLogger to Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a production zap logger (JSON, info level) wrapped as Logger.
func New() (Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: logger.Sugar()}, nil
}

// NewDevelopment builds a human-readable console logger. The CLI uses New,
// not this constructor.
func NewDevelopment() (Logger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: logger.Sugar()}, nil
}

// Printf implements Logger.
func (l *zapLogger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Infow implements Logger.
func (l *zapLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warnw implements Logger.
func (l *zapLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}
