package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields to be added to a logger
type Fields map[string]interface{}

// Logger carries a sugared zap logger plus accumulated key/value fields
type Logger struct {
	logger *zap.SugaredLogger
	fields []interface{}
}

var (
	level            = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	zapSugaredLogger *zap.SugaredLogger
)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		zapLogger = zap.NewNop()
	}
	zapSugaredLogger = zapLogger.Sugar()
}

// SetDebug switches the process wide level between debug and info
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.InfoLevel)
}

// Sync flushes buffered entries
func Sync() {
	_ = zapSugaredLogger.Sync()
}

// Log returns an empty field logger
func Log() Logger {
	return Logger{
		logger: zapSugaredLogger,
		fields: []interface{}{},
	}
}

// WithField adds a key/value pair to its fields
func (l Logger) WithField(key string, value interface{}) Logger {
	fields := make([]interface{}, 0, len(l.fields)+2)
	fields = append(fields, l.fields...)
	l.fields = append(fields, key, value)
	return l
}

// WithFields adds multiple key/value pairs to its fields
func (l Logger) WithFields(kvs Fields) Logger {
	for k, v := range kvs {
		l = l.WithField(k, v)
	}
	return l
}

// WithErr is shorthand for WithField("err", err)
func (l Logger) WithErr(err error) Logger {
	return l.WithField("err", err)
}

func (l Logger) Debug(args ...interface{}) {
	l.logger.With(l.fields...).Debug(args...)
}

func (l Logger) Info(args ...interface{}) {
	l.logger.With(l.fields...).Info(args...)
}

func (l Logger) Warn(args ...interface{}) {
	l.logger.With(l.fields...).Warn(args...)
}

func (l Logger) Error(args ...interface{}) {
	l.logger.With(l.fields...).Error(args...)
}

func (l Logger) Panic(args ...interface{}) {
	l.logger.With(l.fields...).Panic(args...)
}
