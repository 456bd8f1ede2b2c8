package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger the client logging interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a Logger writing to w.
func New(w io.Writer) Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.DebugLevel)
	return &zapLogger{sugar: zap.New(core).Sugar()}
}

// NewWithZap creates a Logger over an existing zap sugared logger.
func NewWithZap(sugar *zap.SugaredLogger) Logger {
	return &zapLogger{sugar: sugar}
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l *zapLogger) Debug(v ...interface{})                 { l.sugar.Debug(v...) }
func (l *zapLogger) Debugf(format string, v ...interface{}) { l.sugar.Debugf(format, v...) }
func (l *zapLogger) Info(v ...interface{})                  { l.sugar.Info(v...) }
func (l *zapLogger) Infof(format string, v ...interface{})  { l.sugar.Infof(format, v...) }
func (l *zapLogger) Warn(v ...interface{})                  { l.sugar.Warn(v...) }
func (l *zapLogger) Warnf(format string, v ...interface{})  { l.sugar.Warnf(format, v...) }
func (l *zapLogger) Error(v ...interface{})                 { l.sugar.Error(v...) }
func (l *zapLogger) Errorf(format string, v ...interface{}) { l.sugar.Errorf(format, v...) }
