// Package logger provides structured logging for the application, backed by
// zap. Verbosity follows the CLI convention of repeated -v flags: 0 shows
// info and above, 1 adds debug, 2 adds trace.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields carries structured context attached to log messages.
type Fields map[string]interface{}

// Logger is the logging interface used throughout the application.
type Logger interface {
	// Debug logs at debug level. Shown when verbosity >= 1.
	Debug(msg string)

	// Info logs at info level.
	Info(msg string)

	// Warn logs at warn level.
	Warn(msg string)

	// Error logs at error level.
	Error(msg string)

	// Trace logs at trace level. Shown when verbosity >= 2.
	Trace(msg string)

	// WithFields returns a Logger that includes the given fields in every
	// subsequent message.
	WithFields(fields Fields) Logger
}

// Config configures a new Logger.
type Config struct {
	// Verbosity maps repeated -v flags to levels: 0 info, 1 debug, 2 trace.
	Verbosity int

	// Output is where log lines are written. Defaults to os.Stderr, keeping
	// stdout free for the progress line and reports.
	Output io.Writer

	// JSON switches from the human-readable console encoder to JSON lines.
	JSON bool
}

type zapLogger struct {
	z         *zap.Logger
	verbosity int
}

// New creates a Logger from cfg.
//
// Example:
//
//	log := logger.New(logger.Config{Verbosity: 1})
//	log.WithFields(logger.Fields{"steps": 150}).Debug("indicator created")
func New(cfg Config) Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder

	var enc zapcore.Encoder
	if cfg.JSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(cfg.Output), levelFor(cfg.Verbosity))

	return &zapLogger{
		z:         zap.New(core),
		verbosity: cfg.Verbosity,
	}
}

func levelFor(verbosity int) zapcore.LevelEnabler {
	if verbosity >= 1 {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func (l *zapLogger) Debug(msg string) { l.z.Debug(msg) }
func (l *zapLogger) Info(msg string)  { l.z.Info(msg) }
func (l *zapLogger) Warn(msg string)  { l.z.Warn(msg) }
func (l *zapLogger) Error(msg string) { l.z.Error(msg) }

// Trace is emitted through zap's debug level with a marker prefix; zap has
// no level below debug.
func (l *zapLogger) Trace(msg string) {
	if l.verbosity >= 2 {
		l.z.Debug("TRACE: " + msg)
	}
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return &zapLogger{
		z:         l.z.With(zf...),
		verbosity: l.verbosity,
	}
}

// Nop returns a Logger that discards everything. Useful as a default in
// packages whose callers do not care about logging.
func Nop() Logger {
	return &zapLogger{z: zap.NewNop()}
}
