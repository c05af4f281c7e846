package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
	logTimestampFieldConstant            = "ts"
	logMessageFieldConstant              = "msg"
	logLevelFieldConstant                = "level"
	logCallerFieldConstant               = "caller"
	logLoggerFieldConstant               = "logger"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// UnmarshalText normalizes configured levels so " DEBUG " decodes as debug.
func (level *LogLevel) UnmarshalText(text []byte) error {
	*level = LogLevel(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

// UnmarshalText normalizes configured formats.
func (format *LogFormat) UnmarshalText(text []byte) error {
	*format = LogFormat(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

// LoggerFactory builds zap.Logger instances writing diagnostics to a sink
// separate from the report stream.
type LoggerFactory struct {
	sink io.Writer
}

// NewLoggerFactory constructs a factory that logs to standard error.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{sink: os.Stderr}
}

// NewLoggerFactoryWithSink constructs a factory that logs to sink.
func NewLoggerFactoryWithSink(sink io.Writer) *LoggerFactory {
	if sink == nil {
		sink = os.Stderr
	}
	return &LoggerFactory{sink: sink}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	zapLogLevel, levelExists := logLevelMapping[requestedLogLevel]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	encoderConfiguration := zapcore.EncoderConfig{
		TimeKey:        logTimestampFieldConstant,
		LevelKey:       logLevelFieldConstant,
		NameKey:        logLoggerFieldConstant,
		CallerKey:      logCallerFieldConstant,
		MessageKey:     logMessageFieldConstant,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	switch requestedLogFormat {
	case LogFormatStructured:
		encoder = zapcore.NewJSONEncoder(encoderConfiguration)
	case LogFormatConsole:
		encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	default:
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(factory.sink), zap.NewAtomicLevelAt(zapLogLevel))
	return zap.New(core, zap.AddCaller()), nil
}
