// Package logging is a thin wrapper of the zap logging library.
//
// Per-package log levels come from the environment: CPLGO_LOG_<PKG>
// overrides CPLGO_LOG, and the first letter selects the level (V or D
// debug, I info, W warning, E error, F fatal). Unset means info.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root = func() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		os.Stderr,
		zap.DebugLevel,
	)
	return zap.New(core)
}()

// Named creates a named logger at the root level.
func Named(pkg string) *zap.Logger {
	return root.Named(pkg)
}

// New creates a named logger with its level read from the environment.
// Conventionally this appears next to the package docstring:
//
//	var logger = logging.New("cpltool")
func New(pkg string) *zap.Logger {
	return Named(pkg).WithOptions(zap.IncreaseLevel(envLevel(pkg)))
}

func envLevel(pkg string) zapcore.Level {
	v, ok := os.LookupEnv("CPLGO_LOG_" + strings.ToUpper(pkg))
	if !ok {
		v = os.Getenv("CPLGO_LOG")
	}
	return parseLevel(v)
}

func parseLevel(v string) zapcore.Level {
	if v == "" {
		return zapcore.InfoLevel
	}
	switch v[0] {
	case 'V', 'D':
		return zapcore.DebugLevel
	case 'I':
		return zapcore.InfoLevel
	case 'W':
		return zapcore.WarnLevel
	case 'E':
		return zapcore.ErrorLevel
	case 'F', 'N':
		return zapcore.DPanicLevel
	}
	return zapcore.InfoLevel
}
