package cpl

import (
	"go.uber.org/zap"
)

// ZapErrorHandler adapts a zap logger into an ErrorHandler. Classes map to
// levels: Debug to Debug, Warning to Warn, Failure and Fatal to Error
// (GDAL aborts after a Fatal handler returns, so there is no point in
// calling the logger's own Fatal), anything else to Info.
func ZapErrorHandler(log *zap.Logger) ErrorHandler {
	return func(class ErrClass, code int, msg string) {
		fields := []zap.Field{zap.Stringer("class", class), zap.Int("code", code)}
		switch class {
		case ErrDebug:
			log.Debug(msg, fields...)
		case ErrWarning:
			log.Warn(msg, fields...)
		case ErrFailure, ErrFatal:
			log.Error(msg, fields...)
		default:
			log.Info(msg, fields...)
		}
	}
}
