package logger

import (
	"github.com/facebookincubator/go-belt/tool/logger"
)

type Level = logger.Level

const (
	LevelFatal   = logger.LevelFatal
	LevelError   = logger.LevelError
	LevelWarning = logger.LevelWarning

	// LevelInfo is where per-identifier progress is reported.
	LevelInfo = logger.LevelInfo

	// LevelDebug adds per-stage raster sizes.
	LevelDebug = logger.LevelDebug

	// LevelTrace is only effective with the debug_trace build tag.
	LevelTrace = logger.LevelTrace
)
