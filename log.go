package grove

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig configures the zap logger built by NewLogger.
type LogConfig struct {
	// Level is a zap level name ("debug", "info", ...). Unknown names fall
	// back to info.
	Level string `yaml:"level"`
	// Development selects colored console output instead of JSON.
	Development bool `yaml:"development"`
}

// NewLogger builds a zap logger from cfg.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	return zapConfig.Build(zap.AddCaller())
}

func vecField(key string, v Vec2) zap.Field {
	return zap.Float64s(key, []float64{v.X, v.Y})
}
