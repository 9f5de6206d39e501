package config

import (
    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// NewLogger builds the application logger. Production gets JSON output;
// anything else gets the colored development encoder.
func NewLogger(env string) *zap.Logger {
    var cfg zap.Config

    if env == "prod" || env == "production" {
        cfg = zap.NewProductionConfig()
    } else {
        cfg = zap.NewDevelopmentConfig()
        cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
    }

    cfg.OutputPaths = []string{"stdout"}

    logger, err := cfg.Build()
    if err != nil {
        panic("failed to create logger: " + err.Error())
    }
    return logger
}
