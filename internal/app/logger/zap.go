package logger

import (
	"fmt"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/config"
	"go.uber.org/zap"
)

func Initialize(config config.Config) error {
	level, err := zap.ParseAtomicLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("error while setting atomic level to zap logger: %w", err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level
	if len(config.LogOutput) != 0 {
		zapConfig.OutputPaths = []string{config.LogOutput}
		zapConfig.ErrorOutputPaths = []string{config.LogOutput}
	}

	log, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("error while building zap logger: %w", err)
	}

	zap.ReplaceGlobals(log)

	return nil
}
