package infra

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/lunchly/internal/config"
	"os"
)

// Logger builds json logger writing to stdout
func Logger(cfg config.LogCfg) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level - %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, nil
}
