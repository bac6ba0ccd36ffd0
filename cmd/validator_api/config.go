package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/html-validator/internal/storage/factory"
	"github.com/DjordjeVuckovic/html-validator/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ValidatorAPIConfig struct {
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*ValidatorAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/validator_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &ValidatorAPIConfig{
		StorageConfig: *storageCfg,
	}, nil
}
