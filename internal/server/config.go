package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/html-validator/pkg/config/env"
	"github.com/DjordjeVuckovic/html-validator/pkg/utils"
)

const DefaultMaxDocumentBytes int64 = 1 << 20

type Config struct {
	Port             string
	UseHttp2         bool
	CorsOrigins      []string
	MaxDocumentBytes int64
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/validator_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	var origins []string
	if corsOriginsEnv := os.Getenv("CORS_ORIGINS"); corsOriginsEnv != "" {
		origins = utils.RemoveEmptyStrings(utils.SplitAndTrim(corsOriginsEnv, ","))
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxBytes := DefaultMaxDocumentBytes
	if v := os.Getenv("MAX_DOCUMENT_BYTES"); v != "" {
		maxBytes, err = strconv.ParseInt(v, 10, 64)
		if err != nil || maxBytes < 1 {
			return nil, fmt.Errorf("invalid MAX_DOCUMENT_BYTES value %q", v)
		}
	}

	return &Config{
		Port:             port,
		UseHttp2:         useHttp2,
		CorsOrigins:      origins,
		MaxDocumentBytes: maxBytes,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
