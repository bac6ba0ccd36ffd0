// Package main HTML Validator API
// @title HTML Validator API
// @version 1.0
// @description Validates HTML documents against a minimal tag grammar and keeps a history of validation runs
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/html-validator/docs"
	"github.com/DjordjeVuckovic/html-validator/internal/router"
	"github.com/DjordjeVuckovic/html-validator/internal/server"
	"github.com/DjordjeVuckovic/html-validator/internal/service"
	"github.com/DjordjeVuckovic/html-validator/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, nil).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	repo, healthChecker, err := factory.NewRepository(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create run repository", "type", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	s.SetHealthChecker(healthChecker)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "HTML Validator API is running")
	})

	validationRouter := router.NewValidationRouter(s.Echo, service.NewValidator(repo))
	validationRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	repo.Close()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
