package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/campusreg/studentregistration/internal/config"
	"github.com/campusreg/studentregistration/internal/middleware"
	"github.com/campusreg/studentregistration/internal/pkg/logger"
	"github.com/campusreg/studentregistration/internal/webui"
	"github.com/campusreg/studentregistration/internal/webui/apiclient"
)

func main() {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	lgr := log.Logger

	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(lgr), gin.Recovery())
	router.LoadHTMLGlob(filepath.Join("web", "templates", "*.html"))

	api := apiclient.New(cfg.Web.APIBaseURL)
	webui.NewHandler(api, lgr).Register(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Web.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		lgr.Info().Str("addr", srv.Addr).Str("api", cfg.Web.APIBaseURL).Msg("Web front end listening")
		serverErrors <- srv.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			lgr.Error().Err(err).Msg("Web server failed")
			os.Exit(1)
		}
	case sig := <-osSignals:
		lgr.Info().Str("signal", sig.String()).Msg("Received OS signal, shutting down...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lgr.Error().Err(err).Msg("Web server shutdown error")
		os.Exit(1)
	}
	lgr.Info().Msg("Web front end stopped.")
}
