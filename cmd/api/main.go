package main

import (
	"os"

	"github.com/campusreg/studentregistration/internal/pkg/logger"
	"github.com/campusreg/studentregistration/internal/server"
)

// @title Student Registration API
// @version 1.0
// @description API for managing students, courses and enrollments

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
