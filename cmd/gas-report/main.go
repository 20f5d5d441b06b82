package main

import (
	"log"
	"os"

	"github.com/cyphera/gas-cost-report/internal/cli"
	"github.com/cyphera/gas-cost-report/internal/config"
	"github.com/cyphera/gas-cost-report/internal/constants"
	"github.com/cyphera/gas-cost-report/internal/helpers"
	"github.com/cyphera/gas-cost-report/internal/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables.", err)
	}

	stage, ok := helpers.ResolveStage(os.Getenv(constants.EnvStage))
	if !ok {
		log.Printf("Warning: invalid %s value %q, defaulting to '%s'", constants.EnvStage, os.Getenv(constants.EnvStage), stage)
	}

	logger.InitLogger(stage)
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid pricing configuration", zap.Error(err))
	}

	if err := cli.NewRootCommand(cfg, os.Stdout).Execute(); err != nil {
		logger.Error("Gas cost report failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
