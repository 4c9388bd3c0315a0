package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/chronicle/internal/config"
	"github.com/agenthands/chronicle/internal/logger"
	"github.com/agenthands/chronicle/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CHRONICLE_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using built-in defaults", cfgPath, err)
		cfg = config.Default()
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	if err := logger.Initialize(cfg.Server.JSONLogs); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	srv := server.NewServer(cfg)
	r := srv.SetupRouter()

	logger.Logger.Infow("Starting server",
		logger.FieldAddress, ":"+cfg.Server.Port,
		"static", cfg.Sources.UseStaticDataset,
		"live", cfg.Sources.UseLiveQuery)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Logger.Fatalw("Server stopped", logger.FieldError, err)
	}
}
