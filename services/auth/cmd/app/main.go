package main

import (
	"os"

	"github.com/CyberVigilant/CoopStation-01/pkg/config"
	"github.com/CyberVigilant/CoopStation-01/services/auth/internal/app"
)

// @title           CoopStation Auth Service API
// @version         1.0
// @description     Account and student profile service for the CoopStation co-op opportunity platform

// @host      localhost:8001
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Auth issues tokens, so an unset secret is a hard error here.
	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	if os.Getenv("SERVER_PORT") == "" {
		cfg.ServerPort = "8001"
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
