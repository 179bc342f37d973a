package main

import (
	"os"

	"github.com/CyberVigilant/CoopStation-01/pkg/config"
	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/app"
)

// @title           CoopStation Engagement Service API
// @version         1.0
// @description     Submissions, ratings, reports, bookmarks and the engagement leaderboard

// @host      localhost:8002
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

	if os.Getenv("SERVER_PORT") == "" {
		cfg.ServerPort = "8002"
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
