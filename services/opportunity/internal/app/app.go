package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CyberVigilant/CoopStation-01/pkg/cache"
	"github.com/CyberVigilant/CoopStation-01/pkg/config"
	"github.com/CyberVigilant/CoopStation-01/pkg/database"
	"github.com/CyberVigilant/CoopStation-01/pkg/jwt"
	"github.com/CyberVigilant/CoopStation-01/pkg/logger"
	"github.com/CyberVigilant/CoopStation-01/pkg/middleware"
	"github.com/CyberVigilant/CoopStation-01/pkg/queue"
	oppHTTP "github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/controller/http"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/repo/persistent"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, notifications disabled: %v", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	oppRepo := persistent.NewOpportunityRepository(a.db)

	oppUseCase := usecase.NewOpportunityUseCase(
		oppRepo,
		a.redisClient,
		a.queueClient,
		a.log,
	)

	oppHandler := oppHTTP.NewOpportunityHandler(oppUseCase)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation (generated by swag init)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/opportunities", oppHandler.List)
		api.GET("/opportunities/:id", oppHandler.Get)
		api.GET("/categories", oppHandler.ListCategories)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(a.jwtService), middleware.AdminOnly())
		admin.Use(middleware.RateLimitMiddleware(a.redisClient, 30, time.Minute))
		{
			admin.POST("/opportunities", oppHandler.Create)
			admin.PUT("/opportunities/:id", oppHandler.Update)
			admin.DELETE("/opportunities/:id", oppHandler.Delete)
			admin.GET("/opportunities/:id/versions", oppHandler.ListVersions)
			admin.POST("/opportunities/import", oppHandler.Import)
		}
	}

	a.httpServer = &http.Server{
		Addr:    a.cfg.ServerHost + ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Opportunity service starting on %s:%s", a.cfg.ServerHost, a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down opportunity service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		a.queueClient.Close()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Opportunity service exited")
	return nil
}
