package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Engel1110/gaming-room-cust/config"
	"github.com/Engel1110/gaming-room-cust/controllers"
	"github.com/Engel1110/gaming-room-cust/database"
	"github.com/Engel1110/gaming-room-cust/logger"
	"github.com/Engel1110/gaming-room-cust/models"
	"github.com/Engel1110/gaming-room-cust/repository"
	"github.com/Engel1110/gaming-room-cust/routes"
	"github.com/Engel1110/gaming-room-cust/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if err := database.Connect(cfg); err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	// Schema creation is an explicit startup step, run once and idempotent.
	if err := models.Migrate(database.DB); err != nil {
		zlog.Fatal("Migration failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		zlog.Fatal("Failed to connect to redis", zap.Error(err))
	}

	// DI chain
	userRepo := repository.NewGormUserRepository(database.DB)
	cartRepo := repository.NewGormCartLineRepository(database.DB)
	sessionStore := repository.NewRedisSessionStore(redisClient)

	authService := services.NewAuthService(userRepo, zlog)
	sessionService := services.NewSessionService(sessionStore, cfg.JWTSecret, cfg.SessionTTL)
	cartService := services.NewCartService(cartRepo, zlog)
	catalogService := services.NewCatalogService()

	authController := controllers.NewAuthController(authService, sessionService)
	cartController := controllers.NewCartController(cartService)
	catalogController := controllers.NewCatalogController(catalogService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zlog))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	routes.Register(r, authController, cartController, catalogController, sessionService)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Server failed", zap.Error(err))
		}
	}()
	zlog.Info("Gaming room storefront started", zap.String("port", cfg.Port))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited cleanly")
}
