package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jdjewellers/storefront-backend/common/errors"
	"github.com/jdjewellers/storefront-backend/common/logger"
	"github.com/jdjewellers/storefront-backend/config"
	"github.com/jdjewellers/storefront-backend/controllers"
	"github.com/jdjewellers/storefront-backend/database"
	"github.com/jdjewellers/storefront-backend/kafka"
	pkgaws "github.com/jdjewellers/storefront-backend/pkg/aws"
	"github.com/jdjewellers/storefront-backend/repository"
	"github.com/jdjewellers/storefront-backend/routes"
	"github.com/jdjewellers/storefront-backend/services"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	ctx := context.Background()

	// --- Storage collaborators ---

	mongoDB, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	pgDB, err := database.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		zap.L().Fatal("Failed to connect to Postgres", zap.Error(err))
	}

	redisClient := database.NewRedisClient(cfg.RedisURL)

	awsCfg, err := pkgaws.LoadConfig(ctx, cfg.AWSRegion)
	if err != nil {
		zap.L().Fatal("Failed to load AWS config", zap.Error(err))
	}
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3Endpoint != ""
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = sdkaws.String(cfg.S3Endpoint)
		}
	})

	var publisher kafka.Publisher = kafka.NoopPublisher{}
	if cfg.KafkaBrokers != "" {
		producer := kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","))
		defer producer.Close()
		publisher = producer
	}

	var snsClient pkgaws.SNSPublisher
	if cfg.SNSOrderTopicArn != "" {
		snsClient = pkgaws.NewSNSClient(awsCfg)
	}

	// --- Repositories ---

	productRepo := repository.NewMongoProductRepository(mongoDB)
	bannerRepo := repository.NewMongoBannerRepository(mongoDB)
	suggestionRepo := repository.NewMongoSuggestionRepository(mongoDB)
	orderRepo := repository.NewGormOrderRepository(pgDB)
	userRepo := repository.NewGormUserRepository(pgDB)
	cartRepo := repository.NewRedisCartRepository(redisClient)
	sessionStore := repository.NewRedisSessionStore(redisClient)

	// --- Services ---

	sessionService := services.NewSessionService(sessionStore)
	cartService := services.NewCartService(cartRepo, publisher, cfg.CartEventTopic)
	catalogService := services.NewCatalogService(productRepo, bannerRepo)
	notifier := services.NewWhatsAppNotifier(cfg.WhatsAppNumber)
	orderService := services.NewOrderService(
		orderRepo, cartService, notifier,
		publisher, cfg.OrderEventTopic,
		snsClient, cfg.SNSOrderTopicArn,
		cfg.CheckoutAddressMode,
		cfg.FreeShippingThreshold, cfg.ShippingFlat,
	)
	uploadService := services.NewUploadService(s3Client, cfg.S3Bucket, cfg.S3Prefix, cfg.S3Endpoint, cfg.AWSRegion)
	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)

	// --- HTTP server ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(errors.ErrorMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID", "X-Request-ID"},
		MaxAge:           12 * time.Hour,
	}))

	// Request timeout; backend calls inherit it through the context.
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.Register(r, routes.Controllers{
		Session:         controllers.NewSessionController(sessionService),
		Product:         controllers.NewProductController(catalogService),
		Cart:            controllers.NewCartController(cartService, catalogService),
		Checkout:        controllers.NewCheckoutController(orderService, cartService, catalogService),
		Contact:         controllers.NewContactController(suggestionRepo),
		Auth:            controllers.NewAuthController(authService),
		AdminProduct:    controllers.NewAdminProductController(productRepo, uploadService),
		AdminBanner:     controllers.NewAdminBannerController(bannerRepo),
		AdminSuggestion: controllers.NewAdminSuggestionController(suggestionRepo),
		AdminOrder:      controllers.NewAdminOrderController(orderService),
	}, tokenService, authService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}

	zap.L().Info("Server stopped gracefully")
}
