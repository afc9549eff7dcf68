package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	vidtubeHTTP "vidtube/internal/controller/http"
	"vidtube/internal/repo/persistent"
	"vidtube/internal/usecase"
	"vidtube/pkg/cache"
	"vidtube/pkg/config"
	"vidtube/pkg/database"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/middleware"
	"vidtube/pkg/queue"
	"vidtube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "vidtube/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
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
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(
		cfg.AccessTokenSecret,
		cfg.RefreshTokenSecret,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	userRepo := persistent.NewUserRepository(a.db)
	videoRepo := persistent.NewVideoRepository(a.db)

	sessionUseCase := usecase.NewSessionUseCase(userRepo, a.jwtService, a.s3Client, a.log)

	var notifier usecase.Notifier
	if a.queueClient != nil {
		notifier = a.queueClient
	}
	profileUseCase := usecase.NewProfileUseCase(userRepo, videoRepo, notifier, a.log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, a.s3Client, a.log)

	cookies := vidtubeHTTP.CookieOptions{
		CrossSite:     a.cfg.CrossSiteCookies,
		AccessMaxAge:  int(a.cfg.AccessTokenTTL.Seconds()),
		RefreshMaxAge: int(a.cfg.RefreshTokenTTL.Seconds()),
	}

	sessionHandler := vidtubeHTTP.NewSessionHandler(sessionUseCase, a.cfg.TempDir, cookies)
	profileHandler := vidtubeHTTP.NewProfileHandler(profileUseCase)
	videoHandler := vidtubeHTTP.NewVideoHandler(videoUseCase, a.cfg.TempDir)

	authGuard := middleware.AuthMiddleware(a.jwtService, sessionUseCase.ResolveUser)
	optionalAuth := middleware.OptionalAuthMiddleware(a.jwtService, sessionUseCase.ResolveUser)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			if a.redisClient != nil {
				limited := users.Group("")
				limited.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitRequests, a.cfg.RateLimitWindow))
				limited.POST("/register", sessionHandler.Register)
				limited.POST("/login", sessionHandler.Login)
			} else {
				users.POST("/register", sessionHandler.Register)
				users.POST("/login", sessionHandler.Login)
			}
			users.POST("/refresh-token", sessionHandler.RefreshToken)
			users.GET("/channel/:username", optionalAuth, profileHandler.GetChannelProfile)

			protected := users.Group("", authGuard)
			{
				protected.POST("/logout", sessionHandler.Logout)
				protected.POST("/change-password", sessionHandler.ChangePassword)
				protected.GET("/current-user", sessionHandler.CurrentUser)
				protected.PATCH("/update-account", sessionHandler.UpdateAccount)
				protected.PATCH("/avatar", sessionHandler.UpdateAvatar)
				protected.PATCH("/cover-image", sessionHandler.UpdateCoverImage)
				protected.GET("/watch-history", profileHandler.GetWatchHistory)
			}
		}

		channel := api.Group("/channel", authGuard)
		{
			channel.POST("/:username/subscribe", profileHandler.Subscribe)
			channel.DELETE("/:username/subscribe", profileHandler.Unsubscribe)
		}

		videos := api.Group("/videos", authGuard)
		{
			videos.POST("/upload", videoHandler.Upload)
			videos.POST("/:id/view", videoHandler.RecordView)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("vidtube starting on port %s", a.cfg.ServerPort)
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
	a.log.Info("Shutting down vidtube...")
}

func (a *App) Shutdown() error {
	// The context gives in-flight requests 5 seconds to finish
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
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("vidtube exited")
	return nil
}
