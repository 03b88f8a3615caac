package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-kiosk/config"
	deliveryHttp "hospital-kiosk/internal/delivery/http"
	"hospital-kiosk/internal/delivery/http/handler"
	"hospital-kiosk/internal/delivery/http/middleware"
	"hospital-kiosk/internal/infrastructure/auth"
	"hospital-kiosk/internal/infrastructure/cache"
	"hospital-kiosk/internal/infrastructure/gateway"
	"hospital-kiosk/internal/infrastructure/metrics"
	"hospital-kiosk/internal/repository"
	"hospital-kiosk/internal/service"
	"hospital-kiosk/internal/usecase"
	"hospital-kiosk/pkg/jwt"
	"hospital-kiosk/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Gateway     *gateway.Gateway
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	setLogLevel(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize upstream access
	log := logrus.StandardLogger()
	tokens := auth.NewSession(auth.Config{
		BaseURL:  cfg.Upstream.BaseURL,
		Username: cfg.Upstream.Username,
		Password: cfg.Upstream.Password,
		Timeout:  cfg.Upstream.Timeout,
	}, log)
	gw, err := gateway.New(gateway.Config{
		BaseURL:  cfg.Upstream.BaseURL,
		Timeout:  cfg.Upstream.Timeout,
		CacheTTL: cfg.Cache.ResponseTTL,
	}, tokens, metrics.NewUpstreamMetrics(nil), log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upstream gateway: %w", err)
	}
	app.Gateway = gw
	logrus.Infof("Upstream gateway ready for %s", cfg.Upstream.BaseURL)

	// Initialize all layers
	app.Server = initializeServer(cfg, log, gw, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func setLogLevel(raw string) {
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		logrus.Warnf("Unknown LOG_LEVEL %q, keeping info", raw)
		return
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, gw *gateway.Gateway, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(gw)
	agendaRepo := repository.NewAgendaRepository(gw)
	catalogRepo := repository.NewCatalogRepository(gw)
	specialtyRepo := repository.NewSpecialtyRepository(gw)
	sessionCacheRepo := repository.NewSessionCacheRepository(redisClient, log, cfg.Cache.DoctorListTTL, cfg.Session.TTL)

	// Initialize services
	sessionRegistry := service.NewSessionRegistryService(redisClient, log)

	// Initialize usecases
	scheduleUsecase := usecase.NewScheduleUsecase(log, agendaRepo, doctorRepo, catalogRepo)
	doctorUsecase := usecase.NewDoctorDirectoryUsecase(log, doctorRepo, sessionCacheRepo, cfg.Cache.DoctorListTTL)
	specialtyUsecase := usecase.NewSpecialtyUsecase(log, specialtyRepo, doctorRepo, sessionCacheRepo)
	sessionUsecase := usecase.NewSessionUsecase(log, jwtService, sessionRegistry, sessionCacheRepo)

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionUsecase)
	specialtyHandler := handler.NewSpecialtyHandler(specialtyUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionRegistry, log)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		sessionHandler,
		specialtyHandler,
		doctorHandler,
		scheduleHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		nil,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases the upstream cache and the Redis connection
func (app *App) Close() {
	if app.Gateway != nil {
		app.Gateway.Purge()
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
