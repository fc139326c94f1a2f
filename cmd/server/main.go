package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	onboardingapp "github.com/onboarding/backend/internal/application/onboarding"
	"github.com/onboarding/backend/internal/infrastructure/config"
	"github.com/onboarding/backend/internal/infrastructure/document"
	"github.com/onboarding/backend/internal/infrastructure/logger"
	"github.com/onboarding/backend/internal/infrastructure/mail"
	"github.com/onboarding/backend/internal/infrastructure/printing"
	"github.com/onboarding/backend/internal/infrastructure/session"
	"github.com/onboarding/backend/internal/infrastructure/telemetry"
	"github.com/onboarding/backend/internal/interfaces/http/handler"
	"github.com/onboarding/backend/internal/interfaces/http/middleware"
	"github.com/onboarding/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting onboarding server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	// Documents are built from the assets directory on every call,
	// so edits to the appointment template apply without a restart
	generator, err := document.NewGenerator(document.Options{
		Assets: os.DirFS(cfg.Documents.AssetsDir),
		Branding: document.Branding{
			CompanyName:     cfg.Company.Name,
			CompanyFullName: cfg.Company.FullName,
			HRManagerName:   cfg.Company.HRManagerName,
			HRManagerTitle:  cfg.Company.HRManagerTitle,
			HeaderImage:     cfg.Documents.HeaderImage,
			FooterImage:     cfg.Documents.FooterImage,
			SignatureImage:  cfg.Documents.SignatureImage,
		},
		AppointmentTemplate: cfg.Documents.AppointmentTemplate,
		Logger:              log.Named("document"),
	})
	if err != nil {
		log.Fatal("Failed to initialize document generator", zap.Error(err))
	}

	renderer, err := printing.NewRendererChain(printing.ChainConfig{
		Strategies:      cfg.PDF.Strategies,
		Timeout:         cfg.PDF.Timeout,
		WkhtmltopdfPath: cfg.PDF.WkhtmltopdfPath,
		ChromeRemoteURL: cfg.PDF.ChromeRemoteURL,
		ChromeNoSandbox: cfg.PDF.ChromeNoSandbox,
	}, log.Named("printing"))
	if err != nil {
		log.Fatal("Failed to initialize PDF renderers", zap.Error(err))
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing PDF renderers", zap.Error(err))
		}
	}()
	log.Info("PDF renderers ready", zap.Strings("strategies", renderer.Strategies()))

	store, err := session.NewStore(session.StoreConfig{
		Backend: cfg.Session.Backend,
		TTL:     cfg.Session.TTL,
		Redis: session.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		AllowMemoryFallback: cfg.Session.AllowMemoryFallback,
	}, log.Named("session"))
	if err != nil {
		log.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing session store", zap.Error(err))
		}
	}()

	composer, err := onboardingapp.NewComposer(onboardingapp.CompanyProfile{
		Name:               cfg.Company.Name,
		FullName:           cfg.Company.FullName,
		DefaultCC:          cfg.SMTP.DefaultCC,
		JoiningFormURL:     cfg.Company.JoiningFormURL,
		AssetReturnAddress: cfg.Company.AssetReturnAddress,
		AssetContactName:   cfg.Company.AssetContactName,
		AssetContactPhone:  cfg.Company.AssetContactPhone,
	})
	if err != nil {
		log.Fatal("Failed to initialize email templates", zap.Error(err))
	}

	dispatcher := mail.NewDispatcher(mail.DispatcherConfig{
		Timeout: cfg.SMTP.Timeout,
		Logger:  log.Named("mail"),
	})

	service := onboardingapp.NewService(generator, renderer, dispatcher, composer, log.Named("onboarding"))

	sessions := middleware.NewSessions(store, middleware.SessionConfig{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Session.CookieSecure,
		Defaults: mail.Settings{
			Host:        cfg.SMTP.Host,
			Port:        cfg.SMTP.Port,
			SenderEmail: cfg.SMTP.SenderEmail,
			Password:    cfg.SMTP.Password,
			SenderName:  cfg.SMTP.SenderName,
		},
	}, log.Named("session"))

	pageHandler := handler.NewPageHandler(service, sessions)
	documentHandler := handler.NewDocumentHandler(service)
	systemHandler := handler.NewSystemHandler(handler.SystemInfo{
		Name:           cfg.App.Name,
		Version:        cfg.App.Version,
		PDFStrategies:  renderer.Strategies(),
		SessionBackend: cfg.Session.Backend,
	})

	pages, err := handler.PageTemplates(composer.Profile())
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()
	engine.SetHTMLTemplate(pages)

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing - Start the request span
	// 5. Security - Add security headers
	// 6. BodyLimit - Limit request body size, uploads included
	// 7. Span enrichment - Tag spans with request ids
	// Sessions are loaded by the page routes only; the JSON API is stateless.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
	}))
	security := middleware.DefaultSecurityConfig()
	security.HSTSEnabled = cfg.IsProduction()
	engine.Use(middleware.SecureWithConfig(security))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.TracingAttributeInjector())
	engine.Use(middleware.SpanErrorMarker())

	var sendLimit gin.HandlerFunc = passThrough
	apiMiddleware := []gin.HandlerFunc{middleware.CORSWithConfig(corsConfig(cfg.HTTP.CORSAllowOrigins))}
	if cfg.RateLimit.Enabled {
		sendLimit = middleware.RateLimitBySession(middleware.NewRateLimiter(cfg.RateLimit.SendsPerMin, time.Minute))
		apiMiddleware = append(apiMiddleware, middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit.APIPerMin, time.Minute)))
		log.Info("Rate limiting enabled",
			zap.Int("sends_per_min", cfg.RateLimit.SendsPerMin),
			zap.Int("api_per_min", cfg.RateLimit.APIPerMin),
		)
	}

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithAPIMiddleware(apiMiddleware...),
	)
	r.RegisterRoot(handler.SystemRoutes(systemHandler))
	r.RegisterRoot(handler.PageRoutes(pageHandler, sessions.Handler(), sendLimit))
	r.Register(handler.DocumentRoutes(documentHandler))
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func passThrough(c *gin.Context) {
	c.Next()
}

// corsConfig opens the document API to the configured origins only
func corsConfig(origins []string) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = origins
	return cors
}
