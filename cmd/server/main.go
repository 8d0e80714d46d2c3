package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/adapter/cache"
	"github.com/karta-lodzianina/ev-backend/internal/adapter/external/eipa"
	"github.com/karta-lodzianina/ev-backend/internal/adapter/external/payment"
	"github.com/karta-lodzianina/ev-backend/internal/adapter/http/fiber/handlers"
	"github.com/karta-lodzianina/ev-backend/internal/adapter/http/fiber/middleware"
	"github.com/karta-lodzianina/ev-backend/internal/adapter/queue"
	"github.com/karta-lodzianina/ev-backend/internal/adapter/storage/postgres"
	"github.com/karta-lodzianina/ev-backend/internal/adapter/vault"
	wsAdapter "github.com/karta-lodzianina/ev-backend/internal/adapter/websocket"
	"github.com/karta-lodzianina/ev-backend/internal/observability/telemetry"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
	"github.com/karta-lodzianina/ev-backend/internal/service/account"
	"github.com/karta-lodzianina/ev-backend/internal/service/alert"
	"github.com/karta-lodzianina/ev-backend/internal/service/auth"
	"github.com/karta-lodzianina/ev-backend/internal/service/health"
	"github.com/karta-lodzianina/ev-backend/internal/service/lottery"
	"github.com/karta-lodzianina/ev-backend/internal/service/route"
	"github.com/karta-lodzianina/ev-backend/internal/service/station"
	"github.com/karta-lodzianina/ev-backend/internal/service/ticket"
	"github.com/karta-lodzianina/ev-backend/internal/worker"
	"github.com/karta-lodzianina/ev-backend/pkg/config"
)

const (
	serviceName    = "ev-backend"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting Karta Łodzianina EV backend",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Optional Vault secrets override plain config values
	if cfg.Vault.Enabled {
		secrets, err := vault.NewSecretManager(cfg.Vault.Address, cfg.Vault.Token)
		if err != nil {
			logger.Fatal("Failed to connect to Vault", zap.Error(err))
		}
		if dbURL, err := secrets.GetDatabaseURL(); err == nil {
			cfg.Database.URL = dbURL
		}
		if jwtSecret, err := secrets.GetJWTSecret(); err == nil {
			cfg.JWT.Secret = jwtSecret
		}
		if apiKey, err := secrets.GetRegistryAPIKey(); err == nil {
			cfg.Registry.APIKey = apiKey
		}
	}

	// 4. Distributed Tracing
	if cfg.Telemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, cfg.Telemetry.JaegerEndpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 5. PostgreSQL
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// 6. Cache: Redis in deployments, in-memory fallback for local runs
	var appCache ports.Cache
	appCache, err = cache.NewRedisCache(cfg.Redis.URL, logger)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory cache", zap.Error(err))
		appCache = cache.NewLocalCache(time.Minute, logger)
	}

	// 7. Message Queue
	messageQueue, err := queue.New(cfg.Queue.Driver, cfg.Queue.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to message queue", zap.Error(err))
	}
	defer messageQueue.Close()

	// 8. Repositories
	stationRepo := postgres.NewStationRepository(db)
	lotteryRepo := postgres.NewLotteryRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)
	userRepo := postgres.NewUserRepository(db)

	if cfg.Database.Seed {
		if err := postgres.Seed(context.Background(), stationRepo, logger); err != nil {
			logger.Fatal("Failed to seed station catalog", zap.Error(err))
		}
	}

	// 9. Services
	stationService := station.NewService(stationRepo, appCache, messageQueue, logger)
	routeService := route.NewService(stationRepo, logger)
	lotteryService := lottery.NewService(lotteryRepo, logger)
	ticketService := ticket.NewService(ticketRepo, payment.NewStripeProvider(cfg.Payment.StripeSecretKey), logger)
	accountService := account.NewService(appCache, historyRepo, subscriptionRepo, logger)
	authService := auth.NewService(userRepo, cfg.JWT.Secret, logger)

	var emailProvider ports.EmailProvider
	if cfg.Email.Provider == "sendgrid" {
		emailProvider = alert.NewSendGridProvider(cfg.Email.SendGrid.APIKey, cfg.Email.From, "Karta Łodzianina")
	} else {
		emailProvider = alert.NewSMTPProvider(cfg.Email.SMTP.Host, cfg.Email.SMTP.Port,
			cfg.Email.SMTP.Username, cfg.Email.SMTP.Password, cfg.Email.From, "Karta Łodzianina")
	}
	alertService := alert.NewService(subscriptionRepo, emailProvider, logger)

	// 10. Availability pipeline: registry poller and websocket fan-out
	registryClient := eipa.NewClient(cfg.Registry.BaseURL, cfg.Registry.APIKey, logger)
	poller := worker.NewPoller(registryClient, stationService, alertService, cfg.Registry.PollInterval, logger)

	pollerCtx, stopPoller := context.WithCancel(context.Background())
	defer stopPoller()
	go poller.Run(pollerCtx)

	wsHub := wsAdapter.NewHub(logger)
	go wsHub.Run()

	if err := messageQueue.Subscribe(station.SubjectAvailability, func(msg []byte) error {
		wsHub.Broadcast(msg)
		return nil
	}); err != nil {
		logger.Fatal("Failed to subscribe to availability events", zap.Error(err))
	}

	// 11. Health checks
	healthService := health.NewService(serviceVersion, logger)
	healthService.RegisterChecker("database", func(ctx context.Context) error {
		return sqlDB.PingContext(ctx)
	})
	if pinger, ok := appCache.(interface{ Ping() error }); ok {
		healthService.RegisterChecker("cache", func(ctx context.Context) error {
			return pinger.Ping()
		})
	}

	// 12. HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))
	app.Use(middleware.CircuitBreaker(logger))

	health.NewFiberHandler(healthService).RegisterRoutes(app)

	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	registerRoutes(app, routes{
		stations: handlers.NewStationHandler(stationService, logger),
		routes:   handlers.NewRouteHandler(routeService, logger),
		lottery:  handlers.NewLotteryHandler(lotteryService, logger),
		accounts: handlers.NewAccountHandler(accountService, logger),
		tickets:  handlers.NewTicketHandler(ticketService, logger),
		auth:     handlers.NewAuthHandler(authService, logger),
		authSvc:  authService,
	})

	wsAdapter.Routes(app, wsHub)

	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 13. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopPoller()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

type routes struct {
	stations *handlers.StationHandler
	routes   *handlers.RouteHandler
	lottery  *handlers.LotteryHandler
	accounts *handlers.AccountHandler
	tickets  *handlers.TicketHandler
	auth     *handlers.AuthHandler
	authSvc  ports.AuthService
}

func registerRoutes(app *fiber.App, r routes) {
	v1 := app.Group("/api/v1")

	// Station catalog (public)
	v1.Get("/stations", r.stations.List)
	v1.Get("/stations/nearby", r.stations.Nearby)
	v1.Get("/stations/search", r.stations.Search)
	v1.Get("/stations/stats", r.stations.Stats)
	v1.Get("/stations/prices", r.stations.PriceStats)
	v1.Get("/stations/:id", r.stations.Get)
	v1.Get("/meta/connectors", r.stations.Connectors)
	v1.Get("/meta/operators", r.stations.Operators)

	// Route planning (public)
	v1.Post("/routes/plan", r.routes.Plan)
	v1.Get("/routes/destinations", r.routes.Destinations)

	// Anonymous-session surface
	session := v1.Group("", middleware.SessionRequired())
	session.Post("/lottery/draw", r.lottery.Draw)
	session.Get("/lottery/prizes", r.lottery.Prizes)
	session.Post("/lottery/prizes/:id/use", r.lottery.UsePrize)
	session.Get("/lottery/cooldown", r.lottery.Cooldown)

	session.Get("/favorites", r.accounts.Favorites)
	session.Put("/favorites/:stationId", r.accounts.AddFavorite)
	session.Delete("/favorites/:stationId", r.accounts.RemoveFavorite)

	session.Get("/history", r.accounts.History)
	session.Post("/history", r.accounts.AddHistory)
	session.Delete("/history", r.accounts.ClearHistory)
	session.Delete("/history/:id", r.accounts.RemoveHistory)
	session.Get("/history/stats", r.accounts.HistoryStats)

	session.Get("/subscriptions", r.accounts.Subscriptions)
	session.Post("/subscriptions", r.accounts.Subscribe)
	session.Delete("/subscriptions/:stationId", r.accounts.Unsubscribe)

	session.Get("/tickets", r.tickets.List)
	session.Post("/tickets/:id/return", r.tickets.Return)
	session.Post("/tickets/:id/damage", r.tickets.ReportDamage)

	// City-admin surface
	v1.Post("/admin/login", r.auth.Login)
	admin := v1.Group("/admin", middleware.AuthRequired(r.authSvc))
	admin.Get("/me", r.auth.Me)
	admin.Post("/users", middleware.AdminRequired(), r.auth.Register)
}
