package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/MahikaLakoul07/SportifyBackend/internal/config"
	"github.com/MahikaLakoul07/SportifyBackend/internal/gateway"
	"github.com/MahikaLakoul07/SportifyBackend/internal/handler"
	"github.com/MahikaLakoul07/SportifyBackend/internal/middleware"
	"github.com/MahikaLakoul07/SportifyBackend/internal/mq"
	"github.com/MahikaLakoul07/SportifyBackend/internal/notification"
	"github.com/MahikaLakoul07/SportifyBackend/internal/repository"
	"github.com/MahikaLakoul07/SportifyBackend/internal/router"
	"github.com/MahikaLakoul07/SportifyBackend/internal/scheduler"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  *mq.Publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Sportify",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	a.redis = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := a.redis.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	return nil
}

func (a *App) initServices() error {
	groundRepo := repository.NewGroundRepo(a.db)
	playerRepo := repository.NewPlayerRepo(a.db)
	reservationRepo := repository.NewReservationRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	rosterRepo := repository.NewRosterRepo(a.db)
	chatRepo := repository.NewChatRepo(a.db)
	loyaltyRepo := repository.NewLoyaltyRepo(a.db)

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	publisher, err := mq.NewPublisher(a.cfg.Rabbit.URL, a.cfg.Rabbit.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}
	a.publisher = publisher

	paymentGateway, err := gateway.NewOmiseGateway(
		a.cfg.Payment.OmisePublicKey,
		a.cfg.Payment.OmiseSecretKey,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init payment gateway: %w", err)
	}

	groundService := service.NewGroundService(groundRepo, a.redis, a.log)
	playerService := service.NewPlayerService(playerRepo, a.log)
	allocator := service.NewAllocatorService(
		groundRepo,
		reservationRepo,
		playerRepo,
		notifier,
		publisher,
		a.log,
		a.cfg.Payment.ReservationTTL,
		a.cfg.Scheduler.ExpiryWarning,
	)
	paymentService := service.NewPaymentService(
		paymentRepo,
		reservationRepo,
		playerRepo,
		groundRepo,
		paymentGateway,
		notifier,
		publisher,
		a.log,
		a.cfg.Payment.GatewayAttempts,
		a.cfg.Payment.GatewayDelay,
	)
	bookingService := service.NewBookingService(bookingRepo)
	rosterService := service.NewRosterService(rosterRepo, bookingRepo, groundRepo, publisher, a.log)
	chatService := service.NewChatService(chatRepo, bookingRepo, rosterRepo)
	loyaltyService := service.NewLoyaltyService(loyaltyRepo, a.log, a.cfg.Loyalty.PointsPerMatch)

	a.scheduler = scheduler.New(
		allocator,
		loyaltyService,
		a.cfg.Scheduler.SweepInterval,
		a.cfg.Scheduler.SettleInterval,
		a.log,
	)

	h := handler.NewHandler(
		playerService,
		groundService,
		allocator,
		paymentService,
		bookingService,
		rosterService,
		chatService,
		loyaltyService,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.ErrorLevel, "close publisher",
			logger.String("error", err.Error()),
		)
	}

	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
