package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	authapp "github.com/mduval/wedding-rsvp/application/auth"
	rsvpapp "github.com/mduval/wedding-rsvp/application/rsvp"
	"github.com/mduval/wedding-rsvp/cmd/config"
	redisclient "github.com/mduval/wedding-rsvp/cmd/redis"
	"github.com/mduval/wedding-rsvp/constant"
	_ "github.com/mduval/wedding-rsvp/docs"
	"github.com/mduval/wedding-rsvp/repository/lock"
	"github.com/mduval/wedding-rsvp/repository/record"
	"github.com/mduval/wedding-rsvp/thirdparty/gsheets"
	"github.com/mduval/wedding-rsvp/thirdparty/rabbitmq"
	"github.com/mduval/wedding-rsvp/transport"
	"github.com/mduval/wedding-rsvp/utils/logger"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// @title Wedding RSVP API
// @version 1.0
// @description Event RSVP collection with a gated admin dashboard
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment),
		zap.String("store", cfg.Store.Backend), zap.String("auth", cfg.Auth.Strategy))

	ctx := context.Background()

	// Pick the record store backend
	recordRepo := buildRecordRepo(ctx, cfg)

	// Submission lock: Redis when configured, in-process mutex otherwise
	var locker lock.Locker = lock.NewLocalLocker()
	if cfg.Redis.Host != "" {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		locker = lock.NewRedisLocker(redisclient.Get())
		logger.Info("Using Redis submission lock")
	}

	// Optional event publisher
	var publisher rsvpapp.EventPublisher
	if cfg.RabbitMQ.Host != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = pub.Close()
		}()
		publisher = pub
		logger.Info("RSVP event publishing enabled")
	}

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg)
	RsvpApp := rsvpapp.NewRsvpApp(cfg, recordRepo, locker, publisher)

	httpTransport := transport.NewTransport(cfg, AuthApp, RsvpApp)

	// The form and dashboard are served from another origin
	handler := cors.New(transport.CORSOptions(cfg.Server.CORSOrigins)).Handler(httpTransport)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

func buildRecordRepo(ctx context.Context, cfg *config.Config) record.Repository {
	switch cfg.Store.Backend {
	case constant.StoreBackendSheet:
		client, err := gsheets.NewClient(ctx, cfg.Store.SheetCredsB64, cfg.Store.SheetID, cfg.Store.SheetTab)
		if err != nil {
			logger.Fatal("err init sheets client", zap.Error(err))
		}
		return record.NewSheetRepository(client)

	case constant.StoreBackendSQL:
		db, err := sqlx.Connect(cfg.Store.DBDriver, cfg.Store.DBDSN)
		if err != nil {
			logger.Fatal("err connect db", zap.Error(err))
		}
		repo := record.NewSQLRepository(db)
		if err := repo.InitSchema(ctx); err != nil {
			logger.Fatal("err init schema", zap.Error(err))
		}
		return repo

	default:
		return record.NewFileRepository(cfg.Store.DataFile)
	}
}
