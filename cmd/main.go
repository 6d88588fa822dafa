package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SergeyBogomolovv/chef-market/docs"
	"github.com/SergeyBogomolovv/chef-market/internal/app"
	"github.com/SergeyBogomolovv/chef-market/internal/auth"
	"github.com/SergeyBogomolovv/chef-market/internal/cartstore"
	"github.com/SergeyBogomolovv/chef-market/internal/config"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/events"
	"github.com/SergeyBogomolovv/chef-market/internal/handler"
	"github.com/SergeyBogomolovv/chef-market/internal/payment"
	"github.com/SergeyBogomolovv/chef-market/internal/pickup"
	"github.com/SergeyBogomolovv/chef-market/internal/postgres"
	"github.com/SergeyBogomolovv/chef-market/internal/repo"
	"github.com/SergeyBogomolovv/chef-market/internal/service"
	"github.com/SergeyBogomolovv/chef-market/pkg/cache"
	"github.com/SergeyBogomolovv/chef-market/pkg/hub"
	"github.com/SergeyBogomolovv/chef-market/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Chef Market API
// @version         1.0
// @description     Carts, checkout and order lifecycle for home chef pickup orders
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if conf.Postgres.AutoMigrate {
		panicIfErr("failed to migrate db", postgres.Migrate(postgres.DSN(conf.Postgres), logger))
	}

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	redisClient, err := cartstore.NewClient(ctx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	logger.Info("redis connected")

	verifier, err := newVerifier(ctx, conf.Auth)
	panicIfErr("failed to init auth", err)
	roles := auth.NewRoleChecker(conf.Auth.AdminEmails)

	// every replica serves its own stream subscribers and needs every event
	if host, err := os.Hostname(); err == nil {
		conf.Kafka.GroupID = fmt.Sprintf("%s-%s", conf.Kafka.GroupID, host)
	}

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL, cache.WithName("orders"))
	carts := cartstore.New(redisClient, conf.Redis.CartTTL)
	gateway := payment.NewClient(logger, conf.Payment)
	publisher := events.NewKafkaPublisher(conf.Kafka)
	statusHub := hub.New[entities.StatusChange](16)
	scheduler := pickup.NewScheduler(conf.Location(), time.Now)

	orderService := service.NewOrderService(logger, txManager, orderRepo, gateway, publisher, roles, conf.Payment.PlatformFeeBps)
	checkoutService := service.NewCheckoutService(logger, txManager, orderRepo, carts, gateway, publisher, scheduler, conf.Payment.Currency)
	cartService := service.NewCartService(logger, orderRepo, carts)
	trackerService := service.NewTrackerService(logger, orderRepo, orderCache, statusHub, roles)
	sweepService := service.NewSweepService(
		logger, orderRepo, orderService,
		conf.Orders.ExpireAfter, conf.Orders.SweepBatchSize, conf.Orders.SweepConcurrency,
	)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, trackerService)
	cartHandler := handler.NewCartHandler(logger, cartService, checkoutService, scheduler)
	orderHandler := handler.NewOrderHandler(logger, orderService, trackerService)
	adminHandler := handler.NewAdminHandler(logger, orderService, sweepService, roles)

	app := app.New(logger, conf, verifier)

	app.SetHTTPHandlers(cartHandler, orderHandler, adminHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache)
	app.SetClosers(publisher, redisClient)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func newVerifier(ctx context.Context, cfg config.Auth) (auth.Verifier, error) {
	switch cfg.Mode {
	case "firebase":
		tokens, err := auth.NewFirebaseTokenVerifier(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
		if err != nil {
			return nil, err
		}
		return auth.NewBearerVerifier(tokens), nil
	default:
		return auth.HeaderVerifier{}, nil
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
