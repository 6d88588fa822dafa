// Command sweeper runs one expiry sweep and exits. It is meant to be started
// by an external scheduler such as cron or a Kubernetes CronJob.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/auth"
	"github.com/SergeyBogomolovv/chef-market/internal/config"
	"github.com/SergeyBogomolovv/chef-market/internal/events"
	"github.com/SergeyBogomolovv/chef-market/internal/payment"
	"github.com/SergeyBogomolovv/chef-market/internal/postgres"
	"github.com/SergeyBogomolovv/chef-market/internal/repo"
	"github.com/SergeyBogomolovv/chef-market/internal/service"
	"github.com/SergeyBogomolovv/chef-market/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "deadline for the whole sweep")
	flag.Parse()

	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()

	orderRepo := repo.NewPostgresRepo(db)
	publisher := events.NewKafkaPublisher(conf.Kafka)
	defer publisher.Close()

	orderService := service.NewOrderService(
		logger, trm.NewManager(db), orderRepo,
		payment.NewClient(logger, conf.Payment), publisher,
		auth.NewRoleChecker(conf.Auth.AdminEmails), conf.Payment.PlatformFeeBps,
	)
	sweepService := service.NewSweepService(
		logger, orderRepo, orderService,
		conf.Orders.ExpireAfter, conf.Orders.SweepBatchSize, conf.Orders.SweepConcurrency,
	)

	res, err := sweepService.Sweep(ctx)
	panicIfErr("sweep failed", err)

	json.NewEncoder(os.Stdout).Encode(res)
	if res.Failed > 0 {
		os.Exit(1)
	}
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
