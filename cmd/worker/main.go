package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dub-server/internal/bootstrap"
	redisClient "dub-server/internal/clients/redis"
	stripeClient "dub-server/internal/clients/stripe"
	"dub-server/internal/config"
	"dub-server/internal/jobs"
	"dub-server/internal/jobs/workers"
	"dub-server/internal/linkcache"
	"dub-server/internal/observability"
	payoutProcessor "dub-server/internal/payouts/processor"
	"dub-server/internal/store"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger.Info(ctx, "Starting background worker server...")

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	redis, err := redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redis.Close()

	redisOpt := bootstrap.RedisOpt(cfg.Redis)

	// Payout aggregation enqueues the send step
	jobClient := jobs.NewClient(redisOpt, logger)
	defer jobClient.Close()

	cache := linkcache.New(redis, logger)
	transfers := stripeClient.NewTransferClient(cfg.Services.StripeSecretKey, logger)
	payouts := payoutProcessor.New(&dataStore, transfers, jobClient, logger)

	linkCacheWorker := workers.NewLinkCacheWorker(cache, logger)
	payoutWorker := workers.NewPayoutWorker(&payouts, logger)

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues:      jobs.Queues,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeLinkCacheInvalidate, linkCacheWorker.ProcessLinkCacheInvalidateTask)
	mux.HandleFunc(jobs.TypePayoutsAggregate, payoutWorker.ProcessPayoutsAggregateTask)
	mux.HandleFunc(jobs.TypePayoutsSend, payoutWorker.ProcessPayoutsSendTask)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: &asynqLogger{logger: logger},
	})

	// Commissions past their holding period are rolled into payouts every hour
	aggregateTask, err := jobs.NewPayoutsAggregateTask(jobs.PayoutsAggregatePayload{})
	if err != nil {
		log.Fatalf("Failed to build payout aggregation task: %v", err)
	}
	if _, err := scheduler.Register("@hourly", aggregateTask); err != nil {
		logger.Error(ctx, "failed to register hourly payout aggregation", err)
	}

	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
