package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	redisClient "dub-server/internal/clients/redis"
	"dub-server/internal/clients/tinybird"
	commissionProcessor "dub-server/internal/commissions/processor"
	"dub-server/internal/config"
	"dub-server/internal/observability"
	"dub-server/internal/store"
	"dub-server/internal/workers"
	"dub-server/internal/workers/clicksink"
)

func main() {
	logger := observability.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting click sink consumer...")

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

	analytics := tinybird.NewClient(cfg.Tinybird, logger)
	commissions := commissionProcessor.New(&dataStore, logger)

	sink := clicksink.NewProcessor(&dataStore, redis, analytics, &commissions, logger)

	consumerCfg := workers.DefaultConsumerConfig(cfg.Kafka.BrokerList(), cfg.Kafka.ConsumerGroup, cfg.Kafka.Topic)
	consumerCfg.NumWorkers = cfg.WorkerPool.SinkWorkers
	consumer := workers.NewConsumer(consumerCfg, sink, logger)

	logger.Info(ctx, fmt.Sprintf(`Click sink configuration:
  - Workers: %d
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		consumerCfg.NumWorkers, consumerCfg.Brokers, consumerCfg.Topic, consumerCfg.ConsumerGroup))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := consumer.Start(ctx); err != nil && err != context.Canceled {
			logger.Error(ctx, "click sink consumer error", err)
			cancel()
		}
	}()

	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, stopping consumer...")
	case <-ctx.Done():
	}
	cancel()

	consumer.Stop()
	logger.Info(ctx, "Click sink consumer stopped")
}
