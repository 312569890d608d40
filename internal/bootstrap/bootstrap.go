package bootstrap

import (
	"context"
	"fmt"

	"dub-server/internal/buffer"
	clickProcessor "dub-server/internal/clicks/processor"
	kafkaClient "dub-server/internal/clients/kafka"
	redisClient "dub-server/internal/clients/redis"
	stripeClient "dub-server/internal/clients/stripe"
	"dub-server/internal/clients/tinybird"
	commissionHandler "dub-server/internal/commissions/handler"
	commissionProcessor "dub-server/internal/commissions/processor"
	"dub-server/internal/config"
	conversionHandler "dub-server/internal/conversions/handler"
	conversionProcessor "dub-server/internal/conversions/processor"
	"dub-server/internal/events"
	fraudHandler "dub-server/internal/fraud/handler"
	fraudProcessor "dub-server/internal/fraud/processor"
	stripeHandler "dub-server/internal/integrations/stripe/handler"
	stripeProcessor "dub-server/internal/integrations/stripe/processor"
	"dub-server/internal/jobs"
	"dub-server/internal/linkcache"
	linkHandler "dub-server/internal/links/handler"
	linkProcessor "dub-server/internal/links/processor"
	"dub-server/internal/observability"
	payoutHandler "dub-server/internal/payouts/handler"
	payoutProcessor "dub-server/internal/payouts/processor"
	"dub-server/internal/ratelimit"
	redirectHandler "dub-server/internal/redirect/handler"
	redirectProcessor "dub-server/internal/redirect/processor"
	"dub-server/internal/store"
	"dub-server/internal/workers"

	"github.com/hibiken/asynq"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Clients
	Redis     *redisClient.Client
	Tinybird  *tinybird.Client
	JobClient *jobs.Client
	LinkCache *linkcache.Cache

	// Handlers
	RedirectHandler   redirectHandler.Handler
	LinkHandler       linkHandler.Handler
	ConversionHandler conversionHandler.Handler
	CommissionHandler commissionHandler.Handler
	PayoutHandler     payoutHandler.Handler
	FraudHandler      fraudHandler.Handler
	StripeHandler     stripeHandler.Handler
	RateLimiter       *ratelimit.Service

	// Processors shared with the background workers
	CommissionProcessor commissionProcessor.CommissionProcessor
	PayoutProcessor     payoutProcessor.PayoutProcessor

	// Click fan-out: recorded clicks go through ClickPool to Kafka, or to the
	// local buffer when Kafka is down. BufferDrainer replays the buffer.
	ClickPool     workers.WorkerPool
	BufferDrainer *buffer.Drainer

	// Kafka clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	EventBuffer   *buffer.Store
}

// RedisOpt returns the asynq connection settings for the configured Redis
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Initialize sets up the dependencies shared by the API server and the background workers
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	deps.Tinybird = tinybird.NewClient(cfg.Tinybird, logger)
	deps.JobClient = jobs.NewClient(RedisOpt(cfg.Redis), logger)
	deps.LinkCache = linkcache.New(deps.Redis, logger)
	transferClient := stripeClient.NewTransferClient(cfg.Services.StripeSecretKey, logger)

	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: cfg.Kafka.BrokerList(),
		Topic:   cfg.Kafka.Topic,
	}, logger)

	// Events that Kafka rejects are kept in a local bolt file until the drainer replays them
	deps.EventBuffer, err = buffer.Open(cfg.Buffer.Path, "")
	if err != nil {
		logger.Error(ctx, "event buffer unavailable, kafka failures will drop events", err)
		deps.EventBuffer = nil
	}
	var eventBuffer events.Buffer
	if deps.EventBuffer != nil {
		eventBuffer = deps.EventBuffer
		deps.BufferDrainer = buffer.NewDrainer(deps.EventBuffer, deps.KafkaProducer, buffer.DrainerConfig{
			Interval:   cfg.Buffer.DrainInterval,
			MaxRetries: cfg.Buffer.MaxRetries,
		}, logger)
	}
	publisher := events.NewPublisher(deps.KafkaProducer, eventBuffer, logger)

	deps.ClickPool = workers.NewWorkerPool(workers.WorkerPoolConfig{
		NumWorkers: cfg.WorkerPool.ClickWorkers,
		QueueSize:  cfg.WorkerPool.ClickQueueSize,
	}, publisher, logger)

	// Commissions and fraud
	deps.CommissionProcessor = commissionProcessor.New(&deps.Store, logger)
	deps.CommissionHandler = commissionHandler.New(deps.CommissionProcessor, logger)

	fraudProc := fraudProcessor.New(&deps.Store, deps.JobClient, publisher, logger)
	deps.FraudHandler = fraudHandler.New(fraudProc, logger)

	// Redirects and clicks
	recorder := clickProcessor.New(deps.Redis, deps.ClickPool, publisher, logger)
	redirectProc := redirectProcessor.New(&deps.Store, deps.LinkCache, recorder, logger)
	deps.RedirectHandler = redirectHandler.New(&redirectProc, cfg.Server.RootRedirectURL, logger)

	linkProc := linkProcessor.New(&deps.Store, deps.LinkCache, logger)
	deps.LinkHandler = linkHandler.New(linkProc, logger)

	// Conversions
	deps.RateLimiter = ratelimit.NewService(deps.Redis, cfg.RateLimit.TrackRequestsPerMinute, logger)
	conversionProc := conversionProcessor.New(&deps.Store, deps.Redis, deps.Tinybird, &deps.CommissionProcessor, &fraudProc, logger)
	deps.ConversionHandler = conversionHandler.New(conversionProc, logger)

	// Payouts
	deps.PayoutProcessor = payoutProcessor.New(&deps.Store, transferClient, deps.JobClient, logger)
	deps.PayoutHandler = payoutHandler.New(deps.PayoutProcessor, logger)

	// Stripe webhook
	stripeProc := stripeProcessor.New(cfg.Services.StripeWebhookSecret, &deps.Store, &conversionProc, &deps.CommissionProcessor, logger)
	deps.StripeHandler = stripeHandler.New(stripeProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.EventBuffer != nil {
		if err := d.EventBuffer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close event buffer", err)
		}
	}
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
