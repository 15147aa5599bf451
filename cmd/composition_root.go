package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/events"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/realtime"
	redisstore "foodorder/internal/adapters/out/redis"
	s3archive "foodorder/internal/adapters/out/s3"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/pubsub"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// CompositionRoot owns the adapters of one process and builds the use case
// handlers on top of them.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy

	hub         *pubsub.Hub
	bridge      *realtime.Bridge
	notifier    ports.Notifier
	idempotency ports.IdempotencyStore
	archive     ports.TrackingArchive

	closers []func() error
}

// NewCompositionRoot connects the optional infrastructure named by cfg.
// Anything opened before a failure is closed again.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (_ *CompositionRoot, err error) {
	c := &CompositionRoot{
		cfg:    cfg,
		logger: logger,
		gormDB: gormDB,
		policy: services.NewDefaultAccessPolicy(),
		hub:    pubsub.NewHub(pubsub.DefaultBuffer),
	}
	defer func() {
		if err != nil {
			_ = c.Close()
		}
	}()

	publisher, err := c.eventPublisher()
	if err != nil {
		return nil, err
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)

	if err := c.connectRealtime(); err != nil {
		return nil, err
	}
	if err := c.connectIdempotencyStore(ctx); err != nil {
		return nil, err
	}
	if err := c.connectTrackingArchive(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CompositionRoot) eventPublisher() (ports.EventPublisher, error) {
	switch c.cfg.EventsDriver {
	case "kafka":
		p := events.NewKafkaPublisher(events.NewKafkaWriter(c.cfg.KafkaHost, c.cfg.KafkaOrderChangedTopic))
		c.closers = append(c.closers, p.Close)
		return p, nil
	case "rabbitmq":
		p, err := events.DialRabbitMQ(c.cfg.RabbitMQURL, c.cfg.RabbitMQExchange)
		if err != nil {
			return nil, fmt.Errorf("connect rabbitmq: %w", err)
		}
		c.closers = append(c.closers, p.Close)
		return p, nil
	default:
		return events.NewLogPublisher(c.logger), nil
	}
}

func (c *CompositionRoot) connectRealtime() error {
	if c.cfg.RealtimeDriver != "postgres" {
		c.notifier = realtime.NewHubNotifier(c.hub)
		return nil
	}

	bridge, err := realtime.NewBridge(c.cfg.DSN(), c.cfg.RealtimePgChannel, c.hub, c.logger)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", c.cfg.RealtimePgChannel, err)
	}
	c.bridge = bridge
	c.closers = append(c.closers, bridge.Close)
	c.notifier = realtime.NewPgNotifier(c.gormDB, c.cfg.RealtimePgChannel)
	return nil
}

func (c *CompositionRoot) connectIdempotencyStore(ctx context.Context) error {
	if c.cfg.RedisAddr == "" {
		c.logger.Warn("REDIS_ADDR is empty, Idempotency-Key headers are ignored")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: c.cfg.RedisAddr, Password: c.cfg.RedisPassword})
	c.closers = append(c.closers, rdb.Close)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	c.idempotency = redisstore.NewIdempotencyStore(rdb, c.cfg.IdempotencyTTL)
	return nil
}

func (c *CompositionRoot) connectTrackingArchive(ctx context.Context) error {
	if c.cfg.S3Bucket == "" {
		return nil
	}
	client, err := s3archive.NewClient(ctx, c.cfg.S3Region)
	if err != nil {
		return err
	}
	c.archive = s3archive.NewTrackingArchive(client, c.cfg.S3Bucket, "")
	return nil
}

// RunRealtimeBridge relays notifications from other instances until ctx is
// done. It returns at once with the memory driver.
func (c *CompositionRoot) RunRealtimeBridge(ctx context.Context) {
	if c.bridge != nil {
		c.bridge.Run(ctx)
	}
}

// Close releases every connection opened by the root, except the database.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) trackingUoWFactory() commands.TrackingUoWFactory {
	return FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.idempotency, c.policy, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAssignDeliveryPartnerCommandHandler() commands.AssignDeliveryPartnerCommandHandler {
	return commands.NewAssignDeliveryPartnerCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateIngestLocationCommandHandler() commands.IngestLocationCommandHandler {
	return commands.NewIngestLocationCommandHandler(c.trackingUoWFactory(), c.notifier, c.policy, c.logger)
}

func (c *CompositionRoot) CreateArchiveDeliveryTrackingCommandHandler() commands.ArchiveDeliveryTrackingCommandHandler {
	return commands.NewArchiveDeliveryTrackingCommandHandler(c.trackingUoWFactory(), c.archive)
}

func (c *CompositionRoot) CreateAddReviewCommandHandler() commands.AddReviewCommandHandler {
	return commands.NewAddReviewCommandHandler(c.reviewUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdateReviewCommandHandler() commands.UpdateReviewCommandHandler {
	return commands.NewUpdateReviewCommandHandler(c.reviewUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteReviewCommandHandler() commands.DeleteReviewCommandHandler {
	return commands.NewDeleteReviewCommandHandler(c.reviewUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateReconcileRatingsCommandHandler() commands.ReconcileRatingsCommandHandler {
	return commands.NewReconcileRatingsCommandHandler(c.reviewUoWFactory())
}

// NewHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return httpin.NewServer(httpin.Handlers{
		PlaceOrder:            c.CreatePlaceOrderCommandHandler(),
		UpdateOrderStatus:     c.CreateUpdateOrderStatusCommandHandler(),
		AssignDeliveryPartner: c.CreateAssignDeliveryPartnerCommandHandler(),
		IngestLocation:        c.CreateIngestLocationCommandHandler(),
		AddReview:             c.CreateAddReviewCommandHandler(),
		UpdateReview:          c.CreateUpdateReviewCommandHandler(),
		DeleteReview:          c.CreateDeleteReviewCommandHandler(),

		MyOrders:         queries.NewGetMyOrdersQueryHandler(c.gormDB, c.policy),
		RestaurantOrders: queries.NewGetRestaurantOrdersQueryHandler(c.gormDB, c.policy),
		AllOrders:        queries.NewGetAllOrdersQueryHandler(c.gormDB, c.policy),
		LatestLocation:   queries.NewGetLatestLocationQueryHandler(c.gormDB, c.policy),
		ActiveDeliveries: queries.NewGetActiveDeliveriesQueryHandler(c.gormDB, c.policy),
		Reviews:          queries.NewGetReviewsQueryHandler(c.gormDB, c.policy),
	}, c.hub, httpin.NewMetrics(reg), c.logger)
}

// NewJobManager schedules rating reconciliation and, when a bucket is
// configured, tracking archival.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	scheduled := []jobs.Job{
		jobs.NewRatingReconcileJob(c.CreateReconcileRatingsCommandHandler(), c.cfg.RatingReconcileSchedule, c.logger),
	}
	if c.archive != nil {
		scheduled = append(scheduled,
			jobs.NewTrackingArchiveJob(c.CreateArchiveDeliveryTrackingCommandHandler(), c.cfg.TrackingArchiveSchedule, c.logger))
	}
	return jobs.NewJobManager(scheduled...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
