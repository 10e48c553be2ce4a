//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"booking/internal/handlers/kafka-consumer/order_status_changed"
	"booking/internal/handlers/rest/order_cancel_post"
	"booking/internal/handlers/rest/order_history_get"
	"booking/internal/handlers/rest/order_post"
	"booking/internal/handlers/rest/order_quote_post"
	"booking/internal/handlers/rest/order_status_get"
	"booking/internal/handlers/rest/orders_get"
	"booking/internal/handlers/tasks/outbox_relay"
	"booking/internal/pkg/config"
	"booking/internal/pkg/kafka"
	catalogRepo "booking/internal/repository/catalog"
	orderRepo "booking/internal/repository/order"
	outboxRepo "booking/internal/repository/outbox"
	catalogService "booking/internal/service/catalog"
	orderService "booking/internal/service/order"
	outboxService "booking/internal/service/outbox"
	"booking/pkg/background"
	"booking/pkg/logger"
	"booking/pkg/querier"
	"booking/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_quote_post.Service
	order_cancel_post.Service
	order_status_get.Service
	order_history_get.Service
	orders_get.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideCatalogRepository,
	provideOrderRepository,
	provideOutboxRepository,
)

var orderSet = wire.NewSet(
	provideServiceCatalog,
	provideOrderConfig,
	provideServiceOrder,

	wire.Bind(new(catalogService.Repository), new(*catalogRepo.Repository)),
	wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(orderService.Outbox), new(*outboxRepo.Repository)),
	wire.Bind(new(orderService.Catalog), new(*catalogService.Catalog)),
	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		orderSet,

		provideOutboxRelay,
		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(outboxService.Repository), new(*outboxRepo.Repository)),
		wire.Bind(new(outboxService.Publisher), new(*kafka.Producer)),
		wire.Bind(new(outboxService.TxManager), new(*tx.Manager)),
		wire.Bind(new(outbox_relay.Service), new(*outboxService.Relay)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService order_status_changed.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed).
// Воркер только пишет в outbox, публикует события relay сервиса.
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		orderSet,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(order_status_changed.Service), new(*orderService.Service)),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCatalogRepository(querier *querier.Querier) *catalogRepo.Repository {
	return catalogRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideServiceCatalog(repository catalogService.Repository) *catalogService.Catalog {
	return catalogService.New(repository)
}

func provideOrderConfig(cfg *config.Config) orderService.Config {
	return orderService.Config{
		Location:    cfg.Order.Location,
		EventsTopic: cfg.Kafka.EventsTopic,
	}
}

func provideServiceOrder(
	repository orderService.Repository,
	outbox orderService.Outbox,
	catalog orderService.Catalog,
	txManager orderService.TxManager,
	orderCfg orderService.Config,
) *orderService.Service {
	return orderService.New(repository, outbox, catalog, txManager, orderCfg)
}

func provideOutboxRelay(
	repository outboxService.Repository,
	publisher outboxService.Publisher,
	txManager outboxService.TxManager,
	cfg *config.Config,
) *outboxService.Relay {
	return outboxService.NewRelay(repository, publisher, txManager, cfg.Tasks.OutboxRelayBatchSize)
}

func provideOutboxRelayTask(
	log logger.Logger,
	relay outbox_relay.Service,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, relay, cfg.Tasks.OutboxRelayInterval)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
