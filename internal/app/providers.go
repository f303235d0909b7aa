package app

import (
	"context"
	"net/http"
	"sync/atomic"

	actionEvents "gigboard/internal/gateway/kafka/action_events"
	orderGateway "gigboard/internal/gateway/rest/order"
	"gigboard/internal/handlers/rest/notices_get"
	"gigboard/internal/handlers/rest/order_cancel_post"
	"gigboard/internal/handlers/rest/order_claim_post"
	"gigboard/internal/handlers/rest/order_complete_post"
	"gigboard/internal/handlers/rest/order_delete"
	"gigboard/internal/handlers/rest/order_pay_post"
	"gigboard/internal/handlers/rest/order_post"
	"gigboard/internal/handlers/rest/order_price_put"
	"gigboard/internal/handlers/rest/order_rate_post"
	"gigboard/internal/handlers/rest/orders_get"
	"gigboard/internal/handlers/rest/statistics_get"
	"gigboard/internal/handlers/rest/user_delete"
	"gigboard/internal/handlers/rest/user_ratings_get"
	"gigboard/internal/handlers/rest/users_get"
	"gigboard/internal/handlers/rest/worker_approve_post"
	"gigboard/internal/handlers/rest/workers_get"
	"gigboard/internal/handlers/tasks/notice_cleanup"
	"gigboard/internal/handlers/tasks/upstream_probe"
	"gigboard/internal/pkg/config"
	"gigboard/internal/pkg/events"
	"gigboard/internal/pkg/middlewares/session"
	noticeRepo "gigboard/internal/repository/notice"
	lifecycleService "gigboard/internal/service/lifecycle"
	moderationService "gigboard/internal/service/moderation"
	noticeService "gigboard/internal/service/notice"
	reportService "gigboard/internal/service/report"
	"gigboard/pkg/background"
	"gigboard/pkg/logger"
	"gigboard/pkg/querier"
	"gigboard/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceLifecycle  ServiceLifecycle
	ServiceReport     ServiceReport
	ServiceNotice     ServiceNotice
	ServiceModeration ServiceModeration
	Sessions          session.Resolver
	BackgroundWorkers *background.Worker
}

type ServiceLifecycle interface {
	order_post.Service
	order_claim_post.Service
	order_complete_post.Service
	order_price_put.Service
	order_pay_post.Service
	order_cancel_post.Service
	order_rate_post.Service
	order_delete.Service
	orders_get.Service
}

type ServiceReport interface {
	statistics_get.Service
	user_ratings_get.Service
}

type ServiceNotice interface {
	notices_get.Service
}

type ServiceModeration interface {
	workers_get.Service
	worker_approve_post.Service
	users_get.Service
	user_delete.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderGateway(client *http.Client, cfg *config.Config) *orderGateway.OrderGateway {
	return orderGateway.New(client, cfg.OrderService.BaseURL)
}

func provideNoticeRepository(querier noticeRepo.Querier) *noticeRepo.Repository {
	return noticeRepo.New(querier)
}

func provideServiceNotice(
	repository noticeService.Repository,
	txManager noticeService.TxManager,
	cfg *config.Config,
) *noticeService.Notice {
	return noticeService.New(repository, txManager, cfg.Notices.TTL)
}

// provideSubscribers задает порядок доставки событий: сначала уведомления, затем Kafka.
func provideSubscribers(
	notices *noticeService.Notice,
	producer sarama.SyncProducer,
	cfg *config.Config,
) []events.Subscriber {
	subscribers := []events.Subscriber{notices}
	if cfg.Kafka.Enabled && producer != nil {
		subscribers = append(subscribers, actionEvents.New(producer, cfg.Kafka.Topic))
	}
	return subscribers
}

func provideEventsBus(log logger.Logger, subscribers []events.Subscriber) *events.Bus {
	return events.New(log, subscribers)
}

func provideServiceLifecycle(
	gateway lifecycleService.OrderGateway,
	publisher lifecycleService.EventPublisher,
	cfg *config.Config,
) *lifecycleService.Lifecycle {
	return lifecycleService.New(gateway, publisher, cfg.OrderService.MaxPhotoSize)
}

func provideServiceReport(gateway reportService.ReportGateway) *reportService.Report {
	return reportService.New(gateway)
}

func provideServiceModeration(
	gateway moderationService.UserGateway,
	publisher moderationService.EventPublisher,
) *moderationService.Moderation {
	return moderationService.New(gateway, publisher)
}

func provideNoticeCleanupTask(
	log logger.Logger,
	service notice_cleanup.Service,
	cfg *config.Config,
) *notice_cleanup.NoticeCleanup {
	return notice_cleanup.NewNoticeCleanup(log, service, cfg.Tasks.NoticeCleanupInterval)
}

func provideUpstreamProbeTask(
	log logger.Logger,
	pinger upstream_probe.Pinger,
	upstreamReady *atomic.Bool,
	cfg *config.Config,
) *upstream_probe.UpstreamProbe {
	return upstream_probe.NewUpstreamProbe(log, pinger, upstreamReady, cfg.Tasks.UpstreamProbeInterval)
}

func provideTaskList(
	noticeCleanupTask *notice_cleanup.NoticeCleanup,
	upstreamProbeTask *upstream_probe.UpstreamProbe,
) []background.Task {
	return []background.Task{
		noticeCleanupTask,
		upstreamProbeTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
