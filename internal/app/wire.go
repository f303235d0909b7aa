//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"sync/atomic"

	orderGateway "gigboard/internal/gateway/rest/order"
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
	"gigboard/pkg/logger"
	"gigboard/pkg/querier"
	"gigboard/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service).
// producer равен nil, когда публикация событий в Kafka выключена.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	client *http.Client,
	producer sarama.SyncProducer,
	upstreamReady *atomic.Bool,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOrderGateway,
		provideNoticeRepository,

		provideServiceNotice,
		provideSubscribers,
		provideEventsBus,
		provideServiceLifecycle,
		provideServiceReport,
		provideServiceModeration,

		provideNoticeCleanupTask,
		provideUpstreamProbeTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(ServiceReport), new(*reportService.Report)),
		wire.Bind(new(ServiceNotice), new(*noticeService.Notice)),
		wire.Bind(new(ServiceModeration), new(*moderationService.Moderation)),
		wire.Bind(new(session.Resolver), new(*orderGateway.OrderGateway)),

		wire.Bind(new(lifecycleService.OrderGateway), new(*orderGateway.OrderGateway)),
		wire.Bind(new(lifecycleService.EventPublisher), new(*events.Bus)),
		wire.Bind(new(reportService.ReportGateway), new(*orderGateway.OrderGateway)),
		wire.Bind(new(moderationService.UserGateway), new(*orderGateway.OrderGateway)),
		wire.Bind(new(moderationService.EventPublisher), new(*events.Bus)),
		wire.Bind(new(noticeService.Repository), new(*noticeRepo.Repository)),
		wire.Bind(new(noticeService.TxManager), new(*tx.Manager)),
		wire.Bind(new(noticeRepo.Querier), new(*querier.Querier)),

		wire.Bind(new(notice_cleanup.Service), new(*noticeService.Notice)),
		wire.Bind(new(upstream_probe.Pinger), new(*orderGateway.OrderGateway)),
	)
	return &Application{}, nil
}
