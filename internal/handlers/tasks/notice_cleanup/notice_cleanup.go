package notice_cleanup

import (
	"context"
	"time"

	"gigboard/pkg/logger"
)

// NoticeCleanup удаляет уведомления, которые никто не забрал до истечения срока.
type NoticeCleanup struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewNoticeCleanup(log taskLogger, service Service, interval time.Duration) *NoticeCleanup {
	return &NoticeCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (n *NoticeCleanup) TTL() time.Duration {
	return n.interval
}

func (n *NoticeCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()

	deleted, err := n.service.CleanupExpired(ctxWithTimeout)

	if deleted > 0 {
		n.log.Info("notice cleanup",
			logger.NewField("expired_notices", deleted),
		)
	}

	return err
}

func (n *NoticeCleanup) Info() string {
	return "notice cleanup"
}
