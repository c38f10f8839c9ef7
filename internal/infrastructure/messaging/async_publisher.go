package messaging

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/recruitment-backend/internal/domain/event"
	"github.com/ignatzorin/recruitment-backend/internal/goroutine"
	"github.com/ignatzorin/recruitment-backend/internal/logger"
)

// AsyncPublisher отправляет события в фоне, не задерживая ответ на запрос.
// Ошибки доставки только логируются.
type AsyncPublisher struct {
	next    event.Publisher
	timeout time.Duration
}

func NewAsyncPublisher(next event.Publisher) *AsyncPublisher {
	return &AsyncPublisher{next: next, timeout: 15 * time.Second}
}

func (p *AsyncPublisher) Publish(ctx context.Context, e event.ApplicationEvent) error {
	// Контекст запроса отменяется сразу после ответа, поэтому берём только его значения.
	bg := context.WithoutCancel(ctx)
	goroutine.SafeGoWithContext(bg, func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		if err := p.next.Publish(ctx, e); err != nil {
			logger.L().WithFields(logrus.Fields{
				"event":          e.Type,
				"application_id": e.ApplicationID,
			}).WithError(err).Warn("messaging: событие не доставлено")
		}
	})
	return nil
}
