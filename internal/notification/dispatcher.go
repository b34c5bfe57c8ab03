package notification

import (
	"context"

	"go.uber.org/zap"

	"github.com/goldclean/goldclean-system/internal/mailer"
)

// Dispatcher описывает контракт доставки уведомлений о заказе.
type Dispatcher interface {
	Dispatch(ctx context.Context, e Event) error
}

// DirectDispatcher отправляет письма синхронно, без брокера.
type DirectDispatcher struct {
	sender     mailer.Sender
	adminEmail string
	logger     *zap.Logger
}

// NewDirectDispatcher создаёт диспетчер с синхронной отправкой писем.
func NewDirectDispatcher(sender mailer.Sender, adminEmail string, logger *zap.Logger) *DirectDispatcher {
	return &DirectDispatcher{
		sender:     sender,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Dispatch формирует и отправляет письма клиенту и администратору.
// Сбой отправки одного письма не мешает отправке остальных.
func (d *DirectDispatcher) Dispatch(ctx context.Context, e Event) error {
	deliver(e, d.sender, d.adminEmail, d.logger)
	return nil
}

// deliver выполняет фактическую отправку писем события. Используется и
// синхронным диспетчером, и потребителем очереди.
func deliver(e Event, sender mailer.Sender, adminEmail string, logger *zap.Logger) {
	if e.CustomerEmail != "" {
		subject, body := e.ClientMessage()
		if err := sender.Send(subject, body, []string{e.CustomerEmail}); err != nil {
			logger.Error("send client email",
				zap.Error(err), zap.Int64("orderID", e.OrderID), zap.String("type", e.Type))
		}
	} else {
		logger.Warn("client email skipped: no address", zap.Int64("orderID", e.OrderID))
	}

	// Напоминания адресованы только клиенту.
	if e.Type == TypeCleaningReminder || adminEmail == "" {
		return
	}

	subject, body := e.AdminMessage()
	if err := sender.Send(subject, body, []string{adminEmail}); err != nil {
		logger.Error("send admin email",
			zap.Error(err), zap.Int64("orderID", e.OrderID), zap.String("type", e.Type))
	}
}
