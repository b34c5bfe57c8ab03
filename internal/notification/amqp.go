package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/goldclean/goldclean-system/internal/mailer"
)

// QueueName — durable-очередь уведомлений о заказах.
const QueueName = "orders.notifications"

// AMQPDispatcher публикует события в RabbitMQ; письма рассылает
// отдельный потребитель очереди.
type AMQPDispatcher struct {
	url    string
	logger *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPDispatcher устанавливает соединение с брокером и объявляет очередь.
func NewAMQPDispatcher(url string, logger *zap.Logger) (*AMQPDispatcher, error) {
	d := &AMQPDispatcher{url: url, logger: logger}
	if err := d.connect(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *AMQPDispatcher) connect() error {
	conn, err := amqp.Dial(d.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}
	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("amqp queue declare: %w", err)
	}
	d.conn = conn
	d.ch = ch
	return nil
}

// Dispatch сериализует событие и публикует его persistent-сообщением.
// При закрытом канале выполняется одна попытка переподключения.
func (d *AMQPDispatcher) Dispatch(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	err = d.ch.PublishWithContext(ctx, "", QueueName, false, false, pub)
	if err == nil {
		return nil
	}

	d.logger.Warn("amqp publish failed, reconnecting", zap.Error(err))
	d.close()
	if err := d.connect(); err != nil {
		return err
	}
	if err := d.ch.PublishWithContext(ctx, "", QueueName, false, false, pub); err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

// Close закрывает канал и соединение с брокером.
func (d *AMQPDispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.close()
}

func (d *AMQPDispatcher) close() {
	if d.ch != nil {
		_ = d.ch.Close()
		d.ch = nil
	}
	if d.conn != nil {
		_ = d.conn.Close()
		d.conn = nil
	}
}

// StartConsumer читает очередь уведомлений и рассылает письма.
// Работает в цикле переподключения до отмены контекста.
func StartConsumer(ctx context.Context, url string, sender mailer.Sender, adminEmail string, logger *zap.Logger) {
	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		conn, err := amqp.Dial(url)
		if err != nil {
			logger.Error("notification consumer: dial broker", zap.Error(err), zap.Duration("retryIn", backoff))
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(ctx, conn, sender, adminEmail, logger); err != nil {
			logger.Error("notification consumer: loop ended", zap.Error(err))
		}
		_ = conn.Close()
		if ctx.Err() != nil {
			return
		}
		time.Sleep(2 * time.Second)
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, sender mailer.Sender, adminEmail string, logger *zap.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(QueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			var e Event
			if err := json.Unmarshal(d.Body, &e); err != nil {
				logger.Error("notification consumer: unmarshal", zap.Error(err))
				// Битое сообщение не возвращаем в очередь.
				_ = d.Nack(false, false)
				continue
			}
			deliver(e, sender, adminEmail, logger)
			_ = d.Ack(false)
		}
	}
}
