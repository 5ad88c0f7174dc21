package domain

import (
	"context"
	"time"
)

// OtpSender доставляет одноразовый код по внеполосному каналу (SMS).
// Подтверждения доставки ядро не наблюдает.
type OtpSender interface {
	// Send отправляет код на телефон получателя.
	Send(ctx context.Context, destination, code string) error
}

// TopUpStatus — результат обращения к провайдеру пополнения.
type TopUpStatus string

const (
	TopUpStatusCollected TopUpStatus = "collected"
	TopUpStatusDeclined  TopUpStatus = "declined"
	TopUpStatusFailed    TopUpStatus = "failed"
)

// TopUpProvider описывает канал мобильного банкинга для пополнения кошелька.
type TopUpProvider interface {
	// Collect инициирует приём средств. Ошибка или не-collected статус
	// означают, что зачислять нечего.
	Collect(ctx context.Context, ownerID string, amountMinor int64, channel string) (TopUpStatus, error)
}

// CourierService назначает доставку отгружаемому заказу.
type CourierService interface {
	// Dispatch возвращает трек-номер и ожидаемую дату доставки.
	Dispatch(ctx context.Context, orderID string, district string) (trackingNumber string, estimatedDelivery time.Time, err error)
}

// CatalogService отдаёт данные позиции каталога для наполнения корзины.
// Ядро эти поля только читает.
type CatalogService interface {
	Lookup(ctx context.Context, itemID string) (CartItem, error)
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(msg OutboxMessage) (OutboxMessage, error)
	PullPending(limit int) ([]OutboxMessage, error)
	Stats() (OutboxStats, error)
	MarkSent(id string) error
	MarkFailed(id string) error
}

// TimelineRepository хранит события жизненного цикла заказа.
type TimelineRepository interface {
	Append(event TimelineEvent) error
	List(orderID string) ([]TimelineEvent, error)
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(key string) (IdempotencyRecord, error)
	MarkDone(key string, responseBody []byte, httpStatus int) error
	MarkFailed(key string, responseBody []byte, httpStatus int) error
	DeleteExpired(before time.Time, limit int) (int, error)
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
