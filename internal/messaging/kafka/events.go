package kafka

import "time"

// EventType определяет тип события
type EventType string

const (
	// Order события
	EventTypeOrderPlaced     EventType = "order.placed"
	EventTypeOrderConfirmed  EventType = "order.confirmed"
	EventTypeOrderProcessing EventType = "order.processing"
	EventTypeOrderShipped    EventType = "order.shipped"
	EventTypeOrderDelivered  EventType = "order.delivered"
	EventTypeOrderCancelled  EventType = "order.cancelled"

	// OTP события
	EventTypeOtpIssued EventType = "otp.issued"

	// Wallet события
	EventTypeWalletCredited EventType = "wallet.credited"
	EventTypeWalletDebited  EventType = "wallet.debited"
	EventTypeWalletRefunded EventType = "wallet.refunded"
)

// Topics для Kafka
const (
	TopicOrderEvents     = "market.order.events"
	TopicWalletEvents    = "market.wallet.events"
	TopicDeadLetterQueue = "market.dlq" // Dead Letter Queue для failed messages
)

// Kafka headers для retry логики
const (
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
)

// OrderEvent представляет событие жизненного цикла заказа
type OrderEvent struct {
	EventType EventType              `json:"event_type"`
	OrderID   string                 `json:"order_id"`
	OwnerID   string                 `json:"owner_id"`
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// WalletEvent представляет событие кошелька
type WalletEvent struct {
	EventType   EventType `json:"event_type"`
	OwnerID     string    `json:"owner_id"`
	AmountMinor int64     `json:"amount_minor"`
	Reference   string    `json:"reference,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOrderEvent создает новое событие заказа
func NewOrderEvent(eventType EventType, orderID, ownerID, status string, metadata map[string]interface{}) *OrderEvent {
	return &OrderEvent{
		EventType: eventType,
		OrderID:   orderID,
		OwnerID:   ownerID,
		Status:    status,
		Timestamp: time.Now(),
		Metadata:  metadata,
	}
}

// NewWalletEvent создает новое событие кошелька
func NewWalletEvent(eventType EventType, ownerID string, amountMinor int64, reference string) *WalletEvent {
	return &WalletEvent{
		EventType:   eventType,
		OwnerID:     ownerID,
		AmountMinor: amountMinor,
		Reference:   reference,
		Timestamp:   time.Now(),
	}
}
