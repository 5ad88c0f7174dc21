package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bondhubazaar/storefront/internal/domain"
	"github.com/bondhubazaar/storefront/internal/metrics"
	"github.com/bondhubazaar/storefront/internal/service/cart"
	"github.com/bondhubazaar/storefront/internal/service/otp"
)

// Builder собирает заказ из корзины и запускает подтверждение по OTP.
// Корзина после оформления НЕ очищается: она опустошается только после
// подтверждённой доставки.
type Builder struct {
	carts    *cart.Service
	orders   domain.OrderRepository
	outbox   domain.OutboxRepository
	timeline domain.TimelineRepository
	verifier *otp.Verifier
	logger   *log.Entry
	metrics  *metrics.StorefrontMetrics
}

// NewBuilder создаёт сервис оформления заказа.
func NewBuilder(
	carts *cart.Service,
	orders domain.OrderRepository,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	verifier *otp.Verifier,
	logger *log.Entry,
) *Builder {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &Builder{
		carts:    carts,
		orders:   orders,
		outbox:   outbox,
		timeline: timeline,
		verifier: verifier,
		logger:   logger,
		metrics:  metrics.NewStorefrontMetrics(),
	}
}

// NewBuilderWithoutMetrics создаёт сервис без метрик (для тестов).
func NewBuilderWithoutMetrics(
	carts *cart.Service,
	orders domain.OrderRepository,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	verifier *otp.Verifier,
	logger *log.Entry,
) *Builder {
	b := NewBuilder(carts, orders, outbox, timeline, verifier, logger)
	b.metrics = nil
	return b
}

// Build превращает корзину владельца в pending-заказ, выпускает код
// подтверждения и ставит событие order.placed в outbox.
func (b *Builder) Build(ctx context.Context, ownerID string, address domain.ShippingAddress, paymentMethod domain.PaymentMethod, instructions string) (domain.Order, error) {
	if ownerID == "" {
		return domain.Order{}, domain.ErrOwnerRequired
	}
	if !address.Complete() {
		return domain.Order{}, domain.ErrAddressIncomplete
	}
	if paymentMethod == "" {
		return domain.Order{}, domain.ErrPaymentMethodRequired
	}
	if !paymentMethod.Valid() {
		return domain.Order{}, domain.ErrPaymentMethodInvalid
	}

	items := b.carts.Items(ownerID)
	if len(items) == 0 {
		return domain.Order{}, domain.ErrCartEmpty
	}

	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		if errs := item.Validate(); len(errs) > 0 {
			return domain.Order{}, fmt.Errorf("invalid cart item %s: %w", item.ItemID, errs[0])
		}
		lines = append(lines, item.ToOrderLine())
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:                  uuid.NewString(),
		OwnerID:             ownerID,
		Status:              domain.OrderStatusPending,
		Lines:               lines,
		Address:             address,
		PaymentMethod:       paymentMethod,
		SpecialInstructions: instructions,
		DeliveryFeeMinor:    domain.DeliveryFeeMinor,
		Version:             0,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	order.SubtotalMinor = order.LinesSubtotalMinor()
	order.TotalMinor = order.SubtotalMinor + order.DeliveryFeeMinor

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, fmt.Errorf("invalid order: %w", errs[0])
	}

	if err := b.orders.Create(order); err != nil {
		b.logger.WithError(err).WithField("owner_id", ownerID).Error("failed to persist order")
		return domain.Order{}, err
	}

	b.emitPlaced(order)

	// Код подтверждения уходит на телефон получателя из адреса доставки.
	if _, err := b.verifier.Issue(ctx, order.ID, domain.OtpPurposeOrderConfirmation, order.Address.Phone); err != nil {
		// Заказ уже сохранён: оставляем его в pending, код можно
		// перевыпустить отдельным запросом.
		b.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to issue confirmation code")
	}

	if b.metrics != nil {
		b.metrics.RecordOrderPlaced()
	}
	b.logger.WithFields(log.Fields{
		"order_id":       order.ID,
		"owner_id":       ownerID,
		"total_minor":    order.TotalMinor,
		"payment_method": paymentMethod,
	}).Info("order placed")

	return order, nil
}

func (b *Builder) emitPlaced(order domain.Order) {
	payload := map[string]interface{}{
		"order_id":       order.ID,
		"owner_id":       order.OwnerID,
		"status":         string(order.Status),
		"total_minor":    order.TotalMinor,
		"payment_method": string(order.PaymentMethod),
		"ts":             order.CreatedAt.Format(time.RFC3339Nano),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.WithError(err).WithField("order_id", order.ID).Error("marshal event failed")
		return
	}

	msg := domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   order.ID,
		EventType:     "order.placed",
		Payload:       data,
	}
	if _, err := b.outbox.Enqueue(msg); err != nil {
		b.logger.WithError(err).WithField("order_id", order.ID).Error("enqueue event failed")
	} else if b.metrics != nil {
		b.metrics.RecordOutboxEvent()
	}

	if b.timeline != nil {
		event := domain.TimelineEvent{
			OrderID:  order.ID,
			Type:     "order.placed",
			Occurred: order.CreatedAt,
		}
		if err := b.timeline.Append(event); err != nil {
			b.logger.WithError(err).WithField("order_id", order.ID).Warn("append timeline event failed")
		} else if b.metrics != nil {
			b.metrics.RecordTimelineEvent()
		}
	}
}
