package order

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bondhubazaar/storefront/internal/domain"
	"github.com/bondhubazaar/storefront/internal/messaging/kafka"
	"github.com/bondhubazaar/storefront/internal/metrics"
	"github.com/bondhubazaar/storefront/internal/service/cart"
	"github.com/bondhubazaar/storefront/internal/service/otp"
	"github.com/bondhubazaar/storefront/internal/service/wallet"
)

const lockStripes = 64

// Lifecycle проводит заказ по машине статусов
// pending → confirmed → processing → shipped → delivered, с отменой
// до отгрузки. Переходы одного заказа сериализуются per-order
// блокировкой; конкурентная запись ловится optimistic locking по
// версии заказа с повтором.
type Lifecycle struct {
	orders        domain.OrderRepository
	outbox        domain.OutboxRepository
	timeline      domain.TimelineRepository
	verifier      *otp.Verifier
	ledger        *wallet.Ledger
	carts         *cart.Service
	courier       domain.CourierService
	logger        *log.Entry
	metrics       *metrics.StorefrontMetrics
	kafkaProducer *kafka.Producer // опциональный прямой publish в Kafka

	locks [lockStripes]sync.Mutex
}

// NewLifecycle создаёт сервис жизненного цикла заказа.
func NewLifecycle(
	orders domain.OrderRepository,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	verifier *otp.Verifier,
	ledger *wallet.Ledger,
	carts *cart.Service,
	courier domain.CourierService,
	logger *log.Entry,
) *Lifecycle {
	if logger == nil {
		logger = log.New().WithField("component", "order-lifecycle")
	}
	return &Lifecycle{
		orders:   orders,
		outbox:   outbox,
		timeline: timeline,
		verifier: verifier,
		ledger:   ledger,
		carts:    carts,
		courier:  courier,
		logger:   logger,
		metrics:  metrics.NewStorefrontMetrics(),
	}
}

// NewLifecycleWithKafka создаёт сервис с прямой публикацией событий в Kafka.
func NewLifecycleWithKafka(
	orders domain.OrderRepository,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	verifier *otp.Verifier,
	ledger *wallet.Ledger,
	carts *cart.Service,
	courier domain.CourierService,
	kafkaProducer *kafka.Producer,
	logger *log.Entry,
) *Lifecycle {
	l := NewLifecycle(orders, outbox, timeline, verifier, ledger, carts, courier, logger)
	l.kafkaProducer = kafkaProducer
	return l
}

// NewLifecycleWithoutMetrics создаёт сервис без метрик (для тестов).
func NewLifecycleWithoutMetrics(
	orders domain.OrderRepository,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	verifier *otp.Verifier,
	ledger *wallet.Ledger,
	carts *cart.Service,
	courier domain.CourierService,
	logger *log.Entry,
) *Lifecycle {
	l := NewLifecycle(orders, outbox, timeline, verifier, ledger, carts, courier, logger)
	l.metrics = nil
	return l
}

func (l *Lifecycle) lockFor(orderID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(orderID))
	return &l.locks[h.Sum32()%lockStripes]
}

// refundReference — ссылка возврата, отличная от ссылки списания,
// чтобы поиск по ссылке однозначно находил каждую из операций.
func refundReference(orderID string) string {
	return "refund-" + orderID
}

// ConfirmPlacement проверяет код подтверждения и переводит заказ из
// pending в confirmed. Для оплаты из кошелька средства списываются до
// смены статуса; при нехватке средств заказ остаётся в pending.
func (l *Lifecycle) ConfirmPlacement(ctx context.Context, orderID, code string) (domain.Order, error) {
	start := time.Now()

	mu := l.lockFor(orderID)
	mu.Lock()
	defer mu.Unlock()

	order, err := l.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status.IsTerminal() {
		return domain.Order{}, domain.ErrOrderTerminal
	}
	if !domain.CanTransition(order.Status, domain.OrderStatusConfirmed) {
		return domain.Order{}, domain.ErrInvalidTransition
	}

	if err := l.verifier.Verify(ctx, orderID, domain.OtpPurposeOrderConfirmation, code); err != nil {
		return domain.Order{}, err
	}

	if order.PaymentMethod == domain.PaymentMethodWallet {
		// Списание могло пройти при прошлой попытке, если заказ не
		// успел сохраниться: повтор не должен списывать второй раз.
		prev, findErr := l.ledger.FindByReference(ctx, order.OwnerID, order.ID)
		switch {
		case findErr == nil && prev.Kind == domain.TransactionKindDebit && prev.Status == domain.TransactionStatusCompleted:
			order.WalletTxID = prev.ID
			l.logger.WithFields(log.Fields{
				"order_id":  order.ID,
				"wallet_tx": prev.ID,
			}).Info("wallet already debited for order, skipping debit")
		case findErr != nil && !errors.Is(findErr, domain.ErrWalletNotFound):
			return domain.Order{}, findErr
		default:
			tx, err := l.ledger.Debit(ctx, order.OwnerID, order.TotalMinor, "Payment for order", order.ID)
			if err != nil {
				// Код уже потреблён: перед повторной попыткой покупатель
				// запрашивает новый через ReissueCode.
				l.logger.WithError(err).WithFields(log.Fields{
					"order_id": order.ID,
					"owner_id": order.OwnerID,
				}).Warn("wallet debit failed, order stays pending")
				return domain.Order{}, err
			}
			order.WalletTxID = tx.ID
			l.emitWalletEvent(kafka.EventTypeWalletDebited, order.OwnerID, order.TotalMinor, tx.ID)
		}
	}

	if err := l.updateStatus(ctx, &order, domain.OrderStatusConfirmed); err != nil {
		return domain.Order{}, err
	}

	if l.metrics != nil {
		l.metrics.RecordOrderConfirmed()
		l.metrics.RecordTransitionDuration("confirm", time.Since(start))
	}
	l.publishOrderEvent(kafka.EventTypeOrderConfirmed, &order, nil)
	l.logger.WithFields(log.Fields{
		"order_id":       order.ID,
		"payment_method": order.PaymentMethod,
	}).Info("order confirmed")
	return order, nil
}

// MarkProcessing переводит подтверждённый заказ в сборку.
func (l *Lifecycle) MarkProcessing(ctx context.Context, orderID string) (domain.Order, error) {
	mu := l.lockFor(orderID)
	mu.Lock()
	defer mu.Unlock()

	order, err := l.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status.IsTerminal() {
		return domain.Order{}, domain.ErrOrderTerminal
	}
	if !domain.CanTransition(order.Status, domain.OrderStatusProcessing) {
		return domain.Order{}, domain.ErrInvalidTransition
	}

	if err := l.updateStatus(ctx, &order, domain.OrderStatusProcessing); err != nil {
		return domain.Order{}, err
	}

	l.publishOrderEvent(kafka.EventTypeOrderProcessing, &order, nil)
	return order, nil
}

// Ship передаёт собранный заказ курьеру: получает трек-номер и оценку
// прибытия, выпускает код подтверждения доставки.
func (l *Lifecycle) Ship(ctx context.Context, orderID string) (domain.Order, error) {
	start := time.Now()

	mu := l.lockFor(orderID)
	mu.Lock()
	defer mu.Unlock()

	order, err := l.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status.IsTerminal() {
		return domain.Order{}, domain.ErrOrderTerminal
	}
	if !domain.CanTransition(order.Status, domain.OrderStatusShipped) {
		return domain.Order{}, domain.ErrInvalidTransition
	}

	tracking, estimated, err := l.courier.Dispatch(ctx, order.ID, order.Address.District)
	if err != nil {
		l.logger.WithError(err).WithField("order_id", order.ID).Warn("courier dispatch failed")
		return domain.Order{}, err
	}
	order.TrackingNumber = tracking
	order.EstimatedDelivery = estimated

	if err := l.updateStatus(ctx, &order, domain.OrderStatusShipped); err != nil {
		return domain.Order{}, err
	}

	// Код получения уходит получателю сразу при отгрузке.
	if _, err := l.verifier.Issue(ctx, order.ID, domain.OtpPurposeDeliveryConfirmation, order.Address.Phone); err != nil {
		l.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to issue delivery code")
	}

	if l.metrics != nil {
		l.metrics.RecordOrderShipped()
		l.metrics.RecordTransitionDuration("ship", time.Since(start))
	}
	l.publishOrderEvent(kafka.EventTypeOrderShipped, &order, map[string]interface{}{
		"tracking_number": tracking,
	})
	l.logger.WithFields(log.Fields{
		"order_id":        order.ID,
		"tracking_number": tracking,
	}).Info("order shipped")
	return order, nil
}

// ConfirmDelivery проверяет код получения и закрывает заказ. Корзина
// владельца опустошается только здесь.
func (l *Lifecycle) ConfirmDelivery(ctx context.Context, orderID, code string) (domain.Order, error) {
	start := time.Now()

	mu := l.lockFor(orderID)
	mu.Lock()
	defer mu.Unlock()

	order, err := l.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status.IsTerminal() {
		return domain.Order{}, domain.ErrOrderTerminal
	}
	if !domain.CanTransition(order.Status, domain.OrderStatusDelivered) {
		return domain.Order{}, domain.ErrInvalidTransition
	}

	if err := l.verifier.Verify(ctx, orderID, domain.OtpPurposeDeliveryConfirmation, code); err != nil {
		return domain.Order{}, err
	}

	if err := l.updateStatus(ctx, &order, domain.OrderStatusDelivered); err != nil {
		return domain.Order{}, err
	}

	if l.carts != nil {
		if err := l.carts.Clear(order.OwnerID); err != nil {
			l.logger.WithError(err).WithField("owner_id", order.OwnerID).Warn("failed to clear cart after delivery")
		}
	}

	if l.metrics != nil {
		l.metrics.RecordOrderDelivered()
		l.metrics.RecordTransitionDuration("deliver", time.Since(start))
	}
	l.publishOrderEvent(kafka.EventTypeOrderDelivered, &order, nil)
	l.logger.WithField("order_id", order.ID).Info("order delivered")
	return order, nil
}

// Cancel отменяет заказ до отгрузки. Списанные из кошелька средства
// возвращаются зачислением с той же ссылкой на заказ.
func (l *Lifecycle) Cancel(ctx context.Context, orderID, reason string) (domain.Order, error) {
	mu := l.lockFor(orderID)
	mu.Lock()
	defer mu.Unlock()

	order, err := l.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status.IsTerminal() {
		return domain.Order{}, domain.ErrOrderTerminal
	}
	if order.Status == domain.OrderStatusShipped {
		return domain.Order{}, domain.ErrOrderNotCancellable
	}
	if !domain.CanTransition(order.Status, domain.OrderStatusCancelled) {
		return domain.Order{}, domain.ErrInvalidTransition
	}

	debited := order.WalletTxID != ""
	if !debited && order.PaymentMethod == domain.PaymentMethodWallet {
		// Заказ мог не сохранить ссылку на списание при сбое записи:
		// наличие операции проверяется по ссылке, а не по полю заказа.
		if prev, err := l.ledger.FindByReference(ctx, order.OwnerID, order.ID); err == nil {
			debited = prev.Kind == domain.TransactionKindDebit && prev.Status == domain.TransactionStatusCompleted
		} else if !errors.Is(err, domain.ErrWalletNotFound) {
			return domain.Order{}, err
		}
	}

	if debited {
		refundRef := refundReference(order.ID)
		_, findErr := l.ledger.FindByReference(ctx, order.OwnerID, refundRef)
		switch {
		case findErr == nil:
			l.logger.WithField("order_id", order.ID).Info("order already refunded, skipping credit")
		case !errors.Is(findErr, domain.ErrWalletNotFound):
			return domain.Order{}, findErr
		default:
			if _, err := l.ledger.Credit(ctx, order.OwnerID, order.TotalMinor, "Refund for cancelled order", refundRef); err != nil {
				l.logger.WithError(err).WithFields(log.Fields{
					"order_id": order.ID,
					"owner_id": order.OwnerID,
				}).Error("refund failed, cancel aborted")
				return domain.Order{}, err
			}
			l.emitWalletEvent(kafka.EventTypeWalletRefunded, order.OwnerID, order.TotalMinor, order.ID)
		}
	}

	if err := l.updateStatus(ctx, &order, domain.OrderStatusCancelled, withReason(reason)); err != nil {
		return domain.Order{}, err
	}

	if l.metrics != nil {
		l.metrics.RecordOrderCancelled()
	}
	l.publishOrderEvent(kafka.EventTypeOrderCancelled, &order, map[string]interface{}{
		"reason": reason,
	})
	l.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"reason":   reason,
	}).Info("order cancelled")
	return order, nil
}

// ReissueCode выпускает новый код для текущего этапа заказа:
// подтверждение размещения в pending, подтверждение получения в shipped.
func (l *Lifecycle) ReissueCode(ctx context.Context, orderID string) error {
	mu := l.lockFor(orderID)
	mu.Lock()
	defer mu.Unlock()

	order, err := l.orders.Get(orderID)
	if err != nil {
		return err
	}

	var purpose domain.OtpPurpose
	switch order.Status {
	case domain.OrderStatusPending:
		purpose = domain.OtpPurposeOrderConfirmation
	case domain.OrderStatusShipped:
		purpose = domain.OtpPurposeDeliveryConfirmation
	default:
		return domain.ErrInvalidTransition
	}

	_, err = l.verifier.Issue(ctx, order.ID, purpose, order.Address.Phone)
	return err
}

// Get возвращает заказ вместе с его timeline.
func (l *Lifecycle) Get(ctx context.Context, orderID string) (domain.Order, []domain.TimelineEvent, error) {
	order, err := l.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, nil, err
	}

	var events []domain.TimelineEvent
	if l.timeline != nil {
		events, err = l.timeline.List(orderID)
		if err != nil {
			l.logger.WithError(err).WithField("order_id", orderID).Warn("failed to load timeline")
			events = nil
		}
	}
	return order, events, nil
}

// List возвращает заказы владельца, новые первыми.
func (l *Lifecycle) List(ctx context.Context, ownerID string, limit int) ([]domain.Order, error) {
	if ownerID == "" {
		return nil, domain.ErrOwnerRequired
	}
	return l.orders.ListByOwner(ownerID, limit)
}

type statusEventOptions struct {
	reason string
}

type statusEventOption func(*statusEventOptions)

func withReason(reason string) statusEventOption {
	return func(o *statusEventOptions) { o.reason = reason }
}

// updateStatus меняет статус заказа и эмитит событие в timeline и outbox.
// Реализует retry с exponential backoff для version conflicts.
func (l *Lifecycle) updateStatus(ctx context.Context, order *domain.Order, newStatus domain.OrderStatus, opts ...statusEventOption) error {
	if order.Status == newStatus {
		return nil
	}

	var options statusEventOptions
	for _, opt := range opts {
		opt(&options)
	}

	const maxRetries = 3
	const baseDelay = 10 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		previousStatus := order.Status
		order.Status = newStatus
		order.UpdatedAt = time.Now().UTC()
		prevVersion := order.Version

		if err := l.orders.Save(*order); err != nil {
			if domain.IsVersionConflict(err) && attempt < maxRetries-1 {
				l.logger.WithFields(log.Fields{
					"order_id": order.ID,
					"attempt":  attempt + 1,
					"version":  order.Version,
				}).Warn("version conflict detected, retrying")

				fresh, loadErr := l.orders.Get(order.ID)
				if loadErr != nil {
					l.logger.WithError(loadErr).WithField("order_id", order.ID).Error("failed to reload order after conflict")
					return loadErr
				}

				// Свежая копия могла уйти дальше по машине статусов.
				if fresh.Status.IsTerminal() {
					*order = fresh
					return domain.ErrOrderTerminal
				}
				if !domain.CanTransition(fresh.Status, newStatus) && fresh.Status != newStatus {
					*order = fresh
					return domain.ErrInvalidTransition
				}

				tracking := order.TrackingNumber
				estimated := order.EstimatedDelivery
				walletTx := order.WalletTxID
				*order = fresh
				if tracking != "" {
					order.TrackingNumber = tracking
					order.EstimatedDelivery = estimated
				}
				if walletTx != "" {
					order.WalletTxID = walletTx
				}

				delay := baseDelay * time.Duration(1<<uint(attempt))
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(delay):
				}
				continue
			}

			order.Status = previousStatus
			l.logger.WithError(err).WithFields(log.Fields{
				"order_id": order.ID,
				"attempt":  attempt + 1,
			}).Error("failed to persist status")
			return err
		}

		order.Version = prevVersion + 1
		l.emitStatusEvent(order, options.reason)
		return nil
	}

	return domain.ErrOrderVersionConflict
}

func (l *Lifecycle) emitStatusEvent(order *domain.Order, reason string) {
	payload := map[string]interface{}{
		"status":     string(order.Status),
		"updated_at": order.UpdatedAt.Format(time.RFC3339Nano),
		"ts":         order.UpdatedAt.Format(time.RFC3339Nano),
	}
	if reason != "" {
		payload["reason"] = reason
	}
	l.emitEvent(order, "order."+string(order.Status), payload)
}

func (l *Lifecycle) emitEvent(order *domain.Order, eventType string, payload map[string]interface{}) {
	if payload == nil {
		payload = make(map[string]interface{})
	}
	payload["order_id"] = order.ID
	data, err := json.Marshal(payload)
	if err != nil {
		l.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID,
			"event":    eventType,
		}).Error("marshal event failed")
		return
	}

	msg := domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   order.ID,
		EventType:     eventType,
		Payload:       data,
	}
	if _, err := l.outbox.Enqueue(msg); err != nil {
		l.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID,
			"event":    eventType,
		}).Error("enqueue event failed")
	} else if l.metrics != nil {
		l.metrics.RecordOutboxEvent()
	}

	if l.timeline != nil {
		var reason string
		if r, ok := payload["reason"].(string); ok {
			reason = r
		}
		event := domain.TimelineEvent{
			OrderID:  order.ID,
			Type:     eventType,
			Reason:   reason,
			Occurred: order.UpdatedAt,
		}
		if err := l.timeline.Append(event); err != nil {
			l.logger.WithError(err).WithFields(log.Fields{
				"order_id": order.ID,
				"event":    eventType,
			}).Warn("append timeline event failed")
		} else if l.metrics != nil {
			l.metrics.RecordTimelineEvent()
		}
	}
}

func (l *Lifecycle) emitWalletEvent(eventType kafka.EventType, ownerID string, amountMinor int64, reference string) {
	event := kafka.NewWalletEvent(eventType, ownerID, amountMinor, reference)
	data, err := json.Marshal(event)
	if err != nil {
		l.logger.WithError(err).WithField("owner_id", ownerID).Error("marshal wallet event failed")
		return
	}

	msg := domain.OutboxMessage{
		AggregateType: "wallet",
		AggregateID:   ownerID,
		EventType:     string(eventType),
		Payload:       data,
	}
	if _, err := l.outbox.Enqueue(msg); err != nil {
		l.logger.WithError(err).WithField("owner_id", ownerID).Error("enqueue wallet event failed")
	} else if l.metrics != nil {
		l.metrics.RecordOutboxEvent()
	}
}

// publishOrderEvent публикует событие заказа напрямую в Kafka (если producer настроен)
func (l *Lifecycle) publishOrderEvent(eventType kafka.EventType, order *domain.Order, metadata map[string]interface{}) {
	if l.kafkaProducer == nil {
		return // Kafka не настроен, пропускаем
	}

	event := kafka.NewOrderEvent(eventType, order.ID, order.OwnerID, string(order.Status), metadata)
	if err := l.kafkaProducer.PublishEvent(kafka.TopicOrderEvents, order.ID, event); err != nil {
		// Логируем ошибку, но не прерываем переход - Kafka опциональный
		l.logger.WithError(err).WithFields(log.Fields{
			"event_type": eventType,
			"order_id":   order.ID,
		}).Warn("failed to publish order event to kafka")
	}
}
