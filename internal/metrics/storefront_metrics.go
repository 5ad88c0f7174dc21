package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics содержит метрики заказов, OTP и кошелька.
type StorefrontMetrics struct {
	// Счётчики жизненного цикла заказа
	ordersPlaced    prometheus.Counter
	ordersConfirmed prometheus.Counter
	ordersShipped   prometheus.Counter
	ordersDelivered prometheus.Counter
	ordersCancelled prometheus.Counter

	// Счётчики OTP
	otpIssued   prometheus.Counter
	otpVerified prometheus.Counter
	otpRejected prometheus.Counter

	// Счётчики и суммы операций кошелька
	walletCredits      prometheus.Counter
	walletDebits       prometheus.Counter
	walletCreditAmount prometheus.Histogram
	walletDebitAmount  prometheus.Histogram

	// Гистограммы времени переходов
	transitionDuration *prometheus.HistogramVec

	// Счётчики событий timeline и outbox
	timelineEvents prometheus.Counter
	outboxEvents   prometheus.Counter

	// Gauge для заказов в нефинальных статусах
	activeOrders prometheus.Gauge
}

// NewStorefrontMetrics создаёт новый экземпляр метрик витрины.
func NewStorefrontMetrics() *StorefrontMetrics {
	return newStorefrontMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newStorefrontMetricsWithRegisterer(registerer prometheus.Registerer) *StorefrontMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	amountBuckets := []float64{10, 50, 100, 500, 1000, 2500, 5000, 10000, 25000, 50000}

	return &StorefrontMetrics{
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Total number of orders created at checkout",
		}),
		ordersConfirmed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_orders_confirmed_total",
			Help: "Total number of orders confirmed via OTP",
		}),
		ordersShipped: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_orders_shipped_total",
			Help: "Total number of orders handed to a courier",
		}),
		ordersDelivered: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_orders_delivered_total",
			Help: "Total number of orders confirmed as delivered",
		}),
		ordersCancelled: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_orders_cancelled_total",
			Help: "Total number of cancelled orders",
		}),
		otpIssued: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_otp_issued_total",
			Help: "Total number of issued OTP challenges",
		}),
		otpVerified: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_otp_verified_total",
			Help: "Total number of successfully verified OTP codes",
		}),
		otpRejected: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_otp_rejected_total",
			Help: "Total number of rejected OTP submissions",
		}),
		walletCredits: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_wallet_credits_total",
			Help: "Total number of completed wallet credits",
		}),
		walletDebits: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_wallet_debits_total",
			Help: "Total number of completed wallet debits",
		}),
		walletCreditAmount: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "storefront_wallet_credit_amount_minor",
			Help:    "Credited amounts in minor currency units",
			Buckets: amountBuckets,
		}),
		walletDebitAmount: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "storefront_wallet_debit_amount_minor",
			Help:    "Debited amounts in minor currency units",
			Buckets: amountBuckets,
		}),
		transitionDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "storefront_order_transition_duration_seconds",
			Help:    "Duration of order status transitions in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"transition"}),
		timelineEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_timeline_events_total",
			Help: "Total number of timeline events recorded",
		}),
		outboxEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_outbox_events_total",
			Help: "Total number of outbox events enqueued",
		}),
		activeOrders: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "storefront_active_orders",
			Help: "Number of orders currently in a non-terminal status",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderPlaced увеличивает счётчик созданных заказов.
func (m *StorefrontMetrics) RecordOrderPlaced() {
	m.ordersPlaced.Inc()
	m.activeOrders.Inc()
}

// RecordOrderConfirmed увеличивает счётчик подтверждённых заказов.
func (m *StorefrontMetrics) RecordOrderConfirmed() {
	m.ordersConfirmed.Inc()
}

// RecordOrderShipped увеличивает счётчик отгруженных заказов.
func (m *StorefrontMetrics) RecordOrderShipped() {
	m.ordersShipped.Inc()
}

// RecordOrderDelivered увеличивает счётчик доставленных заказов
// и уменьшает количество активных.
func (m *StorefrontMetrics) RecordOrderDelivered() {
	m.ordersDelivered.Inc()
	m.activeOrders.Dec()
}

// RecordOrderCancelled увеличивает счётчик отменённых заказов
// и уменьшает количество активных.
func (m *StorefrontMetrics) RecordOrderCancelled() {
	m.ordersCancelled.Inc()
	m.activeOrders.Dec()
}

// RecordOtpIssued увеличивает счётчик выданных кодов.
func (m *StorefrontMetrics) RecordOtpIssued() {
	m.otpIssued.Inc()
}

// RecordOtpVerified увеличивает счётчик успешных проверок.
func (m *StorefrontMetrics) RecordOtpVerified() {
	m.otpVerified.Inc()
}

// RecordOtpRejected увеличивает счётчик отклонённых проверок.
func (m *StorefrontMetrics) RecordOtpRejected() {
	m.otpRejected.Inc()
}

// RecordWalletCredit учитывает завершённое зачисление.
func (m *StorefrontMetrics) RecordWalletCredit(amountMinor int64) {
	m.walletCredits.Inc()
	m.walletCreditAmount.Observe(float64(amountMinor))
}

// RecordWalletDebit учитывает завершённое списание.
func (m *StorefrontMetrics) RecordWalletDebit(amountMinor int64) {
	m.walletDebits.Inc()
	m.walletDebitAmount.Observe(float64(amountMinor))
}

// RecordTransitionDuration записывает время выполнения перехода.
func (m *StorefrontMetrics) RecordTransitionDuration(transition string, duration time.Duration) {
	m.transitionDuration.WithLabelValues(transition).Observe(duration.Seconds())
}

// RecordTimelineEvent увеличивает счётчик событий timeline.
func (m *StorefrontMetrics) RecordTimelineEvent() {
	m.timelineEvents.Inc()
}

// RecordOutboxEvent увеличивает счётчик событий outbox.
func (m *StorefrontMetrics) RecordOutboxEvent() {
	m.outboxEvents.Inc()
}
