package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func newIsolatedMetrics() *StorefrontMetrics {
	return newStorefrontMetricsWithRegisterer(prometheus.NewRegistry())
}

func TestNewStorefrontMetrics(t *testing.T) {
	m := newIsolatedMetrics()

	if m == nil {
		t.Fatal("newStorefrontMetricsWithRegisterer should not return nil")
	}
	if m.ordersPlaced == nil {
		t.Error("ordersPlaced counter should not be nil")
	}
	if m.ordersConfirmed == nil {
		t.Error("ordersConfirmed counter should not be nil")
	}
	if m.ordersShipped == nil {
		t.Error("ordersShipped counter should not be nil")
	}
	if m.ordersDelivered == nil {
		t.Error("ordersDelivered counter should not be nil")
	}
	if m.ordersCancelled == nil {
		t.Error("ordersCancelled counter should not be nil")
	}
	if m.otpIssued == nil || m.otpVerified == nil || m.otpRejected == nil {
		t.Error("otp counters should not be nil")
	}
	if m.walletCredits == nil || m.walletDebits == nil {
		t.Error("wallet counters should not be nil")
	}
	if m.walletCreditAmount == nil || m.walletDebitAmount == nil {
		t.Error("wallet amount histograms should not be nil")
	}
	if m.transitionDuration == nil {
		t.Error("transitionDuration histogram vec should not be nil")
	}
	if m.activeOrders == nil {
		t.Error("activeOrders gauge should not be nil")
	}
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := c.Write(metric); err != nil {
		t.Fatalf("write counter: %v", err)
	}
	return metric.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := g.Write(metric); err != nil {
		t.Fatalf("write gauge: %v", err)
	}
	return metric.GetGauge().GetValue()
}

func TestRecordOrderLifecycle(t *testing.T) {
	m := newIsolatedMetrics()

	m.RecordOrderPlaced()
	m.RecordOrderPlaced()
	m.RecordOrderConfirmed()
	m.RecordOrderDelivered()
	m.RecordOrderCancelled()

	if got := counterValue(t, m.ordersPlaced); got != 2 {
		t.Fatalf("ordersPlaced = %v, want 2", got)
	}
	if got := counterValue(t, m.ordersConfirmed); got != 1 {
		t.Fatalf("ordersConfirmed = %v, want 1", got)
	}
	if got := counterValue(t, m.ordersDelivered); got != 1 {
		t.Fatalf("ordersDelivered = %v, want 1", got)
	}
	if got := counterValue(t, m.ordersCancelled); got != 1 {
		t.Fatalf("ordersCancelled = %v, want 1", got)
	}
	// Два размещены, один доставлен, один отменён.
	if got := gaugeValue(t, m.activeOrders); got != 0 {
		t.Fatalf("activeOrders = %v, want 0", got)
	}
}

func TestRecordOtpCounters(t *testing.T) {
	m := newIsolatedMetrics()

	m.RecordOtpIssued()
	m.RecordOtpVerified()
	m.RecordOtpRejected()
	m.RecordOtpRejected()

	if got := counterValue(t, m.otpIssued); got != 1 {
		t.Fatalf("otpIssued = %v, want 1", got)
	}
	if got := counterValue(t, m.otpVerified); got != 1 {
		t.Fatalf("otpVerified = %v, want 1", got)
	}
	if got := counterValue(t, m.otpRejected); got != 2 {
		t.Fatalf("otpRejected = %v, want 2", got)
	}
}

func TestRecordWalletOperations(t *testing.T) {
	m := newIsolatedMetrics()

	m.RecordWalletCredit(2000)
	m.RecordWalletDebit(1200)
	m.RecordWalletDebit(500)

	if got := counterValue(t, m.walletCredits); got != 1 {
		t.Fatalf("walletCredits = %v, want 1", got)
	}
	if got := counterValue(t, m.walletDebits); got != 2 {
		t.Fatalf("walletDebits = %v, want 2", got)
	}

	metric := &dto.Metric{}
	if err := m.walletDebitAmount.Write(metric); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	if got := metric.GetHistogram().GetSampleSum(); got != 1700 {
		t.Fatalf("debit amount sum = %v, want 1700", got)
	}
}

func TestRecordTransitionDuration(t *testing.T) {
	m := newIsolatedMetrics()

	// Не должно паниковать и должно принимать произвольные метки переходов.
	m.RecordTransitionDuration("confirm", 15*time.Millisecond)
	m.RecordTransitionDuration("deliver", 40*time.Millisecond)
	m.RecordTimelineEvent()
	m.RecordOutboxEvent()

	if got := counterValue(t, m.timelineEvents); got != 1 {
		t.Fatalf("timelineEvents = %v, want 1", got)
	}
	if got := counterValue(t, m.outboxEvents); got != 1 {
		t.Fatalf("outboxEvents = %v, want 1", got)
	}
}

func TestDoubleRegistrationReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newStorefrontMetricsWithRegisterer(registry)
	second := newStorefrontMetricsWithRegisterer(registry)

	first.RecordOrderPlaced()
	second.RecordOrderPlaced()

	if got := counterValue(t, second.ordersPlaced); got != 2 {
		t.Fatalf("shared counter = %v, want 2", got)
	}
}
