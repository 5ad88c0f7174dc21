package courier

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockService_Defaults(t *testing.T) {
	mock := NewMockService()

	tracking, estimated, err := mock.Dispatch(context.Background(), "order-1", "Dhaka")
	if err != nil {
		t.Fatalf("unexpected dispatch error: %v", err)
	}
	if tracking != "BDX-000001" {
		t.Fatalf("unexpected tracking number: %s", tracking)
	}
	if estimated.Before(time.Now().UTC()) {
		t.Fatal("estimated delivery should be in the future")
	}
	if mock.LastOrderID != "order-1" || mock.LastDistrict != "Dhaka" {
		t.Fatalf("call arguments not recorded: %+v", mock)
	}

	second, _, err := mock.Dispatch(context.Background(), "order-2", "Chattogram")
	if err != nil {
		t.Fatalf("unexpected dispatch error: %v", err)
	}
	if second != "BDX-000002" {
		t.Fatalf("expected sequential tracking number, got %s", second)
	}
}

func TestMockService_Configured(t *testing.T) {
	eta := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	mock := NewMockService()
	mock.TrackingNumber = "BDX-CUSTOM"
	mock.EstimatedDelivery = eta

	tracking, estimated, err := mock.Dispatch(context.Background(), "order-1", "Sylhet")
	if err != nil {
		t.Fatalf("unexpected dispatch error: %v", err)
	}
	if tracking != "BDX-CUSTOM" {
		t.Fatalf("unexpected tracking number: %s", tracking)
	}
	if !estimated.Equal(eta) {
		t.Fatalf("unexpected eta: %s", estimated)
	}

	mock.Err = errors.New("courier unavailable")
	if _, _, err := mock.Dispatch(context.Background(), "order-1", "Sylhet"); err == nil {
		t.Fatal("expected dispatch error")
	}
	if mock.Calls != 3 {
		t.Fatalf("unexpected call counter: %d", mock.Calls)
	}
}
