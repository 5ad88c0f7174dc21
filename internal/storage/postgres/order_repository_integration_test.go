package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bondhubazaar/storefront/internal/domain"
)

func TestOrderRepository_PostgresCreateGetListAndSave(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	order1 := sampleOrder("order-1", "owner-1", now.Add(-2*time.Minute))
	order2 := sampleOrder("order-2", "owner-1", now.Add(-time.Minute))

	if err := repo.Create(order1); err != nil {
		t.Fatalf("create order1: %v", err)
	}
	if err := repo.Create(order2); err != nil {
		t.Fatalf("create order2: %v", err)
	}

	got, err := repo.Get(order1.ID)
	if err != nil {
		t.Fatalf("get order1: %v", err)
	}
	if got.ID != order1.ID || got.OwnerID != order1.OwnerID || got.Status != order1.Status {
		t.Fatalf("unexpected order payload: %+v", got)
	}
	if got.Address != order1.Address {
		t.Fatalf("unexpected address: got=%+v want=%+v", got.Address, order1.Address)
	}
	if got.SubtotalMinor != order1.SubtotalMinor || got.DeliveryFeeMinor != order1.DeliveryFeeMinor || got.TotalMinor != order1.TotalMinor {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if len(got.Lines) != len(order1.Lines) {
		t.Fatalf("unexpected lines count: got=%d want=%d", len(got.Lines), len(order1.Lines))
	}
	for i, line := range got.Lines {
		if line != order1.Lines[i] {
			t.Fatalf("line %d mismatch: got=%+v want=%+v", i, line, order1.Lines[i])
		}
	}

	listed, err := repo.ListByOwner("owner-1", 1)
	if err != nil {
		t.Fatalf("list by owner with limit: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != order2.ID {
		t.Fatalf("unexpected list result with limit: %+v", listed)
	}

	all, err := repo.ListByOwner("owner-1", 0)
	if err != nil {
		t.Fatalf("list by owner without limit: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(all))
	}

	got.Status = domain.OrderStatusShipped
	got.TrackingNumber = "BDX-000042"
	got.EstimatedDelivery = now.Add(72 * time.Hour)
	got.UpdatedAt = now.Add(time.Minute)
	if err := repo.Save(got); err != nil {
		t.Fatalf("save order: %v", err)
	}

	updated, err := repo.Get(order1.ID)
	if err != nil {
		t.Fatalf("get updated order: %v", err)
	}
	if updated.Status != domain.OrderStatusShipped {
		t.Fatalf("unexpected status after save: %s", updated.Status)
	}
	if updated.TrackingNumber != "BDX-000042" {
		t.Fatalf("unexpected tracking number after save: %q", updated.TrackingNumber)
	}
	if updated.EstimatedDelivery.IsZero() {
		t.Fatal("estimated delivery must survive save")
	}
	if updated.Version != got.Version+1 {
		t.Fatalf("unexpected version after save: got=%d want=%d", updated.Version, got.Version+1)
	}
}

func TestOrderRepository_PostgresErrors(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	base := sampleOrder("order-errors", "owner-2", now)

	if _, err := repo.Get("missing-order"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	if err := repo.Save(base); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound on save missing, got %v", err)
	}

	if err := repo.Create(base); err != nil {
		t.Fatalf("create base order: %v", err)
	}
	if err := repo.Create(base); !errors.Is(err, domain.ErrOrderVersionConflict) {
		t.Fatalf("expected ErrOrderVersionConflict on duplicate create, got %v", err)
	}

	stale := base
	stale.Status = domain.OrderStatusConfirmed
	stale.UpdatedAt = now.Add(time.Minute)
	stale.Version = 42
	if err := repo.Save(stale); !errors.Is(err, domain.ErrOrderVersionConflict) {
		t.Fatalf("expected ErrOrderVersionConflict on stale save, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected unique violation for code 23505")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "22001"}) {
		t.Fatal("unexpected unique violation for non-unique code")
	}
	if isUniqueViolation(errors.New("plain error")) {
		t.Fatal("plain error must not be unique violation")
	}
}

func sampleOrder(id, ownerID string, createdAt time.Time) domain.Order {
	lines := []domain.OrderLine{
		{
			ItemID:         "item-1",
			Name:           "Cotton Shirt",
			UnitPriceMinor: 1200,
			Qty:            2,
			Kind:           domain.ItemKindProduct,
			Seller:         "Dhaka Textiles",
			District:       "Dhaka",
			Category:       "clothing",
			Image:          "https://img.example/cotton-shirt.jpg",
		},
		{
			ItemID:         "item-2",
			Name:           "Home Cleaning",
			UnitPriceMinor: 800,
			Qty:            1,
			Kind:           domain.ItemKindService,
			Seller:         "CleanCo",
			District:       "Dhaka",
		},
	}

	return domain.Order{
		ID:      id,
		OwnerID: ownerID,
		Status:  domain.OrderStatusPending,
		Lines:   lines,
		Address: domain.ShippingAddress{
			RecipientName: "Rahim Uddin",
			Phone:         "01712345678",
			AddressLine:   "House 7, Road 3, Dhanmondi",
			District:      "Dhaka",
			Area:          "Dhanmondi",
		},
		PaymentMethod:       domain.PaymentMethodCOD,
		SpecialInstructions: "call before delivery",
		SubtotalMinor:       3200,
		DeliveryFeeMinor:    50,
		TotalMinor:          3250,
		Version:             0,
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
	}
}
