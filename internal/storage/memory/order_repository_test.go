package memory_test

import (
	"testing"
	"time"

	"github.com/bondhubazaar/storefront/internal/domain"
	"github.com/bondhubazaar/storefront/internal/storage/memory"
)

func newOrder(id string) domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:      id,
		OwnerID: "owner-1",
		Status:  domain.OrderStatusPending,
		Lines: []domain.OrderLine{
			{ItemID: "item-1", Name: "Cotton Shirt", UnitPriceMinor: 1200, Qty: 2, Kind: domain.ItemKindProduct},
		},
		Address: domain.ShippingAddress{
			RecipientName: "Rahim Uddin",
			Phone:         "01712345678",
			AddressLine:   "House 12, Road 5",
			District:      "Dhaka",
		},
		PaymentMethod:    domain.PaymentMethodWallet,
		SubtotalMinor:    2400,
		DeliveryFeeMinor: domain.DeliveryFeeMinor,
		TotalMinor:       2450,
		Version:          0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestOrderRepository_CreateGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1")

	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID {
		t.Fatalf("expected id %s, got %s", order.ID, stored.ID)
	}
	if stored.TotalMinor != 2450 {
		t.Fatalf("expected total 2450, got %d", stored.TotalMinor)
	}
}

func TestOrderRepository_GetMissing(t *testing.T) {
	repo := memory.NewOrderRepository()

	if _, err := repo.Get("missing"); err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_ListByOwner(t *testing.T) {
	repo := memory.NewOrderRepository()

	first := newOrder("order-1")
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	second := newOrder("order-2")

	other := newOrder("order-3")
	other.OwnerID = "owner-2"

	for _, order := range []domain.Order{first, second, other} {
		if err := repo.Create(order); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	orders, err := repo.ListByOwner("owner-1", 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	// Новые заказы идут первыми.
	if orders[0].ID != "order-2" || orders[1].ID != "order-1" {
		t.Fatalf("unexpected order: %s, %s", orders[0].ID, orders[1].ID)
	}

	limited, err := repo.ListByOwner("owner-1", 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 order with limit, got %d", len(limited))
	}
}

func TestOrderRepository_Save(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1")
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	stored.Status = domain.OrderStatusConfirmed
	if err := repo.Save(stored); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	updated, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if updated.Status != domain.OrderStatusConfirmed {
		t.Fatalf("expected status confirmed, got %s", updated.Status)
	}
	if updated.Version != stored.Version+1 {
		t.Fatalf("expected version increment, got %d", updated.Version)
	}
}

func TestOrderRepository_SaveVersionConflict(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1")
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	order.Version = 42
	if err := repo.Save(order); err != domain.ErrOrderVersionConflict {
		t.Fatalf("expected version conflict, got %v", err)
	}
}

func TestOrderRepository_GetReturnsCopy(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1")
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	stored.Lines[0].Qty = 99

	again, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if again.Lines[0].Qty != 2 {
		t.Fatalf("stored order mutated through returned slice: qty %d", again.Lines[0].Qty)
	}
}
