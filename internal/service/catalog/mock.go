package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/bondhubazaar/storefront/internal/domain"
)

// ErrItemNotFound возвращается, когда товара нет в каталоге.
var ErrItemNotFound = errors.New("catalog item not found")

// MockService — in-memory каталог для тестов и локальной разработки.
type MockService struct {
	mu    sync.RWMutex
	items map[string]domain.CartItem

	Err error
}

// NewMockService возвращает пустой каталог.
func NewMockService() *MockService {
	return &MockService{items: make(map[string]domain.CartItem)}
}

// Put добавляет или заменяет товар в каталоге.
func (m *MockService) Put(item domain.CartItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ItemID] = item
}

// Lookup возвращает товар по идентификатору.
func (m *MockService) Lookup(ctx context.Context, itemID string) (domain.CartItem, error) {
	if m.Err != nil {
		return domain.CartItem{}, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[itemID]
	if !ok {
		return domain.CartItem{}, ErrItemNotFound
	}
	return item, nil
}

var _ domain.CatalogService = (*MockService)(nil)
