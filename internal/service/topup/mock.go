package topup

import (
	"context"

	"github.com/bondhubazaar/storefront/internal/domain"
)

// MockProvider — конфигурируемая заглушка TopUpProvider для тестов
// и локальной разработки без шлюза мобильного банкинга.
type MockProvider struct {
	Status domain.TopUpStatus
	Err    error

	Calls       int
	LastOwnerID string
	LastAmount  int64
	LastChannel string
}

// NewMockProvider возвращает mock с успешным сценарием по умолчанию.
func NewMockProvider() *MockProvider {
	return &MockProvider{Status: domain.TopUpStatusCollected}
}

// Collect возвращает заранее настроенный результат и считает вызовы.
func (m *MockProvider) Collect(ctx context.Context, ownerID string, amountMinor int64, channel string) (domain.TopUpStatus, error) {
	m.Calls++
	m.LastOwnerID = ownerID
	m.LastAmount = amountMinor
	m.LastChannel = channel
	return m.Status, m.Err
}

var _ domain.TopUpProvider = (*MockProvider)(nil)
