package courier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bondhubazaar/storefront/internal/domain"
)

// DefaultTransitDays — срок доставки по умолчанию, который mock
// закладывает в оценку прибытия.
const DefaultTransitDays = 3

// MockService — конфигурируемая заглушка CourierService для тестов.
// Без настройки генерирует трек-номера вида BDX-000001 и оценку
// прибытия через DefaultTransitDays.
type MockService struct {
	TrackingNumber    string
	EstimatedDelivery time.Time
	Err               error

	mu           sync.Mutex
	Calls        int
	LastOrderID  string
	LastDistrict string
}

// NewMockService возвращает mock с успешным сценарием по умолчанию.
func NewMockService() *MockService {
	return &MockService{}
}

// Dispatch возвращает заранее настроенный результат и считает вызовы.
func (m *MockService) Dispatch(ctx context.Context, orderID, district string) (string, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	m.LastOrderID = orderID
	m.LastDistrict = district

	if m.Err != nil {
		return "", time.Time{}, m.Err
	}

	tracking := m.TrackingNumber
	if tracking == "" {
		tracking = fmt.Sprintf("BDX-%06d", m.Calls)
	}
	estimated := m.EstimatedDelivery
	if estimated.IsZero() {
		estimated = time.Now().UTC().AddDate(0, 0, DefaultTransitDays)
	}
	return tracking, estimated, nil
}

var _ domain.CourierService = (*MockService)(nil)
