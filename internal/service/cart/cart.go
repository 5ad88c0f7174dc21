package cart

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/bondhubazaar/storefront/internal/domain"
)

// Listener получает уведомление после каждого изменения корзины владельца.
type Listener func(ownerID string)

// Service хранит корзины покупателей в памяти. Все операции над одной
// корзиной выполняются под общей блокировкой, слушатели вызываются
// после её освобождения.
type Service struct {
	mu     sync.RWMutex
	carts  map[string][]domain.CartItem
	logger *log.Entry

	listenerMu sync.RWMutex
	listeners  []Listener
}

// NewService создаёт сервис корзины.
func NewService(logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "cart")
	}
	return &Service{
		carts:  make(map[string][]domain.CartItem),
		logger: logger,
	}
}

// Subscribe регистрирует слушателя изменений. Отписки нет: подписчики
// живут столько же, сколько сервис.
func (s *Service) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *Service) notify(ownerID string) {
	s.listenerMu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenerMu.RUnlock()

	for _, listener := range listeners {
		listener(ownerID)
	}
}

// Add кладёт товар в корзину. Если товар уже есть, количество
// увеличивается на единицу, свежие атрибуты берутся из item.
func (s *Service) Add(ownerID string, item domain.CartItem) error {
	if ownerID == "" {
		return domain.ErrOwnerRequired
	}
	if item.Qty < 1 {
		item.Qty = 1
	}
	if errs := item.Validate(); len(errs) > 0 {
		return errs[0]
	}

	s.mu.Lock()
	items := s.carts[ownerID]
	merged := false
	for i := range items {
		if items[i].ItemID == item.ItemID {
			qty := items[i].Qty + 1
			items[i] = item
			items[i].Qty = qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	s.carts[ownerID] = items
	s.mu.Unlock()

	s.logger.WithFields(log.Fields{
		"owner_id": ownerID,
		"item_id":  item.ItemID,
		"merged":   merged,
	}).Debug("cart item added")

	s.notify(ownerID)
	return nil
}

// SetQuantity выставляет количество позиции. Значения меньше единицы
// игнорируются, отсутствующая позиция не создаётся.
func (s *Service) SetQuantity(ownerID, itemID string, qty int32) error {
	if ownerID == "" {
		return domain.ErrOwnerRequired
	}
	if itemID == "" {
		return domain.ErrItemIDRequired
	}
	if qty < 1 {
		return nil
	}

	changed := false
	s.mu.Lock()
	for i, item := range s.carts[ownerID] {
		if item.ItemID == itemID {
			if item.Qty != qty {
				s.carts[ownerID][i].Qty = qty
				changed = true
			}
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify(ownerID)
	}
	return nil
}

// Remove убирает позицию из корзины. Отсутствующая позиция — не ошибка.
func (s *Service) Remove(ownerID, itemID string) error {
	if ownerID == "" {
		return domain.ErrOwnerRequired
	}
	if itemID == "" {
		return domain.ErrItemIDRequired
	}

	removed := false
	s.mu.Lock()
	items := s.carts[ownerID]
	for i, item := range items {
		if item.ItemID == itemID {
			s.carts[ownerID] = append(items[:i], items[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.notify(ownerID)
	}
	return nil
}

// Clear опустошает корзину владельца.
func (s *Service) Clear(ownerID string) error {
	if ownerID == "" {
		return domain.ErrOwnerRequired
	}

	s.mu.Lock()
	hadItems := len(s.carts[ownerID]) > 0
	delete(s.carts, ownerID)
	s.mu.Unlock()

	if hadItems {
		s.notify(ownerID)
	}
	return nil
}

// Items возвращает копию содержимого корзины.
func (s *Service) Items(ownerID string) []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[ownerID]
	result := make([]domain.CartItem, len(items))
	copy(result, items)
	return result
}

// SubtotalMinor возвращает сумму корзины без платы за доставку.
func (s *Service) SubtotalMinor(ownerID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var subtotal int64
	for _, item := range s.carts[ownerID] {
		subtotal += item.UnitPriceMinor * int64(item.Qty)
	}
	return subtotal
}
