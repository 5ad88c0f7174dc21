package sms

import (
	"context"
	"sync"

	"github.com/bondhubazaar/storefront/internal/domain"
)

// SentMessage фиксирует один отправленный SMS для проверок в тестах.
type SentMessage struct {
	Destination string
	Code        string
}

// MockSender — конфигурируемая заглушка OtpSender. Хранит отправленные
// сообщения, чтобы тесты могли прочитать код из «SMS».
type MockSender struct {
	Err error

	mu   sync.Mutex
	sent []SentMessage
}

// NewMockSender возвращает mock с успешным сценарием по умолчанию.
func NewMockSender() *MockSender {
	return &MockSender{}
}

// Send записывает сообщение или возвращает настроенную ошибку.
func (m *MockSender) Send(ctx context.Context, destination, code string) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMessage{Destination: destination, Code: code})
	return nil
}

// Sent возвращает копию всех отправленных сообщений.
func (m *MockSender) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]SentMessage, len(m.sent))
	copy(result, m.sent)
	return result
}

// LastCode возвращает код из последнего сообщения или пустую строку.
func (m *MockSender) LastCode() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1].Code
}

var _ domain.OtpSender = (*MockSender)(nil)
