package testutil

import (
	"context"
	"sync"

	"github.com/nkulisa-npc/membership-site/internal/mailer"
)

// MockMailer is a mock implementation of mailer.Mailer for testing.
// Every Send call is recorded so tests can assert attempt counts.
type MockMailer struct {
	SendFunc func(ctx context.Context, msg *mailer.Message) error

	mu   sync.Mutex
	sent []mailer.Message
}

func (m *MockMailer) Send(ctx context.Context, msg *mailer.Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, *msg)
	m.mu.Unlock()

	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}

// Sent returns a copy of the recorded messages.
func (m *MockMailer) Sent() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mailer.Message, len(m.sent))
	copy(out, m.sent)
	return out
}

// Ensure MockMailer implements mailer.Mailer
var _ mailer.Mailer = (*MockMailer)(nil)

// NewMockMailer creates a new mock mailer with default behavior
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}
