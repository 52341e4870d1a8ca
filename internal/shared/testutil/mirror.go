package testutil

import (
	"context"
	"sync"

	"github.com/nkulisa-npc/membership-site/internal/mirror"
	"github.com/nkulisa-npc/membership-site/internal/model"
)

// MockMirrorStore is a mock implementation of mirror.Store for testing.
// Pushed members are recorded so tests can assert the denormalized copy.
type MockMirrorStore struct {
	PushMemberFunc func(ctx context.Context, member *model.Member) error

	mu     sync.Mutex
	pushed []model.Member
}

func (m *MockMirrorStore) PushMember(ctx context.Context, member *model.Member) error {
	m.mu.Lock()
	m.pushed = append(m.pushed, *member)
	m.mu.Unlock()

	if m.PushMemberFunc != nil {
		return m.PushMemberFunc(ctx, member)
	}
	return nil
}

// Pushed returns a copy of the recorded members.
func (m *MockMirrorStore) Pushed() []model.Member {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Member, len(m.pushed))
	copy(out, m.pushed)
	return out
}

// Ensure MockMirrorStore implements mirror.Store
var _ mirror.Store = (*MockMirrorStore)(nil)

// NewMockMirrorStore creates a new mock mirror store with default behavior
func NewMockMirrorStore() *MockMirrorStore {
	return &MockMirrorStore{}
}
