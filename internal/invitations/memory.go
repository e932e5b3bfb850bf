package invitations

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process invitation provider for development and tests.
type Memory struct {
	mu          sync.Mutex
	invitations map[string]Invitation
	redirects   map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		invitations: map[string]Invitation{},
		redirects:   map[string]string{},
	}
}

func (m *Memory) ListPending(_ context.Context) ([]Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Invitation{}
	for _, i := range m.invitations {
		if i.Status == StatusPending {
			out = append(out, i)
		}
	}

	sort.Slice(out, func(a, b int) bool {
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})
	return out, nil
}

func (m *Memory) Create(_ context.Context, email, redirectURL string) (Invitation, error) {
	if email == "" {
		return Invitation{}, ErrEmailRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	i := Invitation{
		ID:           "inv_" + uuid.NewString(),
		EmailAddress: email,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	m.invitations[i.ID] = i
	m.redirects[i.ID] = redirectURL
	return i, nil
}

func (m *Memory) Revoke(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.invitations[id]
	if !ok || i.Status != StatusPending {
		return ErrNotFound
	}

	i.Status = StatusRevoked
	i.UpdatedAt = time.Now().UTC()
	m.invitations[id] = i
	return nil
}

// Put stores an invitation as is.
func (m *Memory) Put(i Invitation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invitations[i.ID] = i
}

// Get returns an invitation and the redirect it was created with.
func (m *Memory) Get(id string) (Invitation, string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.invitations[id]
	return i, m.redirects[id], ok
}
