// Package invitations forwards invitation management to the identity
// provider. It keeps no local state.
package invitations

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("invitation not found or not pending")
	ErrEmailMissing   = errors.New("invitation has no email address")
	ErrEmailRequired  = errors.New("email is required")
	ErrProviderFailed = errors.New("invitation provider request failed")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRevoked  Status = "revoked"
)

type Invitation struct {
	ID           string    `json:"id"`
	EmailAddress string    `json:"emailAddress"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Provider is the identity provider's invitation API.
type Provider interface {
	ListPending(ctx context.Context) ([]Invitation, error)
	Create(ctx context.Context, email, redirectURL string) (Invitation, error)
	Revoke(ctx context.Context, id string) error
}

// Resend replaces a pending invitation with a new one for the same address.
func Resend(ctx context.Context, p Provider, id, redirectURL string) (Invitation, error) {
	pending, err := p.ListPending(ctx)
	if err != nil {
		return Invitation{}, err
	}

	var found *Invitation
	for i := range pending {
		if pending[i].ID == id {
			found = &pending[i]
			break
		}
	}

	if found == nil {
		return Invitation{}, ErrNotFound
	}

	if found.EmailAddress == "" {
		return Invitation{}, ErrEmailMissing
	}

	if err := p.Revoke(ctx, id); err != nil {
		return Invitation{}, err
	}

	return p.Create(ctx, found.EmailAddress, redirectURL)
}
