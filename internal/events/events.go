// Package events publishes domain events for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Kind string

const (
	InvitationSent    Kind = "invitation.sent"
	InvitationRevoked Kind = "invitation.revoked"
	UserActivated     Kind = "user.activated"
	UserDeactivated   Kind = "user.deactivated"
	UserSynced        Kind = "user.synced"
	RoleGranted       Kind = "role.granted"
	MonthDuplicated   Kind = "month.duplicated"
	BlobUploaded      Kind = "blob.uploaded"
	BlobDeleted       Kind = "blob.deleted"
)

// Event is a single domain event. Data must be JSON serializable.
type Event struct {
	Kind       Kind      `json:"kind"`
	Subject    string    `json:"subject"`
	Actor      string    `json:"actor,omitempty"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func New(kind Kind, subject, actor string, data any) Event {
	return Event{
		Kind:       kind,
		Subject:    subject,
		Actor:      actor,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

func (e Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events. Publishing is best effort: callers log
// failures and do not fail the request.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Log writes events to the log instead of a broker.
type Log struct{}

func (Log) Publish(_ context.Context, event Event) error {
	log.Info().
		Str("kind", string(event.Kind)).
		Str("subject", event.Subject).
		Str("actor", event.Actor).
		Interface("data", event.Data).
		Msg("event")

	return nil
}

func (Log) Close() error {
	return nil
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Close() error {
	return nil
}

// Events returns the recorded events of the given kinds, or all events
// when no kind is given.
func (r *Recorder) Events(kinds ...Kind) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []Event{}
	for _, e := range r.events {
		if len(kinds) == 0 || slices.Contains(kinds, e.Kind) {
			out = append(out, e)
		}
	}
	return out
}
