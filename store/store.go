// Package store defines the persistence contract for every campus-events
// entity and provides two interchangeable implementations: MongoStore
// against the remote document database and LocalStore against the on-disk
// key-value fallback. Callers go through repo.Repository, which composes
// the two; nothing outside that package should need to know which backend
// served a call.
package store

import (
	"context"
	"time"

	"campushub/models"
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// Outcome tells a caller which backend actually served a write, so that
// "wrote to remote", "wrote to local fallback" and "lost" stay
// distinguishable instead of being swallowed.
type Outcome int

const (
	OutcomeRemote Outcome = iota + 1
	OutcomeFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRemote:
		return "remote"
	case OutcomeFallback:
		return "fallback"
	}
	return "unknown"
}

// Store is the per-backend persistence contract. All list operations
// return ordered results: registrations and volunteers oldest-first by
// timestamp, suggestions and inbox messages newest-first. Writes are
// append-only except SaveEvent (merge by slug) and AddOrganizer (set add).
type Store interface {
	SaveEvent(ctx context.Context, e models.Event) error
	GetEventBySlug(ctx context.Context, slug string) (models.Event, bool, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListUserEvents(ctx context.Context, creatorID string) ([]models.Event, error)

	AddRegistration(ctx context.Context, slug string, reg models.Registration) error
	ListRegistrations(ctx context.Context, slug string) ([]models.Registration, error)

	AddVolunteer(ctx context.Context, slug string, vol models.Volunteer) error
	ListVolunteers(ctx context.Context, slug string) ([]models.Volunteer, error)

	AddSuggestion(ctx context.Context, slug string, s models.Suggestion) error
	ListSuggestions(ctx context.Context, slug string) ([]models.Suggestion, error)

	AddOrganizer(ctx context.Context, slug, email, name string) error
	ListOrganizers(ctx context.Context, slug string) ([]string, error)

	AddMessage(ctx context.Context, m models.InboxMessage) error
	ListMessages(ctx context.Context) ([]models.InboxMessage, error)

	AddProposal(ctx context.Context, p models.Proposal) error
	ListProposals(ctx context.Context) ([]models.Proposal, error)
}
