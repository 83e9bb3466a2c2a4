// Package repo is the entity repository every handler talks to. It tries
// the remote document store first and falls silently back to local
// storage when the remote is unconfigured or a call fails. The caller
// never sees a remote failure; what it does see is a typed Outcome, so
// tests and dashboards can tell a remote write from a fallback write.
package repo

import (
	"context"
	"log"
	"time"

	"campushub/catalog"
	"campushub/models"
	"campushub/store"

	"github.com/google/uuid"
)

type Repository struct {
	remote store.Store // nil when the remote store is unconfigured
	local  store.Store
}

// New composes the two backends. Pass a nil remote to run local-only;
// the choice is made once here, at construction, not per call site.
func New(remote store.Store, local store.Store) *Repository {
	return &Repository{remote: remote, local: local}
}

// RemoteEnabled reports whether a remote backend was configured at all.
func (r *Repository) RemoteEnabled() bool {
	return r.remote != nil
}

func (r *Repository) write(op string, remote func() error, local func() error) (store.Outcome, error) {
	if r.remote != nil {
		if err := remote(); err == nil {
			return store.OutcomeRemote, nil
		} else {
			log.Printf("repo: %s: remote write failed, using fallback: %v", op, err)
		}
	}
	if err := local(); err != nil {
		return 0, err
	}
	return store.OutcomeFallback, nil
}

// SaveEvent writes the event and, when it declares a creator, seeds the
// organizer set with that creator. The two writes are independent; there
// is no transaction tying them together.
func (r *Repository) SaveEvent(ctx context.Context, e models.Event) (store.Outcome, error) {
	outcome, err := r.write("SaveEvent",
		func() error { return r.remote.SaveEvent(ctx, e) },
		func() error { return r.local.SaveEvent(ctx, e) },
	)
	if err != nil {
		return outcome, err
	}
	if e.CreatorID != "" {
		if _, err := r.AddOrganizer(ctx, e.Slug, e.CreatorID, e.CreatorName); err != nil {
			log.Printf("repo: SaveEvent: seeding creator organizer failed: %v", err)
		}
	}
	return outcome, nil
}

// GetEventBySlug checks the remote store first, then the seed catalog
// plus locally created events.
func (r *Repository) GetEventBySlug(ctx context.Context, slug string) (models.Event, bool) {
	if r.remote != nil {
		if e, ok, err := r.remote.GetEventBySlug(ctx, slug); err == nil && ok {
			return e, true
		} else if err != nil {
			log.Printf("repo: GetEventBySlug: remote read failed, using fallback: %v", err)
		}
	}
	e, ok, _ := r.local.GetEventBySlug(ctx, slug)
	return e, ok
}

// ListEvents returns the seed catalog plus stored events. Stored events
// that shadow a catalog slug are skipped; catalog entries win.
func (r *Repository) ListEvents(ctx context.Context) []models.Event {
	stored := r.listStored(ctx)
	seen := make(map[string]bool, len(catalog.Events))
	out := make([]models.Event, 0, len(catalog.Events)+len(stored))
	for _, e := range catalog.Events {
		seen[e.Slug] = true
		out = append(out, e)
	}
	for _, e := range stored {
		if !seen[e.Slug] {
			out = append(out, e)
		}
	}
	return out
}

func (r *Repository) listStored(ctx context.Context) []models.Event {
	if r.remote != nil {
		if events, err := r.remote.ListEvents(ctx); err == nil {
			return events
		} else {
			log.Printf("repo: ListEvents: remote read failed, using fallback: %v", err)
		}
	}
	// Local ListEvents already includes the catalog; strip it so the
	// caller's merge does not double-count seeds.
	var userEvents []models.Event
	if events, err := r.local.ListEvents(ctx); err == nil {
		for _, e := range events {
			if _, ok := catalog.BySlug(e.Slug); !ok {
				userEvents = append(userEvents, e)
			}
		}
	}
	return userEvents
}

func (r *Repository) ListUserEvents(ctx context.Context, creatorID string) []models.Event {
	if r.remote != nil {
		if events, err := r.remote.ListUserEvents(ctx, creatorID); err == nil {
			return events
		} else {
			log.Printf("repo: ListUserEvents: remote read failed, using fallback: %v", err)
		}
	}
	events, _ := r.local.ListUserEvents(ctx, creatorID)
	return events
}

func (r *Repository) AddRegistration(ctx context.Context, slug string, reg models.Registration) (store.Outcome, error) {
	return r.write("AddRegistration",
		func() error { return r.remote.AddRegistration(ctx, slug, reg) },
		func() error { return r.local.AddRegistration(ctx, slug, reg) },
	)
}

func (r *Repository) ListRegistrations(ctx context.Context, slug string) []models.Registration {
	if r.remote != nil {
		if regs, err := r.remote.ListRegistrations(ctx, slug); err == nil {
			return regs
		} else {
			log.Printf("repo: ListRegistrations: remote read failed, using fallback: %v", err)
		}
	}
	regs, _ := r.local.ListRegistrations(ctx, slug)
	return regs
}

func (r *Repository) AddVolunteer(ctx context.Context, slug string, vol models.Volunteer) (store.Outcome, error) {
	return r.write("AddVolunteer",
		func() error { return r.remote.AddVolunteer(ctx, slug, vol) },
		func() error { return r.local.AddVolunteer(ctx, slug, vol) },
	)
}

func (r *Repository) ListVolunteers(ctx context.Context, slug string) []models.Volunteer {
	if r.remote != nil {
		if vols, err := r.remote.ListVolunteers(ctx, slug); err == nil {
			return vols
		} else {
			log.Printf("repo: ListVolunteers: remote read failed, using fallback: %v", err)
		}
	}
	vols, _ := r.local.ListVolunteers(ctx, slug)
	return vols
}

// AddSuggestion guarantees every stored suggestion carries an id and a
// creation timestamp, generating them when the caller did not.
func (r *Repository) AddSuggestion(ctx context.Context, slug string, s models.Suggestion) (store.Outcome, error) {
	s.Slug = slug
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt == "" {
		s.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return r.write("AddSuggestion",
		func() error { return r.remote.AddSuggestion(ctx, slug, s) },
		func() error { return r.local.AddSuggestion(ctx, slug, s) },
	)
}

func (r *Repository) ListSuggestions(ctx context.Context, slug string) []models.Suggestion {
	if r.remote != nil {
		if suggestions, err := r.remote.ListSuggestions(ctx, slug); err == nil {
			return suggestions
		} else {
			log.Printf("repo: ListSuggestions: remote read failed, using fallback: %v", err)
		}
	}
	suggestions, _ := r.local.ListSuggestions(ctx, slug)
	return suggestions
}

func (r *Repository) AddOrganizer(ctx context.Context, slug, email, name string) (store.Outcome, error) {
	return r.write("AddOrganizer",
		func() error { return r.remote.AddOrganizer(ctx, slug, email, name) },
		func() error { return r.local.AddOrganizer(ctx, slug, email, name) },
	)
}

func (r *Repository) ListOrganizers(ctx context.Context, slug string) []string {
	if r.remote != nil {
		if emails, err := r.remote.ListOrganizers(ctx, slug); err == nil {
			return emails
		} else {
			log.Printf("repo: ListOrganizers: remote read failed, using fallback: %v", err)
		}
	}
	emails, _ := r.local.ListOrganizers(ctx, slug)
	return emails
}

// AddMessage stores a site-wide inbox message, generating id and
// timestamp the same way suggestions get theirs.
func (r *Repository) AddMessage(ctx context.Context, m models.InboxMessage) (store.Outcome, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt == "" {
		m.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return r.write("AddMessage",
		func() error { return r.remote.AddMessage(ctx, m) },
		func() error { return r.local.AddMessage(ctx, m) },
	)
}

func (r *Repository) ListMessages(ctx context.Context) []models.InboxMessage {
	if r.remote != nil {
		if messages, err := r.remote.ListMessages(ctx); err == nil {
			return messages
		} else {
			log.Printf("repo: ListMessages: remote read failed, using fallback: %v", err)
		}
	}
	messages, _ := r.local.ListMessages(ctx)
	return messages
}

func (r *Repository) AddProposal(ctx context.Context, p models.Proposal) (store.Outcome, error) {
	if p.TS == 0 {
		p.TS = time.Now().UnixMilli()
	}
	return r.write("AddProposal",
		func() error { return r.remote.AddProposal(ctx, p) },
		func() error { return r.local.AddProposal(ctx, p) },
	)
}

func (r *Repository) ListProposals(ctx context.Context) []models.Proposal {
	if r.remote != nil {
		if proposals, err := r.remote.ListProposals(ctx); err == nil {
			return proposals
		} else {
			log.Printf("repo: ListProposals: remote read failed, using fallback: %v", err)
		}
	}
	proposals, _ := r.local.ListProposals(ctx)
	return proposals
}
