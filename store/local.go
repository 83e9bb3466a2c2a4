package store

import (
	"context"
	"fmt"
	"sort"

	"campushub/catalog"
	"campushub/kv"
	"campushub/models"
)

// Local storage keys. The per-scope map keys ("registrations",
// "volunteers") and the flat campus_* list keys are both written on every
// add: older dashboards read the flat lists, older event pages read the
// maps. Reads merge the two layouts; identical entries showing up once
// per layout is accepted, not masked.
const (
	keyUserEvents    = "user_events"
	keyRegistrations = "registrations"
	keyRegsFlat      = "campus_registrations"
	keyVolunteers    = "volunteers"
	keyVolsFlat      = "campus_volunteers"
	keyMessages      = "campus_messages"
	keyProposals     = "proposed_events"
)

func suggestionsKey(slug string) string { return fmt.Sprintf("campus_suggestions_%s", slug) }
func organizersKey(slug string) string  { return fmt.Sprintf("event_organizers_%s", slug) }

// legacyBucket is the nested per-scope layout: {slug: {eventTitle, submissions}}.
type legacyBucket struct {
	EventTitle  string                `json:"eventTitle"`
	Submissions []models.Registration `json:"submissions"`
}

// LocalStore persists everything through the on-disk key-value store.
// It is the fallback backend and must keep working with zero external
// services, so every operation is infallible: kv errors read as empty.
type LocalStore struct {
	kv *kv.Store
}

func NewLocalStore(store *kv.Store) *LocalStore {
	return &LocalStore{kv: store}
}

// SaveEvent appends to the user-created list. Unlike the remote path
// there is no merge by slug here, so saving the same slug twice leaves
// two entries; callers are expected to keep slugs unique.
func (s *LocalStore) SaveEvent(_ context.Context, e models.Event) error {
	var events []models.Event
	s.kv.Get(keyUserEvents, &events)
	events = append(events, e)
	s.kv.Set(keyUserEvents, events)
	return nil
}

// GetEventBySlug checks the seed catalog first, then user-created events.
func (s *LocalStore) GetEventBySlug(_ context.Context, slug string) (models.Event, bool, error) {
	if e, ok := catalog.BySlug(slug); ok {
		return e, true, nil
	}
	var events []models.Event
	s.kv.Get(keyUserEvents, &events)
	for _, e := range events {
		if e.Slug == slug {
			return e, true, nil
		}
	}
	return models.Event{}, false, nil
}

func (s *LocalStore) ListEvents(_ context.Context) ([]models.Event, error) {
	var userEvents []models.Event
	s.kv.Get(keyUserEvents, &userEvents)
	out := make([]models.Event, 0, len(catalog.Events)+len(userEvents))
	out = append(out, catalog.Events...)
	out = append(out, userEvents...)
	return out, nil
}

func (s *LocalStore) ListUserEvents(_ context.Context, creatorID string) ([]models.Event, error) {
	var events []models.Event
	s.kv.Get(keyUserEvents, &events)
	out := []models.Event{}
	for _, e := range events {
		if e.CreatorID == creatorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *LocalStore) addSubmission(mapKey, flatKey, slug string, reg models.Registration) {
	legacy := map[string]legacyBucket{}
	s.kv.Get(mapKey, &legacy)
	bucket := legacy[slug]
	if bucket.EventTitle == "" {
		bucket.EventTitle = reg.EventTitle
	}
	bucket.Submissions = append(bucket.Submissions, reg)
	legacy[slug] = bucket
	s.kv.Set(mapKey, legacy)

	var flat []models.Registration
	s.kv.Get(flatKey, &flat)
	flat = append(flat, reg)
	s.kv.Set(flatKey, flat)
}

// listSubmissions merges the per-scope map and the flat list. No
// de-duplication happens across the two layouts. Entries from either
// layout are normalized (ts vs createdAt) and re-sorted oldest-first so
// callers never re-sort.
func (s *LocalStore) listSubmissions(mapKey, flatKey, slug string) []models.Registration {
	out := []models.Registration{}

	legacy := map[string]legacyBucket{}
	s.kv.Get(mapKey, &legacy)
	out = append(out, legacy[slug].Submissions...)

	var flat []models.Registration
	s.kv.Get(flatKey, &flat)
	for _, r := range flat {
		if r.Slug == slug {
			out = append(out, r)
		}
	}

	for i := range out {
		out[i].Normalize()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TS < out[j].TS })
	return out
}

func (s *LocalStore) AddRegistration(_ context.Context, slug string, reg models.Registration) error {
	s.addSubmission(keyRegistrations, keyRegsFlat, slug, reg)
	return nil
}

func (s *LocalStore) ListRegistrations(_ context.Context, slug string) ([]models.Registration, error) {
	return s.listSubmissions(keyRegistrations, keyRegsFlat, slug), nil
}

func (s *LocalStore) AddVolunteer(_ context.Context, slug string, vol models.Volunteer) error {
	s.addSubmission(keyVolunteers, keyVolsFlat, slug, vol)
	return nil
}

func (s *LocalStore) ListVolunteers(_ context.Context, slug string) ([]models.Volunteer, error) {
	return s.listSubmissions(keyVolunteers, keyVolsFlat, slug), nil
}

func (s *LocalStore) AddSuggestion(_ context.Context, slug string, sug models.Suggestion) error {
	key := suggestionsKey(slug)
	var list []models.Suggestion
	s.kv.Get(key, &list)
	list = append([]models.Suggestion{sug}, list...)
	s.kv.Set(key, list)
	return nil
}

func (s *LocalStore) ListSuggestions(_ context.Context, slug string) ([]models.Suggestion, error) {
	list := []models.Suggestion{}
	s.kv.Get(suggestionsKey(slug), &list)
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt > list[j].CreatedAt })
	return list, nil
}

// AddOrganizer has set semantics: re-adding an email is a no-op. The
// local layout stores emails only; the name is dropped here, as it always
// was on this path.
func (s *LocalStore) AddOrganizer(_ context.Context, slug, email, _ string) error {
	key := organizersKey(slug)
	var emails []string
	s.kv.Get(key, &emails)
	for _, e := range emails {
		if e == email {
			return nil
		}
	}
	emails = append(emails, email)
	s.kv.Set(key, emails)
	return nil
}

func (s *LocalStore) ListOrganizers(_ context.Context, slug string) ([]string, error) {
	emails := []string{}
	s.kv.Get(organizersKey(slug), &emails)
	return emails, nil
}

func (s *LocalStore) AddMessage(_ context.Context, m models.InboxMessage) error {
	var list []models.InboxMessage
	s.kv.Get(keyMessages, &list)
	list = append([]models.InboxMessage{m}, list...)
	s.kv.Set(keyMessages, list)
	return nil
}

func (s *LocalStore) ListMessages(_ context.Context) ([]models.InboxMessage, error) {
	list := []models.InboxMessage{}
	s.kv.Get(keyMessages, &list)
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt > list[j].CreatedAt })
	return list, nil
}

func (s *LocalStore) AddProposal(_ context.Context, p models.Proposal) error {
	var list []models.Proposal
	s.kv.Get(keyProposals, &list)
	list = append(list, p)
	s.kv.Set(keyProposals, list)
	return nil
}

func (s *LocalStore) ListProposals(_ context.Context) ([]models.Proposal, error) {
	list := []models.Proposal{}
	s.kv.Get(keyProposals, &list)
	return list, nil
}
