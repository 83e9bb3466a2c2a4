package store

import (
	"context"
	"testing"
	"time"

	"campushub/kv"
	"campushub/models"
)

func newLocal(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(kv.NewStore(t.TempDir()))
}

func TestRegistrationStoredAsSubmitted(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	reg := models.Registration{
		Slug:       "hack-the-night",
		EventTitle: "Hack the Night",
		Name:       "Ada Lovelace",
		Email:      "ada@uni.edu",
		Message:    "first-timer",
		TS:         1732233600000,
	}
	if err := s.AddRegistration(ctx, "hack-the-night", reg); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListRegistrations(ctx, "hack-the-night")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("registration missing from list")
	}
	first := got[0]
	if first.Name != reg.Name || first.Email != reg.Email || first.Message != reg.Message {
		t.Fatalf("fields changed: %+v", first)
	}
	if first.TS != reg.TS {
		t.Fatalf("timestamp not preserved: got %d want %d", first.TS, reg.TS)
	}
}

// One add writes both the per-scope map and the flat list, and the read
// path merges both without de-duplicating. Two entries for one submission
// is accepted behavior, not a bug.
func TestLegacyAndFlatLayoutsBothAppear(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	reg := models.Registration{Slug: "film-fest", EventTitle: "Campus Film Fest", Name: "Bo", Email: "bo@uni.edu", TS: 42}
	if err := s.AddRegistration(ctx, "film-fest", reg); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListRegistrations(ctx, "film-fest")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected the entry once per layout, got %d entries", len(got))
	}
	for _, r := range got {
		if r.Email != "bo@uni.edu" || r.TS != 42 {
			t.Fatalf("merged entry mangled: %+v", r)
		}
	}
}

func TestFlatListFilteredByScope(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	s.AddRegistration(ctx, "film-fest", models.Registration{Slug: "film-fest", Name: "A", Email: "a@uni.edu", TS: 1})
	s.AddRegistration(ctx, "hack-the-night", models.Registration{Slug: "hack-the-night", Name: "B", Email: "b@uni.edu", TS: 2})

	got, err := s.ListRegistrations(ctx, "film-fest")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range got {
		if r.Slug != "film-fest" {
			t.Fatalf("foreign scope leaked in: %+v", r)
		}
	}
}

// Entries from an older layout that only carried an ISO createdAt come
// back with ts derived from it, and vice versa.
func TestLegacyTimestampNormalization(t *testing.T) {
	dir := t.TempDir()
	raw := kv.NewStore(dir)
	s := NewLocalStore(raw)
	ctx := context.Background()

	created := time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)
	raw.Set("campus_registrations", []models.Registration{
		{Slug: "film-fest", Name: "Old", Email: "old@uni.edu", CreatedAt: created.Format(time.RFC3339)},
	})

	got, err := s.ListRegistrations(ctx, "film-fest")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	if got[0].TS != created.UnixMilli() {
		t.Fatalf("ts not derived from createdAt: got %d want %d", got[0].TS, created.UnixMilli())
	}
}

func TestRegistrationsSortedOldestFirst(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	s.AddRegistration(ctx, "film-fest", models.Registration{Slug: "film-fest", Name: "Late", Email: "l@uni.edu", TS: 300})
	s.AddRegistration(ctx, "film-fest", models.Registration{Slug: "film-fest", Name: "Early", Email: "e@uni.edu", TS: 100})

	got, err := s.ListRegistrations(ctx, "film-fest")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].TS > got[i].TS {
			t.Fatalf("not sorted ascending: %+v", got)
		}
	}
}

func TestSuggestionsNewestFirstAndEmptyIsNotError(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	empty, err := s.ListSuggestions(ctx, "film-fest")
	if err != nil {
		t.Fatal(err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v", empty)
	}

	s.AddSuggestion(ctx, "film-fest", models.Suggestion{ID: "1", Slug: "film-fest", Message: "older", CreatedAt: "2025-11-01T10:00:00Z"})
	s.AddSuggestion(ctx, "film-fest", models.Suggestion{ID: "2", Slug: "film-fest", Message: "newer", CreatedAt: "2025-11-02T10:00:00Z"})

	got, err := s.ListSuggestions(ctx, "film-fest")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Message != "newer" {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestOrganizerSetSemantics(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	s.AddOrganizer(ctx, "hack-the-night", "a@uni.edu", "")
	got, err := s.ListOrganizers(ctx, "hack-the-night")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "a@uni.edu" {
		t.Fatalf("got %v", got)
	}

	s.AddOrganizer(ctx, "hack-the-night", "a@uni.edu", "Someone")
	got, _ = s.ListOrganizers(ctx, "hack-the-night")
	if len(got) != 1 {
		t.Fatalf("duplicate email re-added: %v", got)
	}
}

func TestMessagesNewestFirst(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	s.AddMessage(ctx, models.InboxMessage{ID: "1", Name: "A", Email: "a@uni.edu", Message: "hi", CreatedAt: "2025-10-01T08:00:00Z"})
	s.AddMessage(ctx, models.InboxMessage{ID: "2", Name: "B", Email: "b@uni.edu", Message: "yo", CreatedAt: "2025-10-02T08:00:00Z"})

	got, err := s.ListMessages(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "2" {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestSaveEventAppendsWithoutSlugCheck(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	e := models.Event{Slug: "quiz-night", Title: "Quiz Night", CreatorID: "q@uni.edu"}
	s.SaveEvent(ctx, e)
	s.SaveEvent(ctx, e)

	// The local path appends; duplicate slugs are the caller's problem.
	got, err := s.ListUserEvents(ctx, "q@uni.edu")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 appended entries, got %d", len(got))
	}
}

func TestGetEventBySlugPrefersCatalog(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	e, ok, err := s.GetEventBySlug(ctx, "hack-the-night")
	if err != nil || !ok {
		t.Fatalf("seed event missing: ok=%v err=%v", ok, err)
	}
	if e.Title != "Hack the Night" {
		t.Fatalf("got %q", e.Title)
	}

	if _, ok, _ := s.GetEventBySlug(ctx, "does-not-exist"); ok {
		t.Fatal("unknown slug should be absent")
	}
}
