package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campushub/kv"
	"campushub/middleware"
	"campushub/models"
	"campushub/repo"
	"campushub/store"

	"github.com/julienschmidt/httprouter"
)

func setup(t *testing.T) (*repo.Repository, http.Handler) {
	t.Helper()
	r := repo.New(nil, store.NewLocalStore(kv.NewStore(t.TempDir())))
	router := httprouter.New()
	router.GET("/api/events/event/:slug/analytics", middleware.Authenticate(NewAPI(r).EventAnalytics))
	return r, router
}

func get(t *testing.T, h http.Handler, path string, profile models.Profile) *httptest.ResponseRecorder {
	t.Helper()
	token, err := middleware.CreateToken(profile, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// The repository hands analytics data to anyone; the handler is where a
// student gets turned away.
func TestStudentBlockedByHandlerNotRepository(t *testing.T) {
	r, router := setup(t)
	ctx := context.Background()

	r.AddOrganizer(ctx, "film-fest", "org@uni.edu", "")
	r.AddRegistration(ctx, "film-fest", models.Registration{Slug: "film-fest", Name: "A", Email: "a@uni.edu", TS: 1})

	// Repository returns the data regardless of who asks.
	if regs := r.ListRegistrations(ctx, "film-fest"); len(regs) == 0 {
		t.Fatal("repository should not filter")
	}

	student := models.Profile{Email: "s@uni.edu", Role: "student"}
	if w := get(t, router, "/api/events/event/film-fest/analytics", student); w.Code != http.StatusForbidden {
		t.Fatalf("student got %d, want 403", w.Code)
	}
}

func TestOrganizerAndAdminSeeCounts(t *testing.T) {
	r, router := setup(t)
	ctx := context.Background()

	r.AddOrganizer(ctx, "film-fest", "org@uni.edu", "")
	r.AddRegistration(ctx, "film-fest", models.Registration{Slug: "film-fest", Name: "A", Email: "a@uni.edu", TS: 1})

	for _, profile := range []models.Profile{
		{Email: "org@uni.edu", Role: "organiser"},
		{Email: "root@uni.edu", Role: "admin"},
	} {
		w := get(t, router, "/api/events/event/film-fest/analytics", profile)
		if w.Code != http.StatusOK {
			t.Fatalf("%s got %d, want 200", profile.Role, w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		// One submission, stored once per local layout.
		if body["registrations"].(float64) < 1 {
			t.Fatalf("registration count missing: %v", body)
		}
	}
}

func TestAnonymousRejected(t *testing.T) {
	_, router := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/events/event/film-fest/analytics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", w.Code)
	}
}
