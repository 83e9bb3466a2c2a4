package events

import (
	"encoding/json"
	"net/http"
	"strings"

	"campushub/middleware"
	"campushub/models"
	"campushub/rdx"
	"campushub/repo"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
)

type API struct {
	Repo *repo.Repository
}

func NewAPI(r *repo.Repository) *API {
	return &API{Repo: r}
}

// GetEvents lists the seed catalog plus stored events, optionally
// filtered by kind or tag.
func (a *API) GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	kind := r.URL.Query().Get("kind")
	tag := r.URL.Query().Get("tag")

	events := a.Repo.ListEvents(r.Context())
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if kind != "" && e.Kind != kind {
			continue
		}
		if tag != "" && !hasTag(e.Tags, tag) {
			continue
		}
		out = append(out, e)
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func (a *API) GetEventsCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	events := a.Repo.ListEvents(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"count": len(events)})
}

// GetEvent serves one event page, read through the Redis cache when
// available.
func (a *API) GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	if e, ok := rdx.CachedEvent(r.Context(), slug); ok {
		utils.RespondWithJSON(w, http.StatusOK, e)
		return
	}

	e, ok := a.Repo.GetEventBySlug(r.Context(), slug)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	rdx.CacheEvent(r.Context(), e)
	utils.RespondWithJSON(w, http.StatusOK, e)
}

// MyEvents lists events created by the logged-in user.
func (a *API) MyEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, ok := middleware.ProfileFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	events := a.Repo.ListUserEvents(r.Context(), claims.Email)
	utils.RespondWithJSON(w, http.StatusOK, events)
}

// CreateEvent saves a user-created event. The body is multipart: an
// "event" JSON field plus an optional "image" file. The creator becomes
// the event's first organizer.
func (a *API) CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	if r.FormValue("event") == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing event data")
		return
	}
	var event models.Event
	if err := json.Unmarshal([]byte(r.FormValue("event")), &event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if event.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if event.Slug == "" {
		event.Slug = utils.Slugify(event.Title)
	}
	if event.Slug == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Cannot derive a slug from this title")
		return
	}
	if event.Kind == "" {
		event.Kind = "upcoming"
	}

	// Slug uniqueness is enforced here, not in the repository.
	if _, exists := a.Repo.GetEventBySlug(r.Context(), event.Slug); exists {
		utils.RespondWithError(w, http.StatusConflict, "An event with this slug already exists")
		return
	}

	claims, ok := middleware.ProfileFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	event.CreatorID = claims.Email
	event.CreatorName = claims.Name

	if path, err := saveEventImage(r, event.Slug); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	} else if path != "" {
		event.Image = path
	}
	if event.Image == "" {
		event.Image = "/placeholder-logo.png"
	}

	outcome, err := a.Repo.SaveEvent(r.Context(), event)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save event")
		return
	}
	rdx.InvalidateEvent(r.Context(), event.Slug)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"event":   event,
		"backend": outcome.String(),
	})
}
