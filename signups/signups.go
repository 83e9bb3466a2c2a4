// Package signups handles registration and volunteer sign-up forms.
// Posting is public (rate limited at the router); listing is for the
// event's organizers and admins only, a rule enforced here because the
// repository never filters by caller.
package signups

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"campushub/livefeed"
	"campushub/middleware"
	"campushub/models"
	"campushub/organizers"
	"campushub/rdx"
	"campushub/repo"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
)

type API struct {
	Repo *repo.Repository
	Hub  *livefeed.Hub
}

func NewAPI(r *repo.Repository, hub *livefeed.Hub) *API {
	return &API{Repo: r, Hub: hub}
}

type signupRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	TS      int64  `json:"ts"`
}

func (a *API) buildEntry(r *http.Request, slug string) (models.Registration, string) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.Registration{}, "Invalid input"
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		return models.Registration{}, "Name is required"
	}
	if !utils.ValidEmail(req.Email) {
		return models.Registration{}, "A valid email is required"
	}
	if req.TS == 0 {
		req.TS = time.Now().UnixMilli()
	}

	// Orphaned slugs are tolerated; the slug doubles as the label then.
	title := slug
	if e, ok := a.Repo.GetEventBySlug(r.Context(), slug); ok {
		title = e.Title
	}

	entry := models.Registration{
		Slug:       slug,
		EventTitle: title,
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		TS:         req.TS,
	}
	entry.Normalize()
	return entry, ""
}

// Register stores a registration for an event.
func (a *API) Register(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")
	entry, msg := a.buildEntry(r, slug)
	if msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	outcome, err := a.Repo.AddRegistration(r.Context(), slug, entry)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save registration")
		return
	}

	livefeed.Notify(r.Context(), a.Hub, rdx.SignupNotice{
		Kind:       "registration",
		Slug:       slug,
		EventTitle: entry.EventTitle,
		Name:       entry.Name,
		TS:         entry.TS,
	})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "backend": outcome.String()})
}

// Volunteer stores a volunteer sign-up for an event.
func (a *API) Volunteer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")
	entry, msg := a.buildEntry(r, slug)
	if msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	outcome, err := a.Repo.AddVolunteer(r.Context(), slug, entry)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save volunteer sign-up")
		return
	}

	livefeed.Notify(r.Context(), a.Hub, rdx.SignupNotice{
		Kind:       "volunteer",
		Slug:       slug,
		EventTitle: entry.EventTitle,
		Name:       entry.Name,
		TS:         entry.TS,
	})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "backend": outcome.String()})
}

func (a *API) requireOrganizer(w http.ResponseWriter, r *http.Request, slug string) bool {
	claims, ok := middleware.ProfileFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return false
	}
	if !organizers.CanViewAnalytics(claims.Profile(), a.Repo.ListOrganizers(r.Context(), slug)) {
		utils.RespondWithError(w, http.StatusForbidden, "Organizers only")
		return false
	}
	return true
}

// ListRegistrations returns an event's registrations oldest-first.
func (a *API) ListRegistrations(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")
	if !a.requireOrganizer(w, r, slug) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a.Repo.ListRegistrations(r.Context(), slug))
}

// ListVolunteers returns an event's volunteer sign-ups oldest-first.
func (a *API) ListVolunteers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")
	if !a.requireOrganizer(w, r, slug) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a.Repo.ListVolunteers(r.Context(), slug))
}
