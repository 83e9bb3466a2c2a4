package organizers

import (
	"encoding/json"
	"net/http"
	"strings"

	"campushub/middleware"
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

type addRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AddOrganizer adds an email to an event's organizer set. Admins and
// current organizers may add; adding an email that is already present is
// a no-op.
func (a *API) AddOrganizer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	claims, ok := middleware.ProfileFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	current := a.Repo.ListOrganizers(r.Context(), slug)
	if !CanManage(claims.Profile(), current) {
		utils.RespondWithError(w, http.StatusForbidden, "Only organizers of this event can add organizers")
		return
	}

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidEmail(req.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	outcome, err := a.Repo.AddOrganizer(r.Context(), slug, req.Email, req.Name)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add organizer")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "backend": outcome.String()})
}

// ListOrganizers returns the organizer emails for an event, in the order
// they were added.
func (a *API) ListOrganizers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	emails := a.Repo.ListOrganizers(r.Context(), ps.ByName("slug"))
	utils.RespondWithJSON(w, http.StatusOK, emails)
}
