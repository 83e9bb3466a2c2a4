// Package analytics serves the organizer dashboard numbers. The gate on
// who may see them lives here in the handler; the repository hands the
// data to any caller.
package analytics

import (
	"net/http"

	"campushub/middleware"
	"campushub/organizers"
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

// EventAnalytics returns sign-up counts for one event. Admins and the
// event's organizers only.
func (a *API) EventAnalytics(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	claims, ok := middleware.ProfileFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	organizerEmails := a.Repo.ListOrganizers(r.Context(), slug)
	if !organizers.CanViewAnalytics(claims.Profile(), organizerEmails) {
		utils.RespondWithError(w, http.StatusForbidden, "Organizers only")
		return
	}

	// Orphaned scopes still report; the slug stands in for the title.
	title := slug
	if e, ok := a.Repo.GetEventBySlug(r.Context(), slug); ok {
		title = e.Title
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"slug":          slug,
		"eventTitle":    title,
		"registrations": len(a.Repo.ListRegistrations(r.Context(), slug)),
		"volunteers":    len(a.Repo.ListVolunteers(r.Context(), slug)),
		"suggestions":   len(a.Repo.ListSuggestions(r.Context(), slug)),
		"organizers":    len(organizerEmails),
	})
}
