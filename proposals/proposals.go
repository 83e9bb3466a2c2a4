// Package proposals handles user-submitted event ideas. Proposals are a
// separate pool from events and are never promoted automatically;
// organizers review them by hand.
package proposals

import (
	"encoding/json"
	"net/http"
	"strings"

	"campushub/middleware"
	"campushub/models"
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

// AddProposal stores an event proposal. Works logged out; a session just
// fills in the proposer id.
func (a *API) AddProposal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p models.Proposal
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Title)
	}
	if p.Image == "" {
		p.Image = "/placeholder-logo.png"
	}
	if claims, ok := middleware.ProfileFrom(r.Context()); ok && p.ProposerID == "" {
		p.ProposerID = claims.Email
	}

	outcome, err := a.Repo.AddProposal(r.Context(), p)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save proposal")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "backend": outcome.String()})
}

// ListProposals returns the review pool for organiser and admin sessions.
func (a *API) ListProposals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, ok := middleware.ProfileFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	role := strings.ToLower(claims.Role)
	if role != "admin" && role != "organiser" && role != "organizer" {
		utils.RespondWithError(w, http.StatusForbidden, "Organizers only")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a.Repo.ListProposals(r.Context()))
}
