package suggestions

import (
	"encoding/json"
	"net/http"
	"strings"

	"campushub/middleware"
	"campushub/models"
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

type suggestRequest struct {
	Message     string `json:"message"`
	AuthorEmail string `json:"authorEmail"`
	AuthorName  string `json:"authorName"`
}

// AddSuggestion stores feedback on an event. Anyone can leave a
// suggestion; the repository fills in id and timestamp.
func (a *API) AddSuggestion(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Message is required")
		return
	}

	// A logged-in session fills author fields the form left blank.
	if claims, ok := middleware.ProfileFrom(r.Context()); ok {
		if req.AuthorEmail == "" {
			req.AuthorEmail = claims.Email
		}
		if req.AuthorName == "" {
			req.AuthorName = claims.Name
		}
	}

	outcome, err := a.Repo.AddSuggestion(r.Context(), slug, models.Suggestion{
		Message:     req.Message,
		AuthorEmail: req.AuthorEmail,
		AuthorName:  req.AuthorName,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save suggestion")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "backend": outcome.String()})
}

// ListSuggestions returns an event's suggestions newest-first, for that
// event's organizers and admins.
func (a *API) ListSuggestions(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	claims, ok := middleware.ProfileFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	if !organizers.CanViewAnalytics(claims.Profile(), a.Repo.ListOrganizers(r.Context(), slug)) {
		utils.RespondWithError(w, http.StatusForbidden, "Organizers only")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, a.Repo.ListSuggestions(r.Context(), slug))
}
