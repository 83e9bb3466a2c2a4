// Package inbox handles the site-wide contact messages organizers see
// in their inbox. Messages are global, not tied to any event.
package inbox

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

type messageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// AddMessage stores a contact message.
func (a *API) AddMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and message are required")
		return
	}
	if !utils.ValidEmail(req.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	outcome, err := a.Repo.AddMessage(r.Context(), models.InboxMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save message")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "backend": outcome.String()})
}

// ListMessages returns the inbox newest-first, for organiser and admin
// sessions.
func (a *API) ListMessages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
	utils.RespondWithJSON(w, http.StatusOK, a.Repo.ListMessages(r.Context()))
}
