package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"campushub/db"
	"campushub/kv"
	"campushub/middleware"
	"campushub/models"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const localUsersKey = "campus_users"

const tokenTTL = 72 * time.Hour

// API owns account storage. Accounts follow the same dual-backend rule
// as everything else: the users collection when MongoDB is up, a local
// list otherwise.
type API struct {
	KV *kv.Store
}

func NewAPI(store *kv.Store) *API {
	return &API{KV: store}
}

type signupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	University string `json:"university"`
	Role       string `json:"role"`
	Course     string `json:"course"`
	Password   string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// normalizeRole maps both spellings of organiser onto one and refuses
// anything that is not a known role.
func normalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "organiser", "organizer":
		return "organiser"
	case "admin":
		return "admin"
	default:
		return "student"
	}
}

func (a *API) findUser(ctx context.Context, email string) (models.User, bool) {
	if db.Client != nil {
		var u models.User
		err := db.UsersCollection.FindOne(ctx, bson.M{"email": email}).Decode(&u)
		if err == nil {
			return u, true
		}
		if err != mongo.ErrNoDocuments {
			log.Printf("auth: user lookup failed, using fallback: %v", err)
		} else {
			return models.User{}, false
		}
	}
	var users []models.User
	a.KV.Get(localUsersKey, &users)
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (a *API) saveUser(ctx context.Context, u models.User) {
	if db.Client != nil {
		if _, err := db.UsersCollection.InsertOne(ctx, u); err == nil {
			return
		} else {
			log.Printf("auth: user insert failed, using fallback: %v", err)
		}
	}
	var users []models.User
	a.KV.Get(localUsersKey, &users)
	users = append(users, u)
	a.KV.Set(localUsersKey, users)
}

// Signup creates an account and logs it straight in.
func (a *API) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidEmail(req.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	if len(req.Password) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}
	if req.Name == "" {
		req.Name = strings.SplitN(req.Email, "@", 2)[0]
	}

	if _, exists := a.findUser(r.Context(), req.Email); exists {
		utils.RespondWithError(w, http.StatusConflict, "An account with this email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		University:   req.University,
		Role:         normalizeRole(req.Role),
		Course:       req.Course,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UnixMilli(),
	}
	a.saveUser(r.Context(), user)

	a.respondWithSession(w, user)
}

// Login checks credentials and issues a session token.
func (a *API) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, ok := a.findUser(r.Context(), req.Email)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	a.respondWithSession(w, user)
}

// Me returns the profile carried by the session token.
func (a *API) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, ok := middleware.ProfileFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, claims.Profile())
}

func (a *API) respondWithSession(w http.ResponseWriter, user models.User) {
	profile := models.Profile{
		Name:       user.Name,
		Email:      user.Email,
		University: user.University,
		Role:       user.Role,
		Course:     user.Course,
	}
	token, err := middleware.CreateToken(profile, tokenTTL)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": token, "profile": profile})
}
