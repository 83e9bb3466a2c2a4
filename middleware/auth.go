package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"campushub/globals"
	"campushub/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// Claims carry the session profile. There is no server-side session
// state: the profile lives in the token for as long as the session does.
type Claims struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	University string `json:"university"`
	Role       string `json:"role"`
	Course     string `json:"course,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Profile() models.Profile {
	return models.Profile{
		Name:       c.Name,
		Email:      c.Email,
		University: c.University,
		Role:       c.Role,
		Course:     c.Course,
	}
}

// CreateToken issues a signed session token for the given profile.
func CreateToken(p models.Profile, ttl time.Duration) (string, error) {
	claims := &Claims{
		Name:       p.Name,
		Email:      p.Email,
		University: p.University,
		Role:       p.Role,
		Course:     p.Course,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret())
}

// ValidateJWT parses an "Authorization: Bearer ..." header value.
func ValidateJWT(header string) (*Claims, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, errors.New("invalid token format")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(header[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Authenticate requires a valid session token and puts the profile claims
// into the request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}
		claims, err := ValidateJWT(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), globals.ProfileKey, claims)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuth attaches the profile when a valid token is present and
// passes the request through either way.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if claims, err := ValidateJWT(r.Header.Get("Authorization")); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), globals.ProfileKey, claims))
		}
		next(w, r, ps)
	}
}

// ProfileFrom extracts the session claims a middleware put into ctx.
func ProfileFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(globals.ProfileKey).(*Claims)
	return claims, ok
}
