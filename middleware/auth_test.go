package middleware

import (
	"testing"
	"time"

	"campushub/models"
)

func TestTokenRoundTrip(t *testing.T) {
	profile := models.Profile{
		Name:       "Ada",
		Email:      "ada@uni.edu",
		University: "Example University",
		Role:       "organiser",
		Course:     "CS",
	}

	token, err := CreateToken(profile, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Profile() != profile {
		t.Fatalf("got %+v", claims.Profile())
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT(""); err == nil {
		t.Fatal("empty header accepted")
	}
	if _, err := ValidateJWT("Bearer not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
	if _, err := ValidateJWT("Token abc"); err == nil {
		t.Fatal("wrong scheme accepted")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := CreateToken(models.Profile{Email: "a@uni.edu"}, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWT("Bearer " + token); err == nil {
		t.Fatal("expired token accepted")
	}
}
