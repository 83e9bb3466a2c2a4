package organizers

import (
	"testing"

	"campushub/models"
)

func TestCanViewAnalytics(t *testing.T) {
	list := []string{"a@uni.edu", "b@uni.edu"}

	cases := []struct {
		name    string
		profile models.Profile
		want    bool
	}{
		{"admin always", models.Profile{Email: "x@uni.edu", Role: "admin"}, true},
		{"listed organizer", models.Profile{Email: "a@uni.edu", Role: "organiser"}, true},
		{"listed organizer, case-insensitive", models.Profile{Email: "A@UNI.EDU", Role: "organizer"}, true},
		{"student not listed", models.Profile{Email: "s@uni.edu", Role: "student"}, false},
		{"organiser of a different event", models.Profile{Email: "other@uni.edu", Role: "organiser"}, false},
	}
	for _, tc := range cases {
		if got := CanViewAnalytics(tc.profile, list); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestNoOrganizersMeansAdminsOnly(t *testing.T) {
	if CanViewAnalytics(models.Profile{Email: "s@uni.edu", Role: "student"}, nil) {
		t.Fatal("student allowed on event with no organizers")
	}
	if !CanViewAnalytics(models.Profile{Email: "root@uni.edu", Role: "admin"}, nil) {
		t.Fatal("admin denied")
	}
}
