package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hack the Night":       "hack-the-night",
		"  Spring Fair 2025  ": "spring-fair-2025",
		"Q&A: AI Ethics!":      "qa-ai-ethics",
		"already-a-slug":       "already-a-slug",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	if !ValidEmail("a@uni.edu") {
		t.Error("a@uni.edu rejected")
	}
	for _, bad := range []string{"", "a", "a@", "@uni.edu", "a b@uni.edu", "a@uni"} {
		if ValidEmail(bad) {
			t.Errorf("%q accepted", bad)
		}
	}
}
