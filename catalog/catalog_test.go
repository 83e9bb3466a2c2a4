package catalog

import "testing"

func TestBySlug(t *testing.T) {
	e, ok := BySlug("hack-the-night")
	if !ok {
		t.Fatal("seed event missing")
	}
	if e.Title != "Hack the Night" || e.Kind != "upcoming" {
		t.Fatalf("got %+v", e)
	}

	if _, ok := BySlug("no-such-event"); ok {
		t.Fatal("unknown slug should be absent")
	}
}

func TestSeedSlugsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Events {
		if seen[e.Slug] {
			t.Fatalf("duplicate seed slug %q", e.Slug)
		}
		seen[e.Slug] = true
	}
}
