package kv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetGetRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	in := map[string]any{"title": "Hack the Night", "count": float64(3)}
	s.Set("campus_test", in)

	var out map[string]any
	if !s.Get("campus_test", &out) {
		t.Fatal("expected key to exist")
	}
	if out["title"] != "Hack the Night" || out["count"] != float64(3) {
		t.Fatalf("got %v", out)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := NewStore(t.TempDir())

	var out []string
	if s.Get("nope", &out) {
		t.Fatal("missing key should report absent")
	}
	if out != nil {
		t.Fatalf("out should be untouched, got %v", out)
	}
}

func TestMalformedValueTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	var out map[string]string
	if s.Get("broken", &out) {
		t.Fatal("malformed value should report absent, not error")
	}
}

func TestSetOverwrites(t *testing.T) {
	s := NewStore(t.TempDir())

	s.Set("k", []string{"a"})
	s.Set("k", []string{"a", "b"})

	var out []string
	if !s.Get("k", &out) {
		t.Fatal("expected key")
	}
	if len(out) != 2 {
		t.Fatalf("expected overwrite, got %v", out)
	}
}
