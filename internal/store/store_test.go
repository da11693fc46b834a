package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return s
}

func TestSetAndGet(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("logged_in", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := s.Get("logged_in")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be present")
	}
	if value != "true" {
		t.Errorf("value = %q, want %q", value, "true")
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected key to be absent")
	}
}

func TestSetOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", "one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("k", "two"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, _, err := s.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "two" {
		t.Errorf("value = %q, want %q", value, "two")
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, ok, err := s.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected key to be gone")
	}
}

func TestDeleteMissing(t *testing.T) {
	s := openTestStore(t)

	if err := s.Delete("never-set"); err != nil {
		t.Errorf("delete missing key: %v", err)
	}
}

func TestTakeConsumesOnce(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("slot", "payload"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := s.Take("slot")
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if !ok || value != "payload" {
		t.Fatalf("take = (%q, %v), want (payload, true)", value, ok)
	}

	// Second take sees nothing.
	_, ok, err = s.Take("slot")
	if err != nil {
		t.Fatalf("second take: %v", err)
	}
	if ok {
		t.Error("expected slot to be empty after first take")
	}
}

func TestTakeEmpty(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Take("slot")
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if ok {
		t.Error("expected empty take")
	}
}
