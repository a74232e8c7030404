package session

import (
	"context"
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, TokenKey); err != nil || ok {
		t.Fatalf("Get on empty store = %v, %v", ok, err)
	}
	if err := s.Set(ctx, TokenKey, "abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, TokenKey, "def"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := s.Set(ctx, UserKey, `{"id":"demo1"}`); err != nil {
		t.Fatal(err)
	}

	v, ok, err := s.Get(ctx, TokenKey)
	if err != nil || !ok || v != "def" {
		t.Fatalf("Get = %q, %v, %v", v, ok, err)
	}

	if err := s.Delete(ctx, TokenKey, UserKey, "never-set"); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{TokenKey, UserKey} {
		if _, ok, err := s.Get(ctx, k); err != nil || ok {
			t.Fatalf("%s still present after delete (%v)", k, err)
		}
	}
	if err := s.Delete(ctx); err != nil {
		t.Fatalf("empty delete: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		// the sqlite driver needs cgo
		t.Skipf("sqlite unavailable: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}
