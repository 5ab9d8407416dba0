package history

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"Dashboard", "Clusters", "Toggle Theme"} {
		if err := s.Record(ctx, title); err != nil {
			t.Fatalf("Record(%q): %v", title, err)
		}
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"Toggle Theme", "Clusters", "Dashboard"}
	if len(got) != len(want) {
		t.Fatalf("recent = %d entries, want %d", len(got), len(want))
	}
	for i, inv := range got {
		if inv.Title != want[i] {
			t.Fatalf("recent[%d] = %q, want %q", i, inv.Title, want[i])
		}
		if inv.ID == "" {
			t.Fatalf("recent[%d] has empty id", i)
		}
		if inv.InvokedAt.IsZero() {
			t.Fatalf("recent[%d] has zero timestamp", i)
		}
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := s.Record(ctx, "Logs"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("recent = %d entries, want 2", len(got))
	}
}

func TestLastTitle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	title, err := s.LastTitle(ctx)
	if err != nil {
		t.Fatalf("LastTitle: %v", err)
	}
	if title != "" {
		t.Fatalf("title = %q, want empty for fresh store", title)
	}

	if err := s.Record(ctx, "Clusters"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(ctx, "Logs"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	title, err = s.LastTitle(ctx)
	if err != nil {
		t.Fatalf("LastTitle: %v", err)
	}
	if title != "Logs" {
		t.Fatalf("title = %q, want Logs", title)
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	titles := []string{"a", "b", "c", "d", "e"}
	for _, title := range titles {
		if err := s.Record(ctx, title); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	if err := s.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("recent after prune = %d entries, want 2", len(got))
	}
	if got[0].Title != "e" || got[1].Title != "d" {
		t.Fatalf("kept = [%q %q], want [e d]", got[0].Title, got[1].Title)
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var s *Store
	ctx := context.Background()
	if err := s.Record(ctx, "x"); err != nil {
		t.Fatalf("Record on nil store: %v", err)
	}
	if _, err := s.Recent(ctx, 5); err != nil {
		t.Fatalf("Recent on nil store: %v", err)
	}
	if title, err := s.LastTitle(ctx); err != nil || title != "" {
		t.Fatalf("LastTitle on nil store = %q, %v", title, err)
	}
	if err := s.Prune(ctx, 1); err != nil {
		t.Fatalf("Prune on nil store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close on nil store: %v", err)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if err := s.Record(context.Background(), "Dashboard"); err != nil {
		t.Fatalf("Record: %v", err)
	}
}
