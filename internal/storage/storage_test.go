package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestKVGetSetDelete(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if _, ok, err := db.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v", ok, err)
	}

	if err := db.Set(ctx, "user_progress", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := db.Get(ctx, "user_progress")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v", ok, err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Get = %s", got)
	}

	// Overwrite replaces the whole value.
	if err := db.Set(ctx, "user_progress", []byte(`{"b":2}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _, _ = db.Get(ctx, "user_progress")
	if string(got) != `{"b":2}` {
		t.Errorf("after overwrite Get = %s", got)
	}

	if err := db.Delete(ctx, "user_progress"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := db.Get(ctx, "user_progress"); ok {
		t.Error("key present after Delete")
	}

	// Deleting again is not an error.
	if err := db.Delete(ctx, "user_progress"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestFactEventsAppendRecent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := db.FactEvents()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, element := range []string{"Iron", "Gold", "Neon"} {
		err := repo.Append(ctx, FactEvent{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Element:   element,
			Provider:  "mock",
			Model:     "mock",
			LatencyMs: 12,
			Success:   element != "Gold",
		})
		if err != nil {
			t.Fatalf("Append(%s): %v", element, err)
		}
	}

	events, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(Recent) = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Element != "Neon" || events[1].Element != "Gold" {
		t.Errorf("Recent order = %s, %s", events[0].Element, events[1].Element)
	}
	if events[1].Success {
		t.Error("Gold event should be a failure")
	}
	if events[0].ID == "" {
		t.Error("event ID not assigned")
	}
}
