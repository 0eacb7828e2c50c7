package store

import (
	"testing"
	"time"

	"github.com/ecamli/habitr/internal/habit"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/habits.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen — should succeed and not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Save / Load round-trip
// ============================================================

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	h := habit.New("exercise", "Exercise daily", habit.Daily,
		date(2024, time.January, 1),
		date(2024, time.January, 2),
	)
	if err := s.SaveHabit(h); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(loaded))
	}

	got := loaded[0]
	if got.Name != "exercise" || got.Description != "Exercise daily" || got.Periodicity != habit.Daily {
		t.Fatalf("scalar fields not preserved: %+v", got)
	}
	if len(got.CompletionDates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(got.CompletionDates))
	}
	want := map[string]bool{"2024-01-01": true, "2024-01-02": true}
	for _, d := range got.CompletionDates {
		if !want[d.Format("2006-01-02")] {
			t.Fatalf("unexpected date %v", d)
		}
	}
}

func TestSaveLoadEmptyDates(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveHabit(habit.New("read", "", habit.Weekly)); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded[0].CompletionDates) != 0 {
		t.Fatalf("expected empty date set, got %v", loaded[0].CompletionDates)
	}
}

func TestSaveUpsertsByName(t *testing.T) {
	s := newTestStore(t)
	s.SaveHabit(habit.New("exercise", "old", habit.Daily))
	s.SaveHabit(habit.New("exercise", "new", habit.Weekly, date(2024, time.June, 1)))

	loaded, err := s.LoadHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Fatalf("upsert should keep a single record, got %d", len(loaded))
	}
	h := loaded[0]
	if h.Description != "new" || h.Periodicity != habit.Weekly || len(h.CompletionDates) != 1 {
		t.Fatalf("upsert did not overwrite wholesale: %+v", h)
	}
}

func TestLoadHabitsEmpty(t *testing.T) {
	s := newTestStore(t)
	loaded, err := s.LoadHabits()
	if err != nil {
		t.Fatal(err)
	}
	if loaded != nil {
		t.Fatalf("expected nil slice, got %d items", len(loaded))
	}
}

func TestLoadHabitsInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	s.SaveHabit(habit.New("zebra", "", habit.Daily))
	s.SaveHabit(habit.New("apple", "", habit.Daily))

	loaded, _ := s.LoadHabits()
	if loaded[0].Name != "zebra" || loaded[1].Name != "apple" {
		t.Fatalf("expected insertion order, got %s, %s", loaded[0].Name, loaded[1].Name)
	}
}

func TestLoadRejectsBadPeriodicity(t *testing.T) {
	s := newTestStore(t)
	_, err := s.db.Exec(
		`INSERT INTO habits (name, description, periodicity, completion_dates) VALUES (?, ?, ?, ?)`,
		"bad", "", "yearly", "",
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadHabits(); err == nil {
		t.Fatal("expected error for unknown periodicity")
	}
}

func TestLoadRejectsBadDate(t *testing.T) {
	s := newTestStore(t)
	_, err := s.db.Exec(
		`INSERT INTO habits (name, description, periodicity, completion_dates) VALUES (?, ?, ?, ?)`,
		"bad", "", "daily", "2024-01-01,not-a-date",
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadHabits(); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

// ============================================================
// Delete
// ============================================================

func TestDeleteHabit(t *testing.T) {
	s := newTestStore(t)
	s.SaveHabit(habit.New("exercise", "", habit.Daily))

	if err := s.DeleteHabit("exercise"); err != nil {
		t.Fatal(err)
	}
	loaded, _ := s.LoadHabits()
	if len(loaded) != 0 {
		t.Fatal("habit should be gone after delete")
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteHabit("nothing"); err != nil {
		t.Fatal(err)
	}
}

// ============================================================
// Date encoding
// ============================================================

func TestEncodeDecodeDates(t *testing.T) {
	dates := []time.Time{date(2024, time.January, 1), date(2024, time.February, 29)}
	encoded := encodeDates(dates)
	if encoded != "2024-01-01,2024-02-29" {
		t.Fatalf("unexpected encoding %q", encoded)
	}

	decoded, err := decodeDates(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 || !decoded[0].Equal(dates[0]) || !decoded[1].Equal(dates[1]) {
		t.Fatalf("round-trip mismatch: %v", decoded)
	}
}

func TestDecodeEmptyString(t *testing.T) {
	decoded, err := decodeDates("")
	if err != nil {
		t.Fatal(err)
	}
	if decoded != nil {
		t.Fatalf("expected nil, got %v", decoded)
	}
}
