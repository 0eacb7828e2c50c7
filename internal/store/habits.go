package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/ecamli/habitr/internal/habit"
)

const dateLayout = "2006-01-02"

// SaveHabit upserts a habit keyed by name, overwriting description,
// periodicity and the full completion-date list.
func (s *Store) SaveHabit(h *habit.Habit) error {
	_, err := s.db.Exec(
		`INSERT INTO habits (name, description, periodicity, completion_dates)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   description = excluded.description,
		   periodicity = excluded.periodicity,
		   completion_dates = excluded.completion_dates`,
		h.Name, h.Description, h.Periodicity.String(), encodeDates(h.CompletionDates),
	)
	if err != nil {
		return fmt.Errorf("save habit %q: %w", h.Name, err)
	}
	return nil
}

// DeleteHabit removes the record with the exact given name.
func (s *Store) DeleteHabit(name string) error {
	_, err := s.db.Exec(`DELETE FROM habits WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete habit %q: %w", name, err)
	}
	return nil
}

// LoadHabits reconstructs every persisted habit in insertion order.
func (s *Store) LoadHabits() ([]*habit.Habit, error) {
	rows, err := s.db.Query(
		`SELECT name, description, periodicity, completion_dates FROM habits ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("load habits: %w", err)
	}
	defer rows.Close()

	var habits []*habit.Habit
	for rows.Next() {
		var name, description, periodicity, dates string
		if err := rows.Scan(&name, &description, &periodicity, &dates); err != nil {
			return nil, err
		}
		p, err := habit.ParsePeriodicity(periodicity)
		if err != nil {
			return nil, fmt.Errorf("habit %q: %w", name, err)
		}
		parsed, err := decodeDates(dates)
		if err != nil {
			return nil, fmt.Errorf("habit %q: %w", name, err)
		}
		habits = append(habits, habit.New(name, description, p, parsed...))
	}
	return habits, rows.Err()
}

// encodeDates joins calendar dates as comma-separated YYYY-MM-DD strings.
// An empty set encodes as the empty string.
func encodeDates(dates []time.Time) string {
	strs := make([]string, len(dates))
	for i, d := range dates {
		strs[i] = d.Format(dateLayout)
	}
	return strings.Join(strs, ",")
}

func decodeDates(encoded string) ([]time.Time, error) {
	if encoded == "" {
		return nil, nil
	}
	var dates []time.Time
	for _, part := range strings.Split(encoded, ",") {
		if part == "" {
			continue
		}
		d, err := time.ParseInLocation(dateLayout, part, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse completion date %q: %w", part, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
