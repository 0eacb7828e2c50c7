// Package seed loads a set of predefined demo habits with generated
// completion histories, so a fresh install has data to explore.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ecamli/habitr/internal/habit"
)

const (
	minEntries = 4
	maxEntries = 10
)

// Dates generates n consecutive completion dates ending at today, stepping
// backwards by the periodicity. Monthly steps by calendar months with the
// day-of-month clamped to the target month's last day, so a history started
// on the 31st stays valid through shorter months.
func Dates(p habit.Periodicity, n int, today time.Time) []time.Time {
	today = habit.DateOf(today)
	dates := make([]time.Time, 0, n)

	switch p {
	case habit.Daily:
		for i := 0; i < n; i++ {
			dates = append(dates, today.AddDate(0, 0, -i))
		}
	case habit.Weekly:
		for i := 0; i < n; i++ {
			dates = append(dates, today.AddDate(0, 0, -7*i))
		}
	case habit.Monthly:
		for i := 0; i < n; i++ {
			year, month := today.Year(), int(today.Month())-i
			for month <= 0 {
				month += 12
				year--
			}
			day := today.Day()
			if last := lastDayOfMonth(year, time.Month(month)); day > last {
				day = last
			}
			dates = append(dates, time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
		}
	}
	return dates
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Habits builds the predefined habit set with randomized history lengths.
func Habits(rng *rand.Rand, today time.Time) []*habit.Habit {
	entries := func() int { return minEntries + rng.Intn(maxEntries-minEntries+1) }

	defs := []struct {
		name, description string
		periodicity       habit.Periodicity
	}{
		{"exercise", "Exercise daily", habit.Daily},
		{"read", "Read daily", habit.Daily},
		{"meeting", "Attend weekly meeting", habit.Weekly},
		{"clean", "Weekly house cleaning", habit.Weekly},
		{"budget", "Review monthly budget", habit.Monthly},
		{"maintenance", "Monthly car maintenance", habit.Monthly},
	}

	habits := make([]*habit.Habit, 0, len(defs))
	for _, d := range defs {
		dates := Dates(d.periodicity, entries(), today)
		habits = append(habits, habit.New(d.name, d.description, d.periodicity, dates...))
	}
	return habits
}

// Load upserts the predefined habits into storage, overwriting any existing
// habit with the same name.
func Load(storage habit.Storage, rng *rand.Rand, today time.Time) ([]*habit.Habit, error) {
	habits := Habits(rng, today)
	for _, h := range habits {
		if err := storage.SaveHabit(h); err != nil {
			return nil, fmt.Errorf("seed habit %q: %w", h.Name, err)
		}
	}
	return habits, nil
}
