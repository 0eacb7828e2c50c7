package tui

import (
	"fmt"
	"time"

	"github.com/ecamli/habitr/internal/habit"
)

// viewState represents the currently active view.
type viewState int

const (
	viewHabits viewState = iota
	viewAnalytics
)

var viewNames = []string{"Habits", "Analytics"}

// --- Messages ---

type habitsDataMsg struct {
	habits []*habit.Habit
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// formatStreak renders "3 day(s)" style streak labels.
func formatStreak(streak int, p habit.Periodicity) string {
	return fmt.Sprintf("%d %s(s)", streak, p.Unit())
}

func formatLast(h *habit.Habit) string {
	last, ok := h.LastCompletion()
	if !ok {
		return "never"
	}
	return last.Format("2006-01-02")
}

// dueNow reports whether the habit can be completed today (the gate would
// accept), without mutating it.
func dueNow(h *habit.Habit, today time.Time) bool {
	last, ok := h.LastCompletion()
	if !ok {
		return true
	}
	return habit.DateOf(today).After(last.Add(h.Periodicity.Length()))
}
