package habit

import (
	"sort"
	"strings"
	"time"
)

// Habit is a tracked habit with its completion history. Names are stored
// lowercase and compared case-insensitively everywhere. Completion dates are
// calendar dates (midnight UTC) with no duplicates.
type Habit struct {
	Name            string
	Description     string
	Periodicity     Periodicity
	CompletionDates []time.Time
}

// New creates a habit, normalizing the name to lower case and the completion
// dates to a de-duplicated, ascending calendar-date set.
func New(name, description string, p Periodicity, dates ...time.Time) *Habit {
	h := &Habit{
		Name:        strings.ToLower(strings.TrimSpace(name)),
		Description: description,
		Periodicity: p,
	}
	for _, d := range dates {
		h.addDate(DateOf(d))
	}
	return h
}

// DateOf truncates a time to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date at midnight UTC.
func Today() time.Time {
	return DateOf(time.Now().UTC())
}

// addDate inserts a normalized date, keeping the set sorted and duplicate-free.
func (h *Habit) addDate(d time.Time) {
	i := sort.Search(len(h.CompletionDates), func(i int) bool {
		return !h.CompletionDates[i].Before(d)
	})
	if i < len(h.CompletionDates) && h.CompletionDates[i].Equal(d) {
		return
	}
	h.CompletionDates = append(h.CompletionDates, time.Time{})
	copy(h.CompletionDates[i+1:], h.CompletionDates[i:])
	h.CompletionDates[i] = d
}

// LastCompletion returns the most recent completion date, if any.
func (h *Habit) LastCompletion() (time.Time, bool) {
	if len(h.CompletionDates) == 0 {
		return time.Time{}, false
	}
	last := h.CompletionDates[0]
	for _, d := range h.CompletionDates[1:] {
		if d.After(last) {
			last = d
		}
	}
	return last, true
}

// Streak counts consecutive completions ending at the most recent one.
// A single gap terminates the count; older runs are not considered.
func (h *Habit) Streak() int {
	if len(h.CompletionDates) == 0 {
		return 0
	}

	desc := make([]time.Time, len(h.CompletionDates))
	copy(desc, h.CompletionDates)
	sort.Slice(desc, func(i, j int) bool { return desc[i].After(desc[j]) })

	streak := 1
	cursor := desc[0]
	for _, d := range desc[1:] {
		if !h.Periodicity.Consecutive(cursor, d) {
			break
		}
		streak++
		cursor = d
	}
	return streak
}

// MarkCompleted records a completion for the given date if the current period
// has not already been satisfied. now is accepted only when it falls strictly
// after the last completion plus one period length; the first completion is
// always accepted. Returns false without mutating on rejection.
func (h *Habit) MarkCompleted(now time.Time) bool {
	now = DateOf(now)
	if last, ok := h.LastCompletion(); ok {
		if !now.After(last.Add(h.Periodicity.Length())) {
			return false
		}
	}
	h.addDate(now)
	return true
}

// Matches reports whether name refers to this habit, case-insensitively.
func (h *Habit) Matches(name string) bool {
	return strings.EqualFold(h.Name, strings.TrimSpace(name))
}
