package habit

import (
	"fmt"
	"strings"
	"time"
)

// Periodicity is the cadence a habit is tracked against.
type Periodicity int

const (
	Daily Periodicity = iota
	Weekly
	Monthly
)

var periodicityNames = map[Periodicity]string{
	Daily:   "daily",
	Weekly:  "weekly",
	Monthly: "monthly",
}

func (p Periodicity) String() string {
	if name, ok := periodicityNames[p]; ok {
		return name
	}
	return "unknown"
}

// Unit returns the singular display unit for streak messages.
func (p Periodicity) Unit() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	}
	return "period"
}

// Length returns the fixed period duration used by the completion gate and
// streak normalization. Monthly is a flat 30 days here even though streak
// chaining uses calendar-month adjacency; the two notions are intentionally
// kept apart to preserve the observed behavior near month boundaries.
func (p Periodicity) Length() time.Duration {
	switch p {
	case Weekly:
		return 7 * 24 * time.Hour
	case Monthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// NormalizedDays converts a streak count to an approximate day count so
// streaks under different periodicities can be compared.
func (p Periodicity) NormalizedDays(streak int) int {
	switch p {
	case Weekly:
		return streak * 7
	case Monthly:
		return streak * 30
	default:
		return streak
	}
}

// Consecutive reports whether two completion dates are adjacent under this
// periodicity. later must be >= earlier; both are calendar dates (midnight UTC).
// Daily and Weekly compare exact day spans. Monthly is calendar-month
// adjacency: day-of-month is ignored entirely.
func (p Periodicity) Consecutive(later, earlier time.Time) bool {
	switch p {
	case Daily:
		return later.Sub(earlier) == 24*time.Hour
	case Weekly:
		return later.Sub(earlier) == 7*24*time.Hour
	case Monthly:
		sameYear := later.Year() == earlier.Year() && int(later.Month())-int(earlier.Month()) == 1
		yearWrap := later.Month() == time.January && earlier.Month() == time.December &&
			later.Year()-earlier.Year() == 1
		return sameYear || yearWrap
	}
	return false
}

// ParsePeriodicity validates a user-supplied periodicity string,
// case-insensitively, against the three recognized values.
func ParsePeriodicity(s string) (Periodicity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	}
	return 0, fmt.Errorf("invalid periodicity %q: must be daily, weekly or monthly", s)
}

// Periodicities lists all valid values in display order.
func Periodicities() []Periodicity {
	return []Periodicity{Daily, Weekly, Monthly}
}
