package habit

// ByPeriodicity filters habits to those tracked at the given periodicity,
// preserving order.
func ByPeriodicity(habits []*Habit, p Periodicity) []*Habit {
	var out []*Habit
	for _, h := range habits {
		if h.Periodicity == p {
			out = append(out, h)
		}
	}
	return out
}

// LongestOverall finds the longest current streak across habits with
// differing periodicities. Each streak is normalized to approximate days
// (daily x1, weekly x7, monthly x30) for comparison, then converted back to
// the winner's own unit for display. The first habit encountered wins ties.
// ok is false when the list is empty or no habit has a positive streak.
func LongestOverall(habits []*Habit) (streak int, p Periodicity, ok bool) {
	bestDays := 0
	for _, h := range habits {
		days := h.Periodicity.NormalizedDays(h.Streak())
		if days > bestDays {
			bestDays = days
			p = h.Periodicity
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	switch p {
	case Weekly:
		streak = bestDays / 7
	case Monthly:
		streak = bestDays / 30
	default:
		streak = bestDays
	}
	return streak, p, true
}

// LongestForHabit reports a single habit's current streak and its unit.
func LongestForHabit(h *Habit) (int, Periodicity) {
	return h.Streak(), h.Periodicity
}
