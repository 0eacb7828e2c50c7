package habit

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ============================================================
// Habit construction
// ============================================================

func TestNewNormalizesName(t *testing.T) {
	h := New("  Exercise ", "desc", Daily)
	if h.Name != "exercise" {
		t.Fatalf("expected lowercase trimmed name, got %q", h.Name)
	}
}

func TestNewDeduplicatesDates(t *testing.T) {
	d := date(2024, time.January, 1)
	h := New("read", "", Daily, d, d, d.Add(5*time.Hour))
	if len(h.CompletionDates) != 1 {
		t.Fatalf("expected 1 date after dedup, got %d", len(h.CompletionDates))
	}
	if !h.CompletionDates[0].Equal(d) {
		t.Fatalf("expected %v, got %v", d, h.CompletionDates[0])
	}
}

func TestNewSortsDatesAscending(t *testing.T) {
	h := New("read", "", Daily,
		date(2024, time.January, 3),
		date(2024, time.January, 1),
		date(2024, time.January, 2),
	)
	for i := 1; i < len(h.CompletionDates); i++ {
		if !h.CompletionDates[i].After(h.CompletionDates[i-1]) {
			t.Fatalf("dates not ascending: %v", h.CompletionDates)
		}
	}
}

func TestLastCompletion(t *testing.T) {
	h := New("read", "", Daily)
	if _, ok := h.LastCompletion(); ok {
		t.Fatal("empty habit should have no last completion")
	}

	h = New("read", "", Daily,
		date(2024, time.January, 1),
		date(2024, time.January, 5),
		date(2024, time.January, 3),
	)
	last, ok := h.LastCompletion()
	if !ok || !last.Equal(date(2024, time.January, 5)) {
		t.Fatalf("expected 2024-01-05, got %v (ok=%v)", last, ok)
	}
}

// ============================================================
// Streak computation
// ============================================================

func TestStreakEmpty(t *testing.T) {
	for _, p := range Periodicities() {
		h := New("h", "", p)
		if got := h.Streak(); got != 0 {
			t.Fatalf("%s: empty habit streak = %d, want 0", p, got)
		}
	}
}

func TestStreakSingleDate(t *testing.T) {
	for _, p := range Periodicities() {
		h := New("h", "", p, date(2024, time.June, 15))
		if got := h.Streak(); got != 1 {
			t.Fatalf("%s: single-date streak = %d, want 1", p, got)
		}
	}
}

func TestStreakDailyConsecutive(t *testing.T) {
	today := date(2024, time.June, 15)
	h := New("h", "", Daily, today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -2))
	if got := h.Streak(); got != 3 {
		t.Fatalf("streak = %d, want 3", got)
	}
}

func TestStreakDailyGapBreaks(t *testing.T) {
	today := date(2024, time.June, 15)
	h := New("h", "", Daily, today, today.AddDate(0, 0, -2))
	if got := h.Streak(); got != 1 {
		t.Fatalf("streak = %d, want 1", got)
	}
}

func TestStreakGapTerminatesDespiteOlderRun(t *testing.T) {
	// Unbroken run further back must not extend the current streak.
	today := date(2024, time.June, 15)
	h := New("h", "", Daily,
		today,
		today.AddDate(0, 0, -3),
		today.AddDate(0, 0, -4),
		today.AddDate(0, 0, -5),
	)
	if got := h.Streak(); got != 1 {
		t.Fatalf("streak = %d, want 1", got)
	}
}

func TestStreakWeeklySpacing(t *testing.T) {
	today := date(2024, time.June, 15)
	var dates []time.Time
	for i := 0; i < 4; i++ {
		dates = append(dates, today.AddDate(0, 0, -7*i))
	}
	h := New("h", "", Weekly, dates...)
	if got := h.Streak(); got != 4 {
		t.Fatalf("streak = %d, want 4", got)
	}

	// Off-by-one spacing breaks the chain at that point.
	h = New("h", "", Weekly, today, today.AddDate(0, 0, -7), today.AddDate(0, 0, -13))
	if got := h.Streak(); got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}
}

func TestStreakMonthlyYearBoundary(t *testing.T) {
	h := New("h", "", Monthly, date(2024, time.January, 31), date(2023, time.December, 31))
	if got := h.Streak(); got != 2 {
		t.Fatalf("Dec->Jan streak = %d, want 2", got)
	}
}

func TestStreakMonthlySkippedMonth(t *testing.T) {
	h := New("h", "", Monthly, date(2024, time.March, 15), date(2024, time.January, 15))
	if got := h.Streak(); got != 1 {
		t.Fatalf("skipped-month streak = %d, want 1", got)
	}
}

func TestStreakMonthlyIgnoresDayOfMonth(t *testing.T) {
	// Adjacent months count regardless of day-of-month spacing.
	h := New("h", "", Monthly, date(2024, time.March, 1), date(2024, time.February, 28))
	if got := h.Streak(); got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}
}

// ============================================================
// Completion gate
// ============================================================

func TestMarkCompletedFirstAlwaysAccepted(t *testing.T) {
	for _, p := range Periodicities() {
		h := New("h", "", p)
		if !h.MarkCompleted(date(2024, time.June, 15)) {
			t.Fatalf("%s: first completion should be accepted", p)
		}
		if len(h.CompletionDates) != 1 {
			t.Fatalf("%s: expected 1 date, got %d", p, len(h.CompletionDates))
		}
	}
}

func TestMarkCompletedSameDayRejected(t *testing.T) {
	today := date(2024, time.June, 15)
	h := New("h", "", Daily, today)
	if h.MarkCompleted(today) {
		t.Fatal("same-day completion should be rejected")
	}
	if len(h.CompletionDates) != 1 {
		t.Fatal("rejection must not mutate the date set")
	}
}

func TestMarkCompletedNextDayRejectedByGate(t *testing.T) {
	// The gate requires now to be strictly after last + one period, so the
	// day immediately after is still "this period".
	today := date(2024, time.June, 15)
	h := New("h", "", Daily, today)
	if h.MarkCompleted(today.AddDate(0, 0, 1)) {
		t.Fatal("next-day completion is within the period and should be rejected")
	}
}

func TestMarkCompletedAfterPeriodAccepted(t *testing.T) {
	today := date(2024, time.June, 15)
	h := New("h", "", Daily, today)
	if !h.MarkCompleted(today.AddDate(0, 0, 2)) {
		t.Fatal("completion two days later should be accepted")
	}
	if len(h.CompletionDates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(h.CompletionDates))
	}
}

func TestMarkCompletedWeeklyGate(t *testing.T) {
	last := date(2024, time.June, 1)
	h := New("h", "", Weekly, last)
	if h.MarkCompleted(last.AddDate(0, 0, 7)) {
		t.Fatal("exactly one week later is still within the gate window")
	}
	if !h.MarkCompleted(last.AddDate(0, 0, 8)) {
		t.Fatal("eight days later should be accepted")
	}
}

func TestMarkCompletedMonthlyUsesFixedThirtyDays(t *testing.T) {
	// Gate eligibility is a flat 30 days, not calendar months.
	last := date(2024, time.February, 1)
	h := New("h", "", Monthly, last)
	if h.MarkCompleted(last.AddDate(0, 0, 30)) {
		t.Fatal("30 days later is still within the gate window")
	}
	if !h.MarkCompleted(last.AddDate(0, 0, 31)) {
		t.Fatal("31 days later should be accepted")
	}
}

func TestMarkCompletedNormalizesTimeOfDay(t *testing.T) {
	h := New("h", "", Daily)
	h.MarkCompleted(time.Date(2024, time.June, 15, 18, 30, 0, 0, time.UTC))
	if !h.CompletionDates[0].Equal(date(2024, time.June, 15)) {
		t.Fatalf("expected midnight date, got %v", h.CompletionDates[0])
	}
}

// ============================================================
// Name matching
// ============================================================

func TestMatchesCaseInsensitive(t *testing.T) {
	h := New("Exercise", "", Daily)
	for _, name := range []string{"exercise", "EXERCISE", " Exercise "} {
		if !h.Matches(name) {
			t.Fatalf("expected %q to match", name)
		}
	}
	if h.Matches("exercises") {
		t.Fatal("different name should not match")
	}
}
