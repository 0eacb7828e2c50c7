package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/ecamli/habitr/internal/habit"
)

const dateLayout = "2006-01-02"

func ToCSV(habits []*habit.Habit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Name", "Periodicity", "Streak", "Completions", "Last Completed", "Description"}); err != nil {
		return err
	}

	for _, h := range habits {
		lastStr := ""
		if last, ok := h.LastCompletion(); ok {
			lastStr = last.Format(dateLayout)
		}

		row := []string{
			h.Name,
			h.Periodicity.String(),
			fmt.Sprintf("%d", h.Streak()),
			fmt.Sprintf("%d", len(h.CompletionDates)),
			lastStr,
			h.Description,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDates(dates []time.Time) []string {
	strs := make([]string, len(dates))
	for i, d := range dates {
		strs[i] = d.Format(dateLayout)
	}
	return strs
}
