package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ecamli/habitr/internal/habit"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Habits     []jsonHabit `json:"habits"`
}

type jsonHabit struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Periodicity     string   `json:"periodicity"`
	Streak          int      `json:"streak"`
	LastCompleted   string   `json:"last_completed,omitempty"`
	CompletionDates []string `json:"completion_dates"`
}

func ToJSON(habits []*habit.Habit, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(habits),
	}

	for _, h := range habits {
		lastStr := ""
		if last, ok := h.LastCompletion(); ok {
			lastStr = last.Format(dateLayout)
		}

		export.Habits = append(export.Habits, jsonHabit{
			Name:            h.Name,
			Description:     h.Description,
			Periodicity:     h.Periodicity.String(),
			Streak:          h.Streak(),
			LastCompleted:   lastStr,
			CompletionDates: formatDates(h.CompletionDates),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
