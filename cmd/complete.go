package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecamli/habitr/internal/habit"
)

var completeCmd = &cobra.Command{
	Use:   "complete NAME",
	Short: "Mark a habit as completed for the current period",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.ToLower(args[0])

		reg, s, err := openRegistry()
		if err != nil {
			return err
		}
		defer s.Close()

		accepted, err := reg.Complete(name, time.Now())
		switch {
		case errors.Is(err, habit.ErrNotFound):
			fmt.Println(errStyle.Render(fmt.Sprintf("The habit '%s' cannot be found.", name)))
			return nil
		case err != nil:
			return err
		case !accepted:
			fmt.Println(warnStyle.Render(fmt.Sprintf("The habit '%s' has already been completed for this period.", name)))
			return nil
		}

		h := reg.Find(name)
		streak := h.Streak()
		if streak > 1 {
			fmt.Println(okStyle.Render(fmt.Sprintf(
				"Congratulations! You've maintained your streak of %d %s(s) for the habit '%s'.",
				streak, h.Periodicity.Unit(), name,
			)))
		} else {
			fmt.Println(infoStyle.Render(fmt.Sprintf(
				"Completed '%s'. Start of a new streak!", name,
			)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
