package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecamli/habitr/internal/habit"
)

var longestCmd = &cobra.Command{
	Use:   "longest [NAME]",
	Short: "Show the longest current streak, overall or for one habit",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, s, err := openRegistry()
		if err != nil {
			return err
		}
		defer s.Close()

		if len(args) == 1 {
			name := strings.ToLower(args[0])
			h := reg.Find(name)
			if h == nil {
				fmt.Println(errStyle.Render(fmt.Sprintf("The habit '%s' cannot be found.", name)))
				return nil
			}
			streak, p := habit.LongestForHabit(h)
			fmt.Println(infoStyle.Render(fmt.Sprintf(
				"The longest streak for '%s' is %d %s(s).", name, streak, p.Unit(),
			)))
			return nil
		}

		streak, p, ok := habit.LongestOverall(reg.Habits())
		if !ok {
			fmt.Println(warnStyle.Render("No streaks yet."))
			return nil
		}
		fmt.Println(infoStyle.Render(fmt.Sprintf(
			"The longest streak across all habits is %d %s(s).", streak, p.Unit(),
		)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(longestCmd)
}
