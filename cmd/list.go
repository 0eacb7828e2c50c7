package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecamli/habitr/internal/habit"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked habits with their streaks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, s, err := openRegistry()
		if err != nil {
			return err
		}
		defer s.Close()

		habits := reg.Habits()
		if cmd.Flags().Changed("periodicity") {
			v, _ := cmd.Flags().GetString("periodicity")
			p, err := habit.ParsePeriodicity(v)
			if err != nil {
				fmt.Println(errStyle.Render("Invalid periodicity. Please choose 'daily', 'weekly', or 'monthly'."))
				return nil
			}
			habits = habit.ByPeriodicity(habits, p)
		}

		if len(habits) == 0 {
			fmt.Println(warnStyle.Render("No habits found."))
			return nil
		}

		fmt.Println(infoStyle.Render(fmt.Sprintf("%-20s %-10s %-10s %s", "Name", "Period", "Streak", "Description")))
		for _, h := range habits {
			fmt.Printf("%-20s %-10s %-10d %s\n", h.Name, h.Periodicity, h.Streak(), h.Description)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("periodicity", "p", "", "only show habits with this periodicity")
	rootCmd.AddCommand(listCmd)
}
