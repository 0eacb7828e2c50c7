package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecamli/habitr/internal/habit"
)

var editCmd = &cobra.Command{
	Use:   "edit NAME",
	Short: "Edit a habit's name, description or periodicity",
	Long:  "Edit a habit. Flags that are not set keep the current value.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.ToLower(args[0])

		patch := habit.Patch{}
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			patch.Name = &v
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			patch.Description = &v
		}
		if cmd.Flags().Changed("periodicity") {
			v, _ := cmd.Flags().GetString("periodicity")
			p, err := habit.ParsePeriodicity(v)
			if err != nil {
				fmt.Println(errStyle.Render("Invalid periodicity. Please choose 'daily', 'weekly', or 'monthly'."))
				return nil
			}
			patch.Periodicity = &p
		}

		reg, s, err := openRegistry()
		if err != nil {
			return err
		}
		defer s.Close()

		found, err := reg.Edit(name, patch)
		if err != nil {
			return err
		}
		if !found {
			fmt.Println(errStyle.Render(fmt.Sprintf("Habit '%s' does not exist.", name)))
			return nil
		}

		fmt.Println(okStyle.Render(fmt.Sprintf("Habit '%s' updated successfully.", name)))
		return nil
	},
}

func init() {
	editCmd.Flags().String("name", "", "new habit name")
	editCmd.Flags().String("description", "", "new habit description")
	editCmd.Flags().String("periodicity", "", "new periodicity (daily, weekly or monthly)")
	rootCmd.AddCommand(editCmd)
}
