package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecamli/habitr/internal/habit"
)

var createCmd = &cobra.Command{
	Use:   "create NAME DESCRIPTION PERIODICITY",
	Short: "Create a new habit",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, description := args[0], args[1]

		p, err := habit.ParsePeriodicity(args[2])
		if err != nil {
			fmt.Println(errStyle.Render("Invalid periodicity. Please choose 'daily', 'weekly', or 'monthly'."))
			return nil
		}

		reg, s, err := openRegistry()
		if err != nil {
			return err
		}
		defer s.Close()

		h := habit.New(name, description, p)
		if h.Name == "" {
			fmt.Println(errStyle.Render("Habit name cannot be empty."))
			return nil
		}
		if reg.Find(h.Name) != nil {
			fmt.Println(warnStyle.Render(fmt.Sprintf("The habit '%s' already exists.", h.Name)))
			return nil
		}
		if err := reg.Add(h); err != nil {
			return err
		}

		fmt.Println(infoStyle.Render(fmt.Sprintf("The habit '%s' has been created with a %s periodicity.", h.Name, p)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
