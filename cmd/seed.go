package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecamli/habitr/internal/habit"
	"github.com/ecamli/habitr/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load predefined demo habits with generated histories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := openRegistry()
		if err != nil {
			return err
		}
		defer s.Close()

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		habits, err := seed.Load(s, rng, habit.Today())
		if err != nil {
			return err
		}

		for _, h := range habits {
			fmt.Printf("%-20s streak: %d %s(s)\n", h.Name, h.Streak(), h.Periodicity.Unit())
		}
		fmt.Println(okStyle.Render("Predefined habits have been loaded or updated in the database."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
