package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.ToLower(args[0])

		reg, s, err := openRegistry()
		if err != nil {
			return err
		}
		defer s.Close()

		found, err := reg.Delete(name)
		if err != nil {
			return err
		}
		if !found {
			fmt.Println(errStyle.Render(fmt.Sprintf("The habit '%s' cannot be found.", name)))
			return nil
		}

		fmt.Println(infoStyle.Render(fmt.Sprintf("The habit '%s' has been deleted.", name)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
