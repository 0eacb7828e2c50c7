package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecamli/habitr/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all habits with their streaks to CSV or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		reg, s, err := openRegistry()
		if err != nil {
			return err
		}
		defer s.Close()

		if out == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			dateStr := time.Now().Format("2006-01-02")
			out = filepath.Join(home, fmt.Sprintf("habitr-export-%s.%s", dateStr, format))
		}

		switch format {
		case "csv":
			err = export.ToCSV(reg.Habits(), out)
		case "json":
			err = export.ToJSON(reg.Habits(), out)
		default:
			fmt.Println(errStyle.Render(fmt.Sprintf("Unknown format %q: use csv or json.", format)))
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println(okStyle.Render("Exported to " + out))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "csv", "export format (csv or json)")
	exportCmd.Flags().StringP("out", "o", "", "output path (default ~/habitr-export-DATE.FORMAT)")
	rootCmd.AddCommand(exportCmd)
}
