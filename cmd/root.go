package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ecamli/habitr/internal/habit"
	"github.com/ecamli/habitr/internal/store"
	"github.com/ecamli/habitr/internal/tui"
)

// Output styles echoing the original colorized CLI.
var (
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
)

var rootCmd = &cobra.Command{
	Use:   "habitr",
	Short: "Track habits and streaks from the terminal",
	Long:  "Habitr tracks daily, weekly and monthly habits, recording completions and the streaks they build. Without a subcommand it opens the interactive TUI.",
	RunE:  runTUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .habitr.yaml)")
	rootCmd.PersistentFlags().String("db", "", "path to the habits database")
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".habitr")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("HABITR")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// openRegistry opens the configured database and loads the habit registry.
// The caller must Close the returned store.
func openRegistry() (*habit.Registry, *store.Store, error) {
	path := viper.GetString("db")
	if path == "" {
		var err error
		path, err = store.DefaultDBPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve db path: %w", err)
		}
	}

	s, err := store.New(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	reg := habit.NewRegistry(s)
	if err := reg.Load(); err != nil {
		s.Close()
		return nil, nil, err
	}
	return reg, s, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	reg, s, err := openRegistry()
	if err != nil {
		return err
	}
	defer s.Close()

	app := tui.NewApp(reg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
