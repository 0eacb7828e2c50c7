package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ecamli/habitr/internal/habit"
)

type analyticsModel struct {
	registry *habit.Registry
	width    int
	height   int

	habits []*habit.Habit

	chart barchart.Model
}

func newAnalyticsModel(reg *habit.Registry) analyticsModel {
	return analyticsModel{
		registry: reg,
		chart:    barchart.New(60, 12),
	}
}

func (m *analyticsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type analyticsDataMsg struct {
	habits []*habit.Habit
}

func (m analyticsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return analyticsDataMsg{habits: m.registry.Habits()}
	}
}

func (m analyticsModel) update(msg tea.Msg) (analyticsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case analyticsDataMsg:
		m.habits = msg.habits
		m.buildChart()
		return m, nil
	}
	return m, nil
}

// buildChart draws one bar per habit, sized by its streak normalized to days
// so differing periodicities share a scale.
func (m *analyticsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if m.height > 30 {
		chartHeight = 16
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, h := range m.habits {
		days := float64(h.Periodicity.NormalizedDays(h.Streak()))
		bars = append(bars, barchart.BarData{
			Label: h.Name,
			Values: []barchart.BarValue{{
				Name:  h.Name,
				Value: days,
				Style: periodicityStyle(h.Periodicity.String()),
			}},
		})
	}

	if len(bars) == 0 {
		bars = []barchart.BarData{{
			Label:  "",
			Values: []barchart.BarValue{{Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}},
		}}
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m analyticsModel) view() string {
	w := m.width - 4

	header := titleStyle.Render("Analytics")

	longest := m.renderLongest()
	chartView := m.chart.View()
	tableView := m.renderStreakTable(w)
	legend := m.renderLegend()

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", longest, "", chartView, "", legend, "", tableView,
		),
	)
}

func (m analyticsModel) renderLongest() string {
	streak, p, ok := habit.LongestOverall(m.habits)
	if !ok {
		return mutedStyle.Render("No streaks yet — complete a habit to start one.")
	}
	return fmt.Sprintf("%s %s",
		highlightStyle.Render("Longest streak:"),
		successStyle.Render(formatStreak(streak, p)),
	)
}

func (m analyticsModel) renderStreakTable(w int) string {
	if len(m.habits) == 0 {
		return mutedStyle.Render("  No habits to analyze")
	}

	var rows []string
	headerRow := mutedStyle.Render(fmt.Sprintf("  %-20s %-10s %-12s %10s", "Habit", "Period", "Streak", "~Days"))
	rows = append(rows, headerRow)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 54))))

	for _, h := range m.habits {
		streak, p := habit.LongestForHabit(h)
		dot := periodicityStyle(p.String()).Render("●")
		rows = append(rows, fmt.Sprintf("  %s %-18s %-10s %-12s %10d",
			dot, h.Name, p, formatStreak(streak, p), p.NormalizedDays(streak),
		))
	}

	return strings.Join(rows, "\n")
}

func (m analyticsModel) renderLegend() string {
	var items []string
	for _, p := range habit.Periodicities() {
		dot := periodicityStyle(p.String()).Render("●")
		items = append(items, fmt.Sprintf("%s %s", dot, p))
	}
	return "  " + strings.Join(items, "  ")
}
