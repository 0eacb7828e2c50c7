package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ecamli/habitr/internal/habit"
)

type habitsModel struct {
	registry *habit.Registry
	width    int
	height   int

	habits []*habit.Habit
	cursor int

	// filter cycles none -> daily -> weekly -> monthly -> none
	filter *habit.Periodicity

	formActive bool
	form       *huh.Form
	formType   string // "new", "edit"

	// Form field pointers (survive value copies)
	formName        *string
	formDescription *string
	formPeriodicity *string

	editingName string // habit being edited
}

func newHabitsModel(reg *habit.Registry) habitsModel {
	name, desc, period := "", "", "daily"
	return habitsModel{
		registry:        reg,
		formName:        &name,
		formDescription: &desc,
		formPeriodicity: &period,
	}
}

func (m *habitsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m habitsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		habits := m.registry.Habits()
		if m.filter != nil {
			habits = habit.ByPeriodicity(habits, *m.filter)
		}
		return habitsDataMsg{habits: habits}
	}
}

func (m habitsModel) update(msg tea.Msg) (habitsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case habitsDataMsg:
		m.habits = msg.habits
		if m.cursor >= len(m.habits) {
			m.cursor = max(0, len(m.habits)-1)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateList(msg)
	}
	return m, nil
}

func (m habitsModel) updateList(msg tea.KeyMsg) (habitsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Complete):
		if len(m.habits) > 0 {
			return m, m.completeSelected()
		}
	case key.Matches(msg, keys.New):
		return m.showNewForm()
	case key.Matches(msg, keys.Edit):
		if len(m.habits) > 0 {
			return m.showEditForm()
		}
	case key.Matches(msg, keys.Delete):
		if len(m.habits) > 0 {
			name := m.habits[m.cursor].Name
			return m, m.deleteHabit(name)
		}
	case key.Matches(msg, keys.Filter):
		m.cycleFilter()
		return m, m.refresh()
	}
	return m, nil
}

func (m *habitsModel) cycleFilter() {
	switch {
	case m.filter == nil:
		p := habit.Daily
		m.filter = &p
	case *m.filter == habit.Monthly:
		m.filter = nil
	default:
		p := *m.filter + 1
		m.filter = &p
	}
}

func (m habitsModel) completeSelected() tea.Cmd {
	h := m.habits[m.cursor]
	return func() tea.Msg {
		accepted, err := m.registry.Complete(h.Name, time.Now())
		switch {
		case errors.Is(err, habit.ErrNotFound):
			return statusMsg{text: fmt.Sprintf("Habit %q not found", h.Name), isError: true}
		case err != nil:
			return statusMsg{text: fmt.Sprintf("Complete error: %v", err), isError: true}
		case !accepted:
			return statusMsg{text: fmt.Sprintf("%q already completed this %s", h.Name, h.Periodicity.Unit())}
		}
		return statusMsg{text: fmt.Sprintf("Completed %q — streak %s", h.Name, formatStreak(h.Streak(), h.Periodicity))}
	}
}

func (m habitsModel) deleteHabit(name string) tea.Cmd {
	return func() tea.Msg {
		found, err := m.registry.Delete(name)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Delete error: %v", err), isError: true}
		}
		if !found {
			return statusMsg{text: fmt.Sprintf("Habit %q not found", name), isError: true}
		}
		return statusMsg{text: fmt.Sprintf("Deleted %q", name)}
	}
}

func periodicityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, 3)
	for _, p := range habit.Periodicities() {
		opts = append(opts, huh.NewOption(p.String(), p.String()))
	}
	return opts
}

func (m habitsModel) showNewForm() (habitsModel, tea.Cmd) {
	*m.formName = ""
	*m.formDescription = ""
	*m.formPeriodicity = "daily"
	m.formType = "new"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Habit Name").Value(m.formName),
			huh.NewInput().Title("Description").Value(m.formDescription),
			huh.NewSelect[string]().Title("Periodicity").Options(periodicityOptions()...).Value(m.formPeriodicity),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m habitsModel) showEditForm() (habitsModel, tea.Cmd) {
	h := m.habits[m.cursor]
	*m.formName = h.Name
	*m.formDescription = h.Description
	*m.formPeriodicity = h.Periodicity.String()
	m.formType = "edit"
	m.editingName = h.Name

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Habit Name").Value(m.formName),
			huh.NewInput().Title("Description").Value(m.formDescription),
			huh.NewSelect[string]().Title("Periodicity").Options(periodicityOptions()...).Value(m.formPeriodicity),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m habitsModel) updateForm(msg tea.Msg) (habitsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		switch m.formType {
		case "new":
			return m, m.submitNew()
		case "edit":
			return m, m.submitEdit()
		}
	}

	return m, cmd
}

func (m habitsModel) submitNew() tea.Cmd {
	name, desc, period := *m.formName, *m.formDescription, *m.formPeriodicity
	return func() tea.Msg {
		if strings.TrimSpace(name) == "" {
			return statusMsg{text: "Habit name cannot be empty", isError: true}
		}
		p, err := habit.ParsePeriodicity(period)
		if err != nil {
			return statusMsg{text: err.Error(), isError: true}
		}
		if m.registry.Find(name) != nil {
			return statusMsg{text: fmt.Sprintf("Habit %q already exists", strings.ToLower(name)), isError: true}
		}
		h := habit.New(name, desc, p)
		if err := m.registry.Add(h); err != nil {
			return statusMsg{text: fmt.Sprintf("Create error: %v", err), isError: true}
		}
		return statusMsg{text: fmt.Sprintf("Created %q (%s)", h.Name, p)}
	}
}

func (m habitsModel) submitEdit() tea.Cmd {
	target := m.editingName
	name, desc, period := *m.formName, *m.formDescription, *m.formPeriodicity
	return func() tea.Msg {
		patch := habit.Patch{}
		if strings.TrimSpace(name) != "" {
			patch.Name = &name
		}
		patch.Description = &desc
		if p, err := habit.ParsePeriodicity(period); err == nil {
			patch.Periodicity = &p
		}

		found, err := m.registry.Edit(target, patch)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Edit error: %v", err), isError: true}
		}
		if !found {
			return statusMsg{text: fmt.Sprintf("Habit %q not found", target), isError: true}
		}
		return statusMsg{text: fmt.Sprintf("Updated %q", target)}
	}
}

func (m habitsModel) view() string {
	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Habit")
		if m.formType == "edit" {
			title = titleStyle.Render("Edit Habit")
		}
		formView := m.form.View()
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", formView)
		return panelStyle.Width(m.width - 4).Render(content)
	}
	return m.renderList()
}

func (m habitsModel) renderList() string {
	w := m.width - 4

	title := titleStyle.Render("Habits")
	if m.filter != nil {
		title += "  " + periodicityStyle(m.filter.String()).Render("["+m.filter.String()+"]")
	}

	if len(m.habits) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No habits yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-3s %-20s %-10s %-12s %-12s %s", "", "Name", "Period", "Streak", "Last Done", "Description"))
	rows = append(rows, header)

	today := time.Now()
	for i, h := range m.habits {
		dot := periodicityStyle(h.Periodicity.String()).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		due := " "
		if dueNow(h, today) {
			due = successStyle.Render("!")
		}
		row := style.Render(fmt.Sprintf("%s%s %-20s %-10s %-12s %-12s %s",
			cursor, dot, h.Name, h.Periodicity, formatStreak(h.Streak(), h.Periodicity), formatLast(h), h.Description,
		)) + due
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  c: complete  n: new  e: edit  d: delete  f: filter"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
