package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/focusflow/internal/views"
)

func (m Model) Init() tea.Cmd {
	counts := m.ctrl.Counts()
	return tea.Batch(
		m.spinner.Tick,
		fetchMotivationCmd(m.ctx, m.ctrl.Assistant(), counts.Pending, counts.Completed),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = typed.Width
		m.helpModel.Width = typed.Width
		if m.Summary != "" {
			m.summaryView = views.RenderMarkdown(m.Summary, m.goalsWidth())
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m, nil
	case spinner.TickMsg:
		if typed.ID == m.spinner.ID() {
			if !m.busy() {
				return m, nil
			}
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(typed)
			return m, cmd
		}
	case MotivationMsg:
		m.Motivation = typed.Text
		m.MotivationLoading = false
		return m, nil
	case SummaryMsg:
		m.Summary = typed.Text
		m.summaryView = views.RenderMarkdown(typed.Text, m.goalsWidth())
		m.SummaryLoading = false
		return m, nil
	case SubmitTaskMsg:
		return m.submitTask(typed)
	case SubtasksSuggestedMsg:
		task := m.ctrl.FinishAddTask(m.ctx, typed.Title, typed.Category, typed.Priority, typed.Subtasks)
		m.Tasks.Cursor = 0
		m.Tasks.SubtaskCursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("added task: %s (%d subtasks)", task.Title, len(task.Subtasks))}
		m.logger.Debug("task added", zap.String("task_id", task.ID), zap.Int("subtasks", len(task.Subtasks)))
		return m, nil
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}

	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Dashboard:
		m.CurrentView = ViewDashboard
		return m, nil
	case m.Keys.Tasks:
		m.CurrentView = ViewTasks
		return m, nil
	case m.Keys.Habits:
		m.CurrentView = ViewHabits
		return m, nil
	case m.Keys.Goals:
		m.CurrentView = ViewGoals
		return m, nil
	case m.Keys.NewTask:
		return m.openTaskForm()
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentView {
	case ViewTasks:
		return m.handleTasksKey(msg), nil
	case ViewHabits:
		return m.handleHabitsKey(msg), nil
	case ViewGoals:
		return m.handleGoalsKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	if m.ctrl.InFlight() {
		status = strings.TrimSpace(m.spinner.View() + " generating subtasks... " + status)
	}

	body := ""
	switch m.CurrentView {
	case ViewDashboard:
		body = m.renderDashboard()
	case ViewTasks:
		body = m.renderTasks()
	case ViewHabits:
		body = m.renderHabits()
	case ViewGoals:
		body = m.renderGoals()
	}
	if palette := m.renderCommandPalette(); palette != "" {
		body += "\n\n" + palette
	}
	if m.HelpVisible {
		body += "\n\n" + m.renderHelpView()
	}

	overlay := ""
	if m.form != nil {
		overlay = m.form.View()
	}

	tabs := make([]string, 0, len(allViews))
	active := 0
	for i, v := range allViews {
		tabs = append(tabs, fmt.Sprintf("%d %s", i+1, v))
		if v == m.CurrentView {
			active = i
		}
	}

	return views.RenderApp(views.AppData{
		Tabs:       tabs,
		ActiveTab:  active,
		Body:       body,
		Sidebar:    m.renderSidebar(),
		StatusLine: status,
		Overlay:    overlay,
		Width:      m.Width,
		Footer: fmt.Sprintf("keys: %s-%s views | %s new | / cmd | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.Goals, m.Keys.NewTask, m.Keys.Help, m.Keys.Quit),
	})
}
