package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleGoalsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "w":
		return m.requestSummary()
	}
	return m, nil
}

func (m Model) requestSummary() (Model, tea.Cmd) {
	if m.SummaryLoading {
		return m, nil
	}
	counts := m.ctrl.Counts()
	m.SummaryLoading = true
	m.CurrentView = ViewGoals
	return m, tea.Batch(m.spinner.Tick, weeklySummaryCmd(m.ctx, m.ctrl.Assistant(), counts.CompletedThisWeek, counts.HabitsThisWeek))
}
