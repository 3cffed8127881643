package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusflow/internal/ai"
	"github.com/sandeepkv93/focusflow/internal/model"
)

func fetchMotivationCmd(ctx context.Context, a ai.Assistant, pending, completed int) tea.Cmd {
	return func() tea.Msg {
		return MotivationMsg{Text: a.Motivation(ctx, pending, completed)}
	}
}

func suggestSubtasksCmd(ctx context.Context, a ai.Assistant, title string, category model.Category, priority model.Priority) tea.Cmd {
	return func() tea.Msg {
		return SubtasksSuggestedMsg{
			Title:    title,
			Category: category,
			Priority: priority,
			Subtasks: a.DecomposeTitle(ctx, title),
		}
	}
}

func weeklySummaryCmd(ctx context.Context, a ai.Assistant, completedTasks, habits int) tea.Cmd {
	return func() tea.Msg {
		return SummaryMsg{Text: a.WeeklySummary(ctx, completedTasks, habits)}
	}
}

func (m Model) busy() bool {
	return m.ctrl.InFlight() || m.MotivationLoading || m.SummaryLoading
}

// submitTask starts an add. Blank titles are dropped silently and a second
// add waits for the first to finish.
func (m Model) submitTask(msg SubmitTaskMsg) (Model, tea.Cmd) {
	if m.ctrl.InFlight() {
		m.Status = StatusBar{Text: "still generating subtasks for the previous task", IsError: true}
		return m, nil
	}
	title, ok := m.ctrl.BeginAddTask(msg.Title)
	if !ok {
		return m, nil
	}
	m.Status = StatusBar{Text: "generating subtasks for " + title}
	return m, tea.Batch(m.spinner.Tick, suggestSubtasksCmd(m.ctx, m.ctrl.Assistant(), title, msg.Category, msg.Priority))
}
