package update

import (
	"github.com/sandeepkv93/focusflow/internal/views"
)

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return views.RenderCommandPalette(true, m.commandInput.View())
}

func (m Model) dashboardData() views.DashboardData {
	tasks := m.ctrl.Tasks()
	habits := m.ctrl.Habits()
	today := m.ctrl.Today()
	data := views.DashboardData{
		Stats:      views.DashboardStats(tasks, habits, today),
		NextTasks:  views.NextPending(tasks, 3),
		Habits:     habits,
		Today:      today,
		Motivation: m.Motivation,
	}
	if m.MotivationLoading {
		data.Loading = m.spinner.View() + " thinking..."
	}
	return data
}

func (m Model) renderDashboard() string {
	return views.RenderDashboard(m.dashboardData())
}

func (m Model) renderSidebar() string {
	return views.RenderSidebar(m.dashboardData())
}

func (m Model) renderTasks() string {
	data := views.TaskListData{
		Tasks:         m.ctrl.Tasks(),
		Cursor:        m.Tasks.Cursor,
		Expanded:      m.Tasks.Expanded,
		SubtaskCursor: m.Tasks.SubtaskCursor,
	}
	if m.ctrl.InFlight() {
		data.Pending = m.spinner.View() + " AI is breaking down your task..."
	}
	return views.RenderTaskList(data)
}

func (m Model) renderHabits() string {
	return views.RenderHabitTracker(views.HabitTrackerData{
		Habits: m.ctrl.Habits(),
		Days:   views.LastSevenDays(m.ctrl.Now()),
		Cursor: m.HabitCursor,
	})
}

func (m Model) renderGoals() string {
	data := views.GoalsData{
		Goals:   m.ctrl.Goals(),
		Summary: m.summaryView,
		Width:   m.goalsWidth(),
	}
	if m.SummaryLoading {
		data.SummaryLoading = m.spinner.View() + " analysing your week..."
	}
	return views.RenderGoals(data)
}

func (m Model) goalsWidth() int { return m.Width / 2 }
