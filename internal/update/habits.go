package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleHabitsKey(msg tea.KeyMsg) Model {
	habits := m.ctrl.Habits()
	switch msg.String() {
	case "j", "down":
		m.HabitCursor = clamp(m.HabitCursor+1, 0, len(habits)-1)
	case "k", "up":
		m.HabitCursor = clamp(m.HabitCursor-1, 0, len(habits)-1)
	case " ", "x", "enter":
		if m.HabitCursor < 0 || m.HabitCursor >= len(habits) {
			return m
		}
		h := habits[m.HabitCursor]
		m.ctrl.ToggleHabitToday(m.ctx, h.ID)
		if h.DoneOn(m.ctrl.Today()) {
			m.Status = StatusBar{Text: "unmarked for today: " + h.Title}
		} else {
			m.Status = StatusBar{Text: "done for today: " + h.Title}
		}
	}
	return m
}
