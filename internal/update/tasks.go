package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/focusflow/internal/model"
)

func (m Model) currentTask() (model.Task, bool) {
	tasks := m.ctrl.Tasks()
	if m.Tasks.Cursor < 0 || m.Tasks.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Tasks.Cursor], true
}

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	total := len(m.ctrl.Tasks())
	switch msg.String() {
	case "j", "down":
		m.Tasks.Cursor = clamp(m.Tasks.Cursor+1, 0, total-1)
		m.Tasks.SubtaskCursor = 0
	case "k", "up":
		m.Tasks.Cursor = clamp(m.Tasks.Cursor-1, 0, total-1)
		m.Tasks.SubtaskCursor = 0
	case " ", "x":
		task, ok := m.currentTask()
		if !ok {
			return m
		}
		m.ctrl.ToggleTask(m.ctx, task.ID)
		if task.Completed {
			m.Status = StatusBar{Text: "reopened: " + task.Title}
		} else {
			m.Status = StatusBar{Text: "completed: " + task.Title}
		}
	case "e", "enter":
		task, ok := m.currentTask()
		if !ok {
			return m
		}
		m.Tasks.Expanded[task.ID] = !m.Tasks.Expanded[task.ID]
		m.Tasks.SubtaskCursor = 0
	case "J":
		if task, ok := m.currentTask(); ok {
			m.Tasks.SubtaskCursor = clamp(m.Tasks.SubtaskCursor+1, 0, len(task.Subtasks)-1)
		}
	case "K":
		if task, ok := m.currentTask(); ok {
			m.Tasks.SubtaskCursor = clamp(m.Tasks.SubtaskCursor-1, 0, len(task.Subtasks)-1)
		}
	case "s":
		task, ok := m.currentTask()
		if !ok || m.Tasks.SubtaskCursor >= len(task.Subtasks) {
			return m
		}
		m.Tasks.Expanded[task.ID] = true
		m.ctrl.ToggleSubtask(m.ctx, task.ID, task.Subtasks[m.Tasks.SubtaskCursor].ID)
	case "d", "delete":
		task, ok := m.currentTask()
		if !ok {
			return m
		}
		m.ctrl.DeleteTask(m.ctx, task.ID)
		delete(m.Tasks.Expanded, task.ID)
		m.Tasks.Cursor = clamp(m.Tasks.Cursor, 0, total-2)
		m.Tasks.SubtaskCursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", task.Title)}
		m.logger.Debug("task deleted", zap.String("task_id", task.ID))
	}
	return m
}
