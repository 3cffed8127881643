package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusflow/internal/commands"
	"github.com/sandeepkv93/focusflow/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
		msg.Runes = []rune{' '}
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func taskIDs(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if m.ctrl.InFlight() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "still generating subtasks for the previous task"}
			}
			m, follow = m.submitTask(SubmitTaskMsg{Title: a.Title, Category: a.Category, Priority: a.Priority})
			m.CurrentView = ViewTasks
			return commands.Result{Message: fmt.Sprintf("generating subtasks for %s", a.Title)}, nil
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			tasks := m.ctrl.Tasks()
			id, err := commands.Resolve(a.Target, taskIDs(tasks))
			if err != nil {
				return commands.Result{}, err
			}
			m.ctrl.ToggleTask(m.ctx, id)
			return commands.Result{Message: fmt.Sprintf("toggled task %s", id)}, nil
		},
		Sub: func(a commands.SubArgs) (commands.Result, error) {
			tasks := m.ctrl.Tasks()
			id, err := commands.Resolve(a.Task, taskIDs(tasks))
			if err != nil {
				return commands.Result{}, err
			}
			var subIDs []string
			for _, t := range tasks {
				if t.ID == id {
					for _, s := range t.Subtasks {
						subIDs = append(subIDs, s.ID)
					}
				}
			}
			subID, err := commands.Resolve(a.Subtask, subIDs)
			if err != nil {
				return commands.Result{}, err
			}
			m.ctrl.ToggleSubtask(m.ctx, id, subID)
			m.Tasks.Expanded[id] = true
			return commands.Result{Message: fmt.Sprintf("toggled subtask %s", subID)}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			id, err := commands.Resolve(a.Target, taskIDs(m.ctrl.Tasks()))
			if err != nil {
				return commands.Result{}, err
			}
			m.ctrl.DeleteTask(m.ctx, id)
			m.Tasks.Cursor = clamp(m.Tasks.Cursor, 0, len(m.ctrl.Tasks())-1)
			return commands.Result{Message: fmt.Sprintf("deleted task %s", id)}, nil
		},
		Habit: func(a commands.TargetArgs) (commands.Result, error) {
			habits := m.ctrl.Habits()
			ids := make([]string, len(habits))
			for i, h := range habits {
				ids[i] = h.ID
			}
			id, err := commands.Resolve(a.Target, ids)
			if err != nil {
				return commands.Result{}, err
			}
			m.ctrl.ToggleHabitToday(m.ctx, id)
			return commands.Result{Message: fmt.Sprintf("toggled habit %s for today", id)}, nil
		},
		View: func(a commands.ViewArgs) (commands.Result, error) {
			for _, v := range allViews {
				if strings.EqualFold(string(v), a.Name) {
					m.CurrentView = v
				}
			}
			return commands.Result{Message: "view: " + a.Name}, nil
		},
		Summary: func() (commands.Result, error) {
			if m.SummaryLoading {
				return commands.Result{Message: "weekly summary already on its way"}, nil
			}
			m, follow = m.requestSummary()
			return commands.Result{Message: "asking for a weekly summary"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	return m, follow
}
