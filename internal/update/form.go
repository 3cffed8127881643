package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sandeepkv93/focusflow/internal/model"
)

func (m Model) openTaskForm() (Model, tea.Cmd) {
	m.draft = &taskDraft{Category: model.CategoryPersonal, Priority: model.PriorityMedium}

	categories := make([]huh.Option[model.Category], 0, model.NumCategories)
	for _, c := range model.Categories() {
		categories = append(categories, huh.NewOption(c.String(), c))
	}
	priorities := make([]huh.Option[model.Priority], 0, model.NumPriorities)
	for _, p := range model.Priorities() {
		priorities = append(priorities, huh.NewOption(p.String(), p))
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Placeholder("What needs doing?").
			Value(&m.draft.Title),
		huh.NewSelect[model.Category]().
			Title("Category").
			Options(categories...).
			Value(&m.draft.Category),
		huh.NewSelect[model.Priority]().
			Title("Priority").
			Options(priorities...).
			Value(&m.draft.Priority),
	).Title("New task")).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
	if m.Width > 0 {
		m.form = m.form.WithWidth(min(m.Width-4, 72))
	}
	m.CurrentView = ViewTasks
	return m, m.form.Init()
}

func (m Model) closeTaskForm() Model {
	m.form = nil
	m.draft = nil
	return m
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m = m.closeTaskForm()
		m.Status = StatusBar{Text: "new task cancelled"}
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		draft := *m.draft
		m = m.closeTaskForm()
		return m.submitTask(SubmitTaskMsg{Title: draft.Title, Category: draft.Category, Priority: draft.Priority})
	case huh.StateAborted:
		m = m.closeTaskForm()
		return m, nil
	}
	return m, cmd
}

// FormOpen reports whether the new-task form has focus.
func (m Model) FormOpen() bool { return m.form != nil }
