package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/focusflow/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	global := toKeyBindings(m.globalBindings())
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: global,
			full:  [][]key.Binding{global},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Dashboard, Action: "dashboard"},
		{Key: m.Keys.Tasks, Action: "tasks"},
		{Key: m.Keys.Habits, Action: "habits"},
		{Key: m.Keys.Goals, Action: "goals"},
		{Key: m.Keys.NewTask, Action: "new task"},
		{Key: "/", Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "toggle done"},
			{Key: "e", Action: "expand/collapse checklist"},
			{Key: "J/K", Action: "move subtask cursor"},
			{Key: "s", Action: "toggle subtask"},
			{Key: "d", Action: "delete task"},
		}
	case ViewHabits:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "toggle today"},
		}
	case ViewGoals:
		return []KeyBinding{
			{Key: "w", Action: "weekly summary"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func toKeyBindings(in []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(in))
	for _, kb := range in {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
