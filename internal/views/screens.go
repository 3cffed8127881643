package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/sandeepkv93/focusflow/internal/model"
)

const StudyTip = "Try the Pomodoro technique: 25 minutes of focus, then a 5 minute break. " +
	"Short, regular breaks keep your mind fresh for longer sessions."

type DashboardData struct {
	Stats      Stats
	NextTasks  []model.Task
	Habits     []model.Habit
	Today      string
	Motivation string
	Loading    string
}

type TaskListData struct {
	Tasks         []model.Task
	Cursor        int
	Expanded      map[string]bool
	SubtaskCursor int
	Pending       string
}

type HabitTrackerData struct {
	Habits []model.Habit
	Days   []Day
	Cursor int
}

// GoalsData.Summary is the weekly summary already rendered for the terminal.
type GoalsData struct {
	Goals          []model.Goal
	Summary        string
	SummaryLoading string
	Width          int
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderDashboard(data DashboardData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	b.WriteString(fmt.Sprintf("completed today: %d   pending: %d   habits today: %d/%d\n",
		data.Stats.CompletedToday, data.Stats.Pending, data.Stats.HabitsDoneToday, data.Stats.HabitsTotal))

	b.WriteString("\nnext up:\n")
	if len(data.NextTasks) == 0 {
		b.WriteString("  All done for now. Enjoy the break!\n")
	}
	for _, t := range data.NextTasks {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", PriorityBadge(t.Priority), t.Title, mutedStyle.Render(t.Category.String())))
	}

	b.WriteString("\nhabits:\n")
	for _, h := range data.Habits {
		mark := "[ ]"
		if h.DoneOn(data.Today) {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", mark, habitStyle(h.Color).Render(h.Title), mutedStyle.Render(fmt.Sprintf("%d day streak", h.Streak))))
	}
	return strings.TrimSpace(b.String())
}

// RenderSidebar shows the AI motivation line.
func RenderSidebar(data DashboardData) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("daily focus") + "\n")
	if data.Loading != "" {
		b.WriteString(data.Loading)
	} else {
		b.WriteString(`"` + data.Motivation + `"`)
	}
	return b.String()
}

func RenderTaskList(data TaskListData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString("actions: [n]new [space]done [e]expand [J/K]subtask [s]check [d]delete\n")
	if data.Pending != "" {
		b.WriteString(data.Pending + "\n")
	}
	if len(data.Tasks) == 0 {
		b.WriteString("\n  No tasks yet. Press [n] to add one.")
		return b.String()
	}
	for i, t := range data.Tasks {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		check := "[ ]"
		title := t.Title
		if t.Completed {
			check = "[x]"
			title = doneStyle.Render(t.Title)
		}
		b.WriteString(fmt.Sprintf("\n%s %s %s %s %s", cursor, check, title, PriorityBadge(t.Priority), CategoryLabel(t.Category)))
		if len(t.Subtasks) > 0 {
			b.WriteString(mutedStyle.Render(fmt.Sprintf(" %d/%d", t.CompletedSubtasks(), len(t.Subtasks))))
		}
		if !data.Expanded[t.ID] {
			continue
		}
		b.WriteString("\n    " + accentStyle.Render("AI checklist"))
		if len(t.Subtasks) == 0 {
			b.WriteString("\n    (no subtasks)")
		}
		for j, s := range t.Subtasks {
			sub := " "
			if i == data.Cursor && j == data.SubtaskCursor {
				sub = ">"
			}
			mark := "[ ]"
			if s.Completed {
				mark = "[x]"
			}
			b.WriteString(fmt.Sprintf("\n   %s %s %s", sub, mark, s.Title))
		}
	}
	return b.String()
}

func RenderHabitTracker(data HabitTrackerData) string {
	var b strings.Builder
	b.WriteString("habits:\n")
	b.WriteString("actions: [j/k]move [space]toggle today\n\n")

	header := fmt.Sprintf("  %-22s", "")
	for _, d := range data.Days {
		header += fmt.Sprintf(" %-3s", d.Label)
	}
	b.WriteString(header + "  streak\n")

	for i, h := range data.Habits {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		row := fmt.Sprintf("%s %-22s", cursor, truncate(h.Title, 22))
		for _, d := range data.Days {
			cell := " · "
			if h.DoneOn(d.Date) {
				cell = habitStyle(h.Color).Render(" ● ")
			}
			row += " " + cell
		}
		row += fmt.Sprintf("  %d", h.Streak)
		b.WriteString(row + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderGoals(data GoalsData) string {
	width := 30
	if data.Width > 0 {
		width = max(10, data.Width/2)
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(width), progress.WithoutPercentage())

	var b strings.Builder
	b.WriteString("goals:\n")
	b.WriteString("actions: [w]weekly summary\n")
	for _, g := range data.Goals {
		pct := GoalPercent(g)
		b.WriteString(fmt.Sprintf("\n%s  %d%%\n", g.Title, pct))
		b.WriteString(bar.ViewAs(float64(pct)/100) + "\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%s / %s %s", formatAmount(g.Current), formatAmount(g.Target), g.Unit)) + "\n")
	}

	b.WriteString("\n" + accentStyle.Render("AI tip") + "\n")
	b.WriteString(StudyTip + "\n")

	switch {
	case data.SummaryLoading != "":
		b.WriteString("\n" + data.SummaryLoading)
	case data.Summary != "":
		b.WriteString("\n" + accentStyle.Render("weekly summary") + "\n")
		b.WriteString(data.Summary)
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n\nglobal:\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
