package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/focusflow/internal/model"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("13"))
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	accentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

var priorityColors = [...]lipgloss.Color{
	model.PriorityLow:    lipgloss.Color("10"),
	model.PriorityMedium: lipgloss.Color("11"),
	model.PriorityHigh:   lipgloss.Color("9"),
}

var _ [model.NumPriorities]lipgloss.Color = priorityColors

var categoryColors = [...]lipgloss.Color{
	model.CategoryWork:     lipgloss.Color("12"),
	model.CategoryPersonal: lipgloss.Color("13"),
	model.CategoryHealth:   lipgloss.Color("10"),
	model.CategoryStudy:    lipgloss.Color("14"),
}

var _ [model.NumCategories]lipgloss.Color = categoryColors

// Habit colors are free-form tags stored with the habit.
var habitColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("12"),
	"purple": lipgloss.Color("13"),
	"orange": lipgloss.Color("214"),
	"green":  lipgloss.Color("10"),
	"red":    lipgloss.Color("9"),
}

func PriorityBadge(p model.Priority) string {
	if !p.IsValid() {
		return "[?]"
	}
	return lipgloss.NewStyle().Bold(true).Foreground(priorityColors[p]).Render("[" + p.String() + "]")
}

func CategoryLabel(c model.Category) string {
	if !c.IsValid() {
		return c.String()
	}
	return lipgloss.NewStyle().Foreground(categoryColors[c]).Render(c.String())
}

func habitStyle(tag string) lipgloss.Style {
	if color, ok := habitColors[tag]; ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle()
}
