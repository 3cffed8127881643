package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Tabs       []string
	ActiveTab  int
	Body       string
	Sidebar    string
	StatusLine string
	Footer     string
	Overlay    string
	Width      int
}

func RenderApp(data AppData) string {
	bodyWidth, sideWidth := 72, 34
	if data.Width > 0 {
		sideWidth = max(24, data.Width/3)
		bodyWidth = max(40, data.Width-sideWidth-6)
	}

	main := panelStyle.Width(bodyWidth).Render(data.Body)
	if data.Overlay != "" {
		main = panelStyle.Width(bodyWidth).BorderForeground(lipgloss.Color("13")).Render(data.Overlay)
	}
	row := main
	if data.Sidebar != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, main, panelStyle.Width(sideWidth).Render(data.Sidebar))
	}

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render("FocusFlow") + "  " + renderTabs(data.Tabs, data.ActiveTab),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func renderTabs(tabs []string, active int) string {
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
			continue
		}
		parts = append(parts, tabStyle.Render(tab))
	}
	return strings.Join(parts, tabStyle.Render(" | "))
}

func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("dark")}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
