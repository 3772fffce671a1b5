package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	StatusLine string
	StatusErr  bool
	Footer     string
	Help       string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeStyle = panelStyle.BorderForeground(lipgloss.Color("12"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	userStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	botStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)

const paneWidth = 52

func RenderApp(data AppData) string {
	row := panelStyle.Width(paneWidth).Render(data.LeftPane)
	if data.RightPane != "" {
		right := panelStyle.Width(paneWidth).Render(data.RightPane)
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, right)
	}

	status := statusStyle.Render(data.StatusLine)
	if data.StatusErr {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Help != "" {
		lines = append(lines, panelStyle.Render(data.Help))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md for the terminal and returns md unchanged if
// glamour fails.
func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
