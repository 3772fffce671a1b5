package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	Text      string
	Completed bool
	Selected  bool
}

type TaskPanelData struct {
	InputView   string
	ProgressBar string
	Items       []TaskItemData
	Completed   int
	Focused     bool
}

type ChatMessageData struct {
	IsUser bool
	Body   string
}

type ChatPanelData struct {
	ViewportView string
	InputView    string
	Busy         bool
	SpinnerView  string
}

type HelpPanelData struct {
	Focus    string
	HelpView string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("tasks: %d/%d done\n", data.Completed, len(data.Items)))
	if data.ProgressBar != "" {
		b.WriteString(data.ProgressBar + "\n")
	}
	b.WriteString(data.InputView + "\n")
	if len(data.Items) == 0 {
		b.WriteString("\n(no tasks yet)")
		return b.String()
	}
	b.WriteString("\n")
	for _, item := range data.Items {
		cursor := " "
		if item.Selected && data.Focused {
			cursor = ">"
		}
		box := "[ ]"
		text := item.Text
		if item.Completed {
			box = "[x]"
			text = doneStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, box, text))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderChatMessage(data ChatMessageData) string {
	if data.IsUser {
		return userStyle.Render("you:") + " " + data.Body
	}
	return botStyle.Render("assistant:") + "\n" + data.Body
}

func RenderChatPanel(data ChatPanelData) string {
	var b strings.Builder
	b.WriteString("assistant chat:\n")
	b.WriteString(data.ViewportView + "\n")
	if data.Busy {
		b.WriteString(data.SpinnerView + " thinking...\n")
	}
	b.WriteString(data.InputView)
	return b.String()
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s", strings.ToLower(data.Focus), data.HelpView)
}
