package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskchat/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		width := typed.Width/2 - 6
		if width < 20 {
			width = 20
		}
		height := typed.Height - 12
		if height < 4 {
			height = 4
		}
		m.chatViewport.Width = width
		m.chatViewport.Height = height
		m.rendered = make(map[int64]string)
		m.refreshChatLog()
		return m, nil
	case spinner.TickMsg:
		if m.Session.Busy() {
			var cmd tea.Cmd
			m.busySpinner, cmd = m.busySpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case CompletionMsg:
		m.Session.Finish(typed.Reply)
		m.Status = StatusBar{}
		m.refreshChatLog()
		return m, nil
	case SwitchFocusMsg:
		m.setFocus(typed.Focus)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	switch keyStr {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.NextFocus:
		m.cycleFocus()
		return m, nil
	}

	switch m.Focus {
	case FocusTaskInput:
		return m.handleTaskInputKey(msg)
	case FocusChatInput:
		return m.handleChatInputKey(msg)
	}

	switch keyStr {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case m.Keys.ToggleChat:
		if m.Session.ToggleChatPanel() {
			m.Status = StatusBar{Text: "chat opened"}
		} else {
			m.Status = StatusBar{Text: "chat closed"}
		}
		return m, nil
	case "/":
		m.setFocus(FocusChatInput)
		return m, nil
	}
	return m.handleTaskListKey(msg)
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	stats := m.Session.Stats()
	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("taskchat | %d/%d done (%d%%) | focus: %s", stats.Completed, stats.Total, stats.Percent(), m.Focus),
		LeftPane:   m.renderTaskPanel(),
		RightPane:  m.renderChatPanel(),
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Help:       m.renderHelpIfVisible(),
		Footer:     fmt.Sprintf("keys: %s focus | esc list | %s chat | %s help | %s quit | ctrl+c exit", m.Keys.NextFocus, m.Keys.ToggleChat, m.Keys.Help, m.Keys.Quit),
	})
}
