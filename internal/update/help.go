package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/taskchat/internal/views"
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

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	global := toKeyBindings(m.globalBindings())
	local := toKeyBindings(m.focusBindings())
	return views.RenderHelpPanel(views.HelpPanelData{
		Focus: string(m.Focus),
		HelpView: m.helpModel.View(helpKeyMap{
			short: append(append([]key.Binding{}, global...), local...),
			full:  [][]key.Binding{global, local},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.NextFocus, Action: "cycle focus"},
		{Key: m.Keys.ToggleChat, Action: "toggle chat panel"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) focusBindings() []KeyBinding {
	switch m.Focus {
	case FocusTaskInput:
		return []KeyBinding{
			{Key: "enter", Action: "add task"},
			{Key: "esc", Action: "back to list"},
		}
	case FocusTaskList:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "toggle completed"},
			{Key: "x", Action: "delete task"},
			{Key: "i", Action: "type a new task"},
			{Key: "/", Action: "type a chat message"},
		}
	case FocusChatInput:
		return []KeyBinding{
			{Key: "enter", Action: "send message"},
			{Key: "esc", Action: "back to list"},
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
