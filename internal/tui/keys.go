package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap — привязки клавиш списка комментариев.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Cancel    key.Binding
	Submit    key.Binding
	Reply     key.Binding
	Send      key.Binding
	Comment   key.Binding
	Like      key.Binding
	Dislike   key.Binding
	Delete    key.Binding
	Hide      key.Binding
	Channel   key.Binding
	NewChan   key.Binding
	Refresh   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Reply:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reply")),
		Send:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Comment:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "comment")),
		Like:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		Dislike:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dislike")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Hide:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide")),
		Channel:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "switch channel")),
		NewChan:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new channel")),
		Refresh:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// browseHelp — строка подсказок в режиме просмотра.
func (k KeyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Edit, k.Reply, k.Comment, k.Like, k.Dislike, k.Delete, k.Hide, k.Channel, k.NewChan, k.Refresh, k.Quit}
}
