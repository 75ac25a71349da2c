package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Menu       key.Binding
	ByStatus   key.Binding
	ByUser     key.Binding
	ByPriority key.Binding
	OrderPrio  key.Binding
	OrderTitle key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Close      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Menu:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "display")),
		ByStatus:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "group by status")),
		ByUser:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "group by user")),
		ByPriority: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "group by priority")),
		OrderPrio:  key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "order by priority")),
		OrderTitle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "order by title")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close menu")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Menu, k.Select, k.Close},
		{k.ByStatus, k.ByUser, k.ByPriority},
		{k.OrderPrio, k.OrderTitle},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
