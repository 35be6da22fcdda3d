package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Previous   key.Binding
	Next       key.Binding
	Select     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Enter      key.Binding
	Book       key.Binding
	Help       key.Binding
	Quit       key.Binding

	welcome bool
}

func newKeyMap(welcome bool) keyMap {
	return keyMap{
		Previous:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Select:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), key.WithHelp("1-9/0", "go to slide")),
		ScrollUp:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "enter")),
		Book:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "book")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		welcome:    welcome,
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	if k.welcome {
		return []key.Binding{k.Enter, k.Book, k.Quit}
	}
	return []key.Binding{k.Previous, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	if k.welcome {
		return [][]key.Binding{{k.Enter, k.Book}, {k.Help, k.Quit}}
	}
	return [][]key.Binding{
		{k.Previous, k.Next, k.Select},
		{k.ScrollUp, k.ScrollDown},
		{k.Help, k.Quit},
	}
}

// slideIndex maps a digit key to a slide index; 0 stands for the tenth slide.
func slideIndex(digit string) int {
	if digit == "0" {
		return 9
	}
	return int(digit[0] - '1')
}
