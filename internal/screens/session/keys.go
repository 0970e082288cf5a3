package session

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Submit  key.Binding
	Choose  key.Binding
	Retry   key.Binding
	Details key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "answer"),
		),
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-4", "pick"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "try again"),
		),
		Details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("D", "review answers"),
		),
	}
}
