package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit            key.Binding
	Reload          key.Binding
	Export          key.Binding
	FilterCustomer  key.Binding
	FilterMilestone key.Binding
	ClearFilters    key.Binding
	SavePreset      key.Binding
	Presets         key.Binding
	Up              key.Binding
	Down            key.Binding
	Open            key.Binding
}

var keys = keyMap{
	Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Reload:          key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Export:          key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export xlsx")),
	FilterCustomer:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter customer")),
	FilterMilestone: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "filter milestone")),
	ClearFilters:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filters")),
	SavePreset:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save preset")),
	Presets:         key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "presets")),
	Up:              key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
	Down:            key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
	Open:            key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
}
