package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	CycleNext  key.Binding
	CyclePrev  key.Binding
	Apply      key.Binding
	Download   key.Binding
	Share      key.Binding
	CopyImage  key.Binding
	CopyText   key.Binding
	ClearImage key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		CycleNext: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		CyclePrev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load image"),
		),
		Download: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "download"),
		),
		Share: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "share"),
		),
		CopyImage: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy image"),
		),
		CopyText: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "copy text"),
		),
		ClearImage: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove image"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "ctrl+o"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// setExporting disables the export keys while an export runs.
func (k *KeyMap) setExporting(busy bool) {
	k.Download.SetEnabled(!busy)
	k.Share.SetEnabled(!busy)
	k.CopyImage.SetEnabled(!busy)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Download, k.Share, k.CopyImage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.CycleNext, k.CyclePrev},
		{k.Apply, k.ClearImage},
		{k.Download, k.Share, k.CopyImage, k.CopyText},
		{k.Help, k.Quit},
	}
}
