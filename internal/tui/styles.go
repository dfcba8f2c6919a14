package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the editor.
type Styles struct {
	Section      lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Value        lipgloss.Style
	Choice       lipgloss.Style
	Invalid      lipgloss.Style
	Muted        lipgloss.Style

	Form    lipgloss.Style
	Preview lipgloss.Style
	Badge   lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastInfo    lipgloss.Style
	ToastBody    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	return Styles{
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			MarginTop(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(18),
		LabelFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true).
			Width(18),
		Value:  lipgloss.NewStyle(),
		Choice: lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Invalid: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),

		Form: lipgloss.NewStyle().
			Padding(0, 2),
		Preview: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Badge: lipgloss.NewStyle().
			Padding(0, 1),

		ToastSuccess: toast.BorderForeground(lipgloss.Color("71")),
		ToastError:   toast.BorderForeground(lipgloss.Color("203")),
		ToastInfo:    toast.BorderForeground(lipgloss.Color("179")),
		ToastBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
