package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Sidebar SidebarTheme
	Editor  EditorTheme
	Footer  FooterTheme
	Modal   ModalTheme
}

// SidebarTheme styles the entry tree.
type SidebarTheme struct {
	Frame       lipgloss.Style
	Header      lipgloss.Style
	Hint        lipgloss.Style
	Year        lipgloss.Style
	Month       lipgloss.Style
	Entry       lipgloss.Style
	Muted       lipgloss.Style
	Highlighted lipgloss.Style
	Cursor      lipgloss.Style
}

// EditorTheme styles the entry cards.
type EditorTheme struct {
	Frame       lipgloss.Style
	Card        lipgloss.Style
	ActiveCard  lipgloss.Style
	DateHeader  lipgloss.Style
	Timestamp   lipgloss.Style
	Placeholder lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Mode    lipgloss.Style
	Help    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// ModalTheme styles centered modal overlays (confirmation, help).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	accent := lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))

	return Theme{
		Sidebar: SidebarTheme{
			Frame:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Hint:        muted,
			Year:        lipgloss.NewStyle().Bold(true),
			Month:       lipgloss.NewStyle(),
			Entry:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Muted:       muted,
			Highlighted: accent,
			Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Editor: EditorTheme{
			Frame:       lipgloss.NewStyle().Padding(0, 1),
			Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
			ActiveCard:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
			DateHeader:  lipgloss.NewStyle().Bold(true),
			Timestamp:   muted,
			Placeholder: muted,
		},
		Footer: FooterTheme{
			Mode:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
