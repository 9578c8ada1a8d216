package monitor

import "github.com/charmbracelet/lipgloss"

type styles struct {
	frame    lipgloss.Style
	convert  lipgloss.Style
	mode     lipgloss.Style
	filtered lipgloss.Style
	off      lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)
// 9	Bright Red
// 10	Bright Green
// 11	Bright Yellow
// 12	Bright Blue
// 13	Bright Magenta
// 14	Bright Cyan
// 15	Bright White

func newStyles() styles {
	return styles{
		frame:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		convert:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		mode:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		filtered: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		off:      lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}
