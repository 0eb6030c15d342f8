package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/taigrr/colorhash"
)

type styles struct {
	Prompt lipgloss.Style
	Output lipgloss.Style
	Error  lipgloss.Style
	Banner lipgloss.Style
}

func defaultStyles(user string) styles {
	return styles{
		Prompt: lipgloss.NewStyle().Foreground(UserColor(user)).Bold(true),
		Output: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Banner: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// UserColor picks a stable colour from the 6x6x6 cube of the 256-colour
// palette for user, so each user keeps the same prompt colour.
func UserColor(user string) lipgloss.Color {
	n := colorhash.HashString(user) % 216
	if n < 0 {
		n = -n
	}
	return lipgloss.Color(strconv.Itoa(16 + n))
}
