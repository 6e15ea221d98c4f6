package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
  ___   _   ___ ___ ___ ___   __  __  ___  ___  ___ 
 / __| /_\ | _ \ __| __| _ \ |  \/  |/ _ \|   \| __|
| (__ / _ \|   / _|| _||   / | |\/| | (_) | |) | _| 
 \___/_/ \_\_|_\___|___|_|_\ |_|  |_|\___/|___/|___|
`

func renderSplash(s Styles, width int) string {
	var b strings.Builder
	b.WriteString(s.Header.Render(strings.Trim(logo, "\n")))
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render("press any key"))
	if width <= 0 {
		return b.String()
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
