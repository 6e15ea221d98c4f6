// Package ui 终端界面：启动页、主菜单、新游戏、选队 sheet、阵容与积分榜
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Pitch     = lipgloss.Color("#2E7D32")
	Chalk     = lipgloss.Color("#F5F5F5")
	Highlight = lipgloss.Color("#FFC107")
	Faded     = lipgloss.Color("#8A8F98")
	Danger    = lipgloss.Color("#E53935")
	Good      = lipgloss.Color("#8BC34A")
)

// Styles 所有页面共用的样式
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Sheet     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Help      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Chalk).
			Background(Pitch).
			Padding(0, 2),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(Pitch),
		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(Highlight),
		Muted:    lipgloss.NewStyle().Foreground(Faded),
		Error:    lipgloss.NewStyle().Foreground(Danger),
		Success:  lipgloss.NewStyle().Foreground(Good),
		Sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1),
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(Faded),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true).Foreground(Highlight),
		Help:      lipgloss.NewStyle().Foreground(Faded).Italic(true),
	}
}
