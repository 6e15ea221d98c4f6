package ui

import (
	"fmt"
	"strings"

	"CareerMode/internal/model"
)

type careerListModel struct {
	careers []model.ClientCareer
	cursor  cursor
	loading bool
}

// handle 返回回车选中的生涯
func (m *careerListModel) handle(key string) *model.ClientCareer {
	if len(m.careers) == 0 || m.cursor.move(key, len(m.careers)) {
		return nil
	}
	if key == "enter" {
		c := m.careers[m.cursor.pos]
		return &c
	}
	return nil
}

func (m *careerListModel) setCareers(careers []model.ClientCareer) {
	m.careers = careers
	m.loading = false
	m.cursor.clamp(len(careers))
}

func (m *careerListModel) view(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Continue"))
	b.WriteString("\n\n")
	switch {
	case m.loading:
		b.WriteString(s.Muted.Render("loading saved careers..."))
		b.WriteString("\n")
	case len(m.careers) == 0:
		b.WriteString(s.Muted.Render("no saved careers"))
		b.WriteString("\n")
	default:
		for i, c := range m.careers {
			line := fmt.Sprintf("%-20s %s", c.CoachName, c.UserTeamName)
			if i == m.cursor.pos {
				b.WriteString(s.Selected.Render("> " + line))
			} else {
				b.WriteString(s.Item.Render(line))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render("↑/↓ select • enter open • esc back"))
	return b.String()
}
