package ui

import (
	"fmt"
	"strings"

	"CareerMode/internal/model"
)

type teamSelectModel struct {
	templates []model.ClientTeamInfo
	cursor    cursor
	loading   bool
	creating  bool
}

// handle 返回回车选中的球队模板ID
func (m *teamSelectModel) handle(key string) string {
	if m.creating || len(m.templates) == 0 {
		return ""
	}
	if m.cursor.move(key, len(m.templates)) {
		return ""
	}
	if key == "enter" {
		return m.templates[m.cursor.pos].TemplateID
	}
	return ""
}

func (m *teamSelectModel) setTemplates(templates []model.ClientTeamInfo) {
	m.templates = templates
	m.loading = false
	m.cursor.clamp(len(templates))
}

func (m *teamSelectModel) view(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Header.Render("Choose your club"))
	b.WriteString("\n\n")
	switch {
	case m.loading:
		b.WriteString(s.Muted.Render("loading clubs..."))
	case len(m.templates) == 0:
		b.WriteString(s.Muted.Render("no clubs available"))
	default:
		for i, t := range m.templates {
			line := fmt.Sprintf("%-4s %-20s %s", t.Abbreviation, t.Name, t.City)
			if i == m.cursor.pos {
				b.WriteString(s.Selected.Render("> " + line))
			} else {
				b.WriteString(s.Item.Render(line))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	if m.creating {
		b.WriteString(s.Muted.Render("creating career..."))
	} else {
		b.WriteString(s.Help.Render("↑/↓ select • enter start career • esc close"))
	}
	return s.Sheet.Render(b.String())
}
