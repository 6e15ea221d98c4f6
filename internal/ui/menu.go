package ui

import "strings"

type menuItem string

const (
	menuNewGame  menuItem = "New Game"
	menuContinue menuItem = "Continue"
	menuQuit     menuItem = "Quit"
)

type menuModel struct {
	items  []menuItem
	cursor cursor
}

func newMenuModel() menuModel {
	return menuModel{items: []menuItem{menuNewGame, menuContinue, menuQuit}}
}

// handle 返回回车选中的菜单项，未选中时为空
func (m *menuModel) handle(key string) menuItem {
	if m.cursor.move(key, len(m.items)) {
		return ""
	}
	if key == "enter" {
		return m.items[m.cursor.pos]
	}
	return ""
}

func (m menuModel) view(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Career Mode"))
	b.WriteString("\n\n")
	for i, it := range m.items {
		if i == m.cursor.pos {
			b.WriteString(s.Selected.Render("> " + string(it)))
		} else {
			b.WriteString(s.Item.Render(string(it)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render("↑/↓ select • enter confirm • q quit"))
	return b.String()
}
