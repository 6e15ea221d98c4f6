package ui

import (
	"fmt"
	"strings"

	"CareerMode/internal/model"
	"CareerMode/internal/navigation"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// careerHome 生涯主页：阵容标签按 tab 键轮换联赛球队，积分榜标签可进入其他球队阵容
type careerHome struct {
	career    *model.ClientCareer
	tabs      *navigation.TabManager[Tab, Screen]
	teams     []model.ClientTeam
	teamIdx   int
	rosters   map[string][]model.ClientPlayer
	standings []model.ClientTeamStats
	table     cursor
	browsing  string // 积分榜标签下正在查看的球队
	loading   bool
	viewport  viewport.Model
}

func newCareerHome(c *model.ClientCareer, width, height int) *careerHome {
	h := &careerHome{
		career:   c,
		tabs:     navigation.NewTabManager[Tab, Screen](TabSquad, TabLeague),
		rosters:  make(map[string][]model.ClientPlayer),
		loading:  true,
		viewport: viewport.New(80, 20),
	}
	h.setSize(width, height)
	return h
}

func (h *careerHome) setSize(width, height int) {
	if width > 0 {
		h.viewport.Width = width
	}
	if height > 6 {
		h.viewport.Height = height - 6 // 标题、标签栏、帮助行
	}
}

// setLoaded 用户球队排在最前
func (h *careerHome) setLoaded(msg careerLoadedMsg) {
	h.loading = false
	h.teams = h.teams[:0]
	for _, t := range msg.teams {
		if t.ID == h.career.UserTeamID {
			h.teams = append([]model.ClientTeam{t}, h.teams...)
			continue
		}
		h.teams = append(h.teams, t)
	}
	h.teamIdx = 0
	h.rosters[h.career.UserTeamID] = msg.players
	h.standings = msg.standings
	h.table.clamp(len(h.standings))
}

func (h *careerHome) currentTeam() *model.ClientTeam {
	if h.teamIdx < 0 || h.teamIdx >= len(h.teams) {
		return nil
	}
	return &h.teams[h.teamIdx]
}

func (h *careerHome) teamName(id string) string {
	for _, t := range h.teams {
		if t.ID == id {
			return t.Info.Name
		}
	}
	for _, st := range h.standings {
		if st.OwnerID == id {
			return st.TeamName
		}
	}
	return id
}

// rosterNeeded 阵容未缓存时返回需要加载的球队ID
func (h *careerHome) rosterNeeded(teamID string) string {
	if _, ok := h.rosters[teamID]; ok {
		return ""
	}
	return teamID
}

// handle 处理按键；back=true 表示离开主页，load 为需要加载阵容的球队ID
func (h *careerHome) handle(msg tea.KeyMsg) (back bool, load string, cmd tea.Cmd) {
	key := msg.String()
	switch key {
	case "1":
		h.tabs.Select(TabSquad)
		return false, "", nil
	case "2":
		if h.tabs.Selected() == TabLeague {
			h.browsing = ""
		}
		h.tabs.Select(TabLeague)
		return false, "", nil
	case "esc":
		r := h.tabs.Current()
		if _, ok := r.Pop(); ok {
			h.browsing = ""
			return false, "", nil
		}
		return true, "", nil
	}

	switch h.tabs.Selected() {
	case TabSquad:
		if key == "tab" && len(h.teams) > 0 {
			h.teamIdx = (h.teamIdx + 1) % len(h.teams)
			h.viewport.GotoTop()
			return false, h.rosterNeeded(h.teams[h.teamIdx].ID), nil
		}
	case TabLeague:
		if top, ok := h.tabs.Current().Top(); ok && top == ScreenTeamRoster {
			break
		}
		if h.table.move(key, len(h.standings)) {
			return false, "", nil
		}
		if key == "enter" && len(h.standings) > 0 {
			h.browsing = h.standings[h.table.pos].OwnerID
			h.tabs.Current().Push(ScreenTeamRoster)
			h.viewport.GotoTop()
			return false, h.rosterNeeded(h.browsing), nil
		}
		return false, "", nil
	}
	h.viewport, cmd = h.viewport.Update(msg)
	return false, "", cmd
}

func (h *careerHome) view(s Styles) string {
	var b strings.Builder
	title := fmt.Sprintf("%s • %s", h.career.CoachName, h.career.UserTeamName)
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(h.tabBar(s))
	b.WriteString("\n\n")

	if h.loading {
		b.WriteString(s.Muted.Render("loading career..."))
		return b.String()
	}

	switch h.tabs.Selected() {
	case TabSquad:
		if t := h.currentTeam(); t != nil {
			h.viewport.SetContent(h.rosterTable(s, t.ID, t.Info.Name, t.CoachName))
		}
		b.WriteString(h.viewport.View())
		b.WriteString("\n")
		b.WriteString(s.Help.Render("tab next club • 1/2 switch tab • esc menu"))
	case TabLeague:
		if top, ok := h.tabs.Current().Top(); ok && top == ScreenTeamRoster {
			h.viewport.SetContent(h.rosterTable(s, h.browsing, h.teamName(h.browsing), ""))
			b.WriteString(h.viewport.View())
			b.WriteString("\n")
			b.WriteString(s.Help.Render("esc standings • 2 standings"))
			break
		}
		b.WriteString(h.standingsTable(s))
		b.WriteString("\n")
		b.WriteString(s.Help.Render("↑/↓ select • enter view squad • 1 squad • esc menu"))
	}
	return b.String()
}

func (h *careerHome) tabBar(s Styles) string {
	labels := map[Tab]string{TabSquad: "1 Squad", TabLeague: "2 League"}
	parts := make([]string, 0, 2)
	for _, t := range h.tabs.Tabs() {
		if t == h.tabs.Selected() {
			parts = append(parts, s.ActiveTab.Render(labels[t]))
		} else {
			parts = append(parts, s.Tab.Render(labels[t]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (h *careerHome) rosterTable(s Styles, teamID, name, coach string) string {
	var b strings.Builder
	b.WriteString(s.Header.Render(name))
	if coach != "" {
		b.WriteString(s.Muted.Render("  coach " + coach))
	}
	b.WriteString("\n")
	players, ok := h.rosters[teamID]
	if !ok {
		b.WriteString(s.Muted.Render("loading squad..."))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%-3s %-24s %-4s %s\n", "#", "Name", "Pos", "Age"))
	b.WriteString(strings.Repeat("-", 38) + "\n")
	for _, p := range players {
		b.WriteString(fmt.Sprintf("%-3d %-24s %-4s %d\n", p.Number, p.Name, p.Position, p.Age))
	}
	return b.String()
}

func (h *careerHome) standingsTable(s Styles) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-3s %-20s %3s %3s %3s %3s %4s %4s\n", "", "Club", "P", "W", "D", "L", "GD", "Pts"))
	for i, st := range h.standings {
		line := fmt.Sprintf("%-3d %-20s %3d %3d %3d %3d %4d %4d",
			i+1, st.TeamName, st.Stats.GamesPlayed, st.Stats.Wins, st.Stats.Draws, st.Stats.Losses,
			st.Stats.GoalDifference, st.Stats.Points)
		switch {
		case i == h.table.pos:
			b.WriteString(s.Selected.Render("> " + line))
		case st.OwnerID == h.career.UserTeamID:
			b.WriteString(s.Item.Inherit(s.Success).Render(line))
		default:
			b.WriteString(s.Item.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
