package ui

import (
	"strings"

	"CareerMode/internal/model"
	"CareerMode/internal/navigation"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// newGameFlow 新游戏流程：填写教练名 -> 选队 sheet -> 创建生涯，结束时把生涯交给父流程
type newGameFlow struct {
	*navigation.BaseCoordinator
	router     *navigation.Router[Screen]
	coachName  string
	leagueName string
}

func newNewGameFlow(router *navigation.Router[Screen]) *newGameFlow {
	return &newGameFlow{
		BaseCoordinator: navigation.NewBaseCoordinator(),
		router:          router,
	}
}

func (f *newGameFlow) Start() {
	f.router.Push(ScreenNewGame)
}

// SubmitDetails 记录教练名和联赛名，弹出选队 sheet
func (f *newGameFlow) SubmitDetails(coachName, leagueName string) {
	f.coachName = coachName
	f.leagueName = leagueName
	f.router.Present(ScreenTeamSelect)
}

func (f *newGameFlow) Request(templateID string) *model.NewCareerRequest {
	return &model.NewCareerRequest{
		CoachName:      f.coachName,
		TeamTemplateID: templateID,
		LeagueName:     f.leagueName,
	}
}

// Cancel 放弃流程，回到进入前的页面
func (f *newGameFlow) Cancel() {
	f.router.Dismiss()
	if top, ok := f.router.Top(); ok && top == ScreenNewGame {
		f.router.Pop()
	}
	f.Finish(nil)
}

func (f *newGameFlow) Complete(c *model.ClientCareer) {
	f.router.Dismiss()
	f.Finish(c)
}

type newGameModel struct {
	coach  textinput.Model
	league textinput.Model
	err    string
}

func newNewGameModel(defaultLeague string) *newGameModel {
	coach := textinput.New()
	coach.Placeholder = "Coach name"
	coach.CharLimit = 40
	coach.Prompt = "Coach:  "

	league := textinput.New()
	league.Placeholder = defaultLeague
	league.CharLimit = 40
	league.Prompt = "League: "

	return &newGameModel{coach: coach, league: league}
}

// reset 清空输入并聚焦教练名
func (m *newGameModel) reset() tea.Cmd {
	m.coach.SetValue("")
	m.league.SetValue("")
	m.err = ""
	m.league.Blur()
	return m.coach.Focus()
}

func (m *newGameModel) coachName() string  { return strings.TrimSpace(m.coach.Value()) }
func (m *newGameModel) leagueName() string { return strings.TrimSpace(m.league.Value()) }

func (m *newGameModel) toggleFocus() tea.Cmd {
	if m.coach.Focused() {
		m.coach.Blur()
		return m.league.Focus()
	}
	m.league.Blur()
	return m.coach.Focus()
}

// handle 处理按键；返回 submit=true 表示信息填写完成
func (m *newGameModel) handle(msg tea.KeyMsg) (submit bool, cmd tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		return false, m.toggleFocus()
	case "enter":
		if m.coachName() == "" {
			m.err = "coach name is required"
			if !m.coach.Focused() {
				return false, m.toggleFocus()
			}
			return false, nil
		}
		m.err = ""
		if m.coach.Focused() {
			return false, m.toggleFocus()
		}
		return true, nil
	}
	if m.coach.Focused() {
		m.coach, cmd = m.coach.Update(msg)
	} else {
		m.league, cmd = m.league.Update(msg)
	}
	return false, cmd
}

func (m *newGameModel) view(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("New Game"))
	b.WriteString("\n\n")
	b.WriteString(m.coach.View())
	b.WriteString("\n")
	b.WriteString(m.league.View())
	b.WriteString("\n\n")
	if m.err != "" {
		b.WriteString(s.Error.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(s.Help.Render("tab switch field • enter next • esc back"))
	return b.String()
}
