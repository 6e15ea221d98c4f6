package ui

import "CareerMode/internal/model"

// Screen 导航栈中的页面
type Screen string

const (
	ScreenSplash     Screen = "splash"
	ScreenMenu       Screen = "menu"
	ScreenNewGame    Screen = "new_game"
	ScreenTeamSelect Screen = "team_select" // 只以 sheet 形式出现
	ScreenContinue   Screen = "continue"
	ScreenCareer     Screen = "career"
	ScreenTeamRoster Screen = "team_roster" // 积分榜标签下查看其他球队
)

// Tab 生涯主页的标签
type Tab string

const (
	TabSquad  Tab = "squad"
	TabLeague Tab = "league"
)

type splashDoneMsg struct{}

type subscribedMsg struct {
	ch <-chan model.ChangeEvent
}

type changeMsg struct {
	event model.ChangeEvent
}

type templatesLoadedMsg struct {
	templates []model.ClientTeamInfo
	err       error
}

type careerCreatedMsg struct {
	career *model.ClientCareer
	err    error
}

type careersLoadedMsg struct {
	careers []model.ClientCareer
	err     error
}

type careerLoadedMsg struct {
	careerID  string
	teams     []model.ClientTeam
	players   []model.ClientPlayer
	standings []model.ClientTeamStats
	err       error
}

type rosterLoadedMsg struct {
	teamID  string
	players []model.ClientPlayer
	err     error
}

// cursor 列表选中位置
type cursor struct {
	pos int
}

// move 处理上下键，返回是否消费了按键
func (c *cursor) move(key string, n int) bool {
	switch key {
	case "up", "k":
		if c.pos > 0 {
			c.pos--
		}
		return true
	case "down", "j":
		if c.pos < n-1 {
			c.pos++
		}
		return true
	}
	return false
}

func (c *cursor) clamp(n int) {
	if c.pos >= n {
		c.pos = n - 1
	}
	if c.pos < 0 {
		c.pos = 0
	}
}
