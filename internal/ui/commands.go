package ui

import (
	"context"
	"time"

	"CareerMode/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

const splashDelay = 1500 * time.Millisecond

func splashTick() tea.Cmd {
	return tea.Tick(splashDelay, func(time.Time) tea.Msg { return splashDoneMsg{} })
}

func (a *App) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(a.ctx, a.timeout)
}

func (a *App) subscribe() tea.Cmd {
	return func() tea.Msg {
		ch, err := a.gateway.Subscribe(a.ctx)
		if err != nil {
			a.logger.WithError(err).Warn("订阅数据变更失败")
			return nil
		}
		return subscribedMsg{ch: ch}
	}
}

// waitForChange 阻塞读取一条变更，通道关闭后不再继续
func waitForChange(ch <-chan model.ChangeEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return changeMsg{event: ev}
	}
}

func (a *App) loadTemplates() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		templates, err := a.gateway.ListTeamTemplates(ctx)
		return templatesLoadedMsg{templates: templates, err: err}
	}
}

func (a *App) createCareer(req *model.NewCareerRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		career, err := a.gateway.CreateNewCareer(ctx, req)
		return careerCreatedMsg{career: career, err: err}
	}
}

func (a *App) loadCareers() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		careers, err := a.gateway.ListCareers(ctx)
		return careersLoadedMsg{careers: careers, err: err}
	}
}

// loadCareer 一次取齐生涯主页需要的球队、用户球队阵容和积分榜
func (a *App) loadCareer(c *model.ClientCareer) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		msg := careerLoadedMsg{careerID: c.ID}
		if msg.teams, msg.err = a.gateway.GetTeams(ctx, c.ID); msg.err != nil {
			return msg
		}
		if msg.players, msg.err = a.gateway.GetRoster(ctx, c.UserTeamID); msg.err != nil {
			return msg
		}
		msg.standings, msg.err = a.gateway.GetStandings(ctx, c.ID)
		return msg
	}
}

func (a *App) loadRoster(teamID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		players, err := a.gateway.GetRoster(ctx, teamID)
		return rosterLoadedMsg{teamID: teamID, players: players, err: err}
	}
}
