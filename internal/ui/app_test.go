package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"CareerMode/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	mu        sync.Mutex
	templates []model.ClientTeamInfo
	careers   []model.ClientCareer
	teams     []model.ClientTeam
	rosters   map[string][]model.ClientPlayer
	standings []model.ClientTeamStats
	requests  []*model.NewCareerRequest
	createErr error
}

func newFakeGateway() *fakeGateway {
	g := &fakeGateway{rosters: make(map[string][]model.ClientPlayer)}
	for i, name := range []string{"Harbor City", "Northvale", "Redmarsh"} {
		tplID := fmt.Sprintf("tpl-%d", i)
		teamID := fmt.Sprintf("team-%d", i)
		info := model.ClientTeamInfo{ID: "info-" + tplID, TemplateID: tplID, Name: name, Abbreviation: name[:3]}
		g.templates = append(g.templates, info)
		g.teams = append(g.teams, model.ClientTeam{ID: teamID, Info: info, CoachName: "Coach " + name})
		g.rosters[teamID] = []model.ClientPlayer{
			{ID: teamID + "-p1", Name: name + " Keeper", Position: "GK", Number: 1, Age: 30, TeamID: teamID},
			{ID: teamID + "-p2", Name: name + " Striker", Position: "FW", Number: 9, Age: 22, TeamID: teamID},
		}
		g.standings = append(g.standings, model.ClientTeamStats{ID: "st-" + teamID, OwnerID: teamID, TeamName: name})
	}
	g.careers = []model.ClientCareer{{ID: "career-saved", CoachName: "Old Boss", UserTeamID: "team-2", UserTeamName: "Redmarsh"}}
	return g
}

func (g *fakeGateway) ListTeamTemplates(ctx context.Context) ([]model.ClientTeamInfo, error) {
	return g.templates, nil
}

func (g *fakeGateway) CreateNewCareer(ctx context.Context, req *model.NewCareerRequest) (*model.ClientCareer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	if g.createErr != nil {
		return nil, g.createErr
	}
	for _, t := range g.teams {
		if t.Info.TemplateID == req.TeamTemplateID {
			return &model.ClientCareer{ID: "career-new", CoachName: req.CoachName, UserTeamID: t.ID, UserTeamName: t.Info.Name}, nil
		}
	}
	return nil, errors.New("unknown team")
}

func (g *fakeGateway) ListCareers(ctx context.Context) ([]model.ClientCareer, error) {
	return g.careers, nil
}

func (g *fakeGateway) GetCareer(ctx context.Context, careerID string) (*model.ClientCareer, error) {
	for _, c := range g.careers {
		if c.ID == careerID {
			return &c, nil
		}
	}
	return nil, nil
}

func (g *fakeGateway) GetTeams(ctx context.Context, careerID string) ([]model.ClientTeam, error) {
	return g.teams, nil
}

func (g *fakeGateway) GetRoster(ctx context.Context, teamID string) ([]model.ClientPlayer, error) {
	return g.rosters[teamID], nil
}

func (g *fakeGateway) GetStandings(ctx context.Context, careerID string) ([]model.ClientTeamStats, error) {
	return g.standings, nil
}

func (g *fakeGateway) Subscribe(ctx context.Context) (<-chan model.ChangeEvent, error) {
	return make(chan model.ChangeEvent), nil
}

func newTestApp(t *testing.T, g *fakeGateway, skipSplash bool) *App {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewApp(context.Background(), g, logger, Options{SkipSplash: skipSplash})
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// run 执行数据请求命令并把结果送回 App，直到不再产生后续命令
func run(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			run(t, a, c)
		}
		return
	}
	if _, next := a.Update(msg); next != nil {
		run(t, a, next)
	}
}

func TestSplashAdvancesToMenu(t *testing.T) {
	a := newTestApp(t, newFakeGateway(), false)
	assert.Equal(t, ScreenSplash, a.Screen())
	a.Update(splashDoneMsg{})
	assert.Equal(t, ScreenMenu, a.Screen())
	assert.Equal(t, []Screen{ScreenMenu}, a.router.Path())

	b := newTestApp(t, newFakeGateway(), false)
	b.Update(key(tea.KeyEnter))
	assert.Equal(t, ScreenMenu, b.Screen())
}

func TestNewGameFlowCreatesCareer(t *testing.T) {
	g := newFakeGateway()
	a := newTestApp(t, g, true)

	a.Update(key(tea.KeyEnter))
	require.Equal(t, ScreenNewGame, a.Screen())
	assert.Len(t, a.root.Children(), 1)

	a.Update(runes("Alex Ferguson"))
	a.Update(key(tea.KeyEnter))
	a.Update(runes("Test League"))
	_, cmd := a.Update(key(tea.KeyEnter))

	sheet, ok := a.router.Sheet()
	require.True(t, ok)
	assert.Equal(t, ScreenTeamSelect, sheet)
	run(t, a, cmd)
	assert.Contains(t, a.View(), "Northvale")

	a.Update(key(tea.KeyDown))
	_, cmd = a.Update(key(tea.KeyEnter))
	run(t, a, cmd)

	require.Len(t, g.requests, 1)
	assert.Equal(t, "Alex Ferguson", g.requests[0].CoachName)
	assert.Equal(t, "tpl-1", g.requests[0].TeamTemplateID)
	assert.Equal(t, "Test League", g.requests[0].LeagueName)

	assert.Equal(t, []Screen{ScreenMenu, ScreenCareer}, a.router.Path())
	_, ok = a.router.Sheet()
	assert.False(t, ok)
	assert.Empty(t, a.root.Children())
	assert.Nil(t, a.flow)

	view := a.View()
	assert.Contains(t, view, "Northvale Striker")
	assert.Contains(t, view, "Alex Ferguson")
}

func TestNewGameRequiresCoachName(t *testing.T) {
	a := newTestApp(t, newFakeGateway(), true)
	a.Update(key(tea.KeyEnter))
	a.Update(key(tea.KeyEnter))

	assert.Equal(t, ScreenNewGame, a.Screen())
	_, ok := a.router.Sheet()
	assert.False(t, ok)
	assert.Contains(t, a.View(), "coach name is required")
}

func TestNewGameCancel(t *testing.T) {
	a := newTestApp(t, newFakeGateway(), true)
	a.Update(key(tea.KeyEnter))
	require.Equal(t, ScreenNewGame, a.Screen())

	a.Update(key(tea.KeyEsc))
	assert.Equal(t, ScreenMenu, a.Screen())
	assert.Empty(t, a.root.Children())
}

func TestTeamSelectSheetDismiss(t *testing.T) {
	a := newTestApp(t, newFakeGateway(), true)
	a.Update(key(tea.KeyEnter))
	a.Update(runes("Alex"))
	a.Update(key(tea.KeyEnter))
	_, cmd := a.Update(key(tea.KeyEnter))
	run(t, a, cmd)

	a.Update(key(tea.KeyEsc))
	_, ok := a.router.Sheet()
	assert.False(t, ok)
	assert.Equal(t, ScreenNewGame, a.Screen())
	assert.Len(t, a.root.Children(), 1, "关闭 sheet 不结束流程")
}

func TestCreateCareerErrorKeepsSheet(t *testing.T) {
	g := newFakeGateway()
	g.createErr = errors.New("disk full")
	a := newTestApp(t, g, true)

	a.Update(key(tea.KeyEnter))
	a.Update(runes("Alex"))
	a.Update(key(tea.KeyEnter))
	_, cmd := a.Update(key(tea.KeyEnter))
	run(t, a, cmd)
	_, cmd = a.Update(key(tea.KeyEnter))
	run(t, a, cmd)

	_, ok := a.router.Sheet()
	assert.True(t, ok)
	assert.Equal(t, ScreenNewGame, a.Screen())
	assert.Contains(t, a.View(), "disk full")
	assert.Len(t, a.root.Children(), 1)
}

func TestContinueOpensSavedCareer(t *testing.T) {
	a := newTestApp(t, newFakeGateway(), true)
	a.Update(key(tea.KeyDown))
	_, cmd := a.Update(key(tea.KeyEnter))
	require.Equal(t, ScreenContinue, a.Screen())
	run(t, a, cmd)
	assert.Contains(t, a.View(), "Old Boss")

	_, cmd = a.Update(key(tea.KeyEnter))
	run(t, a, cmd)
	assert.Equal(t, ScreenCareer, a.Screen())
	assert.Contains(t, a.View(), "Redmarsh Keeper")

	a.Update(key(tea.KeyEsc))
	assert.Equal(t, ScreenMenu, a.Screen())
	assert.Nil(t, a.home)
}

func TestCareerHomeTabs(t *testing.T) {
	g := newFakeGateway()
	a := newTestApp(t, g, true)
	run(t, a, a.openCareer(&g.careers[0]))

	// 用户球队排第一
	require.Len(t, a.home.teams, 3)
	assert.Equal(t, "team-2", a.home.teams[0].ID)

	_, cmd := a.Update(key(tea.KeyTab))
	run(t, a, cmd)
	assert.Contains(t, a.View(), "Harbor City Striker")

	a.Update(runes("2"))
	assert.Equal(t, TabLeague, a.home.tabs.Selected())
	assert.Contains(t, a.View(), "Northvale")

	a.Update(key(tea.KeyDown))
	_, cmd = a.Update(key(tea.KeyEnter))
	run(t, a, cmd)
	assert.Equal(t, 1, a.home.tabs.Router(TabLeague).Len())
	assert.Contains(t, a.View(), "Northvale Keeper")

	// 再次选中积分榜标签回到根页面
	a.Update(runes("2"))
	assert.Equal(t, 0, a.home.tabs.Router(TabLeague).Len())

	a.Update(key(tea.KeyDown))
	a.Update(key(tea.KeyEnter))
	a.Update(key(tea.KeyEsc))
	assert.Equal(t, 0, a.home.tabs.Router(TabLeague).Len())
	assert.Equal(t, ScreenCareer, a.Screen())
}

func TestChangeEventReloadsCareerList(t *testing.T) {
	a := newTestApp(t, newFakeGateway(), true)
	a.router.Push(ScreenContinue)

	ch := make(chan model.ChangeEvent, 1)
	ch <- model.ChangeEvent{Kind: model.ChangeCareerCreated, CareerID: "c1"}
	close(ch)
	_, cmd := a.Update(subscribedMsg{ch: ch})
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, changeMsg{}, msg)
	assert.Empty(t, a.careers.careers)

	_, cmd = a.Update(msg)
	run(t, a, cmd)
	require.Len(t, a.careers.careers, 1)
	assert.Equal(t, "career-saved", a.careers.careers[0].ID)
}
