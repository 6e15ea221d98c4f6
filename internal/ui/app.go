package ui

import (
	"context"
	"strings"
	"time"

	"CareerMode/internal/interfaces"
	"CareerMode/internal/model"
	"CareerMode/internal/navigation"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Options App 可选参数
type Options struct {
	LeagueName  string        // 新游戏联赛名输入框的占位
	CallTimeout time.Duration // 单次数据请求超时
	SkipSplash  bool
}

// App 根模型：持有主导航栈和根协调器，按栈顶页面分发消息
type App struct {
	ctx     context.Context
	gateway interfaces.CareerGateway
	logger  *logrus.Logger
	styles  Styles
	timeout time.Duration

	router *navigation.Router[Screen]
	root   *navigation.BaseCoordinator
	flow   *newGameFlow

	menu    menuModel
	newGame *newGameModel
	teams   *teamSelectModel
	careers *careerListModel
	home    *careerHome

	changes <-chan model.ChangeEvent
	errText string
	pending []tea.Cmd
	width   int
	height  int
}

func NewApp(ctx context.Context, gateway interfaces.CareerGateway, logger *logrus.Logger, opts Options) *App {
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 10 * time.Second
	}
	if opts.LeagueName == "" {
		opts.LeagueName = "Premier Division"
	}
	first := ScreenSplash
	if opts.SkipSplash {
		first = ScreenMenu
	}
	return &App{
		ctx:     ctx,
		gateway: gateway,
		logger:  logger,
		styles:  DefaultStyles(),
		timeout: opts.CallTimeout,
		router:  navigation.NewRouter(first),
		root:    navigation.NewBaseCoordinator(),
		menu:    newMenuModel(),
		newGame: newNewGameModel(opts.LeagueName),
		teams:   &teamSelectModel{},
		careers: &careerListModel{},
	}
}

func (a *App) Init() tea.Cmd {
	if top, _ := a.router.Top(); top == ScreenSplash {
		return tea.Batch(splashTick(), a.subscribe())
	}
	return a.subscribe()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.home != nil {
			a.home.setSize(msg.Width, msg.Height)
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		cmd = a.handleKey(msg)
	case splashDoneMsg:
		a.leaveSplash()
	case subscribedMsg:
		a.changes = msg.ch
		cmd = waitForChange(msg.ch)
	case changeMsg:
		cmd = a.handleChange(msg.event)
	case templatesLoadedMsg:
		if msg.err != nil {
			a.fail("加载球队列表失败", msg.err)
		}
		a.teams.setTemplates(msg.templates)
	case careerCreatedMsg:
		a.teams.creating = false
		if msg.err != nil {
			a.fail("创建生涯失败", msg.err)
			break
		}
		a.errText = ""
		if a.flow != nil {
			a.flow.Complete(msg.career)
		}
	case careersLoadedMsg:
		if msg.err != nil {
			a.fail("加载存档失败", msg.err)
		}
		a.careers.setCareers(msg.careers)
	case careerLoadedMsg:
		if a.home == nil || a.home.career.ID != msg.careerID {
			break
		}
		if msg.err != nil {
			a.fail("加载生涯失败", msg.err)
		}
		a.home.setLoaded(msg)
	case rosterLoadedMsg:
		if a.home == nil {
			break
		}
		if msg.err != nil {
			a.fail("加载阵容失败", msg.err)
			break
		}
		a.home.rosters[msg.teamID] = msg.players
	}
	return a, a.batch(cmd)
}

// batch 合并协调器回调中产生的命令
func (a *App) batch(cmd tea.Cmd) tea.Cmd {
	cmds := append(a.pending, cmd)
	a.pending = nil
	return tea.Batch(cmds...)
}

func (a *App) fail(msg string, err error) {
	a.logger.WithError(err).Warn(msg)
	a.errText = err.Error()
}

func (a *App) leaveSplash() {
	if top, _ := a.router.Top(); top == ScreenSplash {
		a.router.Replace(ScreenMenu)
	}
}

func (a *App) handleChange(ev model.ChangeEvent) tea.Cmd {
	var cmd tea.Cmd
	if ev.Kind == model.ChangeCareerCreated {
		if top, _ := a.router.Top(); top == ScreenContinue {
			cmd = a.loadCareers()
		}
	}
	return tea.Batch(cmd, waitForChange(a.changes))
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if sheet, ok := a.router.Sheet(); ok && sheet == ScreenTeamSelect {
		return a.handleTeamSelect(key)
	}

	top, _ := a.router.Top()
	switch top {
	case ScreenSplash:
		a.leaveSplash()
	case ScreenMenu:
		if key == "q" {
			return tea.Quit
		}
		return a.handleMenu(a.menu.handle(key))
	case ScreenNewGame:
		if key == "esc" {
			a.flow.Cancel()
			return nil
		}
		submit, cmd := a.newGame.handle(msg)
		if !submit {
			return cmd
		}
		league := a.newGame.leagueName()
		a.flow.SubmitDetails(a.newGame.coachName(), league)
		if len(a.teams.templates) == 0 {
			a.teams.loading = true
			return a.loadTemplates()
		}
	case ScreenContinue:
		if key == "esc" {
			a.router.Pop()
			return nil
		}
		if c := a.careers.handle(key); c != nil {
			return a.openCareer(c)
		}
	case ScreenCareer:
		back, load, cmd := a.home.handle(msg)
		if back {
			a.router.Pop()
			a.home = nil
			return nil
		}
		if load != "" {
			return tea.Batch(cmd, a.loadRoster(load))
		}
		return cmd
	}
	return nil
}

func (a *App) handleMenu(choice menuItem) tea.Cmd {
	switch choice {
	case menuNewGame:
		a.errText = ""
		cmd := a.newGame.reset()
		a.flow = newNewGameFlow(a.router)
		a.root.StartChild(a.flow, a.onNewGameFinished)
		return cmd
	case menuContinue:
		a.errText = ""
		a.careers.loading = true
		a.router.Push(ScreenContinue)
		return a.loadCareers()
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (a *App) handleTeamSelect(key string) tea.Cmd {
	if key == "esc" {
		if !a.teams.creating {
			a.router.Dismiss()
		}
		return nil
	}
	id := a.teams.handle(key)
	if id == "" || a.flow == nil {
		return nil
	}
	a.teams.creating = true
	return a.createCareer(a.flow.Request(id))
}

func (a *App) onNewGameFinished(result any) {
	a.flow = nil
	if c, ok := result.(*model.ClientCareer); ok && c != nil {
		a.pending = append(a.pending, a.openCareer(c))
	}
}

// openCareer 导航栈重置为 [主菜单, 生涯主页]
func (a *App) openCareer(c *model.ClientCareer) tea.Cmd {
	a.router.SetPath(ScreenMenu, ScreenCareer)
	a.home = newCareerHome(c, a.width, a.height)
	return a.loadCareer(c)
}

func (a *App) View() string {
	top, _ := a.router.Top()
	var body string
	switch top {
	case ScreenSplash:
		body = renderSplash(a.styles, a.width)
	case ScreenMenu:
		body = a.menu.view(a.styles)
	case ScreenNewGame:
		body = a.newGame.view(a.styles)
	case ScreenContinue:
		body = a.careers.view(a.styles)
	case ScreenCareer:
		if a.home != nil {
			body = a.home.view(a.styles)
		}
	}

	var b strings.Builder
	b.WriteString(body)
	if sheet, ok := a.router.Sheet(); ok && sheet == ScreenTeamSelect {
		b.WriteString("\n\n")
		b.WriteString(a.teams.view(a.styles))
	}
	if a.errText != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render(a.errText))
	}
	b.WriteString("\n")
	return b.String()
}

// Screen 当前栈顶页面
func (a *App) Screen() Screen {
	top, _ := a.router.Top()
	return top
}
