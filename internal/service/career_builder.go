package service

import (
	"fmt"
	"strings"

	"CareerMode/internal/generator"
	"CareerMode/internal/model"
	"CareerMode/internal/transform"
)

// CareerBuilder 按固定顺序组装新生涯对象图（纯内存，不落库）
type CareerBuilder struct {
	gen       *generator.Generator
	newID     func() string
	squadSize int
}

func NewCareerBuilder(gen *generator.Generator, newID func() string, squadSize int) *CareerBuilder {
	if squadSize <= 0 {
		squadSize = 11
	}
	return &CareerBuilder{gen: gen, newID: newID, squadSize: squadSize}
}

// Build 组装顺序：
// 教练 → 每队 球队信息+球队+球员 → 联赛 → 回填球队联赛 → 赛季 → 生涯 → 回填赛季生涯 → 初始统计
func (b *CareerBuilder) Build(req *model.NewCareerRequest, templates []generator.TeamTemplate) (*model.CareerGraph, error) {
	coachName := strings.TrimSpace(req.CoachName)
	if coachName == "" {
		return nil, ErrInvalidCoachName
	}
	if _, ok := generator.FindTemplate(templates, req.TeamTemplateID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, req.TeamTemplateID)
	}

	g := &model.CareerGraph{}

	// 1. 用户教练
	g.Coach = &model.Coach{ID: b.newID(), Name: coachName}
	g.Coaches = append(g.Coaches, g.Coach)

	// 2. 球队信息 + 球队 + 球员
	var userTeam *model.Team
	for _, tpl := range templates {
		info := transform.TeamInfoFromClient(transform.TemplateToClient(tpl))
		info.ID = b.newID()

		coach := g.Coach
		if tpl.ID != req.TeamTemplateID {
			coach = &model.Coach{ID: b.newID(), Name: b.gen.PlaceholderCoachName()}
			g.Coaches = append(g.Coaches, coach)
		}

		team := &model.Team{
			ID:         b.newID(),
			TeamInfoID: info.ID,
			Info:       info,
			CoachID:    coach.ID,
			Coach:      coach,
			Players:    make([]model.Player, 0, b.squadSize),
		}
		for i := 0; i < b.squadSize; i++ {
			p := &model.Player{
				ID:       b.newID(),
				Name:     b.gen.PersonName(),
				Age:      b.gen.Age(),
				Position: generator.PositionFor(i),
				Number:   i + 1,
				TeamID:   team.ID,
			}
			team.Players = append(team.Players, *p)
			g.Players = append(g.Players, p)
		}
		if tpl.ID == req.TeamTemplateID {
			userTeam = team
		}
		g.TeamInfos = append(g.TeamInfos, info)
		g.Teams = append(g.Teams, team)
	}

	// 3. 联赛
	g.League = &model.League{ID: b.newID(), Name: req.LeagueName}
	for _, t := range g.Teams {
		g.League.Teams = append(g.League.Teams, *t)
	}
	// 4. 回填球队联赛
	for _, t := range g.Teams {
		leagueID := g.League.ID
		t.LeagueID = &leagueID
	}
	for i := range g.League.Teams {
		g.League.Teams[i].LeagueID = g.Teams[i].LeagueID
	}

	// 5. 赛季
	g.Season = &model.Season{
		ID:       b.newID(),
		Number:   1,
		Year:     req.Year,
		LeagueID: g.League.ID,
		League:   g.League,
	}

	// 6. 生涯
	g.Career = &model.Career{
		ID:              b.newID(),
		CoachID:         g.Coach.ID,
		Coach:           g.Coach,
		UserTeamID:      userTeam.ID,
		UserTeam:        userTeam,
		CurrentSeasonID: g.Season.ID,
		CurrentSeason:   g.Season,
	}
	// 7. 回填赛季生涯
	careerID := g.Career.ID
	g.Season.CareerID = &careerID
	g.Career.Seasons = []model.Season{*g.Season}

	// 8. 初始统计（全部为0）
	for _, t := range g.Teams {
		g.TeamStats = append(g.TeamStats, &model.TeamCareerStats{ID: b.newID(), CareerID: careerID, TeamID: t.ID})
	}
	for _, p := range g.Players {
		g.PlayerStats = append(g.PlayerStats, &model.PlayerCareerStats{ID: b.newID(), CareerID: careerID, PlayerID: p.ID, TeamID: p.TeamID})
	}

	if err := g.Career.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
