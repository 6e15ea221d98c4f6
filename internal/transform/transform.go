// Package transform 负责持久化实体与客户端扁平模型之间的逐字段转换
package transform

import (
	"encoding/json"

	"CareerMode/internal/generator"
	"CareerMode/internal/model"

	"gorm.io/datatypes"
)

func CoachToClient(c *model.Coach) model.ClientCoach {
	if c == nil {
		return model.ClientCoach{}
	}
	return model.ClientCoach{ID: c.ID, Name: c.Name}
}

func CoachFromClient(c model.ClientCoach) *model.Coach {
	return &model.Coach{ID: c.ID, Name: c.Name}
}

func TeamInfoToClient(info *model.TeamInfo) model.ClientTeamInfo {
	if info == nil {
		return model.ClientTeamInfo{}
	}
	return model.ClientTeamInfo{
		ID:           info.ID,
		TemplateID:   info.TemplateID,
		Name:         info.Name,
		Abbreviation: info.Abbreviation,
		City:         info.City,
		Stadium:      info.Stadium,
		Colors:       DecodeColors(info.Colors),
	}
}

func TeamInfoFromClient(c model.ClientTeamInfo) *model.TeamInfo {
	return &model.TeamInfo{
		ID:           c.ID,
		TemplateID:   c.TemplateID,
		Name:         c.Name,
		Abbreviation: c.Abbreviation,
		City:         c.City,
		Stadium:      c.Stadium,
		Colors:       EncodeColors(c.Colors),
	}
}

// TemplateToClient 球队目录模板 → 客户端球队信息（尚未落库，ID为空）
func TemplateToClient(t generator.TeamTemplate) model.ClientTeamInfo {
	colors := make([]string, len(t.Colors))
	copy(colors, t.Colors)
	return model.ClientTeamInfo{
		TemplateID:   t.ID,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Stadium:      t.Stadium,
		Colors:       colors,
	}
}

// EncodeColors 颜色列表 → JSON 列；空列表存 nil
func EncodeColors(colors []string) datatypes.JSON {
	if len(colors) == 0 {
		return nil
	}
	b, err := json.Marshal(colors)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// DecodeColors JSON 列 → 颜色列表，解析失败返回 nil
func DecodeColors(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var colors []string
	if err := json.Unmarshal(raw, &colors); err != nil {
		return nil
	}
	return colors
}

func TeamToClient(t *model.Team) model.ClientTeam {
	if t == nil {
		return model.ClientTeam{}
	}
	out := model.ClientTeam{
		ID:        t.ID,
		Info:      TeamInfoToClient(t.Info),
		CoachID:   t.CoachID,
		PlayerIDs: make([]string, 0, len(t.Players)),
	}
	out.Info.ID = t.TeamInfoID
	if t.Coach != nil {
		out.CoachName = t.Coach.Name
	}
	if t.LeagueID != nil {
		out.LeagueID = *t.LeagueID
	}
	for _, p := range t.Players {
		out.PlayerIDs = append(out.PlayerIDs, p.ID)
	}
	return out
}

// TeamFromClient 客户端球队 → 实体；关联只以ID占位，不做加载
func TeamFromClient(c model.ClientTeam) *model.Team {
	t := &model.Team{
		ID:         c.ID,
		TeamInfoID: c.Info.ID,
		Info:       TeamInfoFromClient(c.Info),
		CoachID:    c.CoachID,
		LeagueID:   optionalID(c.LeagueID),
		Players:    make([]model.Player, 0, len(c.PlayerIDs)),
	}
	for _, id := range c.PlayerIDs {
		t.Players = append(t.Players, model.Player{ID: id, TeamID: c.ID})
	}
	return t
}

func PlayerToClient(p *model.Player) model.ClientPlayer {
	if p == nil {
		return model.ClientPlayer{}
	}
	return model.ClientPlayer{
		ID:       p.ID,
		Name:     p.Name,
		Age:      p.Age,
		Position: p.Position,
		Number:   p.Number,
		TeamID:   p.TeamID,
	}
}

func PlayerFromClient(c model.ClientPlayer) *model.Player {
	return &model.Player{
		ID:       c.ID,
		Name:     c.Name,
		Age:      c.Age,
		Position: c.Position,
		Number:   c.Number,
		TeamID:   c.TeamID,
	}
}

func LeagueToClient(l *model.League) model.ClientLeague {
	if l == nil {
		return model.ClientLeague{}
	}
	out := model.ClientLeague{ID: l.ID, Name: l.Name, TeamIDs: make([]string, 0, len(l.Teams))}
	for _, t := range l.Teams {
		out.TeamIDs = append(out.TeamIDs, t.ID)
	}
	return out
}

func LeagueFromClient(c model.ClientLeague) *model.League {
	l := &model.League{ID: c.ID, Name: c.Name, Teams: make([]model.Team, 0, len(c.TeamIDs))}
	for _, id := range c.TeamIDs {
		leagueID := c.ID
		l.Teams = append(l.Teams, model.Team{ID: id, LeagueID: &leagueID})
	}
	return l
}

func SeasonToClient(s *model.Season) model.ClientSeason {
	if s == nil {
		return model.ClientSeason{}
	}
	out := model.ClientSeason{
		ID:         s.ID,
		Number:     s.Number,
		Year:       s.Year,
		IsComplete: s.IsComplete,
		LeagueID:   s.LeagueID,
		MatchIDs:   make([]string, 0, len(s.Matches)),
	}
	if s.CareerID != nil {
		out.CareerID = *s.CareerID
	}
	for _, m := range s.Matches {
		out.MatchIDs = append(out.MatchIDs, m.ID)
	}
	return out
}

func SeasonFromClient(c model.ClientSeason) *model.Season {
	s := &model.Season{
		ID:         c.ID,
		Number:     c.Number,
		Year:       c.Year,
		IsComplete: c.IsComplete,
		LeagueID:   c.LeagueID,
		CareerID:   optionalID(c.CareerID),
		Matches:    make([]model.Match, 0, len(c.MatchIDs)),
	}
	for _, id := range c.MatchIDs {
		s.Matches = append(s.Matches, model.Match{ID: id, SeasonID: c.ID})
	}
	return s
}

func MatchToClient(m *model.Match) model.ClientMatch {
	if m == nil {
		return model.ClientMatch{}
	}
	return model.ClientMatch{
		ID:         m.ID,
		SeasonID:   m.SeasonID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeGoals:  m.HomeGoals,
		AwayGoals:  m.AwayGoals,
		IsComplete: m.IsComplete,
	}
}

func MatchFromClient(c model.ClientMatch) *model.Match {
	return &model.Match{
		ID:         c.ID,
		SeasonID:   c.SeasonID,
		HomeTeamID: c.HomeTeamID,
		AwayTeamID: c.AwayTeamID,
		HomeGoals:  c.HomeGoals,
		AwayGoals:  c.AwayGoals,
		IsComplete: c.IsComplete,
	}
}

func CareerToClient(c *model.Career) model.ClientCareer {
	if c == nil {
		return model.ClientCareer{}
	}
	out := model.ClientCareer{
		ID:              c.ID,
		CoachID:         c.CoachID,
		UserTeamID:      c.UserTeamID,
		CurrentSeasonID: c.CurrentSeasonID,
		SeasonIDs:       make([]string, 0, len(c.Seasons)),
	}
	if c.Coach != nil {
		out.CoachName = c.Coach.Name
	}
	if c.UserTeam != nil && c.UserTeam.Info != nil {
		out.UserTeamName = c.UserTeam.Info.Name
	}
	if c.CurrentSeason != nil {
		out.LeagueID = c.CurrentSeason.LeagueID
	}
	for _, s := range c.Seasons {
		out.SeasonIDs = append(out.SeasonIDs, s.ID)
	}
	return out
}

func CareerFromClient(c model.ClientCareer) *model.Career {
	career := &model.Career{
		ID:              c.ID,
		CoachID:         c.CoachID,
		UserTeamID:      c.UserTeamID,
		CurrentSeasonID: c.CurrentSeasonID,
		Seasons:         make([]model.Season, 0, len(c.SeasonIDs)),
	}
	for _, id := range c.SeasonIDs {
		careerID := c.ID
		career.Seasons = append(career.Seasons, model.Season{ID: id, CareerID: &careerID})
	}
	return career
}

func StatLineToClient(s model.StatLine) model.ClientStatLine {
	return model.ClientStatLine{
		GamesPlayed:    s.GamesPlayed,
		Goals:          s.Goals,
		GoalsAgainst:   s.GoalsAgainst,
		Wins:           s.Wins,
		Draws:          s.Draws,
		Losses:         s.Losses,
		Possession:     s.Possession,
		Shots:          s.Shots,
		ShotsOnTarget:  s.ShotsOnTarget,
		Points:         s.Points(),
		GoalDifference: s.GoalDifference(),
	}
}

func StatLineFromClient(c model.ClientStatLine) model.StatLine {
	return model.StatLine{
		GamesPlayed:   c.GamesPlayed,
		Goals:         c.Goals,
		GoalsAgainst:  c.GoalsAgainst,
		Wins:          c.Wins,
		Draws:         c.Draws,
		Losses:        c.Losses,
		Possession:    c.Possession,
		Shots:         c.Shots,
		ShotsOnTarget: c.ShotsOnTarget,
	}
}

func TeamCareerStatsToClient(s *model.TeamCareerStats) model.ClientTeamStats {
	if s == nil {
		return model.ClientTeamStats{}
	}
	return model.ClientTeamStats{ID: s.ID, OwnerID: s.TeamID, ScopeID: s.CareerID, Stats: StatLineToClient(s.Stats)}
}

func TeamCareerStatsFromClient(c model.ClientTeamStats) *model.TeamCareerStats {
	return &model.TeamCareerStats{ID: c.ID, TeamID: c.OwnerID, CareerID: c.ScopeID, Stats: StatLineFromClient(c.Stats)}
}

func PlayerCareerStatsToClient(s *model.PlayerCareerStats) model.ClientPlayerStats {
	if s == nil {
		return model.ClientPlayerStats{}
	}
	return model.ClientPlayerStats{ID: s.ID, OwnerID: s.PlayerID, ScopeID: s.CareerID, Stats: StatLineToClient(s.Stats)}
}

func TeamSeasonStatsToClient(s *model.TeamSeasonStats) model.ClientTeamStats {
	if s == nil {
		return model.ClientTeamStats{}
	}
	return model.ClientTeamStats{ID: s.ID, OwnerID: s.TeamID, ScopeID: s.SeasonID, Stats: StatLineToClient(s.Stats)}
}

func TeamMatchStatsToClient(s *model.TeamMatchStats) model.ClientTeamStats {
	if s == nil {
		return model.ClientTeamStats{}
	}
	return model.ClientTeamStats{ID: s.ID, OwnerID: s.TeamID, ScopeID: s.MatchID, Stats: StatLineToClient(s.Stats)}
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
