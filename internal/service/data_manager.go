package service

import (
	"context"

	"CareerMode/internal/interfaces"
	"CareerMode/internal/model"
	"CareerMode/internal/pubsub"
	"CareerMode/internal/repository"
	"CareerMode/internal/transform"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var _ interfaces.CareerGateway = (*DataManager)(nil)

// DataManager 面向界面的数据入口：查询失败只记日志并返回空结果，写入委托给 CareerService
type DataManager struct {
	careers repository.CareerRepository
	teams   repository.TeamRepository
	seasons repository.SeasonRepository
	stats   repository.StatsRepository
	creator *CareerService
	broker  *pubsub.Broker
	logger  *logrus.Logger
}

func NewDataManager(db *gorm.DB, creator *CareerService, broker *pubsub.Broker, logger *logrus.Logger) *DataManager {
	return &DataManager{
		careers: repository.NewCareerRepository(db),
		teams:   repository.NewTeamRepository(db),
		seasons: repository.NewSeasonRepository(db),
		stats:   repository.NewStatsRepository(db),
		creator: creator,
		broker:  broker,
		logger:  logger,
	}
}

func (m *DataManager) ListTeamTemplates(ctx context.Context) ([]model.ClientTeamInfo, error) {
	templates := m.creator.Templates()
	out := make([]model.ClientTeamInfo, 0, len(templates))
	for _, t := range templates {
		out = append(out, transform.TemplateToClient(t))
	}
	return out, nil
}

func (m *DataManager) CreateNewCareer(ctx context.Context, req *model.NewCareerRequest) (*model.ClientCareer, error) {
	return m.creator.CreateNewCareer(ctx, req)
}

func (m *DataManager) ListCareers(ctx context.Context) ([]model.ClientCareer, error) {
	list, err := m.careers.ListCareers(ctx)
	if err != nil {
		m.logger.WithError(err).Warn("查询生涯列表失败，返回空列表")
		return []model.ClientCareer{}, nil
	}
	out := make([]model.ClientCareer, 0, len(list))
	for _, c := range list {
		out = append(out, transform.CareerToClient(c))
	}
	return out, nil
}

func (m *DataManager) GetCareer(ctx context.Context, careerID string) (*model.ClientCareer, error) {
	c, err := m.careers.GetCareer(ctx, careerID)
	if err != nil {
		m.logger.WithError(err).WithField("career_id", careerID).Warn("查询生涯失败")
		return nil, nil
	}
	out := transform.CareerToClient(c)
	return &out, nil
}

func (m *DataManager) GetTeams(ctx context.Context, careerID string) ([]model.ClientTeam, error) {
	c, err := m.careers.GetCareer(ctx, careerID)
	if err != nil || c.CurrentSeason == nil {
		m.logger.WithError(err).WithField("career_id", careerID).Warn("查询生涯失败，返回空球队列表")
		return []model.ClientTeam{}, nil
	}
	teams, err := m.teams.ListByLeague(ctx, c.CurrentSeason.LeagueID)
	if err != nil {
		m.logger.WithError(err).WithField("league_id", c.CurrentSeason.LeagueID).Warn("查询球队失败，返回空列表")
		return []model.ClientTeam{}, nil
	}
	out := make([]model.ClientTeam, 0, len(teams))
	for _, t := range teams {
		out = append(out, transform.TeamToClient(t))
	}
	return out, nil
}

func (m *DataManager) GetRoster(ctx context.Context, teamID string) ([]model.ClientPlayer, error) {
	players, err := m.teams.ListPlayers(ctx, teamID)
	if err != nil {
		m.logger.WithError(err).WithField("team_id", teamID).Warn("查询球员失败，返回空列表")
		return []model.ClientPlayer{}, nil
	}
	out := make([]model.ClientPlayer, 0, len(players))
	for _, p := range players {
		out = append(out, transform.PlayerToClient(p))
	}
	return out, nil
}

// GetStandings 生涯积分榜（球队生涯统计，按积分排序），附带球队名
func (m *DataManager) GetStandings(ctx context.Context, careerID string) ([]model.ClientTeamStats, error) {
	rows, err := m.stats.ListTeamCareerStats(ctx, careerID)
	if err != nil {
		m.logger.WithError(err).WithField("career_id", careerID).Warn("查询积分榜失败，返回空列表")
		return []model.ClientTeamStats{}, nil
	}
	teamIDs := make([]string, 0, len(rows))
	for _, r := range rows {
		teamIDs = append(teamIDs, r.TeamID)
	}
	names, err := m.teams.TeamNames(ctx, teamIDs)
	if err != nil {
		m.logger.WithError(err).WithField("career_id", careerID).Warn("查询球队名失败，积分榜不带球队名")
		names = map[string]string{}
	}
	out := make([]model.ClientTeamStats, 0, len(rows))
	for _, r := range rows {
		s := transform.TeamCareerStatsToClient(r)
		s.TeamName = names[s.OwnerID]
		out = append(out, s)
	}
	return out, nil
}

// GetTeam 球队详情（含教练与球员ID），不存在时返回 nil
func (m *DataManager) GetTeam(ctx context.Context, teamID string) (*model.ClientTeam, error) {
	t, err := m.teams.GetTeam(ctx, teamID)
	if err != nil {
		m.logger.WithError(err).WithField("team_id", teamID).Warn("查询球队失败")
		return nil, nil
	}
	out := transform.TeamToClient(t)
	return &out, nil
}

// GetSeasonStandings 赛季积分榜
func (m *DataManager) GetSeasonStandings(ctx context.Context, seasonID string) ([]model.ClientTeamStats, error) {
	rows, err := m.stats.ListTeamSeasonStats(ctx, seasonID)
	if err != nil {
		m.logger.WithError(err).WithField("season_id", seasonID).Warn("查询赛季积分榜失败，返回空列表")
		return []model.ClientTeamStats{}, nil
	}
	out := make([]model.ClientTeamStats, 0, len(rows))
	for _, r := range rows {
		out = append(out, transform.TeamSeasonStatsToClient(r))
	}
	return out, nil
}

func (m *DataManager) GetMatchStats(ctx context.Context, matchID string) ([]model.ClientTeamStats, error) {
	rows, err := m.stats.ListTeamMatchStats(ctx, matchID)
	if err != nil {
		m.logger.WithError(err).WithField("match_id", matchID).Warn("查询比赛统计失败，返回空列表")
		return []model.ClientTeamStats{}, nil
	}
	out := make([]model.ClientTeamStats, 0, len(rows))
	for _, r := range rows {
		out = append(out, transform.TeamMatchStatsToClient(r))
	}
	return out, nil
}

func (m *DataManager) GetPlayerStats(ctx context.Context, careerID, teamID string) ([]model.ClientPlayerStats, error) {
	rows, err := m.stats.ListPlayerCareerStats(ctx, careerID, teamID)
	if err != nil {
		m.logger.WithError(err).WithField("career_id", careerID).Warn("查询球员统计失败，返回空列表")
		return []model.ClientPlayerStats{}, nil
	}
	out := make([]model.ClientPlayerStats, 0, len(rows))
	for _, r := range rows {
		out = append(out, transform.PlayerCareerStatsToClient(r))
	}
	return out, nil
}

func (m *DataManager) GetSeason(ctx context.Context, seasonID string) (*model.ClientSeason, error) {
	s, err := m.seasons.GetSeason(ctx, seasonID)
	if err != nil {
		m.logger.WithError(err).WithField("season_id", seasonID).Warn("查询赛季失败")
		return nil, nil
	}
	out := transform.SeasonToClient(s)
	return &out, nil
}

func (m *DataManager) ListMatches(ctx context.Context, seasonID string) ([]model.ClientMatch, error) {
	matches, err := m.seasons.ListMatches(ctx, seasonID)
	if err != nil {
		m.logger.WithError(err).WithField("season_id", seasonID).Warn("查询比赛失败，返回空列表")
		return []model.ClientMatch{}, nil
	}
	out := make([]model.ClientMatch, 0, len(matches))
	for _, mt := range matches {
		out = append(out, transform.MatchToClient(mt))
	}
	return out, nil
}

// Subscribe 订阅数据变更；ctx 结束时取消订阅并关闭通道
func (m *DataManager) Subscribe(ctx context.Context) (<-chan model.ChangeEvent, error) {
	src, cancel := m.broker.Subscribe()
	out := make(chan model.ChangeEvent)
	go func() {
		defer close(out)
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-src:
				if !ok {
					return
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
