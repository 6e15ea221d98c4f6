package repository

import (
	"context"

	"CareerMode/internal/model"

	"gorm.io/gorm"
)

// TeamRepository 球队与球员查询
type TeamRepository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]*model.Team, error)
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	ListPlayers(ctx context.Context, teamID string) ([]*model.Player, error)
	// TeamNames 只查球队名，返回 球队ID → 名称
	TeamNames(ctx context.Context, teamIDs []string) (map[string]string, error)
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) ListByLeague(ctx context.Context, leagueID string) ([]*model.Team, error) {
	var list []*model.Team
	err := r.db.WithContext(ctx).
		Preload("Info").
		Preload("Coach").
		Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Joins("JOIN team_infos ON team_infos.id = teams.team_info_id").
		Where("teams.league_id = ?", leagueID).
		Order("team_infos.name ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *teamRepository) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	var t model.Team
	if err := r.db.WithContext(ctx).Preload("Info").Preload("Coach").Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) ListPlayers(ctx context.Context, teamID string) ([]*model.Player, error) {
	var list []*model.Player
	if err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("number ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *teamRepository) TeamNames(ctx context.Context, teamIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(teamIDs))
	if len(teamIDs) == 0 {
		return names, nil
	}
	var rows []struct {
		ID   string
		Name string
	}
	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Select("teams.id AS id, team_infos.name AS name").
		Joins("JOIN team_infos ON team_infos.id = teams.team_info_id").
		Where("teams.id IN ?", teamIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
