package repository

import (
	"context"

	"CareerMode/internal/model"

	"gorm.io/gorm"
)

// StatsRepository 统计查询
type StatsRepository interface {
	ListTeamCareerStats(ctx context.Context, careerID string) ([]*model.TeamCareerStats, error)
	// ListPlayerCareerStats teamID 为空时返回生涯内全部球员
	ListPlayerCareerStats(ctx context.Context, careerID, teamID string) ([]*model.PlayerCareerStats, error)
	ListTeamSeasonStats(ctx context.Context, seasonID string) ([]*model.TeamSeasonStats, error)
	ListTeamMatchStats(ctx context.Context, matchID string) ([]*model.TeamMatchStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// 积分榜顺序：积分、净胜球、进球
const standingsOrder = "(wins * 3 + draws) DESC, (goals - goals_against) DESC, goals DESC"

func (r *statsRepository) ListTeamCareerStats(ctx context.Context, careerID string) ([]*model.TeamCareerStats, error) {
	var list []*model.TeamCareerStats
	if err := r.db.WithContext(ctx).Where("career_id = ?", careerID).Order(standingsOrder).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *statsRepository) ListPlayerCareerStats(ctx context.Context, careerID, teamID string) ([]*model.PlayerCareerStats, error) {
	db := r.db.WithContext(ctx).Where("career_id = ?", careerID)
	if teamID != "" {
		db = db.Where("team_id = ?", teamID)
	}
	var list []*model.PlayerCareerStats
	if err := db.Order("goals DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *statsRepository) ListTeamSeasonStats(ctx context.Context, seasonID string) ([]*model.TeamSeasonStats, error) {
	var list []*model.TeamSeasonStats
	if err := r.db.WithContext(ctx).Where("season_id = ?", seasonID).Order(standingsOrder).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *statsRepository) ListTeamMatchStats(ctx context.Context, matchID string) ([]*model.TeamMatchStats, error) {
	var list []*model.TeamMatchStats
	if err := r.db.WithContext(ctx).Where("match_id = ?", matchID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
