package repository

import (
	"context"

	"CareerMode/internal/model"

	"gorm.io/gorm"
)

// SeasonRepository 赛季与比赛查询
type SeasonRepository interface {
	GetSeason(ctx context.Context, id string) (*model.Season, error)
	ListMatches(ctx context.Context, seasonID string) ([]*model.Match, error)
}

type seasonRepository struct {
	db *gorm.DB
}

func NewSeasonRepository(db *gorm.DB) SeasonRepository {
	return &seasonRepository{db: db}
}

func (r *seasonRepository) GetSeason(ctx context.Context, id string) (*model.Season, error) {
	var s model.Season
	if err := r.db.WithContext(ctx).Preload("Matches").Preload("League").Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seasonRepository) ListMatches(ctx context.Context, seasonID string) ([]*model.Match, error) {
	var list []*model.Match
	if err := r.db.WithContext(ctx).Where("season_id = ?", seasonID).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
