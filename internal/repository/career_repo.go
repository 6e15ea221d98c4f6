package repository

import (
	"context"
	"fmt"

	"CareerMode/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CareerRepository 生涯存档仓储
type CareerRepository interface {
	// CreateGraph 在一个事务中按依赖顺序写入完整的生涯对象图
	CreateGraph(ctx context.Context, g *model.CareerGraph) error
	ListCareers(ctx context.Context) ([]*model.Career, error)
	GetCareer(ctx context.Context, id string) (*model.Career, error)
}

type careerRepository struct {
	db *gorm.DB
}

func NewCareerRepository(db *gorm.DB) CareerRepository {
	return &careerRepository{db: db}
}

func (r *careerRepository) CreateGraph(ctx context.Context, g *model.CareerGraph) (err error) {
	if g == nil || g.Career == nil || g.League == nil || g.Season == nil {
		return fmt.Errorf("生涯对象图不完整")
	}
	// 开启事务
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("开启事务失败: %w", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()
	fail := func(step string, e error) error {
		tx.Rollback()
		return fmt.Errorf("%s失败: %w", step, e)
	}

	// 1. 教练
	if err := tx.Omit(clause.Associations).Create(g.Coaches).Error; err != nil {
		return fail("保存教练", err)
	}
	// 2. 球队信息 + 球队（联赛未创建，league_id 稍后回填）+ 球员
	if err := tx.Omit(clause.Associations).Create(g.TeamInfos).Error; err != nil {
		return fail("保存球队信息", err)
	}
	if err := tx.Omit(clause.Associations, "league_id").Create(g.Teams).Error; err != nil {
		return fail("保存球队", err)
	}
	if len(g.Players) > 0 {
		if err := tx.Omit(clause.Associations).CreateInBatches(g.Players, 200).Error; err != nil {
			return fail("保存球员", err)
		}
	}
	// 3. 联赛
	if err := tx.Omit(clause.Associations).Create(g.League).Error; err != nil {
		return fail("保存联赛", err)
	}
	// 4. 回填 team.league_id
	teamIDs := make([]string, 0, len(g.Teams))
	for _, t := range g.Teams {
		teamIDs = append(teamIDs, t.ID)
	}
	if err := tx.Model(&model.Team{}).Where("id IN ?", teamIDs).Update("league_id", g.League.ID).Error; err != nil {
		return fail("回填球队联赛", err)
	}
	// 5. 赛季（career_id 稍后回填）
	if err := tx.Omit(clause.Associations, "career_id").Create(g.Season).Error; err != nil {
		return fail("保存赛季", err)
	}
	// 6. 生涯
	if err := tx.Omit(clause.Associations).Create(g.Career).Error; err != nil {
		return fail("保存生涯", err)
	}
	// 7. 回填 season.career_id
	if err := tx.Model(&model.Season{}).Where("id = ?", g.Season.ID).Update("career_id", g.Career.ID).Error; err != nil {
		return fail("回填赛季生涯", err)
	}
	// 8. 初始统计
	if len(g.TeamStats) > 0 {
		if err := tx.Create(g.TeamStats).Error; err != nil {
			return fail("保存球队统计", err)
		}
	}
	if len(g.PlayerStats) > 0 {
		if err := tx.CreateInBatches(g.PlayerStats, 200).Error; err != nil {
			return fail("保存球员统计", err)
		}
	}

	// 提交事务
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("提交事务失败: %w", err)
	}
	return nil
}

func (r *careerRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Coach").
		Preload("UserTeam.Info").
		Preload("CurrentSeason").
		Preload("Seasons", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") })
}

func (r *careerRepository) ListCareers(ctx context.Context) ([]*model.Career, error) {
	var list []*model.Career
	if err := r.preloaded(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *careerRepository) GetCareer(ctx context.Context, id string) (*model.Career, error) {
	var c model.Career
	if err := r.preloaded(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
