package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"CareerMode/internal/config"
	"CareerMode/internal/generator"
	"CareerMode/internal/interfaces"
	"CareerMode/internal/metrics"
	"CareerMode/internal/model"
	"CareerMode/internal/repository"
	"CareerMode/internal/transform"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CareerService 处理新游戏流程提交的新生涯请求：组装对象图并一次性落库
type CareerService struct {
	repo      repository.CareerRepository
	publisher interfaces.ChangePublisher
	cfg       config.CareerConfig
	templates []generator.TeamTemplate
	logger    *logrus.Logger

	now   func() time.Time
	seed  func() int64
	newID func() string
}

func NewCareerService(repo repository.CareerRepository, publisher interfaces.ChangePublisher, cfg config.CareerConfig, logger *logrus.Logger) *CareerService {
	return &CareerService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		templates: generator.CatalogN(cfg.TeamCount),
		logger:    logger,
		now:       time.Now,
		seed:      func() int64 { return time.Now().UnixNano() },
		newID:     uuid.NewString,
	}
}

// Templates 联赛中可选的球队
func (s *CareerService) Templates() []generator.TeamTemplate {
	out := make([]generator.TeamTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

// CreateNewCareer 新生涯事务。失败时原样返回持久化错误，不做重试
func (s *CareerService) CreateNewCareer(ctx context.Context, req *model.NewCareerRequest) (*model.ClientCareer, error) {
	start := s.now()
	career, err := s.createNewCareer(ctx, req)
	metrics.RecordCareerCreation(s.now().Sub(start), err)
	return career, err
}

func (s *CareerService) createNewCareer(ctx context.Context, req *model.NewCareerRequest) (*model.ClientCareer, error) {
	if req == nil {
		return nil, ErrInvalidCoachName
	}
	normalized := *req
	normalized.CoachName = strings.TrimSpace(normalized.CoachName)
	if strings.TrimSpace(normalized.LeagueName) == "" {
		normalized.LeagueName = s.cfg.LeagueName
	}
	if normalized.Year <= 0 {
		normalized.Year = s.now().Year()
	}

	gen := generator.New(s.seed(), s.cfg.MinAge, s.cfg.MaxAge)
	builder := NewCareerBuilder(gen, s.newID, s.cfg.SquadSize)
	graph, err := builder.Build(&normalized, s.templates)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateGraph(ctx, graph); err != nil {
		s.logger.WithError(err).WithField("coach", normalized.CoachName).Error("新生涯入库失败")
		return nil, fmt.Errorf("创建生涯失败: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"career_id": graph.Career.ID,
		"coach":     graph.Coach.Name,
		"team":      graph.UserTeam().Info.Name,
		"teams":     len(graph.Teams),
		"players":   len(graph.Players),
	}).Info("新生涯创建成功")

	if s.publisher != nil {
		s.publisher.Publish(model.ChangeEvent{Kind: model.ChangeCareerCreated, CareerID: graph.Career.ID})
	}
	out := transform.CareerToClient(graph.Career)
	return &out, nil
}
