package interfaces

import (
	"context"

	"CareerMode/internal/model"
)

// CareerGateway 终端界面所需的全部数据操作（本地存档或远端服务均实现此接口）
type CareerGateway interface {
	ListTeamTemplates(ctx context.Context) ([]model.ClientTeamInfo, error)
	CreateNewCareer(ctx context.Context, req *model.NewCareerRequest) (*model.ClientCareer, error)
	ListCareers(ctx context.Context) ([]model.ClientCareer, error)
	// GetCareer 不存在时返回 nil, nil
	GetCareer(ctx context.Context, careerID string) (*model.ClientCareer, error)
	GetTeams(ctx context.Context, careerID string) ([]model.ClientTeam, error)
	GetRoster(ctx context.Context, teamID string) ([]model.ClientPlayer, error)
	GetStandings(ctx context.Context, careerID string) ([]model.ClientTeamStats, error)
	// Subscribe 订阅数据变更，ctx 结束后通道关闭
	Subscribe(ctx context.Context) (<-chan model.ChangeEvent, error)
}

// ChangePublisher 写入成功后发布变更
type ChangePublisher interface {
	Publish(ev model.ChangeEvent)
}
