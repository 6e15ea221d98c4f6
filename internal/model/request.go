package model

// NewCareerRequest 新生涯请求（新游戏流程提交）
type NewCareerRequest struct {
	CoachName      string `json:"coach_name" binding:"required"`
	TeamTemplateID string `json:"team_template_id" binding:"required"`
	LeagueName     string `json:"league_name"` // 为空时使用配置中的默认联赛名
	Year           int    `json:"year"`        // 为空时使用当前年份
}

// ChangeKind 数据变更类型
type ChangeKind string

const (
	ChangeCareerCreated ChangeKind = "career_created"
)

// ChangeEvent 数据变更通知，订阅方据此刷新界面
type ChangeEvent struct {
	Kind     ChangeKind `json:"kind"`
	CareerID string     `json:"career_id"`
}
