package model

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Coach 教练
type Coach struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(64);comment:全局唯一ID"`
	Name      string    `gorm:"column:name;type:varchar(128);not null;comment:教练姓名"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;comment:创建时间"`
}

// TeamInfo 球队基础信息（来自球队目录模板）
type TeamInfo struct {
	ID           string         `gorm:"column:id;primaryKey;type:varchar(64)"`
	TemplateID   string         `gorm:"column:template_id;type:varchar(64);index;comment:球队目录模板ID"`
	Name         string         `gorm:"column:name;type:varchar(128);not null;comment:球队名称"`
	Abbreviation string         `gorm:"column:abbreviation;type:varchar(8);comment:简称"`
	City         string         `gorm:"column:city;type:varchar(64);comment:城市"`
	Stadium      string         `gorm:"column:stadium;type:varchar(128);comment:主场"`
	Colors       datatypes.JSON `gorm:"column:colors;comment:队服颜色（JSON数组）"`
}

// Team 球队。coach / league 只在新生涯事务中赋值
type Team struct {
	ID         string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	TeamInfoID string    `gorm:"column:team_info_id;type:varchar(64);not null"`
	Info       *TeamInfo `gorm:"foreignKey:TeamInfoID"`
	CoachID    string    `gorm:"column:coach_id;type:varchar(64);not null"`
	Coach      *Coach    `gorm:"foreignKey:CoachID"`
	LeagueID   *string   `gorm:"column:league_id;type:varchar(64);index;comment:回填的联赛ID"`
	Players    []Player  `gorm:"foreignKey:TeamID"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// Player 球员
type Player struct {
	ID       string `gorm:"column:id;primaryKey;type:varchar(64)"`
	Name     string `gorm:"column:name;type:varchar(128);not null"`
	Age      int    `gorm:"column:age;not null"`
	Position string `gorm:"column:position;type:varchar(8);not null;comment:场上位置 GK/DF/MF/FW"`
	Number   int    `gorm:"column:number;not null;comment:球衣号码，按阵型顺序从1开始"`
	TeamID   string `gorm:"column:team_id;type:varchar(64);index;not null"`
}

// League 联赛
type League struct {
	ID    string `gorm:"column:id;primaryKey;type:varchar(64)"`
	Name  string `gorm:"column:name;type:varchar(128);not null"`
	Teams []Team `gorm:"foreignKey:LeagueID"`
}

// Season 赛季。career_id 在生涯创建后回填
type Season struct {
	ID         string  `gorm:"column:id;primaryKey;type:varchar(64)"`
	Number     int     `gorm:"column:number;not null;comment:第几个赛季，从1开始"`
	Year       int     `gorm:"column:year;not null"`
	IsComplete bool    `gorm:"column:is_complete;default:false"`
	LeagueID   string  `gorm:"column:league_id;type:varchar(64);index;not null"`
	League     *League `gorm:"foreignKey:LeagueID"`
	CareerID   *string `gorm:"column:career_id;type:varchar(64);index"`
	Matches    []Match `gorm:"foreignKey:SeasonID"`
}

// Match 比赛
type Match struct {
	ID         string `gorm:"column:id;primaryKey;type:varchar(64)"`
	SeasonID   string `gorm:"column:season_id;type:varchar(64);index;not null"`
	HomeTeamID string `gorm:"column:home_team_id;type:varchar(64);not null"`
	AwayTeamID string `gorm:"column:away_team_id;type:varchar(64);not null"`
	HomeGoals  int    `gorm:"column:home_goals;default:0"`
	AwayGoals  int    `gorm:"column:away_goals;default:0"`
	IsComplete bool   `gorm:"column:is_complete;default:false"`
}

// Career 生涯存档根聚合：教练 + 用户球队 + 当前赛季 + 历史赛季
type Career struct {
	ID              string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	CoachID         string    `gorm:"column:coach_id;type:varchar(64);not null"`
	Coach           *Coach    `gorm:"foreignKey:CoachID"`
	UserTeamID      string    `gorm:"column:user_team_id;type:varchar(64);not null"`
	UserTeam        *Team     `gorm:"foreignKey:UserTeamID"`
	CurrentSeasonID string    `gorm:"column:current_season_id;type:varchar(64);not null"`
	CurrentSeason   *Season   `gorm:"foreignKey:CurrentSeasonID"`
	Seasons         []Season  `gorm:"foreignKey:CareerID"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

var (
	ErrNoCurrentSeason      = errors.New("career has no current season")
	ErrCurrentSeasonUnowned = errors.New("current season is not one of the career's seasons")
)

// Validate 校验当前赛季必须属于生涯跟踪的赛季（仅在 Seasons 已加载时检查归属）
func (c *Career) Validate() error {
	if c.CurrentSeasonID == "" {
		return ErrNoCurrentSeason
	}
	if len(c.Seasons) == 0 {
		return nil
	}
	for _, s := range c.Seasons {
		if s.ID == c.CurrentSeasonID {
			return nil
		}
	}
	return ErrCurrentSeasonUnowned
}

func (Coach) TableName() string    { return "coaches" }
func (TeamInfo) TableName() string { return "team_infos" }
func (Team) TableName() string     { return "teams" }
func (Player) TableName() string   { return "players" }
func (League) TableName() string   { return "leagues" }
func (Season) TableName() string   { return "seasons" }
func (Match) TableName() string    { return "matches" }
func (Career) TableName() string   { return "careers" }
