package model

// StatLine 统计字段（生涯/赛季/单场共用）
type StatLine struct {
	GamesPlayed   int     `gorm:"column:games_played;default:0"`
	Goals         int     `gorm:"column:goals;default:0"`
	GoalsAgainst  int     `gorm:"column:goals_against;default:0"`
	Wins          int     `gorm:"column:wins;default:0"`
	Draws         int     `gorm:"column:draws;default:0"`
	Losses        int     `gorm:"column:losses;default:0"`
	Possession    float64 `gorm:"column:possession;default:0;comment:平均控球率"`
	Shots         int     `gorm:"column:shots;default:0"`
	ShotsOnTarget int     `gorm:"column:shots_on_target;default:0"`
}

// Points 积分：胜3平1
func (s StatLine) Points() int {
	return s.Wins*3 + s.Draws
}

// GoalDifference 净胜球
func (s StatLine) GoalDifference() int {
	return s.Goals - s.GoalsAgainst
}

// TeamCareerStats 球队在某个生涯中的累计统计
type TeamCareerStats struct {
	ID       string   `gorm:"column:id;primaryKey;type:varchar(64)"`
	CareerID string   `gorm:"column:career_id;type:varchar(64);not null;uniqueIndex:uk_team_career"`
	TeamID   string   `gorm:"column:team_id;type:varchar(64);not null;uniqueIndex:uk_team_career"`
	Stats    StatLine `gorm:"embedded"`
}

// PlayerCareerStats 球员在某个生涯中的累计统计
type PlayerCareerStats struct {
	ID       string   `gorm:"column:id;primaryKey;type:varchar(64)"`
	CareerID string   `gorm:"column:career_id;type:varchar(64);not null;uniqueIndex:uk_player_career"`
	PlayerID string   `gorm:"column:player_id;type:varchar(64);not null;uniqueIndex:uk_player_career"`
	TeamID   string   `gorm:"column:team_id;type:varchar(64);index;not null"`
	Stats    StatLine `gorm:"embedded"`
}

// TeamSeasonStats 球队赛季统计
type TeamSeasonStats struct {
	ID       string   `gorm:"column:id;primaryKey;type:varchar(64)"`
	SeasonID string   `gorm:"column:season_id;type:varchar(64);not null;uniqueIndex:uk_team_season"`
	TeamID   string   `gorm:"column:team_id;type:varchar(64);not null;uniqueIndex:uk_team_season"`
	Stats    StatLine `gorm:"embedded"`
}

// PlayerSeasonStats 球员赛季统计
type PlayerSeasonStats struct {
	ID       string   `gorm:"column:id;primaryKey;type:varchar(64)"`
	SeasonID string   `gorm:"column:season_id;type:varchar(64);not null;uniqueIndex:uk_player_season"`
	PlayerID string   `gorm:"column:player_id;type:varchar(64);not null;uniqueIndex:uk_player_season"`
	Stats    StatLine `gorm:"embedded"`
}

// TeamMatchStats 球队单场统计
type TeamMatchStats struct {
	ID      string   `gorm:"column:id;primaryKey;type:varchar(64)"`
	MatchID string   `gorm:"column:match_id;type:varchar(64);not null;uniqueIndex:uk_team_match"`
	TeamID  string   `gorm:"column:team_id;type:varchar(64);not null;uniqueIndex:uk_team_match"`
	Stats   StatLine `gorm:"embedded"`
}

// PlayerMatchStats 球员单场统计
type PlayerMatchStats struct {
	ID       string   `gorm:"column:id;primaryKey;type:varchar(64)"`
	MatchID  string   `gorm:"column:match_id;type:varchar(64);not null;uniqueIndex:uk_player_match"`
	PlayerID string   `gorm:"column:player_id;type:varchar(64);not null;uniqueIndex:uk_player_match"`
	Stats    StatLine `gorm:"embedded"`
}

func (TeamCareerStats) TableName() string   { return "team_career_stats" }
func (PlayerCareerStats) TableName() string { return "player_career_stats" }
func (TeamSeasonStats) TableName() string   { return "team_season_stats" }
func (PlayerSeasonStats) TableName() string { return "player_season_stats" }
func (TeamMatchStats) TableName() string    { return "team_match_stats" }
func (PlayerMatchStats) TableName() string  { return "player_match_stats" }

// AllModels 迁移顺序（按依赖顺序）
func AllModels() []interface{} {
	return []interface{}{
		&Coach{},
		&TeamInfo{},
		&Team{},
		&Player{},
		&League{},
		&Season{},
		&Match{},
		&Career{},
		&TeamCareerStats{},
		&PlayerCareerStats{},
		&TeamSeasonStats{},
		&PlayerSeasonStats{},
		&TeamMatchStats{},
		&PlayerMatchStats{},
	}
}
