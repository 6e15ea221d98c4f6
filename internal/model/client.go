package model

// 客户端模型：扁平结构，只用字符串ID引用其他实体，供 UI / HTTP 使用

type ClientCoach struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClientTeamInfo struct {
	ID           string   `json:"id"`
	TemplateID   string   `json:"template_id"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	City         string   `json:"city"`
	Stadium      string   `json:"stadium"`
	Colors       []string `json:"colors"`
}

type ClientTeam struct {
	ID        string         `json:"id"`
	Info      ClientTeamInfo `json:"info"`
	CoachID   string         `json:"coach_id"`
	CoachName string         `json:"coach_name,omitempty"`
	LeagueID  string         `json:"league_id"`
	PlayerIDs []string       `json:"player_ids"`
}

type ClientPlayer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Position string `json:"position"`
	Number   int    `json:"number"`
	TeamID   string `json:"team_id"`
}

type ClientLeague struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	TeamIDs []string `json:"team_ids"`
}

type ClientSeason struct {
	ID         string   `json:"id"`
	Number     int      `json:"number"`
	Year       int      `json:"year"`
	IsComplete bool     `json:"is_complete"`
	LeagueID   string   `json:"league_id"`
	CareerID   string   `json:"career_id"`
	MatchIDs   []string `json:"match_ids"`
}

type ClientMatch struct {
	ID         string `json:"id"`
	SeasonID   string `json:"season_id"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	HomeGoals  int    `json:"home_goals"`
	AwayGoals  int    `json:"away_goals"`
	IsComplete bool   `json:"is_complete"`
}

type ClientCareer struct {
	ID              string   `json:"id"`
	CoachID         string   `json:"coach_id"`
	CoachName       string   `json:"coach_name,omitempty"`
	UserTeamID      string   `json:"user_team_id"`
	UserTeamName    string   `json:"user_team_name,omitempty"`
	CurrentSeasonID string   `json:"current_season_id"`
	SeasonIDs       []string `json:"season_ids"`
	LeagueID        string   `json:"league_id,omitempty"`
}

type ClientStatLine struct {
	GamesPlayed    int     `json:"games_played"`
	Goals          int     `json:"goals"`
	GoalsAgainst   int     `json:"goals_against"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	Possession     float64 `json:"possession"`
	Shots          int     `json:"shots"`
	ShotsOnTarget  int     `json:"shots_on_target"`
	Points         int     `json:"points"`
	GoalDifference int     `json:"goal_difference"`
}

type ClientTeamStats struct {
	ID       string         `json:"id"`
	OwnerID  string         `json:"team_id"`
	ScopeID  string         `json:"scope_id"` // career / season / match ID
	Stats    ClientStatLine `json:"stats"`
	TeamName string         `json:"team_name,omitempty"`
}

type ClientPlayerStats struct {
	ID      string         `json:"id"`
	OwnerID string         `json:"player_id"`
	ScopeID string         `json:"scope_id"`
	Stats   ClientStatLine `json:"stats"`
}
