package model

// CareerGraph 一次新生涯事务要写入的完整对象图
type CareerGraph struct {
	Coach       *Coach
	Coaches     []*Coach // 全部教练，第一个是用户教练
	TeamInfos   []*TeamInfo
	Teams       []*Team
	Players     []*Player
	League      *League
	Season      *Season
	Career      *Career
	TeamStats   []*TeamCareerStats
	PlayerStats []*PlayerCareerStats
}

// UserTeam 返回用户选择的球队
func (g *CareerGraph) UserTeam() *Team {
	if g.Career == nil {
		return nil
	}
	for _, t := range g.Teams {
		if t.ID == g.Career.UserTeamID {
			return t
		}
	}
	return nil
}
