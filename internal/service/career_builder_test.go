package service

import (
	"errors"
	"fmt"
	"testing"

	"CareerMode/internal/generator"
	"CareerMode/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%04d", n)
	}
}

func buildGraph(t *testing.T, req *model.NewCareerRequest) *model.CareerGraph {
	t.Helper()
	b := NewCareerBuilder(generator.New(3, 18, 35), sequentialIDs(), 11)
	g, err := b.Build(req, generator.CatalogN(6))
	require.NoError(t, err)
	return g
}

func TestBuildProducesTeamsWithElevenPlayers(t *testing.T) {
	g := buildGraph(t, &model.NewCareerRequest{CoachName: "Ada Byrne", TeamTemplateID: "redmarsh", LeagueName: "Test League", Year: 2026})

	require.Len(t, g.Teams, 6)
	require.Len(t, g.TeamInfos, 6)
	assert.Len(t, g.Players, 66)
	for _, team := range g.Teams {
		require.Len(t, team.Players, 11)
		for i, p := range team.Players {
			assert.Equal(t, team.ID, p.TeamID)
			assert.Equal(t, generator.PositionFor(i), p.Position)
			assert.Equal(t, i+1, p.Number)
			assert.GreaterOrEqual(t, p.Age, 18)
			assert.LessOrEqual(t, p.Age, 35)
		}
	}
}

func TestBuildAssignsUserCoachOnlyToSelectedTeam(t *testing.T) {
	g := buildGraph(t, &model.NewCareerRequest{CoachName: "  Ada Byrne ", TeamTemplateID: "redmarsh", LeagueName: "L", Year: 2026})

	user := g.UserTeam()
	require.NotNil(t, user)
	assert.Equal(t, "redmarsh", user.Info.TemplateID)
	assert.Equal(t, "Ada Byrne", user.Coach.Name)
	assert.Equal(t, g.Coach.ID, user.CoachID)
	assert.Len(t, g.Coaches, 6)

	for _, team := range g.Teams {
		if team.ID == user.ID {
			continue
		}
		assert.NotEqual(t, g.Coach.ID, team.CoachID)
		assert.NotEqual(t, "Ada Byrne", team.Coach.Name)
		assert.NotEmpty(t, team.Coach.Name)
	}
}

func TestBuildBackReferences(t *testing.T) {
	g := buildGraph(t, &model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "harbor-city", LeagueName: "L", Year: 2030})

	require.Len(t, g.League.Teams, len(g.Teams))
	for _, team := range g.Teams {
		require.NotNil(t, team.LeagueID)
		assert.Equal(t, g.League.ID, *team.LeagueID)
	}
	assert.Equal(t, g.League.ID, g.Season.LeagueID)
	assert.Equal(t, 1, g.Season.Number)
	assert.Equal(t, 2030, g.Season.Year)
	assert.False(t, g.Season.IsComplete)
	require.NotNil(t, g.Season.CareerID)
	assert.Equal(t, g.Career.ID, *g.Season.CareerID)
	assert.Equal(t, g.Season.ID, g.Career.CurrentSeasonID)
	assert.NoError(t, g.Career.Validate())
}

func TestBuildZeroedCareerStats(t *testing.T) {
	g := buildGraph(t, &model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "harbor-city", LeagueName: "L", Year: 2030})

	assert.Len(t, g.TeamStats, len(g.Teams))
	assert.Len(t, g.PlayerStats, len(g.Players))
	for _, s := range g.TeamStats {
		assert.Equal(t, g.Career.ID, s.CareerID)
		assert.Equal(t, model.StatLine{}, s.Stats)
	}
	for _, s := range g.PlayerStats {
		assert.Equal(t, model.StatLine{}, s.Stats)
		assert.NotEmpty(t, s.TeamID)
	}
}

func TestBuildIDsAreUnique(t *testing.T) {
	g := buildGraph(t, &model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "harbor-city", LeagueName: "L", Year: 2030})

	seen := make(map[string]bool)
	add := func(id string) {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	for _, c := range g.Coaches {
		add(c.ID)
	}
	for _, team := range g.Teams {
		add(team.ID)
		add(team.TeamInfoID)
	}
	for _, p := range g.Players {
		add(p.ID)
	}
	add(g.League.ID)
	add(g.Season.ID)
	add(g.Career.ID)
}

func TestBuildRejectsInvalidRequests(t *testing.T) {
	b := NewCareerBuilder(generator.New(1, 18, 35), sequentialIDs(), 11)

	_, err := b.Build(&model.NewCareerRequest{CoachName: "   ", TeamTemplateID: "harbor-city"}, generator.Catalog())
	assert.True(t, errors.Is(err, ErrInvalidCoachName))

	_, err = b.Build(&model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "atlantis"}, generator.Catalog())
	assert.True(t, errors.Is(err, ErrUnknownTeam))
}
