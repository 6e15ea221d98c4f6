package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"CareerMode/internal/config"
	"CareerMode/internal/model"
	"CareerMode/internal/pubsub"
	"CareerMode/internal/repository"
	"CareerMode/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fixture struct {
	db      *gorm.DB
	broker  *pubsub.Broker
	careers *CareerService
	data    *DataManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	cfg.Database.DSN = filepath.Join(t.TempDir(), "career.db")
	cfg.Career.TeamCount = 4

	log := quietLogger()
	db, err := storage.Open(&cfg.Database, log)
	require.NoError(t, err)

	broker := pubsub.NewBroker(8, log)
	t.Cleanup(broker.Close)
	careers := NewCareerService(repository.NewCareerRepository(db), broker, cfg.Career, log)
	return &fixture{
		db:      db,
		broker:  broker,
		careers: careers,
		data:    NewDataManager(db, careers, broker, log),
	}
}

func TestCreateNewCareerPersistsGraph(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	career, err := f.careers.CreateNewCareer(ctx, &model.NewCareerRequest{CoachName: "Ada Byrne", TeamTemplateID: "northvale"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Byrne", career.CoachName)
	assert.Equal(t, "Northvale United", career.UserTeamName)
	assert.Equal(t, []string{career.CurrentSeasonID}, career.SeasonIDs)

	var teams, players, teamStats, playerStats int64
	f.db.Model(&model.Team{}).Count(&teams)
	f.db.Model(&model.Player{}).Count(&players)
	f.db.Model(&model.TeamCareerStats{}).Count(&teamStats)
	f.db.Model(&model.PlayerCareerStats{}).Count(&playerStats)
	assert.EqualValues(t, 4, teams)
	assert.EqualValues(t, 44, players)
	assert.EqualValues(t, 4, teamStats)
	assert.EqualValues(t, 44, playerStats)

	var season model.Season
	require.NoError(t, f.db.First(&season, "id = ?", career.CurrentSeasonID).Error)
	require.NotNil(t, season.CareerID)
	assert.Equal(t, career.ID, *season.CareerID)

	var unassigned int64
	f.db.Model(&model.Team{}).Where("league_id IS NULL").Count(&unassigned)
	assert.Zero(t, unassigned)
}

func TestCreateNewCareerDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	career, err := f.careers.CreateNewCareer(ctx, &model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "harbor-city"})
	require.NoError(t, err)

	season, err := f.data.GetSeason(ctx, career.CurrentSeasonID)
	require.NoError(t, err)
	require.NotNil(t, season)
	assert.Equal(t, 1, season.Number)
	assert.Positive(t, season.Year)

	var league model.League
	require.NoError(t, f.db.First(&league, "id = ?", season.LeagueID).Error)
	assert.Equal(t, "Premier Division", league.Name)
}

func TestRepeatedCareersHaveUniqueIdentifiers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.careers.CreateNewCareer(ctx, &model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "harbor-city"})
		require.NoError(t, err)
	}

	var total, distinct int64
	f.db.Model(&model.Player{}).Count(&total)
	f.db.Model(&model.Player{}).Distinct("id").Count(&distinct)
	assert.EqualValues(t, 3*4*11, total)
	assert.Equal(t, total, distinct)

	careers, err := f.data.ListCareers(ctx)
	require.NoError(t, err)
	assert.Len(t, careers, 3)
}

func TestUserTeamCoachMatchesRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	career, err := f.careers.CreateNewCareer(ctx, &model.NewCareerRequest{CoachName: "Ada Byrne", TeamTemplateID: "redmarsh"})
	require.NoError(t, err)

	teams, err := f.data.GetTeams(ctx, career.ID)
	require.NoError(t, err)
	require.Len(t, teams, 4)
	for _, team := range teams {
		if team.ID == career.UserTeamID {
			assert.Equal(t, "Ada Byrne", team.CoachName)
			assert.Equal(t, career.CoachID, team.CoachID)
		} else {
			assert.NotEqual(t, "Ada Byrne", team.CoachName)
			assert.NotEqual(t, career.CoachID, team.CoachID)
		}
		assert.Len(t, team.PlayerIDs, 11)
	}
}

func TestCreateNewCareerPublishesChange(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := f.data.Subscribe(ctx)
	require.NoError(t, err)

	career, err := f.data.CreateNewCareer(ctx, &model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "harbor-city"})
	require.NoError(t, err)

	ev := <-events
	assert.Equal(t, model.ChangeCareerCreated, ev.Kind)
	assert.Equal(t, career.ID, ev.CareerID)

	cancel()
	for range events {
	}
}

func TestCreateNewCareerValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.careers.CreateNewCareer(ctx, &model.NewCareerRequest{CoachName: "", TeamTemplateID: "harbor-city"})
	assert.ErrorIs(t, err, ErrInvalidCoachName)

	// 只取前4支球队，目录中靠后的球队不可选
	_, err = f.careers.CreateNewCareer(ctx, &model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "oakfield"})
	assert.ErrorIs(t, err, ErrUnknownTeam)

	_, err = f.careers.CreateNewCareer(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidCoachName)
}

type failingCareerRepo struct {
	err error
}

func (r failingCareerRepo) CreateGraph(context.Context, *model.CareerGraph) error { return r.err }
func (r failingCareerRepo) ListCareers(context.Context) ([]*model.Career, error) { return nil, r.err }
func (r failingCareerRepo) GetCareer(context.Context, string) (*model.Career, error) {
	return nil, r.err
}

type recordingPublisher struct {
	events []model.ChangeEvent
}

func (p *recordingPublisher) Publish(ev model.ChangeEvent) { p.events = append(p.events, ev) }

func TestCreateNewCareerPropagatesSaveError(t *testing.T) {
	saveErr := errors.New("disk full")
	pub := &recordingPublisher{}
	svc := NewCareerService(failingCareerRepo{err: saveErr}, pub, config.Default().Career, quietLogger())

	_, err := svc.CreateNewCareer(context.Background(), &model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "harbor-city"})
	assert.ErrorIs(t, err, saveErr)
	assert.Empty(t, pub.events)
}

func TestDataManagerSwallowsFetchErrors(t *testing.T) {
	f := newFixture(t)
	f.data.careers = failingCareerRepo{err: errors.New("locked")}
	ctx := context.Background()

	careers, err := f.data.ListCareers(ctx)
	assert.NoError(t, err)
	assert.Empty(t, careers)

	career, err := f.data.GetCareer(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, career)

	teams, err := f.data.GetTeams(ctx, "missing")
	assert.NoError(t, err)
	assert.Empty(t, teams)
}

func TestRosterAndStandings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	career, err := f.careers.CreateNewCareer(ctx, &model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "harbor-city"})
	require.NoError(t, err)

	roster, err := f.data.GetRoster(ctx, career.UserTeamID)
	require.NoError(t, err)
	require.Len(t, roster, 11)
	assert.Equal(t, "GK", roster[0].Position)
	assert.Equal(t, 1, roster[0].Number)
	assert.Equal(t, "FW", roster[10].Position)

	standings, err := f.data.GetStandings(ctx, career.ID)
	require.NoError(t, err)
	require.Len(t, standings, 4)
	teams, err := f.data.GetTeams(ctx, career.ID)
	require.NoError(t, err)
	teamNames := make(map[string]string, len(teams))
	for _, tm := range teams {
		teamNames[tm.ID] = tm.Info.Name
	}
	for _, row := range standings {
		assert.NotEmpty(t, row.TeamName)
		assert.Equal(t, teamNames[row.OwnerID], row.TeamName)
		assert.Zero(t, row.Stats.Points)
	}

	playerStats, err := f.data.GetPlayerStats(ctx, career.ID, career.UserTeamID)
	require.NoError(t, err)
	assert.Len(t, playerStats, 11)

	matches, err := f.data.ListMatches(ctx, career.CurrentSeasonID)
	require.NoError(t, err)
	assert.Empty(t, matches)

	templates, err := f.data.ListTeamTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, 4)
}
