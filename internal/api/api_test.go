package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"CareerMode/internal/config"
	"CareerMode/internal/model"
	"CareerMode/internal/pubsub"
	"CareerMode/internal/repository"
	"CareerMode/internal/service"
	"CareerMode/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.Default()
	cfg.Database.DSN = filepath.Join(t.TempDir(), "career.db")
	cfg.Career.TeamCount = 3

	db, err := storage.Open(&cfg.Database, log)
	require.NoError(t, err)
	broker := pubsub.NewBroker(8, log)
	t.Cleanup(broker.Close)
	careers := service.NewCareerService(repository.NewCareerRepository(db), broker, cfg.Career, log)
	data := service.NewDataManager(db, careers, broker, log)

	r := gin.New()
	RegisterRoutes(r, data, log)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCareer(t *testing.T, r http.Handler) model.ClientCareer {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/careers", model.NewCareerRequest{CoachName: "Ada Byrne", TeamTemplateID: "northvale"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var career model.ClientCareer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &career))
	return career
}

func TestTeamTemplates(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/team-templates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		List []model.ClientTeamInfo `json:"list"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.List, 3)
}

func TestCreateAndReadCareer(t *testing.T) {
	r := newTestRouter(t)
	career := createCareer(t, r)
	assert.Equal(t, "Ada Byrne", career.CoachName)

	w := doJSON(t, r, http.MethodGet, "/api/careers/"+career.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/careers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), career.ID)

	w = doJSON(t, r, http.MethodGet, "/api/careers/"+career.ID+"/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var teams struct {
		List []model.ClientTeam `json:"list"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	assert.Len(t, teams.List, 3)

	w = doJSON(t, r, http.MethodGet, "/api/teams/"+career.UserTeamID+"/players", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var roster struct {
		List []model.ClientPlayer `json:"list"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roster))
	assert.Len(t, roster.List, 11)

	w = doJSON(t, r, http.MethodGet, "/api/careers/"+career.ID+"/stats/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Northvale United")

	w = doJSON(t, r, http.MethodGet, "/api/careers/"+career.ID+"/stats/players?team_id="+career.UserTeamID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/seasons/"+career.CurrentSeasonID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), career.ID)

	w = doJSON(t, r, http.MethodGet, "/api/seasons/"+career.CurrentSeasonID+"/matches", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/teams/"+career.UserTeamID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var team model.ClientTeam
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Equal(t, career.CoachID, team.CoachID)
	assert.Len(t, team.PlayerIDs, 11)

	// 新生涯只有生涯统计，赛季与单场统计为空列表
	w = doJSON(t, r, http.MethodGet, "/api/seasons/"+career.CurrentSeasonID+"/stats/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"list":[]}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/matches/nope/stats/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"list":[]}`, w.Body.String())
}

func TestCreateCareerValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/careers", map[string]string{"team_template_id": "northvale"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/careers", model.NewCareerRequest{CoachName: "   ", TeamTemplateID: "northvale"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/careers", model.NewCareerRequest{CoachName: "Ada", TeamTemplateID: "atlantis"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMissingCareerAndSeason(t *testing.T) {
	r := newTestRouter(t)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/api/careers/nope", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/api/seasons/nope", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/api/teams/nope", nil).Code)

	w := doJSON(t, r, http.MethodGet, "/api/careers/nope/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"list":[]}`, w.Body.String())
}

func TestEventStreamPushesCareerCreated(t *testing.T) {
	r := newTestRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// 等待服务端完成订阅
	time.Sleep(50 * time.Millisecond)
	career := createCareer(t, r)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev model.ChangeEvent
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, model.ChangeCareerCreated, ev.Kind)
	assert.Equal(t, career.ID, ev.CareerID)
}
