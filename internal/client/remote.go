// Package client 通过HTTP访问远端生涯服务，供终端界面在联网模式下使用
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"CareerMode/internal/config"
	"CareerMode/internal/interfaces"
	"CareerMode/internal/model"
	"CareerMode/internal/utils/httpclient"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var _ interfaces.CareerGateway = (*RemoteGateway)(nil)

// RemoteGateway 远端服务实现的 CareerGateway
type RemoteGateway struct {
	baseURL string
	http    *http.Client
	dialer  *websocket.Dialer
	logger  *logrus.Logger
}

func NewRemoteGateway(cfg *config.ClientConfig, logger *logrus.Logger) *RemoteGateway {
	return &RemoteGateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpclient.NewHTTPClient(cfg, logger),
		dialer:  websocket.DefaultDialer,
		logger:  logger,
	}
}

type listResponse[T any] struct {
	List []T `json:"list"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// StatusError 服务端返回的非2xx响应
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("服务端返回 %d: %s", e.Code, e.Message)
}

func (g *RemoteGateway) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求失败: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", httpclient.ContentTypeJSON)
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("请求%s失败: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &StatusError{Code: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("解析%s响应失败: %w", path, err)
	}
	return nil
}

func (g *RemoteGateway) ListTeamTemplates(ctx context.Context) ([]model.ClientTeamInfo, error) {
	var resp listResponse[model.ClientTeamInfo]
	if err := g.do(ctx, http.MethodGet, "/api/team-templates", nil, &resp); err != nil {
		return nil, err
	}
	return resp.List, nil
}

func (g *RemoteGateway) CreateNewCareer(ctx context.Context, req *model.NewCareerRequest) (*model.ClientCareer, error) {
	var career model.ClientCareer
	if err := g.do(ctx, http.MethodPost, "/api/careers", req, &career); err != nil {
		return nil, err
	}
	return &career, nil
}

func (g *RemoteGateway) ListCareers(ctx context.Context) ([]model.ClientCareer, error) {
	var resp listResponse[model.ClientCareer]
	if err := g.do(ctx, http.MethodGet, "/api/careers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.List, nil
}

func (g *RemoteGateway) GetCareer(ctx context.Context, careerID string) (*model.ClientCareer, error) {
	var career model.ClientCareer
	err := g.do(ctx, http.MethodGet, "/api/careers/"+url.PathEscape(careerID), nil, &career)
	if se, ok := err.(*StatusError); ok && se.Code == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &career, nil
}

func (g *RemoteGateway) GetTeams(ctx context.Context, careerID string) ([]model.ClientTeam, error) {
	var resp listResponse[model.ClientTeam]
	if err := g.do(ctx, http.MethodGet, "/api/careers/"+url.PathEscape(careerID)+"/teams", nil, &resp); err != nil {
		return nil, err
	}
	return resp.List, nil
}

func (g *RemoteGateway) GetRoster(ctx context.Context, teamID string) ([]model.ClientPlayer, error) {
	var resp listResponse[model.ClientPlayer]
	if err := g.do(ctx, http.MethodGet, "/api/teams/"+url.PathEscape(teamID)+"/players", nil, &resp); err != nil {
		return nil, err
	}
	return resp.List, nil
}

func (g *RemoteGateway) GetStandings(ctx context.Context, careerID string) ([]model.ClientTeamStats, error) {
	var resp listResponse[model.ClientTeamStats]
	if err := g.do(ctx, http.MethodGet, "/api/careers/"+url.PathEscape(careerID)+"/stats/teams", nil, &resp); err != nil {
		return nil, err
	}
	return resp.List, nil
}

// Subscribe 连接 /api/events，ctx 结束时断开
func (g *RemoteGateway) Subscribe(ctx context.Context) (<-chan model.ChangeEvent, error) {
	wsURL := "ws" + strings.TrimPrefix(g.baseURL, "http") + "/api/events"
	conn, _, err := g.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("连接变更推送失败: %w", err)
	}

	out := make(chan model.ChangeEvent)
	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	go func() {
		defer close(out)
		for {
			var ev model.ChangeEvent
			if err := conn.ReadJSON(&ev); err != nil {
				if ctx.Err() == nil {
					g.logger.WithError(err).Warn("变更推送连接断开")
				}
				return
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
