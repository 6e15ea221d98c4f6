package httpclient

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"CareerMode/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDecompressesGzipAndSetsUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(`{"ok":true}`))
		_ = gz.Close()
	}))
	defer srv.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := NewHTTPClient(&config.ClientConfig{Timeout: 5}, log)

	resp, err := c.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestClientIgnoresBadProxy(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	c := NewHTTPClient(&config.ClientConfig{Timeout: 1, Proxy: "://bad"}, log)
	assert.NotNil(t, c)
}

func TestClientSendsJSONHeaders(t *testing.T) {
	type seen struct{ accept, contentType string }
	got := make(chan seen, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- seen{r.Header.Get("Accept"), r.Header.Get("Content-Type")}
	}))
	defer srv.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := NewHTTPClient(&config.ClientConfig{Timeout: 5}, log)

	resp, err := c.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	h := <-got
	assert.Equal(t, ContentTypeJSON, h.accept)
	assert.Empty(t, h.contentType, "GET 不带请求体")

	resp, err = c.Post(srv.URL, "", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	h = <-got
	assert.Equal(t, ContentTypeJSON, h.contentType)

	// 调用方显式设置的 Accept 不被覆盖
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/plain")
	resp, err = c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "text/plain", (<-got).accept)
}
