package web

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zip-arcade/internal/config"
	"github.com/vovakirdan/zip-arcade/internal/games/zip"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/core"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/share"
)

func testConfig() config.ZipConfig {
	cfg := config.DefaultZipConfig()
	cfg.Share.BaseURL = "https://zip.example/play"
	cfg.Server.HTTP.RateLimit.Enabled = false
	cfg.Server.HTTP.CORSOrigins = []string{"https://zip.example"}
	return cfg
}

func newTestServer(t *testing.T, cfg config.ZipConfig) *httptest.Server {
	t.Helper()
	s := NewServer(zip.NewEngine(cfg, nil), cfg.Server.HTTP, nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ts.Close()
		s.Close()
	})
	return ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func TestGenerateLevel(t *testing.T) {
	ts := newTestServer(t, testConfig())

	var body LevelResponse
	resp := getJSON(t, ts.URL+"/api/levels?difficulty=hard&rows=5&cols=6&seed=11", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, 5, body.Level.Rows)
	require.Equal(t, 6, body.Level.Cols)
	require.False(t, body.Downgraded)
	require.NotEmpty(t, body.Token)
	require.Equal(t, "https://zip.example/play?level="+body.Token, body.URL)

	require.Len(t, body.Level.Checkpoints, body.Level.MaxNumber)
	for i, cp := range body.Level.Checkpoints {
		require.Equal(t, i+1, cp.Label, "checkpoints should be listed in label order")
	}
	require.Equal(t, body.Level.Start, body.Level.Checkpoints[0].PointJSON)

	l, err := share.Deserialize(body.Token)
	require.NoError(t, err)
	require.Len(t, l.Walls, len(body.Level.Walls))
}

func TestGenerateLevelSeedIsDeterministic(t *testing.T) {
	ts := newTestServer(t, testConfig())

	var a, b LevelResponse
	getJSON(t, ts.URL+"/api/levels?seed=77", &a)
	getJSON(t, ts.URL+"/api/levels?seed=77", &b)
	require.Equal(t, a.Token, b.Token)
}

func TestGenerateLevelBadRequests(t *testing.T) {
	ts := newTestServer(t, testConfig())

	for _, query := range []string{
		"difficulty=nightmare",
		"rows=abc",
		"cols=1.5",
		"seed=x",
		"rows=13",
		"rows=-2",
	} {
		t.Run(query, func(t *testing.T) {
			var body ErrorResponse
			resp := getJSON(t, ts.URL+"/api/levels?"+query, &body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.NotEmpty(t, body.Error)
		})
	}
}

func TestDecodeLevel(t *testing.T) {
	cfg := testConfig()
	ts := newTestServer(t, cfg)

	res := core.GenerateLevel(core.Medium, 6, 6, core.NewRNG(5))
	token := share.Serialize(res.Level)

	var body LevelResponse
	resp := getJSON(t, ts.URL+"/api/levels/"+token, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, token, body.Token)
	require.Equal(t, NewLevelJSON(res.Level).Checkpoints, body.Level.Checkpoints)
}

func TestDecodeLevelStandardAlphabetWithSlash(t *testing.T) {
	ts := newTestServer(t, testConfig())

	var level core.LevelData
	var std string
	for seed := uint64(1); seed < 500 && std == ""; seed++ {
		l := core.GenerateLevel(core.Hard, 6, 6, core.NewRNG(seed)).Level
		raw, err := base64.RawURLEncoding.DecodeString(share.Serialize(l))
		require.NoError(t, err)
		// "//" would be cleaned by the mux before routing.
		if enc := base64.StdEncoding.EncodeToString(raw); strings.Contains(enc, "/") && !strings.Contains(enc, "//") {
			level, std = l, enc
		}
	}
	require.NotEmpty(t, std, "no token with '/' in the standard alphabet")

	var body LevelResponse
	resp := getJSON(t, ts.URL+"/api/levels/"+std, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, share.Serialize(level), body.Token)
}

func TestDecodeLevelRejects(t *testing.T) {
	ts := newTestServer(t, testConfig())

	var body ErrorResponse
	resp := getJSON(t, ts.URL+"/api/levels/definitely-not-a-level", &body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "invalid level token", body.Error)

	big := core.LevelFromPath(core.SerpentinePath(2, 20), 2, 20, core.ParamsFor(core.Easy), core.NewRNG(1))
	resp = getJSON(t, ts.URL+"/api/levels/"+share.Serialize(big), &body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body.Error, "out of range")
}

func TestPlayFallsBackToFreshLevel(t *testing.T) {
	ts := newTestServer(t, testConfig())

	res := core.GenerateLevel(core.Easy, 4, 4, core.NewRNG(8))
	token := share.Serialize(res.Level)

	resp, err := http.Get(ts.URL + "/play?level=" + token)
	require.NoError(t, err)
	text, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, token, resp.Header.Get("X-Zip-Level"))
	require.Empty(t, resp.Header.Get("X-Zip-Generated"))
	require.True(t, strings.HasPrefix(string(text), "Zip 4x4"))

	resp, err = http.Get(ts.URL + "/play?level=garbage")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "true", resp.Header.Get("X-Zip-Generated"))
	_, err = share.Deserialize(resp.Header.Get("X-Zip-Level"))
	require.NoError(t, err)
}

func TestHealthAndRequestID(t *testing.T) {
	ts := newTestServer(t, testConfig())

	var body map[string]string
	resp := getJSON(t, ts.URL+"/healthz", &body)
	require.Equal(t, "ok", body["status"])
	generated := resp.Header.Get(RequestIDHeader)
	require.Len(t, generated, 36)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	const id = "7b1f4c52-8d1e-4a4e-9c55-1f4a3d2b9e10"
	req.Header.Set(RequestIDHeader, id)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, id, resp.Header.Get(RequestIDHeader))
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, testConfig())

	resp, err := http.Post(ts.URL+"/api/levels", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, testConfig())

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://zip.example")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "https://zip.example", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 2}
	ts := newTestServer(t, cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := http.Get(ts.URL + "/healthz")
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	require.Equal(t, []int{200, 200, 429}, codes)
}

func TestRateLimiterPrune(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerSecond: 10, Burst: 1}, nil)
	defer rl.Stop()

	rl.getLimiter("10.0.0.1").Allow()
	rl.getLimiter("10.0.0.2")
	require.Equal(t, 2, rl.clientCount())

	// The idle client has a full bucket; the busy one refills within a second.
	rl.prune(time.Now())
	require.Equal(t, 1, rl.clientCount())
	rl.prune(time.Now().Add(time.Second))
	require.Equal(t, 0, rl.clientCount())
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.7:5555"
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	require.Equal(t, "192.0.2.7", clientIP(r, false))
	require.Equal(t, "203.0.113.9", clientIP(r, true))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Server.HTTP.RateLimit.Enabled = true
	s := NewServer(zip.NewEngine(cfg, nil), cfg.Server.HTTP, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := fmt.Sprintf("http://%s/healthz", ln.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	http.DefaultClient.CloseIdleConnections()
}
