package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	adaptershttp "github.com/marcelofdiniz/paysim/internal/adapter/http"
	"github.com/marcelofdiniz/paysim/internal/adapter/http/handler"
	"github.com/marcelofdiniz/paysim/internal/adapter/repository"
	redisrepo "github.com/marcelofdiniz/paysim/internal/adapter/repository/redis"
	"github.com/marcelofdiniz/paysim/internal/domain"
	"github.com/marcelofdiniz/paysim/internal/usecase"
	"github.com/marcelofdiniz/paysim/internal/usecase/mocks"
)

// TestServer runs the full HTTP stack in-process against an embedded Redis.
type TestServer struct {
	Server *httptest.Server
	Redis  *miniredis.Miniredis

	t *testing.T
}

// NewTestServer wires the use case, Redis adapters and router the same way
// cmd/server does and serves it over httptest.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cache := redisrepo.NewCache(client)
	idempotencyStore := redisrepo.NewIdempotencyStore(client)
	idGen := repository.NewULIDGenerator()

	simulationUC := usecase.NewSimulationUseCase(cache, idGen, mocks.NewMockMetricsRecorder(), usecase.DefaultResultTTL)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		SimulationHandler: handler.NewSimulationHandler(simulationUC, domain.DefaultAnnualRatePercent),
		HealthHandler:     handler.NewHealthHandler(client),
		Logger:            zerolog.Nop(),
		IdempotencyStore:  idempotencyStore,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		Redis:  mr,
		t:      t,
	}
}

// PostJSON sends a POST with a JSON body and decodes the response into out
// when the status matches. The raw body is returned for error assertions.
func (s *TestServer) PostJSON(path string, body any, headers map[string]string, wantStatus int, out any) []byte {
	s.t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		s.t.Fatalf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.Server.URL+path, bytes.NewReader(data))
	if err != nil {
		s.t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return s.do(req, wantStatus, out)
}

// GetJSON sends a GET and decodes the response into out when the status
// matches.
func (s *TestServer) GetJSON(path string, wantStatus int, out any) []byte {
	s.t.Helper()

	req, err := http.NewRequest(http.MethodGet, s.Server.URL+path, nil)
	if err != nil {
		s.t.Fatalf("failed to build request: %v", err)
	}

	return s.do(req, wantStatus, out)
}

func (s *TestServer) do(req *http.Request, wantStatus int, out any) []byte {
	s.t.Helper()

	resp, err := s.Server.Client().Do(req)
	if err != nil {
		s.t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		s.t.Fatalf("failed to read response: %v", err)
	}

	if resp.StatusCode != wantStatus {
		s.t.Fatalf("%s %s: status = %d, want %d: %s",
			req.Method, req.URL.Path, resp.StatusCode, wantStatus, string(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			s.t.Fatalf("failed to decode response: %v: %s", err, string(data))
		}
	}

	return data
}
