package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"ItemGateway/internal/auth"
	"ItemGateway/internal/config"
	"ItemGateway/internal/repo/rest"
	"ItemGateway/internal/service"
	"ItemGateway/internal/storage"
	"ItemGateway/internal/supabase"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// backendCall: запрос, который шлюз отправил в бэкенд.
type backendCall struct {
	Method string
	Path   string
	Query  map[string]string
	Body   string
}

type backendLog struct {
	mu    sync.Mutex
	calls []backendCall
}

func (l *backendLog) all() []backendCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]backendCall(nil), l.calls...)
}

func (l *backendLog) routes() []string {
	var out []string
	for _, c := range l.all() {
		out = append(out, c.Method+" "+c.Path)
	}
	return out
}

// newTestServer поднимает шлюз поверх фейкового бэкенда: строки, файлы и auth идут в один httptest сервер.
func newTestServer(t *testing.T, backend http.HandlerFunc) (http.Handler, *backendLog) {
	t.Helper()

	log := &backendLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		q := map[string]string{}
		for k := range r.URL.Query() {
			q[k] = r.URL.Query().Get(k)
		}
		log.mu.Lock()
		log.calls = append(log.calls, backendCall{Method: r.Method, Path: r.URL.Path, Query: q, Body: string(body)})
		log.mu.Unlock()

		r.Body = io.NopCloser(strings.NewReader(string(body)))
		backend(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		SupabaseURL:        srv.URL,
		SupabaseKey:        "service-key",
		ItemsTable:         "tabela1",
		ProfilesTable:      "usuario",
		BlobBucket:         "fotos",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
	logger := zap.NewNop().Sugar()

	client := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, srv.Client())
	itemSvc := service.NewItemService(
		rest.NewItemRepository(client, cfg.ItemsTable),
		storage.NewSupabaseStore(client, cfg.BlobBucket),
		logger,
	)
	userSvc := service.NewUserService(
		rest.NewProfileRepository(client, cfg.ProfilesTable),
		auth.NewRemoteVerifier(client),
		logger,
	)

	h := NewHandler(itemSvc, userSvc, logger, cfg)
	require.NotNil(t, h.Router)
	return h.Router, log
}

func doRequest(t *testing.T, h http.Handler, method, target, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
