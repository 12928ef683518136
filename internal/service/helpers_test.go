package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"exploraneiva/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedCall is one request received by the fake API.
type recordedCall struct {
	Method string
	Path   string
	Body   map[string]any
}

// fakeAPI serves canned JSON per "METHOD /path" and records every request.
type fakeAPI struct {
	t      *testing.T
	mu     sync.Mutex
	routes map[string]func(w http.ResponseWriter)
	calls  []recordedCall
	srv    *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{t: t, routes: make(map[string]func(w http.ResponseWriter))}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	call := recordedCall{Method: r.Method, Path: r.URL.Path}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		assert.NoError(f.t, json.Unmarshal(raw, &call.Body))
	}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	h, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Recurso no encontrado"}`))
		return
	}
	h(w)
}

func (f *fakeAPI) reply(route string, status int, body any) {
	f.routes[route] = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}
}

// echo answers a write with the request body plus the given id.
func (f *fakeAPI) echo(route string, id int64) {
	f.routes[route] = func(w http.ResponseWriter) {
		f.mu.Lock()
		last := f.calls[len(f.calls)-1].Body
		f.mu.Unlock()
		last["id"] = id
		_ = json.NewEncoder(w).Encode(last)
	}
}

func (f *fakeAPI) gateway() *infra.Gateway {
	return infra.NewGateway(f.srv.URL, 2*time.Second)
}

func (f *fakeAPI) lastCall() recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(f.t, f.calls)
	return f.calls[len(f.calls)-1]
}

var ctx = context.Background()
