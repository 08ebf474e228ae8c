// Copyright (c) 2025 BVK Chaitanya

package sbee

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// request is a request as seen by the fakeGateway.
type request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
	Vars   map[string]string
}

// fakeGateway serves the gateway routes with canned responses and records
// all received requests.
type fakeGateway struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []*request

	responses map[string]string
}

func newFakeGateway(t *testing.T) *fakeGateway {
	g := &fakeGateway{
		responses: make(map[string]string),
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/Crypto/Info/Markets", g.handle("Markets")).Methods(http.MethodGet)
	api.HandleFunc("/Crypto/News/List", g.handle("News")).Methods(http.MethodGet)
	api.HandleFunc("/Crypto/Country/List", g.handle("Country")).Methods(http.MethodGet)
	api.HandleFunc("/Fintech/MoneyPairValues", g.handle("MoneyPairValues")).Methods(http.MethodGet)
	api.HandleFunc("/Crypto/MultiMarket/{trade}/{op}", g.handleVar("Multi", "op")).Methods(http.MethodPost)
	api.HandleFunc("/Crypto/{exchange}/SystemTime", g.handle("SystemTime")).Methods(http.MethodGet)
	api.HandleFunc("/Crypto/{exchange}/{trade}/{op}", g.handleVar("", "op")).Methods(http.MethodGet, http.MethodPost)

	g.server = httptest.NewServer(r)
	t.Cleanup(g.server.Close)
	return g
}

func (g *fakeGateway) URL() string {
	return g.server.URL + "/api"
}

// respond sets the response body for an operation. Responses that are not
// valid JSON are still sent with a 200 status code.
func (g *fakeGateway) respond(op string, body string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses[op] = body
}

func (g *fakeGateway) last() *request {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.requests) == 0 {
		return nil
	}
	return g.requests[len(g.requests)-1]
}

func (g *fakeGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

func (g *fakeGateway) handleVar(prefix, key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g.serve(prefix+mux.Vars(r)[key], w, r)
	}
}

func (g *fakeGateway) handle(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g.serve(op, w, r)
	}
}

func (g *fakeGateway) serve(op string, w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	req := &request{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   string(data),
		Vars:   mux.Vars(r),
	}

	g.mu.Lock()
	g.requests = append(g.requests, req)
	resp, ok := g.responses[op]
	g.mu.Unlock()

	if r.Header.Get("Authorization") == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if !ok {
		js, _ := json.Marshal(map[string]string{"operation": op})
		resp = string(js)
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, resp)
}

func newTestClient(t *testing.T, g *fakeGateway) *Client {
	c, err := New("test-token", &Options{RestURL: g.URL()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}
