// Package integration exercises the bridge end to end: JSON-RPC messages go
// in one side, HTTP calls come out the other against a stub Gephi plugin.
package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/graphbridge/gephi-mcp/internal/bridge"
	"github.com/graphbridge/gephi-mcp/internal/config"
	"github.com/graphbridge/gephi-mcp/internal/gephi"
)

// RecordedRequest captures one request received by the stub plugin.
type RecordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   map[string]any
}

// StubGephi simulates the Gephi MCP plugin's HTTP API. Responses are
// configured per "METHOD /path" route; every received request is recorded
// for later assertion.
type StubGephi struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]stubResponse
	received []RecordedRequest
}

type stubResponse struct {
	status int
	body   string
	delay  time.Duration
}

// NewStubGephi starts a stub plugin server. Unconfigured routes answer with
// the plugin's generic error shape, like the real plugin does.
func NewStubGephi(t *testing.T) *StubGephi {
	t.Helper()

	sg := &StubGephi{
		t:      t,
		routes: make(map[string]stubResponse),
	}

	sg.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := make(map[string]string)
		for k := range r.URL.Query() {
			query[k] = r.URL.Query().Get(k)
		}
		var body map[string]any
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}

		sg.mu.Lock()
		sg.received = append(sg.received, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  query,
			Body:   body,
		})
		resp, ok := sg.routes[r.Method+" "+r.URL.Path]
		sg.mu.Unlock()

		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, `{"success": false, "error": "unknown endpoint %s"}`, r.URL.Path)
			return
		}

		if resp.delay > 0 {
			time.Sleep(resp.delay)
		}
		w.Header().Set("Content-Type", "application/json")
		if resp.status != 0 {
			w.WriteHeader(resp.status)
		}
		fmt.Fprint(w, resp.body)
	}))
	t.Cleanup(sg.server.Close)

	return sg
}

// URL returns the stub's base address.
func (sg *StubGephi) URL() string {
	return sg.server.URL
}

// Close shuts the stub down immediately, simulating a Gephi that is not running.
func (sg *StubGephi) Close() {
	sg.server.Close()
}

// Respond configures the body returned for a route, e.g. "GET /graph/stats".
func (sg *StubGephi) Respond(route, body string) {
	sg.setRoute(route, stubResponse{body: body})
}

// RespondStatus configures a non-200 response for a route.
func (sg *StubGephi) RespondStatus(route string, status int, body string) {
	sg.setRoute(route, stubResponse{status: status, body: body})
}

// RespondSlow configures a delayed response for a route.
func (sg *StubGephi) RespondSlow(route string, delay time.Duration, body string) {
	sg.setRoute(route, stubResponse{body: body, delay: delay})
}

func (sg *StubGephi) setRoute(route string, resp stubResponse) {
	sg.mu.Lock()
	defer sg.mu.Unlock()
	sg.routes[route] = resp
}

// Received returns all recorded requests for the given path, any method.
func (sg *StubGephi) Received(path string) []RecordedRequest {
	sg.mu.Lock()
	defer sg.mu.Unlock()
	var out []RecordedRequest
	for _, r := range sg.received {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Harness bundles a bridge server wired to a stub plugin.
type Harness struct {
	t    *testing.T
	Stub *StubGephi
	srv  *server.MCPServer
}

// NewHarness builds a bridge against the given stub with a short call timeout.
func NewHarness(t *testing.T, stub *StubGephi, timeout time.Duration) *Harness {
	t.Helper()

	client := gephi.NewClient(config.GephiConfig{
		BaseURL: stub.URL(),
		Timeout: timeout,
	}, zap.NewNop())

	h := &Harness{
		t:    t,
		Stub: stub,
		srv:  bridge.NewServer(client, zap.NewNop(), "test"),
	}
	h.rpc("initialize", map[string]any{
		"protocolVersion": "2025-03-26",
		"clientInfo":      map[string]any{"name": "harness", "version": "0"},
		"capabilities":    map[string]any{},
	})
	return h
}

// CallTool invokes one operation through the MCP layer and returns the
// rendered text result.
func (h *Harness) CallTool(name string, args map[string]any) string {
	h.t.Helper()

	result := h.rpc("tools/call", map[string]any{
		"name":      name,
		"arguments": args,
	})

	var parsed struct {
		Result struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
	}
	require.NoError(h.t, json.Unmarshal(result, &parsed))
	require.Len(h.t, parsed.Result.Content, 1)
	require.Equal(h.t, "text", parsed.Result.Content[0].Type)
	return parsed.Result.Content[0].Text
}

// ListTools returns the names of all registered tools.
func (h *Harness) ListTools() []string {
	h.t.Helper()

	result := h.rpc("tools/list", map[string]any{})
	var parsed struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(h.t, json.Unmarshal(result, &parsed))

	names := make([]string, 0, len(parsed.Result.Tools))
	for _, tool := range parsed.Result.Tools {
		names = append(names, tool.Name)
	}
	return names
}

var rpcID int64

func (h *Harness) rpc(method string, params map[string]any) json.RawMessage {
	h.t.Helper()

	rpcID++
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      rpcID,
		"method":  method,
		"params":  params,
	})
	require.NoError(h.t, err)

	resp := h.srv.HandleMessage(context.Background(), msg)
	out, err := json.Marshal(resp)
	require.NoError(h.t, err)

	var check struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(h.t, json.Unmarshal(out, &check))
	require.Nil(h.t, check.Error, "rpc %s failed", method)

	return out
}
