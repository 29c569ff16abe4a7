package integration

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphbridge/gephi-mcp/internal/catalog"
)

func TestBridge_ExposesFullCatalog(t *testing.T) {
	h := NewHarness(t, NewStubGephi(t), 5*time.Second)

	names := h.ListTools()
	require.Len(t, names, len(catalog.Operations()))

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, d := range catalog.Operations() {
		assert.True(t, seen[d.Name], "tool %q missing", d.Name)
	}
}

func TestBridge_PaginationDefaults(t *testing.T) {
	stub := NewStubGephi(t)
	stub.Respond("GET /graph/edges", `{"success": true, "edges": []}`)
	h := NewHarness(t, stub, 5*time.Second)

	h.CallTool("gephi_query_edges", map[string]any{})

	reqs := stub.Received("/graph/edges")
	require.Len(t, reqs, 1)
	assert.Equal(t, "100", reqs[0].Query["limit"])
	assert.Equal(t, "0", reqs[0].Query["offset"])
}

func TestBridge_ParameterlessOperationAcceptsEmptyObject(t *testing.T) {
	stub := NewStubGephi(t)
	stub.Respond("POST /statistics/pagerank", `{"success": true, "message": "PageRank computed"}`)
	h := NewHarness(t, stub, 5*time.Second)

	text := h.CallTool("gephi_compute_pagerank", map[string]any{})
	assert.Contains(t, text, "PageRank computed")

	reqs := stub.Received("/statistics/pagerank")
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Empty(t, reqs[0].Body, "parameterless operations forward no payload")
}

func TestBridge_DestructiveOperationIsPurePassThrough(t *testing.T) {
	stub := NewStubGephi(t)
	stub.Respond("POST /graph/clear", `{"success": true, "nodesRemoved": 120, "edgesRemoved": 340}`)
	h := NewHarness(t, stub, 5*time.Second)

	// No confirmation step, no dry-run: the call goes straight through.
	text := h.CallTool("gephi_clear_graph", map[string]any{})
	assert.Contains(t, text, `"nodesRemoved": 120`)
	require.Len(t, stub.Received("/graph/clear"), 1)
}

func TestBridge_KeyOrderSurvivesRendering(t *testing.T) {
	stub := NewStubGephi(t)
	stub.Respond("GET /graph/stats", `{"success":true,"nodeCount":5,"edgeCount":7,"density":0.35}`)
	h := NewHarness(t, stub, 5*time.Second)

	text := h.CallTool("gephi_get_graph_stats", map[string]any{})
	assert.Equal(t, "{\n  \"success\": true,\n  \"nodeCount\": 5,\n  \"edgeCount\": 7,\n  \"density\": 0.35\n}", text)
}

func TestBridge_StructuredErrorPassThrough(t *testing.T) {
	stub := NewStubGephi(t)
	stub.RespondStatus("POST /graph/edge/add", http.StatusBadRequest,
		`{"success": false, "error": "Source node 'x' not found"}`)
	h := NewHarness(t, stub, 5*time.Second)

	text := h.CallTool("gephi_add_edge", map[string]any{"source": "x", "target": "y"})
	assert.Contains(t, text, "Source node 'x' not found")
	assert.NotContains(t, text, "HTTP 400")
}

func TestBridge_TimeoutDistinctFromConnectionError(t *testing.T) {
	stub := NewStubGephi(t)
	stub.RespondSlow("POST /layout/run", 300*time.Millisecond, `{"success": true}`)
	h := NewHarness(t, stub, 50*time.Millisecond)

	text := h.CallTool("gephi_run_layout", map[string]any{"algorithm": "forceatlas2"})

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "may still be running",
		"a timed-out layout run may still be executing in Gephi")
	assert.NotContains(t, body["error"], "Cannot connect")
}

func TestBridge_ConnectionErrorNamesTarget(t *testing.T) {
	stub := NewStubGephi(t)
	base := stub.URL()
	h := NewHarness(t, stub, time.Second)
	stub.Close()

	text := h.CallTool("gephi_health_check", map[string]any{})
	assert.Contains(t, text, `"success": false`)
	assert.Contains(t, text, base)
	assert.Contains(t, text, "Ensure Gephi is running with the MCP plugin installed")
}

func TestBridge_RepeatedReadsAreIndependent(t *testing.T) {
	stub := NewStubGephi(t)
	stub.Respond("GET /workspace/list", `{"success": true, "workspaces": []}`)
	h := NewHarness(t, stub, 5*time.Second)

	h.CallTool("gephi_list_workspaces", map[string]any{})
	h.CallTool("gephi_list_workspaces", map[string]any{})

	assert.Len(t, stub.Received("/workspace/list"), 2, "no caching between identical reads")
}

func TestBridge_BodyDefaultsAndOverrides(t *testing.T) {
	stub := NewStubGephi(t)
	stub.Respond("POST /workspace/switch", `{"success": true}`)
	stub.Respond("DELETE /workspace/delete", `{"success": true}`)
	h := NewHarness(t, stub, 5*time.Second)

	h.CallTool("gephi_switch_workspace", map[string]any{})
	reqs := stub.Received("/workspace/switch")
	require.Len(t, reqs, 1)
	assert.Equal(t, float64(0), reqs[0].Body["index"])

	h.CallTool("gephi_delete_workspace", map[string]any{"index": 2})
	dels := stub.Received("/workspace/delete")
	require.Len(t, dels, 1)
	assert.Equal(t, "2", dels[0].Query["index"])
}
