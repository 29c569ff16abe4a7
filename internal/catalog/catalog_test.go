package catalog

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperations_NamesUniqueAndStable(t *testing.T) {
	ops := Operations()
	require.NotEmpty(t, ops)

	seen := make(map[string]bool, len(ops))
	for _, d := range ops {
		assert.False(t, seen[d.Name], "duplicate operation name %q", d.Name)
		seen[d.Name] = true
		assert.True(t, strings.HasPrefix(d.Name, "gephi_"), "operation %q missing gephi_ prefix", d.Name)
	}
}

func TestOperations_DescriptorsWellFormed(t *testing.T) {
	validMethods := map[string]bool{
		http.MethodGet:    true,
		http.MethodPost:   true,
		http.MethodDelete: true,
	}
	validPlacements := map[Placement]bool{
		PlacementQuery: true,
		PlacementBody:  true,
		PlacementPath:  true,
		PlacementNone:  true,
	}

	for _, d := range Operations() {
		assert.True(t, validMethods[d.Method], "%s: method %q", d.Name, d.Method)
		assert.True(t, validPlacements[d.Placement], "%s: placement %q", d.Name, d.Placement)
		assert.True(t, strings.HasPrefix(d.Path, "/"), "%s: path %q", d.Name, d.Path)
		assert.NotEmpty(t, d.Description, "%s: missing description", d.Name)

		switch d.Placement {
		case PlacementPath:
			require.NotEmpty(t, d.PathKey, "%s: path placement needs PathKey", d.Name)
			assert.Contains(t, d.Path, "{"+d.PathKey+"}", "%s: path missing slot", d.Name)
		case PlacementQuery:
			require.NotEmpty(t, d.Query, "%s: query placement needs declared keys", d.Name)
		default:
			assert.Empty(t, d.Query, "%s: undeclared query keys", d.Name)
			assert.Empty(t, d.PathKey, "%s: stray PathKey", d.Name)
		}
	}
}

func TestOperations_ListingDefaults(t *testing.T) {
	for _, name := range []string{"gephi_query_nodes", "gephi_query_edges"} {
		d, ok := ByName(name)
		require.True(t, ok, name)

		r := BuildRequest(d, map[string]any{})
		assert.Equal(t, "limit=100&offset=0", r.Query.Encode(), name)
	}
}

func TestBuildRequest_QueryExplicitValues(t *testing.T) {
	d, ok := ByName("gephi_query_nodes")
	require.True(t, ok)

	r := BuildRequest(d, map[string]any{"limit": 5, "offset": 10})
	assert.Equal(t, "limit=5&offset=10", r.Query.Encode())
}

func TestBuildRequest_QueryDropsUndeclaredKeys(t *testing.T) {
	d, ok := ByName("gephi_query_edges")
	require.True(t, ok)

	r := BuildRequest(d, map[string]any{"limit": 20, "color": "red"})
	assert.Equal(t, "20", r.Query.Get("limit"))
	assert.Equal(t, "0", r.Query.Get("offset"))
	assert.Empty(t, r.Query.Get("color"))
}

func TestBuildRequest_WorkspaceIndexDefaults(t *testing.T) {
	del, ok := ByName("gephi_delete_workspace")
	require.True(t, ok)
	r := BuildRequest(del, map[string]any{})
	assert.Equal(t, http.MethodDelete, r.Method)
	assert.Equal(t, "index=0", r.Query.Encode())

	r = BuildRequest(del, map[string]any{"index": 3})
	assert.Equal(t, "index=3", r.Query.Encode())

	sw, ok := ByName("gephi_switch_workspace")
	require.True(t, ok)
	r = BuildRequest(sw, map[string]any{})
	body, isMap := r.Body.(map[string]any)
	require.True(t, isMap)
	assert.Equal(t, 0, body["index"], "omitted workspace index must default to 0")

	r = BuildRequest(sw, map[string]any{"index": 2})
	body = r.Body.(map[string]any)
	assert.Equal(t, 2, body["index"])
}

func TestBuildRequest_PathInterpolation(t *testing.T) {
	d, ok := ByName("gephi_remove_node")
	require.True(t, ok)

	r := BuildRequest(d, map[string]any{"id": "n1"})
	assert.Equal(t, "/graph/node/n1", r.Path)
	assert.Nil(t, r.Body)

	r = BuildRequest(d, map[string]any{"id": "a/b"})
	assert.Equal(t, "/graph/node/a%2Fb", r.Path)

	// Missing identifier degrades to an empty slot; the controlled
	// application decides how to reject it.
	r = BuildRequest(d, map[string]any{})
	assert.Equal(t, "/graph/node/", r.Path)
}

func TestBuildRequest_BodyPlacement(t *testing.T) {
	d, ok := ByName("gephi_create_project")
	require.True(t, ok)

	r := BuildRequest(d, nil)
	body, isMap := r.Body.(map[string]any)
	require.True(t, isMap)
	assert.Empty(t, body, "absent parameters become an empty JSON object")

	r = BuildRequest(d, map[string]any{"name": "My Project"})
	body = r.Body.(map[string]any)
	assert.Equal(t, "My Project", body["name"])
}

func TestBuildRequest_ParameterlessOpsAcceptParams(t *testing.T) {
	d, ok := ByName("gephi_health_check")
	require.True(t, ok)

	// Uniform calling convention: a parameter object is accepted but ignored.
	r := BuildRequest(d, map[string]any{"ignored": true})
	assert.Equal(t, http.MethodGet, r.Method)
	assert.Equal(t, "/health", r.Path)
	assert.Nil(t, r.Query)
	assert.Nil(t, r.Body)
}

func TestBuildRequest_ColumnTargetDefault(t *testing.T) {
	d, ok := ByName("gephi_get_columns")
	require.True(t, ok)

	r := BuildRequest(d, map[string]any{})
	assert.Equal(t, "target=node", r.Query.Encode())

	r = BuildRequest(d, map[string]any{"target": "edge"})
	assert.Equal(t, "target=edge", r.Query.Encode())
}

func TestByName(t *testing.T) {
	d, ok := ByName("gephi_run_layout")
	require.True(t, ok)
	assert.Equal(t, "/layout/run", d.Path)

	_, ok = ByName("gephi_unknown_op")
	assert.False(t, ok)
}
