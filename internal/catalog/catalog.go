package catalog

import "net/http"

// Pagination defaults applied to every listing operation.
const (
	DefaultLimit  = "100"
	DefaultOffset = "0"
)

var paginated = []QueryParam{
	{Key: "limit", Default: DefaultLimit},
	{Key: "offset", Default: DefaultOffset},
}

// Operations returns the complete catalog. The slice is rebuilt on each call
// so callers cannot mutate the shared table.
func Operations() []Descriptor {
	return []Descriptor{
		// Health
		{
			Name:        "gephi_health_check",
			Description: "Check if Gephi Desktop is running and the MCP plugin is accessible.",
			Method:      http.MethodGet,
			Path:        "/health",
			Placement:   PlacementNone,
		},

		// Project
		{
			Name:        "gephi_create_project",
			Description: "Create a new empty Gephi project/workspace.",
			Method:      http.MethodPost,
			Path:        "/project/new",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_open_project",
			Description: "Open an existing Gephi project file (.gephi).",
			Method:      http.MethodPost,
			Path:        "/project/open",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_save_project",
			Description: "Save the current Gephi project to a file.",
			Method:      http.MethodPost,
			Path:        "/project/save",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_get_project_info",
			Description: "Get workspace status, node/edge counts, and graph type for the current project.",
			Method:      http.MethodGet,
			Path:        "/project/info",
			Placement:   PlacementNone,
		},

		// Workspace
		{
			Name:        "gephi_new_workspace",
			Description: "Create a new workspace in the current project.",
			Method:      http.MethodPost,
			Path:        "/workspace/new",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_list_workspaces",
			Description: "List all workspaces in the current project.",
			Method:      http.MethodGet,
			Path:        "/workspace/list",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_switch_workspace",
			Description: "Switch to a different workspace by zero-based index.",
			Method:      http.MethodPost,
			Path:        "/workspace/switch",
			Placement:   PlacementBody,
			BodyDefaults: map[string]any{
				"index": 0,
			},
		},
		{
			Name:        "gephi_delete_workspace",
			Description: "Delete a workspace by zero-based index.",
			Method:      http.MethodDelete,
			Path:        "/workspace/delete",
			Placement:   PlacementQuery,
			Query:       []QueryParam{{Key: "index", Default: "0"}},
		},

		// Nodes
		{
			Name:        "gephi_add_node",
			Description: "Add a single node with an ID, label, and optional attributes.",
			Method:      http.MethodPost,
			Path:        "/graph/node/add",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_add_nodes",
			Description: "Add multiple nodes in a single batch operation; duplicate IDs are skipped.",
			Method:      http.MethodPost,
			Path:        "/graph/nodes/add",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_remove_node",
			Description: "Remove a node and all its connected edges. Destructive, cannot be undone.",
			Method:      http.MethodDelete,
			Path:        "/graph/node/{id}",
			Placement:   PlacementPath,
			PathKey:     "id",
		},
		{
			Name:        "gephi_bulk_remove_nodes",
			Description: "Remove multiple nodes and their connected edges.",
			Method:      http.MethodPost,
			Path:        "/graph/nodes/remove",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_query_nodes",
			Description: "Query nodes with pagination.",
			Method:      http.MethodGet,
			Path:        "/graph/nodes",
			Placement:   PlacementQuery,
			Query:       paginated,
		},
		{
			Name:        "gephi_set_node_label",
			Description: "Set or change the label of a node.",
			Method:      http.MethodPost,
			Path:        "/graph/node/label",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_set_node_position",
			Description: "Set the X/Y position of a node.",
			Method:      http.MethodPost,
			Path:        "/graph/node/position",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_batch_set_positions",
			Description: "Set positions of multiple nodes at once.",
			Method:      http.MethodPost,
			Path:        "/graph/nodes/positions",
			Placement:   PlacementBody,
		},

		// Edges
		{
			Name:        "gephi_add_edge",
			Description: "Add an edge between two existing nodes.",
			Method:      http.MethodPost,
			Path:        "/graph/edge/add",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_add_edges",
			Description: "Add multiple edges in a single batch; edges referencing missing nodes are skipped.",
			Method:      http.MethodPost,
			Path:        "/graph/edges/add",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_remove_edge",
			Description: "Remove an edge between two nodes.",
			Method:      http.MethodPost,
			Path:        "/graph/edge/remove",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_set_edge_weight",
			Description: "Set the weight of an edge.",
			Method:      http.MethodPost,
			Path:        "/graph/edge/weight",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_set_edge_label",
			Description: "Set or change the label of an edge.",
			Method:      http.MethodPost,
			Path:        "/graph/edge/label",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_query_edges",
			Description: "Query edges with pagination.",
			Method:      http.MethodGet,
			Path:        "/graph/edges",
			Placement:   PlacementQuery,
			Query:       paginated,
		},

		// Graph stats and type
		{
			Name:        "gephi_get_graph_stats",
			Description: "Get node count, edge count, density, average degree, and graph type.",
			Method:      http.MethodGet,
			Path:        "/graph/stats",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_get_graph_type",
			Description: "Get whether the graph is directed, undirected, or mixed.",
			Method:      http.MethodGet,
			Path:        "/graph/type",
			Placement:   PlacementNone,
		},

		// Attribute tables
		{
			Name:        "gephi_get_columns",
			Description: "List all columns (attributes) in the node or edge table.",
			Method:      http.MethodGet,
			Path:        "/graph/columns",
			Placement:   PlacementQuery,
			Query:       []QueryParam{{Key: "target", Default: "node"}},
		},
		{
			Name:        "gephi_add_column",
			Description: "Add a new column to the node or edge table.",
			Method:      http.MethodPost,
			Path:        "/graph/columns/add",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_set_node_attributes",
			Description: "Set custom attributes on a node; columns are created automatically if needed.",
			Method:      http.MethodPost,
			Path:        "/graph/node/attributes",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_batch_set_node_attributes",
			Description: "Set attributes on multiple nodes at once.",
			Method:      http.MethodPost,
			Path:        "/graph/nodes/attributes",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_set_edge_attributes",
			Description: "Set custom attributes on an edge; columns are created automatically if needed.",
			Method:      http.MethodPost,
			Path:        "/graph/edge/attributes",
			Placement:   PlacementBody,
		},

		// Appearance: individual styling
		{
			Name:        "gephi_set_node_color",
			Description: "Set the RGB(A) color of a single node.",
			Method:      http.MethodPost,
			Path:        "/appearance/node/color",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_set_node_size",
			Description: "Set the size of a single node.",
			Method:      http.MethodPost,
			Path:        "/appearance/node/size",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_set_edge_color",
			Description: "Set the RGB(A) color of a single edge.",
			Method:      http.MethodPost,
			Path:        "/appearance/edge/color",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_batch_set_node_colors",
			Description: "Set colors of multiple nodes at once.",
			Method:      http.MethodPost,
			Path:        "/appearance/nodes/color",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_reset_appearance",
			Description: "Reset all nodes to default color and size.",
			Method:      http.MethodPost,
			Path:        "/appearance/reset",
			Placement:   PlacementBody,
		},

		// Appearance: color/size by attribute
		{
			Name:        "gephi_color_by_partition",
			Description: "Color nodes by a categorical attribute; each unique value gets a distinct color.",
			Method:      http.MethodPost,
			Path:        "/appearance/partition/color",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_color_by_ranking",
			Description: "Color nodes by a numeric attribute using a min-to-max gradient.",
			Method:      http.MethodPost,
			Path:        "/appearance/ranking/color",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_size_by_ranking",
			Description: "Size nodes by a numeric attribute between min_size and max_size.",
			Method:      http.MethodPost,
			Path:        "/appearance/ranking/size",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_edge_thickness_by_weight",
			Description: "Scale preview edge thickness proportionally to edge weight.",
			Method:      http.MethodPost,
			Path:        "/appearance/edge/thickness-by-weight",
			Placement:   PlacementBody,
		},

		// Layout
		{
			Name:        "gephi_run_layout",
			Description: "Run a layout algorithm (forceatlas2, yifanhu, fruchterman, circular, random). Runs asynchronously; poll gephi_get_layout_status.",
			Method:      http.MethodPost,
			Path:        "/layout/run",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_stop_layout",
			Description: "Stop a currently running layout algorithm.",
			Method:      http.MethodPost,
			Path:        "/layout/stop",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_get_layout_status",
			Description: "Check if a layout algorithm is currently running.",
			Method:      http.MethodGet,
			Path:        "/layout/status",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_get_available_layouts",
			Description: "Get the list of available layout algorithms.",
			Method:      http.MethodGet,
			Path:        "/layout/available",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_get_layout_properties",
			Description: "Get the tunable properties of a layout algorithm with current values and types.",
			Method:      http.MethodGet,
			Path:        "/layout/properties",
			Placement:   PlacementQuery,
			Query:       []QueryParam{{Key: "algorithm", Default: ""}},
		},
		{
			Name:        "gephi_set_layout_properties",
			Description: "Run a layout with custom property values (gravity, scaling, speed, ...).",
			Method:      http.MethodPost,
			Path:        "/layout/properties",
			Placement:   PlacementBody,
		},

		// Statistics
		{
			Name:        "gephi_compute_modularity",
			Description: "Run Louvain community detection; results land in node attribute 'modularity_class'.",
			Method:      http.MethodPost,
			Path:        "/statistics/modularity",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_compute_degree",
			Description: "Compute in/out/total degree for all nodes.",
			Method:      http.MethodPost,
			Path:        "/statistics/degree",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_compute_betweenness",
			Description: "Compute betweenness/closeness centrality, eccentricity, diameter, radius, and average path length.",
			Method:      http.MethodPost,
			Path:        "/statistics/betweenness",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_compute_pagerank",
			Description: "Compute PageRank for all nodes; results land in node attribute 'pageranks'.",
			Method:      http.MethodPost,
			Path:        "/statistics/pagerank",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_compute_connected_components",
			Description: "Compute connected components; results land in node attribute 'componentnumber'.",
			Method:      http.MethodPost,
			Path:        "/statistics/connected-components",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_compute_clustering_coefficient",
			Description: "Compute the clustering coefficient for all nodes.",
			Method:      http.MethodPost,
			Path:        "/statistics/clustering-coefficient",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_compute_avg_path_length",
			Description: "Compute the average shortest path length between all node pairs.",
			Method:      http.MethodPost,
			Path:        "/statistics/avg-path-length",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_compute_hits",
			Description: "Compute HITS hub and authority scores for all nodes.",
			Method:      http.MethodPost,
			Path:        "/statistics/hits",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_compute_eigenvector",
			Description: "Compute eigenvector centrality for all nodes.",
			Method:      http.MethodPost,
			Path:        "/statistics/eigenvector",
			Placement:   PlacementNone,
		},

		// Filters
		{
			Name:        "gephi_filter_by_degree",
			Description: "Remove nodes outside a degree range (max=0 means no upper limit). Destructive.",
			Method:      http.MethodPost,
			Path:        "/filter/degree",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_filter_by_edge_weight",
			Description: "Remove edges outside a weight range (max=0 means no upper limit). Destructive.",
			Method:      http.MethodPost,
			Path:        "/filter/edge-weight",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_remove_isolates",
			Description: "Remove all isolated (degree 0) nodes. Destructive.",
			Method:      http.MethodPost,
			Path:        "/filter/remove-isolates",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_extract_ego_network",
			Description: "Keep only a node and its neighbors within the given depth; everything else is removed. Destructive.",
			Method:      http.MethodPost,
			Path:        "/filter/ego-network",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_extract_giant_component",
			Description: "Keep only the largest connected component. Destructive.",
			Method:      http.MethodPost,
			Path:        "/filter/giant-component",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_reset_filters",
			Description: "Reset filters and restore the full graph view (non-destructive filters only).",
			Method:      http.MethodPost,
			Path:        "/filter/reset",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_clear_graph",
			Description: "Remove all nodes and edges; the project and workspace stay open. Destructive.",
			Method:      http.MethodPost,
			Path:        "/graph/clear",
			Placement:   PlacementNone,
		},

		// Preview
		{
			Name:        "gephi_get_preview_settings",
			Description: "Get current preview/rendering settings.",
			Method:      http.MethodGet,
			Path:        "/preview/settings",
			Placement:   PlacementNone,
		},
		{
			Name:        "gephi_set_preview_settings",
			Description: "Set preview/rendering settings used by exports (background, labels, edge style, ...).",
			Method:      http.MethodPost,
			Path:        "/preview/settings",
			Placement:   PlacementBody,
		},

		// Export
		{
			Name:        "gephi_export_gexf",
			Description: "Export the graph to a GEXF file, preserving attributes and positions.",
			Method:      http.MethodPost,
			Path:        "/export/gexf",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_export_png",
			Description: "Export the current visualization as a PNG image.",
			Method:      http.MethodPost,
			Path:        "/export/png",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_export_pdf",
			Description: "Export the current visualization as a PDF.",
			Method:      http.MethodPost,
			Path:        "/export/pdf",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_export_svg",
			Description: "Export the current visualization as SVG.",
			Method:      http.MethodPost,
			Path:        "/export/svg",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_export_graphml",
			Description: "Export the graph to a GraphML file.",
			Method:      http.MethodPost,
			Path:        "/export/graphml",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_export_csv",
			Description: "Export the graph to CSV (nodes, edges, or both).",
			Method:      http.MethodPost,
			Path:        "/export/csv",
			Placement:   PlacementBody,
		},

		// Import
		{
			Name:        "gephi_import_gexf",
			Description: "Import a GEXF file into the current workspace, merging with the existing graph.",
			Method:      http.MethodPost,
			Path:        "/import/gexf",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_import_graphml",
			Description: "Import a GraphML file.",
			Method:      http.MethodPost,
			Path:        "/import/graphml",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_import_csv",
			Description: "Import a CSV file.",
			Method:      http.MethodPost,
			Path:        "/import/csv",
			Placement:   PlacementBody,
		},
		{
			Name:        "gephi_import_file",
			Description: "Import a graph file of any supported format, auto-detected by extension.",
			Method:      http.MethodPost,
			Path:        "/import/file",
			Placement:   PlacementBody,
		},
	}
}

// ByName returns the descriptor registered under the given operation name.
func ByName(name string) (Descriptor, bool) {
	for _, d := range Operations() {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}
