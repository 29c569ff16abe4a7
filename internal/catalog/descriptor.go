// Package catalog defines the fixed, versioned table of caller-facing
// operations and how each one maps onto a Gephi plugin HTTP call. The table
// is the compatibility contract: operation names, parameter keys, and
// defaults are persisted in caller workflows and must not change.
package catalog

import (
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// Placement describes where caller-supplied parameters are injected into
// the transport call.
type Placement string

const (
	// PlacementQuery sends the declared parameter keys as a query string.
	PlacementQuery Placement = "query"
	// PlacementBody sends the whole parameter object as the JSON body.
	PlacementBody Placement = "body"
	// PlacementPath interpolates one parameter into the path template.
	PlacementPath Placement = "path"
	// PlacementNone ignores parameters entirely. The operation still
	// accepts a (possibly empty) parameter object: the calling convention
	// is uniform across the whole catalog.
	PlacementNone Placement = "none"
)

// QueryParam declares one forwarded query key and its default. Query
// placement forwards only the declared keys; undeclared caller keys are
// dropped rather than passed along.
type QueryParam struct {
	Key     string
	Default string
}

// Descriptor is one immutable catalog entry.
type Descriptor struct {
	Name        string
	Description string
	Method      string
	Path        string
	Placement   Placement

	// PathKey names the parameter interpolated into Path for PlacementPath.
	PathKey string
	// Query declares the forwarded keys for PlacementQuery.
	Query []QueryParam
	// BodyDefaults are merged under the caller's parameters for
	// PlacementBody, so omitted keys get their documented defaults.
	BodyDefaults map[string]any
}

// Request is the resolved transport call for one invocation.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// BuildRequest resolves a descriptor and the caller's parameter object into
// a concrete transport call. It never fails: missing parameters fall back
// to declared defaults or empty values, and the controlled application is
// left to reject whatever it considers invalid.
func BuildRequest(d Descriptor, args map[string]any) Request {
	r := Request{Method: d.Method, Path: d.Path}

	switch d.Placement {
	case PlacementQuery:
		q := url.Values{}
		for _, p := range d.Query {
			if v, ok := args[p.Key]; ok {
				q.Set(p.Key, cast.ToString(v))
			} else {
				q.Set(p.Key, p.Default)
			}
		}
		r.Query = q

	case PlacementBody:
		body := make(map[string]any, len(d.BodyDefaults)+len(args))
		for k, v := range d.BodyDefaults {
			body[k] = v
		}
		for k, v := range args {
			body[k] = v
		}
		r.Body = body

	case PlacementPath:
		value := url.PathEscape(cast.ToString(args[d.PathKey]))
		r.Path = strings.ReplaceAll(d.Path, "{"+d.PathKey+"}", value)
	}

	return r
}
