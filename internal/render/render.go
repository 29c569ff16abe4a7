// Package render serializes transport outcomes into the text block returned
// to the MCP caller.
package render

import (
	"bytes"
	"encoding/json"

	"github.com/graphbridge/gephi-mcp/internal/gephi"
)

// failureBody is the wire shape for locally normalized failures. It matches
// the {success, error} convention the Gephi plugin itself uses, so callers
// see one uniform result shape regardless of where a failure originated.
type failureBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Render returns the outcome as 2-space indented JSON. Payloads are
// re-indented from the raw response bytes, which keeps the key order the
// controlled application produced. Render never fails: anything that cannot
// be re-indented is returned in its raw string form.
func Render(o gephi.Outcome) string {
	if o.Failure != nil {
		out, err := json.MarshalIndent(failureBody{Success: false, Error: o.Failure.Message}, "", "  ")
		if err != nil {
			return o.Failure.Message
		}
		return string(out)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, o.Payload, "", "  "); err != nil {
		return string(o.Payload)
	}
	return buf.String()
}
