package gephi

import "encoding/json"

// FailureKind classifies a locally normalized transport failure.
type FailureKind string

// Failure kinds. Connection errors are distinguished because an unreachable
// Gephi instance is the single most common operator error; timeouts are
// distinguished because long-running operations (layout runs in particular)
// keep executing server-side after the bridge gives up waiting.
const (
	FailureConnection FailureKind = "connection_error"
	FailureTimeout    FailureKind = "timeout"
	FailureHTTPStatus FailureKind = "http_status_error"
	FailureDecode     FailureKind = "decode_error"
	FailureOther      FailureKind = "other"
)

// Failure describes one normalized transport failure.
type Failure struct {
	Kind    FailureKind
	Message string
	// Status is the raw HTTP status code for FailureHTTPStatus, 0 otherwise.
	Status int
}

// Outcome is the normalized result of exactly one transport call. Exactly
// one of Payload and Failure is set: Payload carries the raw JSON body on
// success or when a non-2xx response itself encoded a structured error
// (which is passed through verbatim); Failure carries a locally synthesized
// diagnostic for everything else. An Outcome is never mutated after creation.
type Outcome struct {
	Payload json.RawMessage
	Failure *Failure
}

// OK reports whether the outcome carries a payload rather than a failure.
func (o Outcome) OK() bool {
	return o.Failure == nil
}

// Ok returns a payload outcome.
func Ok(payload json.RawMessage) Outcome {
	return Outcome{Payload: payload}
}

// Fail returns a failure outcome of the given kind.
func Fail(kind FailureKind, message string) Outcome {
	return Outcome{Failure: &Failure{Kind: kind, Message: message}}
}

// FailStatus returns an http_status_error outcome carrying the raw status.
func FailStatus(status int, message string) Outcome {
	return Outcome{Failure: &Failure{Kind: FailureHTTPStatus, Message: message, Status: status}}
}
