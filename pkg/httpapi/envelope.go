package httpapi

import (
	"bytes"
	"encoding/json"

	"notectl/pkg/core"
)

// envelope is the fixed response wrapper the backend uses.
// Some endpoints still answer with the bare payload; unwrap accepts both,
// and nothing else.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// unwrap decodes a response body into out. The body must be either the
// {statusCode, message, data} envelope or the bare payload. Any other shape
// is a DecodeError, kept distinct from business failures.
func unwrap[T any](raw json.RawMessage, out *T) error {
	payload := bytes.TrimSpace(raw)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil
	}

	if payload[0] == '{' {
		var env envelope
		if err := json.Unmarshal(payload, &env); err == nil && env.Data != nil {
			payload = env.Data
		}
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return &core.DecodeError{Err: err}
	}
	return nil
}
