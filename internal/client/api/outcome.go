package api

import (
	"bytes"
	"encoding/json"
)

// Kind tags an Outcome as success or failure.
type Kind int

const (
	KindFailure Kind = iota
	KindSuccess
)

// Outcome is the normalized result of an auth endpoint call. The
// backend is not uniform across its own endpoints: success may arrive
// as the literal body "OK" or "CREATED", as {success:true}, as
// {status:"success"}, or simply as a body carrying a non-empty token.
// Decoding happens once, here, so the flow above never pattern-matches
// raw bodies.
type Outcome struct {
	Kind    Kind
	Token   string
	Message string
}

func (o Outcome) Success() bool { return o.Kind == KindSuccess }

type responseBody struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Token   string `json:"token"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// decodeOutcome classifies a 2xx response body against the
// success-marker union.
func decodeOutcome(body []byte) Outcome {
	if s, ok := literalBody(body); ok {
		if s == "OK" || s == "CREATED" {
			return Outcome{Kind: KindSuccess}
		}
		return Outcome{Kind: KindFailure, Message: s}
	}

	var rb responseBody
	if err := json.Unmarshal(body, &rb); err != nil {
		return Outcome{Kind: KindFailure}
	}

	if rb.Success || rb.Status == "success" || rb.Token != "" {
		return Outcome{Kind: KindSuccess, Token: rb.Token, Message: rb.Message}
	}
	return Outcome{Kind: KindFailure, Message: rb.Error}
}

// failureOutcome classifies a non-2xx response: the error string from
// the body when present, else no message at all, leaving the caller to
// substitute its own default. Only body-provided strings are shown to
// the user verbatim.
func failureOutcome(body []byte) Outcome {
	var rb responseBody
	if err := json.Unmarshal(body, &rb); err == nil && rb.Error != "" {
		return Outcome{Kind: KindFailure, Message: rb.Error}
	}
	return Outcome{Kind: KindFailure}
}

// literalBody detects plain-string bodies, both bare ("OK") and
// JSON-encoded ("\"OK\"").
func literalBody(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", false
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s, true
		}
		return "", false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return "", false
	}
	return string(trimmed), true
}
