package spayway

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNotObject = errors.New("response body is not a JSON object")

// Envelope is a decoded gateway response: {"success": bool, "message"?: string, "data"?: any}.
//
// The body is kept verbatim; field accessors interpret it lazily so an envelope can be
// handed back to callers exactly as the gateway produced it.
type Envelope struct {
	raw    json.RawMessage
	fields map[string]json.RawMessage
}

func decodeEnvelope(body []byte) (*Envelope, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		// "null" decodes into a nil map without error.
		return nil, errNotObject
	}
	raw := make(json.RawMessage, len(body))
	copy(raw, body)
	return &Envelope{raw: raw, fields: fields}, nil
}

// Success reports whether the envelope carries the JSON literal true under "success".
// Truthy non-boolean values ("true", 1) do not count.
func (e *Envelope) Success() bool {
	v, ok := e.fields["success"]
	return ok && bytes.Equal(bytes.TrimSpace(v), []byte("true"))
}

// Message returns the "message" field when it is a JSON string.
func (e *Envelope) Message() (string, bool) {
	v, ok := e.fields["message"]
	if !ok {
		return "", false
	}
	var msg string
	if err := json.Unmarshal(v, &msg); err != nil {
		return "", false
	}
	return msg, true
}

// Data returns the raw "data" field, or nil when absent.
func (e *Envelope) Data() json.RawMessage {
	return e.fields["data"]
}

// DecodeData unmarshals the "data" field into v.
func (e *Envelope) DecodeData(v any) error {
	data := e.Data()
	if len(data) == 0 {
		return errors.New("response has no data field")
	}
	return json.Unmarshal(data, v)
}

// Raw returns the response body as received.
func (e *Envelope) Raw() json.RawMessage {
	return e.raw
}

func (e *Envelope) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	return e.raw, nil
}

func (e *Envelope) messageOr(fallback string) string {
	if msg, ok := e.Message(); ok {
		return msg
	}
	return fallback
}
