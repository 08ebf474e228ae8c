// Copyright (c) 2025 BVK Chaitanya

package sbee

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bvk/sbeerest/sbee/internal"
)

// Result is the outcome of a gateway operation. Exactly one of a decoded
// value or an *OperationError is set.
type Result struct {
	operation string

	raw   json.RawMessage
	value any

	err *OperationError
}

// OperationError is the failure of a gateway operation, tagged with the
// operation name.
type OperationError struct {
	Operation string
	Message   string

	// StatusCode and Body are set only for unsuccessful http responses.
	StatusCode int
	Body       []byte
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Tag(), e.Message)
}

// Tag returns the "ERROR_<Operation>" name for the error.
func (e *OperationError) Tag() string {
	return "ERROR_" + e.Operation
}

// Operation returns the operation name.
func (r *Result) Operation() string {
	return r.operation
}

func (r *Result) OK() bool {
	return r.err == nil
}

// Value returns the decoded JSON value. Objects are map[string]any, arrays are
// []any and numbers are json.Number.
func (r *Result) Value() any {
	return r.value
}

// Err returns the operation error or nil.
func (r *Result) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Decode decodes a successful response body into v.
func (r *Result) Decode(v any) error {
	if r.err != nil {
		return r.err
	}
	return json.Unmarshal(r.raw, v)
}

// MarshalJSON encodes a successful result as its value and a failed result as
// a single {"ERROR_<Operation>": "message"} object.
func (r *Result) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return json.Marshal(map[string]string{r.err.Tag(): r.err.Message})
	}
	if r.raw == nil {
		return []byte("null"), nil
	}
	return r.raw, nil
}

func okResult(operation string, raw []byte, value any) *Result {
	return &Result{operation: operation, raw: raw, value: value}
}

func errResult(operation, message string) *Result {
	return &Result{
		operation: operation,
		err:       &OperationError{Operation: operation, Message: message},
	}
}

// Translate converts a raw round trip outcome into the result for the named
// operation. It never panics.
func Translate(out *internal.Outcome, operation string) *Result {
	if out == nil {
		return errResult(operation, "no response")
	}
	switch out.Kind {
	case internal.Success:
		value, err := decodeValue(out.Body)
		if err != nil {
			return errResult(operation, "invalid response body")
		}
		return okResult(operation, out.Body, value)
	case internal.HTTPFailure:
		r := errResult(operation, fmt.Sprintf("HTTP request failed with status %d", out.StatusCode))
		r.err.StatusCode = out.StatusCode
		r.err.Body = out.Body
		return r
	case internal.TransportFailure:
		reason := out.Reason()
		if reason == "" {
			reason = "transport failure"
		}
		return errResult(operation, reason)
	}
	return errResult(operation, fmt.Sprintf("unknown outcome %s", out.Kind))
}

func decodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the json value")
	}
	return v, nil
}
