// Copyright (c) 2025 BVK Chaitanya

package internal

import "fmt"

type OutcomeKind int

const (
	// Success means the gateway answered with a 2xx status code.
	Success OutcomeKind = iota + 1

	// TransportFailure means no usable response was received. Connection
	// failures, DNS errors, timeouts and cancellations all end up here.
	TransportFailure

	// HTTPFailure means the gateway answered with a non-2xx status code.
	HTTPFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "Success"
	case TransportFailure:
		return "TransportFailure"
	case HTTPFailure:
		return "HTTPFailure"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is the result of one round trip to the gateway.
//
// Body holds the response body for Success and HTTPFailure kinds. StatusCode
// is set for Success and HTTPFailure kinds. Cause is set only for the
// TransportFailure kind.
type Outcome struct {
	Kind OutcomeKind

	StatusCode int
	Body       []byte

	Cause error
}

func succeeded(status int, body []byte) *Outcome {
	return &Outcome{Kind: Success, StatusCode: status, Body: body}
}

func httpFailed(status int, body []byte) *Outcome {
	return &Outcome{Kind: HTTPFailure, StatusCode: status, Body: body}
}

func transportFailed(cause error) *Outcome {
	return &Outcome{Kind: TransportFailure, Cause: cause}
}

// Reason returns a short description of a transport failure.
func (v *Outcome) Reason() string {
	if v.Cause == nil {
		return ""
	}
	return v.Cause.Error()
}
