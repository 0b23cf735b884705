package events

import "time"

// RequestStart is emitted before a query document is sent to an endpoint.
type RequestStart struct {
	Endpoint      string
	Query         string
	OperationName string
}

// RequestFinish is emitted after the endpoint round trip completes.
// Errors carries the transport error, or the errors from the response
// envelope when the round trip itself succeeded.
type RequestFinish struct {
	Endpoint      string
	OperationName string
	Status        int
	Errors        []error
	Duration      time.Duration
}
