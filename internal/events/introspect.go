package events

import "time"

// IntrospectStart is emitted before a schema is fetched from an endpoint.
type IntrospectStart struct {
	Endpoint string
}

// IntrospectFinish is emitted after an introspection round trip completes.
type IntrospectFinish struct {
	Endpoint string
	Types    int
	Err      error
	Duration time.Duration
}
