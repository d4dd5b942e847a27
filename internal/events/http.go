package events

import (
	"net/http"
	"time"
)

// HTTPStart is published by internal/server the moment a request is
// accepted, before the GraphQL request body has even been parsed.
type HTTPStart struct {
	Request *http.Request
}

// HTTPFinish is published once the handler has written its response,
// carrying the wall-clock cost of the whole HTTP round trip (including
// GraphQL execution) for whatever subscriber wants to record it.
type HTTPFinish struct {
	Request  *http.Request
	Status   int
	Duration time.Duration
}
