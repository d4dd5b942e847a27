package events

import (
	"time"

	"google.golang.org/grpc/codes"
)

// GRPCClientStart is published by internal/grpctp immediately before
// dialing out to a backend, one event per outbound method call (a batched
// resolver call still counts as a single call here).
type GRPCClientStart struct {
	Service string
	Method  string
	Target  string
}

// GRPCClientFinish is published once the backend call returns, successful
// or not; Code is the gRPC status code (codes.OK on success) and Err, when
// non-nil, is the error the transport is about to map into a field error.
type GRPCClientFinish struct {
	Service  string
	Method   string
	Target   string
	Code     codes.Code
	Err      error
	Duration time.Duration
}
