package types

import "fmt"

// ParseError means the completion service returned text that could not be
// decoded into a RailQuery. Raw carries the offending output for diagnosis.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse completion output as rail query: %s", excerpt(e.Raw))
}

// StationNotFoundError means the lookup service produced no usable code for
// one end of the journey. Which is "origin" or "destination".
type StationNotFoundError struct {
	Which string
	Name  string
}

func (e *StationNotFoundError) Error() string {
	return fmt.Sprintf("no station found for %s %q", e.Which, e.Name)
}

// UpstreamError is a non-success or transport-level failure from a remote
// service. StatusCode is 0 when the request never produced a response.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s service request failed: %s", e.Service, excerpt(e.Body))
	}
	return fmt.Sprintf("%s service error: status %d: %s", e.Service, e.StatusCode, excerpt(e.Body))
}

func excerpt(s string) string {
	if len(s) > 512 {
		return s[:512] + "..."
	}
	return s
}
