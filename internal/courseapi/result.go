package courseapi

import "github.com/courselens/courselens-backend/internal/model"

// Status tags the outcome of an upstream catalog fetch so callers can tell
// "no data" from "network error" from "not found" instead of getting a bare
// nil for all three.
type Status int

const (
	// StatusOK means the upstream returned a usable record payload.
	StatusOK Status = iota
	// StatusNotFound means the upstream answered with its literal
	// "Course not found" sentinel. Distinct from a transport error; it is
	// what triggers term fallback.
	StatusNotFound
	// StatusError means the request or response decode failed.
	StatusError
)

// Result is the tagged outcome of one catalog query.
type Result struct {
	Status  Status
	Records []model.CourseRecord
	Err     error
}

// OK reports whether the result carries usable course data.
func (r Result) OK() bool {
	return r.Status == StatusOK && len(r.Records) > 0
}
