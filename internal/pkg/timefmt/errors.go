package timefmt

import "errors"

var (
	// ErrNilResolver indicates a formatter was created without a zone resolver
	ErrNilResolver = errors.New("timefmt: zone resolver is nil")

	// ErrNilZone indicates the resolver returned neither a zone nor an error
	ErrNilZone = errors.New("timefmt: resolver returned a nil zone")
)
