package regexkit

import "errors"

var (
	// ErrNoMatch is returned by group accessors when the matcher holds no
	// successful match, either because nothing was attempted yet or because
	// the last attempt failed.
	ErrNoMatch = errors.New("regexkit: no match available")

	// ErrNoSuchGroup is returned for a group number or name the pattern
	// does not define.
	ErrNoSuchGroup = errors.New("regexkit: no such group")

	// ErrIndexOutOfRange is returned for search positions and occurrence
	// numbers outside the valid range.
	ErrIndexOutOfRange = errors.New("regexkit: index out of range")

	// ErrInvalidRegion is returned by Matcher.Region when the bounds are
	// reversed or fall outside the input.
	ErrInvalidRegion = errors.New("regexkit: invalid region")
)
