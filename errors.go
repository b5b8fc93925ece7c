package intersect

import "errors"

// Errors reported before any intersection work begins. All are detected
// synchronously; a failed call produces no partial result.
var (
	// ErrTooFewImages is returned when fewer than two images are supplied.
	ErrTooFewImages = errors.New("at least 2 flag images are required")

	// ErrSizeMismatch is returned in strict-size mode when the inputs do
	// not all share the same dimensions.
	ErrSizeMismatch = errors.New("input images differ in size")

	// ErrNotFound is returned by Load when the path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrNotAFile is returned by Load when the path is not a regular file.
	ErrNotAFile = errors.New("not a file")
)
