package container

import "errors"

// Validation errors returned by the checking constructors (NewOrderedMap,
// NewTailSeq). A blob
// that fails validation must never be reinterpreted directly; these errors
// exist precisely to keep that invariant.
var (
	ErrTruncated        = errors.New("container: truncated blob")
	ErrOffsetsNotSorted = errors.New("container: offsets not monotonically increasing")
	ErrKeysNotSorted    = errors.New("container: keys not in ascending order")
)
