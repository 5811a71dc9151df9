package commitment

import "errors"

var (
	// ErrNoSRS is returned by operations that require a configured KZG
	// structured reference string when none is set.
	ErrNoSRS = errors.New("commitment: no SRS configured")

	// ErrCommitFailed wraps a gnark-crypto error encountered while
	// computing a KZG commitment.
	ErrCommitFailed = errors.New("commitment: commit failed")
)
