package protocol

import "github.com/pkg/errors"

var (
	// ErrTruncated means the stream ended in the middle of a map or a snapshot.
	ErrTruncated = errors.New("protocol: stream truncated")
	// ErrBadCount means a list length was negative or larger than MaxCount.
	ErrBadCount = errors.New("protocol: bad list length")
	// ErrBadToken means a token could not be parsed as a number.
	ErrBadToken = errors.New("protocol: malformed number")
)

// MaxCount bounds every list length read from the stream.
const MaxCount = 1 << 20
