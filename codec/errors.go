package codec

import "errors"

// Decode failures wrap one of these sentinels with positional context;
// callers branch with errors.Is. Any of them indicates a protocol
// mismatch or a corrupted feed and must not be swallowed.
var (
	ErrTruncatedBuffer = errors.New("truncated buffer")
	ErrUnexpectedTag   = errors.New("unexpected tag")
	ErrVarintTooLong   = errors.New("varint too long")
)
