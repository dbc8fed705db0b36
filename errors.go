package hparse

import (
	"errors"
	"fmt"
)

// A parse call terminates in exactly one of three ways: a byte count on
// success, ErrNeedMore, or an error satisfying errors.Is(err, ErrInvalid).
// All values below are built once at package init; parse calls return them
// without allocating.
var (
	// ErrNeedMore reports that every byte inspected so far is consistent
	// with a valid message prefix and a decision needs more bytes. The
	// caller should append newly received bytes to the same prefix and
	// call again from offset zero.
	ErrNeedMore = errors.New("hparse: need more data")

	// ErrInvalid reports a byte that no valid message head could contain
	// at its position. The usual recourse is closing the connection.
	ErrInvalid = errors.New("hparse: malformed message head")

	// ErrHeaderSlots reports that the message head carries more headers
	// than the caller-provided slot slice can hold. It is also returned for
	// any other byte that is not a line end once every slot is filled, since
	// the parser does not look further. It wraps [ErrInvalid],
	// so callers that do not care keep treating it as malformed input,
	// while callers that do can grow the slot slice and retry.
	ErrHeaderSlots = fmt.Errorf("%w: header slots exhausted", ErrInvalid)
)
