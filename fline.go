package hparse

// Packed little-endian method and version words. The constants are composed
// byte-by-byte exactly the way [cursor.load32] and [cursor.load64] read
// them, so dispatch agrees on any target.
const (
	word4GET  = uint32('G') | uint32('E')<<8 | uint32('T')<<16 | uint32(' ')<<24
	word4PUT  = uint32('P') | uint32('U')<<8 | uint32('T')<<16 | uint32(' ')<<24
	word4POST = uint32('P') | uint32('O')<<8 | uint32('S')<<16 | uint32('T')<<24
	word4HEAD = uint32('H') | uint32('E')<<8 | uint32('A')<<16 | uint32('D')<<24
	word4DELE = uint32('D') | uint32('E')<<8 | uint32('L')<<16 | uint32('E')<<24
	word4CONN = uint32('C') | uint32('O')<<8 | uint32('N')<<16 | uint32('N')<<24
	word4OPTI = uint32('O') | uint32('P')<<8 | uint32('T')<<16 | uint32('I')<<24
	word4TRAC = uint32('T') | uint32('R')<<8 | uint32('A')<<16 | uint32('C')<<24
	word4PATC = uint32('P') | uint32('A')<<8 | uint32('T')<<16 | uint32('C')<<24

	word8HTTP10 = uint64('H') | uint64('T')<<8 | uint64('T')<<16 | uint64('P')<<24 |
		uint64('/')<<32 | uint64('1')<<40 | uint64('.')<<48 | uint64('0')<<56
	word8HTTP11 = uint64('H') | uint64('T')<<8 | uint64('T')<<16 | uint64('P')<<24 |
		uint64('/')<<32 | uint64('1')<<40 | uint64('.')<<48 | uint64('1')<<56
)

// parseMethod dispatches on the first four bytes packed as one word, then
// consumes the trailing bytes the token still owes, including the space
// separating method from path. GET and PUT carry the space inside the
// packed word and owe nothing.
func parseMethod(c *cursor) (Method, error) {
	if !c.has(4) {
		return MethodUnknown, ErrNeedMore
	}
	w := c.load32()
	c.advance(4)
	switch w {
	case word4GET:
		return MethodGet, nil
	case word4PUT:
		return MethodPut, nil
	case word4POST:
		return methodTail(c, MethodPost, " ")
	case word4HEAD:
		return methodTail(c, MethodHead, " ")
	case word4DELE:
		return methodTail(c, MethodDelete, "TE ")
	case word4CONN:
		return methodTail(c, MethodConnect, "ECT ")
	case word4OPTI:
		return methodTail(c, MethodOptions, "ONS ")
	case word4TRAC:
		return methodTail(c, MethodTrace, "E ")
	case word4PATC:
		return methodTail(c, MethodPatch, "H ")
	}
	return MethodUnknown, ErrInvalid
}

func methodTail(c *cursor, m Method, tail string) (Method, error) {
	if err := c.expect(tail); err != nil {
		return MethodUnknown, err
	}
	return m, nil
}

// parsePath scans to the single space delimiting path from version. An
// empty path followed by a space parses successfully as an empty slice;
// rejecting that is the server stack's call.
func parsePath(c *cursor) ([]byte, error) {
	start := c.pos
	c.scan(classPath)
	switch c.byteOrEOF() {
	case ' ':
		path := c.buf[start:c.pos]
		c.advance(1)
		return path, nil
	case eof:
		return nil, ErrNeedMore
	}
	return nil, ErrInvalid
}

// parseVersion matches the eight version bytes closing a request line. The
// line terminator must follow immediately, so nine bytes are required
// before committing to a decision.
func parseVersion(c *cursor) (Version, error) {
	if !c.has(9) {
		return Version1_0, ErrNeedMore
	}
	v, err := matchVersion(c)
	if err != nil {
		return v, err
	}
	return v, lineEnd(c)
}

// matchVersion compares the next eight bytes against HTTP/1.0 and HTTP/1.1.
// Caller must know has(8).
func matchVersion(c *cursor) (Version, error) {
	switch c.load64() {
	case word8HTTP10:
		c.advance(8)
		return Version1_0, nil
	case word8HTTP11:
		c.advance(8)
		return Version1_1, nil
	}
	return Version1_0, ErrInvalid
}

// lineEnd accepts a bare LF or a CR+LF pair. A CR as the last buffered byte
// is a valid prefix of CR+LF, not an error.
func lineEnd(c *cursor) error {
	switch c.byteOrEOF() {
	case '\n':
		c.advance(1)
		return nil
	case '\r':
		c.advance(1)
		switch c.byteOrEOF() {
		case '\n':
			c.advance(1)
			return nil
		case eof:
			return ErrNeedMore
		}
		return ErrInvalid
	case eof:
		return ErrNeedMore
	}
	return ErrInvalid
}

// parseStatusCode converts the three mandatory status digits. Caller must
// know has(3); the response buffer floor guarantees it.
func parseStatusCode(c *cursor) (uint16, error) {
	d0, d1, d2 := c.buf[c.pos], c.buf[c.pos+1], c.buf[c.pos+2]
	if d0 < '0' || d0 > '9' || d1 < '0' || d1 > '9' || d2 < '0' || d2 > '9' {
		return 0, ErrInvalid
	}
	c.advance(3)
	return uint16(d0-'0')*100 + uint16(d1-'0')*10 + uint16(d2-'0'), nil
}

// parseReason handles the byte after the status digits: a space introduces
// a (possibly empty) reason phrase, a line end omits it. The returned slice
// is nil exactly when the phrase was omitted.
func parseReason(c *cursor) ([]byte, error) {
	switch c.byteOrEOF() {
	case ' ':
		for c.byteOrEOF() == ' ' {
			c.advance(1)
		}
		start := c.pos
		c.scan(classReason)
		reason := c.buf[start:c.pos]
		return reason, lineEnd(c)
	case '\n', '\r':
		return nil, lineEnd(c)
	case eof:
		return nil, ErrNeedMore
	}
	return nil, ErrInvalid
}
