package hparse

// parseHeaderBlock fills up to len(dst) header slots in wire order and
// consumes the blank line terminating the block. Running out of slots with
// headers still on the wire reports ErrHeaderSlots; junk after the last
// slot that is neither a header start nor a line end reports the same,
// matching the single malformed outcome callers already handle.
func parseHeaderBlock(c *cursor, dst []Header) (int, error) {
	count := 0
	for ; count < len(dst); count++ {
		switch c.byteOrEOF() {
		case '\n', '\r':
			return count, lineEnd(c)
		case eof:
			return count, ErrNeedMore
		}
		if err := parseHeaderLine(c, &dst[count]); err != nil {
			return count, err
		}
	}
	// Every slot written: only the terminating blank line may follow.
	switch c.byteOrEOF() {
	case '\n', '\r':
		return count, lineEnd(c)
	case eof:
		return count, ErrNeedMore
	}
	return count, ErrHeaderSlots
}

// parseHeaderLine parses one "Key: Value" line into dst. The key must be
// non-empty; spaces after the colon are skipped without bound; the value
// runs to the line end and may be empty.
func parseHeaderLine(c *cursor, dst *Header) error {
	keyStart := c.pos
	c.scan(classHeaderKey)
	keyEnd := c.pos
	switch c.byteOrEOF() {
	case ':':
		if keyEnd == keyStart {
			return ErrInvalid
		}
		c.advance(1)
	case eof:
		return ErrNeedMore
	default:
		return ErrInvalid
	}
	for c.byteOrEOF() == ' ' {
		c.advance(1)
	}
	valueStart := c.pos
	c.scan(classHeaderValue)
	valueEnd := c.pos
	if err := lineEnd(c); err != nil {
		return err
	}
	dst.Key = c.buf[keyStart:keyEnd]
	dst.Value = c.buf[valueStart:valueEnd]
	return nil
}
