// Package hparse parses HTTP/1.x request and response message heads
// (request/status line plus header block, through the terminating blank
// line) out of a caller-owned contiguous byte buffer. It copies nothing and
// allocates nothing: every output is a subslice of the input buffer, valid
// while the caller keeps that buffer alive and unchanged. See [RFC9112].
//
// Parsing is restartable. A call that returns [ErrNeedMore] committed to
// nothing; the caller appends newly received bytes after the same prefix
// and calls again from offset zero. Identical inputs parse identically, so
// re-parsing a grown buffer is how streaming works here, not suspension.
//
// The package holds no state between calls and is safe for concurrent use
// as long as each goroutine brings its own buffer and outputs.
//
// [RFC9112]: https://datatracker.ietf.org/doc/html/rfc9112
package hparse

// Minimum buffer lengths before parsing begins: the shortest legal heads
// are "GET / HTTP/1.1\n" and "HTTP/1.1 200\n". Shorter buffers report
// ErrNeedMore without inspecting a byte.
const (
	minRequestHead  = 15
	minResponseHead = 13
)

// Request holds the borrowed results of parsing a request head. Path
// aliases the parsed buffer; see [Header] for the lifetime contract.
type Request struct {
	Method  Method
	Path    []byte
	Version Version
}

// Reset restores the pre-parse sentinels: MethodUnknown, nil path,
// Version1_0. Parse calls reset their output themselves; Reset exists for
// callers recycling a Request across buffers they are about to discard.
func (req *Request) Reset() { *req = Request{} }

// Response holds the borrowed results of parsing a response head. Reason
// is nil when the status line omitted the reason phrase entirely, and an
// empty non-nil slice when the phrase was present but empty.
type Response struct {
	Version    Version
	StatusCode uint16
	Reason     []byte
}

// Reset restores the pre-parse sentinels.
func (resp *Response) Reset() { *resp = Response{} }

// Class returns the status class of the parsed status code.
func (resp *Response) Class() StatusClass {
	d := resp.StatusCode / 100
	if d >= 1 && d <= 5 {
		return StatusClass(d)
	}
	return StatusClassInvalid
}

// ParseRequest parses one request head from buf. headers is a caller-owned
// slot array; its length is the capacity and nHeaders slots are written in
// wire order. On success n is the count of consumed bytes and the body
// starts at buf[n:].
//
// On [ErrNeedMore] or an invalid-input error the outputs are left at their
// last written state for debugging but their content is unspecified;
// callers must not rely on it.
func ParseRequest(req *Request, headers []Header, buf []byte) (n, nHeaders int, err error) {
	req.Reset()
	if len(buf) < minRequestHead {
		return 0, 0, ErrNeedMore
	}
	c := cursor{buf: buf}
	req.Method, err = parseMethod(&c)
	if err != nil {
		return 0, 0, err
	}
	req.Path, err = parsePath(&c)
	if err != nil {
		return 0, 0, err
	}
	req.Version, err = parseVersion(&c)
	if err != nil {
		return 0, 0, err
	}
	nHeaders, err = parseHeaderBlock(&c, headers)
	if err != nil {
		return 0, nHeaders, err
	}
	return c.pos, nHeaders, nil
}

// ParseResponse parses one response head from buf into resp and headers,
// under the same slot, consumed-count and restart contracts as
// [ParseRequest]. The reason phrase is optional on the wire; resp.Reason
// reports its absence as nil.
func ParseResponse(resp *Response, headers []Header, buf []byte) (n, nHeaders int, err error) {
	resp.Reset()
	if len(buf) < minResponseHead {
		return 0, 0, ErrNeedMore
	}
	c := cursor{buf: buf}
	resp.Version, err = matchVersion(&c)
	if err != nil {
		return 0, 0, err
	}
	if c.peek() != ' ' { // the buffer floor guarantees the byte exists
		return 0, 0, ErrInvalid
	}
	c.advance(1)
	resp.StatusCode, err = parseStatusCode(&c)
	if err != nil {
		return 0, 0, err
	}
	resp.Reason, err = parseReason(&c)
	if err != nil {
		return 0, 0, err
	}
	nHeaders, err = parseHeaderBlock(&c, headers)
	if err != nil {
		return 0, nHeaders, err
	}
	return c.pos, nHeaders, nil
}
