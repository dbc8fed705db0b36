package hparse

// byteClass selects one of the four byte predicates the scanner understands.
type byteClass uint8

const (
	classPath byteClass = iota
	classHeaderKey
	classHeaderValue
	classReason
	numClasses
)

const (
	swarLows  uint64 = 0x0101010101010101
	swarHighs uint64 = swarLows << 7
)

// broadcast repeats b into every byte lane of a word.
func broadcast(b byte) uint64 { return uint64(b) * swarLows }

// classSpec carries everything a scanner tier needs for one predicate: the
// 256-entry table of the scalar tier and the broadcast constants of the
// SWAR tiers. Both are derived from the same (low, forbidden...) inputs so
// the tiers cannot drift apart.
type classSpec struct {
	table [256]bool
	low   uint64 // broadcast lower bound; subtraction borrow flags bytes below it
	stop1 uint64 // broadcast forbidden singleton (DEL)
	stop2 uint64 // broadcast second singleton; repeats stop1 when the class has only one
}

// Predicate inputs, per class:
//
//	path:         [0x21,0x7E] and >=0x80 valid; SP, DEL and C0 controls invalid
//	header-key:   path minus ':' (the delimiter)
//	header-value: everything >=0x20 except DEL valid, high bytes valid;
//	              C0 controls invalid, HTAB included (obs-fold and folded
//	              continuation lines are unsupported)
//	reason:       identical to header-value
var classes = [numClasses]classSpec{
	classPath:        newClassSpec(0x21, 0x7F, 0x7F),
	classHeaderKey:   newClassSpec(0x21, 0x7F, ':'),
	classHeaderValue: newClassSpec(0x20, 0x7F, 0x7F),
	classReason:      newClassSpec(0x20, 0x7F, 0x7F),
}

// newClassSpec derives one predicate from its enumerated invalid bytes:
// everything below low plus up to two forbidden singletons. Bytes >= 0x80
// always pass; the server stack above may still reject them.
func newClassSpec(low, f1, f2 byte) classSpec {
	s := classSpec{
		low:   broadcast(low),
		stop1: broadcast(f1),
		stop2: broadcast(f2),
	}
	for b := 0; b < 256; b++ {
		s.table[b] = b >= int(low)
	}
	s.table[f1] = false
	s.table[f2] = false
	return s
}

// mask returns a word with the high bit set in every lane whose byte fails
// the class. Lanes past the first failing byte may carry borrow noise; only
// the lowest set lane is meaningful and trailing-zeros consumers rely on
// exactly that lane.
func (s *classSpec) mask(w uint64) uint64 {
	lt := (w - s.low) &^ w
	x1 := w ^ s.stop1
	eq1 := (x1 - swarLows) &^ x1
	x2 := w ^ s.stop2
	eq2 := (x2 - swarLows) &^ x2
	return (lt | eq1 | eq2) & swarHighs
}
