package hparse

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/nikneym/hparse/internal/prand"
)

// scanScalar is the oracle every tier must agree with: a plain table walk.
func scanScalar(buf []byte, pos int, spec *classSpec) int {
	for pos < len(buf) && spec.table[buf[pos]] {
		pos++
	}
	return pos
}

// scanLanes covers Tier 1 disabled, the 16-byte lane and the 32-byte lane.
var scanLanes = [...]int{0, 16, 32}

func testScanAgainstOracle(t *testing.T, buf []byte, pos int) {
	t.Helper()
	for class := byteClass(0); class < numClasses; class++ {
		spec := &classes[class]
		want := scanScalar(buf, pos, spec)
		for _, lane := range scanLanes {
			got := scanFrom(buf, pos, spec, lane)
			if got != want {
				t.Errorf("class %d lane %d: stopped at %d, scalar oracle stops at %d (len %d, start %d, buf %q)",
					class, lane, got, want, len(buf), pos, buf)
			}
		}
	}
}

func TestScanAgreementSingleByte(t *testing.T) {
	buf := make([]byte, 1)
	for b := 0; b < 256; b++ {
		buf[0] = byte(b)
		testScanAgainstOracle(t, buf, 0)
	}
}

// Plants one offending byte at every index of a long valid run so stop
// positions land in the wide lane, the word tier and the scalar tail.
func TestScanAgreementPlantedStops(t *testing.T) {
	offenders := []byte{0x00, '\t', 0x1F, ' ', ':', 0x7F, '\r', '\n'}
	const runLen = 70
	base := make([]byte, runLen)
	prand.FillToken(base, 0xbeef)
	buf := make([]byte, runLen)
	for _, bad := range offenders {
		for i := 0; i < runLen; i++ {
			copy(buf, base)
			buf[i] = bad
			testScanAgainstOracle(t, buf, 0)
		}
	}
}

func TestScanAgreementRandom(t *testing.T) {
	seed := uint32(1)
	buf := make([]byte, 257)
	for iter := 0; iter < 500; iter++ {
		seed = prand.Fill(buf, seed)
		n := int(seed % uint32(len(buf)+1))
		sub := buf[:n]
		for start := 0; start <= n; start += 1 + start/3 {
			testScanAgainstOracle(t, sub, start)
		}
	}
}

func TestScanHighBytesPass(t *testing.T) {
	buf := bytes.Repeat([]byte{0xC3, 0xA9, 0xFF, 0x80}, 12)
	for class := byteClass(0); class < numClasses; class++ {
		for _, lane := range scanLanes {
			if got := scanFrom(buf, 0, &classes[class], lane); got != len(buf) {
				t.Errorf("class %d lane %d: stopped at %d on high bytes, want %d", class, lane, got, len(buf))
			}
		}
	}
}

func FuzzScanAgreement(f *testing.F) {
	f.Add([]byte("GET /index.html HTTP/1.1\r\nHost: a\r\n\r\n"), 0)
	f.Add([]byte{0x7F, ':', ' '}, 1)
	f.Add(bytes.Repeat([]byte("abcdefgh"), 9), 3)
	f.Fuzz(func(t *testing.T, data []byte, start int) {
		if start < 0 || start > len(data) {
			return
		}
		testScanAgainstOracle(t, data, start)
	})
}

var sinkPos int

func BenchmarkScanLongRun(b *testing.B) {
	buf := make([]byte, 4096)
	prand.FillToken(buf, 0xabcd)
	for _, lane := range scanLanes {
		b.Run(fmt.Sprintf("lane%d", lane), func(b *testing.B) {
			b.SetBytes(int64(len(buf)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkPos = scanFrom(buf, 0, &classes[classHeaderValue], lane)
			}
		})
	}
}
