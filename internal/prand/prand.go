// Package prand provides tiny deterministic xorshift generators for test
// and fuzz workloads that must not seed or allocate.
package prand

// U16 generates a pseudo random number from a seed.
func U16(seed uint16) uint16 {
	// 16bit Xorshift  https://en.wikipedia.org/wiki/Xorshift
	seed ^= seed << 7
	seed ^= seed >> 9
	seed ^= seed << 8
	return seed
}

// U32 generates a pseudo random number from a seed.
func U32[T ~uint32](seed T) T {
	/* Algorithm "xor" from p. 4 of Marsaglia, "Xorshift RNGs" */
	seed ^= seed << 13
	seed ^= seed >> 17
	seed ^= seed << 5
	return seed
}

// Fill fills b with bytes drawn from successive xorshift states and returns
// the advanced seed. Seeds must be non-zero to produce varied data.
func Fill(b []byte, seed uint32) uint32 {
	for i := range b {
		seed = U32(seed)
		b[i] = byte(seed)
	}
	return seed
}

// FillToken fills b with bytes restricted to [0x21,0x7E] so scanners see
// long valid runs, and returns the advanced seed.
func FillToken(b []byte, seed uint32) uint32 {
	for i := range b {
		seed = U32(seed)
		b[i] = 0x21 + byte(seed)%(0x7E-0x21+1)
	}
	return seed
}
