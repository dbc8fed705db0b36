package hparse

import "golang.org/x/sys/cpu"

// wideLane is the Tier-1 scan width in bytes, resolved once at program
// start from the best byte-vector width of the host. Zero skips Tier 1
// entirely and scanning starts at the pointer-word tier.
var wideLane = pickWideLane()

func pickWideLane() int {
	switch {
	case cpu.X86.HasAVX2:
		return 32
	case cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD || cpu.ARM.HasNEON:
		return 16
	}
	return 0
}
