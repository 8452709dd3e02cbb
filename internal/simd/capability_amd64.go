//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// cpu.X86.HasAVX already accounts for OSXSAVE and the YMM bits in XCR0.
	hasAVX = cpu.X86.HasAVX
	initCapabilities()
}
