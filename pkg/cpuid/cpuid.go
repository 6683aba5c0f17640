// Package cpuid queries the hardware feature and topology leaves needed
// to tell the P and E cores of a hybrid x86 processor apart.
package cpuid

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
)

// Labels emitted by ClassifyCurrentCore for recognised core types.
// Children re-invoked in single-core report mode print exactly one of
// these, and the prober matches them verbatim.
const (
	LabelPCore = "P_CORE"
	LabelECore = "E_CORE"
)

const (
	// hybridTopologyLeaf is CPUID leaf 0x1A, whose EAX top byte carries
	// the core-type indicator of the executing logical core.
	hybridTopologyLeaf = 0x1A

	indicatorPCore = 64 // Intel Core
	indicatorECore = 32 // Intel Atom
)

// IsHybrid reports whether the processor advertises heterogeneous core
// types (CPUID leaf 0x07, EDX bit 15). Side-effect free and cheap, so
// it gates every detection request unconditionally. Always false on
// CPUs and architectures that lack the bit.
func IsHybrid() bool {
	return cpuid.CPU.Supports(cpuid.HYBRID_CPU)
}

// ClassifyCurrentCore reads the hybrid topology leaf on the calling
// core and returns its label: LabelPCore, LabelECore, or a diagnostic
// string echoing the raw register for unrecognised indicator values.
//
// The result is only meaningful when the calling thread is pinned to
// the logical CPU under query. This function has no way to verify that
// and trusts its caller; it is the single trusted hardware call in the
// module.
func ClassifyCurrentCore() string {
	eax, _, _, _ := cpuidCount(hybridTopologyLeaf, 0)
	switch eax >> 24 {
	case indicatorPCore:
		return LabelPCore
	case indicatorECore:
		return LabelECore
	default:
		return fmt.Sprintf("UNRECOGNISED: indicator-range=%08b, eax_reg=%032b", byte(eax>>24), eax)
	}
}
