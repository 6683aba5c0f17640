// Package detect determines which logical CPU indices of a hybrid x86
// processor belong to the performance (P) and efficiency (E) core
// classes, by probing every logical CPU and reducing the per-core
// verdicts to a contiguous index partition.
package detect

import "github.com/caldunn/alderlake-e-cores/pkg/cpuid"

// CoreType is the class of a logical CPU on a hybrid processor.
type CoreType int

const (
	// P is a performance core (Intel Core).
	P CoreType = iota
	// E is an efficiency core (Intel Atom).
	E
)

func (t CoreType) String() string {
	switch t {
	case P:
		return "P"
	case E:
		return "E"
	}
	return "?"
}

// ParseCoreType maps a child's self-reported label to its CoreType.
// Matching is exact and case-sensitive; the prober trims the captured
// output beforehand.
func ParseCoreType(label string) (CoreType, bool) {
	switch label {
	case cpuid.LabelPCore:
		return P, true
	case cpuid.LabelECore:
		return E, true
	}
	return 0, false
}
