package detect

import (
	"fmt"
	"strconv"
)

// IndexRange is an inclusive range [First, Last] of logical CPU
// indices. A range with Last < First is empty.
type IndexRange struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

func (r IndexRange) Empty() bool {
	return r.Last < r.First
}

// Len returns the number of indices the range covers.
func (r IndexRange) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Last - r.First + 1
}

// String renders the range in cpulist style: "2-5", a single index as
// "3", an empty range as "-".
func (r IndexRange) String() string {
	if r.Empty() {
		return "-"
	}
	if r.First == r.Last {
		return strconv.Itoa(r.First)
	}
	return fmt.Sprintf("%d-%d", r.First, r.Last)
}

// CorePELayout is the partition of the logical CPU index domain into a
// leading P-core range and a trailing E-core range. The two ranges are
// adjacent and together cover every index exactly once. Constructed
// once per detection request and immutable afterwards.
type CorePELayout struct {
	PCores IndexRange `json:"p_cores"`
	ECores IndexRange `json:"e_cores"`
}

// BuildLayout reduces an ordered core-type vector (index == logical CPU
// id) to its partition layout. The total width is the vector length,
// and the P/E boundary sits after the last P index. The vector must
// contain at least one P core, and every P index must precede every E
// index; violations return ErrNoPerformanceCores and
// ErrNonContiguousTopology respectively.
func BuildLayout(types []CoreType) (*CorePELayout, error) {
	n := len(types)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty core-type vector", ErrNoPerformanceCores)
	}

	pCount := 0
	for _, t := range types {
		if t == P {
			pCount++
		}
	}
	if pCount == 0 {
		return nil, ErrNoPerformanceCores
	}
	for i, t := range types {
		if (i < pCount) != (t == P) {
			return nil, fmt.Errorf("%w: cpu %d is a %s core", ErrNonContiguousTopology, i, t)
		}
	}

	return &CorePELayout{
		PCores: IndexRange{First: 0, Last: pCount - 1},
		ECores: IndexRange{First: pCount, Last: n - 1},
	}, nil
}

// FormattedString renders the layout for CLI display.
func (l *CorePELayout) FormattedString() string {
	return fmt.Sprintf("P CORES: %s\nE Cores: %s", l.PCores, l.ECores)
}
