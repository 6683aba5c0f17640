package detect

import "errors"

// Failure kinds surfaced by Partition, distinguishable with errors.Is.
// None of them abort the process; the caller decides exit behavior.
var (
	// ErrNotHybridCPU: the processor does not advertise heterogeneous
	// core types. An environment fact, not a defect; requests
	// short-circuit before any probing.
	ErrNotHybridCPU = errors.New("this CPU does not have a hybrid architecture (eg. Alder Lake)")

	// ErrTasksetFailure: the external pinning utility could not be
	// launched or awaited, or a child produced undecodable output.
	ErrTasksetFailure = errors.New("running on taskset failed")

	// ErrUnknownCoreType: a probed core reported a label that is
	// neither P_CORE nor E_CORE.
	ErrUnknownCoreType = errors.New("error reading hybrid core type")

	// ErrNoPerformanceCores: every probed core reported E, so no P/E
	// boundary can be placed.
	ErrNoPerformanceCores = errors.New("no performance cores detected")

	// ErrNonContiguousTopology: the probed cores violate the
	// all-P-before-all-E layout the partition model requires.
	ErrNonContiguousTopology = errors.New("P and E cores are not laid out contiguously")
)
