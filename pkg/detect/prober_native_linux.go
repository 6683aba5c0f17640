//go:build linux

package detect

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/caldunn/alderlake-e-cores/pkg/cpuid"
)

// NativeProber pins a locked OS thread to each logical CPU in turn and
// runs the core-type query in-process. It needs no external pinning
// utility but is only available on Linux.
type NativeProber struct{}

func (NativeProber) Probe(ctx context.Context, nCores int) ([]string, error) {
	labels := make([]string, nCores)
	for i := 0; i < nCores; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		label, err := classifyOn(i)
		if err != nil {
			return nil, fmt.Errorf("%w: cpu %d: %v", ErrTasksetFailure, i, err)
		}
		slog.Debug("Probed core", "cpu", i, "label", label)
		labels[i] = label
	}
	return labels, nil
}

// classifyOn runs the hardware query on a fresh goroutine whose OS
// thread is locked and pinned to the target CPU. The thread is
// discarded when the goroutine exits while still locked, so the
// narrowed affinity never leaks back into the scheduler pool.
func classifyOn(cpu int) (string, error) {
	type result struct {
		label string
		err   error
	}
	done := make(chan result, 1)

	go func() {
		runtime.LockOSThread()
		var mask unix.CPUSet
		mask.Set(cpu)
		if err := unix.SchedSetaffinity(0, &mask); err != nil {
			done <- result{err: fmt.Errorf("failed to pin thread to CPU %d: %w", cpu, err)}
			return
		}
		done <- result{label: cpuid.ClassifyCurrentCore()}
	}()

	r := <-done
	return r.label, r.err
}
