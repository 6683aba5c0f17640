package detect

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/caldunn/alderlake-e-cores/pkg/executor"
)

// Prober obtains the self-reported core-type label of every logical
// CPU. The returned slice holds one trimmed label per index, and the
// index is the logical CPU id; launch order, never completion order,
// determines the mapping. Implementations fail the whole probe set on
// the first child failure - no partial results.
type Prober interface {
	Probe(ctx context.Context, nCores int) ([]string, error)
}

// tasksetProber re-invokes this program's own executable under the
// external pinning utility, once per logical CPU, and captures the one
// line the child prints in single-core report mode.
type tasksetProber struct {
	exec    executor.Executor
	taskset string
	self    string
}

func (p *tasksetProber) probeOne(ctx context.Context, cpu int) (string, error) {
	out, err := p.exec.Output(ctx, p.taskset, "--cpu-list", strconv.Itoa(cpu), p.self, "-s")
	if err != nil {
		return "", fmt.Errorf("%w: cpu %d: %v", ErrTasksetFailure, cpu, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: cpu %d: child output is not valid UTF-8", ErrTasksetFailure, cpu)
	}
	return strings.TrimSpace(string(out)), nil
}

// SequentialProber launches and awaits one child at a time, in index
// order.
type SequentialProber struct {
	tasksetProber
}

// NewSequentialProber returns a Prober that runs its children strictly
// in sequence.
func NewSequentialProber(exec executor.Executor, tasksetPath, selfPath string) *SequentialProber {
	return &SequentialProber{tasksetProber{exec: exec, taskset: tasksetPath, self: selfPath}}
}

func (p *SequentialProber) Probe(ctx context.Context, nCores int) ([]string, error) {
	labels := make([]string, nCores)
	for i := 0; i < nCores; i++ {
		label, err := p.probeOne(ctx, i)
		if err != nil {
			return nil, err
		}
		slog.Debug("Probed core", "cpu", i, "label", label)
		labels[i] = label
	}
	return labels, nil
}

// ConcurrentProber launches all children up front and awaits the
// batch. Each completion is written into the slot of its launch index,
// so the label order is identical to the sequential strategy no matter
// in which order the children finish.
type ConcurrentProber struct {
	tasksetProber
}

// NewConcurrentProber returns a Prober that runs all children
// simultaneously.
func NewConcurrentProber(exec executor.Executor, tasksetPath, selfPath string) *ConcurrentProber {
	return &ConcurrentProber{tasksetProber{exec: exec, taskset: tasksetPath, self: selfPath}}
}

func (p *ConcurrentProber) Probe(ctx context.Context, nCores int) ([]string, error) {
	labels := make([]string, nCores)
	errs := make([]error, nCores)

	var wg sync.WaitGroup
	wg.Add(nCores)
	for i := 0; i < nCores; i++ {
		go func(cpu int) {
			defer wg.Done()
			labels[cpu], errs[cpu] = p.probeOne(ctx, cpu)
		}(i)
	}
	wg.Wait()

	// Lowest-index failure wins, matching the sequential strategy.
	for i, err := range errs {
		if err != nil {
			return nil, err
		}
		slog.Debug("Probed core", "cpu", i, "label", labels[i])
	}
	return labels, nil
}
