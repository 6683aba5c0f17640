package detect

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caldunn/alderlake-e-cores/pkg/config"
	"github.com/caldunn/alderlake-e-cores/pkg/cpuid"
	"github.com/caldunn/alderlake-e-cores/pkg/executor"
)

// Detector orchestrates one partition request: hybrid gate, per-core
// probe, label parsing, layout aggregation. The capability fields are
// exported so tests can substitute fakes; New wires the real ones.
type Detector struct {
	Hybrid  func() bool
	NumCPUs func() int
	Prober  Prober
}

// New builds a Detector for the configured probe mode.
func New(cfg *config.Config) (*Detector, error) {
	prober, err := proberFor(cfg)
	if err != nil {
		return nil, err
	}
	return &Detector{
		Hybrid:  cpuid.IsHybrid,
		NumCPUs: NumCPU,
		Prober:  prober,
	}, nil
}

func proberFor(cfg *config.Config) (Prober, error) {
	exe := &executor.DefaultExecutor{}
	switch cfg.ProbeMode {
	case config.ProbeModeConcurrent:
		return NewConcurrentProber(exe, cfg.TasksetPath, cfg.SelfPath), nil
	case config.ProbeModeSequential:
		return NewSequentialProber(exe, cfg.TasksetPath, cfg.SelfPath), nil
	case config.ProbeModeNative:
		return NativeProber{}, nil
	}
	return nil, fmt.Errorf("unknown probe mode %q", cfg.ProbeMode)
}

// Partition detects the P/E core split of the current system. Any
// single probe failure aborts the whole request; there are no retries
// and no partial layouts.
func (d *Detector) Partition(ctx context.Context) (*CorePELayout, error) {
	if !d.Hybrid() {
		return nil, ErrNotHybridCPU
	}

	n := d.NumCPUs()
	start := time.Now()

	labels, err := d.Prober.Probe(ctx, n)
	if err != nil {
		return nil, err
	}

	types := make([]CoreType, len(labels))
	for i, label := range labels {
		t, ok := ParseCoreType(label)
		if !ok {
			return nil, fmt.Errorf("%w: cpu %d reported %q", ErrUnknownCoreType, i, label)
		}
		types[i] = t
	}

	layout, err := BuildLayout(types)
	if err != nil {
		return nil, err
	}

	slog.Info("Detected core partition",
		"cpus", n,
		"p_cores", layout.PCores.Len(),
		"e_cores", layout.ECores.Len(),
		"duration", time.Since(start).Round(time.Millisecond))
	return layout, nil
}
