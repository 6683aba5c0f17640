//go:build !linux

package detect

import (
	"context"
	"fmt"
)

// NativeProber requires Linux CPU-affinity syscalls and is unavailable
// on other platforms.
type NativeProber struct{}

func (NativeProber) Probe(ctx context.Context, nCores int) ([]string, error) {
	return nil, fmt.Errorf("%w: native probing is only supported on Linux", ErrTasksetFailure)
}
