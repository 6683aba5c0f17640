package detect

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caldunn/alderlake-e-cores/pkg/executor"
)

// fakeTasksetExec answers taskset invocations from a canned label
// vector, asserting the argv shape on the way.
func fakeTasksetExec(t *testing.T, labels []string, delay func(cpu int) time.Duration) *executor.MockExecutor {
	t.Helper()
	return &executor.MockExecutor{
		OutputFunc: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			assert.Equal(t, "taskset", name)
			require.Len(t, args, 4)
			assert.Equal(t, "--cpu-list", args[0])
			assert.Equal(t, "/usr/local/bin/self", args[2])
			assert.Equal(t, "-s", args[3])

			cpu, err := strconv.Atoi(args[1])
			require.NoError(t, err)
			require.Less(t, cpu, len(labels))

			if delay != nil {
				time.Sleep(delay(cpu))
			}
			return []byte(labels[cpu] + "\n"), nil
		},
	}
}

func TestSequentialProber_Probe(t *testing.T) {
	labels := []string{"P_CORE", "P_CORE", "P_CORE", "P_CORE", "P_CORE", "P_CORE", "E_CORE", "E_CORE"}
	p := NewSequentialProber(fakeTasksetExec(t, labels, nil), "taskset", "/usr/local/bin/self")

	got, err := p.Probe(context.Background(), len(labels))
	require.NoError(t, err)
	assert.Equal(t, labels, got)
}

// The concurrent strategy must map results by launch index even when
// completions arrive in reverse order.
func TestConcurrentProber_LaunchOrderWins(t *testing.T) {
	labels := []string{"P_CORE", "P_CORE", "P_CORE", "P_CORE", "P_CORE", "P_CORE", "E_CORE", "E_CORE"}
	delay := func(cpu int) time.Duration {
		return time.Duration(len(labels)-cpu) * 2 * time.Millisecond
	}
	p := NewConcurrentProber(fakeTasksetExec(t, labels, delay), "taskset", "/usr/local/bin/self")

	got, err := p.Probe(context.Background(), len(labels))
	require.NoError(t, err)
	assert.Equal(t, labels, got)
}

func TestProbers_IdenticalMapping(t *testing.T) {
	labels := []string{"P_CORE", "P_CORE", "E_CORE", "E_CORE"}
	seq := NewSequentialProber(fakeTasksetExec(t, labels, nil), "taskset", "/usr/local/bin/self")
	con := NewConcurrentProber(fakeTasksetExec(t, labels, nil), "taskset", "/usr/local/bin/self")

	fromSeq, err := seq.Probe(context.Background(), len(labels))
	require.NoError(t, err)
	fromCon, err := con.Probe(context.Background(), len(labels))
	require.NoError(t, err)

	assert.Equal(t, fromSeq, fromCon)
}

func TestProbers_SpawnFailureFailsWholeBatch(t *testing.T) {
	exec := &executor.MockExecutor{
		OutputFunc: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			if args[1] == "3" {
				return nil, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
			}
			return []byte("P_CORE\n"), nil
		},
	}

	probers := map[string]Prober{
		"sequential": NewSequentialProber(exec, "taskset", "/usr/local/bin/self"),
		"concurrent": NewConcurrentProber(exec, "taskset", "/usr/local/bin/self"),
	}

	for name, p := range probers {
		t.Run(name, func(t *testing.T) {
			labels, err := p.Probe(context.Background(), 6)
			assert.ErrorIs(t, err, ErrTasksetFailure)
			assert.Nil(t, labels, "no partial results on failure")
		})
	}
}

func TestProbers_NonUTF8Output(t *testing.T) {
	exec := &executor.MockExecutor{
		OutputFunc: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte{0xff, 0xfe, 0xfd}, nil
		},
	}
	p := NewSequentialProber(exec, "taskset", "/usr/local/bin/self")

	labels, err := p.Probe(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTasksetFailure)
	assert.Nil(t, labels)
}

func TestProbers_TrimOutput(t *testing.T) {
	exec := &executor.MockExecutor{
		OutputFunc: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte("  E_CORE\n"), nil
		},
	}
	p := NewSequentialProber(exec, "taskset", "/usr/local/bin/self")

	labels, err := p.Probe(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"E_CORE"}, labels)
}
