package executor

import "context"

// MockExecutor is a mock implementation of Executor for testing.
type MockExecutor struct {
	OutputFunc func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func (m *MockExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if m.OutputFunc != nil {
		return m.OutputFunc(ctx, name, args...)
	}
	return []byte{}, nil
}
