package record

import "context"

// mockStore implements the consumer interface for tests.
type mockStore struct {
	putNXFn  func(ctx context.Context, id string, data []byte) error
	getFn    func(ctx context.Context, id string) ([]byte, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context) ([][]byte, error)
}

func (m *mockStore) PutNX(ctx context.Context, id string, data []byte) error {
	if m.putNXFn != nil {
		return m.putNXFn(ctx, id, data)
	}
	return nil
}

func (m *mockStore) Get(ctx context.Context, id string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockStore) List(ctx context.Context) ([][]byte, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}
