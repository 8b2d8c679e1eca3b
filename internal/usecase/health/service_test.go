package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockStoragePinger struct {
	err error
}

func (m *mockStoragePinger) Ping(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockStoragePinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["storage"] != CheckOK {
		t.Errorf("expected storage %q, got %q", CheckOK, r.Checks["storage"])
	}
}

func TestCheck_StorageError(t *testing.T) {
	svc := New(&mockStoragePinger{err: errors.New("permission denied")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["storage"] != CheckError {
		t.Errorf("expected storage %q, got %q", CheckError, r.Checks["storage"])
	}
}
