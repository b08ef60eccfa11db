package recording

import (
	"errors"
	"testing"
)

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend { return &mockBackend{} })

	b, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}
	if _, ok := b.(*mockBackend); !ok {
		t.Errorf("NewBackend() returned %T", b)
	}
	if !IsRegistered("test") {
		t.Error("IsRegistered(test) = false")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, err := NewBackend("nope")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewBackend() error = %v, want ErrUnknownBackend", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("dup", func() Backend { return &mockBackend{} })

	tests := []struct {
		name    string
		backend string
		factory BackendFactory
	}{
		{"duplicate", "dup", func() Backend { return &mockBackend{} }},
		{"nil factory", "other", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			Register(tt.backend, tt.factory)
		})
	}
}

func TestBackendsSorted(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("zeta", func() Backend { return &mockBackend{} })
	Register("alpha", func() Backend { return &mockBackend{} })
	names := Backends()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("Backends() = %v", names)
	}
	Unregister("alpha")
	if IsRegistered("alpha") {
		t.Error("Unregister(alpha) had no effect")
	}
}

func TestMustBackendPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if recover() == nil {
			t.Error("MustBackend() did not panic")
		}
	}()
	MustBackend("missing")
}
