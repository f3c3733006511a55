package circuitbreaker

import (
	"errors"
	"testing"
	"time"
)

var errBackend = errors.New("backend down")

func failing() (interface{}, error) { return nil, errBackend }
func succeeding() (interface{}, error) { return "ok", nil }

func TestTripsAfterConsecutiveFailures(t *testing.T) {
	cb := New(2, 1, time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := cb.Execute(failing); !errors.Is(err, errBackend) {
			t.Fatalf("expected backend error, got %v", err)
		}
	}
	if cb.State() != Open {
		t.Fatalf("expected Open state, got %s", cb.State())
	}
	if _, err := cb.Execute(succeeding); !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("open circuit should block requests, got %v", err)
	}
}

func TestRecoversThroughHalfOpen(t *testing.T) {
	cb := New(1, 1, 10*time.Millisecond)

	if _, err := cb.Execute(failing); !errors.Is(err, errBackend) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if cb.State() != Open {
		t.Fatalf("expected Open state, got %s", cb.State())
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := cb.Execute(succeeding); err != nil {
		t.Fatalf("half-open trial request should pass, got %v", err)
	}
	if cb.State() != Closed {
		t.Errorf("expected Closed state after recovery, got %s", cb.State())
	}
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := New(2, 1, time.Minute)

	cb.Execute(failing)
	cb.Execute(succeeding)
	cb.Execute(failing)

	if cb.State() != Closed {
		t.Errorf("interleaved success should reset the failure count, state %s", cb.State())
	}
}
