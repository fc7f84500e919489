package scan

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labflow/reagent-inventory/internal/recognition"
)

// Mock Recognizer
type mockRecognizer struct {
	guess   *recognition.LabelGuess
	err     error
	block   chan struct{} // when set, Recognize waits until closed
	calls   atomic.Int32
}

func (m *mockRecognizer) Recognize(ctx context.Context, filename string, image []byte) (*recognition.LabelGuess, error) {
	m.calls.Add(1)
	if m.block != nil {
		select {
		case <-m.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.guess, nil
}

func TestScan_SuccessPrefillsDraft(t *testing.T) {
	rec := &mockRecognizer{guess: &recognition.LabelGuess{
		Name: "Phosphate-Buffered Saline (PBS)", Brand: "Gibco", IsStock: true, Remaining: 60,
	}}
	c := NewCoordinator(rec, time.Second)

	draft, err := c.Scan(context.Background(), "label.jpg", []byte("img"))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if draft.Name != "Phosphate-Buffered Saline (PBS)" || draft.Brand != "Gibco" {
		t.Errorf("draft not seeded from guess: %+v", draft)
	}
	if draft.Remaining != 100 {
		t.Errorf("stocked guess must seed remaining=100, got %d", draft.Remaining)
	}
	if draft.Location != "" {
		t.Errorf("recognition must not infer a location, got %q", draft.Location)
	}
	if c.Scanning() {
		t.Error("coordinator should return to idle after success")
	}
}

func TestScan_OpenedGuessKeepsEstimate(t *testing.T) {
	rec := &mockRecognizer{guess: &recognition.LabelGuess{
		Name: "TRIzol", IsStock: false, Remaining: 35,
	}}
	c := NewCoordinator(rec, time.Second)

	draft, err := c.Scan(context.Background(), "label.jpg", []byte("img"))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if draft.Remaining != 35 {
		t.Errorf("expected recognized estimate 35, got %d", draft.Remaining)
	}
}

func TestScan_FailureYieldsNoDraftAndIsRetryable(t *testing.T) {
	rec := &mockRecognizer{err: errors.New("analysis failed")}
	c := NewCoordinator(rec, time.Second)

	draft, err := c.Scan(context.Background(), "label.jpg", []byte("img"))
	if err == nil {
		t.Fatal("expected recognition error")
	}
	if draft != nil {
		t.Errorf("failure must not open a draft, got %+v", draft)
	}
	if c.Scanning() {
		t.Error("coordinator must return to idle after failure")
	}

	// Retry immediately.
	rec.err = nil
	rec.guess = &recognition.LabelGuess{Name: "PBS", IsStock: true, Remaining: 100}
	if _, err := c.Scan(context.Background(), "label.jpg", []byte("img")); err != nil {
		t.Errorf("retry after failure should succeed, got %v", err)
	}
}

func TestScan_SecondTriggerWhileScanningIsNoOp(t *testing.T) {
	block := make(chan struct{})
	rec := &mockRecognizer{
		guess: &recognition.LabelGuess{Name: "PBS", IsStock: true, Remaining: 100},
		block: block,
	}
	c := NewCoordinator(rec, time.Second)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := c.Scan(context.Background(), "label.jpg", []byte("img")); err != nil {
			t.Errorf("first scan should succeed, got %v", err)
		}
	}()

	// Wait until the first call is in flight.
	for rec.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	if _, err := c.Scan(context.Background(), "label.jpg", []byte("img")); !errors.Is(err, ErrScanInProgress) {
		t.Errorf("expected ErrScanInProgress, got %v", err)
	}
	if got := rec.calls.Load(); got != 1 {
		t.Errorf("second trigger must not start a recognition call, got %d calls", got)
	}

	close(block)
	wg.Wait()

	if c.Scanning() {
		t.Error("coordinator should be idle after the flight settles")
	}
}

func TestScan_TimeoutBehavesLikeRecognitionError(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	rec := &mockRecognizer{
		guess: &recognition.LabelGuess{Name: "PBS"},
		block: block,
	}
	c := NewCoordinator(rec, 10*time.Millisecond)

	draft, err := c.Scan(context.Background(), "label.jpg", []byte("img"))
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if draft != nil {
		t.Errorf("timeout must not open a draft, got %+v", draft)
	}
	if c.Scanning() {
		t.Error("coordinator must return to idle after timeout")
	}
}
