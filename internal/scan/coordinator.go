package scan

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
	"github.com/labflow/reagent-inventory/internal/recognition"
	"github.com/labflow/reagent-inventory/pkg/logger"
)

// ErrScanInProgress is returned when a scan is triggered while a previous
// recognition call is still in flight. The trigger is a no-op; the caller
// may retry once the active scan settles.
var ErrScanInProgress = errors.New("a label scan is already in progress")

// DefaultTimeout bounds a recognition round trip. A timeout behaves
// exactly like any other recognition failure.
const DefaultTimeout = 30 * time.Second

// Coordinator owns the asynchronous label-recognition round trip. It
// enforces at most one in-flight recognition call and converts a
// successful guess into an edit draft for a new record. The guess is never
// committed to the store by the coordinator itself.
type Coordinator struct {
	recognizer recognition.Recognizer
	timeout    time.Duration
	scanning   atomic.Bool
}

// NewCoordinator creates a scan coordinator. A non-positive timeout falls
// back to DefaultTimeout.
func NewCoordinator(recognizer recognition.Recognizer, timeout time.Duration) *Coordinator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Coordinator{recognizer: recognizer, timeout: timeout}
}

// Scanning reports whether a recognition call is currently in flight.
func (c *Coordinator) Scanning() bool {
	return c.scanning.Load()
}

// Scan runs one recognition round trip and returns a pre-filled draft for
// a new record. On any failure no draft is produced and the coordinator
// returns to idle so the user can retry immediately.
//
// The recognized stocked flag decides the draft's remaining convention:
// stocked means full, otherwise the recognized estimate is kept. Storage
// location is never inferred from a label.
func (c *Coordinator) Scan(ctx context.Context, filename string, image []byte) (*domain.Draft, error) {
	if !c.scanning.CompareAndSwap(false, true) {
		return nil, ErrScanInProgress
	}
	defer c.scanning.Store(false)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	guess, err := c.recognizer.Recognize(ctx, filename, image)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("filename", filename).Msg("Label recognition failed")
		return nil, err
	}

	draft := domain.Draft{
		Name:      guess.Name,
		Brand:     guess.Brand,
		IsStock:   guess.IsStock,
		Remaining: guess.Remaining,
	}
	draft.Normalize()

	logger.Info(ctx).
		Str("name", draft.Name).
		Str("brand", draft.Brand).
		Bool("is_stock", draft.IsStock).
		Msg("Label recognized, draft prepared")

	return &draft, nil
}
