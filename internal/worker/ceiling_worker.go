package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
)

const (
	// Events for the same cache tag within this window collapse into one refresh
	debounceWindow = 1 * time.Second

	maxRetries     = 3
	initialBackoff = 100 * time.Millisecond
	attemptTimeout = 5 * time.Second
)

// Refresher rebuilds the cache entries of the products tag
type Refresher interface {
	Refresh(ctx context.Context) error
}

// CeilingWorker turns product events into debounced cache refreshes
type CeilingWorker struct {
	refresher Refresher
	logger    *logger.Logger

	mu         sync.Mutex
	pending    map[string]*pendingRefresh
	shutdownCh chan struct{}
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
}

type pendingRefresh struct {
	tag       string
	timestamp time.Time
	timer     *time.Timer
}

// NewCeilingWorker creates a new ceiling worker
func NewCeilingWorker(refresher Refresher, log *logger.Logger) *CeilingWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &CeilingWorker{
		refresher:  refresher,
		logger:     log,
		pending:    make(map[string]*pendingRefresh),
		shutdownCh: make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// HandleEvent schedules a refresh for product events.
// Variant events never change the max price and are skipped.
func (w *CeilingWorker) HandleEvent(data []byte) error {
	var event domain.ProductEvent
	if err := json.Unmarshal(data, &event); err != nil {
		w.logger.Error("Failed to unmarshal product event", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if !strings.HasPrefix(event.EventType, "product.") {
		w.logger.Debugf("Skipping %s event", event.EventType)
		return nil
	}

	w.logger.WithFields(map[string]any{
		"type":       event.EventType,
		"product_id": event.ProductID.String(),
		"timestamp":  event.Timestamp,
	}).Info("Received product event")

	w.scheduleRefresh(domain.ProductsCacheTag, event.Timestamp)

	return nil
}

// scheduleRefresh restarts the debounce timer of tag
func (w *CeilingWorker) scheduleRefresh(tag string, timestamp time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdownCh:
		w.logger.Info("Worker shutting down, ignoring new event")
		return
	default:
	}

	existing, found := w.pending[tag]
	if found {
		if timestamp.Before(existing.timestamp) {
			w.logger.WithFields(map[string]any{
				"tag":         tag,
				"existing_ts": existing.timestamp,
				"event_ts":    timestamp,
			}).Debug("Ignoring stale event")
			return
		}

		if !existing.timer.Stop() {
			// Already fired; the running refresh owns its WaitGroup slot.
			w.wg.Add(1)
		}
		w.logger.With("tag", tag).Debug("Debouncing: resetting refresh timer")
	} else {
		w.wg.Add(1)
	}

	p := &pendingRefresh{tag: tag, timestamp: timestamp}
	p.timer = time.AfterFunc(debounceWindow, func() {
		w.processRefresh(p)
	})
	w.pending[tag] = p
}

// processRefresh runs the refresh with exponential backoff between attempts
func (w *CeilingWorker) processRefresh(p *pendingRefresh) {
	defer w.wg.Done()

	tag := p.tag

	w.mu.Lock()
	if w.pending[tag] == p {
		delete(w.pending, tag)
	}
	w.mu.Unlock()

	w.logger.With("tag", tag).Info("Processing cache refresh")

	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			w.logger.WithFields(map[string]any{
				"tag":        tag,
				"attempt":    attempt + 1,
				"backoff_ms": backoff.Milliseconds(),
			}).Warn("Retrying cache refresh")

			select {
			case <-time.After(backoff):
			case <-w.ctx.Done():
				w.logger.Info("Worker context cancelled, aborting retry")
				return
			}

			backoff *= 2
		}

		ctx, cancel := context.WithTimeout(w.ctx, attemptTimeout)
		err := w.refresher.Refresh(ctx)
		cancel()

		if err == nil {
			return
		}

		lastErr = err
		w.logger.WithFields(map[string]any{
			"tag":     tag,
			"attempt": attempt + 1,
		}).Error("Failed to refresh cache", err)
	}

	w.logger.WithFields(map[string]any{
		"tag":         tag,
		"max_retries": maxRetries,
	}).Error("Cache refresh failed after all retries", lastErr)
}

// Shutdown cancels pending refreshes and waits for in-flight ones
func (w *CeilingWorker) Shutdown(ctx context.Context) error {
	w.logger.Info("Shutting down catalogue worker...")

	close(w.shutdownCh)
	w.cancel()

	w.mu.Lock()
	cancelled := 0
	for _, p := range w.pending {
		if p.timer.Stop() {
			cancelled++
			w.wg.Done()
		}
	}
	w.pending = make(map[string]*pendingRefresh)
	w.mu.Unlock()

	w.logger.With("cancelled_refreshes", cancelled).Info("Cancelled pending refreshes")

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("All in-flight refreshes completed")
		return nil
	case <-ctx.Done():
		w.logger.Warn("Shutdown timeout reached, forcing exit")
		return ctx.Err()
	}
}

// GetPendingCount returns the number of scheduled, not yet started refreshes
func (w *CeilingWorker) GetPendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}
