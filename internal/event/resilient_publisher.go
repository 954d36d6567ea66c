package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/itemforge/internal/logger"
)

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
// Publish never fails the caller once the event is accepted.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	done     chan struct{}
	wg       sync.WaitGroup
	shutOnce sync.Once
}

// NewResilientPublisher starts the retry worker. Failed events are retried up to
// maxRetries times with exponential backoff from baseDelay, then written to deadLetterPath.
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		done:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.worker()
	return p, nil
}

// Publish implements Bus. The first attempt is synchronous; failures are queued.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry attempts delivery and schedules retries on failure.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	if id := logger.GetRequestID(ctx); id != "" && event.GetMetadataValue(MetadataKeyRequestID) == nil {
		event = event.WithMetadata(MetadataKeyRequestID, id)
	}

	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}
	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryItem{event: event, attempt: 1, lastErr: err})
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops the worker, dead-letters anything still queued and closes the file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	var err error
	p.shutOnce.Do(func() {
		close(p.done)

		finished := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(finished)
		}()

		select {
		case <-finished:
		case <-ctx.Done():
			logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
			err = ctx.Err()
			return
		}
		err = p.deadLetter.Close()
	})
	return err
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case <-p.done:
		p.writeDeadLetter(item)
		return
	default:
	}

	select {
	case p.queue <- item:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", item.event.Type)
		p.writeDeadLetter(item)
	}
}

func (p *ResilientPublisher) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case item := <-p.queue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	if item.attempt > p.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempt)
		p.writeDeadLetter(item)
		return
	}

	timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, item.attempt))
	defer timer.Stop()
	select {
	case <-p.done:
		p.writeDeadLetter(item)
		return
	case <-timer.C:
	}

	if err := p.inner.Publish(context.Background(), item.event); err != nil {
		logger.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
		item.attempt++
		item.lastErr = err
		if item.attempt > p.maxRetries {
			logger.Warn(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempt)
			p.writeDeadLetter(item)
			return
		}
		p.enqueue(item)
		return
	}
	logger.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", item.event.Type, "error", err)
	}
}
