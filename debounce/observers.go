package debounce

import (
	"sync"

	"go.uber.org/zap"
)

// observers fans settle events out to subscriber channels.
// A full subscriber misses the event instead of blocking the others.
type observers[T any] struct {
	mu         sync.Mutex
	bufferSize int
	logger     *zap.Logger
	chs        []chan Settled[T]
	closed     bool
}

func newObservers[T any](bufferSize int, logger *zap.Logger) *observers[T] {
	return &observers[T]{
		bufferSize: bufferSize,
		logger:     logger,
	}
}

func (o *observers[T]) add() <-chan Settled[T] {
	o.mu.Lock()
	defer o.mu.Unlock()

	ch := make(chan Settled[T], o.bufferSize)
	if o.closed {
		close(ch)
		return ch
	}
	o.chs = append(o.chs, ch)
	return ch
}

func (o *observers[T]) publish(ev Settled[T]) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, ch := range o.chs {
		select {
		case ch <- ev:
		default:
			o.logger.Debug("subscriber buffer full, dropping settle event",
				zap.String("cellId", ev.CellID),
				zap.String("key", ev.Key),
				zap.Int("subscriber", i),
			)
		}
	}
}

func (o *observers[T]) closeAll() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}
	o.closed = true
	for _, ch := range o.chs {
		close(ch)
	}
}
