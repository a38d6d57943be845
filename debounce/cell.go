package debounce

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/pure_ive_go/internal/dispatch"
	"github.com/on-the-ground/pure_ive_go/log"
	"go.uber.org/zap"
)

// Cell is a debounced value. It is safe for concurrent use.
type Cell[T any] struct {
	ID string

	key       string
	delay     time.Duration
	logger    *zap.Logger
	post      func(Settled[T]) bool
	observers *observers[T]
	teardown  func()
	stopWatch func() bool

	mu      sync.Mutex
	value   T
	pending bool
	next    T
	updates int
	since   time.Time
	timer   *time.Timer
	gen     uint64
	closed  bool
}

// New creates a settled cell holding initial.
//
// The cell is closed when ctx is cancelled or Close is called; until then
// subscribers receive a Settled event for every settle.
func New[T any](ctx context.Context, initial T, cfg Config) *Cell[T] {
	cfg = cfg.normalized()
	logger := log.FromContext(ctx)

	obs := newObservers[T](cfg.BufferSize, logger)
	dispatcher := dispatch.New(1, cfg.BufferSize, obs.publish)

	c := newCell("", initial, cfg.Delay, logger, func(ev Settled[T]) bool {
		return dispatcher.Post(context.Background(), ev)
	})
	c.observers = obs
	c.teardown = func() {
		dispatcher.Close()
		obs.closeAll()
	}
	c.stopWatch = context.AfterFunc(ctx, c.Close)

	log.Effect(ctx, log.LogDebug, "created debounce cell", map[string]interface{}{
		"cellId": c.ID,
		"delay":  cfg.Delay,
	})
	return c
}

func newCell[T any](
	key string,
	initial T,
	delay time.Duration,
	logger *zap.Logger,
	post func(Settled[T]) bool,
) *Cell[T] {
	if key != "" {
		logger = logger.With(zap.String("key", key))
	}
	return &Cell[T]{
		ID:     uuid.New().String(),
		key:    key,
		delay:  delay,
		logger: logger,
		post:   post,
		value:  initial,
	}
}

// Value returns the last settled value.
func (c *Cell[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Pending reports whether an update is waiting for its delay to elapse.
func (c *Cell[T]) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Update schedules v to settle after the delay, replacing any value that is
// still pending. The cell is pending when Update returns.
func (c *Cell[T]) Update(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.logger.Debug("update on closed cell ignored", zap.String("cellId", c.ID))
		return
	}

	superseded := c.pending
	c.stopTimerLocked()
	if !superseded {
		c.since = time.Now()
		c.updates = 0
	}
	c.pending = true
	c.next = v
	c.updates++

	gen := c.gen
	c.timer = time.AfterFunc(c.delay, func() {
		c.fire(gen)
	})

	if superseded {
		c.logger.Debug("superseded pending value",
			zap.String("cellId", c.ID),
			zap.Int("updates", c.updates),
		)
	}
}

// Cancel drops the pending value without settling it.
// It reports whether a value was pending.
func (c *Cell[T]) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.pending {
		return false
	}
	c.stopTimerLocked()
	dropped := c.updates
	c.clearPendingLocked()

	c.logger.Debug("cancelled pending value",
		zap.String("cellId", c.ID),
		zap.Int("updates", dropped),
	)
	return true
}

// Flush settles the pending value now instead of waiting for the delay.
// It reports whether a value was pending.
func (c *Cell[T]) Flush() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.pending {
		return false
	}
	c.stopTimerLocked()
	c.settleLocked("flush")
	return true
}

// Subscribe returns a channel receiving every later settle of this cell.
// The channel is closed when the cell is closed.
func (c *Cell[T]) Subscribe() <-chan Settled[T] {
	if c.observers == nil {
		panic("debounce: Subscribe on a group-owned cell, subscribe to the group instead")
	}
	return c.observers.add()
}

// Close drops any pending value, delivers queued settle events and closes
// subscriber channels. It is safe to call more than once.
func (c *Cell[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopTimerLocked()
	dropped := c.pending
	c.clearPendingLocked()
	c.mu.Unlock()

	if c.stopWatch != nil {
		c.stopWatch()
	}
	if c.teardown != nil {
		c.teardown()
	}
	c.logger.Debug("closed debounce cell",
		zap.String("cellId", c.ID),
		zap.Bool("droppedPending", dropped),
	)
}

func (c *Cell[T]) fire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// a superseding Update, Cancel, Flush or Close bumped the generation
	if c.closed || !c.pending || gen != c.gen {
		return
	}
	c.timer = nil
	c.settleLocked("timer")
}

func (c *Cell[T]) settleLocked(cause string) {
	now := time.Now()
	ev := Settled[T]{
		CellID:  c.ID,
		Key:     c.key,
		Value:   c.next,
		Updates: c.updates,
		Window:  windowOf(c.since, now),
	}
	c.value = c.next
	c.clearPendingLocked()

	c.logger.Debug("settled",
		zap.String("cellId", c.ID),
		zap.String("cause", cause),
		zap.Int("updates", ev.Updates),
		zap.Duration("window", now.Sub(c.since)),
	)
	if !c.post(ev) {
		c.logger.Warn("settle event not delivered", zap.String("cellId", c.ID))
	}
}

// stopTimerLocked invalidates the outstanding timer, if any. Bumping the
// generation also covers a timer that already fired and waits for the lock.
func (c *Cell[T]) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Cell[T]) clearPendingLocked() {
	var zero T
	c.pending = false
	c.next = zero
	c.updates = 0
}
