package debounce

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/on-the-ground/pure_ive_go/internal/dispatch"
	"github.com/on-the-ground/pure_ive_go/log"
	"go.uber.org/zap"
)

// Group owns one independent cell per key. Cells are created on their first
// Update and share nothing but the dispatcher that publishes their settles.
// Settles of one key reach subscribers in order.
type Group[T any] struct {
	ID string

	cfg        Config
	initial    T
	logger     *zap.Logger
	dispatcher *dispatch.Dispatcher[Settled[T]]
	observers  *observers[T]
	stopWatch  func() bool

	mu     sync.Mutex
	cells  map[string]*Cell[T]
	closed bool
}

// NewGroup creates an empty group whose cells start from initial.
// The group is closed when ctx is cancelled or Close is called.
func NewGroup[T any](ctx context.Context, initial T, cfg Config) *Group[T] {
	cfg = cfg.normalized()
	logger := log.FromContext(ctx)
	obs := newObservers[T](cfg.BufferSize, logger)

	g := &Group[T]{
		ID:         uuid.New().String(),
		cfg:        cfg,
		initial:    initial,
		logger:     logger,
		dispatcher: dispatch.New(cfg.NumWorkers, cfg.BufferSize, obs.publish),
		observers:  obs,
		cells:      map[string]*Cell[T]{},
	}
	g.stopWatch = context.AfterFunc(ctx, g.Close)

	log.Effect(ctx, log.LogDebug, "created debounce group", map[string]interface{}{
		"groupId":    g.ID,
		"delay":      cfg.Delay,
		"numWorkers": cfg.NumWorkers,
	})
	return g
}

// Update schedules v for the cell under key, creating the cell if needed.
func (g *Group[T]) Update(key string, v T) {
	c := g.cell(key, true)
	if c == nil {
		g.logger.Debug("update on closed group ignored", zap.String("groupId", g.ID), zap.String("key", key))
		return
	}
	c.Update(v)
}

// Value returns the settled value under key. It reports false, with the
// group's initial value, for keys that were never updated.
func (g *Group[T]) Value(key string) (T, bool) {
	if c := g.cell(key, false); c != nil {
		return c.Value(), true
	}
	return g.initial, false
}

func (g *Group[T]) Pending(key string) bool {
	if c := g.cell(key, false); c != nil {
		return c.Pending()
	}
	return false
}

func (g *Group[T]) Cancel(key string) bool {
	if c := g.cell(key, false); c != nil {
		return c.Cancel()
	}
	return false
}

func (g *Group[T]) Flush(key string) bool {
	if c := g.cell(key, false); c != nil {
		return c.Flush()
	}
	return false
}

// Keys lists the keys that have a cell, in ascending order.
func (g *Group[T]) Keys() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Sorted(maps.Keys(g.cells))
}

// Subscribe returns a channel receiving the settles of every cell in the group.
func (g *Group[T]) Subscribe() <-chan Settled[T] {
	return g.observers.add()
}

// Close closes every cell, delivers queued settle events and closes
// subscriber channels. It is safe to call more than once.
func (g *Group[T]) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	cells := slices.Collect(maps.Values(g.cells))
	g.mu.Unlock()

	for _, c := range cells {
		c.Close()
	}
	g.stopWatch()
	g.dispatcher.Close()
	g.observers.closeAll()
	g.logger.Debug("closed debounce group", zap.String("groupId", g.ID), zap.Int("cells", len(cells)))
}

func (g *Group[T]) cell(key string, create bool) *Cell[T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.cells[key]; ok || !create {
		return c
	}
	if g.closed {
		return nil
	}
	c := newCell(key, g.initial, g.cfg.Delay, g.logger, func(ev Settled[T]) bool {
		return g.dispatcher.Post(context.Background(), ev)
	})
	g.cells[key] = c
	return c
}
