package dispatch

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Partitionable routes a message to a worker. Messages with the same
// partition key are handled by the same worker, in posting order.
type Partitionable interface {
	PartitionKey() string
}

// Dispatcher fans messages out to a fixed set of worker goroutines.
// With one worker it behaves as a single ordered queue.
type Dispatcher[T Partitionable] struct {
	chs    []chan T
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// New starts numWorkers workers, each with its own buffered channel, running handleFn.
// Non-positive sizes are normalized to 1.
func New[T Partitionable](numWorkers, bufferSize int, handleFn func(T)) *Dispatcher[T] {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	d := &Dispatcher[T]{chs: make([]chan T, numWorkers)}
	ready := sync.WaitGroup{}
	for i := range d.chs {
		ch := make(chan T, bufferSize)
		d.chs[i] = ch
		ready.Add(1)
		d.wg.Add(1)
		go func(ch chan T) {
			defer d.wg.Done()
			ready.Done()
			for msg := range ch {
				handleFn(msg)
			}
		}(ch)
	}
	ready.Wait()
	return d
}

// Post enqueues msg on the worker owning its partition.
// It reports false if the dispatcher is closed or ctx ends first.
func (d *Dispatcher[T]) Post(ctx context.Context, msg T) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case d.chs[indexOf(msg, len(d.chs))] <- msg:
		return true
	}
}

// Close stops accepting messages, lets the workers drain what is queued and
// waits for them to exit. Calling Close more than once is harmless.
func (d *Dispatcher[T]) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.chs {
		close(ch)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// NumWorkers returns the number of partitions.
func (d *Dispatcher[T]) NumWorkers() int {
	return len(d.chs)
}

func hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

func indexOf(msg Partitionable, numChs int) int {
	switch numChs {
	case 0:
		panic("number of channels cannot be 0")
	case 1:
		return 0
	default:
		return int(hash(msg.PartitionKey()) % uint64(numChs))
	}
}
