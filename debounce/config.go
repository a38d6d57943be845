package debounce

import "time"

const (
	DefaultDelay      = 250 * time.Millisecond
	DefaultBufferSize = 16
	DefaultNumWorkers = 1
)

// Config sizes a cell or a group.
type Config struct {
	Delay      time.Duration // default: 250ms
	BufferSize int           // default: 16, per subscriber and per dispatcher queue
	NumWorkers int           // default: 1, dispatcher partitions used by Group
}

// NewConfig returns a Config with non-positive values replaced by defaults.
func NewConfig(delay time.Duration, bufferSize, numWorkers int) Config {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if numWorkers <= 0 {
		numWorkers = DefaultNumWorkers
	}
	return Config{
		Delay:      delay,
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

func (c Config) normalized() Config {
	return NewConfig(c.Delay, c.BufferSize, c.NumWorkers)
}
