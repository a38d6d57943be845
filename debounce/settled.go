package debounce

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Settled is published each time a cell commits a pending value.
type Settled[T any] struct {
	CellID  string
	Key     string // group key; empty for standalone cells
	Value   T
	Updates int               // updates coalesced into this settle
	Window  timespan.TimeSpan // from the first update of the burst to the settle
}

// PartitionKey keeps the events of one cell on one dispatcher worker.
func (s Settled[T]) PartitionKey() string {
	if s.Key != "" {
		return s.Key
	}
	return s.CellID
}

func windowOf(from, to time.Time) timespan.TimeSpan {
	return timespan.BetweenTimes(from, to)
}
