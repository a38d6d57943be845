// Package debounce provides a debounced value cell.
//
// A Cell holds a settled value and a pending flag. Update schedules the new
// value to settle after the configured delay; another Update before the delay
// elapses replaces the scheduled value and restarts the delay, so a burst of
// updates settles once, with the last value of the burst. A cell never has
// more than one timer outstanding.
//
// Reads (Value, Pending) are synchronous. Settle events are published to
// subscribers in settle order by a dispatcher goroutine, so a slow subscriber
// never stalls the cell.
//
// Example:
//
//	ctx, cancel := context.WithCancel(ctx)
//	defer cancel() // closes the cell
//
//	query := debounce.New(ctx, "", debounce.NewConfig(300*time.Millisecond, 0, 0))
//	for ev := range query.Subscribe() {
//	    search(ev.Value)
//	}
//
// Group keeps one independent cell per key, for example one per input field.
package debounce
