package monitoring

import (
	"sync"
	"time"
)

// A ProgressBar tracks how much of a known work budget has completed, such
// as the control steps of a simulation run. The monitor serves all live bars
// on /api/progress.
type ProgressBar struct {
	sync.Mutex
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	Total     uint64    `json:"total"`
	Finished  uint64    `json:"finished"`
}

// IncrementFinished adds completed work items to the bar.
func (b *ProgressBar) IncrementFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.Finished += amount
}

// Done reports whether the whole work budget has completed.
func (b *ProgressBar) Done() bool {
	b.Lock()
	defer b.Unlock()

	return b.Finished >= b.Total
}
