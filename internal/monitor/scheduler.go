package monitor

import "time"

// RefreshInterval is how often the process table is re-snapshotted.
const RefreshInterval = time.Second

// Scheduler tracks when the next refresh is due. It never fires more than
// once per check, however late the check is.
type Scheduler struct {
	interval time.Duration
	last     time.Time
}

// NewScheduler returns a scheduler whose last refresh happened at now.
func NewScheduler(interval time.Duration, now time.Time) *Scheduler {
	return &Scheduler{interval: interval, last: now}
}

// Remaining is how long the loop may block waiting for input before the next
// refresh is due. It is zero once a refresh is overdue.
func (s *Scheduler) Remaining(now time.Time) time.Duration {
	return max(s.interval-now.Sub(s.last), 0)
}

// Due reports whether a full interval has elapsed since the last refresh.
func (s *Scheduler) Due(now time.Time) bool {
	return now.Sub(s.last) >= s.interval
}

// Reset records a refresh at now.
func (s *Scheduler) Reset(now time.Time) {
	s.last = now
}
