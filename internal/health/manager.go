package health

import (
	"context"
	"sync"
	"time"
)

// DefaultTimeout is the per-check budget of `accountctl doctor`.
const DefaultTimeout = 5 * time.Second

// Manager holds the doctor's checkers. It is built once per command, so
// registration is not synchronised with Check.
type Manager struct {
	checkers []Checker
	timeout  time.Duration
}

func NewManager() *Manager {
	return &Manager{timeout: DefaultTimeout}
}

// WithTimeout replaces the per-check timeout. Non-positive values are ignored.
func (m *Manager) WithTimeout(d time.Duration) *Manager {
	if d > 0 {
		m.timeout = d
	}
	return m
}

func (m *Manager) AddChecker(c Checker) {
	m.checkers = append(m.checkers, c)
}

// Check runs every checker concurrently. Results come back in the order the
// checkers were added, named after their checker, with a nil result counted
// as unhealthy.
func (m *Manager) Check(ctx context.Context) []*Result {
	results := make([]*Result, len(m.checkers))

	var wg sync.WaitGroup
	wg.Add(len(m.checkers))
	for i, c := range m.checkers {
		go func() {
			defer wg.Done()
			results[i] = m.run(ctx, c)
		}()
	}
	wg.Wait()

	return results
}

func (m *Manager) run(ctx context.Context, c Checker) *Result {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()
	r := c.Check(ctx)
	if r == nil {
		r = Unhealthy("check returned no result")
	}
	if r.Latency == 0 {
		r.Latency = time.Since(start)
	}
	r.Name = c.Name()
	return r
}
