package report

import "sync"

// Submission is one recorded Submit call.
type Submission struct {
	Payload error
	Logs    string
}

// Capture records every submission. Used by tests and by debug tooling
// that wants to inspect what would have been reported.
type Capture struct {
	mu          sync.Mutex
	submissions []Submission
}

// Submit implements Reporter.
func (c *Capture) Submit(payload error, logs string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submissions = append(c.submissions, Submission{Payload: payload, Logs: logs})
}

// Count returns the number of recorded submissions.
func (c *Capture) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.submissions)
}

// Last returns the most recent submission, if any.
func (c *Capture) Last() (Submission, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.submissions) == 0 {
		return Submission{}, false
	}
	return c.submissions[len(c.submissions)-1], true
}
