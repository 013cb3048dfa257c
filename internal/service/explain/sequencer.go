package explain

import "sync/atomic"

// Sequencer issues monotonically increasing request ids so consumers can
// discard results superseded by a later selection (last-request-wins).
type Sequencer struct {
	counter atomic.Uint64
}

// Next returns the next request id. Ids start at 1.
func (s *Sequencer) Next() uint64 {
	return s.counter.Add(1)
}

// IsCurrent reports whether the given id is the latest one issued.
func (s *Sequencer) IsCurrent(seq uint64) bool {
	return seq == s.counter.Load()
}
