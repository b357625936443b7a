// Package clock paces the frame loop against a millisecond tick source.
package clock

// Source is a monotonic millisecond clock that can sleep.
type Source interface {
	Ticks() uint64
	Delay(ms uint32)
}

// Limiter holds the frame rate at or below a target by sleeping off the
// unused part of each frame's budget.
type Limiter struct {
	src    Source
	budget uint64 // ms per frame, 0 = unlimited
	last   uint64
}

// NewLimiter creates a limiter for fps frames per second. fps <= 0 disables
// the limit.
func NewLimiter(src Source, fps int) *Limiter {
	l := &Limiter{src: src, last: src.Ticks()}
	if fps > 0 {
		l.budget = uint64(1000 / fps)
	}
	return l
}

// Budget returns the per-frame budget in ms.
func (l *Limiter) Budget() uint64 {
	return l.budget
}

// Wait sleeps until the current frame has used its budget and returns the
// ms elapsed since the previous Wait, sleep included.
func (l *Limiter) Wait() uint64 {
	now := l.src.Ticks()
	if spent := now - l.last; spent < l.budget {
		l.src.Delay(uint32(l.budget - spent))
		now = l.src.Ticks()
	}
	elapsed := now - l.last
	l.last = now
	return elapsed
}
