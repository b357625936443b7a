package clock

import "testing"

type fakeSource struct {
	now    uint64
	delays []uint32
}

func (f *fakeSource) Ticks() uint64 { return f.now }

func (f *fakeSource) Delay(ms uint32) {
	f.delays = append(f.delays, ms)
	f.now += uint64(ms)
}

func TestLimiter_SleepsRemainder(t *testing.T) {
	src := &fakeSource{now: 1000}
	l := NewLimiter(src, 60)

	if l.Budget() != 16 {
		t.Fatalf("expected 16ms budget, got %d", l.Budget())
	}

	src.now += 4 // a fast frame
	if elapsed := l.Wait(); elapsed != 16 {
		t.Errorf("expected 16ms frame, got %d", elapsed)
	}
	if len(src.delays) != 1 || src.delays[0] != 12 {
		t.Errorf("expected a single 12ms delay, got %v", src.delays)
	}
}

func TestLimiter_SlowFrameDoesNotSleep(t *testing.T) {
	src := &fakeSource{}
	l := NewLimiter(src, 60)

	src.now += 40
	if elapsed := l.Wait(); elapsed != 40 {
		t.Errorf("expected 40ms frame, got %d", elapsed)
	}
	if len(src.delays) != 0 {
		t.Errorf("slow frame should not sleep, got %v", src.delays)
	}
}

func TestLimiter_Unlimited(t *testing.T) {
	src := &fakeSource{}
	l := NewLimiter(src, 0)

	src.now += 1
	l.Wait()
	if len(src.delays) != 0 {
		t.Errorf("unlimited limiter should not sleep, got %v", src.delays)
	}
}
