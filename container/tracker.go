package container

// Tracker counts allocations a container currently holds (backing buffers
// and live records). Attach one with Instrument to verify teardown in
// tests; a nil *Tracker disables counting entirely, so release builds pay
// nothing.
type Tracker struct {
	Live int
}

func (t *Tracker) acquire() {
	if t != nil {
		t.Live++
	}
}

func (t *Tracker) release() {
	if t != nil {
		t.Live--
	}
}

func (t *Tracker) add(n int) {
	if t != nil {
		t.Live += n
	}
}
