package controller

// AirborneTracker records the highest elevation reached during the current
// airborne span.
type AirborneTracker struct {
	peak float64
}

// Update must run once per frame after contacts are sampled. The peak is not
// reset on the landing frame so the fall distance can still be read.
func (t *AirborneTracker) Update(grounded, wasGrounded bool, y float64) {
	if grounded && wasGrounded {
		t.peak = y
		return
	}
	if wasGrounded && !grounded {
		t.peak = y
	}
	if !grounded && y > t.peak {
		t.peak = y
	}
}

func (t *AirborneTracker) Peak() float64 {
	return t.peak
}

// Reset pins the tracker to y, used when the body is placed.
func (t *AirborneTracker) Reset(y float64) {
	t.peak = y
}
