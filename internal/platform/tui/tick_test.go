package tui

import "testing"

func TestFrameCmdToleratesBadRates(t *testing.T) {
	// --fps accepts any integer; a zero or negative rate must fall back to
	// the default instead of dividing by zero.
	for _, fps := range []int{0, -1, 1, 60, 240} {
		if cmd := frameCmd(fps); cmd == nil {
			t.Errorf("frameCmd(%d) returned nil command", fps)
		}
	}
}
