package event

import (
	"testing"
	"time"
)

func TestMotionProjection(t *testing.T) {
	tests := []struct {
		name    string
		ev      *Motion
		to      int
		want    []float64
		wantOK  bool
		wantDOF int
	}{
		{
			name:    "identity",
			ev:      NewMotion2(ModNone, LeftButton, 3, 4),
			to:      2,
			want:    []float64{3, 4},
			wantOK:  true,
			wantDOF: 2,
		},
		{
			name:    "widen 1 to 2",
			ev:      NewMotion1(ModNone, Wheel, 5),
			to:      2,
			want:    []float64{5, 0},
			wantOK:  true,
			wantDOF: 2,
		},
		{
			name:    "narrow 6 to 2",
			ev:      NewMotion6(ModNone, LeftButton, 1, 2, 3, 4, 5, 6),
			to:      2,
			want:    []float64{1, 2},
			wantOK:  true,
			wantDOF: 2,
		},
		{
			name:    "narrow 3 to 1",
			ev:      NewMotion3(ModNone, LeftButton, 7, 8, 9),
			to:      1,
			want:    []float64{7},
			wantOK:  true,
			wantDOF: 1,
		},
		{
			name:   "unsupported dof",
			ev:     NewMotion2(ModNone, LeftButton, 1, 2),
			to:     4,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ev.ToDOF(tt.to)
			if ok != tt.wantOK {
				t.Fatalf("ToDOF(%d) ok = %v, want %v", tt.to, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.DOF() != tt.wantDOF {
				t.Errorf("DOF = %d, want %d", got.DOF(), tt.wantDOF)
			}
			for i, want := range tt.want {
				if got.Delta(i) != want {
					t.Errorf("Delta(%d) = %g, want %g", i, got.Delta(i), want)
				}
			}
			// Axes beyond the projection must be zero.
			for i := tt.wantDOF; i < MaxDOF; i++ {
				if got.Delta(i) != 0 {
					t.Errorf("Delta(%d) = %g, want 0", i, got.Delta(i))
				}
			}
		})
	}
}

func TestMotionProjectionCarriesPrev(t *testing.T) {
	prev := NewMotion6(ModNone, LeftButton, 1, 1, 1, 1, 1, 1)
	ev := NewMotion6(ModNone, LeftButton, 2, 3, 4, 5, 6, 7).WithPrev(prev)

	got, ok := ev.DOF2()
	if !ok {
		t.Fatal("DOF2() failed")
	}
	if got.Prev() == nil {
		t.Fatal("projection dropped previous event")
	}
	if got.Prev().DOF() != 2 {
		t.Errorf("prev DOF = %d, want 2", got.Prev().DOF())
	}
}

func TestMotionSpeedAndDelay(t *testing.T) {
	prev := NewMotion2(ModNone, LeftButton, 0, 0)
	ev := NewMotion2(ModNone, LeftButton, 3, 4).WithPrev(prev)
	// Fix the window to a known gap.
	ev.attrs.time = prev.attrs.time.Add(100 * time.Millisecond)

	if got := ev.Delay(); got != 100*time.Millisecond {
		t.Errorf("Delay = %v, want 100ms", got)
	}
	if got := ev.Distance(); got != 5 {
		t.Errorf("Distance = %g, want 5", got)
	}
	if got := ev.Speed(); got != 50 {
		t.Errorf("Speed = %g, want 50", got)
	}
}

func TestMotionSpeedWithoutWindow(t *testing.T) {
	ev := NewMotion2(ModNone, LeftButton, 3, 4)
	if got := ev.Delay(); got != 0 {
		t.Errorf("Delay = %v, want 0", got)
	}
	if got := ev.Speed(); got != 0 {
		t.Errorf("Speed = %g, want 0", got)
	}
}

func TestMotionCloneDetached(t *testing.T) {
	prev := NewMotion2(ModNone, LeftButton, 1, 1)
	ev := NewMotion2(ModShift, LeftButton, 2, 2).WithPrev(prev)

	cp := ev.Clone()
	if cp == ev {
		t.Fatal("Clone returned the same instance")
	}
	if cp.Prev() == prev {
		t.Error("Clone shares the previous event")
	}
	if !cp.Equals(ev) {
		t.Error("Clone is not equal to the original")
	}
}

func TestMotionFlush(t *testing.T) {
	ev := NewMotion2(ModNone, LeftButton, 1, 2)
	fl := ev.Flush()
	if ev.Flushed() {
		t.Error("Flush mutated the original")
	}
	if !fl.Flushed() {
		t.Error("flushed copy not marked")
	}
	if !fl.Equals(ev) {
		t.Error("flushed copy differs from original")
	}
}

func TestMotionEqualityIgnoresTimestamp(t *testing.T) {
	a := NewMotion2(ModCtrl, RightButton, 1, 2)
	b := NewMotion2(ModCtrl, RightButton, 1, 2)
	b.attrs.time = a.attrs.time.Add(time.Second)
	if !a.Equals(b) {
		t.Error("events differing only in timestamp must be equal")
	}
}
