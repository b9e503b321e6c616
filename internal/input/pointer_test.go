package input

import (
	"testing"
	"time"
)

// testPointer builds a pointer with a controllable clock and an event
// recorder. Advance the clock through the returned *time.Time.
func testPointer(t *testing.T, cfg Config) (*Pointer, *[]Event, *time.Time) {
	t.Helper()
	now := time.Unix(1000, 0)
	cfg.Now = func() time.Time { return now }
	if cfg.MaxDragLength == 0 {
		cfg.MaxDragLength = 100
	}
	var events []Event
	p, err := NewPointer(cfg, func(ev Event) { events = append(events, ev) })
	if err != nil {
		t.Fatalf("NewPointer failed: %v", err)
	}
	return p, &events, &now
}

func moves(events []Event) []Event {
	var out []Event
	for _, ev := range events {
		if ev.Kind == KindMove {
			out = append(out, ev)
		}
	}
	return out
}

func TestMaxDragLengthRequired(t *testing.T) {
	for _, l := range []float64{0, -10} {
		if _, err := NewPointer(Config{MaxDragLength: l}, func(Event) {}); err == nil {
			t.Errorf("NewPointer with MaxDragLength=%v should fail", l)
		}
	}
}

func TestStartEmitsOrigin(t *testing.T) {
	p, events, _ := testPointer(t, Config{})
	p.Start(DeviceTouch, 40, 60)
	if len(*events) != 1 {
		t.Fatalf("got %d events, want 1", len(*events))
	}
	ev := (*events)[0]
	if ev.Kind != KindStart || ev.X != 40 || ev.Y != 60 {
		t.Errorf("unexpected start event: %+v", ev)
	}
}

func TestMoveScaling(t *testing.T) {
	// MaxDragLength 100, touch sensitivity 25: a 4px drag right and 8px
	// drag down maps to (-1, -2), both axes inverted via slingshot.
	p, events, _ := testPointer(t, Config{})
	p.Start(DeviceTouch, 100, 100)
	p.Move(DeviceTouch, 104, 108)

	mv := moves(*events)
	if len(mv) != 1 {
		t.Fatalf("got %d move events, want 1", len(mv))
	}
	if mv[0].Ddx != -1 || mv[0].Ddy != -2 {
		t.Errorf("got (%v, %v), want (-1, -2)", mv[0].Ddx, mv[0].Ddy)
	}
}

func TestMouseScaling(t *testing.T) {
	// Mouse sensitivity is 125: a 2px drag left and 1px drag up maps to
	// (2.5, 1.25).
	p, events, _ := testPointer(t, Config{})
	p.Start(DeviceMouse, 50, 50)
	p.Move(DeviceMouse, 48, 49)

	mv := moves(*events)
	if len(mv) != 1 {
		t.Fatalf("got %d move events, want 1", len(mv))
	}
	if mv[0].Ddx != 2.5 || mv[0].Ddy != 1.25 {
		t.Errorf("got (%v, %v), want (2.5, 1.25)", mv[0].Ddx, mv[0].Ddy)
	}
}

func TestClampSaturates(t *testing.T) {
	p, events, _ := testPointer(t, Config{})
	p.Start(DeviceTouch, 0, 0)
	p.Move(DeviceTouch, -10000, 10000)

	mv := moves(*events)
	if len(mv) != 1 {
		t.Fatalf("got %d move events, want 1", len(mv))
	}
	if mv[0].Ddx != MaxDd || mv[0].Ddy != -MaxDd {
		t.Errorf("got (%v, %v), want (%v, %v)", mv[0].Ddx, mv[0].Ddy, MaxDd, -MaxDd)
	}
}

func TestMouseMoveWithoutPressIgnored(t *testing.T) {
	p, events, _ := testPointer(t, Config{})
	p.Move(DeviceMouse, 10, 10)
	if len(*events) != 0 {
		t.Errorf("got %d events, want 0", len(*events))
	}

	// After mouse-up the stream goes quiet again.
	p.Start(DeviceMouse, 0, 0)
	p.End(DeviceMouse)
	before := len(moves(*events))
	p.Move(DeviceMouse, 10, 10)
	if got := len(moves(*events)); got != before {
		t.Errorf("move after mouse-up emitted a command")
	}
}

func TestThrottleDropsIntermediateSamples(t *testing.T) {
	p, events, now := testPointer(t, Config{})
	p.Start(DeviceTouch, 0, 0)

	// Three samples inside one interval: only the first passes, the rest
	// are dropped, not queued.
	p.Move(DeviceTouch, -4, 0)
	p.Move(DeviceTouch, -8, 0)
	p.Move(DeviceTouch, -12, 0)

	mv := moves(*events)
	if len(mv) != 1 {
		t.Fatalf("got %d move events in one interval, want 1", len(mv))
	}
	if mv[0].Ddx != 1 {
		t.Errorf("got ddx %v, want 1", mv[0].Ddx)
	}

	*now = now.Add(DefaultSampleInterval + time.Millisecond)
	p.Move(DeviceTouch, -16, 0)
	mv = moves(*events)
	if len(mv) != 2 {
		t.Fatalf("got %d move events after interval, want 2", len(mv))
	}
	if mv[1].Ddx != 4 {
		t.Errorf("got ddx %v, want 4", mv[1].Ddx)
	}
}

func TestThrottleGatesPerDevice(t *testing.T) {
	p, events, _ := testPointer(t, Config{})
	p.Start(DeviceTouch, 0, 0)
	p.Start(DeviceMouse, 0, 0)

	// A mouse sample must not consume the touch gate's window, and vice
	// versa: each device class keeps its own gate.
	p.Move(DeviceMouse, -4, 0)
	p.Move(DeviceTouch, -4, 0)

	mv := moves(*events)
	if len(mv) != 2 {
		t.Fatalf("got %d move events, want one per device", len(mv))
	}
	if mv[0].Ddx != 5 { // mouse gain 125 saturates at the bound
		t.Errorf("mouse ddx = %v, want 5", mv[0].Ddx)
	}
	if mv[1].Ddx != 1 {
		t.Errorf("touch ddx = %v, want 1", mv[1].Ddx)
	}
}

func TestEndEmitsZeroBypassingThrottle(t *testing.T) {
	p, events, _ := testPointer(t, Config{})
	p.Start(DeviceTouch, 0, 0)
	p.Move(DeviceTouch, -20, 0)
	// The gate is still closed for this interval; the end command must
	// not wait for it.
	p.End(DeviceTouch)

	evs := *events
	if len(evs) != 4 {
		t.Fatalf("got %d events, want 4 (start, move, end, zero move)", len(evs))
	}
	if evs[2].Kind != KindEnd {
		t.Errorf("event 2 = %+v, want end", evs[2])
	}
	last := evs[3]
	if last.Kind != KindMove || last.Ddx != 0 || last.Ddy != 0 {
		t.Errorf("event 3 = %+v, want zero move", last)
	}
}
