package input

import (
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// Device identifies the hardware source of a pointer event.
type Device int

const (
	DeviceTouch Device = iota
	DeviceMouse
)

// Kind tags an abstract pointer event.
type Kind int

const (
	// KindStart marks the beginning of a gesture at screen coordinates X, Y.
	KindStart Kind = iota
	// KindMove carries a clamped acceleration command in Ddx, Ddy.
	KindMove
	// KindEnd marks the end of a gesture. It is always followed
	// immediately by a zero KindMove so residual acceleration is canceled.
	KindEnd
)

// Event is one abstract pointer event, the unified form of touch and mouse
// hardware events.
type Event struct {
	Kind Kind
	X, Y float64 // KindStart: gesture origin in screen coordinates
	Ddx  float64 // KindMove: acceleration command, in [-MaxDd, MaxDd]
	Ddy  float64
}

// Config tunes the pointer pipeline. MaxDragLength is the only required
// field: it is the screen distance of a full-scale drag.
type Config struct {
	MaxDragLength    float64
	TouchSensitivity float64
	MouseSensitivity float64
	SampleInterval   time.Duration

	// Now is the clock used by the move-sample gates. Defaults to time.Now.
	Now func() time.Time
}

func (c *Config) defaults() {
	if c.TouchSensitivity == 0 {
		c.TouchSensitivity = DefaultTouchSensitivity
	}
	if c.MouseSensitivity == 0 {
		c.MouseSensitivity = DefaultMouseSensitivity
	}
	if c.SampleInterval == 0 {
		c.SampleInterval = DefaultSampleInterval
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

type deviceState struct {
	active  bool
	originX float64
	originY float64

	// gate limits move samples to one per interval. Excess samples are
	// dropped, never queued, which bounds the outbound command rate
	// regardless of how fast the platform fires pointer events.
	gate *rate.Limiter
}

// Pointer unifies touch and mouse events into abstract Events and feeds drag
// displacement through a throttled, clamped command conversion. Both device
// classes stay attached, each with its own sample gate; whichever delivered
// last wins.
type Pointer struct {
	cfg   Config
	touch deviceState
	mouse deviceState
	emit  func(Event)
}

// NewPointer builds a Pointer that calls emit for every abstract event.
func NewPointer(cfg Config, emit func(Event)) (*Pointer, error) {
	if cfg.MaxDragLength <= 0 {
		return nil, errors.New("input: MaxDragLength must be positive")
	}
	cfg.defaults()
	p := &Pointer{cfg: cfg, emit: emit}
	p.touch.gate = rate.NewLimiter(rate.Every(cfg.SampleInterval), 1)
	p.mouse.gate = rate.NewLimiter(rate.Every(cfg.SampleInterval), 1)
	return p, nil
}

// Start records the gesture origin for the device and emits KindStart.
func (p *Pointer) Start(dev Device, x, y float64) {
	s := p.state(dev)
	s.originX, s.originY = x, y
	s.active = true
	p.emit(Event{Kind: KindStart, X: x, Y: y})
}

// Move converts the drag displacement into an acceleration command, at most
// once per sample interval per device. A mouse move without a preceding
// press has no direction and is ignored.
func (p *Pointer) Move(dev Device, x, y float64) {
	s := p.state(dev)
	if dev == DeviceMouse && !s.active {
		return
	}
	if !s.gate.AllowN(p.cfg.Now(), 1) {
		return
	}
	// The avatar pulls opposite the drag, slingshot style, and screen Y
	// grows downward, so both axes invert.
	p.emit(p.command(dev, s.originX-x, s.originY-y))
}

// End closes the gesture: KindEnd, then a synchronous zero command that
// bypasses the sample gate so deceleration never waits for the next tick.
func (p *Pointer) End(dev Device) {
	p.state(dev).active = false
	p.emit(Event{Kind: KindEnd})
	p.emit(Event{Kind: KindMove, Ddx: 0, Ddy: 0})
}

func (p *Pointer) command(dev Device, dispX, dispY float64) Event {
	sens := p.cfg.TouchSensitivity
	if dev == DeviceMouse {
		sens = p.cfg.MouseSensitivity
	}
	return Event{
		Kind: KindMove,
		Ddx:  clamp(sens*dispX/p.cfg.MaxDragLength, -MaxDd, MaxDd),
		Ddy:  clamp(sens*dispY/p.cfg.MaxDragLength, -MaxDd, MaxDd),
	}
}

func (p *Pointer) state(dev Device) *deviceState {
	if dev == DeviceMouse {
		return &p.mouse
	}
	return &p.touch
}

func clamp(v, minv, maxv float64) float64 {
	if v < minv {
		return minv
	}
	if v > maxv {
		return maxv
	}
	return v
}
