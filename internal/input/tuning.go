package input

import "time"

// Control tuning. These are the defaults applied by Config; the zero Config
// plus a MaxDragLength is a playable setup.
const (
	// MaxDd bounds the acceleration command on each axis. Values beyond
	// the bound saturate, they are never dropped.
	MaxDd = 5.0

	// Per-device gain. A touch drag spans most of the screen, a mouse
	// drag rarely does, so the mouse gets a higher gain.
	DefaultTouchSensitivity = 5 * MaxDd
	DefaultMouseSensitivity = 25 * MaxDd

	// DefaultSampleInterval is the minimum spacing between forwarded move
	// samples (~30 Hz).
	DefaultSampleInterval = 33 * time.Millisecond
)
