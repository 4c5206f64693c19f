package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame loop interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the per-frame delta fed to systems after a stall
	MaxFrameDelta = 100 * time.Millisecond

	// EventChannelSize buffers terminal events between the poll goroutine and the frame loop
	EventChannelSize = 100
)
