package parameter

import (
	"time"
)

// Player Entity
const (
	// PlayerName labels the locally controlled entity in logs and status line
	PlayerName = "player"

	// PlayerGlyph is the character used to render the player
	PlayerGlyph = '@'

	// PlayerSpeedFactor is the default displacement per second per held direction
	PlayerSpeedFactor = 1.0

	// PlayerSpeedStep is the speed change applied by the +/- keys
	PlayerSpeedStep = 0.5

	// PlayerSpeedMax bounds runtime speed edits
	PlayerSpeedMax = 100.0
)

// Input
const (
	// KeyInitialHold keeps a fresh press held until terminal autorepeat starts
	KeyInitialHold = 700 * time.Millisecond
	// KeyHoldTimeout is how long a key stays held after its last repeat
	KeyHoldTimeout = 150 * time.Millisecond
)

// Audio
const (
	// StepToneHz is the frequency of the movement-start blip
	StepToneHz = 660.0

	// StepToneDuration is the length of the movement-start blip
	StepToneDuration = 40 * time.Millisecond

	// AudioVolume is the default beep volume exponent (base 2), 0 = unity
	AudioVolume = -1.0
)
