package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays short movement cues
// Every method is safe to call before Initialize or after a failed one; the
// game runs without audio in that case
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	toneHz      float64
	toneLength  time.Duration
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
// volume is a base-2 exponent, 0 plays at unity gain
func NewSoundManager(volume, toneHz float64, toneLength time.Duration) *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		volume:     volume,
		toneHz:     toneHz,
		toneLength: toneLength,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences cues without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlayStep plays a short sine blip when an entity starts moving
func (sm *SoundManager) PlayStep() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer, err := sm.stepStreamer()
	if err != nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// stepStreamer builds the cue: a sine tone cut to toneLength at the configured volume
func (sm *SoundManager) stepStreamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, sm.toneHz)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(sm.toneLength), sine),
		Base:     2,
		Volume:   sm.volume,
	}, nil
}
