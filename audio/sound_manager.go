package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// SoundManager owns the speaker and a single mixer all cues are added to
// Every Play call is a no-op until Initialize succeeds, so the game runs silently without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	beat        *beep.Ctrl // Mini-game loop, nil when not running
	initialized bool
	muted       bool
	log         zerolog.Logger
}

// NewSoundManager creates a silent manager
func NewSoundManager(logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		log:   logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDurationMs*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug().Int("sample_rate", int(sampleRate)).Msg("speaker initialized")
	return nil
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.stopBeat()
	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether cues reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// SetMuted toggles output without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if muted {
		sm.stopBeat()
	}
}

// stopBeat detaches the mini-game loop; caller holds sm.mu
// A Ctrl without a streamer reports drained, so the mixer drops it
func (sm *SoundManager) stopBeat() {
	if sm.beat == nil {
		return
	}
	speaker.Lock()
	sm.beat.Streamer = nil
	speaker.Unlock()
	sm.beat = nil
}

// add queues a one-shot streamer
func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayEat plays the food pickup blip, brighter for special food
func (sm *SoundManager) PlayEat(special bool) {
	freq := eatFrequencyHz
	if special {
		freq = specialFrequencyHz
	}
	sm.add(beep.Take(sampleRate.N(eatDurationMs*time.Millisecond), NewToneGenerator(sampleRate, freq, eatDecay)))
}

// PlayPowerUp plays the rising chirp for collecting a power-up
func (sm *SoundManager) PlayPowerUp() {
	sm.add(beep.Take(sampleRate.N(chirpDurationMs*time.Millisecond),
		NewSweepGenerator(sampleRate, chirpLowHz, chirpHighHz, chirpDurationMs*time.Millisecond)))
}

// PlayActivate plays the falling chirp for activating a held power-up
func (sm *SoundManager) PlayActivate() {
	sm.add(beep.Take(sampleRate.N(chirpDurationMs*time.Millisecond),
		NewSweepGenerator(sampleRate, chirpHighHz, chirpLowHz, chirpDurationMs*time.Millisecond)))
}

// PlayShield plays the low buzz of an absorbed collision
func (sm *SoundManager) PlayShield() {
	sm.add(beep.Take(sampleRate.N(shieldBuzzDurationMs*time.Millisecond), NewBuzzGenerator(sampleRate, shieldBuzzFrequencyHz)))
}

// PlayCollision plays the crash noise
func (sm *SoundManager) PlayCollision() {
	sm.add(beep.Take(sampleRate.N(crashDurationMs*time.Millisecond), NewCrashGenerator(sampleRate, time.Now().UnixNano())))
}

// StartMiniGame loops the mini-game beat until StopMiniGame
func (sm *SoundManager) StartMiniGame() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	if sm.beat != nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewBeatGenerator(sampleRate), Paused: false}
	sm.beat = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMiniGame stops the beat; bonus adds the completion chime
func (sm *SoundManager) StopMiniGame(bonus bool) {
	sm.mu.Lock()
	sm.stopBeat()
	sm.mu.Unlock()

	if bonus {
		sm.add(beep.Seq(
			beep.Take(sampleRate.N(chimeNoteMs*time.Millisecond), NewToneGenerator(sampleRate, chimeFirstHz, eatDecay)),
			beep.Take(sampleRate.N(chimeNoteMs*time.Millisecond), NewToneGenerator(sampleRate, chimeSecondHz, eatDecay)),
		))
	}
}
