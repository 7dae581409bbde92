package audio

import "github.com/gopxl/beep"

const sampleRate = beep.SampleRate(48000)

const (
	speakerBufferDurationMs = 100

	eatDurationMs      = 90
	eatFrequencyHz     = 440.0
	specialFrequencyHz = 660.0
	eatDecay           = 18.0
	eatAmplitude       = 0.3

	chirpDurationMs = 160
	chirpLowHz      = 300.0
	chirpHighHz     = 900.0
	chirpAmplitude  = 0.25

	shieldBuzzDurationMs  = 150
	shieldBuzzFrequencyHz = 120.0
	shieldBuzzAmplitude   = 0.2

	crashDurationMs      = 350
	crashRumbleHz        = 80.0
	crashNoiseAmplitude  = 0.25
	crashRumbleAmplitude = 0.3

	beatIntervalMs     = 400 // 150 BPM
	beatKickMs         = 80
	beatKickHz         = 60.0
	beatKickAmplitude  = 0.35
	beatBassHz         = 110.0
	beatBassAmplitude  = 0.12

	chimeNoteMs   = 120
	chimeFirstHz  = 784.0
	chimeSecondHz = 1046.0
)
