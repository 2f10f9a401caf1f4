package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the master gain at unity effect volume
	DefaultMasterVolume = 0.7
)

// Shoot Sound: square sweep 800Hz -> 100Hz
const (
	ShootSoundDuration = 150 * time.Millisecond
	ShootSoundStartHz  = 800.0
	ShootSoundEndHz    = 100.0
	ShootSoundGain     = 0.3
)

// Explosion Sound: sawtooth sweep 300Hz -> 50Hz
const (
	ExplosionSoundDuration = 300 * time.Millisecond
	ExplosionSoundStartHz  = 300.0
	ExplosionSoundEndHz    = 50.0
	ExplosionSoundGain     = 0.5
)

// Game Over Sound: slow sine fall 400Hz -> 100Hz
const (
	GameOverSoundDuration = 1500 * time.Millisecond
	GameOverSoundStartHz  = 400.0
	GameOverSoundEndHz    = 100.0
	GameOverSoundGain     = 0.5
)

// Bonus Spawned Chime
const (
	BonusSoundDuration = 250 * time.Millisecond
	BonusSoundAttack   = 5 * time.Millisecond
	BonusSoundRelease  = 200 * time.Millisecond
	BonusSoundHz       = 880.0
)

// Weapon Upgrade Arpeggio
const (
	UpgradeNoteDuration = 70 * time.Millisecond
	UpgradeNoteAttack   = 5 * time.Millisecond
	UpgradeNoteRelease  = 40 * time.Millisecond
)

// Level Complete Fanfare
const (
	FanfareNoteDuration = 160 * time.Millisecond
	FanfareNoteAttack   = 10 * time.Millisecond
	FanfareNoteRelease  = 80 * time.Millisecond
)

// Ambience Loop: triangle arpeggio stepping every quarter second
const (
	AmbienceStepDuration = 250 * time.Millisecond
	AmbienceGain         = 0.1
)

// SoundFloorGain is the gain an exponential ramp decays to, matching a -40dB tail
const SoundFloorGain = 0.01
