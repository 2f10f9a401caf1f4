package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot     SoundType = iota // Accepted fire command
	SoundExplosion                  // Enemy, bonus or player destroyed
	SoundGameOver                   // Session ended
	SoundBonus                      // Bonus target entered the field
	SoundUpgrade                    // Weapon upgrade applied
	SoundFanfare                    // Level cleared
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShoot:     "shoot",
	SoundExplosion: "explosion",
	SoundGameOver:  "gameOver",
	SoundBonus:     "bonusSpawned",
	SoundUpgrade:   "weaponUpgrade",
	SoundFanfare:   "fanfare",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a configuration key back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio output not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
