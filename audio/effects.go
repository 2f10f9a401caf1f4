package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/arcade-siege/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// waveSample evaluates one period of the wave at phase in [0, 1)
func waveSample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveTriangle:
		return 1.0 - 4.0*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// sweep is an oscillator whose frequency and gain ramp exponentially over its duration
type sweep struct {
	wave               WaveType
	startHz, endHz     float64
	startGain, endGain float64
	phase              float64
	position           int
	total              int
	rate               beep.SampleRate
}

// NewSweep creates a finite oscillator ramping startHz -> endHz while gain decays to the floor
func NewSweep(wave WaveType, startHz, endHz, gain float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		wave:      wave,
		startHz:   startHz,
		endHz:     endHz,
		startGain: gain,
		endGain:   constants.SoundFloorGain,
		total:     rate.N(duration),
		rate:      rate,
	}
}

// NewTone creates a finite fixed-frequency oscillator at unity gain
func NewTone(wave WaveType, hz float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		wave:      wave,
		startHz:   hz,
		endHz:     hz,
		startGain: 1,
		endGain:   1,
		total:     rate.N(duration),
		rate:      rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		frac := float64(s.position) / float64(s.total)
		freq := s.startHz * math.Pow(s.endHz/s.startHz, frac)
		gain := s.startGain * math.Pow(s.endGain/s.startGain, frac)

		val := gain * waveSample(s.wave, s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase) // Keep in [0, 1)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if rem := e.totalSamples - e.position; len(samples) > rem {
		samples = samples[:rem]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note builds one enveloped square note for the arpeggios
func note(hz float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(WaveSquare, hz, duration, rate), duration, attack, release, rate)
}

// Sound effect generators

// CreateShootSound generates the falling square blip for a shot
func CreateShootSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := NewSweep(WaveSquare, constants.ShootSoundStartHz, constants.ShootSoundEndHz,
		constants.ShootSoundGain, constants.ShootSoundDuration, rate)
	return newVolume(s, cfg.volume(SoundShoot))
}

// CreateExplosionSound generates a low sawtooth rumble
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := NewSweep(WaveSaw, constants.ExplosionSoundStartHz, constants.ExplosionSoundEndHz,
		constants.ExplosionSoundGain, constants.ExplosionSoundDuration, rate)
	return newVolume(s, cfg.volume(SoundExplosion))
}

// CreateGameOverSound generates a long descending sine
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := NewSweep(WaveSine, constants.GameOverSoundStartHz, constants.GameOverSoundEndHz,
		constants.GameOverSoundGain, constants.GameOverSoundDuration, rate)
	return newVolume(s, cfg.volume(SoundGameOver))
}

// CreateBonusSound generates a short bell-like ping when a bonus target appears
func CreateBonusSound(cfg *AudioConfig) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, constants.BonusSoundHz)
	if err != nil {
		return nil, fmt.Errorf("bonus tone: %w", err)
	}
	d := constants.BonusSoundDuration
	shaped := NewEnvelope(beep.Take(rate.N(d), tone), d, constants.BonusSoundAttack, constants.BonusSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundBonus)*0.5), nil
}

// CreateUpgradeSound generates a rising C-major arpeggio
func CreateUpgradeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, hz := range notes {
		seq = append(seq, note(hz, constants.UpgradeNoteDuration, constants.UpgradeNoteAttack, constants.UpgradeNoteRelease, rate))
	}
	return newVolume(beep.Seq(seq...), cfg.volume(SoundUpgrade)*0.3)
}

// CreateFanfareSound generates the level-cleared fanfare
func CreateFanfareSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{392.00, 523.25, 659.25, 783.99, 1046.50}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, hz := range notes {
		seq = append(seq, note(hz, constants.FanfareNoteDuration, constants.FanfareNoteAttack, constants.FanfareNoteRelease, rate))
	}
	return newVolume(beep.Seq(seq...), cfg.volume(SoundFanfare)*0.3)
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) (beep.Streamer, error) {
	switch soundType {
	case SoundShoot:
		return CreateShootSound(cfg), nil
	case SoundExplosion:
		return CreateExplosionSound(cfg), nil
	case SoundGameOver:
		return CreateGameOverSound(cfg), nil
	case SoundBonus:
		return CreateBonusSound(cfg)
	case SoundUpgrade:
		return CreateUpgradeSound(cfg), nil
	case SoundFanfare:
		return CreateFanfareSound(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, soundType)
	}
}
