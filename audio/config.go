package audio

import (
	"fmt"

	"github.com/lixenwraith/arcade-siege/constants"
)

// AudioConfig holds output and mixing settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at the default master volume with unity effect volumes
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:       true,
		MasterVolume:  constants.DefaultMasterVolume,
		SampleRate:    constants.AudioSampleRate,
		EffectVolumes: make(map[SoundType]float64, soundTypeCount),
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		cfg.EffectVolumes[st] = 1.0
	}
	return cfg
}

// Validate rejects volumes outside [0, 1] and non-positive sample rates
func (c *AudioConfig) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("master volume %.2f out of range [0, 1]", c.MasterVolume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d must be positive", c.SampleRate)
	}
	for st, v := range c.EffectVolumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s volume %.2f out of range [0, 1]", st, v)
		}
	}
	return nil
}

// volume returns the effective gain of a sound; unlisted effects play at unity
func (c *AudioConfig) volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
