package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/arcade-siege/audio"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/engine"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the file
const (
	EnvAudioEnabled = "ARCADE_SIEGE_AUDIO_ENABLED"
	EnvMasterVolume = "ARCADE_SIEGE_MASTER_VOLUME" // 0-100
	EnvSFXVolumes   = "ARCADE_SIEGE_SFX_VOLUMES"   // JSON object, sound name to 0.0-1.0
	EnvSeed         = "ARCADE_SIEGE_SEED"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the host configuration
type Config struct {
	TickRate        int         `yaml:"tick_rate"` // Ticks per second
	Seed            int64       `yaml:"seed"`      // 0 picks a time-based seed
	EnemyFireChance *float64    `yaml:"enemy_fire_chance"`
	Audio           AudioConfig `yaml:"audio"`
}

// AudioConfig is the audio section; pointers distinguish "unset" from zero
type AudioConfig struct {
	Enabled       *bool              `yaml:"enabled"`
	MasterVolume  *float64           `yaml:"master_volume"`
	SampleRate    int                `yaml:"sample_rate"`
	EffectVolumes map[string]float64 `yaml:"effect_volumes"`
}

// Default returns the stock configuration
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML file at path, fills defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyDefaults(cfg)
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.TickRate == 0 {
		cfg.TickRate = int(time.Second / constants.TickInterval)
	}
	if cfg.EnemyFireChance == nil {
		v := constants.EnemyFireChance
		cfg.EnemyFireChance = &v
	}
	if cfg.Audio.Enabled == nil {
		v := true
		cfg.Audio.Enabled = &v
	}
	if cfg.Audio.MasterVolume == nil {
		v := constants.DefaultMasterVolume
		cfg.Audio.MasterVolume = &v
	}
	if cfg.Audio.SampleRate == 0 {
		cfg.Audio.SampleRate = constants.AudioSampleRate
	}
	if cfg.Audio.EffectVolumes == nil {
		cfg.Audio.EffectVolumes = make(map[string]float64)
	}
}

// applyEnv overrides file values from the environment; malformed values are errors
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvAudioEnabled, v, err)
		}
		cfg.Audio.Enabled = &enabled
	}

	// Master volume is given as 0-100 and clamped
	if v := os.Getenv(EnvMasterVolume); v != "" {
		pct, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvMasterVolume, v, err)
		}
		vol := float64(pct) / 100.0
		if vol < 0 {
			vol = 0
		}
		if vol > 1 {
			vol = 1
		}
		cfg.Audio.MasterVolume = &vol
	}

	if v := os.Getenv(EnvSFXVolumes); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvSFXVolumes, err)
		}
		for name, vol := range volumes {
			cfg.Audio.EffectVolumes[name] = vol
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	return nil
}

func (c *Config) validate() error {
	if c.TickRate < 1 || c.TickRate > 1000 {
		return fmt.Errorf("%w: tick_rate %d out of range [1, 1000]", ErrInvalidConfig, c.TickRate)
	}
	if p := *c.EnemyFireChance; p < 0 || p > 1 {
		return fmt.Errorf("%w: enemy_fire_chance %v out of range [0, 1]", ErrInvalidConfig, p)
	}
	for name := range c.Audio.EffectVolumes {
		if _, ok := audio.ParseSoundType(name); !ok {
			return fmt.Errorf("%w: unknown sound %q", ErrInvalidConfig, name)
		}
	}
	if err := c.AudioSettings().Validate(); err != nil {
		return fmt.Errorf("%w: audio: %v", ErrInvalidConfig, err)
	}
	return nil
}

// TickInterval returns the simulation tick interval
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Tuning returns the simulation parameters
func (c *Config) Tuning() engine.Tuning {
	return engine.Tuning{
		EnemyFireChance: *c.EnemyFireChance,
		Seed:            c.Seed,
	}
}

// AudioSettings converts the audio section for the sound manager
func (c *Config) AudioSettings() *audio.AudioConfig {
	out := audio.DefaultAudioConfig()
	out.Enabled = *c.Audio.Enabled
	out.MasterVolume = *c.Audio.MasterVolume
	out.SampleRate = c.Audio.SampleRate
	for name, vol := range c.Audio.EffectVolumes {
		if st, ok := audio.ParseSoundType(name); ok {
			out.EffectVolumes[st] = vol
		}
	}
	return out
}
