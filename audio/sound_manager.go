package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/arcade-siege/constants"
)

// SoundManager owns the speaker and mixes every game sound into it
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	cache       *soundCache
	ambience    *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker; a disabled config stays uninitialized
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := sm.cfg.Validate(); err != nil {
		return fmt.Errorf("audio config: %w", err)
	}

	cache := newSoundCache(sm.cfg)
	if err := cache.preload(); err != nil {
		return err
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.cache = cache
	sm.initialized = true
	return nil
}

// Initialized reports whether sounds reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.ambience != nil {
		sm.ambience.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.ambience = nil
	sm.initialized = false
}

// Play mixes a one-shot effect into the output
func (sm *SoundManager) Play(st SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	streamer, err := sm.cache.streamer(st)
	if err != nil {
		return err
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// StartAmbience starts the background loop; no-op if already playing
func (sm *SoundManager) StartAmbience() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.ambience != nil {
		sm.ambience.Paused = false
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	gen := NewAmbienceGenerator(rate, constants.AmbienceGain)
	sm.ambience = &beep.Ctrl{Streamer: newVolume(gen, sm.cfg.MasterVolume), Paused: false}
	sm.mixer.Add(sm.ambience)
	return nil
}

// StopAmbience pauses the background loop
func (sm *SoundManager) StopAmbience() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.ambience == nil {
		return
	}

	speaker.Lock()
	sm.ambience.Paused = true
	speaker.Unlock()
}
