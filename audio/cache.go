package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores each effect rendered once at its configured volume
type soundCache struct {
	mu     sync.RWMutex
	cfg    *AudioConfig
	format beep.Format
	store  [soundTypeCount]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
}

// get returns cached buffer or renders on demand
func (c *soundCache) get(st SoundType) (*beep.Buffer, error) {
	if st < 0 || st >= soundTypeCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, int(st))
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[st] != nil {
		return c.store[st], nil
	}

	s, err := GetSoundEffect(st, c.cfg)
	if err != nil {
		return nil, err
	}
	buf = beep.NewBuffer(c.format)
	buf.Append(s)
	c.store[st] = buf
	return buf, nil
}

// streamer returns a fresh playback cursor over the cached effect
func (c *soundCache) streamer(st SoundType) (beep.Streamer, error) {
	buf, err := c.get(st)
	if err != nil {
		return nil, err
	}
	return buf.Streamer(0, buf.Len()), nil
}

// preload renders every effect so gameplay never pays generation cost
func (c *soundCache) preload() error {
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, err := c.get(st); err != nil {
			return fmt.Errorf("preload %s: %w", st, err)
		}
	}
	return nil
}
