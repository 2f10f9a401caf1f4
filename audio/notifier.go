package audio

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/events"
)

// Output is the sound sink a Notifier drives
type Output interface {
	Play(st SoundType) error
	StartAmbience() error
	StopAmbience()
}

// Notifier turns game events into sounds
// The first error or panic from the output switches it to silent mode for the rest of the process
type Notifier struct {
	out    Output
	silent atomic.Bool
}

// NewNotifier creates a notifier feeding out
func NewNotifier(out Output) *Notifier {
	return &Notifier{out: out}
}

// EventTypes implements events.Handler
func (n *Notifier) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventShoot,
		events.EventExplosion,
		events.EventGameOver,
		events.EventBonusSpawned,
		events.EventWeaponUpgrade,
		events.EventLevelComplete,
		events.EventAmbienceStart,
		events.EventAmbienceStop,
	}
}

// HandleEvent implements events.Handler
func (n *Notifier) HandleEvent(_ *engine.GameContext, ev events.GameEvent) {
	if n.silent.Load() {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			n.degrade(fmt.Errorf("panic handling %s: %v", ev.Type, r))
		}
	}()

	var err error
	switch ev.Type {
	case events.EventShoot:
		err = n.out.Play(SoundShoot)
	case events.EventExplosion:
		err = n.out.Play(SoundExplosion)
	case events.EventGameOver:
		err = n.out.Play(SoundGameOver)
	case events.EventBonusSpawned:
		err = n.out.Play(SoundBonus)
	case events.EventWeaponUpgrade:
		err = n.out.Play(SoundUpgrade)
	case events.EventLevelComplete:
		err = n.out.Play(SoundFanfare)
	case events.EventAmbienceStart:
		err = n.out.StartAmbience()
	case events.EventAmbienceStop:
		n.out.StopAmbience()
	}

	if err != nil {
		n.degrade(fmt.Errorf("%s: %w", ev.Type, err))
	}
}

// Silent reports whether audio has been disabled after a failure
func (n *Notifier) Silent() bool {
	return n.silent.Load()
}

func (n *Notifier) degrade(err error) {
	if n.silent.CompareAndSwap(false, true) {
		log.Printf("audio: %v, continuing without audio", err)
	}
}
