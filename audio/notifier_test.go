package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/arcade-siege/events"
)

type fakeOutput struct {
	played   []SoundType
	ambience int
	playErr  error
	panicOn  SoundType
	doPanic  bool
}

func (f *fakeOutput) Play(st SoundType) error {
	if f.doPanic && st == f.panicOn {
		panic("device lost")
	}
	if f.playErr != nil {
		return f.playErr
	}
	f.played = append(f.played, st)
	return nil
}

func (f *fakeOutput) StartAmbience() error {
	f.ambience++
	return nil
}

func (f *fakeOutput) StopAmbience() {
	f.ambience--
}

func TestNotifierMapping(t *testing.T) {
	out := &fakeOutput{}
	n := NewNotifier(out)

	seq := []events.EventType{
		events.EventAmbienceStart,
		events.EventShoot,
		events.EventExplosion,
		events.EventBonusSpawned,
		events.EventWeaponUpgrade,
		events.EventLevelComplete,
		events.EventGameOver,
		events.EventAmbienceStop,
	}
	for _, typ := range seq {
		n.HandleEvent(nil, events.GameEvent{Type: typ})
	}

	want := []SoundType{SoundShoot, SoundExplosion, SoundBonus, SoundUpgrade, SoundFanfare, SoundGameOver}
	if len(out.played) != len(want) {
		t.Fatalf("played = %v, want %v", out.played, want)
	}
	for i := range want {
		if out.played[i] != want[i] {
			t.Errorf("played[%d] = %s, want %s", i, out.played[i], want[i])
		}
	}
	if out.ambience != 0 {
		t.Errorf("ambience balance = %d, want 0", out.ambience)
	}
	if n.Silent() {
		t.Error("notifier silent without failures")
	}
}

func TestNotifierHandlesEveryDeclaredType(t *testing.T) {
	n := NewNotifier(&fakeOutput{})
	if got := len(n.EventTypes()); got != 8 {
		t.Errorf("EventTypes() = %d types, want 8", got)
	}
}

func TestNotifierSilentAfterError(t *testing.T) {
	out := &fakeOutput{playErr: errors.New("buffer underrun")}
	n := NewNotifier(out)

	n.HandleEvent(nil, events.GameEvent{Type: events.EventShoot})
	if !n.Silent() {
		t.Fatal("notifier not silent after an output error")
	}

	out.playErr = nil
	n.HandleEvent(nil, events.GameEvent{Type: events.EventExplosion})
	if len(out.played) != 0 {
		t.Errorf("played %v after going silent", out.played)
	}
}

func TestNotifierRecoversPanic(t *testing.T) {
	out := &fakeOutput{doPanic: true, panicOn: SoundExplosion}
	n := NewNotifier(out)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped the notifier: %v", r)
		}
	}()

	n.HandleEvent(nil, events.GameEvent{Type: events.EventExplosion})
	if !n.Silent() {
		t.Error("notifier not silent after a panic")
	}
}

func TestNotifierWithUninitializedManager(t *testing.T) {
	n := NewNotifier(NewSoundManager(nil))

	n.HandleEvent(nil, events.GameEvent{Type: events.EventShoot})
	if !n.Silent() {
		t.Error("uninitialized output did not silence the notifier")
	}
}
