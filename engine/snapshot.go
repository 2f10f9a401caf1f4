package engine

import (
	"github.com/lixenwraith/arcade-siege/component"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	Frame         int64
	Session       SessionSnapshot
	Player        component.Player
	Enemies       []component.Enemy
	Bonus         *component.BonusTarget // nil when the slot is empty
	PlayerBullets []component.Projectile
	EnemyBullets  []component.Projectile
	Particles     []component.Particle
}

// TakeSnapshot copies the world and session; caller holds the update lock
func (ctx *GameContext) TakeSnapshot() Snapshot {
	w := ctx.World
	snap := Snapshot{
		Frame:         ctx.FrameNumber.Load(),
		Session:       ctx.State.ReadSession(ctx.Time.Now()),
		Player:        w.Player,
		Enemies:       w.Enemies.Values(),
		PlayerBullets: w.PlayerBullets.Values(),
		EnemyBullets:  w.EnemyBullets.Values(),
		Particles:     w.Particles.Values(),
	}
	if w.Bonus != nil {
		b := *w.Bonus
		snap.Bonus = &b
	}
	return snap
}

// AliveEnemies counts enemies in the snapshot still standing
func (s *Snapshot) AliveEnemies() int {
	n := 0
	for i := range s.Enemies {
		if s.Enemies[i].Alive {
			n++
		}
	}
	return n
}
