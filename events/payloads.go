package events

import (
	"github.com/lixenwraith/arcade-siege/component"
)

// ExplosionSource identifies what exploded
type ExplosionSource int

const (
	ExplosionEnemy ExplosionSource = iota
	ExplosionBonus
	ExplosionPlayer
)

// ShootPayload describes an accepted fire command
type ShootPayload struct {
	Variant     component.WeaponVariant
	Projectiles int
}

// ExplosionPayload locates an explosion
type ExplosionPayload struct {
	X, Y   float64
	Source ExplosionSource
	Kind   component.EnemyKind // ExplosionEnemy only
}

// BonusPayload describes a bonus target
type BonusPayload struct {
	Drop      component.WeaponVariant
	Direction int
	Score     int // Awarded on destruction, 0 on spawn
}

// WeaponPayload describes an applied upgrade
type WeaponPayload struct {
	Variant component.WeaponVariant
}

// ValuePayload carries a single changed HUD value
type ValuePayload struct {
	Value int
}

// SessionPayload carries the session counters at a phase change
type SessionPayload struct {
	Score int
	Lives int
	Level int
}
