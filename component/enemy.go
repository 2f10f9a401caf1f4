package component

import (
	"image/color"

	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/core"
)

// EnemyKind selects health, score and colour of a grid enemy
type EnemyKind int

const (
	EnemyRegular EnemyKind = iota
	EnemyElite
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyRegular:
		return "Regular"
	case EnemyElite:
		return "Elite"
	case EnemyBoss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// KillScore returns the score awarded for destroying an enemy of this kind
func (k EnemyKind) KillScore() int {
	switch k {
	case EnemyBoss:
		return constants.ScoreBoss
	case EnemyElite:
		return constants.ScoreElite
	default:
		return constants.ScoreRegular
	}
}

// MaxHealth returns the starting health of this kind
func (k EnemyKind) MaxHealth() int {
	switch k {
	case EnemyBoss:
		return constants.HealthBoss
	case EnemyElite:
		return constants.HealthElite
	default:
		return constants.HealthRegular
	}
}

// Color returns the kind's body and explosion colour
func (k EnemyKind) Color() color.RGBA {
	switch k {
	case EnemyBoss:
		return color.RGBA{255, 0, 0, 255}
	case EnemyElite:
		return color.RGBA{255, 0, 255, 255}
	default:
		return color.RGBA{0, 0, 255, 255}
	}
}

// Enemy is one member of the level grid
// Alive goes false only when Health reaches 0 through a hit
type Enemy struct {
	X, Y          float64 // Top-left
	Width, Height float64
	Kind          EnemyKind
	Health        int
	Alive         bool
	AnimFrame     int
	AnimCounter   int
}

// NewEnemy creates a live enemy of the given kind at (x, y)
func NewEnemy(kind EnemyKind, x, y float64) Enemy {
	return Enemy{
		X:      x,
		Y:      y,
		Width:  constants.EnemyWidth,
		Height: constants.EnemyHeight,
		Kind:   kind,
		Health: kind.MaxHealth(),
		Alive:  true,
	}
}

// Area returns the enemy's hitbox
func (e *Enemy) Area() core.Area {
	return core.Area{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Damage applies one unit of damage and reports whether the enemy was destroyed
func (e *Enemy) Damage() bool {
	if !e.Alive {
		return false
	}
	if e.Health > 1 {
		e.Health--
		return false
	}
	e.Health = 0
	e.Alive = false
	return true
}
