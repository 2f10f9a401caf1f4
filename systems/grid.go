package systems

import (
	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/engine"
)

// rowKind maps a grid row to its enemy kind: row 0 bosses, row 1 elites, the rest regulars
func rowKind(row int) component.EnemyKind {
	switch row {
	case 0:
		return component.EnemyBoss
	case 1:
		return component.EnemyElite
	default:
		return component.EnemyRegular
	}
}

// GenerateGrid replaces the enemy collection with a fresh formation, row-major
// The formation is the same for every level
func GenerateGrid(world *engine.World) int {
	world.Enemies.Clear()
	world.FormationDir = 1

	for row := 0; row < constants.EnemyRows; row++ {
		kind := rowKind(row)
		y := float64(row)*(constants.EnemyHeight+constants.EnemyPadding) + constants.EnemyOffsetY
		for col := 0; col < constants.EnemyCols; col++ {
			x := float64(col)*(constants.EnemyWidth+constants.EnemyPadding) + constants.EnemyOffsetX
			world.Enemies.Add(component.NewEnemy(kind, x, y))
		}
	}
	return world.Enemies.Len()
}
