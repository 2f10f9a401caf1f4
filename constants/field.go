package constants

// Playfield
const (
	FieldWidth  = 600.0
	FieldHeight = 800.0
)

// Player ship
const (
	PlayerWidth       = 50.0
	PlayerHeight      = 40.0
	PlayerSpeed       = 8.0 // Keyboard step per move command
	PlayerRowOffset   = 70.0
	PlayerStartX      = FieldWidth / 2
	PlayerY           = FieldHeight - PlayerRowOffset
	PlayerBulletSpeed = 10.0
)

// Enemy formation
const (
	EnemyRows       = 4
	EnemyCols       = 6
	EnemyWidth      = 40.0
	EnemyHeight     = 30.0
	EnemyPadding    = 20.0
	EnemyOffsetX    = 60.0
	EnemyOffsetY    = 50.0
	EnemySpeed      = 1.0
	EnemyDrop       = 30.0
	EnemyEdgeMargin = 10.0

	// EnemyAnimTicks is the number of moves per animation frame advance
	EnemyAnimTicks  = 15
	EnemyAnimFrames = 4
)

// Enemy bullets
const (
	EnemyBulletSpeed  = 5.0
	EnemyBulletWidth  = 4.0
	EnemyBulletHeight = 10.0
	EnemyFireChance   = 0.005 // Per alive enemy, per tick
)

// Bonus target
const (
	BonusWidth        = 60.0
	BonusHeight       = 40.0
	BonusY            = 80.0
	BonusBaseSpeed    = 2.0
	BonusMaxSpeedStep = 3 // Speed gain capped after level 4
	BonusEntryMargin  = 20.0
	BonusExitMargin   = 50.0
	BonusAnimTicks    = 5
	BonusAnimFrames   = 4
)
