package arena

import "github.com/robomatch/robomatch/common/types"

// Robot chassis and armament geometry, in field units.
const (
	RobotWidth  = 50.0 // span along the facing axis
	RobotHeight = 30.0

	GunLength = RobotWidth
	GunWidth  = RobotHeight / 4

	RobotMaxHealth = 100.0

	// per-tick movement ceilings
	MaxForwardSpeed  = 150.0
	MaxSidewaySpeed  = 100.0
	MaxRotationSpeed = 2.0 // degrees
)

// Ballistics.
const (
	BulletSpeed  = 25.0 // units per tick
	BulletDamage = 20.0
	BulletDelay  = 0 // ticks between firing decision and first flight
)

// Zone rules.
const (
	LoadingZoneLife = 3
	LoadingZoneAmmo = 100

	DefenseBuffAmount    = 30 // buff-scale units
	DefenseBuffTickScale = 1000
)

var (
	bulletColor   = types.RGB{0, 1, 0}
	obstacleColor = types.RGB{0.3, 0.3, 0.3}
	zoneColor     = types.RGB{0.8, 0.8, 0.8}
)
