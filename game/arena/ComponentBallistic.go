package arena

import (
	uuid "github.com/satori/go.uuid"

	"github.com/robomatch/robomatch/common/utils/vector"
)

// Ballistic is a bullet in flight: a volumeless point advancing a fixed
// distance per tick along a fixed direction.
type Ballistic struct {
	position  vector.Vector2
	direction float64 // radians
	speed     float64 // units per tick
	delay     int     // ticks of ignition latency left before first flight
	damage    float64
	rangeLeft float64 // unbounded; set at creation but never consulted
	team      uuid.UUID
	active    bool
}

func (game Game) CastBallistic(data interface{}) *Ballistic {
	return data.(*Ballistic)
}

func (ballistic Ballistic) GetPosition() vector.Vector2 {
	return ballistic.position
}

func (ballistic Ballistic) GetDirection() float64 {
	return ballistic.direction
}

func (ballistic Ballistic) IsActive() bool {
	return ballistic.active
}

func (ballistic Ballistic) GetTeam() uuid.UUID {
	return ballistic.team
}
