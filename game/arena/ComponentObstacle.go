package arena

import (
	uuid "github.com/satori/go.uuid"

	"github.com/robomatch/robomatch/common/utils/rect"
)

// Obstacle is a permanently impermissible, impenetrable static body.
type Obstacle struct {
	footprint rect.AlignedRect
}

func (game Game) CastObstacle(data interface{}) *Obstacle {
	return data.(*Obstacle)
}

func (obstacle Obstacle) Footprint() rect.AlignedRect {
	return obstacle.footprint
}

func (obstacle Obstacle) Permissible(team uuid.UUID) bool {
	return false
}

func (obstacle Obstacle) Penetrable() bool {
	return false
}
