package arena

import (
	"github.com/bytearena/ecs"

	"github.com/robomatch/robomatch/common/utils/rect"
)

func (game *Game) NewEntityObstacle(footprint rect.AlignedRect) *ecs.Entity {
	obstacle := game.manager.NewEntity()

	obstacle.
		AddComponent(game.obstacleComponent, &Obstacle{footprint: footprint}).
		AddComponent(game.renderComponent, &Render{
			type_: "obstacle",
			color: obstacleColor,
		})

	game.obstacleOrder = append(game.obstacleOrder, obstacle.GetID())
	game.indexStatic(obstacle.GetID(), footprint, staticObstacle, nil)

	return obstacle
}
