package arena

import (
	"github.com/bytearena/ecs"

	"github.com/robomatch/robomatch/common/utils/rect"
)

// NewEntityRobot spawns a robot for the given team at the given body pose,
// with its decision function injected at construction. Registration order
// is the deterministic per-tick acting order.
func (game *Game) NewEntityRobot(team *Team, body rect.OrientedRect, strategy Strategy) *ecs.Entity {
	robot := game.manager.NewEntity()

	robot.
		AddComponent(game.poseComponent, NewPose(body)).
		AddComponent(game.healthComponent, NewHealth(RobotMaxHealth)).
		AddComponent(game.armamentComponent, NewArmament(0)).
		AddComponent(game.ownedComponent, &Owned{owner: team.Id}).
		AddComponent(game.renderComponent, &Render{
			type_: "robot",
			color: team.Color,
		}).
		AddComponent(game.lifecycleComponent, NewLifecycle(game.ticknum)).
		AddComponent(game.strategyComponent, &Brain{strategy: strategy})

	game.robotOrder = append(game.robotOrder, robot.GetID())
	team.robots = append(team.robots, robot.GetID())

	return robot
}

// RobotIDs is the registered robot ids in acting order.
func (game *Game) RobotIDs() []ecs.EntityID {
	return game.robotOrder
}
