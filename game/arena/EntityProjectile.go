package arena

import (
	"math"

	"github.com/bytearena/ecs"
	uuid "github.com/satori/go.uuid"

	"github.com/robomatch/robomatch/common/utils/number"
	"github.com/robomatch/robomatch/common/utils/vector"
)

// NewEntityBallisticProjectile spawns a bullet at the given position flying
// along the given direction (degrees). Damage and speed are fixed at
// creation; range is conceptually unbounded and never consulted.
func (game *Game) NewEntityBallisticProjectile(owner uuid.UUID, position vector.Vector2, directionDeg float64) *ecs.Entity {
	projectile := game.manager.NewEntity()

	return projectile.
		AddComponent(game.ballisticComponent, &Ballistic{
			position:  position,
			direction: number.DegreeToRadian(directionDeg),
			speed:     BulletSpeed,
			delay:     BulletDelay,
			damage:    BulletDamage,
			rangeLeft: math.Inf(1),
			team:      owner,
			active:    true,
		}).
		AddComponent(game.ownedComponent, &Owned{owner: owner}).
		AddComponent(game.renderComponent, &Render{
			type_: "bullet",
			color: bulletColor,
		}).
		AddComponent(game.lifecycleComponent, NewLifecycle(game.ticknum))
}
