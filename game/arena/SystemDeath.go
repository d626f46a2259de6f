package arena

import "github.com/bytearena/ecs"

// systemDeath disposes the entities retired during this tick, after the
// full sweep, so that an entity removing itself mid-sweep never
// invalidates the iteration of the others.
func systemDeath(game *Game) {
	entitiesToRemove := make([]*ecs.Entity, 0)

	for _, entityresult := range game.lifecycleView.Get() {
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])
		if lifecycleAspect.tickDeath >= 0 && lifecycleAspect.tickDeath <= game.ticknum {
			entitiesToRemove = append(entitiesToRemove, entityresult.Entity)
		}
	}

	if len(entitiesToRemove) > 0 {
		game.manager.DisposeEntities(entitiesToRemove...)
	}
}
