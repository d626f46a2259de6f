package arena

import (
	"github.com/bytearena/ecs"
	uuid "github.com/satori/go.uuid"

	"github.com/robomatch/robomatch/common/utils/rect"
)

// Actor is the read-mostly view of one robot handed to strategies and
// actions. Strategies never mutate the world through it; all mutation goes
// through the actions resolved by the per-tick resolution pipeline.
type Actor struct {
	game *Game
	id   ecs.EntityID
}

func (game *Game) ActorFor(id ecs.EntityID) *Actor {
	return &Actor{game: game, id: id}
}

func (actor *Actor) ID() ecs.EntityID {
	return actor.id
}

func (actor *Actor) Pose() rect.OrientedRect {
	qr := actor.game.getEntity(actor.id, actor.game.poseComponent)
	return actor.game.CastPose(qr.Components[actor.game.poseComponent]).Body()
}

func (actor *Actor) Gun() rect.OrientedRect {
	qr := actor.game.getEntity(actor.id, actor.game.poseComponent)
	return actor.game.CastPose(qr.Components[actor.game.poseComponent]).Gun()
}

func (actor *Actor) Health() float64 {
	qr := actor.game.getEntity(actor.id, actor.game.healthComponent)
	return actor.game.CastHealth(qr.Components[actor.game.healthComponent]).GetLife()
}

func (actor *Actor) Alive() bool {
	qr := actor.game.getEntity(actor.id, actor.game.healthComponent)
	return actor.game.CastHealth(qr.Components[actor.game.healthComponent]).Alive()
}

func (actor *Actor) HasDefenseBuff() bool {
	qr := actor.game.getEntity(actor.id, actor.game.healthComponent)
	return actor.game.CastHealth(qr.Components[actor.game.healthComponent]).HasDefenseBuff()
}

func (actor *Actor) Ammo() int {
	return actor.armament().GetAmmo()
}

func (actor *Actor) TeamID() uuid.UUID {
	return actor.game.ownerOf(actor.id)
}

func (actor *Actor) armament() *Armament {
	qr := actor.game.getEntity(actor.id, actor.game.armamentComponent)
	return actor.game.CastArmament(qr.Components[actor.game.armamentComponent])
}

func (actor *Actor) pushShot(angleDeg float64) {
	actor.armament().PushShot(angleDeg)
}
