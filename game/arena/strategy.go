package arena

import (
	"github.com/robomatch/robomatch/common/utils/rect"
)

// Strategy is the external decision collaborator consulted once per tick
// for each live robot. A nil decision means no action this tick. Decide
// must not mutate world state directly; it only proposes actions, which
// the resolution pipeline validates and commits.
type Strategy interface {
	Decide(actor *Actor, game *Game) []Action
}

// Action is one proposed step. Resolve produces the actor's candidate next
// pose, or nil when the action either is a no-op at decision level or acts
// through a side channel (firing, zone use) instead of movement.
type Action interface {
	Resolve(actor *Actor) *rect.OrientedRect
}
