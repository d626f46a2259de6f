package arena

import (
	uuid "github.com/satori/go.uuid"
)

type Owned struct {
	owner uuid.UUID
}

func (game Game) CastOwned(data interface{}) *Owned {
	return data.(*Owned)
}

func (owned Owned) GetOwner() uuid.UUID {
	return owned.owner
}
