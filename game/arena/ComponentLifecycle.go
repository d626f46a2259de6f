package arena

// Lifecycle schedules entity disposal. tickDeath stays negative until the
// entity is deactivated; the death sweep at the end of the same tick then
// removes it from the world collections.
type Lifecycle struct {
	tickBirth int
	tickDeath int
}

func NewLifecycle(tickBirth int) *Lifecycle {
	return &Lifecycle{
		tickBirth: tickBirth,
		tickDeath: -1,
	}
}

func (game Game) CastLifecycle(data interface{}) *Lifecycle {
	return data.(*Lifecycle)
}

func (lc Lifecycle) GetBirth() int {
	return lc.tickBirth
}

func (lc Lifecycle) GetDeath() int {
	return lc.tickDeath
}

func (lc *Lifecycle) SetDeath(tick int) *Lifecycle {
	lc.tickDeath = tick
	return lc
}
