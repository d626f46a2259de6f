package arena

// Brain carries the decision function injected at robot construction. One
// decision function per robot; swapping behavior means constructing the
// robot with a different strategy, not subclassing.
type Brain struct {
	strategy Strategy
}

func (game Game) CastBrain(data interface{}) *Brain {
	return data.(*Brain)
}

func (brain Brain) GetStrategy() Strategy {
	return brain.strategy
}
