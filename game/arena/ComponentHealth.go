package arena

type Health struct {
	maxLife float64 // Const
	life    float64 // Current life level

	defenseBuffTicks int // Damage halved while > 0
}

func NewHealth(maxlife float64) *Health {
	return &Health{
		maxLife: maxlife,
		life:    maxlife,
	}
}

func (game Game) CastHealth(data interface{}) *Health {
	return data.(*Health)
}

func (health Health) GetMaxLife() float64 {
	return health.maxLife
}

func (health Health) GetLife() float64 {
	return health.life
}

func (health Health) Alive() bool {
	return health.life > 0
}

func (health *Health) Restore() *Health {
	health.life = health.maxLife
	health.defenseBuffTicks = 0
	return health
}

func (health Health) HasDefenseBuff() bool {
	return health.defenseBuffTicks > 0
}

// AddDefenseBuff arms the buff for amount buff-scale units, stored in tick
// units.
func (health *Health) AddDefenseBuff(amount int) {
	health.defenseBuffTicks = amount * DefenseBuffTickScale
}

// TickDefenseBuff brings the buff one tick closer to expiry. No floor
// clamp: the buff check only cares about the counter being above zero.
func (health *Health) TickDefenseBuff() {
	health.defenseBuffTicks--
}

// ReduceHealth applies incoming damage: a no-op on a dead robot, halved
// under an active defense buff, and clamped so life never goes negative.
func (health *Health) ReduceHealth(amount float64) {
	if !health.Alive() {
		return
	}

	if health.HasDefenseBuff() {
		amount /= 2
	}

	health.life -= amount
	if health.life < 0 {
		health.life = 0
	}
}
