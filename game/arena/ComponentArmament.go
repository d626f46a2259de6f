package arena

import (
	"sync"
)

// Armament tracks a robot's ammunition and the shots queued during the
// current tick, waiting to be materialized into bullet entities.
type Armament struct {
	ammo         int
	pendingShots []float64 // gun angles, in degrees
	lock         *sync.RWMutex
}

func NewArmament(initialAmmo int) *Armament {
	return &Armament{
		ammo:         initialAmmo,
		pendingShots: make([]float64, 0),
		lock:         &sync.RWMutex{},
	}
}

func (game Game) CastArmament(data interface{}) *Armament {
	return data.(*Armament)
}

func (armament *Armament) GetAmmo() int {
	armament.lock.RLock()
	defer armament.lock.RUnlock()
	return armament.ammo
}

func (armament *Armament) Load(num int) {
	armament.lock.Lock()
	armament.ammo += num
	armament.lock.Unlock()
}

func (armament *Armament) Empty() {
	armament.lock.Lock()
	armament.ammo = 0
	armament.pendingShots = make([]float64, 0)
	armament.lock.Unlock()
}

// ConsumeRound takes one round out of the magazine; false on a dry trigger.
func (armament *Armament) ConsumeRound() bool {
	armament.lock.Lock()
	defer armament.lock.Unlock()

	if armament.ammo <= 0 {
		return false
	}

	armament.ammo--
	return true
}

func (armament *Armament) PushShot(angleDeg float64) {
	armament.lock.Lock()
	armament.pendingShots = append(armament.pendingShots, angleDeg)
	armament.lock.Unlock()
}

func (armament *Armament) PopPendingShots() []float64 {
	armament.lock.Lock()
	res := armament.pendingShots
	armament.pendingShots = make([]float64, 0)
	armament.lock.Unlock()

	return res
}
