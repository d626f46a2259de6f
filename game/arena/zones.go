package arena

import (
	uuid "github.com/satori/go.uuid"
)

// Zone operations. Robots only invoke these; zones are owned by the world.

// LoadAt resupplies the actor from the loading zone containing its body
// center, if that zone belongs to the actor's team. No zone, a foreign
// zone, or an exhausted zone is a silent no-op.
func (game *Game) LoadAt(actor *Actor) {
	center := actor.Pose().Center()

	for _, entityresult := range game.zonesView.Get() {
		zoneAspect := game.CastZone(entityresult.Components[game.zoneComponent])

		if zoneAspect.kind != ZoneLoading {
			continue
		}
		if !zoneAspect.Permissible(actor.TeamID()) {
			continue
		}
		if !zoneAspect.footprint.Contains(center) {
			continue
		}

		game.LoadZone(zoneAspect, actor)
		return
	}
}

// LoadZone performs one load: a no-op once the supply is exhausted;
// otherwise an aligned robot receives its ammunition and the supply
// decrements either way.
func (game *Game) LoadZone(zone *ZoneAspect, actor *Actor) {
	if zone.life <= 0 {
		return
	}

	if zone.aligned(actor) {
		actor.armament().Load(LoadingZoneAmmo)
	}

	zone.life--
}

// aligned checks the robot against the supply machinery. Deliberately a
// stub that always passes; a geometric alignment test is an open extension
// point.
func (zone *ZoneAspect) aligned(actor *Actor) bool {
	return true
}

// ActivateBuffAt triggers the defense buff zone containing the actor's
// body center, if it belongs to the actor's team.
func (game *Game) ActivateBuffAt(actor *Actor) {
	center := actor.Pose().Center()

	for _, entityresult := range game.zonesView.Get() {
		zoneAspect := game.CastZone(entityresult.Components[game.zoneComponent])

		if zoneAspect.kind != ZoneDefenseBuff {
			continue
		}
		if !uuid.Equal(zoneAspect.team, actor.TeamID()) {
			continue
		}
		if !zoneAspect.footprint.Contains(center) {
			continue
		}

		game.ActivateDefenseBuffZone(zoneAspect)
		return
	}
}

// ActivateDefenseBuffZone fires the zone's one-shot charge: the owning
// team gets the timed buff and the zone goes inactive until reset.
func (game *Game) ActivateDefenseBuffZone(zone *ZoneAspect) {
	if !zone.active {
		return
	}

	if team := game.teamsById[zone.team]; team != nil {
		game.grantDefenseBuff(team, DefenseBuffAmount)
	}

	zone.active = false
}
