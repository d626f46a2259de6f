package arena

import (
	uuid "github.com/satori/go.uuid"

	"github.com/robomatch/robomatch/common/utils/rect"
)

type ZoneKind int

const (
	ZonePlain ZoneKind = iota
	ZoneLoading
	ZoneDefenseBuff
	ZoneStarting
)

func (kind ZoneKind) String() string {
	switch kind {
	case ZoneLoading:
		return "loadingzone"
	case ZoneDefenseBuff:
		return "defensebuffzone"
	case ZoneStarting:
		return "startingzone"
	}
	return "zone"
}

// ZoneAspect is one rule zone on the field: an axis-aligned footprint plus
// the small state machine of its kind. Each kind only uses the state it
// needs: the loading zone its supply counter, the buff zone its one-shot
// charge.
type ZoneAspect struct {
	kind      ZoneKind
	footprint rect.AlignedRect
	team      uuid.UUID // owning team

	life   int  // loading zone: uses left
	active bool // defense buff zone: one-shot charge
}

func (game Game) CastZone(data interface{}) *ZoneAspect {
	return data.(*ZoneAspect)
}

func (zone ZoneAspect) Kind() ZoneKind {
	return zone.kind
}

func (zone ZoneAspect) Footprint() rect.AlignedRect {
	return zone.footprint
}

func (zone ZoneAspect) TeamID() uuid.UUID {
	return zone.team
}

func (zone ZoneAspect) Life() int {
	return zone.life
}

func (zone ZoneAspect) IsCharged() bool {
	return zone.active
}

// Permissible reports whether the given team may occupy the zone. An enemy
// loading zone is modeled as impermissible; every other zone admits
// everyone.
func (zone ZoneAspect) Permissible(team uuid.UUID) bool {
	if zone.kind == ZoneLoading {
		return uuid.Equal(zone.team, team)
	}
	return true
}

// Penetrable reports whether bullets travel through. All zones are
// penetrable; only obstacles and robot bodies block.
func (zone ZoneAspect) Penetrable() bool {
	return true
}

func (zone *ZoneAspect) Reset() {
	switch zone.kind {
	case ZoneLoading:
		zone.life = LoadingZoneLife
	case ZoneDefenseBuff:
		zone.active = true
	}
}
