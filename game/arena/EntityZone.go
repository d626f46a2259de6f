package arena

import (
	"github.com/bytearena/ecs"

	"github.com/robomatch/robomatch/common/types"
	"github.com/robomatch/robomatch/common/utils/rect"
	"github.com/robomatch/robomatch/common/utils/vector"
)

func (game *Game) newEntityZone(kind ZoneKind, team *Team, footprint rect.AlignedRect, color types.RGB) *ecs.Entity {
	zone := game.manager.NewEntity()

	zoneAspect := &ZoneAspect{
		kind:      kind,
		footprint: footprint,
		team:      team.Id,
	}
	zoneAspect.Reset()

	zone.
		AddComponent(game.zoneComponent, zoneAspect).
		AddComponent(game.ownedComponent, &Owned{owner: team.Id}).
		AddComponent(game.renderComponent, &Render{
			type_: kind.String(),
			color: color,
		})

	game.indexStatic(zone.GetID(), footprint, staticZone, zoneAspect)

	return zone
}

func (game *Game) NewEntityPlainZone(team *Team, footprint rect.AlignedRect) *ecs.Entity {
	return game.newEntityZone(ZonePlain, team, footprint, zoneColor)
}

// NewEntityLoadingZone places a resupply zone holding a finite number of
// loads. Enemy robots may not occupy it.
func (game *Game) NewEntityLoadingZone(team *Team, footprint rect.AlignedRect) *ecs.Entity {
	return game.newEntityZone(ZoneLoading, team, footprint, team.Color)
}

// NewEntityDefenseBuffZone places a one-shot zone granting the owning team
// a timed damage-halving buff.
func (game *Game) NewEntityDefenseBuffZone(team *Team, footprint rect.AlignedRect) *ecs.Entity {
	return game.newEntityZone(ZoneDefenseBuff, team, footprint, team.Color)
}

// NewEntityStartingZone places the team's starting square: the first
// registered team anchors the field origin corner, the second the opposite
// corner. The color is a darkened team tint, for rendering only.
func (game *Game) NewEntityStartingZone(team *Team, teamIndex int) *ecs.Entity {
	side := game.field.Data.StartZoneSide

	var anchor vector.Vector2
	if teamIndex == 0 {
		anchor = vector.MakeVector2(0, 0)
	} else {
		anchor = vector.MakeVector2(game.field.Data.Width-side, game.field.Data.Height-side)
	}

	tint := types.RGB{
		team.Color[0] * 0.5,
		team.Color[1] * 0.5,
		team.Color[2] * 0.5,
	}

	return game.newEntityZone(ZoneStarting, team, rect.MakeAlignedRect(anchor, side, side), tint)
}
