package arena

import (
	"encoding/json"

	"github.com/bytearena/ecs"
	"github.com/dhconnelly/rtreego"
	uuid "github.com/satori/go.uuid"

	"github.com/robomatch/robomatch/common/types"
	"github.com/robomatch/robomatch/common/types/fieldcontainer"
	"github.com/robomatch/robomatch/common/utils"
	"github.com/robomatch/robomatch/common/utils/rect"
	"github.com/robomatch/robomatch/common/utils/vector"
)

// Game is the turn-based battle arena: rotated rigid bodies, projectile
// ballistics and zone rule effects, advanced one discrete tick at a time.
// Every live robot acts exactly once per tick, then every live bullet.
type Game struct {
	ticknum int
	matchid string

	field   *fieldcontainer.FieldContainer
	manager *ecs.Manager

	poseComponent      *ecs.Component
	healthComponent    *ecs.Component
	armamentComponent  *ecs.Component
	ballisticComponent *ecs.Component
	zoneComponent      *ecs.Component
	obstacleComponent  *ecs.Component
	ownedComponent     *ecs.Component
	renderComponent    *ecs.Component
	lifecycleComponent *ecs.Component
	strategyComponent  *ecs.Component

	robotsView    *ecs.View
	bulletsView   *ecs.View
	zonesView     *ecs.View
	obstaclesView *ecs.View
	lifecycleView *ecs.View

	teams     []*Team
	teamsById map[uuid.UUID]*Team

	// deterministic per-tick iteration orders (registration order)
	robotOrder    []ecs.EntityID
	obstacleOrder []ecs.EntityID

	// broadphase over static footprints (obstacles + zones)
	staticIndex *rtreego.Rtree
}

func NewGame(field *fieldcontainer.FieldContainer, matchid string) *Game {
	manager := ecs.NewManager()

	game := &Game{
		matchid: matchid,
		field:   field,
		manager: manager,

		poseComponent:      manager.NewComponent(),
		healthComponent:    manager.NewComponent(),
		armamentComponent:  manager.NewComponent(),
		ballisticComponent: manager.NewComponent(),
		zoneComponent:      manager.NewComponent(),
		obstacleComponent:  manager.NewComponent(),
		ownedComponent:     manager.NewComponent(),
		renderComponent:    manager.NewComponent(),
		lifecycleComponent: manager.NewComponent(),
		strategyComponent:  manager.NewComponent(),

		teamsById: make(map[uuid.UUID]*Team),

		robotOrder:    make([]ecs.EntityID, 0),
		obstacleOrder: make([]ecs.EntityID, 0),

		staticIndex: rtreego.NewTree(2, 25, 50),
	}

	game.robotsView = manager.CreateView(
		game.poseComponent,
		game.healthComponent,
		game.armamentComponent,
		game.strategyComponent,
	)

	game.bulletsView = manager.CreateView(game.ballisticComponent)
	game.zonesView = manager.CreateView(game.zoneComponent)
	game.obstaclesView = manager.CreateView(game.obstacleComponent)
	game.lifecycleView = manager.CreateView(game.lifecycleComponent)

	initField(game)

	return game
}

func (game *Game) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

func initField(game *Game) {
	field := game.field

	for i, fieldteam := range field.Data.Teams {
		team := game.registerTeam(fieldteam.Name, types.RGB(fieldteam.Color))
		game.NewEntityStartingZone(team, i)
	}

	for _, obstacle := range field.Data.Obstacles {
		game.NewEntityObstacle(rect.MakeAlignedRect(
			vector.MakeVector2(obstacle.Position.X, obstacle.Position.Y),
			obstacle.Width,
			obstacle.Height,
		))
	}

	for _, zone := range field.Data.LoadingZones {
		team := game.TeamByName(zone.Team)
		utils.Assert(team != nil, "arena: loading zone references unknown team "+zone.Team)

		game.NewEntityLoadingZone(team, rect.MakeAlignedRect(
			vector.MakeVector2(zone.Position.X, zone.Position.Y),
			zone.Width,
			zone.Height,
		))
	}

	for _, zone := range field.Data.DefenseBuffZones {
		team := game.TeamByName(zone.Team)
		utils.Assert(team != nil, "arena: defense buff zone references unknown team "+zone.Team)

		game.NewEntityDefenseBuffZone(team, rect.MakeAlignedRect(
			vector.MakeVector2(zone.Position.X, zone.Position.Y),
			zone.Width,
			zone.Height,
		))
	}
}

func (game *Game) Field() *fieldcontainer.FieldContainer {
	return game.field
}

func (game *Game) Ticknum() int {
	return game.ticknum
}

// Step advances the match by one tick. All per-tick work is synchronous;
// robots act in registration order, then bullets advance, then entities
// deactivated during the sweep are removed so the live collections never
// carry them into the next tick.
func (game *Game) Step(ticknum int) {
	game.ticknum = ticknum

	systemActions(game)
	systemShooting(game)
	systemBallistics(game)
	systemDeath(game)
}

// VizFrameJSON builds the frame consumed by the rendering collaborator: a
// flat list of shapes (vertex outline + color). The core never inspects
// what rendering does with them.
func (game *Game) VizFrameJSON() []byte {
	msg := types.VizMessage{
		MatchId: game.matchid,
		Tick:    game.ticknum,
		Shapes:  make([]types.VizShape, 0),
	}

	for _, entityresult := range game.obstaclesView.Get() {
		obstacleAspect := game.CastObstacle(entityresult.Components[game.obstacleComponent])
		msg.Shapes = append(msg.Shapes, makeVizShape(
			entityresult.Entity.GetID(), "obstacle", obstacleAspect.footprint, obstacleColor,
		))
	}

	for _, entityresult := range game.zonesView.Get() {
		zoneAspect := game.CastZone(entityresult.Components[game.zoneComponent])
		renderAspect := game.CastRender(entityresult.Components[game.renderComponent])
		msg.Shapes = append(msg.Shapes, makeVizShape(
			entityresult.Entity.GetID(), zoneAspect.kind.String(), zoneAspect.footprint, renderAspect.color,
		))
	}

	for _, id := range game.robotOrder {
		qr := game.getEntity(id, game.poseComponent, game.healthComponent, game.renderComponent)
		if qr == nil {
			continue
		}

		poseAspect := game.CastPose(qr.Components[game.poseComponent])
		healthAspect := game.CastHealth(qr.Components[game.healthComponent])
		renderAspect := game.CastRender(qr.Components[game.renderComponent])

		msg.Shapes = append(msg.Shapes, makeVizShape(id, "robot", poseAspect.Body(), renderAspect.color))

		// a dead robot keeps its body on the field, but loses its gun
		if healthAspect.Alive() {
			msg.Shapes = append(msg.Shapes, makeVizShape(id, "gun", poseAspect.Gun(), renderAspect.color))
		}
	}

	for _, entityresult := range game.bulletsView.Get() {
		ballisticAspect := game.CastBallistic(entityresult.Components[game.ballisticComponent])
		if !ballisticAspect.active {
			continue
		}

		bulletShape := rect.MakeAlignedRect(ballisticAspect.position.Move(-2.5, -2.5), 5, 5)
		msg.Shapes = append(msg.Shapes, makeVizShape(
			entityresult.Entity.GetID(), "bullet", bulletShape, bulletColor,
		))
	}

	res, _ := json.Marshal(msg)
	return res
}

func makeVizShape(id ecs.EntityID, type_ string, shape rect.Shape, color types.RGB) types.VizShape {
	vertices := shape.Vertices()

	return types.VizShape{
		Id:       id.String(),
		Type:     type_,
		Vertices: vertices[:],
		Color:    color,
	}
}

// Reset restores the match to its pre-play state: robot poses, health and
// ammo, zone supplies and buff charges; every bullet is removed.
func (game *Game) Reset() {
	bullets := make([]*ecs.Entity, 0)
	for _, entityresult := range game.bulletsView.Get() {
		bullets = append(bullets, entityresult.Entity)
	}
	if len(bullets) > 0 {
		game.manager.DisposeEntities(bullets...)
	}

	for _, id := range game.robotOrder {
		qr := game.getEntity(id, game.poseComponent, game.healthComponent, game.armamentComponent)
		if qr == nil {
			continue
		}

		poseAspect := game.CastPose(qr.Components[game.poseComponent])
		healthAspect := game.CastHealth(qr.Components[game.healthComponent])
		armamentAspect := game.CastArmament(qr.Components[game.armamentComponent])

		poseAspect.SetBody(poseAspect.InitialBody())
		healthAspect.Restore()
		armamentAspect.Empty()
	}

	for _, entityresult := range game.zonesView.Get() {
		game.CastZone(entityresult.Components[game.zoneComponent]).Reset()
	}
}

func (game *Game) CountLiveBullets() int {
	count := 0
	for _, entityresult := range game.bulletsView.Get() {
		if game.CastBallistic(entityresult.Components[game.ballisticComponent]).active {
			count++
		}
	}
	return count
}

func (game *Game) CountAliveRobots() int {
	count := 0
	for _, id := range game.robotOrder {
		qr := game.getEntity(id, game.healthComponent)
		if qr == nil {
			continue
		}
		if game.CastHealth(qr.Components[game.healthComponent]).Alive() {
			count++
		}
	}
	return count
}

// AliveTeams is the number of teams with at least one robot still alive,
// used by the match server to detect a last-team-standing end.
func (game *Game) AliveTeams() int {
	count := 0
	for _, team := range game.teams {
		for _, rid := range team.robots {
			qr := game.getEntity(rid, game.healthComponent)
			if qr != nil && game.CastHealth(qr.Components[game.healthComponent]).Alive() {
				count++
				break
			}
		}
	}
	return count
}
