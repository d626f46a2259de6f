package arena

import (
	"github.com/bytearena/ecs"
	"github.com/dhconnelly/rtreego"
	uuid "github.com/satori/go.uuid"

	"github.com/robomatch/robomatch/common/utils"
	"github.com/robomatch/robomatch/common/utils/rect"
	"github.com/robomatch/robomatch/common/utils/vector"
)

type staticKind int

const (
	staticObstacle staticKind = iota
	staticZone
)

// staticSpatial is one static footprint (obstacle or zone) in the
// broadphase index. The index only narrows the candidate set; the exact
// rectangle tests always run on the hits.
type staticSpatial struct {
	entityID ecs.EntityID
	kind     staticKind
	shape    rect.AlignedRect
	zone     *ZoneAspect // nil for obstacles
	bounds   rtreego.Rect
}

func (s *staticSpatial) Bounds() rtreego.Rect {
	return s.bounds
}

func (game *Game) indexStatic(id ecs.EntityID, footprint rect.AlignedRect, kind staticKind, zone *ZoneAspect) {
	game.staticIndex.Insert(&staticSpatial{
		entityID: id,
		kind:     kind,
		shape:    footprint,
		zone:     zone,
		bounds:   boundsOf(footprint),
	})
}

func boundsOf(shape rect.Shape) rtreego.Rect {
	min, max := rect.AABB(shape)

	lengths := []float64{
		max.GetX() - min.GetX(),
		max.GetY() - min.GetY(),
	}

	// rtreego rejects empty extents
	for i := range lengths {
		if lengths[i] <= 0 {
			lengths[i] = 0.01
		}
	}

	bounds, err := rtreego.NewRect(rtreego.Point{min.GetX(), min.GetY()}, lengths)
	utils.Check(err, "arena: could not build broadphase bounds")

	return bounds
}

// Unpenetrable is one body that stops bullet travel.
type Unpenetrable struct {
	EntityID ecs.EntityID
	Shape    rect.Shape
	IsRobot  bool
}

// Unpenetrables lists every body blocking bullet travel, in the documented
// deterministic order: obstacles in creation order, then robot bodies in
// registration order. A dead robot's body keeps blocking until removal.
func (game *Game) Unpenetrables() []Unpenetrable {
	res := make([]Unpenetrable, 0, len(game.obstacleOrder)+len(game.robotOrder))

	for _, id := range game.obstacleOrder {
		qr := game.getEntity(id, game.obstacleComponent)
		if qr == nil {
			continue
		}

		obstacleAspect := game.CastObstacle(qr.Components[game.obstacleComponent])
		res = append(res, Unpenetrable{
			EntityID: id,
			Shape:    obstacleAspect.footprint,
		})
	}

	for _, id := range game.robotOrder {
		qr := game.getEntity(id, game.poseComponent)
		if qr == nil {
			continue
		}

		poseAspect := game.CastPose(qr.Components[game.poseComponent])
		res = append(res, Unpenetrable{
			EntityID: id,
			Shape:    poseAspect.Body(),
			IsRobot:  true,
		})
	}

	return res
}

// IsLegal reports whether a point lies within the field bounds, inclusive
// on all four sides.
func (game *Game) IsLegal(point vector.Vector2) bool {
	x, y := point.Get()
	return x >= 0 && y >= 0 && x <= game.field.Data.Width && y <= game.field.Data.Height
}

// IsObstructed reports whether a candidate pose overlaps any impenetrable
// body other than the acting robot itself, or any zone the acting robot's
// team may not occupy. Static footprints go through the broadphase index
// first; the exact (approximate, vertex-containment) intersection test
// decides.
func (game *Game) IsObstructed(candidate rect.Shape, excluding ecs.EntityID) bool {
	team := game.ownerOf(excluding)

	for _, hit := range game.staticIndex.SearchIntersect(boundsOf(candidate)) {
		spatial := hit.(*staticSpatial)

		switch spatial.kind {
		case staticObstacle:
			if rect.Intersects(candidate, spatial.shape) {
				return true
			}
		case staticZone:
			if !spatial.zone.Permissible(team) && rect.Intersects(candidate, spatial.shape) {
				return true
			}
		}
	}

	for _, id := range game.robotOrder {
		if id == excluding {
			continue
		}

		qr := game.getEntity(id, game.poseComponent)
		if qr == nil {
			continue
		}

		poseAspect := game.CastPose(qr.Components[game.poseComponent])
		if rect.Intersects(candidate, poseAspect.Body()) {
			return true
		}
	}

	return false
}

func (game *Game) ownerOf(id ecs.EntityID) uuid.UUID {
	qr := game.getEntity(id, game.ownedComponent)
	if qr == nil {
		return uuid.Nil
	}

	return game.CastOwned(qr.Components[game.ownedComponent]).owner
}
