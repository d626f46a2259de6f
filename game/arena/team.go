package arena

import (
	"github.com/bytearena/ecs"
	uuid "github.com/satori/go.uuid"

	"github.com/robomatch/robomatch/common/types"
)

// Team groups robots under one identity; zones are owned by teams and
// defense buffs are granted team-wide.
type Team struct {
	Id    uuid.UUID
	Name  string
	Color types.RGB

	robots []ecs.EntityID
}

func (game *Game) registerTeam(name string, color types.RGB) *Team {
	team := &Team{
		Id:    uuid.NewV4(), // random uuid
		Name:  name,
		Color: color,

		robots: make([]ecs.EntityID, 0),
	}

	game.teams = append(game.teams, team)
	game.teamsById[team.Id] = team

	return team
}

func (game *Game) Teams() []*Team {
	return game.teams
}

func (game *Game) TeamByName(name string) *Team {
	for _, team := range game.teams {
		if team.Name == name {
			return team
		}
	}
	return nil
}

func (game *Game) TeamByID(id uuid.UUID) *Team {
	return game.teamsById[id]
}

// grantDefenseBuff arms the timed damage-halving modifier on every robot of
// the team. The amount is in buff-scale units, stored internally in ticks.
func (game *Game) grantDefenseBuff(team *Team, amount int) {
	for _, rid := range team.robots {
		qr := game.getEntity(rid, game.healthComponent)
		if qr == nil {
			continue
		}

		game.CastHealth(qr.Components[game.healthComponent]).AddDefenseBuff(amount)
	}
}
