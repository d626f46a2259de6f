package arena

import (
	"testing"

	"github.com/robomatch/robomatch/common/types/fieldcontainer"
)

func makeZoneGame(t *testing.T) *Game {
	field := makeTestField(1000, 1000)
	field.Data.LoadingZones = []fieldcontainer.FieldZone{
		{Id: "lz-red", Team: "RED", Position: fieldcontainer.FieldPoint{X: 0, Y: 0}, Width: 200, Height: 200},
	}
	field.Data.DefenseBuffZones = []fieldcontainer.FieldZone{
		{Id: "db-red", Team: "RED", Position: fieldcontainer.FieldPoint{X: 400, Y: 400}, Width: 200, Height: 200},
	}
	return NewGame(field, "testmatch")
}

func TestLoadingZoneSupply(t *testing.T) {
	game := makeZoneGame(t)

	// body center (75,65) sits inside the loading zone
	robot := robotAt(game, "RED", 50, 50, 0, DoNothingStrategy{})
	actor := game.ActorFor(robot.GetID())

	for i := 1; i <= LoadingZoneLife; i++ {
		game.LoadAt(actor)
		if got := actor.Ammo(); got != i*LoadingZoneAmmo {
			t.Fatalf("expected %d rounds after %d loads, got %d", i*LoadingZoneAmmo, i, got)
		}
	}

	zone := zoneOfKind(game, ZoneLoading)
	if zone.life != 0 {
		t.Fatalf("expected the supply exhausted, got %d left", zone.life)
	}

	// the exhausted zone is a silent no-op
	game.LoadAt(actor)
	if actor.Ammo() != LoadingZoneLife*LoadingZoneAmmo {
		t.Fatalf("an exhausted zone must not dispense ammunition")
	}

	zone.Reset()
	if zone.life != LoadingZoneLife {
		t.Fatalf("reset must restock the supply")
	}
}

func TestLoadingZoneRejectsEnemy(t *testing.T) {
	game := makeZoneGame(t)

	enemy := robotAt(game, "BLUE", 50, 50, 0, DoNothingStrategy{})
	actor := game.ActorFor(enemy.GetID())

	game.LoadAt(actor)

	if actor.Ammo() != 0 {
		t.Fatalf("an enemy robot must not load from a foreign zone")
	}

	if zoneOfKind(game, ZoneLoading).life != LoadingZoneLife {
		t.Fatalf("a foreign load attempt must not consume supply")
	}
}

func TestLoadingZoneRequiresCenterInside(t *testing.T) {
	game := makeZoneGame(t)

	// body center (525,515) is far outside the loading zone
	robot := robotAt(game, "RED", 500, 500, 0, DoNothingStrategy{})
	actor := game.ActorFor(robot.GetID())

	game.LoadAt(actor)

	if actor.Ammo() != 0 {
		t.Fatalf("loading must require the body center inside the zone")
	}
}

func TestDefenseBuffZoneOneShot(t *testing.T) {
	game := makeZoneGame(t)

	// body center (475,465) sits inside the buff zone
	robot := robotAt(game, "RED", 450, 450, 0, DoNothingStrategy{})
	teammate := robotAt(game, "RED", 100, 700, 0, DoNothingStrategy{})
	enemy := robotAt(game, "BLUE", 700, 700, 0, DoNothingStrategy{})

	actor := game.ActorFor(robot.GetID())
	game.ActivateBuffAt(actor)

	// the whole owning team is buffed, the enemy is not
	if !actor.HasDefenseBuff() {
		t.Fatalf("the activating robot must be buffed")
	}
	if !healthOf(game, teammate.GetID()).HasDefenseBuff() {
		t.Fatalf("teammates must be buffed as well")
	}
	if healthOf(game, enemy.GetID()).HasDefenseBuff() {
		t.Fatalf("the enemy team must not be buffed")
	}

	zone := zoneOfKind(game, ZoneDefenseBuff)
	if zone.active {
		t.Fatalf("the charge must be spent after activation")
	}

	// spent zone: no second activation
	healthOf(game, robot.GetID()).Restore()
	game.ActivateBuffAt(actor)
	if actor.HasDefenseBuff() {
		t.Fatalf("a spent zone must not buff again")
	}

	// the charge comes back with the match reset
	game.Reset()
	game.ActivateBuffAt(actor)
	if !actor.HasDefenseBuff() {
		t.Fatalf("a reset zone must be activatable again")
	}
}

func TestDefenseBuffZoneRejectsEnemy(t *testing.T) {
	game := makeZoneGame(t)

	enemy := robotAt(game, "BLUE", 450, 450, 0, DoNothingStrategy{})
	actor := game.ActorFor(enemy.GetID())

	game.ActivateBuffAt(actor)

	if actor.HasDefenseBuff() {
		t.Fatalf("an enemy robot must not trigger a foreign buff zone")
	}

	if !zoneOfKind(game, ZoneDefenseBuff).active {
		t.Fatalf("a foreign activation attempt must not spend the charge")
	}
}

func TestDefenseBuffExpires(t *testing.T) {
	health := NewHealth(RobotMaxHealth)
	health.AddDefenseBuff(1)

	for i := 0; i < DefenseBuffTickScale; i++ {
		if !health.HasDefenseBuff() {
			t.Fatalf("the buff expired too early, after %d ticks", i)
		}
		health.TickDefenseBuff()
	}

	if health.HasDefenseBuff() {
		t.Fatalf("the buff must expire once its ticks run out")
	}
}
