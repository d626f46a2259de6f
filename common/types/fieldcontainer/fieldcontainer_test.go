package fieldcontainer

import (
	"testing"
)

const fieldFixture = `{
	"meta": {
		"name": "proving-grounds",
		"date": "2019-03-01T00:00:00Z"
	},
	"data": {
		"width": 800,
		"height": 500,
		"startzonesidelength": 100,
		"teams": [
			{ "name": "RED", "color": [1, 0, 0] },
			{ "name": "BLUE", "color": [0, 0, 1] }
		],
		"obstacles": [
			{ "id": "wall-1", "position": [350, 200], "width": 100, "height": 20 }
		],
		"loadingzones": [
			{ "id": "lz-red", "team": "RED", "position": [0, 400], "width": 100, "height": 100 }
		],
		"defensebuffzones": [
			{ "id": "db-red", "team": "RED", "position": [300, 0], "width": 100, "height": 100 }
		],
		"spawns": [
			{ "team": "RED", "position": [10, 10], "angle": 0 },
			{ "team": "BLUE", "position": [740, 460], "angle": 180 }
		]
	}
}`

func TestLoadFieldFromJSON(t *testing.T) {
	field, err := LoadFieldFromJSON([]byte(fieldFixture))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if field.Meta.Name != "proving-grounds" {
		t.Fatalf("unexpected field name %q", field.Meta.Name)
	}

	if field.Data.Width != 800 || field.Data.Height != 500 {
		t.Fatalf("unexpected dimensions %f x %f", field.Data.Width, field.Data.Height)
	}

	if len(field.Data.Teams) != 2 || field.Data.Teams[1].Name != "BLUE" {
		t.Fatalf("teams not parsed")
	}

	if len(field.Data.Obstacles) != 1 {
		t.Fatalf("obstacles not parsed")
	}

	obstacle := field.Data.Obstacles[0]
	if obstacle.Position.X != 350 || obstacle.Position.Y != 200 {
		t.Fatalf("obstacle position not parsed from the compact array form")
	}

	if len(field.Data.LoadingZones) != 1 || field.Data.LoadingZones[0].Team != "RED" {
		t.Fatalf("loading zones not parsed")
	}

	if len(field.Data.Spawns) != 2 || field.Data.Spawns[1].Angle != 180 {
		t.Fatalf("spawns not parsed")
	}
}

func TestLoadFieldRejectsInvalidJSON(t *testing.T) {
	if _, err := LoadFieldFromJSON([]byte("{nope")); err == nil {
		t.Fatalf("malformed JSON must be rejected")
	}
}

func TestLoadFieldRejectsDegenerateDimensions(t *testing.T) {
	if _, err := LoadFieldFromJSON([]byte(`{"data":{"width":0,"height":500}}`)); err == nil {
		t.Fatalf("a zero-width field must be rejected")
	}
}

func TestLoadFieldFromMissingFile(t *testing.T) {
	if _, err := LoadFieldFromFile("/nonexistent/field.json"); err == nil {
		t.Fatalf("a missing file must surface an error")
	}
}
