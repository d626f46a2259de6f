package fieldcontainer

import (
	"encoding/json"
	"io/ioutil"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/robomatch/robomatch/common/utils/number"
)

// FieldContainer is the JSON description of a battle field: its dimensions,
// the two team definitions, static obstacles, rule zones and spawn poses.
// It is plain numeric configuration supplied to the game at construction.
type FieldContainer struct {
	Meta struct {
		Name string `json:"name"`
		Date string `json:"date"`
	} `json:"meta"`
	Data struct {
		Width            float64      `json:"width"`
		Height           float64      `json:"height"`
		StartZoneSide    float64      `json:"startzonesidelength"`
		Teams            []FieldTeam  `json:"teams"`
		Obstacles        []FieldRect  `json:"obstacles"`
		LoadingZones     []FieldZone  `json:"loadingzones"`
		DefenseBuffZones []FieldZone  `json:"defensebuffzones"`
		Spawns           []FieldSpawn `json:"spawns"`
	} `json:"data"`
}

type FieldPoint struct {
	X float64
	Y float64
}

func (p *FieldPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{
		number.ToFixed(p.X, 5),
		number.ToFixed(p.Y, 5),
	})
}

func (p *FieldPoint) UnmarshalJSON(b []byte) error {
	var floats []float64
	if err := json.Unmarshal(b, &floats); err != nil {
		return err
	}

	p.X = floats[0]
	p.Y = floats[1]

	return nil
}

type FieldTeam struct {
	Name  string     `json:"name"`
	Color [3]float64 `json:"color"`
}

type FieldRect struct {
	Id       string     `json:"id"`
	Position FieldPoint `json:"position"` // anchor corner
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
}

type FieldZone struct {
	Id       string     `json:"id"`
	Team     string     `json:"team"`
	Position FieldPoint `json:"position"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
}

type FieldSpawn struct {
	Team     string     `json:"team"`
	Position FieldPoint `json:"position"` // anchor corner of the robot pose
	Angle    float64    `json:"angle"`
}

func LoadFieldFromJSON(data []byte) (*FieldContainer, error) {
	var field FieldContainer
	if err := json.Unmarshal(data, &field); err != nil {
		return nil, bettererrors.
			New("Invalid field JSON").
			With(bettererrors.NewFromErr(err))
	}

	if field.Data.Width <= 0 || field.Data.Height <= 0 {
		return nil, bettererrors.New("Field dimensions must be strictly positive")
	}

	return &field, nil
}

func LoadFieldFromFile(path string) (*FieldContainer, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, bettererrors.
			New("Could not read field file").
			SetContext("path", path).
			With(bettererrors.NewFromErr(err))
	}

	return LoadFieldFromJSON(data)
}
