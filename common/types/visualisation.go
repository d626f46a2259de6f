package types

import (
	"github.com/robomatch/robomatch/common/utils/vector"
)

// RGB is a color triple, each component in [0,1]. The core never inspects
// what the rendering side does with it.
type RGB [3]float64

// VizShape is one renderable body: its vertex outline and its color.
type VizShape struct {
	Id       string           `json:"id"`
	Type     string           `json:"type"`
	Vertices []vector.Vector2 `json:"vertices"`
	Color    RGB              `json:"color"`
}

// VizMessage is one full frame of the match, marshaled to JSON and pushed
// to every connected watcher after each tick.
type VizMessage struct {
	MatchId string     `json:"matchid"`
	Tick    int        `json:"tick"`
	Shapes  []VizShape `json:"shapes"`
}
