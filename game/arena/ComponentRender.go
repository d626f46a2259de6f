package arena

import (
	"github.com/robomatch/robomatch/common/types"
)

type Render struct {
	type_ string
	color types.RGB
}

func (game Game) CastRender(data interface{}) *Render {
	return data.(*Render)
}

func (render Render) GetType() string {
	return render.type_
}

func (render Render) GetColor() types.RGB {
	return render.color
}
