package stage

import (
	"fmt"

	"github.com/younwookim/hikari/internal/application/scene"
)

type constructor func(ctl scene.Controller, id int) scene.Scene

var registry = map[int]constructor{
	1: func(c scene.Controller, id int) scene.Scene { return NewCollect(c, id) },
	2: func(c scene.Controller, id int) scene.Scene { return NewCut(c, id) },
	3: func(c scene.Controller, id int) scene.Scene { return NewChase(c, id) },
	4: func(c scene.Controller, id int) scene.Scene { return NewRace(c, id) },
	5: func(c scene.Controller, id int) scene.Scene { return NewMakeup(c, id) },
	6: func(c scene.Controller, id int) scene.Scene { return NewFlush(c, id) },
	7: func(c scene.Controller, id int) scene.Scene { return NewHide(c, id) },
	8: func(c scene.Controller, id int) scene.Scene { return NewBattle(c, id) },
	9: func(c scene.Controller, id int) scene.Scene { return NewScroller(c, id) },
}

// Build creates the scene for stage id.
func Build(ctl scene.Controller, id int) (scene.Scene, error) {
	mk, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown stage %d", id)
	}
	return mk(ctl, id), nil
}

// Known reports whether id has a stage.
func Known(id int) bool {
	_, ok := registry[id]
	return ok
}
