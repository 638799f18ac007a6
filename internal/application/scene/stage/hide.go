package stage

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/application/state"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

var hideColors = []string{"#FF4444", "#4444FF", "#44BB44", "#FFDD44", "#BB44BB", "#44BBBB"}

// Ghost roams the grid. Its behaviour comes from its type.
type Ghost struct {
	entity.Cell
	Type         config.GhostType
	MoveTimer    float64
	MoveInterval float64
}

// HideSpot is a cell the player can hide in.
type HideSpot struct {
	entity.Cell
	Sprite sprite.ID
}

// Hide is the secret stage: cross the grid to the door without being seen.
type Hide struct {
	play
	cfg  config.HideTuning
	grid entity.Grid

	player entity.Cell
	hiding bool
	door   entity.Cell
	spots  []HideSpot
	ghosts []Ghost
	color  string
	colorT float64
}

func NewHide(ctl scene.Controller, id int) *Hide {
	cfg := ctl.Tuning().Hide
	s := &Hide{
		play:  newPlay(ctl, id, "hide"),
		cfg:   cfg,
		grid:  entity.Grid{Cols: cfg.Cols, Rows: cfg.Rows},
		color: hideColors[0],
	}
	s.player = entity.Cell{Col: 0, Row: cfg.Rows / 2}
	s.door = entity.Cell{Col: cfg.Cols - 1, Row: cfg.Rows / 2}
	s.placeSpots()
	s.spawnGhosts()
	return s
}

func (s *Hide) OnEnter() {
	s.play.OnEnter()
	s.react("start")
}

// Player is the player's cell.
func (s *Hide) Player() entity.Cell { return s.player }

// Hiding reports whether the player is hidden.
func (s *Hide) Hiding() bool { return s.hiding }

// Door is the exit cell.
func (s *Hide) Door() entity.Cell { return s.door }

// Ghosts are the roaming ghosts.
func (s *Hide) Ghosts() []Ghost { return s.ghosts }

// Spots are the hiding places.
func (s *Hide) Spots() []HideSpot { return s.spots }

func (s *Hide) placeSpots() {
	kinds := s.ctl.Content().HideSpots
	if len(kinds) == 0 {
		return
	}
	rng := s.ctl.Rand()
	for i := 0; i < s.cfg.HideSpots; i++ {
		c := entity.Cell{Col: rng.Intn(s.cfg.Cols), Row: rng.Intn(s.cfg.Rows)}
		if c == s.player || c == s.door {
			continue
		}
		s.spots = append(s.spots, HideSpot{Cell: c, Sprite: kinds[rng.Intn(len(kinds))]})
	}
}

func (s *Hide) spotAt(c entity.Cell) bool {
	for _, sp := range s.spots {
		if sp.Cell == c {
			return true
		}
	}
	return false
}

func (s *Hide) spawnGhosts() {
	types := s.ctl.Content().GhostTypes
	if len(types) == 0 {
		return
	}
	pick := func(i int) config.GhostType { return types[min(i, len(types)-1)] }
	starts := []struct {
		kind     int
		col, row int
	}{
		{0, 2, 1}, {0, 3, 4}, {1, 4, 2}, {2, 3, 0},
	}
	s.ghosts = s.ghosts[:0]
	for _, st := range starts {
		gt := pick(st.kind)
		cell := entity.Cell{Col: min(st.col, s.cfg.Cols-1), Row: min(st.row, s.cfg.Rows-1)}
		s.ghosts = append(s.ghosts, Ghost{
			Cell:         cell,
			Type:         gt,
			MoveTimer:    1 + s.rnd()*2,
			MoveInterval: 3 / gt.Speed,
		})
	}
}

func (s *Hide) Update(dt float64) error {
	if !s.tick(dt) {
		return nil
	}

	s.colorT += dt
	if s.colorT >= s.cfg.ColorInterval {
		s.colorT = 0
		rng := s.ctl.Rand()
		s.color = hideColors[rng.Intn(len(hideColors))]
		for i := range s.ghosts {
			s.ghosts[i].MoveInterval = (2 + s.rnd()*2) / s.ghosts[i].Type.Speed
		}
	}

	for i := range s.ghosts {
		g := &s.ghosts[i]
		g.MoveTimer -= dt
		if g.MoveTimer <= 0 {
			g.MoveTimer = g.MoveInterval
			s.moveGhost(g)
		}
	}

	if !s.hiding {
		for _, g := range s.ghosts {
			if g.Cell == s.player {
				s.ctl.Audio().Play(audio.CueGhost)
				s.react("found")
				s.lose()
				return nil
			}
		}
	}

	if s.player == s.door {
		s.react("clear")
		s.clear()
	}
	return nil
}

func (s *Hide) moveGhost(g *Ghost) {
	rng := s.ctl.Rand()
	switch g.Type.Behavior {
	case "chase":
		if s.hiding {
			return
		}
		dc := sign(s.player.Col - g.Col)
		dr := sign(s.player.Row - g.Row)
		if s.rnd() < 0.5 && dc != 0 {
			g.Col += dc
		} else if dr != 0 {
			g.Row += dr
		}
	case "teleport":
		g.Cell = entity.Cell{Col: rng.Intn(s.cfg.Cols), Row: rng.Intn(s.cfg.Rows)}
	default:
		dirs := [4]entity.Cell{{Col: 0, Row: 1}, {Col: 0, Row: -1}, {Col: 1, Row: 0}, {Col: -1, Row: 0}}
		d := dirs[rng.Intn(len(dirs))]
		next := entity.Cell{Col: g.Col + d.Col, Row: g.Row + d.Row}
		if s.grid.InBounds(next) {
			g.Cell = next
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// board is the grid area on screen.
func (s *Hide) board() (area entity.Rect, cellW, cellH float64) {
	w, h := s.size()
	area = entity.Rect{X: 20, Y: 70, W: w - 40, H: h - 140}
	return area, area.W / float64(s.cfg.Cols), area.H / float64(s.cfg.Rows)
}

// CellAt maps a screen point to a grid cell.
func (s *Hide) CellAt(x, y float64) (entity.Cell, bool) {
	area, cw, ch := s.board()
	c := entity.Cell{
		Col: int(math.Floor((x - area.X) / cw)),
		Row: int(math.Floor((y - area.Y) / ch)),
	}
	return c, s.grid.InBounds(c)
}

// CellCenter is the screen centre of c.
func (s *Hide) CellCenter(c entity.Cell) (float64, float64) {
	area, cw, ch := s.board()
	return area.X + (float64(c.Col)+0.5)*cw, area.Y + (float64(c.Row)+0.5)*ch
}

func (s *Hide) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, h := s.size()
	screen.Fill(render.Hex(s.color))
	kit.FillGradient(screen, render.Hex("#1A0033CC"), render.Hex("#00001EE6"))

	area, cw, ch := s.board()
	line := render.Fade(render.White, 0.1)
	for c := 0; c <= s.cfg.Cols; c++ {
		x := float32(area.X + float64(c)*cw)
		vector.StrokeLine(screen, x, float32(area.Y), x, float32(area.Y+area.H), 1, line, false)
	}
	for r := 0; r <= s.cfg.Rows; r++ {
		y := float32(area.Y + float64(r)*ch)
		vector.StrokeLine(screen, float32(area.X), y, float32(area.X+area.W), y, 1, line, false)
	}

	cell := math.Min(cw, ch)
	put := func(id sprite.ID, c entity.Cell, scale float64) {
		x, y := s.CellCenter(c)
		kit.DrawSprite(screen, id, x, y, cell*scale, 1)
	}
	put(sprite.Door, s.door, 0.6)
	for _, sp := range s.spots {
		put(sp.Sprite, sp.Cell, 0.6)
	}
	for _, g := range s.ghosts {
		put(g.Type.Sprite, g.Cell, 0.7)
	}
	if s.hiding {
		x, y := s.CellCenter(s.player)
		kit.DrawText(screen, "(hiding)", x, y+ch*0.35,
			render.TextStyle{Size: 12, Color: render.Fade(render.White, 0.3), Align: text.AlignCenter})
	} else {
		put(sprite.Hikari, s.player, 0.6)
	}

	s.particles.Draw(screen, kit)

	remain := int(math.Ceil(s.cfg.ColorInterval - s.colorT))
	kit.DrawText(screen, fmt.Sprintf("Colours change in %ds", remain), w/2, 30,
		render.TextStyle{Size: 14, Color: render.White, Align: text.AlignCenter})
	kit.DrawText(screen, "Tap a neighbour to move / tap a hiding spot twice to hide", w/2, h-40,
		render.TextStyle{Size: 11, Color: render.Fade(render.White, 0.5), Align: text.AlignCenter})
	s.drawHikari(screen, 50, 50, 30)

	if s.phase == state.PhaseGameOver {
		kit.FillRect(screen, entity.Rect{W: w, H: h}, render.Fade(render.Ink, 0.7))
		kit.DrawCenterText(screen, "Found you!", w/2, h/2-20, 32, render.Red)
		kit.DrawText(screen, "Tap to try again", w/2, h/2+30,
			render.TextStyle{Size: 18, Color: render.White, Align: text.AlignCenter})
		return
	}
	s.drawEnd(screen)
}

func (s *Hide) OnClick(x, y float64) {
	if s.phase == state.PhaseGameOver {
		s.restart()
		return
	}
	if s.finishClick() {
		return
	}

	c, ok := s.CellAt(x, y)
	if !ok {
		return
	}
	if c != s.player && !entity.Adjacent(c, s.player) {
		return
	}
	s.ctl.Audio().Play(audio.CueTap)

	if c == s.player {
		if s.spotAt(c) {
			s.hiding = !s.hiding
		}
		return
	}

	s.hiding = false
	s.player = c
	if s.spotAt(c) {
		s.react("spot")
	}
}

// restart puts the player back at the start with fresh ghosts.
func (s *Hide) restart() {
	s.player = entity.Cell{Col: 0, Row: s.cfg.Rows / 2}
	s.hiding = false
	s.spawnGhosts()
	s.resume()
}
