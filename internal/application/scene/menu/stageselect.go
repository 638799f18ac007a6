package menu

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/progress"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

// Grid layout.
const (
	selectCols   = 2
	selectBtnH   = 70.0
	selectGapY   = 14.0
	selectStartY = 70.0
)

// StageButton is one cell of the stage select grid.
type StageButton struct {
	Rect    entity.Rect
	Stage   config.StageInfo
	Cleared bool
	Locked  bool
}

// StageSelect is the hub that lists every stage.
type StageSelect struct {
	scene.Base
	ctl scene.Controller
}

func NewStageSelect(ctl scene.Controller) *StageSelect {
	return &StageSelect{ctl: ctl}
}

// Buttons lays out the grid for the current progress. Draw and OnClick
// both call it so hit-testing always matches what is on screen.
func (s *StageSelect) Buttons() []StageButton {
	w, _ := s.ctl.ScreenSize()
	content := s.ctl.Content()
	st := s.ctl.Progress()

	btnW := w * 0.4
	gapX := w * 0.06
	startX := (w - (btnW*selectCols + gapX*(selectCols-1))) / 2

	stages := append([]config.StageInfo(nil), content.Stages...)
	if secretVisible(content, st) {
		stages = append(stages, content.Secret)
	}

	buttons := make([]StageButton, len(stages))
	for i, info := range stages {
		col := i % selectCols
		row := i / selectCols
		buttons[i] = StageButton{
			Rect: entity.Rect{
				X: startX + float64(col)*(btnW+gapX),
				Y: selectStartY + float64(row)*(selectBtnH+selectGapY),
				W: btnW,
				H: selectBtnH,
			},
			Stage:   info,
			Cleared: st.IsCleared(progress.StageID(info.ID)),
			Locked:  locked(content, st, info.ID),
		}
	}
	return buttons
}

// secretVisible: the secret stage shows once every main stage is cleared
// or the ending has unlocked it.
func secretVisible(c *config.Content, st *progress.State) bool {
	if st.SecretUnlocked() {
		return true
	}
	return st.AllCleared(stageIDs(c))
}

// locked: a stage opens when it is first, cleared, or its predecessor in
// catalogue order is cleared. The secret stage is never locked.
func locked(c *config.Content, st *progress.State, id int) bool {
	if id == c.Secret.ID || st.IsCleared(progress.StageID(id)) {
		return false
	}
	prev, ok := c.Predecessor(id)
	if !ok {
		return false
	}
	return !st.IsCleared(progress.StageID(prev))
}

func stageIDs(c *config.Content) []progress.StageID {
	ids := c.StageIDs()
	out := make([]progress.StageID, len(ids))
	for i, id := range ids {
		out[i] = progress.StageID(id)
	}
	return out
}

func (s *StageSelect) Draw(screen *ebiten.Image) {
	kit := s.ctl.Kit()
	w, _ := s.ctl.ScreenSize()
	kit.FillGradient(screen, render.Hex("#2a1a4a"), render.Hex("#0a0a2e"))
	kit.DrawCenterText(screen, "Stage Select", w/2, 40, 22, render.Gold)

	for _, b := range s.Buttons() {
		r := b.Rect
		bg := render.Hex(b.Stage.Background)
		alpha := 1.0
		if b.Locked {
			bg = render.Locked
			alpha = 0.5
		}
		kit.FillRoundRect(screen, r, 12, render.Fade(bg, alpha))
		kit.DrawSprite(screen, b.Stage.Icon, r.X+28, r.Y+r.H/2, 32, alpha)

		name := b.Stage.Name
		desc := b.Stage.Description
		switch {
		case b.Locked:
			name, desc = "Locked", ""
		case b.Cleared:
			desc = "Cleared!"
		}
		kit.DrawText(screen, name, r.X+52, r.Y+r.H/2-10,
			render.TextStyle{Size: 15, Color: render.White, Align: text.AlignStart, Bold: true})
		kit.DrawParagraph(screen, desc, r.X+52, r.Y+r.H/2+12, r.W-58, 14,
			render.TextStyle{Size: 11, Color: render.Hex("#DDDDDD"), Align: text.AlignStart})
	}
}

func (s *StageSelect) OnClick(x, y float64) {
	for _, b := range s.Buttons() {
		if b.Locked || !b.Rect.Contains(x, y) {
			continue
		}
		s.ctl.Audio().Play(audio.CueTap)
		s.ctl.StartStage(b.Stage.ID)
		return
	}
}
