package catch

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/eggdrop/internal/core"
)

// Visual characters for rendering
const (
	EggChar       = 'o'
	GoldenEggChar = '@'
	CrackChar     = '✶'
	GroundChar    = '═'
	BasketLeft    = '\\'
	BasketRight   = '/'
	BasketFill    = '▄'
	HeartFull     = '♥'
	HeartEmpty    = '♡'
)

// Minimum screen size that can show a meaningful playfield
const (
	MinScreenW = 20
	MinScreenH = 8
)

// viewport maps playfield units onto screen cells. Row 0 holds the HUD and
// the last row the ground, the playfield fills the rows in between.
type viewport struct {
	top    int
	rows   int
	cols   int
	scaleX float64
	scaleY float64
}

func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	rows := dst.Height() - 2
	cols := dst.Width()
	return viewport{
		top:    1,
		rows:   rows,
		cols:   cols,
		scaleX: float64(cols) / fieldW,
		scaleY: float64(rows) / fieldH,
	}
}

func (v viewport) col(x float64) int {
	return core.Clamp(int(x*v.scaleX), 0, v.cols-1)
}

// row returns -1 for points above the playfield so callers can skip them.
func (v viewport) row(y float64) int {
	if y < 0 {
		return -1
	}
	return v.top + core.Clamp(int(y*v.scaleY), 0, v.rows-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}
	if g.engine == nil {
		return
	}

	snap := g.engine.Snapshot()
	cfg := g.cfg
	vp := newViewport(dst, cfg.Playfield.Width, cfg.Playfield.Height)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)

	for _, fx := range snap.Effects {
		dst.SetColor(vp.col(fx.X), vp.row(fx.Y), CrackChar, core.ColorRed)
	}

	for _, obj := range snap.Objects {
		r := vp.row(obj.Y + cfg.Objects.Height/2)
		if r < 0 {
			continue
		}
		c := vp.col(obj.X + cfg.Objects.Width/2)
		if obj.Rare {
			dst.SetColor(c, r, GoldenEggChar, core.ColorBrightYellow)
		} else {
			dst.SetColor(c, r, EggChar, core.ColorBrightWhite)
		}
	}

	g.drawBasket(dst, vp, snap)
	g.drawHUD(dst, snap)

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}

	if !snap.Running {
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  Eggs: %d  |  Press R to restart", snap.Score, snap.ObjectsCaught))
	}
}

// drawBasket renders the catcher as a single row shaped like \▄▄▄▄/.
func (g *Game) drawBasket(dst *core.Screen, vp viewport, snap Snapshot) {
	c := g.cfg.Catcher
	left := vp.col(snap.CatcherX)
	right := vp.col(snap.CatcherX + c.Width - 1)
	if right-left < 2 {
		right = left + 2
	}
	y := vp.row(snap.CatcherY + c.Height/2)

	dst.SetColor(left, y, BasketLeft, core.ColorOrange)
	for x := left + 1; x < right; x++ {
		dst.SetColor(x, y, BasketFill, core.ColorOrange)
	}
	dst.SetColor(right, y, BasketRight, core.ColorOrange)
}

// drawHUD renders score, level and caught count on the left and lives on the right.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Level: %d  Eggs: %d", snap.Score, snap.Level, snap.ObjectsCaught))

	hearts := strings.Repeat(string(HeartFull), snap.Lives) +
		strings.Repeat(string(HeartEmpty), max(g.cfg.Lives-snap.Lives, 0))
	dst.DrawTextColor(dst.Width()-len([]rune(hearts))-1, 0, hearts, core.ColorBrightRed)
}
