package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/entity"
	"github.com/vovakirdan/astro-arcade/internal/inventory"
	"github.com/vovakirdan/astro-arcade/internal/machine"
)

// hudRows is the number of screen rows reserved for the HUD.
const hudRows = 2

// Glyphs
const (
	ProjectileChar = '•'
	TokenChar      = '$'
	PillChar       = '+'
	BorderHoriz    = '─'
)

// hazardGlyphs by tier, largest first.
var hazardGlyphs = []rune{'@', 'O', 'o'}

// shipGlyphs by heading octant, starting at up and turning clockwise.
var shipGlyphs = []rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}

// Render draws the current session state to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < 30 || dst.Height() < 12 {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Need 30x12")
		return
	}

	s.renderHUD(dst)

	phase := s.machine.Current()
	if phase == machine.Playing || phase == machine.Paused || phase == machine.GameOver {
		s.renderWorld(dst)
	}
	s.renderOverlay(dst)
}

// renderHUD draws score, level, lives and inventory.
func (s *Session) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Level: %d  Lives: %d", s.tracker.Level, s.tracker.Lives))

	inv := fmt.Sprintf("Ships %d  Tokens %d  Pills %d",
		s.ledger.Count(inventory.Ships),
		s.ledger.Count(inventory.Tokens),
		s.ledger.Count(inventory.Pills))
	dst.DrawText(dst.Width()-len(inv)-1, 0, inv)

	for x := range dst.Width() {
		dst.SetColor(x, 1, BorderHoriz, core.ColorGray)
	}
}

func (s *Session) renderWorld(dst *core.Screen) {
	for _, h := range s.hazards {
		s.drawEntity(dst, h, hazardGlyphs[min(h.Tier, len(hazardGlyphs)-1)])
	}
	for _, k := range s.pickups {
		glyph := TokenChar
		if k.Kind == entity.KindPill {
			glyph = PillChar
		}
		s.drawEntity(dst, k, glyph)
	}
	for _, p := range s.projectiles {
		s.drawEntity(dst, p, ProjectileChar)
	}

	if ship := s.ship; ship != nil && ship.Active {
		now := s.clock.Now()
		// Blink while invulnerable.
		if !s.tracker.IsInvulnerable(now) || (s.ticks/8)%2 == 0 {
			s.drawEntity(dst, ship, shipGlyph(ship.Heading))
		}
	}
}

func shipGlyph(heading float64) rune {
	oct := int(math.Round(heading/(math.Pi/4))) % len(shipGlyphs)
	if oct < 0 {
		oct += len(shipGlyphs)
	}
	return shipGlyphs[oct]
}

// drawEntity fills the cells covered by the pulsed render radius.
func (s *Session) drawEntity(dst *core.Screen, e *entity.Entity, glyph rune) {
	if !e.Active {
		return
	}
	sx := float64(dst.Width()) / s.bounds.Width
	sy := float64(dst.Height()-hudRows) / s.bounds.Height
	r := e.RenderRadius()

	set := func(cx, cy int) {
		if cy < 0 || cy >= dst.Height()-hudRows {
			return
		}
		dst.SetColor(cx, cy+hudRows, glyph, e.Color)
	}

	x0 := int(math.Floor((e.Pos.X - r) * sx))
	x1 := int(math.Floor((e.Pos.X + r) * sx))
	y0 := int(math.Floor((e.Pos.Y - r) * sy))
	y1 := int(math.Floor((e.Pos.Y + r) * sy))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx := (float64(cx) + 0.5) / sx
			wy := (float64(cy) + 0.5) / sy
			if math.Hypot(wx-e.Pos.X, wy-e.Pos.Y) <= r {
				set(cx, cy)
			}
		}
	}
	set(int(math.Floor(e.Pos.X*sx)), int(math.Floor(e.Pos.Y*sy)))
}

// renderOverlay draws lifecycle messages.
func (s *Session) renderOverlay(dst *core.Screen) {
	switch s.machine.Current() {
	case machine.Initial:
		if s.runtime.Wallet == "" {
			s.drawCenteredBox(dst, "ASTRO", "No wallet connected: run with --wallet <address>")
			return
		}
		s.drawCenteredBox(dst, "ASTRO", "Wallet "+shortWallet(s.runtime.Wallet)+"  |  Press ENTER to start")

	case machine.ReadyToPlay:
		if s.countdown > 0 {
			rate := max(s.runtime.TickRate, 1)
			secs := (s.countdown + rate - 1) / rate
			s.drawCenteredBox(dst, "GET READY", fmt.Sprintf("Launching in %d", secs))
			return
		}
		s.drawCenteredBox(dst, "READY", "ENTER launch  |  B back  |  1 ship 2 bomb 3 shield")

	case machine.Paused:
		s.drawCenteredBox(dst, "PAUSED", "P resume  |  B menu")

	case machine.GameOver:
		subtitle := fmt.Sprintf("Score: %d  Level: %d  |  R restart, B menu", s.score, s.tracker.Level)
		s.drawCenteredBox(dst, "GAME OVER", subtitle)

	case machine.Playing:
		if s.tracker.IsLevelTransition {
			dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("LEVEL %d", s.tracker.Level))
		}
	}
}

// drawCenteredBox draws a centered message box.
func (s *Session) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw := len([]rune(title))
	sw := len([]rune(subtitle))
	boxW := min(max(tw, sw)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(max(boxX+(boxW-sw)/2, boxX+1), boxY+3, subtitle)
}

func shortWallet(w string) string {
	r := []rune(w)
	if len(r) <= 12 {
		return w
	}
	return string(r[:6]) + "…" + string(r[len(r)-4:])
}
