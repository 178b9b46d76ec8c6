package highway

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-highway/internal/core"
	"github.com/vovakirdan/tui-highway/internal/games/highway/sim"
)

// Visual characters for rendering
const (
	RoadEdge     = '║'
	LaneMark     = '┊'
	CoinChar     = '◆'
	PowerUpChar  = '✚'
	ShotChar     = '↑'
	BarrierChar  = '▓'
	WreckChar    = '✸'
	HoodChar     = '▀'
	laneWidth    = 9 // Columns per lane, without markers
	minViewRows  = 8
	dashPeriod   = 4
	hoodZoom     = 0.5 // Share of the lead distance visible from the hood
	carSprite    = "[█]"
	playerTop    = "╔█╗"
	playerBottom = "╚═╝"
)

// view holds the projection for one frame.
type view struct {
	snap      sim.Snapshot
	roadLeft  int
	roadW     int
	top       int     // First road row
	bottom    int     // Last road row
	playerRow int     // Row of the player's nose
	perRow    float64 // World units per row
}

func (g *Game) newView(dst *core.Screen, snap sim.Snapshot) view {
	roadW := snap.Lanes*laneWidth + snap.Lanes + 1
	v := view{
		snap:     snap,
		roadW:    roadW,
		roadLeft: (dst.Width() - roadW) / 2,
		top:      1,
		bottom:   dst.Height() - 2,
	}

	lead := g.cfg.Spawn.LeadDistance
	switch g.Camera() {
	case CameraHood:
		v.playerRow = v.bottom
		v.perRow = lead * hoodZoom / float64(v.playerRow-v.top)
	default:
		v.playerRow = v.bottom - 3
		v.perRow = lead / float64(v.playerRow-v.top)
	}
	return v
}

// rowFor returns the screen row for world position z.
func (v view) rowFor(z float64) int {
	return v.playerRow - int(math.Round((z-v.snap.PlayerZ)/v.perRow))
}

// colFor returns the screen column of a fractional lane position.
func (v view) colFor(lane float64) int {
	return v.roadLeft + 1 + int(math.Round(lane*float64(laneWidth+1))) + laneWidth/2
}

// laneOf converts a lateral position back to a fractional lane index.
func (v view) laneOf(x float64) float64 {
	mid := float64(v.snap.Lanes-1) / 2
	return mid - x/v.snap.LaneOffset
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	snap := g.sim.Snapshot()
	if dst.Height() < minViewRows || dst.Width() < snap.Lanes*(laneWidth+1)+1 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	v := g.newView(dst, snap)
	g.drawRoad(dst, v)
	for _, e := range snap.Entities {
		g.drawEntity(dst, v, e)
	}
	for _, p := range snap.Projectiles {
		if row := v.rowFor(p.Z); row >= v.top && row <= v.bottom {
			dst.SetColor(v.colFor(float64(p.Lane)), row, ShotChar, core.ColorBrightWhite)
		}
	}
	g.drawPlayer(dst, v)
	g.drawHUD(dst, snap)

	if snap.CrashIntensity > 0 {
		g.drawFlash(dst, snap.CrashIntensity)
	}

	switch snap.Mode {
	case sim.ModePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	case sim.ModeGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score), core.ColorBrightRed)
	case sim.ModePlaying:
	}
}

// drawRoad draws the edges and the scrolling lane markers.
func (g *Game) drawRoad(dst *core.Screen, v view) {
	rows := v.bottom - v.top + 1
	dst.DrawVLine(v.roadLeft, v.top, rows, RoadEdge, core.ColorWhite)
	dst.DrawVLine(v.roadLeft+v.roadW-1, v.top, rows, RoadEdge, core.ColorWhite)

	phase := int(v.snap.PlayerZ/v.perRow) % dashPeriod
	for lane := 1; lane < v.snap.Lanes; lane++ {
		x := v.roadLeft + lane*(laneWidth+1)
		for y := v.top; y <= v.bottom; y++ {
			if (y+phase)%dashPeriod < dashPeriod/2 {
				dst.SetColor(x, y, LaneMark, core.ColorGray)
			}
		}
	}
}

func (g *Game) drawEntity(dst *core.Screen, v view, e sim.Entity) {
	row := v.rowFor(e.Z)
	if row < v.top || row > v.bottom {
		return
	}
	col := v.colFor(float64(e.Lane))

	switch e.Kind {
	case sim.KindHazard:
		if e.Variant == sim.VariantBarrier {
			for dx := -2; dx <= 2; dx++ {
				dst.SetColor(col+dx, row, BarrierChar, core.ColorOrange)
			}
			return
		}
		dst.DrawTextColor(col-1, row, carSprite, core.ColorRed)
	case sim.KindCollectible:
		dst.SetColor(col, row, CoinChar, core.ColorBrightYellow)
	case sim.KindPowerUp:
		dst.SetColor(col, row, PowerUpChar, core.ColorBrightCyan)
	case sim.KindProjectile:
		dst.SetColor(col, row, ShotChar, core.ColorBrightWhite)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v view) {
	col := v.colFor(v.laneOf(v.snap.PlayerX))

	color := core.ColorBrightGreen
	if v.snap.Shield > 0 {
		color = core.ColorBrightCyan
	}

	if v.snap.Mode == sim.ModeGameOver {
		dst.SetColor(col, v.playerRow, WreckChar, core.ColorBrightRed)
		return
	}

	if g.Camera() == CameraHood {
		for dx := -laneWidth / 2; dx <= laneWidth/2; dx++ {
			dst.SetColor(col+dx, v.playerRow, HoodChar, color)
		}
		return
	}

	dst.DrawTextColor(col-1, v.playerRow, playerTop, color)
	dst.DrawTextColor(col-1, v.playerRow+1, playerBottom, color)
	if v.snap.Boosting {
		dst.SetColor(col, v.playerRow+2, '▒', core.ColorYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	hud := fmt.Sprintf(" SCORE %d  DIST %d  BONUS %d  SPD %.1f  LANE %d/%d  CAM %s ",
		snap.Score, snap.Distance, snap.Collected, snap.Speed, snap.Lane+1, snap.Lanes, g.Camera())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	status := ""
	if snap.Shield > 0 {
		status += fmt.Sprintf(" SHIELD %.1fs ", snap.Shield)
	}
	if snap.Boosting {
		status += " BOOST "
	}
	if snap.AutoFire {
		status += " [AUTO-FIRE] "
	}
	if snap.Cheat {
		status += " [INVULNERABLE] "
	}
	dst.DrawTextColor(0, dst.Height()-1, status, core.ColorCyan)
}

// drawFlash frames the screen in red while the crash flash fades.
func (g *Game) drawFlash(dst *core.Screen, intensity float64) {
	color := core.ColorRed
	if intensity > 0.5 {
		color = core.ColorBrightRed
	}
	if int(intensity*10)%2 == 1 {
		return
	}
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
