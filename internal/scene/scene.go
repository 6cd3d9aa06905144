// Package scene draws a pour snapshot into a core.Screen: the tilting pot,
// the stream, the cup with its gold ring, and the puddle left by a spill.
// It reads the snapshot only and never feeds anything back into the
// simulation.
package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/barista/internal/core"
	"github.com/vovakirdan/barista/internal/pour"
)

// Scene geometry.
const (
	MinWidth  = 32
	MinHeight = 14

	CupInnerWidth = 12
	MaxCupDepth   = 12
	MinCupDepth   = 4

	// RingFraction is where the gold target ring sits inside the cup.
	RingFraction = 0.88

	hudRows = 2
	potRows = 4
	// Column of the spout tip within the pot's spout row.
	spoutCol = 7
	spoutRow = 2
)

// Scene characters.
const (
	WallChar   = '│'
	LiquidChar = '█'
	RingChar   = '┄'
	StreamChar = '┃'
	TableChar  = '─'
	PuddleChar = '≈'
	SteamChar  = '∿'
)

// partial holds the eighth-blocks used for the liquid surface row.
var partial = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

var potSprite = []string{
	"╭───╮",
	"│   ├──╮",
	"│   │  ╰",
	"╰───╯",
}

// Layout places the scene elements for a given screen size.
type Layout struct {
	Width, Height int
	Cup           core.Rect // Interior of the cup, excluding walls
	PotX, PotY    int       // Top-left of the upright pot
	TableY        int
}

// NewLayout computes the layout for a screen of the given size.
func NewLayout(width, height int) Layout {
	depth := core.Clamp(height-10, MinCupDepth, MaxCupDepth)
	tableY := height - 1
	cupTop := tableY - 1 - depth
	cupX := width/2 - CupInnerWidth/2

	return Layout{
		Width:  width,
		Height: height,
		Cup:    core.NewRect(cupX, cupTop, CupInnerWidth, depth),
		PotX:   cupX + CupInnerWidth/2 - spoutCol - 1,
		PotY:   cupTop - potRows - 2,
		TableY: tableY,
	}
}

// Fits reports whether the screen is large enough for the scene.
func (l Layout) Fits() bool {
	return l.Width >= MinWidth && l.Height >= MinHeight
}

// Area is the region that counts as "inside" the scene for pointer input.
func (l Layout) Area() core.Rect {
	return core.NewRect(0, 0, l.Width, l.Height)
}

// RingY returns the row of the gold ring.
func (l Layout) RingY() int {
	return l.Cup.Bottom() - int(math.Round(RingFraction*float64(l.Cup.H)))
}

// Draw renders one frame of the scene.
func Draw(dst *core.Screen, snap pour.Snapshot, params pour.Params) {
	dst.Clear()
	l := NewLayout(dst.Width(), dst.Height())
	if !l.Fits() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	drawTable(dst, l, snap.Spilled)
	drawCup(dst, l, snap.VisualFill)
	spoutX, spoutY := drawPot(dst, l, snap.TiltAngle, params.MaxTilt)
	if snap.StreamVisible && snap.State == pour.StatePlaying {
		drawStream(dst, l, spoutX, spoutY, snap.VisualFill)
	}
	if snap.State == pour.StateFinished {
		drawSteam(dst, l)
	}
	if snap.State == pour.StatePlaying {
		drawHUD(dst, snap)
	}
}

func drawTable(dst *core.Screen, l Layout, spilled bool) {
	dst.DrawHLine(0, l.TableY, l.Width, TableChar, core.ColorGray)
	if !spilled {
		return
	}
	// Puddle spreads past both walls
	spread := CupInnerWidth/2 + 4
	dst.DrawHLine(l.Cup.X-spread/2, l.TableY, l.Cup.W+spread, PuddleChar, core.ColorCoffee)
	dst.SetColored(l.Cup.X-2, l.Cup.Bottom()-1, '╎', core.ColorCoffee)
	dst.SetColored(l.Cup.Right()+2, l.Cup.Bottom()-1, '╎', core.ColorCoffee)
}

func drawCup(dst *core.Screen, l Layout, visual float64) {
	c := l.Cup
	dst.DrawVLine(c.X-1, c.Y, c.H, WallChar, core.ColorCream)
	dst.DrawVLine(c.Right(), c.Y, c.H, WallChar, core.ColorCream)
	dst.SetColored(c.X-1, c.Bottom(), '╰', core.ColorCream)
	dst.SetColored(c.Right(), c.Bottom(), '╯', core.ColorCream)
	dst.DrawHLine(c.X, c.Bottom(), c.W, '─', core.ColorCream)

	// Handle
	mid := c.Y + c.H/2
	dst.SetColored(c.Right()+1, mid-1, '╮', core.ColorCream)
	dst.SetColored(c.Right()+1, mid, '│', core.ColorCream)
	dst.SetColored(c.Right()+1, mid+1, '╯', core.ColorCream)

	ringY := l.RingY()
	dst.DrawHLine(c.X, ringY, c.W, RingChar, core.ColorGold)
	dst.SetColored(c.X-1, ringY, '├', core.ColorGold)
	dst.SetColored(c.Right(), ringY, '┤', core.ColorGold)

	eighths := int(math.Round(core.ClampF(visual, 0, 1) * float64(c.H*8)))
	full, rest := eighths/8, eighths%8
	for i := 0; i < full; i++ {
		dst.DrawHLine(c.X, c.Bottom()-1-i, c.W, LiquidChar, core.ColorCoffee)
	}
	if rest > 0 {
		dst.DrawHLine(c.X, c.Bottom()-1-full, c.W, partial[rest], core.ColorCoffee)
	}
}

// surfaceY returns the first row above the liquid.
func surfaceY(l Layout, visual float64) int {
	rows := int(math.Ceil(core.ClampF(visual, 0, 1) * float64(l.Cup.H)))
	return l.Cup.Bottom() - rows
}

// drawPot shears the pot sprite by the tilt and returns the spout tip.
func drawPot(dst *core.Screen, l Layout, tilt, maxTilt float64) (spoutX, spoutY int) {
	lean := math.Sin(core.ClampF(tilt, 0, maxTilt)) * 1.5
	for i, row := range potSprite {
		shift := int(math.Round(float64(potRows-1-i) * lean))
		dst.DrawText(l.PotX+shift, l.PotY+i, row, core.ColorSteel)
		if i == spoutRow {
			spoutX = l.PotX + shift + spoutCol
			spoutY = l.PotY + i
		}
	}
	return spoutX, spoutY
}

func drawStream(dst *core.Screen, l Layout, x, fromY int, visual float64) {
	to := surfaceY(l, visual)
	for y := fromY + 1; y < to; y++ {
		dst.SetColored(x, y, StreamChar, core.ColorCoffee)
	}
}

func drawSteam(dst *core.Screen, l Layout) {
	cx := l.Cup.X + l.Cup.W/2
	for i, dx := range []int{-2, 0, 2} {
		dst.SetColored(cx+dx, l.Cup.Y-1-i%2, SteamChar, core.ColorSteam)
	}
}

func drawHUD(dst *core.Screen, snap pour.Snapshot) {
	dst.DrawText(2, 0, "Fill to Gold Ring", core.ColorGold)

	fill := fmt.Sprintf("Fill: %.0f%%", math.Min(snap.FillLevel, pour.Capacity))
	fillColor := core.ColorDefault
	if snap.FillLevel > pour.Capacity {
		fill += " OVERFLOW!"
		fillColor = core.ColorRed
	}
	dst.DrawText(dst.Width()-len(fill)-2, 0, fill, fillColor)

	serve := "[enter] " + pour.ServeLabel(snap.FillLevel)
	serveColor := core.ColorGreen
	if !snap.CanFinish {
		serveColor = core.ColorGray
	}
	dst.DrawText(dst.Width()-len(serve)-2, 1, serve, serveColor)
}
