package runner

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/nightshift/internal/config"
	"github.com/vovakirdan/nightshift/internal/core"
)

// Visual characters for rendering
const (
	RoadEdgeLeft  = '╱'
	RoadEdgeRight = '╲'
	LaneMark      = '·'
	HorizonChar   = '─'
	BarrierChar   = '▄'
	GateBarChar   = '▀'
	GatePostChar  = '║'
	PickupChar    = '◆'
)

// Road geometry relative to the bottom road width.
const (
	roadTopRatio  = 180.0 / 710.0
	laneOffsetPct = 220.0 / 710.0
	roadWidthPct  = 0.9
)

// view holds the projection for one rendered frame.
type view struct {
	width    int
	height   int
	bounds   core.Rect
	horizonY int
	playerY  int
	centerX  float64
	bottomW  float64
	maxDepth float64
	peakJump float64
	jumpSpan int
}

func (g *Game) newView(dst *core.Screen) view {
	w, h := dst.Width(), dst.Height()
	horizon := core.Max(2, h/5)
	player := core.Max(horizon+2, h-3)

	phys := g.cfg.Physics
	peak := 1.0
	if phys.Gravity > 0 {
		peak = phys.JumpVelocity * phys.JumpVelocity / (2 * phys.Gravity)
	}

	return view{
		width:    w,
		height:   h,
		bounds:   core.NewRect(0, 0, w, h),
		horizonY: horizon,
		playerY:  player,
		centerX:  float64(w) / 2,
		bottomW:  float64(w) * roadWidthPct,
		maxDepth: g.cfg.Spawn.MaxDepth,
		peakJump: math.Max(peak, 1),
		jumpSpan: core.Max(1, (player-horizon)/3),
	}
}

// depthRatio maps depth to 0 at the far end and 1 at the player.
func (v view) depthRatio(depth float64) float64 {
	if v.maxDepth <= 0 {
		return 1
	}
	return 1 - depth/v.maxDepth
}

// laneX returns the screen column of a lane at depth ratio t.
func (v view) laneX(lane Lane, t float64) int {
	scale := 0.4 + t*0.6
	return int(math.Round(v.centerX + float64(lane-LaneCenter)*v.bottomW*laneOffsetPct*scale))
}

// rowFor returns the screen row of depth ratio t.
func (v view) rowFor(t float64) int {
	span := float64(v.playerY - v.horizonY)
	return v.horizonY + int(math.Round(t*t*span))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	v := g.newView(dst)
	g.drawRoad(dst, v)

	pickups := g.sim.Pickups()
	for _, p := range pickups {
		g.drawPickup(dst, v, p)
	}

	// Far obstacles first so nearer ones overdraw them.
	obstacles := g.sim.Obstacles()
	sort.SliceStable(obstacles, func(i, j int) bool {
		return obstacles[i].Depth > obstacles[j].Depth
	})
	for _, o := range obstacles {
		g.drawObstacle(dst, v, o)
	}

	g.drawRunner(dst, v)
	g.drawHUD(dst)

	switch {
	case !g.sim.Running():
		subtitle := fmt.Sprintf("Final Score: %d  |  Enter/R to run again", g.lastFinal)
		title := "GAME OVER"
		if g.newBest {
			title = "GAME OVER - NEW BEST!"
		}
		g.drawCenteredMessage(dst, title, subtitle)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.sim.Elapsed() < 1.5:
		dst.DrawTextCentered(v.horizonY-1, "Switch lanes, jump low barriers, slide under gates")
	}
}

// drawRoad renders the horizon, the road edges and the lane dividers.
func (g *Game) drawRoad(dst *core.Screen, v view) {
	dst.DrawHLine(0, v.horizonY, v.width, HorizonChar, core.ColorGray)

	topW := v.bottomW * roadTopRatio
	bottom := v.height - 1
	for y := v.horizonY + 1; y <= bottom; y++ {
		f := float64(y-v.horizonY) / float64(core.Max(1, bottom-v.horizonY))
		roadW := core.Lerp(topW, v.bottomW, f)

		left := int(math.Round(v.centerX - roadW/2))
		right := int(math.Round(v.centerX + roadW/2))
		dst.SetColored(left, y, RoadEdgeLeft, core.ColorBlue)
		dst.SetColored(right, y, RoadEdgeRight, core.ColorBlue)

		for _, blend := range [...]float64{1.0 / 3, 2.0 / 3} {
			x := int(math.Round(v.centerX + (blend-0.5)*roadW))
			if y%2 == 0 {
				dst.SetColored(x, y, LaneMark, core.ColorGray)
			}
		}
	}
}

func (g *Game) drawObstacle(dst *core.Screen, v view, o Obstacle) {
	t := v.depthRatio(o.Depth)
	if t < 0 {
		return
	}
	x := v.laneX(o.Lane, t)
	y := v.rowFor(t)
	scale := 0.26 + t*0.95
	half := core.Max(0, int(math.Round(3*scale)))

	switch o.Kind {
	case ObstacleLow:
		dst.DrawHLine(x-half, y, 2*half+1, BarrierChar, core.ColorRed)
	case ObstacleHigh:
		posts := core.Max(1, int(math.Round(3*scale)))
		top := y - posts
		dst.DrawHLine(x-half, top, 2*half+1, GateBarChar, core.ColorMagenta)
		dst.DrawVLine(x-half, top+1, posts, GatePostChar, core.ColorMagenta)
		dst.DrawVLine(x+half, top+1, posts, GatePostChar, core.ColorMagenta)
	}
}

func (g *Game) drawPickup(dst *core.Screen, v view, p Pickup) {
	t := v.depthRatio(p.Depth)
	if t < 0 {
		return
	}
	x, y := v.laneX(p.Lane, t), v.rowFor(t)-1
	if !v.bounds.Contains(x, y) {
		return
	}
	dst.SetColored(x, y, PickupChar, core.ColorCyan)
}

// drawRunner renders the player sprite, raised by the current jump height.
func (g *Game) drawRunner(dst *core.Screen, v view) {
	p := g.sim.Player()
	x := v.laneX(p.Lane, 1)
	lift := int(math.Round(core.ClampF(p.JumpHeight/v.peakJump, 0, 1) * float64(v.jumpSpan)))
	feet := v.playerY - lift
	c := core.ColorBrightYellow

	if p.Sliding {
		// Flattened sprite
		dst.DrawTextColored(x-2, feet, "▄▄██▶", c)
		return
	}

	dst.DrawTextColored(x-1, feet-2, "(◉)", c)
	dst.DrawTextColored(x-1, feet-1, "/█\\", c)
	if p.JumpHeight > 0 {
		dst.DrawTextColored(x-1, feet, "╯ ╰", c)
	} else if g.tickCount%20 < 10 {
		dst.DrawTextColored(x-1, feet, "╱ ╲", c)
	} else {
		dst.DrawTextColored(x-1, feet, " ╳ ", c)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.sim.Score()), core.ColorBrightWhite)

	best := fmt.Sprintf(" Best: %d ", core.Max(g.best, g.sim.Score()))
	dst.DrawTextColored(dst.Width()-len(best)-2, 0, best, core.ColorYellow)

	speed := fmt.Sprintf(" Spd: %.0f ", g.sim.Speed())
	if config.IsFixedPreset(g.cfg.Difficulty.Preset) {
		speed = fmt.Sprintf(" Spd: %.0f (fixed) ", g.sim.Speed())
	}
	dst.DrawTextColored(dst.Width()-len(best)-len(speed)-3, 0, speed, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	cx, cy := box.Center()
	dst.DrawTextColored(cx-titleLen/2, cy-1, title, core.ColorBrightRed)
	dst.DrawText(cx-subtitleLen/2, cy+1, subtitle)
}
