// Package terminal draws a remote maze session into a tcell screen.
package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/zucenko/mazeball/game"
	"github.com/zucenko/mazeball/model"
)

const (
	runeWall   = '█'
	runeGoal   = '▒'
	runeBall   = 'o'
	WinnerText = "WINNER!"
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	styleBackground = tcell.StyleDefault.Background(rgb(model.ColorBackground))
	styleButton     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleBanner     = styleBackground.Foreground(tcell.ColorBlack).Bold(true)
)

// View keeps the last known state of the session and paints it.
type View struct {
	screen tcell.Screen
	layout *model.Layout
	seed   int64
	ball   model.Vec
	walls  []model.Vec
	won    bool

	shown     map[string]bool
	texts     map[string]string
	clickable map[string]bool
	// button cells of the last draw, for mouse clicks
	button [4]int
}

func NewView(screen tcell.Screen) *View {
	v := &View{screen: screen}
	v.clear()
	return v
}

func (v *View) clear() {
	v.shown = make(map[string]bool)
	v.texts = make(map[string]string)
	v.clickable = make(map[string]bool)
	v.won = false
	v.walls = nil
	v.button = [4]int{}
}

// Apply folds one server message into the view.
func (v *View) Apply(m model.ServerMessage) {
	for _, s := range m.Setup {
		v.clear()
		layout := s.Layout
		v.layout = &layout
		v.seed = s.Seed
		v.ball = layout.Ball.Center
	}
	for _, f := range m.Frames {
		v.ball = f.Ball
		v.won = f.Won
		if f.Walls != nil {
			v.walls = f.Walls
		}
	}
	for _, c := range m.Commands {
		switch c.Op {
		case model.CMD_SHOW:
			v.shown[c.Element] = true
		case model.CMD_TEXT:
			v.texts[c.Element] = c.Text
		case model.CMD_CLICKABLE:
			v.clickable[c.Element] = true
		}
	}
}

func (v *View) Won() bool { return v.won }

// Clickable reports whether the server armed the element.
func (v *View) Clickable(element string) bool { return v.clickable[element] }

// scale maps play area units to terminal cells. The last row is the status line.
func (v *View) scale() (sx, sy float64) {
	w, h := v.screen.Size()
	if h > 1 {
		h--
	}
	return float64(w) / v.layout.Width, float64(h) / v.layout.Height
}

func (v *View) cell(p model.Vec) (x, y int) {
	sx, sy := v.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

func (v *View) fill(o model.Obstacle, center model.Vec, r rune, style tcell.Style) {
	sx, sy := v.scale()
	x0 := int(math.Floor((center.X - o.HalfW) * sx))
	x1 := int(math.Ceil((center.X+o.HalfW)*sx)) - 1
	y0 := int(math.Floor((center.Y - o.HalfH) * sy))
	y1 := int(math.Ceil((center.Y+o.HalfH)*sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	if _, h := v.screen.Size(); y1 > h-2 {
		y1 = h - 2
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *View) Draw() {
	v.screen.SetStyle(styleBackground)
	v.screen.Clear()
	if v.layout == nil {
		v.text(0, 0, "waiting for maze...", styleBackground)
		v.screen.Show()
		return
	}
	w, h := v.screen.Size()

	boundary := styleBackground.Foreground(rgb(model.ColorBoundary))
	for _, o := range v.layout.Boundaries {
		v.fill(o, o.Center, runeWall, boundary)
	}
	wall := styleBackground.Foreground(rgb(model.ColorWall))
	for i, o := range v.layout.Walls {
		center := o.Center
		if i < len(v.walls) {
			center = v.walls[i]
		}
		v.fill(o, center, runeWall, wall)
	}
	goal := v.layout.Goal
	v.fill(goal, goal.Center, runeGoal, styleBackground.Foreground(rgb(model.ColorGoal)))

	bx, by := v.cell(v.ball)
	v.screen.SetContent(bx, by, runeBall, nil, styleBackground.Foreground(rgb(model.ColorBall)).Bold(true))

	if v.shown[game.ElementWinner] {
		v.text((w-len(WinnerText))/2, h/3, WinnerText, styleBanner)
	}
	v.button = [4]int{}
	if v.shown[game.ElementReset] {
		label := " " + v.texts[game.ElementReset] + " "
		x, y := (w-len(label))/2, h/2
		v.text(x, y, label, styleButton)
		v.button = [4]int{x, y, x + len(label), y + 1}
	}

	status := fmt.Sprintf("seed %d  arrows/wasd steer  q quit", v.seed)
	if v.clickable[game.ElementReset] {
		status = fmt.Sprintf("seed %d  r play again  q quit", v.seed)
	}
	v.text(0, h-1, status, styleBackground)
	v.screen.Show()
}

// OnButton reports whether the screen cell x,y is on the reset button.
func (v *View) OnButton(x, y int) bool {
	b := v.button
	return x >= b[0] && x < b[2] && y >= b[1] && y < b[3]
}

// KeyCode maps a terminal key to the browser style key code the session
// expects. Zero means the key does not steer.
func KeyCode(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return game.KeyA
		case 'd', 'D':
			return game.KeyD
		case 's', 'S':
			return game.KeyS
		case 'w', 'W':
			return game.KeyW
		}
	}
	return 0
}
