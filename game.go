package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zucenko/mazeball/config"
	"github.com/zucenko/mazeball/game"
	"github.com/zucenko/mazeball/maze"
	"github.com/zucenko/mazeball/model"
	"github.com/zucenko/mazeball/physics"
)

const (
	tick       = float32(1) / 60
	buttonPadX = 24
	buttonPadY = 14
)

// key codes of the browser keyboard events the session understands
var steering = map[ebiten.Key]int{
	ebiten.KeyLeft:  game.KeyLeft,
	ebiten.KeyUp:    game.KeyUp,
	ebiten.KeyRight: game.KeyRight,
	ebiten.KeyDown:  game.KeyDown,
	ebiten.KeyA:     game.KeyA,
	ebiten.KeyD:     game.KeyD,
	ebiten.KeyS:     game.KeyS,
	ebiten.KeyW:     game.KeyW,
}

type Game struct {
	Config  config.Config
	World   *physics.World
	Session *game.Session
	UI      *screenUI
	Seed    int64
	Tweens  map[*gween.Tween]*Action
	Button  *Nine

	ballImage *ebiten.Image
	bannerY   float64
	landed    bool
}

var Font font.Face

func init() {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	Font = truetype.NewFace(tt, &truetype.Options{
		Size:       40,
		DPI:        dpi,
		SubPixelsX: 100,
		Hinting:    font.HintingFull,
	})
}

func NewGame(cfg config.Config) (*Game, error) {
	img, positions := roundedSlices(12)
	slices, err := ebiten.NewImageFromImage(img, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Config: cfg,
		Tweens: make(map[*gween.Tween]*Action),
		Button: &Nine{
			images:    slices,
			alpha:     1,
			R:         1, G: 1, B: 1, Scale: 1,
			positions: positions,
		},
	}
	if err := g.reload(); err != nil {
		return nil, err
	}
	return g, nil
}

// reload carves a new maze and starts over.
func (g *Game) reload() error {
	res, err := maze.Generate(g.Config.Maze())
	if err != nil {
		return err
	}
	layout := res.Layout
	g.Seed = res.Seed
	g.Config.Seed = 0

	g.ballImage, err = circleImage(layout.Ball.Radius, model.ColorBall)
	if err != nil {
		return err
	}
	g.World = physics.NewWorld(g.Config.FrictionAir)
	g.UI = newScreenUI(g.onShow)
	g.Session = game.NewSession(layout, g.World, g.UI, g.Config.Options())
	g.Tweens = make(map[*gween.Tween]*Action)
	g.landed = false
	log.Printf("maze %dx%d seed %d", layout.Rows, layout.Cols, g.Seed)
	return nil
}

// onShow drops the winner banner from above the screen and fades the
// button in once it lands.
func (g *Game) onShow(element string) {
	if element != game.ElementWinner {
		return
	}
	target := float32(g.Config.Height / 3)
	drop := gween.New(-60, target, 1.2, ease.OutBounce)
	action := &Action{onChange: func(y float32) { g.bannerY = float64(y) }}
	action.addOnFinish(func() { g.landed = true })
	action.next(gween.New(0, 1, 0.4, ease.Linear), func(a float32) { g.Button.alpha = float64(a) })
	g.Button.alpha = 0
	g.bannerY = -60
	g.Tweens[drop] = action
}

func circleImage(radius float64, c color.RGBA) (*ebiten.Image, error) {
	size := int(2*radius) + 1
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+.5-radius, float64(y)+.5-radius
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, c)
			}
		}
	}
	return ebiten.NewImageFromImage(img, ebiten.FilterDefault)
}

func (g *Game) input() {
	for key, code := range steering {
		if inpututil.IsKeyJustPressed(key) {
			g.Session.OnKeyDown(code)
		}
	}
	if !g.UI.shown[game.ElementReset] {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.UI.click(game.ElementReset)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.Button.Contains(ebiten.CursorPosition()) {
		g.UI.click(game.ElementReset)
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens(tick)
	g.input()
	if g.UI.reload {
		if err := g.reload(); err != nil {
			return err
		}
	}
	g.Session.OnCollisionStart(game.LabelPairs(g.World.Step()))

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func (g *Game) drawObstacle(screen *ebiten.Image, id model.BodyID, c color.Color) {
	b := g.World.Body(id)
	p, s := b.Position(), b.Shape
	ebitenutil.DrawRect(screen, p.X-s.HalfW, p.Y-s.HalfH, 2*s.HalfW, 2*s.HalfH, c)
}

func (g *Game) draw(screen *ebiten.Image) {
	if e := screen.Fill(model.ColorBackground); e != nil {
		log.Printf("%v", e)
	}
	s := g.Session
	g.drawObstacle(screen, s.Goal, model.ColorGoal)
	for _, id := range s.Boundaries {
		g.drawObstacle(screen, id, model.ColorBoundary)
	}
	for _, id := range s.Walls {
		g.drawObstacle(screen, id, model.ColorWall)
	}

	ball := g.World.Body(s.Ball)
	at, r := ball.Position(), ball.Shape.Radius
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(at.X-r, at.Y-r)
	screen.DrawImage(g.ballImage, op)

	if g.UI.shown[game.ElementWinner] {
		const winner = "WINNER!"
		w := font.MeasureString(Font, winner).Ceil()
		text.Draw(screen, winner, Font, (int(g.Config.Width)-w)/2, int(g.bannerY), color.Black)
	}
	if g.UI.shown[game.ElementReset] && g.landed {
		label := g.UI.texts[game.ElementReset]
		w := font.MeasureString(Font, label).Ceil()
		h := Font.Metrics().Height.Ceil()
		x := (int(g.Config.Width) - w) / 2
		y := int(g.Config.Height) / 2
		g.Button.SetPosition(x-buttonPadX, y-h-buttonPadY/2)
		g.Button.SetSize(w+2*buttonPadX, h+2*buttonPadY)
		g.Button.Draw(screen)
		text.Draw(screen, label, Font, x, y, model.ColorGoal)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s seed %d", s.State().Name(), g.Seed), 8, 4)
}

func main() {
	cfg := loadConfig()
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatal(err)
	}
	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.Run(g.update, int(cfg.Width), int(cfg.Height), 1, "Mazeball"); err != nil {
		log.Fatal(err)
	}
}
