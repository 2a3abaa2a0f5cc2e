package model

import "image/color"

type Label string

const (
	LabelWall     Label = "wall"
	LabelGoal     Label = "goal"
	LabelBoundary Label = "boundary"
	LabelBall     Label = "ball"
)

var (
	ColorBackground = color.RGBA{0xff, 0xb6, 0xb9, 0xff}
	ColorWall       = color.RGBA{0xbb, 0xde, 0xd6, 0xff}
	ColorGoal       = color.RGBA{0x61, 0xc0, 0xbf, 0xff}
	ColorBall       = color.RGBA{0xfa, 0xe3, 0xd9, 0xff}
	ColorBoundary   = color.RGBA{0x44, 0x44, 0x44, 0xff}
)

type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

type Kind int

const (
	Rectangle Kind = iota + 1
	Circle
)

// Shape is the body geometry handed to the physics collaborator.
// Rectangles use the half extents, circles the radius.
type Shape struct {
	Kind         Kind
	Center       Vec
	HalfW, HalfH float64
	Radius       float64
}

type BodyID int

type BodyOptions struct {
	Static bool
	// Sensor bodies report contacts but never push others out.
	Sensor bool
	Label  Label
	Fill   color.RGBA
}

// Obstacle is an axis aligned rectangle of the course.
type Obstacle struct {
	Center       Vec
	HalfW, HalfH float64
	Label        Label
}

func (o Obstacle) Shape() Shape {
	return Shape{Kind: Rectangle, Center: o.Center, HalfW: o.HalfW, HalfH: o.HalfH}
}

type Ball struct {
	Center Vec
	Radius float64
}

func (b Ball) Shape() Shape {
	return Shape{Kind: Circle, Center: b.Center, Radius: b.Radius}
}

type Layout struct {
	Rows, Cols            int
	UnitWidth, UnitHeight float64
	Width, Height         float64
	Boundaries            []Obstacle
	Walls                 []Obstacle
	Goal                  Obstacle
	Ball                  Ball
}

// Obstacles returns every static rectangle: boundaries, walls, then the goal.
func (l *Layout) Obstacles() []Obstacle {
	obstacles := make([]Obstacle, 0, len(l.Boundaries)+len(l.Walls)+1)
	obstacles = append(obstacles, l.Boundaries...)
	obstacles = append(obstacles, l.Walls...)
	return append(obstacles, l.Goal)
}
