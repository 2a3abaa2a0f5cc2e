package maze

import (
	"math"

	"github.com/zucenko/mazeball/model"
)

// Geometry holds the proportions used to turn a grid into obstacles.
type Geometry struct {
	WallThickness     float64
	BoundaryThickness float64
	// GoalScale and BallScale are fractions of the unit cell.
	GoalScale float64
	BallScale float64
}

func DefaultGeometry() Geometry {
	return Geometry{
		WallThickness:     3,
		BoundaryThickness: 2,
		GoalScale:         0.7,
		BallScale:         0.25,
	}
}

// Translate emits the obstacle course for a carved grid: the four boundaries,
// one wall per closed edge, the goal in the far corner cell and the ball in
// the (0,0) cell.
func Translate(g *model.Grid, unitW, unitH float64, geo Geometry) *model.Layout {
	rows, cols := g.Rows(), g.Columns()
	width, height := float64(cols)*unitW, float64(rows)*unitH
	half := geo.BoundaryThickness / 2

	l := &model.Layout{
		Rows:       rows,
		Cols:       cols,
		UnitWidth:  unitW,
		UnitHeight: unitH,
		Width:      width,
		Height:     height,
		Boundaries: []model.Obstacle{
			{Center: model.Vec{X: width / 2, Y: 0}, HalfW: width / 2, HalfH: half, Label: model.LabelBoundary},
			{Center: model.Vec{X: width / 2, Y: height}, HalfW: width / 2, HalfH: half, Label: model.LabelBoundary},
			{Center: model.Vec{X: 0, Y: height / 2}, HalfW: half, HalfH: height / 2, Label: model.LabelBoundary},
			{Center: model.Vec{X: width, Y: height / 2}, HalfW: half, HalfH: height / 2, Label: model.LabelBoundary},
		},
		Walls: make([]model.Obstacle, 0, g.Edges()-g.OpenEdges()),
	}

	// horizontal walls
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			if g.HorizontalOpen(r, c) {
				continue
			}
			l.Walls = append(l.Walls, model.Obstacle{
				Center: model.Vec{X: float64(c)*unitW + unitW/2, Y: float64(r)*unitH + unitH},
				HalfW:  unitW / 2,
				HalfH:  geo.WallThickness / 2,
				Label:  model.LabelWall,
			})
		}
	}
	// vertical walls
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			if g.VerticalOpen(r, c) {
				continue
			}
			l.Walls = append(l.Walls, model.Obstacle{
				Center: model.Vec{X: float64(c)*unitW + unitW, Y: float64(r)*unitH + unitH/2},
				HalfW:  geo.WallThickness / 2,
				HalfH:  unitH / 2,
				Label:  model.LabelWall,
			})
		}
	}

	l.Goal = model.Obstacle{
		Center: model.Vec{X: width - unitW/2, Y: height - unitH/2},
		HalfW:  unitW * geo.GoalScale / 2,
		HalfH:  unitH * geo.GoalScale / 2,
		Label:  model.LabelGoal,
	}
	l.Ball = model.Ball{
		Center: model.Vec{X: unitW / 2, Y: unitH / 2},
		Radius: math.Min(unitW, unitH) * geo.BallScale,
	}
	return l
}
