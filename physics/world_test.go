package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazeball/model"
)

func rect(x, y, hw, hh float64) model.Shape {
	return model.Shape{Kind: model.Rectangle, Center: model.Vec{X: x, Y: y}, HalfW: hw, HalfH: hh}
}

func circle(x, y, r float64) model.Shape {
	return model.Shape{Kind: model.Circle, Center: model.Vec{X: x, Y: y}, Radius: r}
}

func TestStepIntegratesVelocity(t *testing.T) {
	w := NewWorld(0)
	w.SetGravityY(0)
	ball := w.CreateBody(circle(10, 10, 1), model.BodyOptions{Label: model.LabelBall})
	w.AddToWorld(ball)

	w.SetVelocity(ball, model.Vec{X: 5})
	w.Step()
	w.Step()
	p := w.Body(ball).Position()
	assert.InDelta(t, 20, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)
	assert.Equal(t, int64(2), w.Steps())
}

func TestStepAppliesGravityAndFriction(t *testing.T) {
	w := NewWorld(0.5)
	w.GravityScale = 1
	w.SetGravityY(2)
	box := w.CreateBody(rect(0, 0, 10, 10), model.BodyOptions{})
	w.AddToWorld(box)

	// the position moves with the velocity it had when the step began
	w.Step()
	assert.InDelta(t, 2, w.Velocity(box).Y, 1e-9)
	assert.InDelta(t, 0, w.Body(box).Position().Y, 1e-9)

	w.Step()
	assert.InDelta(t, 3, w.Velocity(box).Y, 1e-9)
	assert.InDelta(t, 2, w.Body(box).Position().Y, 1e-9)
}

func TestBodiesOutsideWorldDoNotMove(t *testing.T) {
	w := NewWorld(0)
	id := w.CreateBody(rect(0, 0, 1, 1), model.BodyOptions{})
	w.SetVelocity(id, model.Vec{X: 1})
	w.Step()
	assert.Equal(t, model.Vec{}, w.Body(id).Position())
	assert.Empty(t, w.Bodies())
}

func TestStaticBodiesIgnoreVelocity(t *testing.T) {
	w := NewWorld(0)
	id := w.CreateBody(rect(0, 0, 1, 1), model.BodyOptions{Static: true})
	w.AddToWorld(id)
	w.SetVelocity(id, model.Vec{X: 1})
	w.Step()
	assert.Equal(t, model.Vec{}, w.Body(id).Position())
	assert.True(t, w.Body(id).Static())

	w.SetStatic(id, false)
	w.SetStatic(id, false)
	assert.False(t, w.Body(id).Static())
	w.SetVelocity(id, model.Vec{X: 1})
	assert.Equal(t, model.Vec{X: 1}, w.Velocity(id))

	w.SetStatic(id, true)
	assert.True(t, w.Body(id).Static())
	assert.Equal(t, model.Vec{}, w.Velocity(id))
}

func TestSetPosition(t *testing.T) {
	w := NewWorld(0)
	id := w.CreateBody(circle(0, 0, 2), model.BodyOptions{})
	w.AddToWorld(id)
	w.SetVelocity(id, model.Vec{Y: 3})

	w.Body(id).SetPosition(model.Vec{X: 40, Y: 50})
	assert.Equal(t, model.Vec{X: 40, Y: 50}, w.Body(id).Position())
	assert.Equal(t, model.Vec{Y: 3}, w.Velocity(id))
}

func TestCollisionStartReportedOnce(t *testing.T) {
	w := NewWorld(0)
	w.SetGravityY(0)
	wall := w.CreateBody(rect(20, 0, 1.5, 50), model.BodyOptions{Static: true, Label: model.LabelWall})
	ball := w.CreateBody(circle(10, 0, 5), model.BodyOptions{Label: model.LabelBall})
	w.AddToWorld(wall, ball)

	w.SetVelocity(ball, model.Vec{X: 4})
	pairs := w.Step()
	require.Len(t, pairs, 1)
	a, b := pairs[0].Labels()
	assert.Equal(t, model.LabelWall, a)
	assert.Equal(t, model.LabelBall, b)

	// stopped against the wall, at most the contact slop inside it
	assert.InDelta(t, 0, w.Velocity(ball).X, 0.5)
	assert.InDelta(t, 13.5, w.Body(ball).Position().X, 0.5)
	assert.Empty(t, w.Step())
}

func TestFastBallDoesNotTunnel(t *testing.T) {
	w := NewWorld(0)
	w.SetGravityY(0)
	wall := w.CreateBody(rect(100, 0, 1.5, 50), model.BodyOptions{Static: true, Label: model.LabelWall})
	ball := w.CreateBody(circle(50, 0, 10), model.BodyOptions{Label: model.LabelBall})
	w.AddToWorld(wall, ball)

	w.SetVelocity(ball, model.Vec{X: 150})
	pairs := w.Step()
	require.Len(t, pairs, 1)
	a, b := pairs[0].Labels()
	assert.Equal(t, model.LabelWall, a)
	assert.Equal(t, model.LabelBall, b)

	for i := 0; i < 20; i++ {
		w.Step()
	}
	assert.Less(t, w.Body(ball).Position().X, 89.0)
}

func TestSubSteps(t *testing.T) {
	w := NewWorld(0)
	w.SetGravityY(0)
	wall := w.CreateBody(rect(100, 0, 1.5, 50), model.BodyOptions{Static: true})
	goal := w.CreateBody(rect(0, 0, 0.1, 0.1), model.BodyOptions{Static: true, Sensor: true})
	ball := w.CreateBody(circle(50, 0, 10), model.BodyOptions{})
	w.AddToWorld(wall, goal, ball)

	assert.Equal(t, 1, w.subSteps(0))
	w.SetVelocity(ball, model.Vec{X: 30})
	assert.Equal(t, 20, w.subSteps(0))
	assert.Equal(t, 22, w.subSteps(3))
	w.SetVelocity(ball, model.Vec{X: 1e6})
	assert.Equal(t, maxSubSteps, w.subSteps(0))
}

func TestSensorsReportButDoNotBlock(t *testing.T) {
	w := NewWorld(0)
	w.SetGravityY(0)
	goal := w.CreateBody(rect(0, 0, 10, 10), model.BodyOptions{Static: true, Sensor: true, Label: model.LabelGoal})
	ball := w.CreateBody(circle(0, 0, 2), model.BodyOptions{Label: model.LabelBall})
	w.AddToWorld(goal, ball)

	pairs := w.Step()
	require.Len(t, pairs, 1)
	assert.Equal(t, model.Vec{}, w.Body(ball).Position())
	assert.Empty(t, w.Step(), "still inside, no new start")
}

func TestFallingBodyRestsOnFloor(t *testing.T) {
	w := NewWorld(0)
	w.GravityScale = 0.5
	floor := w.CreateBody(rect(0, 100, 50, 1), model.BodyOptions{Static: true})
	box := w.CreateBody(rect(0, 96, 5, 1), model.BodyOptions{})
	w.AddToWorld(floor, box)

	for i := 0; i < 50; i++ {
		w.Step()
	}
	assert.InDelta(t, 98, w.Body(box).Position().Y, 0.2)
}

func TestUnknownBody(t *testing.T) {
	w := NewWorld(0)
	assert.Nil(t, w.Body(3))
	assert.Equal(t, model.Vec{}, w.Velocity(-1))
	w.SetStatic(7, true)
	w.SetVelocity(7, model.Vec{X: 1})
}
