package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeball/model"
)

type Options struct {
	// Gravity is the downward pull switched on by the win.
	Gravity      float64
	VelocityStep float64
	// GateInput ignores steering keys once the game is won.
	GateInput bool
}

func DefaultOptions() Options {
	return Options{Gravity: 1, VelocityStep: 5, GateInput: true}
}

// Session puts one maze layout into a physics world and routes host
// notifications to the machine and the input mapper.
type Session struct {
	Layout  *model.Layout
	Machine *Machine
	Input   *Mapper

	Ball       model.BodyID
	Goal       model.BodyID
	Walls      []model.BodyID
	Boundaries []model.BodyID
}

func NewSession(layout *model.Layout, physics Physics, ui UI, opts Options) *Session {
	s := &Session{
		Layout:     layout,
		Walls:      make([]model.BodyID, 0, len(layout.Walls)),
		Boundaries: make([]model.BodyID, 0, len(layout.Boundaries)),
	}

	physics.SetGravityY(0)
	for _, o := range layout.Boundaries {
		s.Boundaries = append(s.Boundaries, physics.CreateBody(o.Shape(), model.BodyOptions{
			Static: true,
			Label:  o.Label,
			Fill:   model.ColorBoundary,
		}))
	}
	for _, o := range layout.Walls {
		s.Walls = append(s.Walls, physics.CreateBody(o.Shape(), model.BodyOptions{
			Static: true,
			Label:  o.Label,
			Fill:   model.ColorWall,
		}))
	}
	s.Goal = physics.CreateBody(layout.Goal.Shape(), model.BodyOptions{
		Static: true,
		Sensor: true,
		Label:  layout.Goal.Label,
		Fill:   model.ColorGoal,
	})
	s.Ball = physics.CreateBody(layout.Ball.Shape(), model.BodyOptions{
		Label: model.LabelBall,
		Fill:  model.ColorBall,
	})

	physics.AddToWorld(s.Boundaries...)
	physics.AddToWorld(s.Walls...)
	physics.AddToWorld(s.Goal, s.Ball)

	s.Machine = NewMachine(physics, ui, s.Walls, opts.Gravity)
	var gate *Machine
	if opts.GateInput {
		gate = s.Machine
	}
	s.Input = NewMapper(physics, s.Ball, opts.VelocityStep, gate)

	log.WithFields(log.Fields{
		"rows":  layout.Rows,
		"cols":  layout.Cols,
		"walls": len(s.Walls),
	}).Info("session started")
	return s
}

func (s *Session) OnCollisionStart(pairs []LabelPair) {
	s.Machine.HandleCollisions(pairs)
}

func (s *Session) OnKeyDown(code int) bool {
	return s.Input.OnKeyDown(code)
}

func (s *Session) State() GameState {
	return s.Machine.CurrentState()
}
