package game

import "github.com/zucenko/mazeball/model"

// Physics is the simulation the session drives. Collision starts are
// reported back by the host through Session.OnCollisionStart.
type Physics interface {
	CreateBody(shape model.Shape, opts model.BodyOptions) model.BodyID
	AddToWorld(ids ...model.BodyID)
	Velocity(id model.BodyID) model.Vec
	SetVelocity(id model.BodyID, v model.Vec)
	SetStatic(id model.BodyID, static bool)
	SetGravityY(y float64)
}

// UI elements the machine talks to.
const (
	ElementWinner = "winner"
	ElementReset  = "reset"
)

type UI interface {
	Show(element string)
	SetText(element, text string)
	OnClick(element string, handler func())
	// Reload throws the session away and starts a new maze.
	Reload()
}

// LabelPair is one collision start, by the labels of the two bodies.
type LabelPair struct {
	A, B model.Label
}

// Labeled is a collision pair as reported by a physics host.
type Labeled interface {
	Labels() (model.Label, model.Label)
}

func LabelPairs[P Labeled](pairs []P) []LabelPair {
	out := make([]LabelPair, 0, len(pairs))
	for _, p := range pairs {
		a, b := p.Labels()
		out = append(out, LabelPair{A: a, B: b})
	}
	return out
}
