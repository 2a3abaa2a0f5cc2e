package game

import "github.com/zucenko/mazeball/model"

// Key codes as browsers report them.
const (
	KeyLeft  = 37
	KeyUp    = 38
	KeyRight = 39
	KeyDown  = 40
	KeyA     = 65
	KeyD     = 68
	KeyS     = 83
	KeyW     = 87
)

// Delta is the velocity change for a key code, false for keys that do not
// steer the ball.
func Delta(code int, step float64) (model.Vec, bool) {
	switch code {
	case KeyUp, KeyW:
		return model.Vec{Y: -step}, true
	case KeyRight, KeyD:
		return model.Vec{X: step}, true
	case KeyDown, KeyS:
		return model.Vec{Y: step}, true
	case KeyLeft, KeyA:
		return model.Vec{X: -step}, true
	}
	return model.Vec{}, false
}

// Mapper pushes the ball on key presses.
type Mapper struct {
	physics Physics
	ball    model.BodyID
	step    float64
	// gate stops steering once the machine is WON.
	gate *Machine
}

func NewMapper(physics Physics, ball model.BodyID, step float64, gate *Machine) *Mapper {
	return &Mapper{physics: physics, ball: ball, step: step, gate: gate}
}

func (m *Mapper) OnKeyDown(code int) bool {
	if m.gate != nil && m.gate.CurrentState() == WON {
		return false
	}
	d, ok := Delta(code, m.step)
	if !ok {
		return false
	}
	v := m.physics.Velocity(m.ball)
	m.physics.SetVelocity(m.ball, v.Add(d))
	return true
}
