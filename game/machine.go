package game

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeball/model"
)

type GameState int

const (
	PLAYING GameState = iota + 1
	WON
)

func (s GameState) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case WON:
		return "WON"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

const ResetText = "PLAY AGAIN"

// Machine holds the state of one session. It moves from PLAYING to WON once,
// when the ball touches the goal, and then collapses the maze.
type Machine struct {
	state   GameState
	physics Physics
	ui      UI
	walls   []model.BodyID
	gravity float64
}

func NewMachine(physics Physics, ui UI, walls []model.BodyID, gravity float64) *Machine {
	return &Machine{
		state:   PLAYING,
		physics: physics,
		ui:      ui,
		walls:   walls,
		gravity: gravity,
	}
}

func (m *Machine) CurrentState() GameState {
	return m.state
}

// HandleCollision reports whether this collision won the game. Only the exact
// pair {ball, goal} counts, in either order.
func (m *Machine) HandleCollision(a, b model.Label) bool {
	if m.state == WON {
		return false
	}
	if !(a == model.LabelBall && b == model.LabelGoal || a == model.LabelGoal && b == model.LabelBall) {
		return false
	}
	m.state = WON
	log.WithFields(log.Fields{
		"state": m.state.Name(),
		"walls": len(m.walls),
	}).Info("ball reached the goal")

	m.ui.SetText(ElementReset, ResetText)
	m.ui.Show(ElementReset)
	m.ui.OnClick(ElementReset, m.ui.Reload)
	m.ui.Show(ElementWinner)

	m.physics.SetGravityY(m.gravity)
	for _, id := range m.walls {
		m.physics.SetStatic(id, false)
	}
	return true
}

func (m *Machine) HandleCollisions(pairs []LabelPair) {
	for _, p := range pairs {
		m.HandleCollision(p.A, p.B)
	}
}
