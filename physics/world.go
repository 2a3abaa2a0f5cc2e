package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeball/model"
)

// maxSubSteps bounds the work of one Step for very fast bodies.
const maxSubSteps = 128

// every shape shares one collision type so a single handler sees all pairs
const collisionBody cp.CollisionType = 1

// Body is one simulated shape. Shape keeps the spawn geometry, the current
// position lives in the chipmunk body.
type Body struct {
	ID      model.BodyID
	Shape   model.Shape
	Options model.BodyOptions
	InWorld bool

	body  *cp.Body
	shape *cp.Shape
}

func (b *Body) Position() model.Vec { return vec(b.body.Position()) }
func (b *Body) Label() model.Label  { return b.Options.Label }
func (b *Body) Static() bool        { return b.body.GetType() == cp.BODY_STATIC }

// SetPosition teleports the body without touching its velocity.
func (b *Body) SetPosition(p model.Vec) {
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}

// extent is the smallest half size of the body, how far it may travel in one
// sub-step without skipping past anything.
func (b *Body) extent() float64 {
	if b.Shape.Kind == model.Circle {
		return b.Shape.Radius
	}
	return math.Min(b.Shape.HalfW, b.Shape.HalfH)
}

// Pair is two bodies that started touching during a step. A has the lower id.
type Pair struct {
	A, B *Body
}

func (p Pair) Labels() (model.Label, model.Label) {
	return p.A.Label(), p.B.Label()
}

// World wraps a chipmunk space. Velocities are in units per step, gravity is
// scaled by GravityScale and air friction damps velocity once per step.
// Bodies never rotate.
type World struct {
	GravityScale float64

	space   *cp.Space
	bodies  []*Body
	gravity model.Vec
	started []Pair
	seen    map[[2]model.BodyID]bool
	steps   int64
}

func NewWorld(frictionAir float64) *World {
	w := &World{
		GravityScale: 0.28,
		space:        cp.NewSpace(),
		bodies:       make([]*Body, 0),
		gravity:      model.Vec{Y: 1},
		seen:         make(map[[2]model.BodyID]bool),
	}
	w.space.SetDamping(1 - frictionAir)
	h := w.space.NewCollisionHandler(collisionBody, collisionBody)
	h.BeginFunc = w.begin
	return w
}

func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	sa, sb := arb.Shapes()
	a, okA := sa.UserData.(*Body)
	b, okB := sb.UserData.(*Body)
	if !okA || !okB {
		return true
	}
	if b.ID < a.ID {
		a, b = b, a
	}
	key := [2]model.BodyID{a.ID, b.ID}
	if !w.seen[key] {
		w.seen[key] = true
		w.started = append(w.started, Pair{A: a, B: b})
	}
	return true
}

func (w *World) CreateBody(shape model.Shape, opts model.BodyOptions) model.BodyID {
	id := model.BodyID(len(w.bodies))

	var body *cp.Body
	if opts.Static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(1, cp.INFINITY)
	}
	body.SetPosition(cp.Vector{X: shape.Center.X, Y: shape.Center.Y})

	var cs *cp.Shape
	var area float64
	if shape.Kind == model.Circle {
		cs = cp.NewCircle(body, shape.Radius, cp.Vector{})
		area = math.Pi * shape.Radius * shape.Radius
	} else {
		cs = cp.NewBox(body, 2*shape.HalfW, 2*shape.HalfH, 0)
		area = 4 * shape.HalfW * shape.HalfH
	}
	cs.SetMass(math.Max(area, 1))
	cs.SetSensor(opts.Sensor)
	cs.SetCollisionType(collisionBody)
	cs.SetElasticity(0)
	cs.SetFriction(0)

	b := &Body{ID: id, Shape: shape, Options: opts, body: body, shape: cs}
	cs.UserData = b
	body.UserData = b
	w.bodies = append(w.bodies, b)
	return id
}

func (w *World) AddToWorld(ids ...model.BodyID) {
	for _, id := range ids {
		b := w.Body(id)
		if b == nil || b.InWorld {
			continue
		}
		w.space.AddBody(b.body)
		w.space.AddShape(b.shape)
		if !b.Static() {
			// adding a shape with mass recomputes the moment
			b.body.SetMoment(cp.INFINITY)
		}
		b.InWorld = true
	}
}

func (w *World) Velocity(id model.BodyID) model.Vec {
	if b := w.Body(id); b != nil {
		return vec(b.body.Velocity())
	}
	return model.Vec{}
}

func (w *World) SetVelocity(id model.BodyID, v model.Vec) {
	if b := w.Body(id); b != nil && !b.Static() {
		b.body.SetVelocity(v.X, v.Y)
	}
}

func (w *World) SetStatic(id model.BodyID, static bool) {
	b := w.Body(id)
	if b == nil || b.Static() == static {
		return
	}
	if static {
		b.body.SetType(cp.BODY_STATIC)
		return
	}
	b.body.SetType(cp.BODY_DYNAMIC)
	b.body.SetMoment(cp.INFINITY)
}

func (w *World) SetGravityY(y float64) {
	w.gravity.Y = y
}

func (w *World) Gravity() model.Vec {
	return w.gravity
}

func (w *World) Body(id model.BodyID) *Body {
	if id < 0 || int(id) >= len(w.bodies) {
		log.Warnf("World.Body unknown id %d", id)
		return nil
	}
	return w.bodies[id]
}

// Bodies returns the bodies added to the world, in creation order.
func (w *World) Bodies() []*Body {
	in := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		if b.InWorld {
			in = append(in, b)
		}
	}
	return in
}

func (w *World) Steps() int64 {
	return w.steps
}

// Step advances the world by one tick and returns the pairs that started
// touching, each pair once. The tick is split so no body moves further than
// the thinnest solid body per sub-step.
func (w *World) Step() []Pair {
	w.steps++
	g := w.gravity.Scale(w.GravityScale)
	w.space.SetGravity(cp.Vector{X: g.X, Y: g.Y})

	n := w.subSteps(math.Hypot(g.X, g.Y))
	dt := 1 / float64(n)
	for i := 0; i < n; i++ {
		w.space.Step(dt)
	}

	started := w.started
	if started == nil {
		started = make([]Pair, 0)
	}
	w.started = nil
	w.seen = make(map[[2]model.BodyID]bool)
	return started
}

func (w *World) subSteps(gravity float64) int {
	fastest, thinnest := 0.0, math.Inf(1)
	for _, b := range w.bodies {
		if !b.InWorld || b.Options.Sensor {
			continue
		}
		if e := b.extent(); e > 0 && e < thinnest {
			thinnest = e
		}
		if !b.Static() {
			v := b.body.Velocity()
			fastest = math.Max(fastest, v.Length()+gravity)
		}
	}
	if fastest == 0 || math.IsInf(thinnest, 1) {
		return 1
	}
	n := int(math.Ceil(fastest / thinnest))
	if n < 1 {
		return 1
	}
	if n > maxSubSteps {
		log.Debugf("World.Step capping %d sub-steps", n)
		return maxSubSteps
	}
	return n
}

func vec(v cp.Vector) model.Vec {
	return model.Vec{X: v.X, Y: v.Y}
}
