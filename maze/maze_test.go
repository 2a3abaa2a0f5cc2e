package maze

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazeball/model"
)

func TestShufflePermutes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 40; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = rng.Intn(5) // duplicates on purpose
		}
		out := append([]int(nil), in...)
		Shuffle(rng, out)

		sort.Ints(in)
		sort.Ints(out)
		assert.Equal(t, in, out, "n=%d", n)
	}
}

func TestShuffleSwapsFromTheBack(t *testing.T) {
	s := []string{"a", "b", "c"}
	Shuffle(fixedRand{0, 0}, s)
	// i=2 swaps with 0, i=1 swaps with 0
	assert.Equal(t, []string{"b", "c", "a"}, s)
}

type fixedRand []int

func (f fixedRand) Intn(n int) int {
	return f[0] % n
}

func carved(t *testing.T, rows, cols int, seed int64) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(rows, cols)
	require.NoError(t, err)
	require.NoError(t, Carve(g, 0, 0, rand.New(rand.NewSource(seed))))
	return g
}

// reachable counts the cells connected to (0,0) through open edges.
func reachable(g *model.Grid) int {
	seen := map[model.Cell]bool{{}: true}
	queue := []model.Cell{{}}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbours(c.Row, c.Col) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func TestCarveVisitsEveryCell(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {6, 7}, {13, 9}} {
		g := carved(t, dims[0], dims[1], 42)
		for r := 0; r < dims[0]; r++ {
			for c := 0; c < dims[1]; c++ {
				v, err := g.IsVisited(r, c)
				require.NoError(t, err)
				assert.True(t, v, "cell %d,%d of %v", r, c, dims)
			}
		}
	}
}

func TestCarveIsSpanningTree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for seed := int64(1); seed <= 200; seed++ {
		rows, cols := 1+rng.Intn(12), 1+rng.Intn(12)
		g := carved(t, rows, cols, seed)
		assert.Equal(t, rows*cols-1, g.OpenEdges(), "seed %d %dx%d", seed, rows, cols)
		assert.Equal(t, rows*cols, reachable(g), "seed %d %dx%d", seed, rows, cols)
	}
}

func TestCarveIsDeterministic(t *testing.T) {
	a := carved(t, 8, 8, 99)
	b := carved(t, 8, 8, 99)
	assert.Equal(t, a, b)
}

func TestCarveFromAnyStart(t *testing.T) {
	g, err := model.NewGrid(5, 6)
	require.NoError(t, err)
	require.NoError(t, Carve(g, 4, 3, rand.New(rand.NewSource(3))))
	assert.Equal(t, 29, g.OpenEdges())
	assert.Equal(t, 30, reachable(g))
}

func TestCarveRejectsStartOutside(t *testing.T) {
	g, err := model.NewGrid(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, Carve(g, 2, 0, rand.New(rand.NewSource(1))), model.ErrOutOfBounds)
}

func TestCarveHandlesLargeGrid(t *testing.T) {
	// a single corridor forces the stack to the full cell count
	g := carved(t, 1, 200000, 5)
	assert.Equal(t, 199999, g.OpenEdges())
}

// recursiveCarve is the textbook form of the backtracker.
func recursiveCarve(g *model.Grid, row, col int, rng Rand) {
	if v, _ := g.IsVisited(row, col); v {
		return
	}
	_ = g.MarkVisited(row, col)
	ns := []neighbour{{row - 1, col, Up}, {row, col + 1, Right}, {row + 1, col, Down}, {row, col - 1, Left}}
	Shuffle(rng, ns)
	for _, n := range ns {
		if !g.Contains(n.row, n.col) {
			continue
		}
		if v, _ := g.IsVisited(n.row, n.col); v {
			continue
		}
		_ = open(g, row, col, n.dir)
		recursiveCarve(g, n.row, n.col, rng)
	}
}

func TestCarveMatchesRecursiveForm(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		want, err := model.NewGrid(9, 11)
		require.NoError(t, err)
		recursiveCarve(want, 4, 5, rand.New(rand.NewSource(seed)))

		got, err := model.NewGrid(9, 11)
		require.NoError(t, err)
		require.NoError(t, Carve(got, 4, 5, rand.New(rand.NewSource(seed))))

		assert.Equal(t, want, got, "seed %d", seed)
	}
}

func TestTranslateCountsClosedEdges(t *testing.T) {
	g, err := model.NewGrid(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.OpenHorizontal(0, 0))

	l := Translate(g, 100, 50, DefaultGeometry())
	assert.Len(t, l.Boundaries, 4)
	assert.Len(t, l.Walls, 3)
	assert.Equal(t, 7, len(l.Boundaries)+len(l.Walls))
	assert.Len(t, l.Obstacles(), 8)
	for _, w := range l.Walls {
		assert.Equal(t, model.LabelWall, w.Label)
	}
}

func TestTranslatePlacesWalls(t *testing.T) {
	g, err := model.NewGrid(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.OpenVertical(0, 0))
	require.NoError(t, g.OpenVertical(1, 0))

	l := Translate(g, 100, 50, DefaultGeometry())
	require.Len(t, l.Walls, 2)
	assert.Equal(t, model.Obstacle{
		Center: model.Vec{X: 50, Y: 50}, HalfW: 50, HalfH: 1.5, Label: model.LabelWall,
	}, l.Walls[0])
	assert.Equal(t, model.Obstacle{
		Center: model.Vec{X: 150, Y: 50}, HalfW: 50, HalfH: 1.5, Label: model.LabelWall,
	}, l.Walls[1])

	assert.Equal(t, 200.0, l.Width)
	assert.Equal(t, 100.0, l.Height)
	assert.Equal(t, model.Vec{X: 150, Y: 75}, l.Goal.Center)
	assert.InDelta(t, 35, l.Goal.HalfW, 1e-9)
	assert.InDelta(t, 17.5, l.Goal.HalfH, 1e-9)
	assert.Equal(t, model.Ball{Center: model.Vec{X: 50, Y: 25}, Radius: 12.5}, l.Ball)

	top := l.Boundaries[0]
	assert.Equal(t, model.Vec{X: 100, Y: 0}, top.Center)
	assert.Equal(t, 100.0, top.HalfW)
	assert.Equal(t, model.LabelBoundary, top.Label)
}

func TestGenerate(t *testing.T) {
	res, err := Generate(Config{Rows: 6, Cols: 7, Width: 700, Height: 600, Seed: 11})
	require.NoError(t, err)

	assert.Equal(t, int64(11), res.Seed)
	assert.Equal(t, 41, res.Grid.OpenEdges())
	closed := res.Grid.Edges() - res.Grid.OpenEdges()
	assert.Len(t, res.Layout.Walls, closed)
	assert.Equal(t, 100.0, res.Layout.UnitWidth)
	assert.Equal(t, 100.0, res.Layout.UnitHeight)

	again, err := Generate(Config{Rows: 6, Cols: 7, Width: 700, Height: 600, Seed: 11})
	require.NoError(t, err)
	assert.Equal(t, res.Layout, again.Layout)
	assert.Equal(t, res.Start, again.Start)
}

func TestGenerateWithStart(t *testing.T) {
	res, err := Generate(Config{Rows: 3, Cols: 3, Width: 30, Height: 30, Seed: 2, Start: &model.Cell{Row: 2, Col: 1}})
	require.NoError(t, err)
	assert.Equal(t, model.Cell{Row: 2, Col: 1}, res.Start)
	assert.Equal(t, 8, res.Grid.OpenEdges())
}

func TestGenerateOneByOne(t *testing.T) {
	res, err := Generate(Config{Rows: 1, Cols: 1, Width: 80, Height: 60})
	require.NoError(t, err)
	assert.Empty(t, res.Layout.Walls)
	// ball and goal share the only cell
	assert.Equal(t, res.Layout.Ball.Center, res.Layout.Goal.Center)
}

func TestGenerateRejectsDimensions(t *testing.T) {
	_, err := Generate(Config{Rows: 0, Cols: 3, Width: 10, Height: 10})
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
	_, err = Generate(Config{Rows: 3, Cols: 3})
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
}
