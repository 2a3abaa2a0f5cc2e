package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a scalable panel out of a nine slice image. positions are the
// source cuts: outer corner, inner corner, inner corner, outer corner.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	// target x and y of every cut
	targetPositions [4][2]float64
	scales          [3][2]float64
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	for axis, origin := range [2]int{n.x, n.y} {
		size := [2]int{width, height}[axis]
		p := func(i int) float64 { return float64(n.positions[i][axis]) }
		n.targetPositions[0][axis] = float64(origin)
		n.targetPositions[1][axis] = float64(origin) + n.Scale*(p(1)-p(0))
		n.targetPositions[2][axis] = float64(origin+size) - n.Scale*(p(3)-p(2))
		n.targetPositions[3][axis] = float64(origin + size)

		inner := n.targetPositions[2][axis] - n.targetPositions[1][axis]
		n.scales[0][axis] = n.Scale
		n.scales[1][axis] = inner / (p(2) - p(1))
		n.scales[2][axis] = n.Scale
	}
}

func (n *Nine) Contains(x, y int) bool {
	return x >= n.x && x < n.x+n.width && y >= n.y && y < n.y+n.height
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(
				n.positions[col][0], n.positions[row][1],
				n.positions[col+1][0], n.positions[row+1][1])
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(n.scales[col][0], n.scales[row][1])
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}

// roundedSlices paints a white rounded square with corners of radius r,
// cut for Nine at r and 2r.
func roundedSlices(r int) (image.Image, [4][2]int) {
	size := 3 * r
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cx, cy := clampInt(x, r, 2*r-1), clampInt(y, r, 2*r-1)
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return img, [4][2]int{{0, 0}, {r, r}, {2 * r, 2 * r}, {size, size}}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
