package qrgen

import (
	"image"
	"image/color"
	"math"
)

// shape selects the geometry drawn for each dark module.
type shape int

const (
	shapeSquare shape = iota
	shapeRounded
	shapeCircle
	shapeGapped
)

// style bundles the geometry and colors for one raster rendering.
type style struct {
	shape      shape
	background color.NRGBA
	fill       fill
}

type fillKind int

const (
	fillSolid fillKind = iota
	fillRadial
)

// fill colors dark-module pixels. Solid fills ignore position; radial
// fills interpolate from the center color to the edge color by the
// pixel's normalized distance from the image center.
type fill struct {
	kind   fillKind
	front  color.NRGBA
	center color.NRGBA
	edge   color.NRGBA
}

func solid(c color.NRGBA) fill {
	return fill{kind: fillSolid, front: c}
}

func radial(center, edge color.NRGBA) fill {
	return fill{kind: fillRadial, center: center, edge: edge}
}

// colorAt returns the fill color for the pixel at (x, y) on a square
// canvas of the given width.
func (f fill) colorAt(x, y, width int) color.NRGBA {
	if f.kind == fillSolid {
		return f.front
	}

	half := float64(width) / 2
	t := math.Hypot(float64(x)-half, float64(y)-half) / (math.Sqrt2 * half)
	if t > 1 {
		t = 1
	}
	return color.NRGBA{
		R: lerp(f.center.R, f.edge.R, t),
		G: lerp(f.center.G, f.edge.G, t),
		B: lerp(f.center.B, f.edge.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// neighbors reports which orthogonally adjacent modules are dark.
type neighbors struct {
	up, down, left, right bool
}

func neighborsOf(matrix [][]bool, x, y int) neighbors {
	n := len(matrix)
	var nb neighbors
	if y > 0 {
		nb.up = matrix[y-1][x]
	}
	if y < n-1 {
		nb.down = matrix[y+1][x]
	}
	if x > 0 {
		nb.left = matrix[y][x-1]
	}
	if x < n-1 {
		nb.right = matrix[y][x+1]
	}
	return nb
}

// renderRaster draws the module matrix onto a pixel canvas at boxSize
// pixels per module. The matrix is expected to carry its quiet zone.
func renderRaster(matrix [][]bool, st style) *image.NRGBA {
	width := len(matrix) * boxSize
	img := image.NewNRGBA(image.Rect(0, 0, width, width))

	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, st.background)
		}
	}

	for my, row := range matrix {
		for mx, dark := range row {
			if !dark {
				continue
			}
			drawModule(img, width, mx, my, st, neighborsOf(matrix, mx, my))
		}
	}
	return img
}

// drawModule rasterizes one dark module at matrix position (mx, my).
func drawModule(img *image.NRGBA, width, mx, my int, st style, nb neighbors) {
	x0 := mx * boxSize
	y0 := my * boxSize

	for dy := 0; dy < boxSize; dy++ {
		for dx := 0; dx < boxSize; dx++ {
			if !inShape(dx, dy, st.shape, nb) {
				continue
			}
			x, y := x0+dx, y0+dy
			img.SetNRGBA(x, y, st.fill.colorAt(x, y, width))
		}
	}
}

// inShape reports whether the pixel at module-local (dx, dy) belongs to
// the module geometry. Pixels are sampled at their centers.
func inShape(dx, dy int, sh shape, nb neighbors) bool {
	switch sh {
	case shapeCircle:
		r := float64(boxSize) / 2
		ddx := float64(dx) + 0.5 - r
		ddy := float64(dy) + 0.5 - r
		return ddx*ddx+ddy*ddy <= r*r

	case shapeGapped:
		inset := (boxSize - int(gappedRatio*float64(boxSize))) / 2
		return dx >= inset && dx < boxSize-inset && dy >= inset && dy < boxSize-inset

	case shapeRounded:
		// A corner is rounded only when both of its orthogonal
		// neighbors are light, so connected runs keep straight edges.
		half := boxSize / 2
		r := float64(half)
		var rounded bool
		var cx, cy float64
		switch {
		case dx < half && dy < half:
			rounded = !nb.up && !nb.left
			cx, cy = r, r
		case dx >= half && dy < half:
			rounded = !nb.up && !nb.right
			cx, cy = float64(boxSize)-r, r
		case dx < half && dy >= half:
			rounded = !nb.down && !nb.left
			cx, cy = r, float64(boxSize)-r
		default:
			rounded = !nb.down && !nb.right
			cx, cy = float64(boxSize)-r, float64(boxSize)-r
		}
		if !rounded {
			return true
		}
		ddx := float64(dx) + 0.5 - cx
		ddy := float64(dy) + 0.5 - cy
		return ddx*ddx+ddy*ddy <= r*r

	default:
		return true
	}
}
