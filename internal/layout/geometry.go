package layout

import (
	"math"
	"strconv"
)

// SeatSize is the edge of a seat's bounding box in canvas pixels, one
// default grid cell.  Bounds clamping keeps the whole box on canvas.
const SeatSize = 40

// EditMode selects between snapped and freeform seat placement.
type EditMode string

const (
	ModeGrid     EditMode = "grid"
	ModeFlexible EditMode = "flexible"
)

// Snap rounds both coordinates to the nearest multiple of grid when mode
// is grid; in flexible mode the input is returned unchanged.  Snapping is
// idempotent: snapping an already snapped point is the identity.
func Snap(x, y float64, grid int, mode EditMode) (float64, float64) {
	if mode != ModeGrid || grid <= 0 {
		return x, y
	}
	return snapCoord(x, grid), snapCoord(y, grid)
}

func snapCoord(v float64, grid int) float64 {
	g := float64(grid)
	return math.Round(v/g) * g
}

// RowLabel converts a zero-based row index to its alphabetical label:
// 0 -> A, 25 -> Z, 26 -> AA, 27 -> AB and so on.
func RowLabel(i int) string {
	if i < 0 {
		return ""
	}
	var buf []byte
	for {
		buf = append(buf, byte('A'+i%26))
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf)
}

// LabelFor derives a seat label from a grid position: the row letter from
// the vertical cell index and a 1-based column number, e.g. "A1".  Two
// seats in the same cell always get the same label.
func LabelFor(x, y float64, grid int) string {
	if grid <= 0 {
		grid = DefaultCanvas().GridSize
	}
	row := int(math.Floor(y / float64(grid)))
	col := int(math.Floor(x/float64(grid))) + 1
	if row < 0 {
		row = 0
	}
	if col < 1 {
		col = 1
	}
	return RowLabel(row) + strconv.Itoa(col)
}

// Rect is an axis-aligned rectangle with non-negative width and height.
type Rect struct {
	X, Y, W, H float64
}

// NormalizedRect builds a Rect from two corners in any drag direction.
func NormalizedRect(x1, y1, x2, y2 float64) Rect {
	return Rect{
		X: math.Min(x1, x2),
		Y: math.Min(y1, y2),
		W: math.Abs(x2 - x1),
		H: math.Abs(y2 - y1),
	}
}

// Within reports whether the point lies inside the rectangle, bounds
// inclusive.  Used for drag-select hit testing and canvas containment.
func Within(x, y float64, r Rect) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// clampToCanvas keeps a seat's whole bounding box inside the canvas.
func clampToCanvas(x, y float64, c Canvas) (float64, float64) {
	maxX := float64(c.Width - SeatSize)
	maxY := float64(c.Height - SeatSize)
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	x = math.Min(math.Max(x, 0), maxX)
	y = math.Min(math.Max(y, 0), maxY)
	return x, y
}

// normalizeAngle maps any angle in degrees into [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
