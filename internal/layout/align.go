package layout

import "sort"

// Alignment and distribution recompute coordinates for the current
// selection.  Alignment needs at least two seats, distribution at least
// three; below those thresholds the calls are silent no-ops.

// selectedIndexes resolves the selection into seat slice indexes.
func (e *Editor) selectedIndexes() []int {
	idx := make([]int, 0, len(e.selected))
	for i := range e.seats {
		if _, ok := e.selected[e.seats[i].ID]; ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// AlignHorizontal sets every selected seat's y to the arithmetic mean y
// of the selection, lining the seats up in a row.
func (e *Editor) AlignHorizontal() {
	idx := e.selectedIndexes()
	if len(idx) < 2 {
		return
	}
	sum := 0.0
	for _, i := range idx {
		sum += e.seats[i].Y
	}
	mean := sum / float64(len(idx))
	for _, i := range idx {
		e.seats[i].Y = mean
	}
}

// AlignVertical sets every selected seat's x to the arithmetic mean x of
// the selection, lining the seats up in a column.
func (e *Editor) AlignVertical() {
	idx := e.selectedIndexes()
	if len(idx) < 2 {
		return
	}
	sum := 0.0
	for _, i := range idx {
		sum += e.seats[i].X
	}
	mean := sum / float64(len(idx))
	for _, i := range idx {
		e.seats[i].X = mean
	}
}

// AlignToGrid rounds each selected seat's coordinates independently to
// the nearest grid multiple, then clamps back onto the canvas in case
// rounding pushed a seat over the edge.
func (e *Editor) AlignToGrid() {
	idx := e.selectedIndexes()
	if len(idx) < 2 {
		return
	}
	g := e.canvas.GridSize
	for _, i := range idx {
		x := snapCoord(e.seats[i].X, g)
		y := snapCoord(e.seats[i].Y, g)
		e.seats[i].X, e.seats[i].Y = clampToCanvas(x, y, e.canvas)
	}
}

// DistributeHorizontal spreads the selected seats evenly between the
// leftmost and rightmost x, preserving their left-to-right order.  The y
// coordinates are untouched.
func (e *Editor) DistributeHorizontal() {
	idx := e.selectedIndexes()
	if len(idx) < 3 {
		return
	}
	sort.Slice(idx, func(a, b int) bool { return e.seats[idx[a]].X < e.seats[idx[b]].X })
	min := e.seats[idx[0]].X
	max := e.seats[idx[len(idx)-1]].X
	step := (max - min) / float64(len(idx)-1)
	for n, i := range idx {
		e.seats[i].X = min + float64(n)*step
	}
}

// DistributeVertical spreads the selected seats evenly between the
// topmost and bottommost y, preserving their top-to-bottom order.
func (e *Editor) DistributeVertical() {
	idx := e.selectedIndexes()
	if len(idx) < 3 {
		return
	}
	sort.Slice(idx, func(a, b int) bool { return e.seats[idx[a]].Y < e.seats[idx[b]].Y })
	min := e.seats[idx[0]].Y
	max := e.seats[idx[len(idx)-1]].Y
	step := (max - min) / float64(len(idx)-1)
	for n, i := range idx {
		e.seats[i].Y = min + float64(n)*step
	}
}
