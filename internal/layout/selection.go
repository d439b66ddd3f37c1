package layout

import "sort"

// Selection state lives on the Editor: a set of seat ids plus an
// in-progress drag rectangle.  Click-toggle only applies while the
// select tool is armed; in other modes a click means something else
// (move, delete) and must not disturb the selection.

// Toggle adds the seat to the selection if absent and removes it if
// present.  No-op unless the select tool is active and the id exists.
func (e *Editor) Toggle(id string) {
	if e.tool != ToolSelect {
		return
	}
	if e.seatIndex(id) < 0 {
		return
	}
	if _, ok := e.selected[id]; ok {
		delete(e.selected, id)
	} else {
		e.selected[id] = struct{}{}
	}
}

// DragSelectBegin starts a rectangle selection at the given point.
func (e *Editor) DragSelectBegin(x, y float64) {
	if e.tool != ToolSelect {
		return
	}
	e.dragging = true
	e.dragFromX, e.dragFromY = x, y
	e.dragToX, e.dragToY = x, y
}

// DragSelectUpdate extends the rectangle to the latest pointer position.
func (e *Editor) DragSelectUpdate(x, y float64) {
	if !e.dragging {
		return
	}
	e.dragToX, e.dragToY = x, y
}

// DragSelectRect returns the current drag rectangle, normalized so width
// and height are non-negative whatever direction the drag went.
func (e *Editor) DragSelectRect() (Rect, bool) {
	if !e.dragging {
		return Rect{}, false
	}
	return NormalizedRect(e.dragFromX, e.dragFromY, e.dragToX, e.dragToY), true
}

// DragSelectEnd finishes the rectangle selection: every seat whose
// center lies within the rectangle is added to the selection.  The
// result is a union with the prior selection, not a replacement.
func (e *Editor) DragSelectEnd() {
	if !e.dragging {
		return
	}
	r := NormalizedRect(e.dragFromX, e.dragFromY, e.dragToX, e.dragToY)
	e.dragging = false
	for _, s := range e.seats {
		cx := s.X + SeatSize/2
		cy := s.Y + SeatSize/2
		if Within(cx, cy, r) {
			e.selected[s.ID] = struct{}{}
		}
	}
}

// ClearSelection empties the selection set.
func (e *Editor) ClearSelection() {
	e.selected = make(map[string]struct{})
}

// SelectedIDs returns the selection as a sorted slice for deterministic
// iteration by the bulk operations and by tests.
func (e *Editor) SelectedIDs() []string {
	out := make([]string, 0, len(e.selected))
	for id := range e.selected {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SelectionCount reports how many seats are selected.
func (e *Editor) SelectionCount() int { return len(e.selected) }

// RetypeSelection applies Retype to the current selection; no-op when
// the selection is empty.
func (e *Editor) RetypeSelection(t SeatType) {
	if len(e.selected) == 0 {
		return
	}
	e.Retype(e.SelectedIDs(), t)
}

// ResectionSelection applies Resection to the current selection; no-op
// (and no error) when the selection is empty.
func (e *Editor) ResectionSelection(sectionID int) error {
	if len(e.selected) == 0 {
		return nil
	}
	return e.Resection(e.SelectedIDs(), sectionID)
}

// RotateSelection applies Rotate to the current selection.
func (e *Editor) RotateSelection(delta float64) {
	if len(e.selected) == 0 {
		return
	}
	e.Rotate(e.SelectedIDs(), delta)
}

// DeleteSelection removes every selected seat.
func (e *Editor) DeleteSelection() {
	if len(e.selected) == 0 {
		return
	}
	e.DeleteSeats(e.SelectedIDs())
}
