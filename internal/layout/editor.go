package layout

import (
	"fmt"
	"math"
)

// Tool is the editor's current interaction mode.  Exactly one tool is
// active at a time; operations that belong to another tool are no-ops.
// This replaces the storefront's loose boolean flags with a closed set.
type Tool string

const (
	ToolAdd    Tool = "add"    // click places a seat
	ToolSelect Tool = "select" // click toggles selection, drag selects a region
	ToolMove   Tool = "move"   // drag moves a single seat
	ToolDelete Tool = "delete" // click removes a seat
	ToolStage  Tool = "stage"  // drag moves the stage marker
	ToolPan    Tool = "pan"    // drag pans the viewport, model untouched
)

// Editor is the authoritative in-memory layout model: the seat store,
// section registry, stage and canvas, plus the selection state.  All
// methods run on the caller's goroutine; the engine has no internal
// locking because editing is single-threaded by design.
type Editor struct {
	seats         []Seat
	sections      []Section
	stage         Stage
	canvas        Canvas
	mode          EditMode
	tool          Tool
	activeSection int

	selected  map[string]struct{}
	dragging  bool
	dragFromX float64
	dragFromY float64
	dragToX   float64
	dragToY   float64

	nextID int // monotonically increasing seat id suffix
}

// NewEditor returns an empty layout with the storefront defaults: an
// 800x600 canvas with a 40px grid, the stage at the top, grid snapping
// on, the add tool armed and three default sections to place into.
func NewEditor() *Editor {
	e := &Editor{
		stage:    DefaultStage(),
		canvas:   DefaultCanvas(),
		mode:     ModeGrid,
		tool:     ToolAdd,
		selected: make(map[string]struct{}),
		nextID:   1,
	}
	for i := 0; i < 3; i++ {
		e.AddSection("", "")
	}
	e.activeSection = e.sections[0].ID
	return e
}

// newEmptyEditor is the construction path used when loading a document:
// no default sections, those come from the document itself.
func newEmptyEditor() *Editor {
	return &Editor{
		stage:    DefaultStage(),
		canvas:   DefaultCanvas(),
		mode:     ModeGrid,
		tool:     ToolAdd,
		selected: make(map[string]struct{}),
		nextID:   1,
	}
}

// Mode returns the current edit mode.
func (e *Editor) Mode() EditMode { return e.mode }

// SetMode switches between grid and flexible placement.  Unknown values
// are ignored.
func (e *Editor) SetMode(m EditMode) {
	if m == ModeGrid || m == ModeFlexible {
		e.mode = m
	}
}

// Tool returns the active interaction tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool arms a tool.  Switching away from the select tool keeps the
// selection; callers clear it explicitly when they want a fresh start.
func (e *Editor) SetTool(t Tool) {
	switch t {
	case ToolAdd, ToolSelect, ToolMove, ToolDelete, ToolStage, ToolPan:
		e.tool = t
	}
}

// Canvas returns the canvas bounds.
func (e *Editor) Canvas() Canvas { return e.canvas }

// Stage returns the stage marker.
func (e *Editor) Stage() Stage { return e.stage }

// MoveStage repositions the stage marker, clamped so it stays on canvas.
// The stage is fixed unless the stage tool is active.
func (e *Editor) MoveStage(x, y float64) {
	if e.tool != ToolStage {
		return
	}
	maxX := float64(e.canvas.Width) - e.stage.Width
	maxY := float64(e.canvas.Height) - e.stage.Height
	e.stage.X = math.Min(math.Max(x, 0), math.Max(maxX, 0))
	e.stage.Y = math.Min(math.Max(y, 0), math.Max(maxY, 0))
}

// Seats returns a copy of the seat list in insertion order.
func (e *Editor) Seats() []Seat {
	out := make([]Seat, len(e.seats))
	copy(out, e.seats)
	return out
}

// SeatCount returns the number of seats in the layout.
func (e *Editor) SeatCount() int { return len(e.seats) }

// Seat looks up a seat by id.
func (e *Editor) Seat(id string) (Seat, bool) {
	if i := e.seatIndex(id); i >= 0 {
		return e.seats[i], true
	}
	return Seat{}, false
}

func (e *Editor) seatIndex(id string) int {
	for i := range e.seats {
		if e.seats[i].ID == id {
			return i
		}
	}
	return -1
}

// newSeatID allocates an id no existing seat uses.  Loaded documents may
// carry arbitrary ids, so the counter skips collisions.
func (e *Editor) newSeatID() string {
	for {
		id := fmt.Sprintf("seat-%d", e.nextID)
		e.nextID++
		if e.seatIndex(id) < 0 {
			return id
		}
	}
}

// occupied reports whether another seat's box already covers the target
// position, keeping a minimum separation of one seat diameter.
func (e *Editor) occupied(x, y float64) bool {
	for _, s := range e.seats {
		dx := s.X - x
		dy := s.Y - y
		if dx*dx+dy*dy < SeatSize*SeatSize {
			return true
		}
	}
	return false
}

// AddSeat places a seat of the given type at (x, y) in the active
// section.  The position is snapped in grid mode and clamped to the
// canvas.  Placement is silently refused when no section exists or the
// snapped spot is already occupied.  Returns the created seat and true
// on success.
func (e *Editor) AddSeat(x, y float64, t SeatType) (Seat, bool) {
	sec, ok := e.Section(e.activeSection)
	if !ok {
		return Seat{}, false
	}
	if !t.Valid() {
		t = SeatRegular
	}
	x, y = Snap(x, y, e.canvas.GridSize, e.mode)
	x, y = clampToCanvas(x, y, e.canvas)
	if e.occupied(x, y) {
		return Seat{}, false
	}
	label := ""
	if e.mode == ModeGrid {
		label = LabelFor(x, y, e.canvas.GridSize)
	} else {
		label = fmt.Sprintf("%s-%d", sec.Name, len(e.seats)+1)
	}
	seat := Seat{
		ID:        e.newSeatID(),
		X:         x,
		Y:         y,
		Type:      t,
		SectionID: sec.ID,
		Label:     label,
		Price:     t.DefaultPrice(),
		IsActive:  true,
	}
	e.seats = append(e.seats, seat)
	return seat, true
}

// MoveSeat repositions a seat, snapping in grid mode and clamping to the
// canvas.  Grid-mode labels are position-derived and recomputed; freeform
// labels are kept.  Unknown ids are a no-op.
func (e *Editor) MoveSeat(id string, x, y float64) {
	i := e.seatIndex(id)
	if i < 0 {
		return
	}
	x, y = Snap(x, y, e.canvas.GridSize, e.mode)
	x, y = clampToCanvas(x, y, e.canvas)
	e.seats[i].X = x
	e.seats[i].Y = y
	if e.mode == ModeGrid {
		e.seats[i].Label = LabelFor(x, y, e.canvas.GridSize)
	}
}

// Retype sets the seat type for every listed seat and resets its price
// to the type default.  Unknown ids are skipped, not errors.
func (e *Editor) Retype(ids []string, t SeatType) {
	if !t.Valid() {
		return
	}
	for _, id := range ids {
		if i := e.seatIndex(id); i >= 0 {
			e.seats[i].Type = t
			e.seats[i].Price = t.DefaultPrice()
		}
	}
}

// Resection moves the listed seats into another section.  The operation
// is atomic: if the target section does not exist nothing is changed and
// ErrSectionNotFound is returned.
func (e *Editor) Resection(ids []string, sectionID int) error {
	if _, ok := e.Section(sectionID); !ok {
		return ErrSectionNotFound
	}
	for _, id := range ids {
		if i := e.seatIndex(id); i >= 0 {
			e.seats[i].SectionID = sectionID
		}
	}
	return nil
}

// Rotate adds delta degrees to each listed seat's rotation, normalized
// into [0, 360).
func (e *Editor) Rotate(ids []string, delta float64) {
	for _, id := range ids {
		if i := e.seatIndex(id); i >= 0 {
			e.seats[i].Rotation = normalizeAngle(e.seats[i].Rotation + delta)
		}
	}
}

// SetSeatActive toggles a seat's booking availability without removing
// it from the layout.
func (e *Editor) SetSeatActive(id string, active bool) {
	if i := e.seatIndex(id); i >= 0 {
		e.seats[i].IsActive = active
	}
}

// DeleteSeat removes a seat; deleting an unknown id is a no-op.
func (e *Editor) DeleteSeat(id string) {
	e.DeleteSeats([]string{id})
}

// DeleteSeats removes every listed seat and drops them from the current
// selection so the selection never holds stale references.
func (e *Editor) DeleteSeats(ids []string) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := e.seats[:0]
	for _, s := range e.seats {
		if _, gone := drop[s.ID]; gone {
			delete(e.selected, s.ID)
			continue
		}
		kept = append(kept, s)
	}
	e.seats = kept
}

// ClearSeats empties the seat store and the selection, keeping sections.
func (e *Editor) ClearSeats() {
	e.seats = nil
	e.selected = make(map[string]struct{})
}
