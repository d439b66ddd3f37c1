package layout

import (
	"fmt"
	"math"
	"strings"
)

// Document is the persisted/exchanged shape of a venue layout.  Incoming
// documents may carry legacy field names left over from earlier editor
// revisions (seatType for type, sectionId for section, seatLabel for
// label, xPosition/yPosition for x/y); FromDocument is the single place
// those aliases are folded into the canonical form, so nothing else in
// the codebase ever branches on which name was populated.
type Document struct {
	Seats    []SeatDoc    `json:"seats"`
	Sections []SectionDoc `json:"sections"`
	Stage    *Stage       `json:"stage,omitempty"`
	Canvas   *Canvas      `json:"canvas,omitempty"`
	EditMode string       `json:"editMode,omitempty"`
}

// SeatDoc is one seat on the wire.  Pointer fields distinguish absent
// from zero so defaulting can repair partial records.
type SeatDoc struct {
	ID        string   `json:"id,omitempty"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`
	XPosition *float64 `json:"xPosition,omitempty"` // legacy alias for x
	YPosition *float64 `json:"yPosition,omitempty"` // legacy alias for y
	Type      string   `json:"type,omitempty"`
	SeatType  string   `json:"seatType,omitempty"` // legacy alias for type
	Section   *int     `json:"section,omitempty"`
	SectionID *int     `json:"sectionId,omitempty"` // legacy alias for section
	Label     string   `json:"label,omitempty"`
	SeatLabel string   `json:"seatLabel,omitempty"` // legacy alias for label
	Price     *int     `json:"price,omitempty"`
	IsActive  *bool    `json:"isActive,omitempty"`
	Rotation  *float64 `json:"rotation,omitempty"`
}

// SectionDoc is one section on the wire.
type SectionDoc struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// FieldError describes a single rejected seat field in a save request.
type FieldError struct {
	Seat    string `json:"seat"`  // seat id, or "seats[i]" when the id is missing
	Field   string `json:"field"` // offending field name, canonical form
	Message string `json:"message"`
}

// normalizeSeatType folds legacy spellings into the closed enum.  The
// old editors sent DISABLED for accessible seating.
func normalizeSeatType(raw string) (SeatType, bool) {
	t := SeatType(strings.ToUpper(strings.TrimSpace(raw)))
	if t == "DISABLED" {
		return SeatWheelchair, true
	}
	if t.Valid() {
		return t, true
	}
	return SeatRegular, raw == ""
}

// coalesce returns the canonical value when present, otherwise the
// legacy alias, otherwise the fallback.
func coalesce(canonical, legacy *float64, fallback float64) float64 {
	if canonical != nil {
		return *canonical
	}
	if legacy != nil {
		return *legacy
	}
	return fallback
}

// Document serializes the model into its canonical wire form.  Every
// seat is emitted with the full field set: coordinates rounded to whole
// pixels, invalid types replaced with REGULAR, non-positive prices
// re-defaulted from the type, blank labels synthesized, and orphaned
// section references pointed at the first section.  Even a corrupted
// in-memory state serializes to a structurally valid document.
func (e *Editor) Document() Document {
	fallbackSection := 1
	if len(e.sections) > 0 {
		fallbackSection = e.sections[0].ID
	}

	seats := make([]SeatDoc, 0, len(e.seats))
	for i, s := range e.seats {
		t := s.Type
		if !t.Valid() {
			t = SeatRegular
		}
		price := s.Price
		if price < 0 {
			price = t.DefaultPrice()
		}
		label := s.Label
		if label == "" {
			label = fmt.Sprintf("SEAT-%d", i+1)
		}
		section := s.SectionID
		if _, ok := e.Section(section); !ok {
			section = fallbackSection
		}
		id := s.ID
		if id == "" {
			id = fmt.Sprintf("seat-%d", i+1)
		}
		x := math.Round(s.X)
		y := math.Round(s.Y)
		active := s.IsActive
		rotation := normalizeAngle(s.Rotation)
		seats = append(seats, SeatDoc{
			ID:       id,
			X:        &x,
			Y:        &y,
			Type:     string(t),
			Section:  &section,
			Label:    label,
			Price:    &price,
			IsActive: &active,
			Rotation: &rotation,
		})
	}

	sections := make([]SectionDoc, 0, len(e.sections))
	for _, s := range e.sections {
		sections = append(sections, SectionDoc{ID: s.ID, Name: s.Name, Color: s.Color})
	}

	stage := e.stage
	canvas := e.canvas
	return Document{
		Seats:    seats,
		Sections: sections,
		Stage:    &stage,
		Canvas:   &canvas,
		EditMode: string(e.mode),
	}
}

// FromDocument rebuilds the in-memory model from a stored document.  It
// never fails: missing fields are defaulted, legacy aliases resolved,
// positions clamped into the current canvas bounds (stored positions are
// advisory, the canvas may have changed since save), and seats pointing
// at unknown sections re-homed to the first section.  The resulting
// model is always fully valid.
func FromDocument(doc Document) *Editor {
	e := newEmptyEditor()

	if doc.Canvas != nil && doc.Canvas.Width > 0 && doc.Canvas.Height > 0 {
		e.canvas = *doc.Canvas
		if e.canvas.GridSize <= 0 {
			e.canvas.GridSize = DefaultCanvas().GridSize
		}
	}
	if doc.Stage != nil && doc.Stage.Width > 0 && doc.Stage.Height > 0 {
		e.stage = *doc.Stage
	}
	switch EditMode(doc.EditMode) {
	case ModeFlexible:
		e.mode = ModeFlexible
	default:
		e.mode = ModeGrid
	}

	for _, s := range doc.Sections {
		if s.ID <= 0 {
			continue
		}
		if _, dup := e.Section(s.ID); dup {
			continue
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Section %d", s.ID)
		}
		color := s.Color
		if color == "" {
			color = PaletteColor(s.ID)
		}
		e.sections = append(e.sections, Section{ID: s.ID, Name: name, Color: color})
	}
	if len(e.sections) == 0 {
		for i := 0; i < 3; i++ {
			e.AddSection("", "")
		}
	}
	e.activeSection = e.sections[0].ID

	for i, sd := range doc.Seats {
		t, _ := normalizeSeatType(firstNonEmpty(sd.Type, sd.SeatType))

		section := 0
		if sd.Section != nil {
			section = *sd.Section
		} else if sd.SectionID != nil {
			section = *sd.SectionID
		}
		if _, ok := e.Section(section); !ok {
			section = e.sections[0].ID
		}

		x := coalesce(sd.X, sd.XPosition, 0)
		y := coalesce(sd.Y, sd.YPosition, 0)
		x, y = clampToCanvas(x, y, e.canvas)

		label := firstNonEmpty(sd.Label, sd.SeatLabel)
		if label == "" {
			if e.mode == ModeGrid {
				label = LabelFor(x, y, e.canvas.GridSize)
			} else {
				label = fmt.Sprintf("SEAT-%d", i+1)
			}
		}

		price := t.DefaultPrice()
		if sd.Price != nil && *sd.Price >= 0 {
			price = *sd.Price
		}

		active := true
		if sd.IsActive != nil {
			active = *sd.IsActive
		}

		rotation := 0.0
		if sd.Rotation != nil {
			rotation = normalizeAngle(*sd.Rotation)
		}

		id := sd.ID
		if id == "" {
			id = e.newSeatID()
		}

		e.seats = append(e.seats, Seat{
			ID:        id,
			X:         x,
			Y:         y,
			Type:      t,
			SectionID: section,
			Label:     label,
			Price:     price,
			Rotation:  rotation,
			IsActive:  active,
		})
	}
	e.nextID = len(e.seats) + 1
	return e
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// ValidateDocument checks a save request for violations the model cannot
// repair silently: unknown seat types, negative prices, references to
// sections absent from the document, duplicate seat ids.  Violations are
// reported per field so clients can show which records failed without
// discarding the rest of the edit.
func ValidateDocument(doc Document) []FieldError {
	var errs []FieldError

	known := make(map[int]struct{}, len(doc.Sections))
	for _, s := range doc.Sections {
		known[s.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(doc.Seats))
	for i, sd := range doc.Seats {
		ref := sd.ID
		if ref == "" {
			ref = fmt.Sprintf("seats[%d]", i)
		}
		if sd.ID != "" {
			if _, dup := seen[sd.ID]; dup {
				errs = append(errs, FieldError{Seat: ref, Field: "id", Message: "duplicate seat id"})
			}
			seen[sd.ID] = struct{}{}
		}
		if _, ok := normalizeSeatType(firstNonEmpty(sd.Type, sd.SeatType)); !ok {
			errs = append(errs, FieldError{Seat: ref, Field: "type", Message: "unknown seat type"})
		}
		if sd.Price != nil && *sd.Price < 0 {
			errs = append(errs, FieldError{Seat: ref, Field: "price", Message: "price must not be negative"})
		}
		section := 0
		if sd.Section != nil {
			section = *sd.Section
		} else if sd.SectionID != nil {
			section = *sd.SectionID
		}
		if section != 0 && len(known) > 0 {
			if _, ok := known[section]; !ok {
				errs = append(errs, FieldError{Seat: ref, Field: "section", Message: "section does not exist"})
			}
		}
	}
	return errs
}

// SectionStats is the derived per-section summary.
type SectionStats struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SeatCount int    `json:"seatCount"`
	Revenue   int    `json:"revenue"`
}

// Statistics is the derived summary returned alongside a layout.
type Statistics struct {
	TotalSeats   int            `json:"totalSeats"`
	ActiveSeats  int            `json:"activeSeats"`
	TotalRevenue int            `json:"totalRevenue"`
	Sections     []SectionStats `json:"sections"`
}

// Statistics computes seat counts and the revenue sum of active seats,
// overall and per section.
func (e *Editor) Statistics() Statistics {
	st := Statistics{TotalSeats: len(e.seats)}
	for _, s := range e.seats {
		if s.IsActive {
			st.ActiveSeats++
			st.TotalRevenue += s.Price
		}
	}
	for _, sec := range e.sections {
		st.Sections = append(st.Sections, SectionStats{
			ID:        sec.ID,
			Name:      sec.Name,
			SeatCount: e.SectionSeatCount(sec.ID),
			Revenue:   e.SectionRevenue(sec.ID),
		})
	}
	return st
}
