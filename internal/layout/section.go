package layout

import (
	"errors"
	"fmt"
)

// Section is a named, colored grouping of seats, generally one pricing
// tier.  Seat membership is derived from Seat.SectionID; seat count and
// revenue are computed on demand and never stored.
type Section struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ErrSectionNotFound is returned when an operation names a section id
// that is not registered in the layout.
var ErrSectionNotFound = errors.New("section not found")

// sectionPalette is cycled by section id when no color is supplied.
var sectionPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FECA57",
	"#FF8A80", "#82B1FF", "#B39DDB", "#A5D6A7", "#FFCC80",
}

// PaletteColor returns the default color for a section id.
func PaletteColor(id int) string {
	if id < 0 {
		id = -id
	}
	return sectionPalette[id%len(sectionPalette)]
}

// AddSection registers a new section and makes it the active one.  The id
// is the highest existing id plus one (1 for an empty registry).  Empty
// name or color fall back to "Section <id>" and the palette color.
func (e *Editor) AddSection(name, color string) Section {
	id := 1
	for _, s := range e.sections {
		if s.ID >= id {
			id = s.ID + 1
		}
	}
	if name == "" {
		name = fmt.Sprintf("Section %d", id)
	}
	if color == "" {
		color = PaletteColor(id)
	}
	sec := Section{ID: id, Name: name, Color: color}
	e.sections = append(e.sections, sec)
	e.activeSection = id
	return sec
}

// UpdateSection renames or recolors a section.  Seats are untouched: they
// hold only the id, so the change is visible everywhere immediately.
func (e *Editor) UpdateSection(id int, name, color string) error {
	for i := range e.sections {
		if e.sections[i].ID == id {
			if name != "" {
				e.sections[i].Name = name
			}
			if color != "" {
				e.sections[i].Color = color
			}
			return nil
		}
	}
	return ErrSectionNotFound
}

// DeleteSection removes a section and every seat referencing it, so no
// seat is ever left with a dangling section id.  When the active section
// is deleted the first remaining section becomes active; with none left
// the active id drops to 0 and seat placement is disabled until a section
// is added again.
func (e *Editor) DeleteSection(id int) error {
	idx := -1
	for i := range e.sections {
		if e.sections[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrSectionNotFound
	}
	e.sections = append(e.sections[:idx], e.sections[idx+1:]...)

	kept := e.seats[:0]
	for _, s := range e.seats {
		if s.SectionID == id {
			delete(e.selected, s.ID)
			continue
		}
		kept = append(kept, s)
	}
	e.seats = kept

	if e.activeSection == id {
		if len(e.sections) > 0 {
			e.activeSection = e.sections[0].ID
		} else {
			e.activeSection = 0
		}
	}
	return nil
}

// Section looks up a section by id.
func (e *Editor) Section(id int) (Section, bool) {
	for _, s := range e.sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Sections returns a copy of the registry in insertion order.
func (e *Editor) Sections() []Section {
	out := make([]Section, len(e.sections))
	copy(out, e.sections)
	return out
}

// ActiveSection returns the id new seats are assigned to, 0 when no
// section exists.
func (e *Editor) ActiveSection() int { return e.activeSection }

// SetActiveSection selects the section new seats are placed into.
func (e *Editor) SetActiveSection(id int) error {
	if _, ok := e.Section(id); !ok {
		return ErrSectionNotFound
	}
	e.activeSection = id
	return nil
}

// SectionSeatCount reports how many seats currently reference the section.
func (e *Editor) SectionSeatCount(id int) int {
	n := 0
	for _, s := range e.seats {
		if s.SectionID == id {
			n++
		}
	}
	return n
}

// SectionRevenue sums the prices of the section's active seats.
func (e *Editor) SectionRevenue(id int) int {
	sum := 0
	for _, s := range e.seats {
		if s.SectionID == id && s.IsActive {
			sum += s.Price
		}
	}
	return sum
}
