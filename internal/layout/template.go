package layout

import (
	"errors"
	"fmt"
	"strconv"
)

// Template describes a named default layout a venue can start from.
type Template struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

// Templates is the catalogue offered by the storefront editor.
var Templates = []Template{
	{Key: "small_theater", Name: "Small theater", Rows: 10, Cols: 8},
	{Key: "medium_theater", Name: "Medium theater", Rows: 15, Cols: 12},
	{Key: "large_theater", Name: "Large theater", Rows: 20, Cols: 16},
	{Key: "concert_hall", Name: "Concert hall", Rows: 25, Cols: 20},
}

// ErrUnknownTemplate is returned for template keys not in the catalogue.
var ErrUnknownTemplate = errors.New("unknown template")

// TemplateByKey looks a template up by its key.
func TemplateByKey(key string) (Template, error) {
	for _, t := range Templates {
		if t.Key == key {
			return t, nil
		}
	}
	return Template{}, ErrUnknownTemplate
}

// templateStageOffset is the vertical gap between the bottom of the
// stage and the first seat row.
const templateStageOffset = 60

// CanvasFor sizes a canvas large enough to hold a rows x cols template
// without clamping distorting the block, never smaller than the default.
func CanvasFor(rows, cols, grid int) Canvas {
	c := DefaultCanvas()
	if grid > 0 {
		c.GridSize = grid
	}
	sx, sy := templateSpacing(c.GridSize)
	needW := (cols-1)*sx + 2*SeatSize
	needH := int(DefaultStage().Y+DefaultStage().Height) + templateStageOffset + (rows-1)*sy + 2*SeatSize
	if needW > c.Width {
		c.Width = needW
	}
	if needH > c.Height {
		c.Height = needH
	}
	return c
}

// templateSpacing derives seat and row spacing from the grid size; at
// the default 40px grid this is the storefront's 50/60 spacing.
func templateSpacing(grid int) (seat, row int) {
	if grid <= 0 {
		grid = DefaultCanvas().GridSize
	}
	return grid + 10, grid + 20
}

// Generate lays out a rectangular block of rows x cols seats centered
// horizontally on the canvas, with the first row a fixed offset below
// the stage.  Seat types and sections tier by row band: the front
// quarter is VIP, the next quarter PREMIUM, the rest REGULAR, one
// section per band.  Every emitted seat is fully populated; nothing is
// patched afterwards.
func Generate(rows, cols, canvasWidth, canvasHeight, gridSize int) ([]Seat, []Section) {
	if rows <= 0 || cols <= 0 {
		return nil, nil
	}
	sections := []Section{
		{ID: 1, Name: "Section 1", Color: PaletteColor(1)},
		{ID: 2, Name: "Section 2", Color: PaletteColor(2)},
		{ID: 3, Name: "Section 3", Color: PaletteColor(3)},
	}
	canvas := Canvas{Width: canvasWidth, Height: canvasHeight, GridSize: gridSize}
	stage := DefaultStage()
	sx, sy := templateSpacing(gridSize)

	totalWidth := float64((cols - 1) * sx)
	startX := (float64(canvasWidth) - totalWidth) / 2
	firstRowY := stage.Y + stage.Height + templateStageOffset

	seats := make([]Seat, 0, rows*cols)
	for row := 0; row < rows; row++ {
		var t SeatType
		var sectionID int
		switch {
		case row*4 < rows:
			t, sectionID = SeatVIP, 1
		case row*2 < rows:
			t, sectionID = SeatPremium, 2
		default:
			t, sectionID = SeatRegular, 3
		}
		for col := 0; col < cols; col++ {
			x := startX + float64(col*sx) - SeatSize/2
			y := firstRowY + float64(row*sy) - SeatSize/2
			x, y = clampToCanvas(x, y, canvas)
			seats = append(seats, Seat{
				ID:        fmt.Sprintf("seat-%d-%d", row+1, col+1),
				X:         x,
				Y:         y,
				Type:      t,
				SectionID: sectionID,
				Label:     RowLabel(row) + strconv.Itoa(col+1),
				Price:     t.DefaultPrice(),
				Rotation:  0,
				IsActive:  true,
			})
		}
	}
	return seats, sections
}

// NewFromTemplate builds a ready-to-edit layout from a catalogue
// template, sizing the canvas to fit the block.
func NewFromTemplate(t Template) *Editor {
	canvas := CanvasFor(t.Rows, t.Cols, DefaultCanvas().GridSize)
	seats, sections := Generate(t.Rows, t.Cols, canvas.Width, canvas.Height, canvas.GridSize)
	e := newEmptyEditor()
	e.canvas = canvas
	e.mode = ModeFlexible
	e.sections = sections
	e.seats = seats
	e.nextID = len(seats) + 1
	if len(sections) > 0 {
		e.activeSection = sections[0].ID
	}
	return e
}
