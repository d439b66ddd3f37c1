package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateCatalogue(t *testing.T) {
	keys := make([]string, 0, len(Templates))
	for _, tpl := range Templates {
		keys = append(keys, tpl.Key)
	}
	assert.Equal(t, []string{"small_theater", "medium_theater", "large_theater", "concert_hall"}, keys)

	tpl, err := TemplateByKey("medium_theater")
	require.NoError(t, err)
	assert.Equal(t, 15, tpl.Rows)
	assert.Equal(t, 12, tpl.Cols)

	_, err = TemplateByKey("imax")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestGenerateBlockGeometry(t *testing.T) {
	seats, sections := Generate(5, 8, 800, 600, 40)
	require.Len(t, seats, 40)
	require.Len(t, sections, 3)

	// 8 columns at 50px spacing, centered: block spans 350px from x=225,
	// seat origin offset by half a seat.
	first := seats[0]
	assert.Equal(t, "seat-1-1", first.ID)
	assert.Equal(t, "A1", first.Label)
	assert.Equal(t, 205.0, first.X)
	assert.Equal(t, 150.0, first.Y) // stage bottom 110 + 60 offset - 20

	last := seats[len(seats)-1]
	assert.Equal(t, "seat-5-8", last.ID)
	assert.Equal(t, "E8", last.Label)
	assert.Equal(t, 555.0, last.X)
	assert.Equal(t, 390.0, last.Y)
}

func TestGenerateTiersByRowBand(t *testing.T) {
	seats, _ := Generate(5, 8, 800, 600, 40)

	byRow := func(row int) Seat { return seats[row*8] }
	assert.Equal(t, SeatVIP, byRow(0).Type)
	assert.Equal(t, SeatVIP, byRow(1).Type)
	assert.Equal(t, SeatPremium, byRow(2).Type)
	assert.Equal(t, SeatRegular, byRow(3).Type)
	assert.Equal(t, SeatRegular, byRow(4).Type)

	assert.Equal(t, 1, byRow(0).SectionID)
	assert.Equal(t, 2, byRow(2).SectionID)
	assert.Equal(t, 3, byRow(4).SectionID)
}

func TestGenerateSeatsFullyPopulated(t *testing.T) {
	seats, _ := Generate(10, 8, 800, 600, 40)
	for _, s := range seats {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Label)
		assert.True(t, s.Type.Valid())
		assert.Equal(t, s.Type.DefaultPrice(), s.Price)
		assert.True(t, s.IsActive)
		assert.GreaterOrEqual(t, s.X, 0.0)
		assert.GreaterOrEqual(t, s.Y, 0.0)
	}
}

func TestGenerateRejectsNonPositiveDimensions(t *testing.T) {
	seats, sections := Generate(0, 8, 800, 600, 40)
	assert.Nil(t, seats)
	assert.Nil(t, sections)
}

func TestCanvasForGrowsToFitBlock(t *testing.T) {
	// The default canvas already fits a small block.
	assert.Equal(t, DefaultCanvas(), CanvasFor(5, 8, 40))

	// A concert hall cannot fit 800x600; the canvas grows instead of
	// letting clamping pile seats at the edges.
	c := CanvasFor(25, 20, 40)
	assert.Greater(t, c.Width, 800)
	assert.Greater(t, c.Height, 600)
}

func TestNewFromTemplate(t *testing.T) {
	tpl, err := TemplateByKey("small_theater")
	require.NoError(t, err)
	e := NewFromTemplate(tpl)

	assert.Equal(t, 80, e.SeatCount())
	assert.Len(t, e.Sections(), 3)
	assert.Equal(t, ModeFlexible, e.Mode())
	assert.Equal(t, 1, e.ActiveSection())

	// Every seat must sit fully on the (possibly grown) canvas.
	c := e.Canvas()
	for _, s := range e.Seats() {
		assert.LessOrEqual(t, s.X, float64(c.Width-SeatSize))
		assert.LessOrEqual(t, s.Y, float64(c.Height-SeatSize))
	}
}

func TestNewFromTemplateConcertHallNoOverlap(t *testing.T) {
	tpl, err := TemplateByKey("concert_hall")
	require.NoError(t, err)
	e := NewFromTemplate(tpl)
	require.Equal(t, 500, e.SeatCount())

	// Distinct positions everywhere: the grown canvas means clamping
	// never stacks two seats on the same point.
	seen := make(map[[2]float64]bool)
	for _, s := range e.Seats() {
		key := [2]float64{s.X, s.Y}
		assert.False(t, seen[key], "duplicate position %v", key)
		seen[key] = true
	}
}
