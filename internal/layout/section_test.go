package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSectionAssignsNextIDAndDefaults(t *testing.T) {
	e := NewEditor()
	sec := e.AddSection("", "")
	assert.Equal(t, 4, sec.ID)
	assert.Equal(t, "Section 4", sec.Name)
	assert.Equal(t, PaletteColor(4), sec.Color)
	assert.Equal(t, 4, e.ActiveSection())

	named := e.AddSection("Balcony", "#123456")
	assert.Equal(t, 5, named.ID)
	assert.Equal(t, "Balcony", named.Name)
	assert.Equal(t, "#123456", named.Color)
}

func TestAddSectionReusesNoIDs(t *testing.T) {
	e := NewEditor()
	require.NoError(t, e.DeleteSection(2))
	sec := e.AddSection("", "")
	// Max existing id is 3, so the new id must be 4, never the freed 2.
	assert.Equal(t, 4, sec.ID)
}

func TestUpdateSection(t *testing.T) {
	e := NewEditor()
	require.NoError(t, e.UpdateSection(2, "Mezzanine", "#ABCDEF"))
	sec, ok := e.Section(2)
	require.True(t, ok)
	assert.Equal(t, "Mezzanine", sec.Name)
	assert.Equal(t, "#ABCDEF", sec.Color)

	// Empty fields keep current values.
	require.NoError(t, e.UpdateSection(2, "", ""))
	sec, _ = e.Section(2)
	assert.Equal(t, "Mezzanine", sec.Name)

	assert.ErrorIs(t, e.UpdateSection(42, "x", ""), ErrSectionNotFound)
}

func TestDeleteSectionCascadesSeats(t *testing.T) {
	e := NewEditor()
	a, _ := e.AddSeat(40, 40, SeatRegular) // section 1
	require.NoError(t, e.SetActiveSection(2))
	b, _ := e.AddSeat(160, 160, SeatRegular) // section 2

	e.SetTool(ToolSelect)
	e.Toggle(a.ID)
	e.Toggle(b.ID)

	require.NoError(t, e.DeleteSection(1))

	// Seat a is gone with its section, and out of the selection.
	_, ok := e.Seat(a.ID)
	assert.False(t, ok)
	assert.Equal(t, []string{b.ID}, e.SelectedIDs())
	assert.Equal(t, 1, e.SeatCount())

	// No seat may reference a deleted section.
	for _, s := range e.Seats() {
		_, ok := e.Section(s.SectionID)
		assert.True(t, ok)
	}
}

func TestDeleteActiveSectionReassignsActive(t *testing.T) {
	e := NewEditor()
	require.NoError(t, e.SetActiveSection(1))
	require.NoError(t, e.DeleteSection(1))
	assert.Equal(t, 2, e.ActiveSection())

	assert.ErrorIs(t, e.DeleteSection(1), ErrSectionNotFound)
}

func TestSetActiveSectionUnknown(t *testing.T) {
	e := NewEditor()
	assert.ErrorIs(t, e.SetActiveSection(99), ErrSectionNotFound)
	assert.Equal(t, 1, e.ActiveSection())
}

func TestSectionSeatCountAndRevenue(t *testing.T) {
	e := NewEditor()
	a, _ := e.AddSeat(40, 40, SeatVIP)      // 100000
	e.AddSeat(160, 40, SeatRegular)         // 50000
	e.AddSeat(280, 40, SeatBlocked)         // 0
	assert.Equal(t, 3, e.SectionSeatCount(1))
	assert.Equal(t, 150000, e.SectionRevenue(1))

	// Inactive seats keep their slot but drop out of revenue.
	e.SetSeatActive(a.ID, false)
	assert.Equal(t, 3, e.SectionSeatCount(1))
	assert.Equal(t, 50000, e.SectionRevenue(1))
}

func TestPaletteColorCycles(t *testing.T) {
	assert.Equal(t, PaletteColor(1), PaletteColor(11))
	assert.Equal(t, "#4ECDC4", PaletteColor(1))
}
