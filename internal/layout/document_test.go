package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func ip(v int) *int        { return &v }

func TestDocumentRoundTrip(t *testing.T) {
	e := NewEditor()
	e.AddSeat(40, 40, SeatVIP)
	e.AddSeat(160, 40, SeatRegular)
	require.NoError(t, e.SetActiveSection(2))
	e.AddSeat(280, 120, SeatWheelchair)

	doc := e.Document()
	again := FromDocument(doc).Document()
	assert.Equal(t, doc, again)
}

func TestDocumentSurvivesJSON(t *testing.T) {
	e := NewFromTemplate(Templates[0])
	doc := e.Document()

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var parsed Document
	require.NoError(t, json.Unmarshal(raw, &parsed))

	assert.Equal(t, doc, FromDocument(parsed).Document())
}

func TestFromDocumentResolvesLegacyAliases(t *testing.T) {
	doc := Document{
		Seats: []SeatDoc{{
			ID:        "seat-7",
			XPosition: f(123),
			YPosition: f(456),
			SeatType:  "DISABLED", // old spelling for accessible seating
			SectionID: ip(2),
			SeatLabel: "G7",
		}},
		Sections: []SectionDoc{
			{ID: 1, Name: "Front", Color: "#111111"},
			{ID: 2, Name: "Back", Color: "#222222"},
		},
	}
	e := FromDocument(doc)
	s, ok := e.Seat("seat-7")
	require.True(t, ok)
	assert.Equal(t, 123.0, s.X)
	assert.Equal(t, 456.0, s.Y)
	assert.Equal(t, SeatWheelchair, s.Type)
	assert.Equal(t, 2, s.SectionID)
	assert.Equal(t, "G7", s.Label)
	assert.Equal(t, 50000, s.Price) // defaulted from type
	assert.True(t, s.IsActive)
}

func TestFromDocumentPrefersCanonicalOverLegacy(t *testing.T) {
	doc := Document{
		Seats: []SeatDoc{{
			ID: "s1", X: f(80), XPosition: f(9999), Y: f(40),
			Type: "VIP", SeatType: "REGULAR",
			Label: "B3", SeatLabel: "ignored",
			Section: ip(1), SectionID: ip(2),
		}},
		Sections: []SectionDoc{{ID: 1}, {ID: 2}},
	}
	s, ok := FromDocument(doc).Seat("s1")
	require.True(t, ok)
	assert.Equal(t, 80.0, s.X)
	assert.Equal(t, SeatVIP, s.Type)
	assert.Equal(t, "B3", s.Label)
	assert.Equal(t, 1, s.SectionID)
}

func TestFromDocumentRepairsDefects(t *testing.T) {
	doc := Document{
		EditMode: "flexible",
		Seats: []SeatDoc{
			{X: f(-100), Y: f(9999), Type: "REGULAR", Section: ip(42), Rotation: f(-90)},
		},
		Sections: []SectionDoc{{ID: 5}},
	}
	e := FromDocument(doc)
	require.Equal(t, 1, e.SeatCount())
	s := e.Seats()[0]

	assert.Equal(t, "seat-1", s.ID)    // synthesized id
	assert.Equal(t, 0.0, s.X)          // clamped
	assert.Equal(t, 560.0, s.Y)        // clamped to canvas bottom
	assert.Equal(t, 5, s.SectionID)    // orphan re-homed to first section
	assert.Equal(t, 270.0, s.Rotation) // normalized
	assert.Equal(t, "SEAT-1", s.Label)

	sec, ok := e.Section(5)
	require.True(t, ok)
	assert.Equal(t, "Section 5", sec.Name)
	assert.Equal(t, PaletteColor(5), sec.Color)
}

func TestFromDocumentEmptySectionsGetDefaults(t *testing.T) {
	e := FromDocument(Document{})
	assert.Len(t, e.Sections(), 3)
	assert.Equal(t, 1, e.ActiveSection())
	assert.Equal(t, DefaultCanvas(), e.Canvas())
	assert.Equal(t, ModeGrid, e.Mode())
}

func TestValidateDocumentReportsPerField(t *testing.T) {
	doc := Document{
		Seats: []SeatDoc{
			{ID: "a", Type: "THRONE"},
			{ID: "a", Type: "VIP", Price: ip(-5)},
			{ID: "b", Type: "REGULAR", Section: ip(9)},
			{Type: "REGULAR", Price: ip(-1)}, // no id: referenced by index
		},
		Sections: []SectionDoc{{ID: 1}},
	}
	errs := ValidateDocument(doc)
	require.Len(t, errs, 5)

	fields := map[string][]string{}
	for _, fe := range errs {
		fields[fe.Seat] = append(fields[fe.Seat], fe.Field)
	}
	assert.Contains(t, fields["a"], "type")
	assert.Contains(t, fields["a"], "id") // duplicate
	assert.Contains(t, fields["a"], "price")
	assert.Contains(t, fields["b"], "section")
	assert.Contains(t, fields["seats[3]"], "price")
}

func TestValidateDocumentAcceptsCleanDocument(t *testing.T) {
	doc := NewFromTemplate(Templates[0]).Document()
	assert.Empty(t, ValidateDocument(doc))
}

func TestDocumentRepairsCorruptState(t *testing.T) {
	e := NewEditor()
	e.seats = append(e.seats, Seat{
		ID: "", X: 40.4, Y: 39.6, Type: SeatType("bogus"),
		SectionID: 77, Price: -1, IsActive: true,
	})
	doc := e.Document()
	require.Len(t, doc.Seats, 1)
	sd := doc.Seats[0]
	assert.Equal(t, "seat-1", sd.ID)
	assert.Equal(t, 40.0, *sd.X) // rounded
	assert.Equal(t, "REGULAR", sd.Type)
	assert.Equal(t, 50000, *sd.Price)
	assert.Equal(t, 1, *sd.Section)
	assert.Equal(t, "SEAT-1", sd.Label)
}

func TestStatistics(t *testing.T) {
	e := NewEditor()
	a, _ := e.AddSeat(40, 40, SeatVIP) // 100000
	e.AddSeat(160, 40, SeatRegular)    // 50000
	require.NoError(t, e.SetActiveSection(2))
	e.AddSeat(280, 40, SeatPremium) // 75000
	e.SetSeatActive(a.ID, false)

	st := e.Statistics()
	assert.Equal(t, 3, st.TotalSeats)
	assert.Equal(t, 2, st.ActiveSeats)
	assert.Equal(t, 125000, st.TotalRevenue)
	require.Len(t, st.Sections, 3)
	assert.Equal(t, 2, st.Sections[0].SeatCount)
	assert.Equal(t, 50000, st.Sections[0].Revenue)
	assert.Equal(t, 1, st.Sections[1].SeatCount)
	assert.Equal(t, 75000, st.Sections[1].Revenue)
	assert.Equal(t, 0, st.Sections[2].SeatCount)
}
