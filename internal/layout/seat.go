package layout // layout implements the in-memory seat layout model and editing engine

// SeatType classifies a seat for pricing and rendering.  The set is
// closed: documents carrying any other value are normalized to REGULAR.
type SeatType string

const (
	SeatRegular    SeatType = "REGULAR"
	SeatVIP        SeatType = "VIP"
	SeatPremium    SeatType = "PREMIUM"
	SeatWheelchair SeatType = "WHEELCHAIR"
	SeatBlocked    SeatType = "BLOCKED"
)

// seatTypeInfo carries the presentation defaults attached to each type.
type seatTypeInfo struct {
	Color string // hex display color
	Price int    // default ticket price in KRW
}

// seatTypes is the authoritative table of seat classes.  Colors and
// prices mirror the storefront so both ends render identically.
var seatTypes = map[SeatType]seatTypeInfo{
	SeatRegular:    {Color: "#3B82F6", Price: 50000},
	SeatVIP:        {Color: "#F59E0B", Price: 100000},
	SeatPremium:    {Color: "#8B5CF6", Price: 75000},
	SeatWheelchair: {Color: "#10B981", Price: 50000},
	SeatBlocked:    {Color: "#6B7280", Price: 0},
}

// Valid reports whether t is one of the five known seat types.
func (t SeatType) Valid() bool {
	_, ok := seatTypes[t]
	return ok
}

// DefaultPrice returns the list price for the type, 0 for unknown types.
func (t SeatType) DefaultPrice() int { return seatTypes[t].Price }

// Color returns the display color for the type, empty for unknown types.
func (t SeatType) Color() string { return seatTypes[t].Color }

// SeatTypes returns every valid type in a stable order, used by handlers
// that enumerate the palette for clients.
func SeatTypes() []SeatType {
	return []SeatType{SeatRegular, SeatVIP, SeatPremium, SeatWheelchair, SeatBlocked}
}

// Seat is a single bookable position on the canvas.  Position is the
// top-left corner of the seat's SeatSize x SeatSize box in canvas pixels.
// Seats reference their section by id only; name and color are resolved
// through the section registry so edits there never leave stale copies.
//
// Fields:
//
//	ID        – opaque identifier, stable for the seat's lifetime.
//	X, Y      – top-left corner in canvas pixels.
//	Type      – seat class, one of the SeatType constants.
//	SectionID – owning section; always resolves to a live section.
//	Label     – human readable code such as "A1"; derived from the grid
//	            cell while the layout is in grid mode.
//	Price     – ticket price; defaults from Type, may be overridden.
//	Rotation  – degrees in [0, 360), used for curved rows.
//	IsActive  – inactive seats are kept in the layout but excluded from
//	            booking availability.
type Seat struct {
	ID        string   `json:"id"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Type      SeatType `json:"type"`
	SectionID int      `json:"section"`
	Label     string   `json:"label"`
	Price     int      `json:"price"`
	Rotation  float64  `json:"rotation"`
	IsActive  bool     `json:"isActive"`
}

// Stage marks the non-interactive stage area.  It only moves while the
// stage tool is active.
type Stage struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
}

// Canvas bounds all geometry.  GridSize is the snap increment in grid
// mode.
type Canvas struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	GridSize int `json:"gridSize"`
}

// DefaultCanvas matches the storefront editor's fixed canvas.
func DefaultCanvas() Canvas { return Canvas{Width: 800, Height: 600, GridSize: 40} }

// DefaultStage places the stage where the storefront editor draws it.
func DefaultStage() Stage { return Stage{X: 200, Y: 50, Width: 200, Height: 60} }
