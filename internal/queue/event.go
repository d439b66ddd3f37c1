// Package queue defines message payloads exchanged over the message broker.
package queue

// LayoutSavedEvent is published after a venue layout is persisted. It
// carries enough context for downstream consumers to log or notify
// without querying the primary database.
type LayoutSavedEvent struct {
	VenueID      uint64 `json:"venue_id"`
	VenueName    string `json:"venue_name"`
	SeatCount    int    `json:"seat_count"`
	SectionCount int    `json:"section_count"`
	TotalRevenue int    `json:"total_revenue"`
	SavedBy      uint64 `json:"saved_by"`
	SavedAt      string `json:"saved_at"` // RFC 3339
}
