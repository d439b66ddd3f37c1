package repository // repository defines data access for stored seat layouts

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// LayoutRecord is a venue's stored layout: the whole document as JSON
// plus a denormalized seat count for listings. One row per venue; a save
// replaces the previous document entirely (last write wins).
type LayoutRecord struct {
	VenueID   uint64 // PK and FK -> venues.id
	Document  []byte // canonical layout document, JSON
	SeatCount int
	UpdatedAt time.Time
}

// ErrLayoutNotFound is returned when a venue has no stored layout yet.
var ErrLayoutNotFound = errors.New("layout not found")

// LayoutRepo provides methods to work with stored layout documents.
type LayoutRepo struct {
	db *sql.DB
}

// NewLayoutRepo constructs a LayoutRepo with the given DB handle.
func NewLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db}
}

// Get retrieves the stored layout document for a venue.
func (r *LayoutRepo) Get(ctx context.Context, venueID uint64) (*LayoutRecord, error) {
	const q = `SELECT venue_id, document, seat_count, updated_at
	           FROM venue_layouts WHERE venue_id = ?`
	var rec LayoutRecord
	err := r.db.QueryRowContext(ctx, q, venueID).
		Scan(&rec.VenueID, &rec.Document, &rec.SeatCount, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLayoutNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Upsert stores a venue's layout document, replacing any previous one.
func (r *LayoutRepo) Upsert(ctx context.Context, venueID uint64, document []byte, seatCount int) error {
	const q = `INSERT INTO venue_layouts (venue_id, document, seat_count)
	           VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	             document = VALUES(document),
	             seat_count = VALUES(seat_count),
	             updated_at = CURRENT_TIMESTAMP`
	_, err := r.db.ExecContext(ctx, q, venueID, document, seatCount)
	return err
}

// Delete removes a venue's stored layout. Deleting an absent layout is
// not an error.
func (r *LayoutRepo) Delete(ctx context.Context, venueID uint64) error {
	const q = `DELETE FROM venue_layouts WHERE venue_id = ?`
	_, err := r.db.ExecContext(ctx, q, venueID)
	return err
}
