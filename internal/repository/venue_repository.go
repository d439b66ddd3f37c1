package repository // repository defines data access for venues

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Venue represents a performance venue that seat layouts belong to.
type Venue struct {
	ID          uint64  // primary key
	OwnerID     uint64  // FK -> users.id, the administrator who created it
	Name        string  // unique per owner
	Description *string // nullable free text
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ErrVenueNotFound is returned when a venue lookup yields no rows.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepo provides methods to work with venues in the database.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a venue record. On success the venue's ID is populated.
func (r *VenueRepo) Create(ctx context.Context, v *Venue) error {
	const q = `INSERT INTO venues (owner_id, name, description, is_active)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.OwnerID, v.Name, v.Description, v.IsActive)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID retrieves a venue by its id (no ownership check).
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*Venue, error) {
	const q = `SELECT id, owner_id, name, description, is_active, created_at, updated_at
	           FROM venues WHERE id = ?`
	var v Venue
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// GetByIDAndOwner retrieves a venue by id while enforcing ownership.
func (r *VenueRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*Venue, error) {
	const q = `SELECT id, owner_id, name, description, is_active, created_at, updated_at
	           FROM venues WHERE id = ? AND owner_id = ?`
	var v Venue
	err := r.db.QueryRowContext(ctx, q, id, ownerID).
		Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// List retrieves all active venues ordered by name.
func (r *VenueRepo) List(ctx context.Context) ([]Venue, error) {
	const q = `SELECT id, owner_id, name, description, is_active, created_at, updated_at
	           FROM venues
	           WHERE is_active = 1
	           ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Venue
	for rows.Next() {
		var v Venue
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateByIDAndOwner updates name, description and is_active.
// Returns ErrVenueNotFound when the venue is absent or not owned.
func (r *VenueRepo) UpdateByIDAndOwner(ctx context.Context, id, ownerID uint64, name string, description *string, isActive bool) error {
	const q = `UPDATE venues
	           SET name = ?, description = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, name, description, isActive, id, ownerID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// DeleteByIDAndOwner deletes a venue owned by ownerID. The venue's stored
// layout goes with it via the foreign key.
func (r *VenueRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	const q = `DELETE FROM venues WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueNotFound
	}
	return nil
}
