package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func venueRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "is_active", "created_at", "updated_at"}).
		AddRow(3, 42, "Main Hall", nil, true, now, now)
}

func TestVenueRepoCreateSetsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO venues").
		WithArgs(uint64(42), "Main Hall", nil, true).
		WillReturnResult(sqlmock.NewResult(3, 1))

	v := &Venue{OwnerID: 42, Name: "Main Hall", IsActive: true}
	require.NoError(t, NewVenueRepo(db).Create(context.Background(), v))
	assert.Equal(t, uint64(3), v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoCreateDuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO venues").
		WillReturnError(errors.New("Error 1062: Duplicate entry"))

	v := &Venue{OwnerID: 42, Name: "Main Hall", IsActive: true}
	err = NewVenueRepo(db).Create(context.Background(), v)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestVenueRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, name, description, is_active").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = NewVenueRepo(db).GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueRepoGetByIDAndOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, name, description, is_active").
		WithArgs(uint64(3), uint64(42)).
		WillReturnRows(venueRows(time.Now().UTC()))

	v, err := NewVenueRepo(db).GetByIDAndOwner(context.Background(), 3, 42)
	require.NoError(t, err)
	assert.Equal(t, "Main Hall", v.Name)
	assert.True(t, v.IsActive)
}

func TestVenueRepoUpdateNotOwned(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE venues").
		WithArgs("New Name", nil, true, uint64(3), uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewVenueRepo(db).UpdateByIDAndOwner(context.Background(), 3, 99, "New Name", nil, true)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
