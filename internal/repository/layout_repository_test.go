package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutRepoGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	doc := []byte(`{"seats":[],"sections":[]}`)
	mock.ExpectQuery("SELECT venue_id, document, seat_count, updated_at").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"venue_id", "document", "seat_count", "updated_at"}).
			AddRow(7, doc, 0, now))

	rec, err := NewLayoutRepo(db).Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), rec.VenueID)
	assert.Equal(t, doc, rec.Document)
	assert.Equal(t, 0, rec.SeatCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT venue_id, document, seat_count, updated_at").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"venue_id", "document", "seat_count", "updated_at"}))

	_, err = NewLayoutRepo(db).Get(context.Background(), 7)
	assert.ErrorIs(t, err, ErrLayoutNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	doc := []byte(`{"seats":[]}`)
	mock.ExpectExec("INSERT INTO venue_layouts").
		WithArgs(uint64(7), doc, 80).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewLayoutRepo(db).Upsert(context.Background(), 7, doc, 80)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepoDeleteAbsentIsFine(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM venue_layouts").
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewLayoutRepo(db).Delete(context.Background(), 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
