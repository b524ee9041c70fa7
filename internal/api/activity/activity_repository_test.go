package activity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivek13121/TripWeave/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRepositoryListByDestination(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewRepository(mockPool, discardLogger(), nil)
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	id1, id2 := uuid.New(), uuid.New()

	rows := pgxmock.NewRows([]string{"id", "destination", "name", "category", "created_at"}).
		AddRow(id1, "Lisbon", "Belem Tower", "sightseeing", created).
		AddRow(id2, "Lisbon", "Time Out Market", "food", created)
	mockPool.ExpectQuery("SELECT id, destination, name, category, created_at").
		WithArgs("lisbon").
		WillReturnRows(rows)

	got, err := repo.ListByDestination(context.Background(), "  Lisbon ")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, id1, got[0].ID)
	assert.Equal(t, "Belem Tower", got[0].Name)
	assert.Equal(t, types.CategorySightseeing, got[0].Category)
	assert.Equal(t, types.CategoryFood, got[1].Category)
	assert.Equal(t, created, got[1].CreatedAt)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositoryListByDestinationQueryError(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewRepository(mockPool, discardLogger(), nil)
	mockPool.ExpectQuery("SELECT id, destination").
		WithArgs("porto").
		WillReturnError(errors.New("connection reset"))

	got, err := repo.ListByDestination(context.Background(), "Porto")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to query activities")
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositorySaveActivities(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewRepository(mockPool, discardLogger(), nil)
	now := time.Now().UTC()
	activities := []types.Activity{
		{Name: "Belem Tower", Category: types.CategorySightseeing},
		{Name: "Fado Night", Category: types.CategoryCultural},
	}

	mockPool.ExpectBegin()
	mockPool.ExpectQuery("INSERT INTO activities").
		WithArgs(pgxmock.AnyArg(), "Lisbon", "lisbon", "Belem Tower", "sightseeing").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
	// Already stored: ON CONFLICT DO NOTHING returns no row.
	mockPool.ExpectQuery("INSERT INTO activities").
		WithArgs(pgxmock.AnyArg(), "Lisbon", "lisbon", "Fado Night", "cultural").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}))
	mockPool.ExpectCommit()

	created, err := repo.SaveActivities(context.Background(), "Lisbon", activities)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Belem Tower", created[0].Name)
	assert.Equal(t, "Lisbon", created[0].Destination)
	assert.Equal(t, now, created[0].CreatedAt)
	assert.NotEqual(t, uuid.Nil, created[0].ID)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositorySaveActivitiesRollsBackOnError(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewRepository(mockPool, discardLogger(), nil)

	mockPool.ExpectBegin()
	mockPool.ExpectQuery("INSERT INTO activities").
		WithArgs(pgxmock.AnyArg(), "Lisbon", "lisbon", "Belem Tower", "sightseeing").
		WillReturnError(errors.New("check constraint violated"))
	mockPool.ExpectRollback()

	created, err := repo.SaveActivities(context.Background(), "Lisbon", []types.Activity{
		{Name: "Belem Tower", Category: types.CategorySightseeing},
	})
	require.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), `failed to insert activity "Belem Tower"`)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepositorySaveActivitiesBeginError(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewRepository(mockPool, discardLogger(), nil)
	mockPool.ExpectBegin().WillReturnError(errors.New("pool closed"))

	_, err = repo.SaveActivities(context.Background(), "Lisbon", []types.Activity{
		{Name: "Belem Tower", Category: types.CategorySightseeing},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start transaction")
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
