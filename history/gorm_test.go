package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"burnout/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { sqlDB.Close() }
}

func TestNewGormStore_NilDB(t *testing.T) {
	_, err := NewGormStore(nil)
	assert.Error(t, err)
}

func TestGormStore_Append(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `prediction_records`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	s, err := NewGormStore(db)
	require.NoError(t, err)

	rec := models.NewPredictionRecord("hello", 6, 7, 42.5, time.Now())
	require.NoError(t, s.Append(context.Background(), &rec))
	assert.Equal(t, uint(7), rec.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_AppendFailure(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `prediction_records`").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	s, _ := NewGormStore(db)
	rec := models.NewPredictionRecord("hello", 6, 7, 42.5, time.Now())
	assert.Error(t, s.Append(context.Background(), &rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_LoadAll(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	ts := time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM `prediction_records` ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "text_preview", "screen_hours", "sleep_hours", "burnout_score"}).
			AddRow(1, ts, "first", 3.0, 8.0, 22.5).
			AddRow(2, ts.Add(time.Hour), "second", 12.0, 4.0, 93.5))

	s, _ := NewGormStore(db)
	recs, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "first", recs[0].TextPreview)
	assert.Equal(t, 93.5, recs[1].BurnoutScore)
	assert.Equal(t, uint(2), recs[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_LoadAllEmpty(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `prediction_records`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	s, _ := NewGormStore(db)
	recs, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}
