package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/clinicore/staff-registry/pkg/database"
	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/types"
)

func setupMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return &database.DB{DB: sqlDB}, mock
}

func TestContractRepositoryGetByTypeAndPeriod(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewContractRepository(db, logger.New("error"))

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM contracts WHERE contract_type").
		WithArgs("permanent", "full-time").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "contract_type", "contract_period", "active", "created_at", "updated_at"}).
			AddRow(testContractID, "permanent", "full-time", true, now, now))

	contract, err := repo.GetByTypeAndPeriod(context.Background(), "permanent", "full-time")

	assert.NoError(t, err)
	assert.Equal(t, testContractID, contract.ID)
	assert.True(t, contract.Active)
}

func TestContractRepositoryGetByTypeAndPeriod_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewContractRepository(db, logger.New("error"))

	mock.ExpectQuery("SELECT (.+) FROM contracts WHERE contract_type").
		WithArgs("seasonal", "weekends").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByTypeAndPeriod(context.Background(), "seasonal", "weekends")

	assert.True(t, types.IsErrorType(err, types.ErrorTypeNotFound))
}

func TestRoleRepositoryDelete_MissingRecordNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRoleRepository(db, logger.New("error"))

	mock.ExpectExec("DELETE FROM roles").
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing-id")

	assert.True(t, types.IsErrorType(err, types.ErrorTypeNotFound))
}

func TestSpecialtyRepositoryGetByArea(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSpecialtyRepository(db, logger.New("error"))

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM specialties WHERE area_id").
		WithArgs(testAreaID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "area_id", "active", "created_at", "updated_at"}).
			AddRow(testSpecialtyID, "Cardiology", testAreaID, true, now, now))

	specialty, err := repo.GetByArea(context.Background(), testAreaID)

	assert.NoError(t, err)
	assert.Equal(t, testSpecialtyID, specialty.ID)
}

func TestSpecialtyRepositoryList_ResolvesAreas(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSpecialtyRepository(db, logger.New("error"))

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM specialties s").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "area_id", "active", "created_at", "updated_at",
			"a_id", "a_name", "a_active", "a_created_at", "a_updated_at"}).
			AddRow(testSpecialtyID, "Cardiology", testAreaID, true, now, now,
				testAreaID, "Cardiac Care", true, now, now).
			AddRow("dangling-specialty", "Orphaned", "gone-area", true, now, now,
				nil, nil, nil, nil, nil))

	specialties, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, specialties, 2)
	assert.NotNil(t, specialties[0].Area)
	assert.Equal(t, "Cardiac Care", specialties[0].Area.Name)
	assert.Nil(t, specialties[1].Area)
}

func TestAreaRepositoryGetByName_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAreaRepository(db, logger.New("error"))

	mock.ExpectQuery("SELECT (.+) FROM areas WHERE name").
		WithArgs("Ghost Ward").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByName(context.Background(), "Ghost Ward")

	assert.True(t, types.IsErrorType(err, types.ErrorTypeNotFound))
}
