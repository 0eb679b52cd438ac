package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/types"
)

const (
	testAreaID      = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	testContractID  = "2b6d8f0a-9c3e-47d1-bb2f-6e9a4c7d2e22"
	testSpecialtyID = "7f1a9c1e-4a9d-4d2b-8a59-3f6a1f8f1b11"
)

func setupCatalogService() (*Service, *MockRoleRepository, *MockContractRepository, *MockAreaRepository, *MockSpecialtyRepository) {
	roles := &MockRoleRepository{}
	contracts := &MockContractRepository{}
	areas := &MockAreaRepository{}
	specialties := &MockSpecialtyRepository{}

	service := NewService(roles, contracts, areas, specialties, logger.New("error"))
	return service, roles, contracts, areas, specialties
}

func notFound() error {
	return types.NewNotFoundError(types.ErrCodeNotFound, "missing")
}

func TestCreateContract_PairMustBeUnique(t *testing.T) {
	service, _, contracts, _, _ := setupCatalogService()

	contracts.On("GetByTypeAndPeriod", "permanent", "full-time").
		Return(&types.Contract{ID: testContractID, Active: true}, nil)

	_, err := service.CreateContract(context.Background(), &types.ContractCreate{
		ContractType:   "permanent",
		ContractPeriod: "full-time",
	})

	assert.True(t, types.IsErrorType(err, types.ErrorTypeConflict))
	contracts.AssertNotCalled(t, "Create")
}

func TestCreateContract_InactiveDuplicateStillConflicts(t *testing.T) {
	service, _, contracts, _, _ := setupCatalogService()

	contracts.On("GetByTypeAndPeriod", "permanent", "full-time").
		Return(&types.Contract{ID: testContractID, Active: false}, nil)

	_, err := service.CreateContract(context.Background(), &types.ContractCreate{
		ContractType:   "permanent",
		ContractPeriod: "full-time",
	})

	assert.True(t, types.IsErrorType(err, types.ErrorTypeConflict))
}

func TestCreateContract_Success(t *testing.T) {
	service, _, contracts, _, _ := setupCatalogService()

	contracts.On("GetByTypeAndPeriod", "temporary", "part-time").Return(nil, notFound())
	contracts.On("Create", mock.AnythingOfType("*types.Contract")).Return(nil)

	contract, err := service.CreateContract(context.Background(), &types.ContractCreate{
		ContractType:   "temporary",
		ContractPeriod: "part-time",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, contract.ID)
	assert.True(t, contract.Active)
}

func TestUpdateContract_EmptyPayload(t *testing.T) {
	service, _, contracts, _, _ := setupCatalogService()

	_, err := service.UpdateContract(context.Background(), testContractID, &types.ContractUpdate{})

	assert.True(t, types.IsErrorType(err, types.ErrorTypeValidation))
	contracts.AssertNotCalled(t, "GetByID")
}

func TestUpdateContract_KeepsOwnPair(t *testing.T) {
	service, _, contracts, _, _ := setupCatalogService()

	existing := &types.Contract{
		ID:             testContractID,
		ContractType:   "permanent",
		ContractPeriod: "full-time",
		Active:         true,
	}
	contracts.On("GetByID", testContractID).Return(existing, nil)
	contracts.On("GetByTypeAndPeriod", "permanent", "part-time").Return(existing, nil)
	contracts.On("Update", mock.AnythingOfType("*types.Contract")).Return(nil)

	period := "part-time"
	_, err := service.UpdateContract(context.Background(), testContractID,
		&types.ContractUpdate{ContractPeriod: &period})

	assert.NoError(t, err)
}

func TestUpdateContract_DeactivationIsNotRetroactive(t *testing.T) {
	service, _, contracts, _, _ := setupCatalogService()

	existing := &types.Contract{
		ID:             testContractID,
		ContractType:   "permanent",
		ContractPeriod: "full-time",
		Active:         true,
	}
	contracts.On("GetByID", testContractID).Return(existing, nil)

	var updated *types.Contract
	contracts.On("Update", mock.AnythingOfType("*types.Contract")).
		Run(func(args mock.Arguments) {
			updated = args.Get(0).(*types.Contract)
		}).Return(nil)

	active := false
	_, err := service.UpdateContract(context.Background(), testContractID,
		&types.ContractUpdate{Active: &active})

	// The write touches only the contract row; holders are untouched
	assert.NoError(t, err)
	assert.False(t, updated.Active)
	contracts.AssertNotCalled(t, "GetByTypeAndPeriod")
}

func TestCreateArea_NameMustBeUnique(t *testing.T) {
	service, _, _, areas, _ := setupCatalogService()

	areas.On("GetByName", "Cardiology").Return(&types.Area{ID: testAreaID}, nil)

	_, err := service.CreateArea(context.Background(), &types.AreaCreate{Name: "Cardiology"})

	assert.True(t, types.IsErrorType(err, types.ErrorTypeConflict))
	areas.AssertNotCalled(t, "Create")
}

func TestCreateSpecialty_AreaMustExist(t *testing.T) {
	service, _, _, areas, specialties := setupCatalogService()

	specialties.On("GetByName", "Pediatric Cardiology").Return(nil, notFound())
	areas.On("GetByID", testAreaID).Return(nil, notFound())

	_, err := service.CreateSpecialty(context.Background(), &types.SpecialtyCreate{
		Name:   "Pediatric Cardiology",
		AreaID: testAreaID,
	})

	assert.True(t, types.IsErrorType(err, types.ErrorTypeNotFound))
	specialties.AssertNotCalled(t, "Create")
}

func TestCreateSpecialty_AreaMustBeActive(t *testing.T) {
	service, _, _, areas, specialties := setupCatalogService()

	specialties.On("GetByName", "Pediatric Cardiology").Return(nil, notFound())
	areas.On("GetByID", testAreaID).Return(&types.Area{ID: testAreaID, Active: false}, nil)

	_, err := service.CreateSpecialty(context.Background(), &types.SpecialtyCreate{
		Name:   "Pediatric Cardiology",
		AreaID: testAreaID,
	})

	assert.True(t, types.IsErrorType(err, types.ErrorTypeInvalidState))
}

func TestCreateSpecialty_AreaHoldsAtMostOne(t *testing.T) {
	service, _, _, areas, specialties := setupCatalogService()

	specialties.On("GetByName", "Pediatric Cardiology").Return(nil, notFound())
	areas.On("GetByID", testAreaID).Return(&types.Area{ID: testAreaID, Active: true}, nil)
	specialties.On("GetByArea", testAreaID).
		Return(&types.Specialty{ID: testSpecialtyID, AreaID: testAreaID}, nil)

	_, err := service.CreateSpecialty(context.Background(), &types.SpecialtyCreate{
		Name:   "Pediatric Cardiology",
		AreaID: testAreaID,
	})

	assert.True(t, types.IsErrorType(err, types.ErrorTypeInvalidState))
	specialties.AssertNotCalled(t, "Create")
}

func TestCreateSpecialty_Success(t *testing.T) {
	service, _, _, areas, specialties := setupCatalogService()

	specialties.On("GetByName", "Pediatric Cardiology").Return(nil, notFound())
	areas.On("GetByID", testAreaID).Return(&types.Area{ID: testAreaID, Active: true}, nil)
	specialties.On("GetByArea", testAreaID).Return(nil, notFound())
	specialties.On("Create", mock.AnythingOfType("*types.Specialty")).Return(nil)

	specialty, err := service.CreateSpecialty(context.Background(), &types.SpecialtyCreate{
		Name:   "Pediatric Cardiology",
		AreaID: testAreaID,
	})

	assert.NoError(t, err)
	assert.Equal(t, testAreaID, specialty.AreaID)
	assert.True(t, specialty.Active)
}

func TestUpdateSpecialty_CanKeepOwnArea(t *testing.T) {
	service, _, _, areas, specialties := setupCatalogService()

	existing := &types.Specialty{ID: testSpecialtyID, Name: "Cardiology", AreaID: testAreaID, Active: true}
	specialties.On("GetByID", testSpecialtyID).Return(existing, nil)
	areas.On("GetByID", testAreaID).Return(&types.Area{ID: testAreaID, Active: true}, nil)
	specialties.On("GetByArea", testAreaID).Return(existing, nil)
	specialties.On("Update", mock.AnythingOfType("*types.Specialty")).Return(nil)

	areaID := testAreaID
	_, err := service.UpdateSpecialty(context.Background(), testSpecialtyID,
		&types.SpecialtyUpdate{AreaID: &areaID})

	assert.NoError(t, err)
}

func TestEnsureRoles_SeedsOnlyMissing(t *testing.T) {
	service, roles, _, _, _ := setupCatalogService()

	roles.On("GetByName", types.RoleAdmin).Return(&types.Role{Name: types.RoleAdmin}, nil)
	roles.On("GetByName", types.RoleDoctor).Return(nil, notFound())
	roles.On("GetByName", types.RoleNurse).Return(nil, notFound())

	var seeded []string
	roles.On("Create", mock.AnythingOfType("*types.Role")).
		Run(func(args mock.Arguments) {
			seeded = append(seeded, args.Get(0).(*types.Role).Name)
		}).Return(nil)
	roles.On("Count").Return(3, nil)

	err := service.EnsureRoles(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{types.RoleDoctor, types.RoleNurse}, seeded)
}

func TestCreateRole_NameMustBeUnique(t *testing.T) {
	service, roles, _, _, _ := setupCatalogService()

	roles.On("GetByName", "auditor").Return(&types.Role{Name: "auditor"}, nil)

	_, err := service.CreateRole(context.Background(), &types.RoleCreate{Name: "auditor"})

	assert.True(t, types.IsErrorType(err, types.ErrorTypeConflict))
	roles.AssertNotCalled(t, "Create")
}
