package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/clinicore/staff-registry/pkg/types"
)

// MockRoleRepository is a mock implementation of RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *types.Role) error {
	args := m.Called(role)
	return args.Error(0)
}

func (m *MockRoleRepository) GetByID(ctx context.Context, id string) (*types.Role, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Role), args.Error(1)
}

func (m *MockRoleRepository) GetByName(ctx context.Context, name string) (*types.Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]*types.Role, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Role), args.Error(1)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRoleRepository) Count(ctx context.Context) (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockContractRepository is a mock implementation of ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Create(ctx context.Context, contract *types.Contract) error {
	args := m.Called(contract)
	return args.Error(0)
}

func (m *MockContractRepository) GetByID(ctx context.Context, id string) (*types.Contract, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Contract), args.Error(1)
}

func (m *MockContractRepository) GetByTypeAndPeriod(ctx context.Context, contractType, contractPeriod string) (*types.Contract, error) {
	args := m.Called(contractType, contractPeriod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Contract), args.Error(1)
}

func (m *MockContractRepository) List(ctx context.Context) ([]*types.Contract, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Contract), args.Error(1)
}

func (m *MockContractRepository) Update(ctx context.Context, contract *types.Contract) error {
	args := m.Called(contract)
	return args.Error(0)
}

func (m *MockContractRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAreaRepository is a mock implementation of AreaRepository
type MockAreaRepository struct {
	mock.Mock
}

func (m *MockAreaRepository) Create(ctx context.Context, area *types.Area) error {
	args := m.Called(area)
	return args.Error(0)
}

func (m *MockAreaRepository) GetByID(ctx context.Context, id string) (*types.Area, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Area), args.Error(1)
}

func (m *MockAreaRepository) GetByName(ctx context.Context, name string) (*types.Area, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Area), args.Error(1)
}

func (m *MockAreaRepository) List(ctx context.Context) ([]*types.Area, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Area), args.Error(1)
}

func (m *MockAreaRepository) Update(ctx context.Context, area *types.Area) error {
	args := m.Called(area)
	return args.Error(0)
}

func (m *MockAreaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockSpecialtyRepository is a mock implementation of SpecialtyRepository
type MockSpecialtyRepository struct {
	mock.Mock
}

func (m *MockSpecialtyRepository) Create(ctx context.Context, specialty *types.Specialty) error {
	args := m.Called(specialty)
	return args.Error(0)
}

func (m *MockSpecialtyRepository) GetByID(ctx context.Context, id string) (*types.Specialty, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) GetByName(ctx context.Context, name string) (*types.Specialty, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) GetByArea(ctx context.Context, areaID string) (*types.Specialty, error) {
	args := m.Called(areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) List(ctx context.Context) ([]*types.Specialty, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) Update(ctx context.Context, specialty *types.Specialty) error {
	args := m.Called(specialty)
	return args.Error(0)
}

func (m *MockSpecialtyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}
