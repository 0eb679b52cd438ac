package personnel

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/clinicore/staff-registry/pkg/types"
)

// MockIdentityLookup is a mock implementation of IdentityLookup
type MockIdentityLookup struct {
	mock.Mock
}

func (m *MockIdentityLookup) Owner(ctx context.Context, field, value string) (*types.IdentityOwner, error) {
	args := m.Called(field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.IdentityOwner), args.Error(1)
}

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

// MockStaffRepository is a mock implementation of StaffRepository
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, kind types.StaffKind, staff *types.ClinicalStaff) error {
	args := m.Called(kind, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) GetByID(ctx context.Context, kind types.StaffKind, id string) (*types.ClinicalStaff, error) {
	args := m.Called(kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ClinicalStaff), args.Error(1)
}

func (m *MockStaffRepository) GetByEmail(ctx context.Context, kind types.StaffKind, email string) (*types.ClinicalStaff, error) {
	args := m.Called(kind, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ClinicalStaff), args.Error(1)
}

func (m *MockStaffRepository) GetWithRefs(ctx context.Context, kind types.StaffKind, id string) (*types.ClinicalStaff, error) {
	args := m.Called(kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ClinicalStaff), args.Error(1)
}

func (m *MockStaffRepository) List(ctx context.Context, kind types.StaffKind) ([]*types.ClinicalStaff, error) {
	args := m.Called(kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.ClinicalStaff), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, kind types.StaffKind, staff *types.ClinicalStaff) error {
	args := m.Called(kind, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) Delete(ctx context.Context, kind types.StaffKind, id string) error {
	args := m.Called(kind, id)
	return args.Error(0)
}

// MockAdminRepository is a mock implementation of AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *types.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id string) (*types.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*types.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetWithRefs(ctx context.Context, id string) (*types.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Admin), args.Error(1)
}

// MockPatientRepository is a mock implementation of PatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *types.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id string) (*types.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Patient), args.Error(1)
}

func (m *MockPatientRepository) List(ctx context.Context) ([]*types.Patient, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *types.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(subjectID string) (*types.SignedToken, error) {
	args := m.Called(subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SignedToken), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}
