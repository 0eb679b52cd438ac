package interfaces

import (
	"context"

	"github.com/clinicore/staff-registry/pkg/types"
)

// RoleRepository persists roles
type RoleRepository interface {
	Create(ctx context.Context, role *types.Role) error
	GetByID(ctx context.Context, id string) (*types.Role, error)
	GetByName(ctx context.Context, name string) (*types.Role, error)
	List(ctx context.Context) ([]*types.Role, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ContractRepository persists contracts
type ContractRepository interface {
	Create(ctx context.Context, contract *types.Contract) error
	GetByID(ctx context.Context, id string) (*types.Contract, error)
	GetByTypeAndPeriod(ctx context.Context, contractType, contractPeriod string) (*types.Contract, error)
	List(ctx context.Context) ([]*types.Contract, error)
	Update(ctx context.Context, contract *types.Contract) error
	Delete(ctx context.Context, id string) error
}

// AreaRepository persists areas
type AreaRepository interface {
	Create(ctx context.Context, area *types.Area) error
	GetByID(ctx context.Context, id string) (*types.Area, error)
	GetByName(ctx context.Context, name string) (*types.Area, error)
	List(ctx context.Context) ([]*types.Area, error)
	Update(ctx context.Context, area *types.Area) error
	Delete(ctx context.Context, id string) error
}

// SpecialtyRepository persists specialties
type SpecialtyRepository interface {
	Create(ctx context.Context, specialty *types.Specialty) error
	GetByID(ctx context.Context, id string) (*types.Specialty, error)
	GetByName(ctx context.Context, name string) (*types.Specialty, error)
	GetByArea(ctx context.Context, areaID string) (*types.Specialty, error)
	List(ctx context.Context) ([]*types.Specialty, error)
	Update(ctx context.Context, specialty *types.Specialty) error
	Delete(ctx context.Context, id string) error
}

// CatalogService orchestrates validation and persistence for the reference
// collections (roles, contracts, areas, specialties).
type CatalogService interface {
	CreateRole(ctx context.Context, req *types.RoleCreate) (*types.Role, error)
	GetRole(ctx context.Context, id string) (*types.Role, error)
	ListRoles(ctx context.Context) ([]*types.Role, error)
	DeleteRole(ctx context.Context, id string) error
	EnsureRoles(ctx context.Context) error

	CreateContract(ctx context.Context, req *types.ContractCreate) (*types.Contract, error)
	GetContract(ctx context.Context, id string) (*types.Contract, error)
	ListContracts(ctx context.Context) ([]*types.Contract, error)
	UpdateContract(ctx context.Context, id string, upd *types.ContractUpdate) (*types.Contract, error)
	DeleteContract(ctx context.Context, id string) error

	CreateArea(ctx context.Context, req *types.AreaCreate) (*types.Area, error)
	GetArea(ctx context.Context, id string) (*types.Area, error)
	ListAreas(ctx context.Context) ([]*types.Area, error)
	UpdateArea(ctx context.Context, id string, upd *types.AreaUpdate) (*types.Area, error)
	DeleteArea(ctx context.Context, id string) error

	CreateSpecialty(ctx context.Context, req *types.SpecialtyCreate) (*types.Specialty, error)
	GetSpecialty(ctx context.Context, id string) (*types.Specialty, error)
	ListSpecialties(ctx context.Context) ([]*types.Specialty, error)
	UpdateSpecialty(ctx context.Context, id string, upd *types.SpecialtyUpdate) (*types.Specialty, error)
	DeleteSpecialty(ctx context.Context, id string) error
}
