package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/staff-registry/pkg/interfaces"
	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/types"
)

// Service orchestrates the reference collections. Contracts are unique by
// their (type, period) pair regardless of active status, areas and
// specialties by name, and an area holds at most one specialty.
type Service struct {
	roles       interfaces.RoleRepository
	contracts   interfaces.ContractRepository
	areas       interfaces.AreaRepository
	specialties interfaces.SpecialtyRepository
	logger      *logger.Logger
}

// NewService creates a catalog service
func NewService(
	roles interfaces.RoleRepository,
	contracts interfaces.ContractRepository,
	areas interfaces.AreaRepository,
	specialties interfaces.SpecialtyRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		roles:       roles,
		contracts:   contracts,
		areas:       areas,
		specialties: specialties,
		logger:      log,
	}
}

// CreateRole creates a role with a unique name
func (s *Service) CreateRole(ctx context.Context, req *types.RoleCreate) (*types.Role, error) {
	if req.Name == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput,
			"The field name is required")
	}

	if _, err := s.roles.GetByName(ctx, req.Name); err == nil {
		return nil, types.NewConflictError(types.ErrCodeConflict,
			"The role already exists. Please enter a different name")
	} else if !types.IsErrorType(err, types.ErrorTypeNotFound) {
		return nil, err
	}

	now := time.Now()
	role := &types.Role{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// GetRole retrieves a role by id
func (s *Service) GetRole(ctx context.Context, id string) (*types.Role, error) {
	return s.roles.GetByID(ctx, id)
}

// ListRoles retrieves all roles
func (s *Service) ListRoles(ctx context.Context) ([]*types.Role, error) {
	return s.roles.List(ctx)
}

// DeleteRole removes a role
func (s *Service) DeleteRole(ctx context.Context, id string) error {
	return s.roles.Delete(ctx, id)
}

// EnsureRoles seeds the well-known roles missing from the store. Runs once
// at startup and is idempotent.
func (s *Service) EnsureRoles(ctx context.Context) error {
	for _, name := range []string{types.RoleAdmin, types.RoleDoctor, types.RoleNurse} {
		_, err := s.roles.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !types.IsErrorType(err, types.ErrorTypeNotFound) {
			return err
		}

		now := time.Now()
		role := &types.Role{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.roles.Create(ctx, role); err != nil {
			return err
		}
	}

	total, err := s.roles.Count(ctx)
	if err != nil {
		return err
	}
	s.logger.WithField("roles", total).Info("Well-known roles seeded")
	return nil
}

// CreateContract creates a contract. The (type, period) pair must be unique
// across the whole collection, inactive contracts included.
func (s *Service) CreateContract(ctx context.Context, req *types.ContractCreate) (*types.Contract, error) {
	if req.ContractType == "" || req.ContractPeriod == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput,
			"The fields contractType and contractPeriod are required")
	}

	if err := s.checkContractPair(ctx, req.ContractType, req.ContractPeriod, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	contract := &types.Contract{
		ID:             uuid.New().String(),
		ContractType:   req.ContractType,
		ContractPeriod: req.ContractPeriod,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}

	return contract, nil
}

// GetContract retrieves a contract by id
func (s *Service) GetContract(ctx context.Context, id string) (*types.Contract, error) {
	return s.contracts.GetByID(ctx, id)
}

// ListContracts retrieves all contracts
func (s *Service) ListContracts(ctx context.Context) ([]*types.Contract, error) {
	return s.contracts.List(ctx)
}

// UpdateContract merges a partial payload over the stored contract.
// Deactivation is not retroactive: staff already holding the contract keep
// it; only future assignments are rejected.
func (s *Service) UpdateContract(ctx context.Context, id string, upd *types.ContractUpdate) (*types.Contract, error) {
	if upd.Empty() {
		return nil, types.NewValidationError(types.ErrCodeEmptyPayload, "The payload is empty")
	}

	existing, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contractType := existing.ContractType
	contractPeriod := existing.ContractPeriod
	if upd.ContractType != nil {
		contractType = *upd.ContractType
	}
	if upd.ContractPeriod != nil {
		contractPeriod = *upd.ContractPeriod
	}

	if upd.ContractType != nil || upd.ContractPeriod != nil {
		if err := s.checkContractPair(ctx, contractType, contractPeriod, id); err != nil {
			return nil, err
		}
	}

	existing.ContractType = contractType
	existing.ContractPeriod = contractPeriod
	if upd.Active != nil {
		existing.Active = *upd.Active
	}
	existing.UpdatedAt = time.Now()

	if err := s.contracts.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteContract removes a contract
func (s *Service) DeleteContract(ctx context.Context, id string) error {
	return s.contracts.Delete(ctx, id)
}

func (s *Service) checkContractPair(ctx context.Context, contractType, contractPeriod, selfID string) error {
	existing, err := s.contracts.GetByTypeAndPeriod(ctx, contractType, contractPeriod)
	if err != nil {
		if types.IsErrorType(err, types.ErrorTypeNotFound) {
			return nil
		}
		return err
	}

	if existing.ID == selfID {
		return nil
	}

	return types.NewConflictError(types.ErrCodeConflict,
		"The contract already exists. Please enter a different type or period")
}

// CreateArea creates an area with a unique name
func (s *Service) CreateArea(ctx context.Context, req *types.AreaCreate) (*types.Area, error) {
	if req.Name == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput,
			"The field name is required")
	}

	if err := s.checkAreaName(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	area := &types.Area{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.areas.Create(ctx, area); err != nil {
		return nil, err
	}

	return area, nil
}

// GetArea retrieves an area by id
func (s *Service) GetArea(ctx context.Context, id string) (*types.Area, error) {
	return s.areas.GetByID(ctx, id)
}

// ListAreas retrieves all areas
func (s *Service) ListAreas(ctx context.Context) ([]*types.Area, error) {
	return s.areas.List(ctx)
}

// UpdateArea merges a partial payload over the stored area
func (s *Service) UpdateArea(ctx context.Context, id string, upd *types.AreaUpdate) (*types.Area, error) {
	if upd.Empty() {
		return nil, types.NewValidationError(types.ErrCodeEmptyPayload, "The payload is empty")
	}

	existing, err := s.areas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if err := s.checkAreaName(ctx, *upd.Name, id); err != nil {
			return nil, err
		}
		existing.Name = *upd.Name
	}
	if upd.Active != nil {
		existing.Active = *upd.Active
	}
	existing.UpdatedAt = time.Now()

	if err := s.areas.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteArea removes an area
func (s *Service) DeleteArea(ctx context.Context, id string) error {
	return s.areas.Delete(ctx, id)
}

func (s *Service) checkAreaName(ctx context.Context, name, selfID string) error {
	existing, err := s.areas.GetByName(ctx, name)
	if err != nil {
		if types.IsErrorType(err, types.ErrorTypeNotFound) {
			return nil
		}
		return err
	}

	if existing.ID == selfID {
		return nil
	}

	return types.NewConflictError(types.ErrCodeConflict,
		"The area already exists. Please enter a different name")
}

// CreateSpecialty creates a specialty bound to an active, unoccupied area
func (s *Service) CreateSpecialty(ctx context.Context, req *types.SpecialtyCreate) (*types.Specialty, error) {
	if req.Name == "" || req.AreaID == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput,
			"The fields name and area are required")
	}

	if err := s.checkSpecialtyName(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	if err := s.checkArea(ctx, req.AreaID, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	specialty := &types.Specialty{
		ID:        uuid.New().String(),
		Name:      req.Name,
		AreaID:    req.AreaID,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.specialties.Create(ctx, specialty); err != nil {
		return nil, err
	}

	return specialty, nil
}

// GetSpecialty retrieves a specialty by id
func (s *Service) GetSpecialty(ctx context.Context, id string) (*types.Specialty, error) {
	return s.specialties.GetByID(ctx, id)
}

// ListSpecialties retrieves all specialties with their areas resolved
func (s *Service) ListSpecialties(ctx context.Context) ([]*types.Specialty, error) {
	return s.specialties.List(ctx)
}

// UpdateSpecialty merges a partial payload over the stored specialty. As
// with contracts, deactivation only affects future staff assignments.
func (s *Service) UpdateSpecialty(ctx context.Context, id string, upd *types.SpecialtyUpdate) (*types.Specialty, error) {
	if upd.Empty() {
		return nil, types.NewValidationError(types.ErrCodeEmptyPayload, "The payload is empty")
	}

	existing, err := s.specialties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if err := s.checkSpecialtyName(ctx, *upd.Name, id); err != nil {
			return nil, err
		}
		existing.Name = *upd.Name
	}
	if upd.AreaID != nil {
		if err := s.checkArea(ctx, *upd.AreaID, id); err != nil {
			return nil, err
		}
		existing.AreaID = *upd.AreaID
	}
	if upd.Active != nil {
		existing.Active = *upd.Active
	}
	existing.UpdatedAt = time.Now()

	if err := s.specialties.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteSpecialty removes a specialty
func (s *Service) DeleteSpecialty(ctx context.Context, id string) error {
	return s.specialties.Delete(ctx, id)
}

func (s *Service) checkSpecialtyName(ctx context.Context, name, selfID string) error {
	existing, err := s.specialties.GetByName(ctx, name)
	if err != nil {
		if types.IsErrorType(err, types.ErrorTypeNotFound) {
			return nil
		}
		return err
	}

	if existing.ID == selfID {
		return nil
	}

	return types.NewConflictError(types.ErrCodeConflict,
		"The specialty already exists. Please enter a different name")
}

// checkArea verifies the target area exists, is active and holds no other
// specialty
func (s *Service) checkArea(ctx context.Context, areaID, selfID string) error {
	area, err := s.areas.GetByID(ctx, areaID)
	if err != nil {
		if types.IsErrorType(err, types.ErrorTypeNotFound) {
			return types.NewNotFoundError(types.ErrCodeNotFound,
				"The area does not exist in the database")
		}
		return err
	}

	if !area.Active {
		return types.NewInvalidStateError(types.ErrCodeInactive,
			"The area is not active")
	}

	occupant, err := s.specialties.GetByArea(ctx, areaID)
	if err != nil {
		if types.IsErrorType(err, types.ErrorTypeNotFound) {
			return nil
		}
		return err
	}

	if occupant.ID == selfID {
		return nil
	}

	return types.NewInvalidStateError(types.ErrCodeConflict,
		"The area already has a specialty assigned")
}
