package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clinicore/staff-registry/pkg/database"
	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/types"
)

// RoleRepository implements role persistence
type RoleRepository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *database.DB, log *logger.Logger) *RoleRepository {
	return &RoleRepository{
		db:     db,
		logger: log,
	}
}

// Create inserts a new role
func (r *RoleRepository) Create(ctx context.Context, role *types.Role) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO roles (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		role.ID,
		role.Name,
		role.CreatedAt,
		role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}

	r.logger.WithField("name", role.Name).Info("Role created")
	return nil
}

// GetByID retrieves a role by id
func (r *RoleRepository) GetByID(ctx context.Context, id string) (*types.Role, error) {
	return r.getBy(ctx, "id", id)
}

// GetByName retrieves a role by name
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*types.Role, error) {
	return r.getBy(ctx, "name", name)
}

func (r *RoleRepository) getBy(ctx context.Context, column, value string) (*types.Role, error) {
	var role types.Role

	query := fmt.Sprintf(`SELECT id, name, created_at, updated_at FROM roles WHERE %s = $1`, column)

	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&role.ID,
		&role.Name,
		&role.CreatedAt,
		&role.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				"The role does not exist in the database")
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &role, nil
}

// List retrieves all roles
func (r *RoleRepository) List(ctx context.Context) ([]*types.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM roles ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.Role
	for rows.Next() {
		var role types.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, &role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}

	return roles, nil
}

// Delete removes a role. No cascade: personnel referencing the deleted role
// keep their dangling role_id.
func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			"The role does not exist in the database")
	}

	r.logger.WithField("id", id).Info("Role deleted")
	return nil
}

// Count returns the number of roles
func (r *RoleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count roles: %w", err)
	}
	return count, nil
}

// ContractRepository implements contract persistence
type ContractRepository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *database.DB, log *logger.Logger) *ContractRepository {
	return &ContractRepository{
		db:     db,
		logger: log,
	}
}

const contractColumns = `id, contract_type, contract_period, active, created_at, updated_at`

func scanContract(row interface{ Scan(...interface{}) error }) (*types.Contract, error) {
	var contract types.Contract

	err := row.Scan(
		&contract.ID,
		&contract.ContractType,
		&contract.ContractPeriod,
		&contract.Active,
		&contract.CreatedAt,
		&contract.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &contract, nil
}

// Create inserts a new contract
func (r *ContractRepository) Create(ctx context.Context, contract *types.Contract) error {
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO contracts (%s)
		VALUES ($1, $2, $3, $4, $5, $6)`, contractColumns),
		contract.ID,
		contract.ContractType,
		contract.ContractPeriod,
		contract.Active,
		contract.CreatedAt,
		contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}

	r.logger.WithField("id", contract.ID).Info("Contract created")
	return nil
}

// GetByID retrieves a contract by id
func (r *ContractRepository) GetByID(ctx context.Context, id string) (*types.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE id = $1`, contractColumns)

	contract, err := scanContract(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				"The contract does not exist in the database")
		}
		return nil, fmt.Errorf("failed to get contract by id: %w", err)
	}

	return contract, nil
}

// GetByTypeAndPeriod retrieves a contract by its (type, period) pair,
// regardless of active status
func (r *ContractRepository) GetByTypeAndPeriod(ctx context.Context, contractType, contractPeriod string) (*types.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE contract_type = $1 AND contract_period = $2`, contractColumns)

	contract, err := scanContract(r.db.QueryRowContext(ctx, query, contractType, contractPeriod))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				"The contract does not exist in the database")
		}
		return nil, fmt.Errorf("failed to get contract by type and period: %w", err)
	}

	return contract, nil
}

// List retrieves all contracts
func (r *ContractRepository) List(ctx context.Context) ([]*types.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts ORDER BY created_at DESC`, contractColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*types.Contract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		contracts = append(contracts, contract)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contract rows: %w", err)
	}

	return contracts, nil
}

// Update persists a merged contract record
func (r *ContractRepository) Update(ctx context.Context, contract *types.Contract) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE contracts SET contract_type = $2, contract_period = $3,
			active = $4, updated_at = $5
		WHERE id = $1`,
		contract.ID,
		contract.ContractType,
		contract.ContractPeriod,
		contract.Active,
		contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			"The contract does not exist in the database")
	}

	r.logger.WithField("id", contract.ID).Info("Contract updated")
	return nil
}

// Delete removes a contract. No cascade: staff referencing the deleted
// contract keep their dangling contract_id.
func (r *ContractRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			"The contract does not exist in the database")
	}

	r.logger.WithField("id", id).Info("Contract deleted")
	return nil
}

// AreaRepository implements area persistence
type AreaRepository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewAreaRepository creates a new area repository
func NewAreaRepository(db *database.DB, log *logger.Logger) *AreaRepository {
	return &AreaRepository{
		db:     db,
		logger: log,
	}
}

const areaColumns = `id, name, active, created_at, updated_at`

func scanArea(row interface{ Scan(...interface{}) error }) (*types.Area, error) {
	var area types.Area

	err := row.Scan(
		&area.ID,
		&area.Name,
		&area.Active,
		&area.CreatedAt,
		&area.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &area, nil
}

// Create inserts a new area
func (r *AreaRepository) Create(ctx context.Context, area *types.Area) error {
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO areas (%s)
		VALUES ($1, $2, $3, $4, $5)`, areaColumns),
		area.ID,
		area.Name,
		area.Active,
		area.CreatedAt,
		area.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create area: %w", err)
	}

	r.logger.WithField("name", area.Name).Info("Area created")
	return nil
}

// GetByID retrieves an area by id
func (r *AreaRepository) GetByID(ctx context.Context, id string) (*types.Area, error) {
	return r.getBy(ctx, "id", id)
}

// GetByName retrieves an area by name
func (r *AreaRepository) GetByName(ctx context.Context, name string) (*types.Area, error) {
	return r.getBy(ctx, "name", name)
}

func (r *AreaRepository) getBy(ctx context.Context, column, value string) (*types.Area, error) {
	query := fmt.Sprintf(`SELECT %s FROM areas WHERE %s = $1`, areaColumns, column)

	area, err := scanArea(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				"The area does not exist in the database")
		}
		return nil, fmt.Errorf("failed to get area: %w", err)
	}

	return area, nil
}

// List retrieves all areas
func (r *AreaRepository) List(ctx context.Context) ([]*types.Area, error) {
	query := fmt.Sprintf(`SELECT %s FROM areas ORDER BY created_at DESC`, areaColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	defer rows.Close()

	var areas []*types.Area
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating area rows: %w", err)
	}

	return areas, nil
}

// Update persists a merged area record
func (r *AreaRepository) Update(ctx context.Context, area *types.Area) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE areas SET name = $2, active = $3, updated_at = $4
		WHERE id = $1`,
		area.ID,
		area.Name,
		area.Active,
		area.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update area: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			"The area does not exist in the database")
	}

	r.logger.WithField("id", area.ID).Info("Area updated")
	return nil
}

// Delete removes an area. No cascade: specialties referencing the deleted
// area keep their dangling area_id.
func (r *AreaRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			"The area does not exist in the database")
	}

	r.logger.WithField("id", id).Info("Area deleted")
	return nil
}

// SpecialtyRepository implements specialty persistence
type SpecialtyRepository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewSpecialtyRepository creates a new specialty repository
func NewSpecialtyRepository(db *database.DB, log *logger.Logger) *SpecialtyRepository {
	return &SpecialtyRepository{
		db:     db,
		logger: log,
	}
}

const specialtyColumns = `id, name, area_id, active, created_at, updated_at`

func scanSpecialty(row interface{ Scan(...interface{}) error }) (*types.Specialty, error) {
	var specialty types.Specialty

	err := row.Scan(
		&specialty.ID,
		&specialty.Name,
		&specialty.AreaID,
		&specialty.Active,
		&specialty.CreatedAt,
		&specialty.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &specialty, nil
}

// Create inserts a new specialty
func (r *SpecialtyRepository) Create(ctx context.Context, specialty *types.Specialty) error {
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO specialties (%s)
		VALUES ($1, $2, $3, $4, $5, $6)`, specialtyColumns),
		specialty.ID,
		specialty.Name,
		specialty.AreaID,
		specialty.Active,
		specialty.CreatedAt,
		specialty.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create specialty: %w", err)
	}

	r.logger.WithField("name", specialty.Name).Info("Specialty created")
	return nil
}

// GetByID retrieves a specialty by id
func (r *SpecialtyRepository) GetByID(ctx context.Context, id string) (*types.Specialty, error) {
	return r.getBy(ctx, "id", id)
}

// GetByName retrieves a specialty by name
func (r *SpecialtyRepository) GetByName(ctx context.Context, name string) (*types.Specialty, error) {
	return r.getBy(ctx, "name", name)
}

// GetByArea retrieves the specialty assigned to an area, if any
func (r *SpecialtyRepository) GetByArea(ctx context.Context, areaID string) (*types.Specialty, error) {
	return r.getBy(ctx, "area_id", areaID)
}

func (r *SpecialtyRepository) getBy(ctx context.Context, column, value string) (*types.Specialty, error) {
	query := fmt.Sprintf(`SELECT %s FROM specialties WHERE %s = $1`, specialtyColumns, column)

	specialty, err := scanSpecialty(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				"The specialty does not exist in the database")
		}
		return nil, fmt.Errorf("failed to get specialty: %w", err)
	}

	return specialty, nil
}

// List retrieves all specialties with their areas resolved. A dangling area
// reference is left nil rather than failing the read.
func (r *SpecialtyRepository) List(ctx context.Context) ([]*types.Specialty, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.area_id, s.active, s.created_at, s.updated_at,
			a.id, a.name, a.active, a.created_at, a.updated_at
		FROM specialties s
		LEFT JOIN areas a ON a.id = s.area_id
		ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	defer rows.Close()

	var specialties []*types.Specialty
	for rows.Next() {
		var specialty types.Specialty
		var areaID, areaName sql.NullString
		var areaActive sql.NullBool
		var areaCreated, areaUpdated sql.NullTime

		err := rows.Scan(
			&specialty.ID,
			&specialty.Name,
			&specialty.AreaID,
			&specialty.Active,
			&specialty.CreatedAt,
			&specialty.UpdatedAt,
			&areaID,
			&areaName,
			&areaActive,
			&areaCreated,
			&areaUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan specialty row: %w", err)
		}

		if areaID.Valid {
			specialty.Area = &types.Area{
				ID:        areaID.String,
				Name:      areaName.String,
				Active:    areaActive.Bool,
				CreatedAt: areaCreated.Time,
				UpdatedAt: areaUpdated.Time,
			}
		}

		specialties = append(specialties, &specialty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating specialty rows: %w", err)
	}

	return specialties, nil
}

// Update persists a merged specialty record
func (r *SpecialtyRepository) Update(ctx context.Context, specialty *types.Specialty) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE specialties SET name = $2, area_id = $3, active = $4, updated_at = $5
		WHERE id = $1`,
		specialty.ID,
		specialty.Name,
		specialty.AreaID,
		specialty.Active,
		specialty.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update specialty: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			"The specialty does not exist in the database")
	}

	r.logger.WithField("id", specialty.ID).Info("Specialty updated")
	return nil
}

// Delete removes a specialty. No cascade: staff referencing the deleted
// specialty keep the dangling id in their specialty list.
func (r *SpecialtyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM specialties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete specialty: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			"The specialty does not exist in the database")
	}

	r.logger.WithField("id", id).Info("Specialty deleted")
	return nil
}
