package personnel

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/clinicore/staff-registry/pkg/database"
	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/types"
)

// pqUniqueViolation is the PostgreSQL error code for unique_violation.
const pqUniqueViolation = "23505"

// staffTable maps a staff kind to its table. Doctors and nurses share one
// row shape in separate tables.
func staffTable(kind types.StaffKind) (string, error) {
	switch kind {
	case types.KindDoctor:
		return "doctors", nil
	case types.KindNurse:
		return "nurses", nil
	default:
		return "", fmt.Errorf("no staff table for kind %q", kind)
	}
}

// claimIdentity inserts identity index rows for a record's identifying
// fields inside the caller's transaction. The (field, value) primary key
// turns a duplicate email/phone into a unique violation at commit time,
// which is mapped to a conflict.
func claimIdentity(ctx context.Context, tx *sql.Tx, kind types.StaffKind, recordID string, fields map[string]string) error {
	for field, value := range fields {
		if value == "" {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO identity_index (field, value, kind, record_id) VALUES ($1, $2, $3, $4)`,
			field, value, string(kind), recordID,
		)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
				return types.NewConflictError(types.ErrCodeConflict,
					"Email or phone already exists. Please enter a different one")
			}
			return fmt.Errorf("failed to claim identity %s: %w", field, err)
		}
	}
	return nil
}

// releaseIdentity removes all identity index rows owned by a record.
func releaseIdentity(ctx context.Context, tx *sql.Tx, kind types.StaffKind, recordID string) error {
	_, err := tx.ExecContext(ctx,
		`DELETE FROM identity_index WHERE kind = $1 AND record_id = $2`,
		string(kind), recordID,
	)
	if err != nil {
		return fmt.Errorf("failed to release identity: %w", err)
	}
	return nil
}

// IdentityIndex reads the identity index spanning all personnel collections.
type IdentityIndex struct {
	db *database.DB
}

// NewIdentityIndex creates an identity index reader
func NewIdentityIndex(db *database.DB) *IdentityIndex {
	return &IdentityIndex{db: db}
}

// Owner returns the record owning (field, value), or (nil, nil) when the
// value is unowned.
func (ix *IdentityIndex) Owner(ctx context.Context, field, value string) (*types.IdentityOwner, error) {
	var owner types.IdentityOwner

	err := ix.db.QueryRowContext(ctx,
		`SELECT kind, record_id FROM identity_index WHERE field = $1 AND value = $2`,
		field, value,
	).Scan(&owner.Kind, &owner.RecordID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up identity owner: %w", err)
	}

	return &owner, nil
}

// StaffRepository implements doctor and nurse persistence
type StaffRepository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *database.DB, log *logger.Logger) *StaffRepository {
	return &StaffRepository{
		db:     db,
		logger: log,
	}
}

const staffColumns = `id, first_name, last_name, age, gender, specialty_ids,
	municipality, department, phone, email, password_hash, contract_id,
	role_id, active, created_at, updated_at`

func scanStaff(row interface{ Scan(...interface{}) error }) (*types.ClinicalStaff, error) {
	var staff types.ClinicalStaff

	err := row.Scan(
		&staff.ID,
		&staff.Name.FirstName,
		&staff.Name.LastName,
		&staff.Age,
		&staff.Gender,
		pq.Array(&staff.SpecialtyIDs),
		&staff.Address.Municipality,
		&staff.Address.Department,
		&staff.Phone,
		&staff.Email,
		&staff.PasswordHash,
		&staff.ContractID,
		&staff.RoleID,
		&staff.Active,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &staff, nil
}

// Create inserts a new doctor/nurse and claims its identity index rows in
// one transaction.
func (r *StaffRepository) Create(ctx context.Context, kind types.StaffKind, staff *types.ClinicalStaff) error {
	table, err := staffTable(kind)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := claimIdentity(ctx, tx, kind, staff.ID, map[string]string{
		types.IdentityFieldEmail: staff.Email,
		types.IdentityFieldPhone: staff.Phone,
	}); err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, first_name, last_name, age, gender, specialty_ids,
			municipality, department, phone, email, password_hash, contract_id,
			role_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`, table)

	_, err = tx.ExecContext(ctx, query,
		staff.ID,
		staff.Name.FirstName,
		staff.Name.LastName,
		staff.Age,
		staff.Gender,
		pq.Array(staff.SpecialtyIDs),
		staff.Address.Municipality,
		staff.Address.Department,
		staff.Phone,
		staff.Email,
		staff.PasswordHash,
		staff.ContractID,
		staff.RoleID,
		staff.Active,
		staff.CreatedAt,
		staff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", kind, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{"kind": kind, "id": staff.ID}).Info("Staff record created")
	return nil
}

// GetByID retrieves a doctor/nurse by id
func (r *StaffRepository) GetByID(ctx context.Context, kind types.StaffKind, id string) (*types.ClinicalStaff, error) {
	table, err := staffTable(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, staffColumns, table)

	staff, err := scanStaff(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				fmt.Sprintf("The %s does not exist in the database", kind))
		}
		return nil, fmt.Errorf("failed to get %s by id: %w", kind, err)
	}

	return staff, nil
}

// GetByEmail retrieves a doctor/nurse by email
func (r *StaffRepository) GetByEmail(ctx context.Context, kind types.StaffKind, email string) (*types.ClinicalStaff, error) {
	table, err := staffTable(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE email = $1`, staffColumns, table)

	staff, err := scanStaff(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				fmt.Sprintf("The %s does not exist in the database", kind))
		}
		return nil, fmt.Errorf("failed to get %s by email: %w", kind, err)
	}

	return staff, nil
}

// GetWithRefs retrieves a doctor/nurse and resolves its role, contract and
// specialty references into nested objects. A dangling reference is left
// nil rather than failing the read.
func (r *StaffRepository) GetWithRefs(ctx context.Context, kind types.StaffKind, id string) (*types.ClinicalStaff, error) {
	staff, err := r.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if err := r.populateRefs(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *StaffRepository) populateRefs(ctx context.Context, staff *types.ClinicalStaff) error {
	var role types.Role
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM roles WHERE id = $1`,
		staff.RoleID,
	).Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt)
	if err == nil {
		staff.Role = &role
	} else if err != sql.ErrNoRows {
		return fmt.Errorf("failed to resolve role: %w", err)
	}

	var contract types.Contract
	err = r.db.QueryRowContext(ctx,
		`SELECT id, contract_type, contract_period, active, created_at, updated_at FROM contracts WHERE id = $1`,
		staff.ContractID,
	).Scan(&contract.ID, &contract.ContractType, &contract.ContractPeriod,
		&contract.Active, &contract.CreatedAt, &contract.UpdatedAt)
	if err == nil {
		staff.Contract = &contract
	} else if err != sql.ErrNoRows {
		return fmt.Errorf("failed to resolve contract: %w", err)
	}

	if len(staff.SpecialtyIDs) > 0 {
		rows, err := r.db.QueryContext(ctx,
			`SELECT id, name, area_id, active, created_at, updated_at FROM specialties WHERE id = ANY($1)`,
			pq.Array(staff.SpecialtyIDs),
		)
		if err != nil {
			return fmt.Errorf("failed to resolve specialties: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var specialty types.Specialty
			if err := rows.Scan(&specialty.ID, &specialty.Name, &specialty.AreaID,
				&specialty.Active, &specialty.CreatedAt, &specialty.UpdatedAt); err != nil {
				return fmt.Errorf("failed to scan specialty row: %w", err)
			}
			staff.Specialties = append(staff.Specialties, &specialty)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating specialty rows: %w", err)
		}
	}

	return nil
}

// List retrieves all doctors/nurses of a kind
func (r *StaffRepository) List(ctx context.Context, kind types.StaffKind) ([]*types.ClinicalStaff, error) {
	table, err := staffTable(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at DESC`, staffColumns, table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", kind, err)
	}
	defer rows.Close()

	var records []*types.ClinicalStaff
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", kind, err)
		}
		records = append(records, staff)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", kind, err)
	}

	return records, nil
}

// Update persists a merged doctor/nurse record and re-synchronizes its
// identity index rows in one transaction.
func (r *StaffRepository) Update(ctx context.Context, kind types.StaffKind, staff *types.ClinicalStaff) error {
	table, err := staffTable(kind)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := releaseIdentity(ctx, tx, kind, staff.ID); err != nil {
		return err
	}

	if err := claimIdentity(ctx, tx, kind, staff.ID, map[string]string{
		types.IdentityFieldEmail: staff.Email,
		types.IdentityFieldPhone: staff.Phone,
	}); err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s SET first_name = $2, last_name = $3, age = $4, gender = $5,
			specialty_ids = $6, municipality = $7, department = $8, phone = $9,
			email = $10, password_hash = $11, contract_id = $12, role_id = $13,
			active = $14, updated_at = $15
		WHERE id = $1`, table)

	result, err := tx.ExecContext(ctx, query,
		staff.ID,
		staff.Name.FirstName,
		staff.Name.LastName,
		staff.Age,
		staff.Gender,
		pq.Array(staff.SpecialtyIDs),
		staff.Address.Municipality,
		staff.Address.Department,
		staff.Phone,
		staff.Email,
		staff.PasswordHash,
		staff.ContractID,
		staff.RoleID,
		staff.Active,
		staff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", kind, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			fmt.Sprintf("The %s does not exist in the database", kind))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{"kind": kind, "id": staff.ID}).Info("Staff record updated")
	return nil
}

// Delete removes a doctor/nurse and its identity index rows. No cascade:
// records elsewhere referencing the deleted id are left dangling.
func (r *StaffRepository) Delete(ctx context.Context, kind types.StaffKind, id string) error {
	table, err := staffTable(kind)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := releaseIdentity(ctx, tx, kind, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			fmt.Sprintf("The %s does not exist in the database", kind))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{"kind": kind, "id": id}).Info("Staff record deleted")
	return nil
}

// AdminRepository implements administrator persistence
type AdminRepository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *database.DB, log *logger.Logger) *AdminRepository {
	return &AdminRepository{
		db:     db,
		logger: log,
	}
}

// Create inserts a new admin and claims its email in the identity index
func (r *AdminRepository) Create(ctx context.Context, admin *types.Admin) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := claimIdentity(ctx, tx, types.KindAdmin, admin.ID, map[string]string{
		types.IdentityFieldEmail: admin.Email,
	}); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO admins (id, email, password_hash, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.RoleID,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	r.logger.WithField("id", admin.ID).Info("Admin created")
	return nil
}

// GetByID retrieves an admin by id
func (r *AdminRepository) GetByID(ctx context.Context, id string) (*types.Admin, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*types.Admin, error) {
	return r.getBy(ctx, "email", email)
}

func (r *AdminRepository) getBy(ctx context.Context, column, value string) (*types.Admin, error) {
	var admin types.Admin

	query := fmt.Sprintf(`
		SELECT id, email, password_hash, role_id, created_at, updated_at
		FROM admins WHERE %s = $1`, column)

	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.RoleID,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				"The admin does not exist in the database")
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &admin, nil
}

// GetWithRefs retrieves an admin and resolves its role reference
func (r *AdminRepository) GetWithRefs(ctx context.Context, id string) (*types.Admin, error) {
	admin, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var role types.Role
	err = r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM roles WHERE id = $1`,
		admin.RoleID,
	).Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt)
	if err == nil {
		admin.Role = &role
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	return admin, nil
}

// PatientRepository implements patient persistence
type PatientRepository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *database.DB, log *logger.Logger) *PatientRepository {
	return &PatientRepository{
		db:     db,
		logger: log,
	}
}

const patientColumns = `id, first_name, last_name, age, gender, allergies,
	municipality, department, phone, email, active, created_at, updated_at`

func scanPatient(row interface{ Scan(...interface{}) error }) (*types.Patient, error) {
	var patient types.Patient
	var allergies []byte

	err := row.Scan(
		&patient.ID,
		&patient.Name.FirstName,
		&patient.Name.LastName,
		&patient.Age,
		&patient.Gender,
		&allergies,
		&patient.Address.Municipality,
		&patient.Address.Department,
		&patient.Phone,
		&patient.Email,
		&patient.Active,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(allergies) > 0 {
		if err := json.Unmarshal(allergies, &patient.Allergies); err != nil {
			return nil, fmt.Errorf("failed to decode allergies: %w", err)
		}
	}

	return &patient, nil
}

// Create inserts a new patient and claims its identity index rows
func (r *PatientRepository) Create(ctx context.Context, patient *types.Patient) error {
	allergies, err := json.Marshal(patient.Allergies)
	if err != nil {
		return fmt.Errorf("failed to encode allergies: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := claimIdentity(ctx, tx, types.KindPatient, patient.ID, map[string]string{
		types.IdentityFieldEmail: patient.Email,
		types.IdentityFieldPhone: patient.Phone,
	}); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO patients (id, first_name, last_name, age, gender, allergies,
			municipality, department, phone, email, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		patient.ID,
		patient.Name.FirstName,
		patient.Name.LastName,
		patient.Age,
		patient.Gender,
		allergies,
		patient.Address.Municipality,
		patient.Address.Department,
		patient.Phone,
		patient.Email,
		patient.Active,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	r.logger.WithField("id", patient.ID).Info("Patient created")
	return nil
}

// GetByID retrieves a patient by id
func (r *PatientRepository) GetByID(ctx context.Context, id string) (*types.Patient, error) {
	query := fmt.Sprintf(`SELECT %s FROM patients WHERE id = $1`, patientColumns)

	patient, err := scanPatient(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				"The patient does not exist in the database")
		}
		return nil, fmt.Errorf("failed to get patient by id: %w", err)
	}

	return patient, nil
}

// List retrieves all patients
func (r *PatientRepository) List(ctx context.Context) ([]*types.Patient, error) {
	query := fmt.Sprintf(`SELECT %s FROM patients ORDER BY created_at DESC`, patientColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	var patients []*types.Patient
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient row: %w", err)
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patient rows: %w", err)
	}

	return patients, nil
}

// Update persists a merged patient record and re-synchronizes its identity
// index rows
func (r *PatientRepository) Update(ctx context.Context, patient *types.Patient) error {
	allergies, err := json.Marshal(patient.Allergies)
	if err != nil {
		return fmt.Errorf("failed to encode allergies: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := releaseIdentity(ctx, tx, types.KindPatient, patient.ID); err != nil {
		return err
	}

	if err := claimIdentity(ctx, tx, types.KindPatient, patient.ID, map[string]string{
		types.IdentityFieldEmail: patient.Email,
		types.IdentityFieldPhone: patient.Phone,
	}); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE patients SET first_name = $2, last_name = $3, age = $4,
			gender = $5, allergies = $6, municipality = $7, department = $8,
			phone = $9, email = $10, active = $11, updated_at = $12
		WHERE id = $1`,
		patient.ID,
		patient.Name.FirstName,
		patient.Name.LastName,
		patient.Age,
		patient.Gender,
		allergies,
		patient.Address.Municipality,
		patient.Address.Department,
		patient.Phone,
		patient.Email,
		patient.Active,
		patient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			"The patient does not exist in the database")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	r.logger.WithField("id", patient.ID).Info("Patient updated")
	return nil
}

// Delete removes a patient and its identity index rows
func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := releaseIdentity(ctx, tx, types.KindPatient, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			"The patient does not exist in the database")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	r.logger.WithField("id", id).Info("Patient deleted")
	return nil
}
