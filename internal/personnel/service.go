package personnel

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/staff-registry/pkg/interfaces"
	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/monitoring"
	"github.com/clinicore/staff-registry/pkg/types"
)

// Service orchestrates personnel mutations: every write passes the
// referential validator first, and only a clean pass reaches the repository.
type Service struct {
	validator *Validator
	staff     interfaces.StaffRepository
	admins    interfaces.AdminRepository
	patients  interfaces.PatientRepository
	roles     interfaces.RoleRepository
	passwords interfaces.PasswordManager
	issuer    interfaces.TokenIssuer
	metrics   *monitoring.MetricsCollector
	logger    *logger.Logger
}

// NewService creates a personnel service. metrics may be nil.
func NewService(
	validator *Validator,
	staff interfaces.StaffRepository,
	admins interfaces.AdminRepository,
	patients interfaces.PatientRepository,
	roles interfaces.RoleRepository,
	passwords interfaces.PasswordManager,
	issuer interfaces.TokenIssuer,
	metrics *monitoring.MetricsCollector,
	log *logger.Logger,
) *Service {
	return &Service{
		validator: validator,
		staff:     staff,
		admins:    admins,
		patients:  patients,
		roles:     roles,
		passwords: passwords,
		issuer:    issuer,
		metrics:   metrics,
		logger:    log,
	}
}

// SignIn authenticates credentials against the collection of the given kind
// and mints a token carrying the record's id. An unknown email is a
// validation failure; a wrong password is an authentication failure.
func (s *Service) SignIn(ctx context.Context, kind types.StaffKind, credentials *types.Credentials) (*types.SignedToken, error) {
	if credentials.Email == "" || credentials.Password == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput,
			"The fields email and password are required")
	}

	subjectID, passwordHash, err := s.lookupCredentials(ctx, kind, credentials.Email)
	if err != nil {
		if types.IsErrorType(err, types.ErrorTypeNotFound) {
			s.recordAuthAttempt(kind, "unknown_user")
			return nil, types.NewValidationError(types.ErrCodeBadCredentials,
				fmt.Sprintf("The %s does not exist in the database", kind))
		}
		return nil, err
	}

	match, err := s.passwords.VerifyPassword(passwordHash, credentials.Password)
	if err != nil {
		return nil, types.NewInternalError(types.ErrCodeInternalError, "password verification failed", err)
	}
	if !match {
		s.recordAuthAttempt(kind, "bad_password")
		return nil, types.NewAuthenticationError(types.ErrCodeBadCredentials, "Invalid password")
	}

	token, err := s.issuer.Issue(subjectID)
	if err != nil {
		return nil, err
	}

	s.recordAuthAttempt(kind, "success")
	s.logger.Audit(subjectID, "sign_in", string(kind), subjectID, true)
	return token, nil
}

func (s *Service) lookupCredentials(ctx context.Context, kind types.StaffKind, email string) (string, string, error) {
	switch kind {
	case types.KindAdmin:
		admin, err := s.admins.GetByEmail(ctx, email)
		if err != nil {
			return "", "", err
		}
		return admin.ID, admin.PasswordHash, nil
	case types.KindDoctor, types.KindNurse:
		staff, err := s.staff.GetByEmail(ctx, kind, email)
		if err != nil {
			return "", "", err
		}
		return staff.ID, staff.PasswordHash, nil
	default:
		return "", "", fmt.Errorf("kind %q cannot sign in", kind)
	}
}

// CreateStaff validates a full doctor/nurse payload and persists it
func (s *Service) CreateStaff(ctx context.Context, kind types.StaffKind, req *types.StaffCreate) (*types.ClinicalStaff, error) {
	if err := s.validator.StaffCreate(ctx, kind, req); err != nil {
		s.recordRejection(kind, err)
		return nil, err
	}

	passwordHash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, types.NewInternalError(types.ErrCodeInternalError, "password hashing failed", err)
	}

	now := time.Now()
	staff := &types.ClinicalStaff{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		SpecialtyIDs: req.SpecialtyIDs,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: passwordHash,
		ContractID:   req.ContractID,
		RoleID:       req.RoleID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.staff.Create(ctx, kind, staff); err != nil {
		s.recordRejection(kind, err)
		return nil, err
	}

	s.logger.Audit(staff.ID, "create", string(kind), staff.ID, true)
	return s.staff.GetWithRefs(ctx, kind, staff.ID)
}

// GetStaff retrieves a doctor/nurse with resolved references
func (s *Service) GetStaff(ctx context.Context, kind types.StaffKind, id string) (*types.ClinicalStaff, error) {
	return s.staff.GetWithRefs(ctx, kind, id)
}

// ListStaff retrieves all doctors/nurses of a kind with resolved references
func (s *Service) ListStaff(ctx context.Context, kind types.StaffKind) ([]*types.ClinicalStaff, error) {
	records, err := s.staff.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	resolved := make([]*types.ClinicalStaff, 0, len(records))
	for _, record := range records {
		staff, err := s.staff.GetWithRefs(ctx, kind, record.ID)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, staff)
	}

	return resolved, nil
}

// UpdateStaff validates a partial doctor/nurse payload, merges it over the
// stored record and persists the result. Absent fields are untouched.
func (s *Service) UpdateStaff(ctx context.Context, kind types.StaffKind, id string, upd *types.StaffUpdate) (*types.ClinicalStaff, error) {
	// An empty payload is rejected whether or not the record exists
	if upd.Empty() {
		return nil, types.NewValidationError(types.ErrCodeEmptyPayload, "The payload is empty")
	}

	existing, err := s.staff.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.StaffUpdate(ctx, kind, id, upd); err != nil {
		s.recordRejection(kind, err)
		return nil, err
	}

	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Age != nil {
		existing.Age = *upd.Age
	}
	if upd.Gender != nil {
		existing.Gender = *upd.Gender
	}
	if upd.SpecialtyIDs != nil {
		existing.SpecialtyIDs = upd.SpecialtyIDs
	}
	if upd.Address != nil {
		existing.Address = *upd.Address
	}
	if upd.Phone != nil {
		existing.Phone = *upd.Phone
	}
	if upd.Email != nil {
		existing.Email = *upd.Email
	}
	if upd.Password != nil {
		passwordHash, err := s.passwords.HashPassword(*upd.Password)
		if err != nil {
			return nil, types.NewInternalError(types.ErrCodeInternalError, "password hashing failed", err)
		}
		existing.PasswordHash = passwordHash
	}
	if upd.ContractID != nil {
		existing.ContractID = *upd.ContractID
	}
	if upd.RoleID != nil {
		existing.RoleID = *upd.RoleID
	}
	if upd.Active != nil {
		existing.Active = *upd.Active
	}
	existing.UpdatedAt = time.Now()

	if err := s.staff.Update(ctx, kind, existing); err != nil {
		s.recordRejection(kind, err)
		return nil, err
	}

	s.logger.Audit(id, "update", string(kind), id, true)
	return s.staff.GetWithRefs(ctx, kind, id)
}

// DeleteStaff removes a doctor/nurse. Deleting twice yields not_found on the
// second call.
func (s *Service) DeleteStaff(ctx context.Context, kind types.StaffKind, id string) error {
	if err := s.staff.Delete(ctx, kind, id); err != nil {
		return err
	}

	s.logger.Audit(id, "delete", string(kind), id, true)
	return nil
}

// CreatePatient validates a full patient payload and persists it
func (s *Service) CreatePatient(ctx context.Context, req *types.PatientCreate) (*types.Patient, error) {
	if err := s.validator.PatientCreate(ctx, req); err != nil {
		s.recordRejection(types.KindPatient, err)
		return nil, err
	}

	now := time.Now()
	patient := &types.Patient{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Allergies: req.Allergies,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		s.recordRejection(types.KindPatient, err)
		return nil, err
	}

	s.logger.Audit(patient.ID, "create", string(types.KindPatient), patient.ID, true)
	return patient, nil
}

// GetPatient retrieves a patient by id
func (s *Service) GetPatient(ctx context.Context, id string) (*types.Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// ListPatients retrieves all patients
func (s *Service) ListPatients(ctx context.Context) ([]*types.Patient, error) {
	return s.patients.List(ctx)
}

// UpdatePatient validates a partial patient payload, merges it over the
// stored record and persists the result
func (s *Service) UpdatePatient(ctx context.Context, id string, upd *types.PatientUpdate) (*types.Patient, error) {
	if upd.Empty() {
		return nil, types.NewValidationError(types.ErrCodeEmptyPayload, "The payload is empty")
	}

	existing, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.PatientUpdate(ctx, id, upd); err != nil {
		s.recordRejection(types.KindPatient, err)
		return nil, err
	}

	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Age != nil {
		existing.Age = *upd.Age
	}
	if upd.Gender != nil {
		existing.Gender = *upd.Gender
	}
	if upd.Allergies != nil {
		existing.Allergies = upd.Allergies
	}
	if upd.Address != nil {
		existing.Address = *upd.Address
	}
	if upd.Phone != nil {
		existing.Phone = *upd.Phone
	}
	if upd.Email != nil {
		existing.Email = *upd.Email
	}
	if upd.Active != nil {
		existing.Active = *upd.Active
	}
	existing.UpdatedAt = time.Now()

	if err := s.patients.Update(ctx, existing); err != nil {
		s.recordRejection(types.KindPatient, err)
		return nil, err
	}

	s.logger.Audit(id, "update", string(types.KindPatient), id, true)
	return existing, nil
}

// DeletePatient removes a patient
func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Audit(id, "delete", string(types.KindPatient), id, true)
	return nil
}

// EnsureAdmin creates the bootstrap admin account if no record owns its
// email yet. Runs once at startup; an already-claimed email is a no-op.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		s.logger.Warn("Bootstrap admin not configured, skipping")
		return nil
	}

	if _, err := s.admins.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !types.IsErrorType(err, types.ErrorTypeNotFound) {
		return err
	}

	if err := s.validator.AdminCreate(ctx, email, password); err != nil {
		return err
	}

	passwordHash, err := s.passwords.HashPassword(password)
	if err != nil {
		return types.NewInternalError(types.ErrCodeInternalError, "password hashing failed", err)
	}

	role, err := s.roles.GetByName(ctx, types.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to resolve admin role: %w", err)
	}

	now := time.Now()
	admin := &types.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		RoleID:       role.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.WithField("email", email).Info("Bootstrap admin created")
	return nil
}

func (s *Service) recordAuthAttempt(kind types.StaffKind, status string) {
	if s.metrics != nil {
		s.metrics.RecordAuthAttempt(string(kind), status)
	}
}

func (s *Service) recordRejection(kind types.StaffKind, err error) {
	if s.metrics == nil {
		return
	}

	reason := "internal"
	switch {
	case types.IsErrorType(err, types.ErrorTypeValidation):
		reason = "validation"
	case types.IsErrorType(err, types.ErrorTypeConflict):
		reason = "conflict"
	case types.IsErrorType(err, types.ErrorTypeNotFound):
		reason = "not_found"
	case types.IsErrorType(err, types.ErrorTypeInvalidState):
		reason = "inactive"
	}

	s.metrics.RecordValidationRejection(string(kind), reason)
}
