package personnel

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicore/staff-registry/pkg/interfaces"
	"github.com/clinicore/staff-registry/pkg/types"
)

// Validator runs the referential integrity pipeline every personnel
// mutation must pass before a write is allowed. Steps run in fixed order
// and short-circuit on the first failure:
//
//  1. shape: required fields present (create) / non-empty payload (update)
//  2. identifier format: every foreign key is a well-formed id
//  3. uniqueness: email/phone not owned by a different record in any of the
//     four personnel collections
//  4. existence: every referenced role/contract/specialty resolves
//  5. active status: every referenced contract and specialty is active
//
// On update, steps 2-5 run only for the fields present in the payload.
// The validator is read-only; the orchestrator performs the write after a
// clean pass. Validation and write are not atomic, but the identity index
// unique constraint makes a racing duplicate fail at commit.
type Validator struct {
	identity    interfaces.IdentityLookup
	roles       interfaces.RoleRepository
	contracts   interfaces.ContractRepository
	specialties interfaces.SpecialtyRepository
}

// NewValidator creates a referential validator
func NewValidator(
	identity interfaces.IdentityLookup,
	roles interfaces.RoleRepository,
	contracts interfaces.ContractRepository,
	specialties interfaces.SpecialtyRepository,
) *Validator {
	return &Validator{
		identity:    identity,
		roles:       roles,
		contracts:   contracts,
		specialties: specialties,
	}
}

// StaffCreate validates a full doctor/nurse creation payload
func (v *Validator) StaffCreate(ctx context.Context, kind types.StaffKind, req *types.StaffCreate) error {
	if req.Name.FirstName == "" || req.Name.LastName == "" || req.Age == 0 ||
		req.Gender == "" || len(req.SpecialtyIDs) == 0 ||
		req.Address.Municipality == "" || req.Address.Department == "" ||
		req.Phone == "" || req.Email == "" || req.Password == "" ||
		req.ContractID == "" || req.RoleID == "" {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"The fields name, age, gender, specialties, address, phone, email, password, contract and role are required")
	}

	ids := make([]string, 0, len(req.SpecialtyIDs)+2)
	ids = append(ids, req.SpecialtyIDs...)
	ids = append(ids, req.ContractID, req.RoleID)
	if err := checkIDFormats(ids); err != nil {
		return err
	}

	if err := v.checkUnique(ctx, req.Email, req.Phone, "", ""); err != nil {
		return err
	}

	if err := v.checkSpecialties(ctx, req.SpecialtyIDs); err != nil {
		return err
	}

	if err := v.checkContract(ctx, req.ContractID); err != nil {
		return err
	}

	return v.checkRole(ctx, req.RoleID)
}

// StaffUpdate validates a partial doctor/nurse payload. Fields absent from
// the payload are left untouched and are not re-validated.
func (v *Validator) StaffUpdate(ctx context.Context, kind types.StaffKind, id string, upd *types.StaffUpdate) error {
	if upd.Empty() {
		return types.NewValidationError(types.ErrCodeEmptyPayload, "The payload is empty")
	}

	var ids []string
	ids = append(ids, upd.SpecialtyIDs...)
	if upd.ContractID != nil {
		ids = append(ids, *upd.ContractID)
	}
	if upd.RoleID != nil {
		ids = append(ids, *upd.RoleID)
	}
	if err := checkIDFormats(ids); err != nil {
		return err
	}

	email, phone := "", ""
	if upd.Email != nil {
		email = *upd.Email
	}
	if upd.Phone != nil {
		phone = *upd.Phone
	}
	if err := v.checkUnique(ctx, email, phone, kind, id); err != nil {
		return err
	}

	if upd.SpecialtyIDs != nil {
		if err := v.checkSpecialties(ctx, upd.SpecialtyIDs); err != nil {
			return err
		}
	}

	if upd.ContractID != nil {
		if err := v.checkContract(ctx, *upd.ContractID); err != nil {
			return err
		}
	}

	if upd.RoleID != nil {
		return v.checkRole(ctx, *upd.RoleID)
	}

	return nil
}

// PatientCreate validates a full patient creation payload
func (v *Validator) PatientCreate(ctx context.Context, req *types.PatientCreate) error {
	if req.Name.FirstName == "" || req.Name.LastName == "" || req.Age == 0 ||
		req.Gender == "" || req.Address.Municipality == "" ||
		req.Address.Department == "" || req.Phone == "" || req.Email == "" {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"The fields name, age, gender, address, phone and email are required")
	}

	return v.checkUnique(ctx, req.Email, req.Phone, "", "")
}

// PatientUpdate validates a partial patient payload
func (v *Validator) PatientUpdate(ctx context.Context, id string, upd *types.PatientUpdate) error {
	if upd.Empty() {
		return types.NewValidationError(types.ErrCodeEmptyPayload, "The payload is empty")
	}

	email, phone := "", ""
	if upd.Email != nil {
		email = *upd.Email
	}
	if upd.Phone != nil {
		phone = *upd.Phone
	}

	return v.checkUnique(ctx, email, phone, types.KindPatient, id)
}

// AdminCreate validates a bootstrap admin payload
func (v *Validator) AdminCreate(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"The fields email and password are required")
	}

	return v.checkUnique(ctx, email, "", "", "")
}

// checkIDFormats verifies every referenced foreign key is a well-formed id
func checkIDFormats(ids []string) error {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return types.NewValidationError(types.ErrCodeInvalidID,
				"One or more of the entered ID formats are invalid")
		}
	}
	return nil
}

// checkUnique rejects an email/phone already owned by a different record in
// any personnel collection. selfKind/selfID identify the record being
// updated so it may keep its own values; both are empty on create.
func (v *Validator) checkUnique(ctx context.Context, email, phone string, selfKind types.StaffKind, selfID string) error {
	fields := map[string]string{
		types.IdentityFieldEmail: email,
		types.IdentityFieldPhone: phone,
	}

	for field, value := range fields {
		if value == "" {
			continue
		}

		owner, err := v.identity.Owner(ctx, field, value)
		if err != nil {
			return types.NewInternalError(types.ErrCodeInternalError, "identity lookup failed", err)
		}
		if owner == nil {
			continue
		}
		if owner.Kind == selfKind && owner.RecordID == selfID {
			continue
		}

		return types.NewConflictError(types.ErrCodeConflict,
			"Email or phone already exists. Please enter a different one")
	}

	return nil
}

// checkSpecialties verifies every specialty exists, then that every one is
// active
func (v *Validator) checkSpecialties(ctx context.Context, ids []string) error {
	resolved := make([]*types.Specialty, 0, len(ids))

	for _, id := range ids {
		specialty, err := v.specialties.GetByID(ctx, id)
		if err != nil {
			if types.IsErrorType(err, types.ErrorTypeNotFound) {
				return types.NewNotFoundError(types.ErrCodeNotFound,
					"One or more of the specialties do not exist in the database")
			}
			return err
		}
		resolved = append(resolved, specialty)
	}

	for _, specialty := range resolved {
		if !specialty.Active {
			return types.NewInvalidStateError(types.ErrCodeInactive,
				"One or more of the specialties is not active")
		}
	}

	return nil
}

// checkContract verifies the contract exists and is active
func (v *Validator) checkContract(ctx context.Context, id string) error {
	contract, err := v.contracts.GetByID(ctx, id)
	if err != nil {
		if types.IsErrorType(err, types.ErrorTypeNotFound) {
			return types.NewNotFoundError(types.ErrCodeNotFound,
				"The contract does not exist in the database")
		}
		return err
	}

	if !contract.Active {
		return types.NewInvalidStateError(types.ErrCodeInactive,
			"The contract is not active")
	}

	return nil
}

// checkRole verifies the role exists. Roles carry no active flag.
func (v *Validator) checkRole(ctx context.Context, id string) error {
	if _, err := v.roles.GetByID(ctx, id); err != nil {
		if types.IsErrorType(err, types.ErrorTypeNotFound) {
			return types.NewNotFoundError(types.ErrCodeNotFound,
				"The role does not exist in the database")
		}
		return err
	}
	return nil
}
