package interfaces

import (
	"context"

	"github.com/clinicore/staff-registry/pkg/types"
)

// PasswordManager defines password hashing operations
type PasswordManager interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hashedPassword, password string) (bool, error)
}

// TokenIssuer mints and verifies signed, time-bounded tokens
type TokenIssuer interface {
	Issue(subjectID string) (*types.SignedToken, error)
	Verify(token string) (string, error)
}

// SubjectResolver resolves the role of a token subject by looking it up in
// the personnel collections matching the candidate roles. Returns not_found
// when the subject exists in none of them.
type SubjectResolver interface {
	ResolveRole(ctx context.Context, subjectID string, roles []string) (string, error)
}

// IdentityLookup is the read side of the identity index spanning all four
// personnel collections. Owner returns (nil, nil) when the value is unowned.
type IdentityLookup interface {
	Owner(ctx context.Context, field, value string) (*types.IdentityOwner, error)
}

// StaffRepository persists doctor and nurse records, selected by kind.
// Writes maintain the identity index in the same transaction.
type StaffRepository interface {
	Create(ctx context.Context, kind types.StaffKind, staff *types.ClinicalStaff) error
	GetByID(ctx context.Context, kind types.StaffKind, id string) (*types.ClinicalStaff, error)
	GetByEmail(ctx context.Context, kind types.StaffKind, email string) (*types.ClinicalStaff, error)
	GetWithRefs(ctx context.Context, kind types.StaffKind, id string) (*types.ClinicalStaff, error)
	List(ctx context.Context, kind types.StaffKind) ([]*types.ClinicalStaff, error)
	Update(ctx context.Context, kind types.StaffKind, staff *types.ClinicalStaff) error
	Delete(ctx context.Context, kind types.StaffKind, id string) error
}

// AdminRepository persists administrator records
type AdminRepository interface {
	Create(ctx context.Context, admin *types.Admin) error
	GetByID(ctx context.Context, id string) (*types.Admin, error)
	GetByEmail(ctx context.Context, email string) (*types.Admin, error)
	GetWithRefs(ctx context.Context, id string) (*types.Admin, error)
}

// PatientRepository persists patient records
type PatientRepository interface {
	Create(ctx context.Context, patient *types.Patient) error
	GetByID(ctx context.Context, id string) (*types.Patient, error)
	List(ctx context.Context) ([]*types.Patient, error)
	Update(ctx context.Context, patient *types.Patient) error
	Delete(ctx context.Context, id string) error
}

// PersonnelService orchestrates validation and persistence for personnel
// mutations, and sign-in for the kinds that authenticate.
type PersonnelService interface {
	SignIn(ctx context.Context, kind types.StaffKind, credentials *types.Credentials) (*types.SignedToken, error)

	CreateStaff(ctx context.Context, kind types.StaffKind, req *types.StaffCreate) (*types.ClinicalStaff, error)
	GetStaff(ctx context.Context, kind types.StaffKind, id string) (*types.ClinicalStaff, error)
	ListStaff(ctx context.Context, kind types.StaffKind) ([]*types.ClinicalStaff, error)
	UpdateStaff(ctx context.Context, kind types.StaffKind, id string, upd *types.StaffUpdate) (*types.ClinicalStaff, error)
	DeleteStaff(ctx context.Context, kind types.StaffKind, id string) error

	CreatePatient(ctx context.Context, req *types.PatientCreate) (*types.Patient, error)
	GetPatient(ctx context.Context, id string) (*types.Patient, error)
	ListPatients(ctx context.Context) ([]*types.Patient, error)
	UpdatePatient(ctx context.Context, id string, upd *types.PatientUpdate) (*types.Patient, error)
	DeletePatient(ctx context.Context, id string) error

	EnsureAdmin(ctx context.Context, email, password string) error
}
