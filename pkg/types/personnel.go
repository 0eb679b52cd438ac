package types

import "time"

// StaffKind identifies one of the four personnel collections.
type StaffKind string

const (
	KindAdmin   StaffKind = "admin"
	KindDoctor  StaffKind = "doctor"
	KindNurse   StaffKind = "nurse"
	KindPatient StaffKind = "patient"
)

// Name holds a person's first and last name.
type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Address holds a person's municipality and department.
type Address struct {
	Municipality string `json:"municipality"`
	Department   string `json:"department"`
}

// Allergy is a named allergy on a patient record.
type Allergy struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Admin is an administrator account. Admins are created only through the
// bootstrap path, never through the public API.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       string    `json:"roleId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Role *Role `json:"role,omitempty"`
}

// ClinicalStaff is a doctor or nurse record. The two collections share one
// shape and live in separate tables selected by StaffKind.
type ClinicalStaff struct {
	ID           string    `json:"id"`
	Name         Name      `json:"name"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	SpecialtyIDs []string  `json:"specialtyIds"`
	Address      Address   `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ContractID   string    `json:"contractId"`
	RoleID       string    `json:"roleId"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Populated on reads that resolve references.
	Specialties []*Specialty `json:"specialties,omitempty"`
	Contract    *Contract    `json:"contract,omitempty"`
	Role        *Role        `json:"role,omitempty"`
}

// Patient is a patient record, independent of roles and contracts.
type Patient struct {
	ID        string    `json:"id"`
	Name      Name      `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Allergies []Allergy `json:"allergies"`
	Address   Address   `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StaffCreate is the full payload required to create a doctor or nurse.
type StaffCreate struct {
	Name         Name     `json:"name"`
	Age          int      `json:"age"`
	Gender       string   `json:"gender"`
	SpecialtyIDs []string `json:"specialties"`
	Address      Address  `json:"address"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	ContractID   string   `json:"contract"`
	RoleID       string   `json:"role"`
}

// StaffUpdate is a partial doctor/nurse payload; nil fields are untouched
// and are not re-validated.
type StaffUpdate struct {
	Name         *Name    `json:"name,omitempty"`
	Age          *int     `json:"age,omitempty"`
	Gender       *string  `json:"gender,omitempty"`
	SpecialtyIDs []string `json:"specialties,omitempty"`
	Address      *Address `json:"address,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Password     *string  `json:"password,omitempty"`
	ContractID   *string  `json:"contract,omitempty"`
	RoleID       *string  `json:"role,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

// Empty reports whether no field is present in the payload.
func (u *StaffUpdate) Empty() bool {
	return u.Name == nil && u.Age == nil && u.Gender == nil &&
		u.SpecialtyIDs == nil && u.Address == nil && u.Phone == nil &&
		u.Email == nil && u.Password == nil && u.ContractID == nil &&
		u.RoleID == nil && u.Active == nil
}

// PatientCreate is the full payload required to create a patient.
type PatientCreate struct {
	Name      Name      `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Allergies []Allergy `json:"allergies"`
	Address   Address   `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
}

// PatientUpdate is a partial patient payload; nil fields are untouched.
type PatientUpdate struct {
	Name      *Name     `json:"name,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Allergies []Allergy `json:"allergies,omitempty"`
	Address   *Address  `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Active    *bool     `json:"active,omitempty"`
}

// Empty reports whether no field is present in the payload.
func (u *PatientUpdate) Empty() bool {
	return u.Name == nil && u.Age == nil && u.Gender == nil &&
		u.Allergies == nil && u.Address == nil && u.Phone == nil &&
		u.Email == nil && u.Active == nil
}

// Credentials carries a sign-in request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignedToken is a minted, time-bounded access token.
type SignedToken struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Identity index fields. Email and phone must be unique across the union of
// the admin, doctor, nurse and patient collections; the identity index keys
// every (field, value) pair to its owning record.
const (
	IdentityFieldEmail = "email"
	IdentityFieldPhone = "phone"
)

// IdentityOwner is the record owning an identity index entry.
type IdentityOwner struct {
	Kind     StaffKind `json:"kind"`
	RecordID string    `json:"recordId"`
}
