package types

import "time"

// Role is a personnel role referenced by every admin/doctor/nurse record.
// The set is fixed in practice (admin, doctor, nurse) and seeded at startup.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Well-known role names
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleNurse  = "nurse"
)

// Contract is an employment contract assignable to doctors and nurses.
type Contract struct {
	ID             string    `json:"id"`
	ContractType   string    `json:"contractType"`
	ContractPeriod string    `json:"contractPeriod"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Area groups specialties; an area holds at most one specialty.
type Area struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Specialty is a medical specialty belonging to exactly one area.
type Specialty struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AreaID    string    `json:"areaId"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Area is populated on reads that resolve references.
	Area *Area `json:"area,omitempty"`
}

// RoleCreate is the payload for creating a role.
type RoleCreate struct {
	Name string `json:"name"`
}

// ContractCreate is the payload for creating a contract.
type ContractCreate struct {
	ContractType   string `json:"contractType"`
	ContractPeriod string `json:"contractPeriod"`
}

// ContractUpdate is a partial contract payload; nil fields are untouched.
type ContractUpdate struct {
	ContractType   *string `json:"contractType,omitempty"`
	ContractPeriod *string `json:"contractPeriod,omitempty"`
	Active         *bool   `json:"active,omitempty"`
}

// Empty reports whether no field is present in the payload.
func (u *ContractUpdate) Empty() bool {
	return u.ContractType == nil && u.ContractPeriod == nil && u.Active == nil
}

// AreaCreate is the payload for creating an area.
type AreaCreate struct {
	Name string `json:"name"`
}

// AreaUpdate is a partial area payload; nil fields are untouched.
type AreaUpdate struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// Empty reports whether no field is present in the payload.
func (u *AreaUpdate) Empty() bool {
	return u.Name == nil && u.Active == nil
}

// SpecialtyCreate is the payload for creating a specialty.
type SpecialtyCreate struct {
	Name   string `json:"name"`
	AreaID string `json:"area"`
}

// SpecialtyUpdate is a partial specialty payload; nil fields are untouched.
type SpecialtyUpdate struct {
	Name   *string `json:"name,omitempty"`
	AreaID *string `json:"area,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// Empty reports whether no field is present in the payload.
func (u *SpecialtyUpdate) Empty() bool {
	return u.Name == nil && u.AreaID == nil && u.Active == nil
}
