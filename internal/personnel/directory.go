package personnel

import (
	"context"

	"github.com/clinicore/staff-registry/pkg/interfaces"
	"github.com/clinicore/staff-registry/pkg/types"
)

// RoleDirectory resolves a token subject to its stored role by probing the
// personnel collections matched by the route's candidate roles. A subject
// found in none of them yields not_found; a subject found with a dangling
// role reference yields an empty role name, which no policy admits.
type RoleDirectory struct {
	admins interfaces.AdminRepository
	staff  interfaces.StaffRepository
}

// NewRoleDirectory creates a subject resolver over the personnel stores
func NewRoleDirectory(admins interfaces.AdminRepository, staff interfaces.StaffRepository) *RoleDirectory {
	return &RoleDirectory{
		admins: admins,
		staff:  staff,
	}
}

// ResolveRole looks the subject up in the collections matching the candidate
// roles, in order, and returns the stored role name of the first hit.
func (d *RoleDirectory) ResolveRole(ctx context.Context, subjectID string, roles []string) (string, error) {
	for _, candidate := range roles {
		switch candidate {
		case types.RoleAdmin:
			admin, err := d.admins.GetWithRefs(ctx, subjectID)
			if err != nil {
				if types.IsErrorType(err, types.ErrorTypeNotFound) {
					continue
				}
				return "", err
			}
			if admin.Role != nil {
				return admin.Role.Name, nil
			}
			return "", nil

		case types.RoleDoctor:
			role, found, err := d.staffRole(ctx, types.KindDoctor, subjectID)
			if err != nil {
				return "", err
			}
			if found {
				return role, nil
			}

		case types.RoleNurse:
			role, found, err := d.staffRole(ctx, types.KindNurse, subjectID)
			if err != nil {
				return "", err
			}
			if found {
				return role, nil
			}
		}
	}

	return "", types.NewNotFoundError(types.ErrCodeNotFound, "No user found")
}

func (d *RoleDirectory) staffRole(ctx context.Context, kind types.StaffKind, subjectID string) (string, bool, error) {
	staff, err := d.staff.GetWithRefs(ctx, kind, subjectID)
	if err != nil {
		if types.IsErrorType(err, types.ErrorTypeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	if staff.Role != nil {
		return staff.Role.Name, true, nil
	}
	return "", true, nil
}
