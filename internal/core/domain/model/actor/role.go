package actor

import (
	"fmt"

	"mota/internal/pkg/errs"
)

// Role is the backend role code of a user. Each user has exactly one.
type Role int

const (
	RoleUnknown       Role = 0
	RoleDoctor        Role = 1
	RoleAdministrator Role = 2
	RoleDesigner      Role = 3
	RoleMilling       Role = 4
	RoleDie           Role = 5
	RoleQuality       Role = 7
	RolePackaging     Role = 8
)

var roleNames = map[Role]string{
	RoleDoctor:        "doctor",
	RoleAdministrator: "administrador",
	RoleDesigner:      "disenador",
	RoleMilling:       "fresadora",
	RoleDie:           "dado",
	RoleQuality:       "calidad",
	RolePackaging:     "empaque",
}

// AllRoles returns every valid role in code order.
func AllRoles() []Role {
	return []Role{
		RoleDoctor, RoleAdministrator, RoleDesigner, RoleMilling,
		RoleDie, RoleQuality, RolePackaging,
	}
}

// Validate rejects codes the backend does not define.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", int(r)))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Code returns the backend numeric code.
func (r Role) Code() int {
	return int(r)
}
