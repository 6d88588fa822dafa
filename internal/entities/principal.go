package entities

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
	// RoleSystem is used for transitions triggered by scheduled jobs.
	RoleSystem Role = "system"
)

// Principal is the authenticated caller as supplied by the identity provider.
type Principal struct {
	ID    string
	Email string
	Roles []Role
}

func (p Principal) Is(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// SystemPrincipal acts on behalf of the expiry sweep.
var SystemPrincipal = Principal{ID: "system", Roles: []Role{RoleSystem}}
