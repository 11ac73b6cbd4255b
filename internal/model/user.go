package model

// Role is the account role enumeration used by the marketplace backend.
// The numbering has a gap; 4 is unassigned upstream.
type Role int

const (
	RoleGuest   Role = 0
	RoleAdmin   Role = 1
	RoleMember  Role = 2
	RoleStaff   Role = 3
	RoleManager Role = 5
)

// Known reports whether the role is one the backend actually issues.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleStaff, RoleManager:
		return true
	}
	return false
}

// CanModerate gates the staff jewelry views.
func (r Role) CanModerate() bool {
	return r == RoleStaff || r == RoleManager
}

// UserSession is the authenticated account held for the lifetime of a browser
// session. It is serialized into the session store on login and resolved on
// every authenticated request; absence means guest.
type UserSession struct {
	AccountID int    `json:"accountId"`
	Name      string `json:"accountName"`
	Email     string `json:"accountEmail"`
	Role      Role   `json:"roleId"`
}
