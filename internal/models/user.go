package models

// Role gates which dashboard and data a user may access.
type Role string

const (
	RoleParent  Role = "parent"
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role is one the system knows.
func (r Role) Valid() bool {
	return r == RoleParent || r == RoleTeacher
}

// User is the minimal identity carried in the session cookie. Accounts are
// created by the seed process; this service only reads them.
type User struct {
	ID       int    `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Role     Role   `db:"-" json:"role"`
}
