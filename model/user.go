package model

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

// CanReview reports whether the role may review documents at all.
func (r Role) CanReview() bool {
	return r == RoleManager || r == RoleAdmin
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}
