package auth

type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleManager       Role = "Manager"
)

type AdminUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
