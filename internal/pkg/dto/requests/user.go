package requests

// RegisterUser is stored as-is; the portal performs no field validation
// and no duplicate-email rejection on registration.
type RegisterUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}
