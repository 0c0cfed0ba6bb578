package domain

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User models an account holder. Password is stored verbatim and compared
// with plain equality; this is the contract inherited from the legacy system.
// Cart maps product ids to quantities and is owned exclusively by the user.
type User struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Password string         `json:"-"`
	IsActive bool           `json:"is_active"`
	Role     string         `json:"role"`
	Cart     map[string]int `json:"cart,omitempty"`
}
