package portalsdk

import "time"

// ErrorResponse is the portal's JSON error body.
type ErrorResponse struct {
	// Error is the machine-readable code, e.g. "invalid_credentials".
	Error string `json:"error"`

	// ErrorDescription is the human-readable message.
	ErrorDescription string `json:"error_description"`
}

// User is a portal account as returned by the API. The profile field names
// follow the agency's existing schema, hence the Indonesian JSON keys.
type User struct {
	ID        string     `json:"id"`
	FullName  string     `json:"nama_lengkap"`
	Email     string     `json:"email"`
	Company   string     `json:"perusahaan,omitempty"`
	Phone     string     `json:"no_telepon,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PATCH /v1/me. Nil fields are left
// unchanged by the server.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Company  *string `json:"company,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// DirectoryPage is one page of the KOL roster from GET /v1/kol.
type DirectoryPage struct {
	Columns    []string         `json:"columns"`
	Rows       []map[string]any `json:"rows"`
	TotalRows  int              `json:"total_rows"`
	IsLastPage bool             `json:"is_last_page"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}
