// Package domain holds the core data types shared by the store drivers and
// services.
package domain

import "time"

// Account lifecycle statuses. Transitions happen outside this service (back
// office tooling); the login path only reads the value.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// User is a row in the Mida_Login table. The column names are inherited from
// the agency's existing schema, so the JSON field names stay Indonesian.
type User struct {
	ID           string     `json:"id"`
	FullName     string     `json:"nama_lengkap"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"` // bcrypt encoded, never returned to clients
	Company      string     `json:"perusahaan,omitempty"`
	Phone        string     `json:"no_telepon,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// PublicUser is the subset of User safe to hand to clients: everything except
// the password hash.
type PublicUser struct {
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

// Public strips the password hash from a user record.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Company:   u.Company,
		Phone:     u.Phone,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		LastLogin: u.LastLogin,
	}
}
