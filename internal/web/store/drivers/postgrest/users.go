package postgrest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/midas-agency/midas/internal/web/domain"
	"github.com/midas-agency/midas/internal/web/store"
)

const usersTable = "Mida_Login"

type usersRepo struct {
	s *Store
}

// userRow is the wire form of a Mida_Login row. Optional columns come back as
// JSON null, hence the pointers.
type userRow struct {
	ID        string     `json:"id"`
	FullName  string     `json:"nama_lengkap"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Company   *string    `json:"perusahaan"`
	Phone     *string    `json:"no_telepon"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login"`
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string, activeOnly bool) (domain.User, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("email", "eq."+email)
	if activeOnly {
		query.Set("status", "eq."+domain.StatusActive)
	}
	query.Set("limit", "1")

	return r.getOne(ctx, query)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+id)
	query.Set("limit", "1")

	return r.getOne(ctx, query)
}

func (r *usersRepo) getOne(ctx context.Context, query url.Values) (domain.User, error) {
	var rows []userRow
	if err := r.s.do(ctx, http.MethodGet, usersTable, query, "", nil, &rows); err != nil {
		return domain.User{}, err
	}
	if len(rows) == 0 {
		return domain.User{}, store.ErrNotFound
	}
	return mapUser(rows[0]), nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	payload := map[string]any{
		"id":           u.ID,
		"nama_lengkap": u.FullName,
		"email":        u.Email,
		"password":     u.PasswordHash,
		"perusahaan":   nullable(u.Company),
		"no_telepon":   nullable(u.Phone),
		"status":       u.Status,
		"created_at":   u.CreatedAt,
		"updated_at":   u.UpdatedAt,
	}

	var rows []userRow
	err := r.s.do(ctx, http.MethodPost, usersTable, nil, "return=representation", payload, &rows)
	if err != nil {
		return domain.User{}, err
	}
	if len(rows) == 0 {
		return domain.User{}, store.ErrNotFound
	}
	return mapUser(rows[0]), nil
}

func (r *usersRepo) Update(ctx context.Context, id string, patch store.UserPatch) (domain.User, error) {
	payload := map[string]any{
		"updated_at": patch.UpdatedAt,
	}
	if patch.FullName != nil {
		payload["nama_lengkap"] = *patch.FullName
	}
	if patch.Email != nil {
		payload["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		payload["password"] = *patch.PasswordHash
	}
	if patch.Company != nil {
		payload["perusahaan"] = nullable(*patch.Company)
	}
	if patch.Phone != nil {
		payload["no_telepon"] = nullable(*patch.Phone)
	}

	query := url.Values{}
	query.Set("id", "eq."+id)

	var rows []userRow
	err := r.s.do(ctx, http.MethodPatch, usersTable, query, "return=representation", payload, &rows)
	if err != nil {
		return domain.User{}, err
	}
	if len(rows) == 0 {
		return domain.User{}, store.ErrNotFound
	}
	return mapUser(rows[0]), nil
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	payload := map[string]any{
		"last_login": at,
		"updated_at": at,
	}

	query := url.Values{}
	query.Set("id", "eq."+id)

	return r.s.do(ctx, http.MethodPatch, usersTable, query, "return=minimal", payload, nil)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		FullName:     row.FullName,
		Email:        row.Email,
		PasswordHash: row.Password,
		Company:      deref(row.Company),
		Phone:        deref(row.Phone),
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		LastLogin:    row.LastLogin,
	}
}
