package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/midas-agency/midas/internal/web/domain"
	"github.com/midas-agency/midas/internal/web/store"
)

const userColumns = `id, nama_lengkap, email, password, perusahaan, no_telepon, status, created_at, updated_at, last_login`

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string, activeOnly bool) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM Mida_Login WHERE email = ?`
	args := []any{email}
	if activeOnly {
		query += ` AND status = ?`
		args = append(args, domain.StatusActive)
	}

	return r.scanOne(r.db.QueryRowContext(ctx, query, args...))
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM Mida_Login WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO Mida_Login (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		u.ID,
		u.FullName,
		u.Email,
		u.PasswordHash,
		toNull(u.Company),
		toNull(u.Phone),
		u.Status,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	return r.GetByID(ctx, u.ID)
}

func (r *usersRepo) Update(ctx context.Context, id string, patch store.UserPatch) (domain.User, error) {
	sets := []string{"updated_at = ?"}
	args := []any{patch.UpdatedAt}

	if patch.FullName != nil {
		sets = append(sets, "nama_lengkap = ?")
		args = append(args, *patch.FullName)
	}
	if patch.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.PasswordHash != nil {
		sets = append(sets, "password = ?")
		args = append(args, *patch.PasswordHash)
	}
	if patch.Company != nil {
		sets = append(sets, "perusahaan = ?")
		args = append(args, toNull(*patch.Company))
	}
	if patch.Phone != nil {
		sets = append(sets, "no_telepon = ?")
		args = append(args, toNull(*patch.Phone))
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE Mida_Login SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.User{}, store.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE Mida_Login SET last_login = ?, updated_at = ? WHERE id = ?`, at, at, id)
	return mapErr(err)
}

func (r *usersRepo) scanOne(row *sql.Row) (domain.User, error) {
	var u domain.User
	var company, phone sql.NullString
	var lastLogin sql.NullTime

	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&company,
		&phone,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
		&lastLogin,
	)
	if err != nil {
		return domain.User{}, mapErr(err)
	}

	u.Company = company.String
	u.Phone = phone.String
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}

func toNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
