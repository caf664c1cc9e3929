package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rewards_miniapp/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type Admin struct {
	ID           uuid.UUID  `db:"id"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	Email        string     `db:"email"`
	Role         string     `db:"role"`
	IsActive     bool       `db:"is_active"`
	LastLogin    *time.Time `db:"last_login"`
	CreatedAt    time.Time  `db:"created_at"`
}

var adminColumns = []string{"id", "username", "password_hash", "email", "role", "is_active", "last_login", "created_at"}

func (a *Admin) toModel() *model.Admin {
	return &model.Admin{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Email:        a.Email,
		Role:         model.AdminRole(a.Role),
		IsActive:     a.IsActive,
		LastLogin:    a.LastLogin,
		CreatedAt:    a.CreatedAt,
	}
}

func (r *Repository) getAdmin(ctx context.Context, where squirrel.Eq) (*model.Admin, error) {
	query, args, err := squirrel.
		Select(adminColumns...).
		From("admin_users").
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row Admin
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (r *Repository) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return r.getAdmin(ctx, squirrel.Eq{"username": username})
}

func (r *Repository) GetAdminByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return r.getAdmin(ctx, squirrel.Eq{"id": id})
}

func (r *Repository) CreateAdmin(ctx context.Context, a *model.Admin) error {
	query, args, err := squirrel.
		Insert("admin_users").
		SetMap(map[string]interface{}{
			"id":            a.ID,
			"username":      a.Username,
			"password_hash": a.PasswordHash,
			"email":         a.Email,
			"role":          string(a.Role),
			"is_active":     a.IsActive,
			"created_at":    a.CreatedAt,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build admin insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapPgError(err, ErrAlreadyExists)
	}
	return nil
}

func (r *Repository) ListAdmins(ctx context.Context) ([]*model.Admin, error) {
	query, args, err := squirrel.
		Select(adminColumns...).
		From("admin_users").
		OrderBy("created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []Admin
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select admins: %w", err)
	}

	out := make([]*model.Admin, len(rows))
	for i := range rows {
		out[i] = rows[i].toModel()
	}
	return out, nil
}

func (r *Repository) CountAdmins(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM admin_users"); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) TouchAdminLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := squirrel.
		Update("admin_users").
		Set("last_login", at).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffectingOne(ctx, query, args)
}
