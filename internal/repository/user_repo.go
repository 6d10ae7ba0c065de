package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"signup-api/internal/domain"
)

// UserRepository define el contrato de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByOptions(ctx context.Context, opts domain.FindUser) ([]domain.User, error)
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

const userColumns = "id, name, age, password, phone_number, email, address, is_active, is_superuser, user_token, created_at"

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const query = `
		INSERT INTO users (id, name, age, password, phone_number, email, address, is_active, is_superuser, user_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Age,
		user.Password,
		user.PhoneNumber,
		user.Email,
		user.Address,
		user.IsActive,
		user.IsSuperuser,
		user.UserToken,
		user.CreatedAt,
	)
	if err != nil {
		return domain.User{}, newPersistenceError("create user", err)
	}
	return user, nil
}

func (r *PgUserRepository) FindByOptions(ctx context.Context, opts domain.FindUser) ([]domain.User, error) {
	query, args := buildFindQuery(opts)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, newPersistenceError("find users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, newPersistenceError("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, newPersistenceError("find users", err)
	}
	return users, nil
}

// buildFindQuery arma el SELECT con los filtros de igualdad presentes en opts.
// Sin filtros devuelve todos los usuarios, en orden estable.
func buildFindQuery(opts domain.FindUser) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opts.Name != nil {
		args = append(args, *opts.Name)
		conds = append(conds, fmt.Sprintf("name = $%d", len(args)))
	}
	if opts.Email != nil {
		args = append(args, *opts.Email)
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if opts.PhoneNumber != nil {
		args = append(args, *opts.PhoneNumber)
		conds = append(conds, fmt.Sprintf("phone_number = $%d", len(args)))
	}

	query := "SELECT " + userColumns + " FROM users"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at, id"
	return query, args
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Age,
		&u.Password,
		&u.PhoneNumber,
		&u.Email,
		&u.Address,
		&u.IsActive,
		&u.IsSuperuser,
		&u.UserToken,
		&u.CreatedAt,
	)
	return u, err
}
