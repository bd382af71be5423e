package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"unit-service/internal/authz"
	"unit-service/internal/domain/user"
	apperrors "unit-service/pkg/errors"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

const userWithRoleQuery = `
	SELECT u.id, u.personal_key, u.name, u.email, u.accepted, u.role_id, u.unit_id,
	       u.created_at, u.updated_at,
	       r.id, r.name, r.allowed_actions, r.created_at, r.updated_at
	FROM users u
	JOIN roles r ON r.id = u.role_id
	WHERE u.personal_key = $1
`

// FindWithRole is the directory lookup used by the request guard: the user
// record joined with its role and allowed actions, keyed by personal key.
func (r *UserRepository) FindWithRole(ctx context.Context, personalKey uuid.UUID) (*user.UserWithRole, error) {
	u := &user.UserWithRole{}
	err := r.db.Pool.QueryRow(ctx, userWithRoleQuery, personalKey).Scan(
		&u.ID,
		&u.PersonalKey,
		&u.Name,
		&u.Email,
		&u.Accepted,
		&u.RoleID,
		&u.UnitID,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.Role.ID,
		&u.Role.Name,
		&u.Role.AllowedActions,
		&u.Role.CreatedAt,
		&u.Role.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errUserNotFound)
		}
		return nil, errFailedGetUser(err)
	}

	return u, nil
}

// GetByPersonalKey serves TokenToUser, which reads the canonical record
// straight from the primary store. Same query as the directory lookup;
// kept as a separate method so the two call sites stay independent.
func (r *UserRepository) GetByPersonalKey(ctx context.Context, personalKey uuid.UUID) (*user.UserWithRole, error) {
	return r.FindWithRole(ctx, personalKey)
}

// ListScoped lists users narrowed by the caller's scope filter: always by
// unit, and additionally by role unless the filter is privileged.
func (r *UserRepository) ListScoped(ctx context.Context, filter authz.ScopeFilter) ([]*user.User, error) {
	query := `
		SELECT id, personal_key, name, email, accepted, role_id, unit_id, created_at, updated_at
		FROM users
		WHERE unit_id = $1
	`
	args := []any{filter.UnitID}

	if filter.RoleID != nil {
		query += " AND role_id = $2"
		args = append(args, *filter.RoleID)
	}

	query += " ORDER BY name"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errFailedListUsers(err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u := &user.User{}
		if err := rows.Scan(
			&u.ID,
			&u.PersonalKey,
			&u.Name,
			&u.Email,
			&u.Accepted,
			&u.RoleID,
			&u.UnitID,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, errFailedScanUser(err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateUsers(err)
	}

	return users, nil
}
