package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"unit-service/internal/domain/unit"
	apperrors "unit-service/pkg/errors"
)

type UnitRepository struct {
	db *DB
}

func NewUnitRepository(db *DB) *UnitRepository {
	return &UnitRepository{db: db}
}

func (r *UnitRepository) List(ctx context.Context) ([]*unit.Unit, error) {
	query := `
		SELECT id, name, block, number, created_at, updated_at
		FROM units
		ORDER BY block, number
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errFailedListUnits(err)
	}
	defer rows.Close()

	var units []*unit.Unit
	for rows.Next() {
		u := &unit.Unit{}
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Block,
			&u.Number,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, errFailedScanUnit(err)
		}
		units = append(units, u)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateUnits(err)
	}

	return units, nil
}

func (r *UnitRepository) GetByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error) {
	query := `
		SELECT id, name, block, number, created_at, updated_at
		FROM units
		WHERE id = $1
	`

	u := &unit.Unit{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Block,
		&u.Number,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errUnitNotFound)
		}
		return nil, errFailedGetUnit(err)
	}

	return u, nil
}
