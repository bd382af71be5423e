package postgres

import (
	"context"
	"fmt"

	"unit-service/internal/domain/accesslog"
)

type AccessLogRepository struct {
	db *DB
}

func NewAccessLogRepository(db *DB) *AccessLogRepository {
	return &AccessLogRepository{db: db}
}

// Create persists one authorization decision. Callers treat this as
// best-effort; the repository itself just reports what happened.
func (r *AccessLogRepository) Create(ctx context.Context, entry *accesslog.Entry) error {
	query := `
		INSERT INTO access_logs (id, endpoint, method, personal_key, accepted, message, service, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		entry.ID,
		entry.Endpoint,
		entry.Method,
		entry.PersonalKey,
		entry.Accepted,
		entry.Message,
		entry.Service,
		entry.CreatedAt,
	)

	if err != nil {
		return errFailedCreateAccessLog(err)
	}

	return nil
}

// List retrieves access log entries, newest first.
func (r *AccessLogRepository) List(ctx context.Context, filter accesslog.QueryFilter) ([]*accesslog.Entry, error) {
	query := `
		SELECT id, endpoint, method, personal_key, accepted, message, service, created_at
		FROM access_logs
		WHERE 1=1
	`
	args := []any{}
	argCount := 1

	if filter.PersonalKey != nil {
		query += fmt.Sprintf(" AND personal_key = $%d", argCount)
		args = append(args, filter.PersonalKey)
		argCount++
	}

	if filter.Accepted != nil {
		query += fmt.Sprintf(" AND accepted = $%d", argCount)
		args = append(args, *filter.Accepted)
		argCount++
	}

	if filter.StartTime != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", argCount)
		args = append(args, filter.StartTime)
		argCount++
	}

	if filter.EndTime != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", argCount)
		args = append(args, filter.EndTime)
		argCount++
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, filter.Limit)
		argCount++
	} else {
		query += fmt.Sprintf(" LIMIT %d", defaultAccessLogLimit)
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argCount)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errFailedListAccessLogs(err)
	}
	defer rows.Close()

	var entries []*accesslog.Entry
	for rows.Next() {
		entry := &accesslog.Entry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.Endpoint,
			&entry.Method,
			&entry.PersonalKey,
			&entry.Accepted,
			&entry.Message,
			&entry.Service,
			&entry.CreatedAt,
		); err != nil {
			return nil, errFailedScanAccessLog(err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateAccessLogs(err)
	}

	return entries, nil
}
