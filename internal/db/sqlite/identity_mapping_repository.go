package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"meal_poll_bot/internal/db/models"
	"meal_poll_bot/internal/db/repositories"
)

var errMappingNotFound = errors.New("identity mapping not found")

type identityMappingRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewIdentityMappingRepository returns an IdentityMappingRepository backed by SQLite.
func NewIdentityMappingRepository(db *sql.DB) repositories.IdentityMappingRepository {
	return &identityMappingRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *identityMappingRepository) Save(ctx context.Context, request *models.IdentityMapping) (*models.IdentityMapping, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO identity_mappings (ledger_member_id, chat_user_id, comment, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (ledger_member_id) DO UPDATE
		SET chat_user_id = excluded.chat_user_id, comment = excluded.comment`,
		request.LedgerMemberID,
		request.ChatUserID,
		nullString(request.Comment),
		formatTime(r.now()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save identity mapping: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT ledger_member_id, chat_user_id, comment, created_at
		FROM identity_mappings WHERE ledger_member_id = ?`,
		request.LedgerMemberID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mappings, err := scanMappings(rows)
	if err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		return nil, errMappingNotFound
	}

	return mappings[0], nil
}

func (r *identityMappingRepository) GetMany(ctx context.Context) ([]*models.IdentityMapping, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ledger_member_id, chat_user_id, comment, created_at
		FROM identity_mappings ORDER BY ledger_member_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query identity mappings: %w", err)
	}
	defer rows.Close()

	return scanMappings(rows)
}

func scanMappings(rows *sql.Rows) ([]*models.IdentityMapping, error) {
	mappings := make([]*models.IdentityMapping, 0)

	for rows.Next() {
		var (
			mapping   models.IdentityMapping
			comment   sql.NullString
			createdAt string
		)

		if err := rows.Scan(&mapping.LedgerMemberID, &mapping.ChatUserID, &comment, &createdAt); err != nil {
			return nil, err
		}

		mapping.Comment = comment.String

		var err error
		if mapping.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}

		mappings = append(mappings, &mapping)
	}

	return mappings, rows.Err()
}
