package repositories

import (
	"context"

	"meal_poll_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type identityMappingRepository struct {
	repository
}

type IdentityMappingRepository interface {
	// Save inserts the mapping or replaces the chat user of an existing one.
	Save(ctx context.Context, request *models.IdentityMapping) (*models.IdentityMapping, error)
	GetMany(ctx context.Context) ([]*models.IdentityMapping, error)
}

func NewIdentityMappingRepository(db *pg.DB) IdentityMappingRepository {
	return &identityMappingRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *identityMappingRepository) Save(ctx context.Context, request *models.IdentityMapping) (*models.IdentityMapping, error) {
	_, err := r.db.ModelContext(ctx, request).
		OnConflict("(ledger_member_id) DO UPDATE").
		Set("chat_user_id = EXCLUDED.chat_user_id").
		Set("comment = EXCLUDED.comment").
		Insert()
	if err != nil {
		return nil, err
	}

	mapping := &models.IdentityMapping{}

	err = r.db.ModelContext(ctx, mapping).
		Where("ledger_member_id = ?", request.LedgerMemberID).
		Select()

	return mapping, err
}

func (r *identityMappingRepository) GetMany(ctx context.Context) ([]*models.IdentityMapping, error) {
	mappings := make([]*models.IdentityMapping, 0)

	err := r.db.ModelContext(ctx, &mappings).
		OrderExpr("ledger_member_id ASC").
		Select()

	return mappings, err
}
