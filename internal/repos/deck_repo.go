package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sprintslides/sprintslides-backend/internal/platform/logger"
	"github.com/sprintslides/sprintslides-backend/internal/types"
)

type DeckRepo interface {
	Create(ctx context.Context, tx *gorm.DB, record *types.DeckRecord) (*types.DeckRecord, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DeckRecord, error)
}

type deckRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDeckRepo(db *gorm.DB, baseLog *logger.Logger) DeckRepo {
	return &deckRepo{db: db, log: baseLog.With("repo", "DeckRepo")}
}

func (r *deckRepo) Create(ctx context.Context, tx *gorm.DB, record *types.DeckRecord) (*types.DeckRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := transaction.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *deckRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DeckRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var record types.DeckRecord
	if err := transaction.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
