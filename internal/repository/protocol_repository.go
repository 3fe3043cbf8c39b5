package repository

import (
	"context"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProtocolRepository interface {
	Create(ctx context.Context, record *domain.ProtocolRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProtocolRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ProtocolFilter) ([]domain.ProtocolRecord, error)
	UpdatePayload(ctx context.Context, id uuid.UUID, payload []byte) error
}

type protocolRepository struct {
	db *gorm.DB
}

func NewProtocolRepository(db *gorm.DB) ProtocolRepository {
	return &protocolRepository{db: db}
}

func (r *protocolRepository) Create(ctx context.Context, record *domain.ProtocolRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *protocolRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProtocolRecord, error) {
	var record domain.ProtocolRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *protocolRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ProtocolFilter) ([]domain.ProtocolRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records created before the cursor, or
			// created at the same instant but with a smaller id.
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.ProtocolRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *protocolRepository) UpdatePayload(ctx context.Context, id uuid.UUID, payload []byte) error {
	result := r.db.WithContext(ctx).
		Model(&domain.ProtocolRecord{}).
		Where("id = ?", id).
		Update("payload", payload)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
