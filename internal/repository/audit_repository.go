package repository

import (
	"context"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"gorm.io/gorm"
)

// AuditRepository stores the audit trail of reservation transitions
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	ListByBusiness(ctx context.Context, businessID uint, limit, offset int) ([]models.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) ListByBusiness(ctx context.Context, businessID uint, limit, offset int) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	base := r.db.WithContext(ctx).Model(&models.AuditLog{}).Where("business_id = ?", businessID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at desc, id desc").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, total, err
}
