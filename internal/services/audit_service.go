package services

import (
	"context"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/sjperalta/hotel-analytics-api/internal/repository"
	"github.com/sjperalta/hotel-analytics-api/pkg/logger"
)

// Actor identifies who requested a change
type Actor struct {
	UserID    uint
	IPAddress string
	UserAgent string
	Note      string
}

type AuditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Log records an audit entry. A failed write is logged and never fails the
// change it describes.
func (s *AuditService) Log(ctx context.Context, businessID uint, actor Actor, action, entity string, entityID uint) {
	if s == nil || s.repo == nil {
		return
	}
	entry := &models.AuditLog{
		BusinessID: businessID,
		UserID:     actor.UserID,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Details:    actor.Note,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		logger.FromContext(ctx).Error("failed to write audit log", "action", action, "entity_id", entityID, "error", err)
	}
}

// List returns the business's audit entries, newest first
func (s *AuditService) List(ctx context.Context, businessID uint, limit, offset int) ([]models.AuditLog, int64, error) {
	logs, total, err := s.repo.ListByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, 0, &DataUnavailableError{Resource: "audit_logs", Err: err}
	}
	return logs, total, nil
}
