package repository

import (
	"context"
	"time"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"gorm.io/gorm"
)

// ReservationRepository defines the interface for reservation data access
type ReservationRepository interface {
	// FindForPeriod returns every reservation of the business whose stay
	// touches [start, end]: it checks in on or before end and checks out after start
	FindForPeriod(ctx context.Context, businessID uint, start, end time.Time) ([]models.Reservation, error)
	FindByID(ctx context.Context, businessID, id uint) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, reservation *models.Reservation) error
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) FindForPeriod(ctx context.Context, businessID uint, start, end time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND check_in_date <= ? AND check_out_date > ?", businessID, end, start).
		Order("check_in_date, id").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) FindByID(ctx context.Context, businessID, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateStatus persists the lifecycle and payment status of a reservation
func (r *reservationRepository) UpdateStatus(ctx context.Context, reservation *models.Reservation) error {
	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ? AND business_id = ?", reservation.ID, reservation.BusinessID).
		Updates(map[string]interface{}{
			"status":         reservation.Status,
			"payment_status": reservation.PaymentStatus,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
