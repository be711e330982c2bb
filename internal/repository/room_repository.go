package repository

import (
	"context"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"gorm.io/gorm"
)

// RoomRepository defines the interface for room inventory access
type RoomRepository interface {
	FindByBusiness(ctx context.Context, businessID uint) ([]models.Room, error)
}

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// FindByBusiness returns the whole inventory; room status does not remove a room from it
func (r *roomRepository) FindByBusiness(ctx context.Context, businessID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("room_number").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// BusinessRepository defines the interface for tenant access
type BusinessRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Business, error)
	FindActive(ctx context.Context) ([]models.Business, error)
}

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) FindByID(ctx context.Context, id uint) (*models.Business, error) {
	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindActive(ctx context.Context) ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id").
		Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	return businesses, nil
}
