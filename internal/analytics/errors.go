package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// Engine errors
var (
	ErrDataIntegrity      = errors.New("reservation data integrity violation")
	ErrInvalidPeriod      = errors.New("period end must not be before period start")
	ErrPeriodTooLong      = fmt.Errorf("period must not span more than %d days", MaxPeriodDays)
	ErrInvalidGranularity = errors.New("granularity must be one of day, week, month")
	ErrInvalidHorizon     = errors.New("forecast history and horizon must be positive")
	ErrInvalidRoomCount   = errors.New("room count must not be negative")
)

// DataIntegrityError reports a reservation whose check-out is not after its check-in
type DataIntegrityError struct {
	ReservationID uint
	CheckIn       time.Time
	CheckOut      time.Time
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("reservation %d: check-out %s is not after check-in %s",
		e.ReservationID, e.CheckOut.Format(models.DateLayout), e.CheckIn.Format(models.DateLayout))
}

// Is lets errors.Is match ErrDataIntegrity
func (e *DataIntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}
