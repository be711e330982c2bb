package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func period(start, end string) models.ReportPeriod {
	return models.ReportPeriod{Start: date(start), End: date(end)}
}

func room(id uint, roomType string) models.Room {
	return models.Room{ID: id, RoomType: roomType, PricePerNight: decimal.NewFromInt(100), Status: models.RoomStatusAvailable}
}

type reservationOption func(*models.Reservation)

func withStatus(status string) reservationOption {
	return func(r *models.Reservation) { r.Status = status }
}

func withPayment(status string) reservationOption {
	return func(r *models.Reservation) { r.PaymentStatus = status }
}

func withSource(source string) reservationOption {
	return func(r *models.Reservation) { r.Source = &source }
}

// reservation builds a confirmed, paid stay
func reservation(id, roomID uint, checkIn, checkOut string, amount int64, opts ...reservationOption) models.Reservation {
	r := models.Reservation{
		ID:            id,
		RoomID:        roomID,
		CheckInDate:   date(checkIn),
		CheckOutDate:  date(checkOut),
		TotalAmount:   decimal.NewFromInt(amount),
		Status:        models.ReservationStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
		GuestCount:    2,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
