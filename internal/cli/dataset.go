package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// Dataset is the offline input of the report command:
// {"business_id": 1, "rooms": [...], "reservations": [...]}
type Dataset struct {
	BusinessID   uint                 `json:"business_id"`
	Rooms        []datasetRoom        `json:"rooms"`
	Reservations []datasetReservation `json:"reservations"`
}

type datasetRoom struct {
	ID            uint            `json:"id"`
	BusinessID    uint            `json:"business_id"`
	RoomNumber    string          `json:"room_number"`
	RoomType      string          `json:"room_type"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
}

type datasetReservation struct {
	ID            uint            `json:"id"`
	BusinessID    uint            `json:"business_id"`
	RoomID        uint            `json:"room_id"`
	GuestName     string          `json:"guest_name"`
	CheckInDate   string          `json:"check_in_date"`
	CheckOutDate  string          `json:"check_out_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	Source        *string         `json:"source"`
}

// LoadDataset reads a dataset file. Records without a business_id belong to
// the dataset's business, or to fallbackBusiness when the file names none.
func LoadDataset(path string, fallbackBusiness uint) ([]models.Room, []models.Reservation, uint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("read dataset: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, nil, 0, fmt.Errorf("parse dataset: %w", err)
	}

	businessID := ds.BusinessID
	if businessID == 0 {
		businessID = fallbackBusiness
	}
	scope := func(id uint) uint {
		if id == 0 {
			return businessID
		}
		return id
	}

	rooms := make([]models.Room, len(ds.Rooms))
	for i, r := range ds.Rooms {
		rooms[i] = models.Room{
			ID:            r.ID,
			BusinessID:    scope(r.BusinessID),
			RoomNumber:    r.RoomNumber,
			RoomType:      r.RoomType,
			PricePerNight: r.PricePerNight,
			Status:        models.RoomStatusAvailable,
		}
	}

	reservations := make([]models.Reservation, len(ds.Reservations))
	for i, r := range ds.Reservations {
		checkIn, err := parseDay(r.CheckInDate)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("reservation %d: check_in_date: %w", r.ID, err)
		}
		checkOut, err := parseDay(r.CheckOutDate)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("reservation %d: check_out_date: %w", r.ID, err)
		}
		status := r.Status
		if status == "" {
			status = models.ReservationStatusPending
		}
		paymentStatus := r.PaymentStatus
		if paymentStatus == "" {
			paymentStatus = models.PaymentStatusPending
		}
		reservations[i] = models.Reservation{
			ID:            r.ID,
			BusinessID:    scope(r.BusinessID),
			RoomID:        r.RoomID,
			GuestName:     r.GuestName,
			CheckInDate:   checkIn,
			CheckOutDate:  checkOut,
			TotalAmount:   r.TotalAmount,
			Status:        status,
			PaymentStatus: paymentStatus,
			Source:        r.Source,
		}
	}

	return rooms, reservations, businessID, nil
}

// parseDay accepts YYYY-MM-DD or RFC 3339 and truncates to the UTC calendar day
func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
