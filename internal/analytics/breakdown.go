package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// UnknownRoomType groups reservations whose room is missing from the inventory
const UnknownRoomType = "unknown"

type group struct {
	bookings   int
	roomNights int
	revenue    decimal.Decimal
}

// groupPaid sums paid reservations checking in during the period by key
func groupPaid(reservations []models.Reservation, period models.ReportPeriod, key func(r *models.Reservation) string) map[string]*group {
	groups := make(map[string]*group)
	for i := range reservations {
		r := &reservations[i]
		if !r.IsPaid() || !checksInDuring(r, period) {
			continue
		}
		k := key(r)
		g, ok := groups[k]
		if !ok {
			g = &group{revenue: decimal.Zero}
			groups[k] = g
		}
		g.bookings++
		g.roomNights += Nights(r)
		g.revenue = g.revenue.Add(r.TotalAmount)
	}
	return groups
}

func newRow(key string, g *group) models.BreakdownRow {
	revenue := g.revenue.InexactFloat64()
	return models.BreakdownRow{
		Key:         key,
		Bookings:    g.bookings,
		Revenue:     revenue,
		RoomNights:  g.roomNights,
		AverageRate: ratio(revenue, float64(g.bookings)),
	}
}

// sortRows orders by revenue descending, then key
func sortRows(rows []models.BreakdownRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].Key < rows[j].Key
	})
}

// BreakdownByRoomType groups paid reservations by the room type of their room.
// Occupancy is measured against the rooms of that type only.
func BreakdownByRoomType(reservations []models.Reservation, rooms []models.Room, period models.ReportPeriod) ([]models.BreakdownRow, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	if err := ValidateReservations(reservations); err != nil {
		return nil, err
	}

	roomTypes := make(map[uint]string, len(rooms))
	inventory := make(map[string]int)
	for _, room := range rooms {
		roomTypes[room.ID] = room.RoomType
		inventory[room.RoomType]++
	}

	groups := groupPaid(reservations, period, func(r *models.Reservation) string {
		if roomType, ok := roomTypes[r.RoomID]; ok {
			return roomType
		}
		return UnknownRoomType
	})

	nights := PeriodNights(period)
	rows := make([]models.BreakdownRow, 0, len(groups))
	for key, g := range groups {
		row := newRow(key, g)
		row.OccupancyRate = percentage(g.roomNights, inventory[key]*nights)
		rows = append(rows, row)
	}
	sortRows(rows)
	return rows, nil
}

// BreakdownByChannel groups paid reservations by booking source. Channels
// carry no inventory of their own, so OccupancyRate stays 0.
func BreakdownByChannel(reservations []models.Reservation, period models.ReportPeriod) ([]models.BreakdownRow, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	if err := ValidateReservations(reservations); err != nil {
		return nil, err
	}

	groups := groupPaid(reservations, period, func(r *models.Reservation) string {
		return r.EffectiveSource()
	})

	rows := make([]models.BreakdownRow, 0, len(groups))
	for key, g := range groups {
		rows = append(rows, newRow(key, g))
	}
	sortRows(rows)
	return rows, nil
}

// WithRoomTypeCatalog adds a zero row for every inventory room type missing
// from rows, for stable table rendering
func WithRoomTypeCatalog(rows []models.BreakdownRow, rooms []models.Room) []models.BreakdownRow {
	present := make(map[string]bool, len(rows))
	out := make([]models.BreakdownRow, 0, len(rows))
	for _, row := range rows {
		present[row.Key] = true
		out = append(out, row)
	}
	for _, room := range rooms {
		if present[room.RoomType] {
			continue
		}
		present[room.RoomType] = true
		out = append(out, models.BreakdownRow{Key: room.RoomType})
	}
	sortRows(out)
	return out
}
