package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sjperalta/hotel-analytics-api/internal/middleware"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `{
  "rooms": [
    {"id": 1, "room_number": "101", "room_type": "A", "price_per_night": 100},
    {"id": 2, "room_number": "102", "room_type": "A", "price_per_night": "100.00"}
  ],
  "reservations": [
    {"id": 1, "room_id": 1, "check_in_date": "2024-01-01", "check_out_date": "2024-01-03",
     "total_amount": 200, "status": "confirmed", "payment_status": "paid", "source": null},
    {"id": 2, "room_id": 2, "check_in_date": "2024-01-02T00:00:00Z", "check_out_date": "2024-01-03",
     "total_amount": 90, "status": "cancelled", "payment_status": "cancelled", "source": "booking"}
  ]
}`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoadDataset(t *testing.T) {
	rooms, reservations, businessID, err := LoadDataset(writeDataset(t, sampleDataset), 4)
	require.NoError(t, err)

	assert.Equal(t, uint(4), businessID)
	require.Len(t, rooms, 2)
	assert.Equal(t, uint(4), rooms[1].BusinessID)
	assert.Equal(t, "100", rooms[1].PricePerNight.String())

	require.Len(t, reservations, 2)
	assert.Equal(t, "2024-01-02", reservations[1].CheckInDate.Format(models.DateLayout))
	assert.Equal(t, "booking", reservations[1].EffectiveSource())
	assert.Equal(t, models.DefaultSource, reservations[0].EffectiveSource())
}

func TestLoadDataset_BadDate(t *testing.T) {
	_, _, _, err := LoadDataset(writeDataset(t, `{"reservations": [{"id": 9, "check_in_date": "01/02/2024"}]}`), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reservation 9")
}

func TestReportKPIs(t *testing.T) {
	out, err := execute(t, "report", "--data", writeDataset(t, sampleDataset), "--start", "2024-01-01", "--end", "2024-01-03")
	require.NoError(t, err)

	var kpis models.KpiSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &kpis))
	assert.Equal(t, 50.0, kpis.OccupancyRate)
	assert.Equal(t, 100.0, kpis.ADR)
	assert.Equal(t, 50.0, kpis.RevPAR)
	assert.Equal(t, 50.0, kpis.CancellationRate)
}

func TestReportChannelsCSV(t *testing.T) {
	out, err := execute(t, "report", "--data", writeDataset(t, sampleDataset),
		"--start", "2024-01-01", "--end", "2024-01-03", "--report", "channels", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "key,bookings,revenue,room_nights,average_rate,occupancy_rate", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "direct,1,200.00,2,200.00"))
}

func TestReportFileOutput(t *testing.T) {
	target := filepath.Join(t.TempDir(), "kpis.xlsx")
	_, err := execute(t, "report", "--data", writeDataset(t, sampleDataset),
		"--start", "2024-01-01", "--end", "2024-01-31", "--format", "xlsx", "--out", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "xlsx is a zip container")
}

func TestReportErrors(t *testing.T) {
	data := writeDataset(t, sampleDataset)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown report", []string{"--report", "audit"}, "unknown report"},
		{"binary without out", []string{"--format", "pdf"}, "--out is required"},
		{"dashboard as csv", []string{"--report", "dashboard", "--format", "csv"}, "only supports json"},
		{"bad granularity", []string{"--report", "timeseries", "--granularity", "quarter"}, "granularity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"report", "--data", data, "--start", "2024-01-01", "--end", "2024-01-31"}, tt.args...)
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTokenCommand(t *testing.T) {
	out, err := execute(t, "token", "--secret", "s3cret", "--business", "7", "--user", "3", "--role", "manager")
	require.NoError(t, err)

	claims := &middleware.Claims{}
	_, err = jwt.ParseWithClaims(strings.TrimSpace(out), claims, func(*jwt.Token) (interface{}, error) {
		return []byte("s3cret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.BusinessID)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, middleware.RoleManager, claims.Role)

	_, err = execute(t, "token", "--secret", "s3cret", "--business", "7", "--role", "owner")
	assert.Error(t, err)
}
