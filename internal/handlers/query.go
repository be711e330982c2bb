package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/hotel-analytics-api/internal/middleware"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/sjperalta/hotel-analytics-api/internal/services"
)

// defaultPeriodDays is the span used when start_date/end_date are omitted
const defaultPeriodDays = 30

// now is replaced in tests
var now = time.Now

func today() time.Time {
	y, m, d := now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(c *gin.Context, key string, fallback time.Time) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	t, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato YYYY-MM-DD", errInvalidQuery, key)
	}
	return t, nil
}

// parseReportQuery reads start_date, end_date and granularity. Missing dates
// default to the last 30 days ending today.
func parseReportQuery(c *gin.Context) (services.ReportQuery, error) {
	end, err := parseDate(c, "end_date", today())
	if err != nil {
		return services.ReportQuery{}, err
	}
	start, err := parseDate(c, "start_date", end.AddDate(0, 0, -(defaultPeriodDays - 1)))
	if err != nil {
		return services.ReportQuery{}, err
	}
	return services.ReportQuery{
		BusinessID:  middleware.GetBusinessID(c),
		Period:      models.ReportPeriod{Start: start, End: end},
		Granularity: c.Query("granularity"),
	}, nil
}

// parseForecastQuery reads as_of (default today) and horizon (0 = configured default)
func parseForecastQuery(c *gin.Context) (time.Time, int, error) {
	asOf, err := parseDate(c, "as_of", today())
	if err != nil {
		return time.Time{}, 0, err
	}
	horizon := 0
	if raw := c.Query("horizon"); raw != "" {
		horizon, err = strconv.Atoi(raw)
		if err != nil || horizon < 1 {
			return time.Time{}, 0, fmt.Errorf("%w: horizon debe ser un entero positivo", errInvalidQuery)
		}
	}
	return asOf, horizon, nil
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s inválido", errInvalidQuery, name)
	}
	return uint(v), nil
}
