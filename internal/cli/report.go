package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sjperalta/hotel-analytics-api/internal/analytics"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/sjperalta/hotel-analytics-api/internal/repository"
	"github.com/sjperalta/hotel-analytics-api/internal/services"
	"github.com/spf13/cobra"
)

// reportNames maps the CLI report names to the exporter's
var reportNames = map[string]string{
	"kpis":       analytics.ReportKPIs,
	"occupancy":  analytics.ReportOccupancy,
	"timeseries": analytics.ReportTimeSeries,
	"room_types": analytics.ReportRoomTypes,
	"channels":   analytics.ReportChannels,
	"compare":    analytics.ReportComparison,
	"forecast":   analytics.ReportForecast,
	"dashboard":  "",
}

type ReportCmd struct {
	dataPath     string
	businessID   uint
	start        string
	end          string
	granularity  string
	report       string
	format       string
	out          string
	asOf         string
	horizon      int
	historyDays  int
	includeEmpty bool
}

func NewReportCmd() *cobra.Command {
	rc := &ReportCmd{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute a report over a JSON dataset of rooms and reservations",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.dataPath, "data", "", "Path to the dataset JSON file")
	cmd.Flags().UintVar(&rc.businessID, "business", 1, "Business ID for records without one")
	cmd.Flags().StringVar(&rc.start, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.end, "end", "", "Period end (YYYY-MM-DD), inclusive")
	cmd.Flags().StringVar(&rc.granularity, "granularity", string(analytics.GranularityDay), "Time series bucket: day, week or month")
	cmd.Flags().StringVar(&rc.report, "report", "kpis", "kpis, occupancy, timeseries, room_types, channels, compare, forecast or dashboard")
	cmd.Flags().StringVar(&rc.format, "format", services.FormatJSON, "json, csv, xlsx or pdf")
	cmd.Flags().StringVarP(&rc.out, "out", "o", "", "Write to file instead of stdout (required for xlsx and pdf)")
	cmd.Flags().StringVar(&rc.asOf, "as-of", "", "Forecast start (YYYY-MM-DD), default the day after --end")
	cmd.Flags().IntVar(&rc.horizon, "horizon", 0, "Forecast days (0 uses the default)")
	cmd.Flags().IntVar(&rc.historyDays, "history-days", 90, "Forecast history window in days")
	cmd.Flags().BoolVar(&rc.includeEmpty, "include-empty", false, "Include room types without reservations")

	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	exportName, ok := reportNames[rc.report]
	if !ok {
		return fmt.Errorf("unknown report %q", rc.report)
	}

	start, err := parseDay(rc.start)
	if err != nil {
		return fmt.Errorf("--start: %w", err)
	}
	end, err := parseDay(rc.end)
	if err != nil {
		return fmt.Errorf("--end: %w", err)
	}
	asOf := end.AddDate(0, 0, 1)
	if rc.asOf != "" {
		if asOf, err = parseDay(rc.asOf); err != nil {
			return fmt.Errorf("--as-of: %w", err)
		}
	}

	rooms, reservations, businessID, err := LoadDataset(rc.dataPath, rc.businessID)
	if err != nil {
		return err
	}

	store := repository.NewMemoryStore(rooms, reservations)
	forecast := analytics.DefaultForecastOptions()
	forecast.HistoryDays = rc.historyDays
	analyticsSvc := services.NewAnalyticsService(store, store, forecast, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	q := services.ReportQuery{
		BusinessID:  businessID,
		Period:      models.ReportPeriod{Start: start, End: end},
		Granularity: rc.granularity,
	}

	var data []byte
	if rc.format == services.FormatJSON {
		result, err := rc.compute(ctx, analyticsSvc, q, asOf)
		if err != nil {
			return err
		}
		if data, err = json.MarshalIndent(result, "", "  "); err != nil {
			return err
		}
		data = append(data, '\n')
	} else {
		if exportName == "" {
			return fmt.Errorf("report %q only supports json output", rc.report)
		}
		if (rc.format == services.FormatXLSX || rc.format == services.FormatPDF) && rc.out == "" {
			return fmt.Errorf("--out is required for %s output", rc.format)
		}
		table, err := analyticsSvc.Report(ctx, exportName, q, asOf, rc.horizon)
		if err != nil {
			return err
		}
		exporter := services.NewExportService(analyticsSvc, nil, nil)
		if data, err = exporter.Render(table, rc.format); err != nil {
			return err
		}
	}

	if rc.out != "" {
		return os.WriteFile(rc.out, data, 0o644)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func (rc *ReportCmd) compute(ctx context.Context, svc *services.AnalyticsService, q services.ReportQuery, asOf time.Time) (any, error) {
	switch rc.report {
	case "kpis":
		return svc.KPIs(ctx, q)
	case "occupancy":
		return svc.Occupancy(ctx, q)
	case "timeseries":
		return svc.TimeSeries(ctx, q)
	case "room_types":
		return svc.RoomTypeBreakdown(ctx, q, rc.includeEmpty)
	case "channels":
		return svc.ChannelBreakdown(ctx, q)
	case "compare":
		return svc.Compare(ctx, q)
	case "forecast":
		return svc.Forecast(ctx, q.BusinessID, asOf, rc.horizon)
	default:
		return svc.Dashboard(ctx, q)
	}
}
