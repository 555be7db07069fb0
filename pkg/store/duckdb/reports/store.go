package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/astro-atlas/pkg/models/store"
	"github.com/de-tools/astro-atlas/pkg/store/duckdb"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// Store keeps charts and the report requests made against them. Rendered
// reports are not stored; they are regenerated from the chart on read.
type Store interface {
	SaveChart(ctx context.Context, chart *store.Chart) error
	GetChart(ctx context.Context, id string) (*store.Chart, error)
	SaveReport(ctx context.Context, report *store.Report) error
	// SaveChartReport saves a chart and a report against it atomically.
	SaveChartReport(ctx context.Context, chart *store.Chart, report *store.Report) error
	GetReport(ctx context.Context, id string) (*store.Report, error)
	ListReports(ctx context.Context, chartID string) ([]*store.Report, error)
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type reportStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// conn returns the transaction carried by ctx, if any.
func (s *reportStore) conn(ctx context.Context) querier {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx
	}
	return s.db
}

// SaveChart inserts or replaces a chart. A missing ID is generated and
// written back to chart.
func (s *reportStore) SaveChart(ctx context.Context, chart *store.Chart) error {
	if chart.ID == "" {
		chart.ID = uuid.NewString()
	}
	if chart.CreatedAt.IsZero() {
		chart.CreatedAt = s.now()
	}

	query := `
		INSERT OR REPLACE INTO charts (
			id, name, birth_date, birth_time, latitude, longitude,
			timezone, city, country, chart_data, created_at
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	// DuckDB rejects an empty string as JSON; store NULL instead.
	var chartData any
	if len(chart.ChartData) > 0 {
		chartData = string(chart.ChartData)
	}

	_, err := s.conn(ctx).ExecContext(ctx, query,
		chart.ID,
		chart.Name,
		chart.BirthDate,
		chart.BirthTime,
		chart.Latitude,
		chart.Longitude,
		chart.Timezone,
		chart.City,
		chart.Country,
		chartData,
		chart.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert chart: %w", err)
	}
	return nil
}

func (s *reportStore) SaveChartReport(ctx context.Context, chart *store.Chart, report *store.Report) error {
	return duckdb.InTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.SaveChart(ctx, chart); err != nil {
			return err
		}
		report.ChartID = chart.ID
		return s.SaveReport(ctx, report)
	})
}

func (s *reportStore) GetChart(ctx context.Context, id string) (*store.Chart, error) {
	query := `
		SELECT id, name, birth_date, birth_time, latitude, longitude,
			timezone, city, country, CAST(chart_data AS VARCHAR), created_at
		FROM charts
		WHERE id = ?`

	var (
		chart     store.Chart
		name      sql.NullString
		birthTime sql.NullString
		lat, lon  sql.NullFloat64
		tz, city  sql.NullString
		country   sql.NullString
		data      sql.NullString
	)
	err := s.conn(ctx).QueryRowContext(ctx, query, id).Scan(
		&chart.ID,
		&name,
		&chart.BirthDate,
		&birthTime,
		&lat,
		&lon,
		&tz,
		&city,
		&country,
		&data,
		&chart.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("chart %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query chart: %w", err)
	}

	chart.Name = name.String
	chart.Timezone = tz.String
	chart.City = city.String
	chart.Country = country.String
	if birthTime.Valid {
		chart.BirthTime = &birthTime.String
	}
	if lat.Valid {
		chart.Latitude = &lat.Float64
	}
	if lon.Valid {
		chart.Longitude = &lon.Float64
	}
	if data.Valid {
		chart.ChartData = []byte(data.String)
	}
	return &chart, nil
}

func (s *reportStore) SaveReport(ctx context.Context, report *store.Report) error {
	if report.ChartID == "" {
		return fmt.Errorf("report has no chart")
	}
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = s.now()
	}

	query := `
		INSERT OR REPLACE INTO reports (
			id, chart_id, report_type, title, content, is_premium, created_at
		) VALUES (
			?, ?, ?, ?, ?, ?, ?
		)`

	_, err := s.conn(ctx).ExecContext(ctx, query,
		report.ID,
		report.ChartID,
		report.ReportType,
		report.Title,
		report.Content,
		report.IsPremium,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

const reportColumns = `id, chart_id, report_type, title, content, is_premium, created_at`

func (s *reportStore) GetReport(ctx context.Context, id string) (*store.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = ?`

	report, err := scanReport(s.conn(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query report: %w", err)
	}
	return report, nil
}

// ListReports returns the reports of a chart, newest first.
func (s *reportStore) ListReports(ctx context.Context, chartID string) ([]*store.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE chart_id = ? ORDER BY created_at DESC`

	rows, err := s.conn(ctx).QueryContext(ctx, query, chartID)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var out []*store.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*store.Report, error) {
	var (
		r       store.Report
		title   sql.NullString
		content sql.NullString
	)
	if err := row.Scan(&r.ID, &r.ChartID, &r.ReportType, &title, &content, &r.IsPremium, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.Title = title.String
	r.Content = content.String
	return &r, nil
}
