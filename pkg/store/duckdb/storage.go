package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ChartsTableSchema = `
	CREATE TABLE IF NOT EXISTS charts (
		id VARCHAR PRIMARY KEY,
		name VARCHAR,
		birth_date DATE NOT NULL,
		birth_time VARCHAR NULL,
		latitude DOUBLE NULL,
		longitude DOUBLE NULL,
		timezone VARCHAR,
		city VARCHAR,
		country VARCHAR,
		chart_data JSON,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const ReportsTableSchema = `
	CREATE TABLE IF NOT EXISTS reports (
		id VARCHAR PRIMARY KEY,
		chart_id VARCHAR NOT NULL,
		report_type VARCHAR NOT NULL,
		title VARCHAR,
		content VARCHAR,
		is_premium BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	ChartsTableSchema,
	ReportsTableSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) the database file and makes sure the schema exists
// on every new connection. Use ":memory:" for a throwaway database.
func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
