package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS analyses (
	id          TEXT PRIMARY KEY,
	latitude    REAL NOT NULL,
	longitude   REAL NOT NULL,
	radius_km   REAL NOT NULL,
	region      TEXT NOT NULL,
	provenance  TEXT NOT NULL,
	total_score REAL NOT NULL,
	tier        TEXT NOT NULL,
	result      TEXT NOT NULL,
	elapsed_s   REAL NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_analyses_region ON analyses(region);
CREATE INDEX IF NOT EXISTS idx_analyses_tier ON analyses(tier);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveAnalysis(ctx context.Context, result *model.AnalysisResult) (*AnalysisRecord, error) {
	rec, resultJSON, err := newRecord(result)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, latitude, longitude, radius_km, region, provenance, total_score, tier, result, elapsed_s, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Latitude, rec.Longitude, rec.RadiusKM, rec.Region, rec.Provenance,
		rec.TotalScore, string(rec.Tier), string(resultJSON), rec.ElapsedSeconds, rec.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert analysis")
	}
	return rec, nil
}

func (s *SQLiteStore) GetAnalysis(ctx context.Context, id string) (*AnalysisRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, latitude, longitude, radius_km, region, provenance, total_score, tier, result, elapsed_s, created_at
		 FROM analyses WHERE id = ?`,
		id,
	)

	var rec AnalysisRecord
	var resultJSON string
	err := row.Scan(&rec.ID, &rec.Latitude, &rec.Longitude, &rec.RadiusKM, &rec.Region,
		&rec.Provenance, &rec.TotalScore, &rec.Tier, &resultJSON, &rec.ElapsedSeconds, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Errorf("analysis not found: %s", id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan analysis")
	}
	rec.Result = &model.AnalysisResult{}
	if err := json.Unmarshal([]byte(resultJSON), rec.Result); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal result")
	}
	return &rec, nil
}

func (s *SQLiteStore) ListAnalyses(ctx context.Context, filter AnalysisFilter) ([]AnalysisRecord, error) {
	query := `SELECT id, latitude, longitude, radius_km, region, provenance, total_score, tier, elapsed_s, created_at
	          FROM analyses WHERE 1=1`
	var args []any

	if filter.Region != "" {
		query += ` AND region = ?`
		args = append(args, filter.Region)
	}
	if filter.Tier != "" {
		query += ` AND tier = ?`
		args = append(args, string(filter.Tier))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list analyses")
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.Latitude, &rec.Longitude, &rec.RadiusKM, &rec.Region,
			&rec.Provenance, &rec.TotalScore, &rec.Tier, &rec.ElapsedSeconds, &rec.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan analysis")
		}
		records = append(records, rec)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: list analyses iterate")
}

// newRecord derives the indexed columns from a full result and serializes it.
func newRecord(result *model.AnalysisResult) (*AnalysisRecord, []byte, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, nil, eris.Wrap(err, "store: marshal result")
	}
	rec := &AnalysisRecord{
		ID:             uuid.New().String(),
		Latitude:       result.Request.Coordinate.Latitude,
		Longitude:      result.Request.Coordinate.Longitude,
		RadiusKM:       result.Request.RadiusKM,
		Region:         result.Assessment.Region.Name,
		Provenance:     result.Provenance,
		TotalScore:     result.Assessment.TotalScore,
		Tier:           result.Assessment.Tier,
		ElapsedSeconds: result.ElapsedSeconds,
		CreatedAt:      time.Now().UTC(),
		Result:         result,
	}
	return rec, resultJSON, nil
}
