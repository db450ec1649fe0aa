package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/config"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// Postgres 基于 PostgreSQL 的存储
type Postgres struct {
	db *sql.DB
}

var _ Store = (*Postgres)(nil)

// DSN 生成 lib/pq 连接串
func DSN(cfg config.DBConfig) string {
	port := cfg.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, port, cfg.User, cfg.Password, cfg.Name)
}

// NewPostgres 连接数据库并初始化表结构
func NewPostgres(cfg config.DBConfig) (*Postgres, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	return NewPostgresWithDB(db)
}

// NewPostgresWithDB 使用已有连接
func NewPostgresWithDB(db *sql.DB) (*Postgres, error) {
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	s := &Postgres{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close implements Store
func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS trips (
			id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			source TEXT NOT NULL,
			destination TEXT NOT NULL,
			start_date DATE NOT NULL,
			days INTEGER NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_destination ON trips (destination)`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Save implements Store
func (s *Postgres) Save(ctx context.Context, res *model.TripResult) error {
	if res.ID == "" {
		return fmt.Errorf("trip result has no id")
	}
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal trip result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO trips (id, status, source, destination, start_date, days, result, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			result = EXCLUDED.result,
			updated_at = EXCLUDED.updated_at`,
		res.ID, string(res.Status), res.Request.Source, res.Request.Destination,
		res.Request.StartDate.Time, res.Request.Days, payload, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save trip %s: %w", res.ID, err)
	}
	return nil
}

// Get implements Store
func (s *Postgres) Get(ctx context.Context, id string) (*model.TripResult, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT result FROM trips WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", model.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %s: %w", id, err)
	}

	var res model.TripResult
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("unmarshal trip result: %w", err)
	}
	return &res, nil
}
