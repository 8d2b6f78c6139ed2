package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"trendtracker/internal/config"
	"trendtracker/internal/domain/trend"
)

// DB is the subset of pgxpool.Pool the store needs. Satisfied by pgxmock in
// tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ResultStore persists computed results to Postgres
type ResultStore struct {
	db DB
}

// NewResultStore creates a new result store
func NewResultStore(db DB) *ResultStore {
	return &ResultStore{
		db: db,
	}
}

// Connect opens a connection pool from database configuration
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.MaxLifetime

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return db, nil
}

// SaveResult upserts the run header, its aggregates and its trend scores.
// Saves are idempotent per (run, hashtag, window), so a retried run does not
// duplicate rows.
func (s *ResultStore) SaveResult(ctx context.Context, res trend.Result) error {
	runQuery := `
		INSERT INTO runs (id, granularity, total_rows, valid_rows, rejected_rows)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET
			granularity = $2,
			total_rows = $3,
			valid_rows = $4,
			rejected_rows = $5
	`
	_, err := s.db.Exec(ctx, runQuery,
		res.RunID, string(res.Granularity),
		res.Report.TotalRows, res.Report.ValidRows, res.Report.RejectedRows,
	)
	if err != nil {
		return fmt.Errorf("error saving run: %w", err)
	}

	scoreQuery := `
		INSERT INTO trend_scores (
			run_id, hashtag, window_label, window_start,
			total_mentions, total_reach, average_sentiment, row_count,
			growth, trend_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (run_id, hashtag, window_label) DO UPDATE
		SET
			window_start = $4,
			total_mentions = $5,
			total_reach = $6,
			average_sentiment = $7,
			row_count = $8,
			growth = $9,
			trend_score = $10
	`
	for _, sc := range res.Scores {
		_, err := s.db.Exec(ctx, scoreQuery,
			res.RunID, sc.Hashtag, sc.Window.Label(), sc.Window.Start,
			sc.TotalMentions, sc.TotalReach, sc.AverageSentiment, sc.RowCount,
			sc.Growth, sc.TrendScore,
		)
		if err != nil {
			return fmt.Errorf("error saving score for %s/%s: %w", sc.Hashtag, sc.Window.Label(), err)
		}
	}

	rankQuery := `
		INSERT INTO top_hashtags (run_id, window_label, rank, hashtag, trend_score)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (run_id, window_label, rank) DO UPDATE
		SET
			hashtag = $4,
			trend_score = $5
	`
	for _, ranking := range res.TopK {
		for i, e := range ranking.Entries {
			_, err := s.db.Exec(ctx, rankQuery,
				res.RunID, ranking.Window.Label(), i+1, e.Hashtag, e.TrendScore,
			)
			if err != nil {
				return fmt.Errorf("error saving ranking for %s: %w", ranking.Window.Label(), err)
			}
		}
	}

	return nil
}
