package output

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(ctx context.Context, dsn string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return &PostgresSink{pool: pool}, nil
}

func (p *PostgresSink) Write(ctx context.Context, rec PredictionRecord) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO predictions (id, created_at, restaurant, city, road_km, method, estimated_minutes, confidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`, rec.ID, rec.CreatedAt, rec.Restaurant, rec.City, rec.RoadKm, rec.Method, rec.EstimatedMinutes, rec.Confidence)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	return nil
}

func (p *PostgresSink) Close() error {
	p.pool.Close()
	return nil
}
