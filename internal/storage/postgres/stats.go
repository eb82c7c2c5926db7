package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/pkg/e"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) CountByStatus(ctx context.Context) (map[domain.ViolationStatus]int64, error) {
	const op = "postgres.Stats.CountByStatus"

	rows, err := p.pool.Query(ctx, `SELECT status, COUNT(*) FROM violations GROUP BY status`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	counts := make(map[domain.ViolationStatus]int64)
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		counts[domain.ViolationStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return counts, nil
}

func (p *StatsRepo) CountByType(ctx context.Context) (map[domain.ViolationType]int64, error) {
	const op = "postgres.Stats.CountByType"

	rows, err := p.pool.Query(ctx, `SELECT type, COUNT(*) FROM violations GROUP BY type`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	counts := make(map[domain.ViolationType]int64)
	for rows.Next() {
		var (
			typ string
			n   int64
		)
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		counts[domain.ViolationType(typ)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return counts, nil
}
