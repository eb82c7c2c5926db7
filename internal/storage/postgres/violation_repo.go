package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Icer178/traffic-val/internal/authz"
	"github.com/Icer178/traffic-val/internal/domain"
	"github.com/Icer178/traffic-val/pkg/e"
)

type ViolationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewViolationRepo(pool *pgxpool.Pool, logger *slog.Logger) *ViolationRepo {
	return &ViolationRepo{pool: pool, logger: logger}
}

const violationColumns = `id, user_id, type, description, location,
	vehicle_plate, vehicle_model, vehicle_color, date_time,
	reporter_name, reporter_email, reporter_phone, status,
	evidence_urls, admin_notes, created_at, updated_at`

func (p *ViolationRepo) Insert(ctx context.Context, v *domain.Violation) error {
	const op = "postgres.Violation.Insert"

	query := `
		INSERT INTO violations (` + violationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	r := violationToRow(v)
	_, err := p.pool.Exec(ctx, query,
		r.ID, r.UserID, r.Type, r.Description, r.Location,
		r.VehiclePlate, r.VehicleModel, r.VehicleColor, r.DateTime,
		r.ReporterName, r.ReporterEmail, r.ReporterPhone, r.Status,
		r.EvidenceURLs, r.AdminNotes, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// List returns violations visible in the given scope, newest first, narrowed
// by the optional status/type equality filters.
func (p *ViolationRepo) List(ctx context.Context, scope authz.ListScope, f domain.ViolationFilters) ([]*domain.Violation, error) {
	const op = "postgres.Violation.List"

	query := `SELECT ` + violationColumns + ` FROM violations`
	var (
		conds []string
		args  []any
	)
	if scope.OwnerID != nil {
		args = append(args, *scope.OwnerID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, string(f.Type))
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var violations []*domain.Violation
	for rows.Next() {
		v, err := scanViolation(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		violations = append(violations, v)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return violations, nil
}

func (p *ViolationRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Violation, error) {
	const op = "postgres.Violation.Get"

	query := `SELECT ` + violationColumns + ` FROM violations WHERE id = $1`

	v, err := scanViolation(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return v, nil
}

func (p *ViolationRepo) Update(ctx context.Context, v *domain.Violation) error {
	const op = "postgres.Violation.Update"

	const query = `
		UPDATE violations
		SET type = $2, description = $3, location = $4,
			vehicle_plate = $5, vehicle_model = $6, vehicle_color = $7,
			date_time = $8, reporter_name = $9, reporter_email = $10,
			reporter_phone = $11, status = $12, evidence_urls = $13,
			admin_notes = $14, updated_at = $15
		WHERE id = $1
	`

	r := violationToRow(v)
	cmd, err := p.pool.Exec(ctx, query,
		r.ID, r.Type, r.Description, r.Location,
		r.VehiclePlate, r.VehicleModel, r.VehicleColor,
		r.DateTime, r.ReporterName, r.ReporterEmail,
		r.ReporterPhone, r.Status, r.EvidenceURLs,
		r.AdminNotes, r.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", v.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// Delete is a hard delete; there is no soft-delete state for violations.
func (p *ViolationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Violation.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM violations WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func scanViolation(row pgx.Row) (*domain.Violation, error) {
	var r violationRow
	err := row.Scan(
		&r.ID, &r.UserID, &r.Type, &r.Description, &r.Location,
		&r.VehiclePlate, &r.VehicleModel, &r.VehicleColor, &r.DateTime,
		&r.ReporterName, &r.ReporterEmail, &r.ReporterPhone, &r.Status,
		&r.EvidenceURLs, &r.AdminNotes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rowToViolation(r), nil
}
