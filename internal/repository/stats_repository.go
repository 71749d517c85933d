// internal/repository/stats_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// StatsRepository answers the aggregation queries the ORM has no good
// shape for. It shares the connection pool with the ent client.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{
		db: db,
	}
}

// ProjectActualHours sums the logged hours of a project's time entries.
func (r *StatsRepository) ProjectActualHours(ctx context.Context, projectID uuid.UUID) (float64, error) {
	query := r.db.Rebind(`SELECT COALESCE(SUM(hours), 0) FROM time_entries WHERE project_id = ?`)

	var hours float64
	if err := r.db.GetContext(ctx, &hours, query, projectID); err != nil {
		return 0, fmt.Errorf("sum project hours: %w", err)
	}
	return hours, nil
}

// Ping verifies the backing store answers a trivial query.
func (r *StatsRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.GetContext(ctx, &one, `SELECT 1`); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
