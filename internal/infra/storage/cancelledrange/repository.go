package cancelledrange

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	"github.com/bookyhq/Booky-SchedulingService/pkg/dbmetrics"
	"github.com/bookyhq/Booky-SchedulingService/pkg/psqlbuilder"
	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// Repository репозиторий для работы с отмененными диапазонами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отмененных диапазонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет отмененный диапазон
func (r *Repository) Create(ctx context.Context, cr *domain.CancelledRange) (*domain.CancelledRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cancelled_ranges").
		Columns(
			"team_id",
			"day",
			"start_time",
			"end_time",
		).
		Values(
			cr.TeamID,
			cr.Date,
			cr.Window.Start,
			cr.Window.End,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cr.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	cr.CreatedAt = createdAt.Time

	return cr, nil
}

// GetByTeamAndDate получает отмененные диапазоны команды на конкретную дату
func (r *Repository) GetByTeamAndDate(ctx context.Context, teamID int64, date time.Time) ([]*domain.CancelledRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"team_id",
		"day",
		"start_time",
		"end_time",
		"created_at",
	).
		From("cancelled_ranges").
		Where(squirrel.Eq{"team_id": teamID, "day": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeamAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeamAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows)
}

// GetByTeam получает все отмененные диапазоны команды
func (r *Repository) GetByTeam(ctx context.Context, teamID int64) ([]*domain.CancelledRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"team_id",
		"day",
		"start_time",
		"end_time",
		"created_at",
	).
		From("cancelled_ranges").
		Where(squirrel.Eq{"team_id": teamID}).
		OrderBy("day ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeam - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeam - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows)
}

// DeleteOlderThan удаляет диапазоны, дата которых раньше cutoff
// Возвращает количество удаленных строк. Используется фоновой очисткой
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cancelled_ranges").
		Where(squirrel.Lt{"day": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanRanges сканирует результаты запроса в слайс диапазонов
func (r *Repository) scanRanges(rows *sql.Rows) ([]*domain.CancelledRange, error) {
	ranges := make([]*domain.CancelledRange, 0)

	for rows.Next() {
		var cr domain.CancelledRange
		var start, end types.ClockTime
		var createdAt sql.NullTime

		err := rows.Scan(
			&cr.ID,
			&cr.TeamID,
			&cr.Date,
			&start,
			&end,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRanges - scan row: %v", ErrScanRow, err)
		}

		cr.Window = domain.TimeRange{Start: start, End: end}
		cr.CreatedAt = createdAt.Time

		ranges = append(ranges, &cr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}
