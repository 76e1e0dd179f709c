package team

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	"github.com/bookyhq/Booky-SchedulingService/pkg/dbmetrics"
	"github.com/bookyhq/Booky-SchedulingService/pkg/psqlbuilder"
	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// Repository репозиторий для работы с командами и их расписаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория команд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByURLPath получает команду по её публичному url вместе с недельным
// расписанием (день -> окна доступности)
func (r *Repository) GetByURLPath(ctx context.Context, urlPath string) (*domain.Team, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"url_path",
		"name",
		"owner_email",
		"durations",
		"created_at",
		"updated_at",
	).
		From("teams").
		Where(squirrel.Eq{"url_path": urlPath}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByURLPath - build select query: %v", ErrBuildQuery, err)
	}

	var team domain.Team
	var durations pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&team.ID,
		&team.URLPath,
		&team.Name,
		&team.OwnerEmail,
		&durations,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByURLPath - scan team: %v", ErrScanRow, err)
	}

	team.Durations = make([]int, len(durations))
	for i, d := range durations {
		team.Durations[i] = int(d)
	}
	team.CreatedAt = createdAt.Time
	team.UpdatedAt = updatedAt.Time

	days, err := r.loadDays(ctx, executor, team.ID)
	if err != nil {
		return nil, err
	}
	team.Days = days

	return &team, nil
}

// loadDays загружает недельное расписание команды: по одной записи на день
// недели, окна в порядке их позиции
func (r *Repository) loadDays(ctx context.Context, executor DBExecutor, teamID int64) ([]domain.DaySchedule, error) {
	query, args, err := psqlbuilder.Select(
		"ds.weekday",
		"ds.enabled",
		"tr.start_time",
		"tr.end_time",
	).
		From("day_schedules ds").
		LeftJoin("time_ranges tr ON tr.day_schedule_id = ds.id").
		Where(squirrel.Eq{"ds.team_id": teamID}).
		OrderBy("ds.weekday ASC", "tr.position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byWeekday := make(map[time.Weekday]*domain.DaySchedule)
	order := make([]time.Weekday, 0, 7)

	for rows.Next() {
		var weekday int
		var enabled bool
		var start, end sql.NullString

		if err := rows.Scan(&weekday, &enabled, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: loadDays - scan row: %v", ErrScanRow, err)
		}

		wd := time.Weekday(weekday)
		day, ok := byWeekday[wd]
		if !ok {
			day = &domain.DaySchedule{Weekday: wd, Enabled: enabled}
			byWeekday[wd] = day
			order = append(order, wd)
		}

		// LEFT JOIN: у выключенного дня окон может не быть
		if start.Valid && end.Valid {
			startTime, err := types.NewClockTimeFromString(start.String)
			if err != nil {
				return nil, fmt.Errorf("%w: loadDays - parse start_time: %v", ErrScanRow, err)
			}
			endTime, err := types.NewClockTimeFromString(end.String)
			if err != nil {
				return nil, fmt.Errorf("%w: loadDays - parse end_time: %v", ErrScanRow, err)
			}
			day.Windows = append(day.Windows, domain.TimeRange{Start: startTime, End: endTime})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadDays - rows error: %v", ErrScanRow, err)
	}

	days := make([]domain.DaySchedule, 0, len(order))
	for _, wd := range order {
		days = append(days, *byWeekday[wd])
	}

	return days, nil
}

// ReplaceSchedule полностью заменяет недельное расписание и набор
// длительностей команды. Вызывается внутри транзакции (executor из контекста)
func (r *Repository) ReplaceSchedule(ctx context.Context, teamID int64, days []domain.DaySchedule, durations []int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	durationValues := make(pq.Int64Array, len(durations))
	for i, d := range durations {
		durationValues[i] = int64(d)
	}

	query, args, err := psqlbuilder.Update("teams").
		Set("durations", durationValues).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": teamID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTeamNotFound
	}

	// Старые дни удаляются каскадом вместе с окнами
	query, args, err = psqlbuilder.Delete("day_schedules").
		Where(squirrel.Eq{"team_id": teamID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute delete: %v", ErrExecQuery, err)
	}

	for _, day := range days {
		query, args, err = psqlbuilder.Insert("day_schedules").
			Columns("team_id", "weekday", "enabled").
			Values(teamID, int(day.Weekday), day.Enabled).
			Suffix("RETURNING id").
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: ReplaceSchedule - build day insert: %v", ErrBuildQuery, err)
		}

		var dayID int64
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&dayID); err != nil {
			return fmt.Errorf("%w: ReplaceSchedule - insert day: %v", ErrExecQuery, err)
		}

		for position, window := range day.Windows {
			query, args, err = psqlbuilder.Insert("time_ranges").
				Columns("day_schedule_id", "position", "start_time", "end_time").
				Values(dayID, position, window.Start, window.End).
				ToSql()

			if err != nil {
				return fmt.Errorf("%w: ReplaceSchedule - build range insert: %v", ErrBuildQuery, err)
			}

			if _, err := executor.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: ReplaceSchedule - insert range: %v", ErrExecQuery, err)
			}
		}
	}

	return nil
}
