package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	"github.com/bookyhq/Booky-SchedulingService/pkg/dbmetrics"
	"github.com/bookyhq/Booky-SchedulingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const uniqueViolation = "23505"

// Repository репозиторий для работы с записями на слоты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Уникальный индекс (team_id, day, time) превращает гонку за один слот в
// ErrDuplicateSlot вместо двойного бронирования
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"team_id",
			"day",
			"time",
			"name",
			"email",
			"token",
			"token_expiry",
		).
		Values(
			a.TeamID,
			a.Day,
			a.Time,
			a.Name,
			a.Email,
			a.Token,
			a.TokenExpiry,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
	)

	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
		return nil, ErrDuplicateSlot
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time

	return a, nil
}

// GetByTeamAndDay получает все записи команды на конкретный день
// (день в формате M-D-YYYY, как хранится)
func (r *Repository) GetByTeamAndDay(ctx context.Context, teamID int64, day string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"team_id",
		"day",
		"time",
		"name",
		"email",
		"token",
		"token_expiry",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Eq{"team_id": teamID, "day": day}).
		OrderBy("time ASC")

	// Внутри транзакции блокируем строки: идет проверка доступности слота
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeamAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeamAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByTeam получает все записи команды
func (r *Repository) GetByTeam(ctx context.Context, teamID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"team_id",
		"day",
		"time",
		"name",
		"email",
		"token",
		"token_expiry",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Eq{"team_id": teamID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeam - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeam - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByToken получает запись по токену отмены
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"team_id",
		"day",
		"time",
		"name",
		"email",
		"token",
		"token_expiry",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Appointment
	var tokenExpiry, createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.TeamID,
		&a.Day,
		&a.Time,
		&a.Name,
		&a.Email,
		&a.Token,
		&tokenExpiry,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan appointment: %v", ErrScanRow, err)
	}

	a.TokenExpiry = tokenExpiry.Time
	a.CreatedAt = createdAt.Time

	return &a, nil
}

// Delete удаляет запись (отмена по токену или удаление хостом)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var a domain.Appointment
		var tokenExpiry, createdAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.TeamID,
			&a.Day,
			&a.Time,
			&a.Name,
			&a.Email,
			&a.Token,
			&tokenExpiry,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		a.TokenExpiry = tokenExpiry.Time
		a.CreatedAt = createdAt.Time

		appointments = append(appointments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
