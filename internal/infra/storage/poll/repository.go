package poll

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

// Repository репозиторий для работы с опросами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория опросов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByURLPath получает опрос по публичному url вместе с участниками
func (r *Repository) GetByURLPath(ctx context.Context, urlPath string) (*domain.Poll, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"url_path",
		"title",
		"owner_email",
		"created_at",
		"updated_at",
	).
		From("polls").
		Where(squirrel.Eq{"url_path": urlPath}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByURLPath - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Poll
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.URLPath,
		&p.Title,
		&p.OwnerEmail,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByURLPath - scan poll: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	participants, err := r.loadParticipants(ctx, executor, p.ID)
	if err != nil {
		return nil, err
	}
	p.Participants = participants

	return &p, nil
}

// loadParticipants загружает участников опроса
// Набор ячеек хранится массивом wire-ключей "Day-HH:MM"
func (r *Repository) loadParticipants(ctx context.Context, executor DBExecutor, pollID int64) ([]domain.PollParticipant, error) {
	query, args, err := psqlbuilder.Select(
		"email",
		"schedule",
	).
		From("poll_participants").
		Where(squirrel.Eq{"poll_id": pollID}).
		OrderBy("email ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadParticipants - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadParticipants - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	participants := make([]domain.PollParticipant, 0)

	for rows.Next() {
		var email string
		var schedule pq.StringArray

		if err := rows.Scan(&email, &schedule); err != nil {
			return nil, fmt.Errorf("%w: loadParticipants - scan row: %v", ErrScanRow, err)
		}

		cells := make([]domain.Cell, 0, len(schedule))
		for _, key := range schedule {
			cell, err := domain.ParseCellKey(key)
			if err != nil {
				return nil, fmt.Errorf("%w: loadParticipants - parse cell key: %v", ErrScanRow, err)
			}
			cells = append(cells, cell)
		}

		participants = append(participants, domain.PollParticipant{
			Email: email,
			Cells: cells,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadParticipants - rows error: %v", ErrScanRow, err)
	}

	return participants, nil
}

// UpsertParticipant сохраняет набор ячеек одного участника
// Повторный вызов с тем же email заменяет набор целиком (идемпотентно)
func (r *Repository) UpsertParticipant(ctx context.Context, pollID int64, email string, cells []domain.Cell) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule := make(pq.StringArray, len(cells))
	for i, c := range cells {
		schedule[i] = c.Key()
	}

	query, args, err := psqlbuilder.Insert("poll_participants").
		Columns("poll_id", "email", "schedule").
		Values(pollID, email, schedule).
		Suffix("ON CONFLICT (poll_id, email) DO UPDATE SET schedule = EXCLUDED.schedule, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertParticipant - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertParticipant - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
