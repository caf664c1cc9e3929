package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rewards_miniapp/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type AppTask struct {
	ID                   int64  `db:"id"`
	Title                string `db:"title"`
	Description          string `db:"description"`
	Points               int64  `db:"points"`
	EstimatedTimeMinutes int    `db:"estimated_time_minutes"`
	TelegramURL          string `db:"telegram_url"`
	IconType             string `db:"icon_type"`
	IsActive             bool   `db:"is_active"`
	Completed            bool   `db:"completed"`
}

type LinkTask struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	URL         string `db:"url"`
	Points      int64  `db:"points"`
	IsActive    bool   `db:"is_active"`
	Completed   bool   `db:"completed"`
}

var taskTables = map[model.TaskKind]string{
	model.TaskKindApp:  "app_tasks",
	model.TaskKindLink: "link_tasks",
}

// completedColumn reports whether the task was completed by telegramID.
// A zero telegramID yields false for every task.
func completedColumn(kind model.TaskKind, telegramID int64) (string, []interface{}) {
	return "EXISTS (SELECT 1 FROM task_completions tc WHERE tc.task_kind = ? AND tc.task_id = t.id AND tc.telegram_id = ?) AS completed",
		[]interface{}{string(kind), telegramID}
}

func (r *Repository) ListAppTasks(ctx context.Context, telegramID int64, activeOnly bool) ([]*model.AppTask, error) {
	completed, completedArgs := completedColumn(model.TaskKindApp, telegramID)
	builder := squirrel.
		Select("t.id", "t.title", "t.description", "t.points", "t.estimated_time_minutes", "t.telegram_url", "t.icon_type", "t.is_active").
		Column(completed, completedArgs...).
		From("app_tasks t").
		OrderBy("t.id").
		PlaceholderFormat(squirrel.Dollar)
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"t.is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []AppTask
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select app tasks: %w", err)
	}

	out := make([]*model.AppTask, len(rows))
	for i, t := range rows {
		out[i] = &model.AppTask{
			ID:                   t.ID,
			Title:                t.Title,
			Description:          t.Description,
			Points:               t.Points,
			EstimatedTimeMinutes: t.EstimatedTimeMinutes,
			TelegramURL:          t.TelegramURL,
			IconType:             t.IconType,
			IsActive:             t.IsActive,
			Completed:            t.Completed,
		}
	}
	return out, nil
}

func (r *Repository) ListLinkTasks(ctx context.Context, telegramID int64, activeOnly bool) ([]*model.LinkTask, error) {
	completed, completedArgs := completedColumn(model.TaskKindLink, telegramID)
	builder := squirrel.
		Select("t.id", "t.title", "t.description", "t.url", "t.points", "t.is_active").
		Column(completed, completedArgs...).
		From("link_tasks t").
		OrderBy("t.id").
		PlaceholderFormat(squirrel.Dollar)
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"t.is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []LinkTask
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select link tasks: %w", err)
	}

	out := make([]*model.LinkTask, len(rows))
	for i, t := range rows {
		out[i] = &model.LinkTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			URL:         t.URL,
			Points:      t.Points,
			IsActive:    t.IsActive,
			Completed:   t.Completed,
		}
	}
	return out, nil
}

// CompleteTask records the completion and hands the task reward to credit.
// A repeated completion fails with ErrAlreadyExists.
func (r *Repository) CompleteTask(
	ctx context.Context,
	telegramID int64,
	kind model.TaskKind,
	taskID int64,
	now time.Time,
	credit func(acc *model.Account, reward int64) ([]model.QuestEvent, error),
) (*model.Account, error) {
	table, ok := taskTables[kind]
	if !ok {
		return nil, ErrNotFound
	}

	var out *model.Account
	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Select("points").
			From(table).
			Where(squirrel.Eq{"id": taskID, "is_active": true}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		var reward int64
		if err := tx.GetContext(ctx, &reward, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		acc, err := r.mutateAccountTx(ctx, tx, telegramID, func(acc *model.Account) ([]model.QuestEvent, error) {
			return credit(acc, reward)
		})
		if err != nil {
			return err
		}

		insert, insertArgs, err := squirrel.
			Insert("task_completions").
			Columns("telegram_id", "task_kind", "task_id", "completed_at").
			Values(telegramID, string(kind), taskID, now).
			Suffix("ON CONFLICT DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, insert, insertArgs...)
		if err != nil {
			return fmt.Errorf("failed to insert task completion: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrAlreadyExists
		}

		out = acc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Repository) CreateAppTask(ctx context.Context, t *model.AppTask) error {
	query, args, err := squirrel.
		Insert("app_tasks").
		SetMap(appTaskValues(t)).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build app task insert query: %w", err)
	}
	return r.db.QueryRowxContext(ctx, query, args...).Scan(&t.ID)
}

func (r *Repository) UpdateAppTask(ctx context.Context, t *model.AppTask) error {
	query, args, err := squirrel.
		Update("app_tasks").
		SetMap(appTaskValues(t)).
		Where(squirrel.Eq{"id": t.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffectingOne(ctx, query, args)
}

func (r *Repository) CreateLinkTask(ctx context.Context, t *model.LinkTask) error {
	query, args, err := squirrel.
		Insert("link_tasks").
		SetMap(linkTaskValues(t)).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build link task insert query: %w", err)
	}
	return r.db.QueryRowxContext(ctx, query, args...).Scan(&t.ID)
}

func (r *Repository) UpdateLinkTask(ctx context.Context, t *model.LinkTask) error {
	query, args, err := squirrel.
		Update("link_tasks").
		SetMap(linkTaskValues(t)).
		Where(squirrel.Eq{"id": t.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffectingOne(ctx, query, args)
}

// DeleteTask removes the task together with its completion records.
func (r *Repository) DeleteTask(ctx context.Context, kind model.TaskKind, taskID int64) error {
	table, ok := taskTables[kind]
	if !ok {
		return ErrNotFound
	}

	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Delete("task_completions").
			Where(squirrel.Eq{"task_kind": string(kind), "task_id": taskID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}

		query, args, err = squirrel.
			Delete(table).
			Where(squirrel.Eq{"id": taskID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *Repository) CountAppTasks(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM app_tasks"); err != nil {
		return 0, err
	}
	return count, nil
}

func appTaskValues(t *model.AppTask) map[string]interface{} {
	return map[string]interface{}{
		"title":                  t.Title,
		"description":            t.Description,
		"points":                 t.Points,
		"estimated_time_minutes": t.EstimatedTimeMinutes,
		"telegram_url":           t.TelegramURL,
		"icon_type":              t.IconType,
		"is_active":              t.IsActive,
	}
}

func linkTaskValues(t *model.LinkTask) map[string]interface{} {
	return map[string]interface{}{
		"title":       t.Title,
		"description": t.Description,
		"url":         t.URL,
		"points":      t.Points,
		"is_active":   t.IsActive,
	}
}
