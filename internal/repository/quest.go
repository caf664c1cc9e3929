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

type Quest struct {
	ID            int64     `db:"id"`
	Title         string    `db:"title"`
	Type          string    `db:"type"`
	Points        int64     `db:"points"`
	TotalProgress int       `db:"total_progress"`
	ColorScheme   string    `db:"color_scheme"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
}

type QuestProgress struct {
	TelegramID      int64      `db:"telegram_id"`
	QuestID         int64      `db:"quest_id"`
	CurrentProgress int        `db:"current_progress"`
	Completed       bool       `db:"completed"`
	CompletedAt     *time.Time `db:"completed_at"`
	ClaimedAt       *time.Time `db:"claimed_at"`
}

type accountQuest struct {
	Quest
	CurrentProgress int        `db:"current_progress"`
	Completed       bool       `db:"completed"`
	CompletedAt     *time.Time `db:"completed_at"`
	ClaimedAt       *time.Time `db:"claimed_at"`
}

var questColumns = []string{"id", "title", "type", "points", "total_progress", "color_scheme", "is_active", "created_at"}

func (q *Quest) toModel() *model.Quest {
	return &model.Quest{
		ID:            q.ID,
		Title:         q.Title,
		Type:          model.QuestType(q.Type),
		Points:        q.Points,
		TotalProgress: q.TotalProgress,
		ColorScheme:   q.ColorScheme,
		IsActive:      q.IsActive,
		CreatedAt:     q.CreatedAt,
	}
}

func (p *QuestProgress) toModel() *model.QuestProgress {
	return &model.QuestProgress{
		TelegramID:      p.TelegramID,
		QuestID:         p.QuestID,
		CurrentProgress: p.CurrentProgress,
		Completed:       p.Completed,
		CompletedAt:     p.CompletedAt,
		ClaimedAt:       p.ClaimedAt,
	}
}

// ListQuestsForAccount joins every active quest with the account's progress.
// Quests without a progress row read as zero progress.
func (r *Repository) ListQuestsForAccount(ctx context.Context, telegramID int64) ([]*model.AccountQuest, error) {
	query, args, err := squirrel.
		Select(
			"q.id", "q.title", "q.type", "q.points", "q.total_progress", "q.color_scheme", "q.is_active", "q.created_at",
			"COALESCE(p.current_progress, 0) AS current_progress",
			"COALESCE(p.completed, FALSE) AS completed",
			"p.completed_at",
			"p.claimed_at",
		).
		From("quests q").
		LeftJoin("quest_progress p ON p.quest_id = q.id AND p.telegram_id = ?", telegramID).
		Where(squirrel.Eq{"q.is_active": true}).
		OrderBy("q.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build quests query: %w", err)
	}

	var rows []accountQuest
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select quests: %w", err)
	}

	out := make([]*model.AccountQuest, len(rows))
	for i, row := range rows {
		out[i] = &model.AccountQuest{
			Quest: *row.Quest.toModel(),
			Progress: model.QuestProgress{
				TelegramID:      telegramID,
				QuestID:         row.ID,
				CurrentProgress: row.CurrentProgress,
				Completed:       row.Completed,
				CompletedAt:     row.CompletedAt,
				ClaimedAt:       row.ClaimedAt,
			},
		}
	}
	return out, nil
}

func (r *Repository) advanceQuestsTx(ctx context.Context, tx *sqlx.Tx, telegramID int64, ev model.QuestEvent) error {
	query, args, err := squirrel.
		Select(questColumns...).
		From("quests").
		Where(squirrel.Eq{"type": string(ev.Type), "is_active": true}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	var quests []Quest
	if err := tx.SelectContext(ctx, &quests, query, args...); err != nil {
		return fmt.Errorf("failed to select quests of type %s: %w", ev.Type, err)
	}

	for _, q := range quests {
		progress, err := r.lockQuestProgressTx(ctx, tx, telegramID, q.ID)
		if err != nil {
			return err
		}

		if !progress.Advance(q.TotalProgress, ev.Delta, ev.At) {
			continue
		}

		if err := r.saveQuestProgressTx(ctx, tx, progress); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) lockQuestProgressTx(ctx context.Context, tx *sqlx.Tx, telegramID, questID int64) (*model.QuestProgress, error) {
	insert, insertArgs, err := squirrel.
		Insert("quest_progress").
		Columns("telegram_id", "quest_id").
		Values(telegramID, questID).
		Suffix("ON CONFLICT (telegram_id, quest_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, insert, insertArgs...); err != nil {
		return nil, fmt.Errorf("failed to init quest progress: %w", err)
	}

	query, args, err := squirrel.
		Select("telegram_id", "quest_id", "current_progress", "completed", "completed_at", "claimed_at").
		From("quest_progress").
		Where(squirrel.Eq{"telegram_id": telegramID, "quest_id": questID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row QuestProgress
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		return nil, fmt.Errorf("failed to lock quest progress: %w", err)
	}
	return row.toModel(), nil
}

func (r *Repository) saveQuestProgressTx(ctx context.Context, tx *sqlx.Tx, p *model.QuestProgress) error {
	query, args, err := squirrel.
		Update("quest_progress").
		SetMap(map[string]interface{}{
			"current_progress": p.CurrentProgress,
			"completed":        p.Completed,
			"completed_at":     p.CompletedAt,
			"claimed_at":       p.ClaimedAt,
		}).
		Where(squirrel.Eq{"telegram_id": p.TelegramID, "quest_id": p.QuestID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update quest progress: %w", err)
	}
	return nil
}

// ClaimQuestReward credits the quest points once per completed quest.
func (r *Repository) ClaimQuestReward(ctx context.Context, telegramID, questID int64, now time.Time) (*model.Account, *model.Quest, error) {
	var (
		acc   *model.Account
		quest *model.Quest
	)

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		q, err := r.getQuest(ctx, tx, questID)
		if err != nil {
			return err
		}

		if _, err := r.getAccount(ctx, tx, telegramID, true); err != nil {
			return err
		}

		progress, err := r.lockQuestProgressTx(ctx, tx, telegramID, questID)
		if err != nil {
			return err
		}
		if !progress.Completed {
			return ErrQuestNotCompleted
		}
		if progress.ClaimedAt != nil {
			return ErrQuestAlreadyClaimed
		}

		claimedAt := now
		progress.ClaimedAt = &claimedAt
		if err := r.saveQuestProgressTx(ctx, tx, progress); err != nil {
			return err
		}

		acc, err = r.mutateAccountTx(ctx, tx, telegramID, func(a *model.Account) ([]model.QuestEvent, error) {
			a.Points += q.Points
			return nil, nil
		})
		if err != nil {
			return err
		}

		quest = q
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return acc, quest, nil
}

func (r *Repository) getQuest(ctx context.Context, q sqlx.QueryerContext, questID int64) (*model.Quest, error) {
	query, args, err := squirrel.
		Select(questColumns...).
		From("quests").
		Where(squirrel.Eq{"id": questID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row Quest
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (r *Repository) GetQuest(ctx context.Context, questID int64) (*model.Quest, error) {
	return r.getQuest(ctx, r.db, questID)
}

func (r *Repository) ListQuests(ctx context.Context) ([]*model.Quest, error) {
	query, args, err := squirrel.
		Select(questColumns...).
		From("quests").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []Quest
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select quests: %w", err)
	}

	out := make([]*model.Quest, len(rows))
	for i := range rows {
		out[i] = rows[i].toModel()
	}
	return out, nil
}

func (r *Repository) CreateQuest(ctx context.Context, q *model.Quest) error {
	query, args, err := squirrel.
		Insert("quests").
		SetMap(map[string]interface{}{
			"title":          q.Title,
			"type":           string(q.Type),
			"points":         q.Points,
			"total_progress": q.TotalProgress,
			"color_scheme":   q.ColorScheme,
			"is_active":      q.IsActive,
		}).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build quest insert query: %w", err)
	}

	return r.db.QueryRowxContext(ctx, query, args...).Scan(&q.ID, &q.CreatedAt)
}

func (r *Repository) UpdateQuest(ctx context.Context, q *model.Quest) error {
	query, args, err := squirrel.
		Update("quests").
		SetMap(map[string]interface{}{
			"title":          q.Title,
			"type":           string(q.Type),
			"points":         q.Points,
			"total_progress": q.TotalProgress,
			"color_scheme":   q.ColorScheme,
			"is_active":      q.IsActive,
		}).
		Where(squirrel.Eq{"id": q.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, query, args)
}

func (r *Repository) DeleteQuest(ctx context.Context, questID int64) error {
	query, args, err := squirrel.
		Delete("quests").
		Where(squirrel.Eq{"id": questID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, query, args)
}

func (r *Repository) CountQuests(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM quests"); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapPgError(err, ErrAlreadyExists)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
