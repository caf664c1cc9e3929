package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rewards_miniapp/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type Withdrawal struct {
	ID          uuid.UUID       `db:"id"`
	TelegramID  int64           `db:"telegram_id"`
	MethodID    int64           `db:"method_id"`
	MethodName  string          `db:"method_name"`
	Amount      decimal.Decimal `db:"amount"`
	PointsSpent int64           `db:"points_spent"`
	Details     []byte          `db:"details"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

func (w *Withdrawal) toModel() (*model.Withdrawal, error) {
	details := make(map[string]string)
	if len(w.Details) > 0 {
		if err := json.Unmarshal(w.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to decode withdrawal details: %w", err)
		}
	}

	return &model.Withdrawal{
		ID:          w.ID,
		TelegramID:  w.TelegramID,
		MethodID:    w.MethodID,
		MethodName:  w.MethodName,
		Amount:      w.Amount,
		PointsSpent: w.PointsSpent,
		Details:     details,
		Status:      model.WithdrawalStatus(w.Status),
		CreatedAt:   w.CreatedAt,
		CompletedAt: w.CompletedAt,
	}, nil
}

func withdrawalSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"w.id", "w.telegram_id", "w.method_id", "m.name AS method_name", "w.amount",
			"w.points_spent", "w.details", "w.status", "w.created_at", "w.completed_at",
		).
		From("withdrawals w").
		Join("withdrawal_methods m ON m.id = w.method_id").
		PlaceholderFormat(squirrel.Dollar)
}

// CreateWithdrawal debits the account through debit and inserts the pending
// request. Both happen in the same transaction.
func (r *Repository) CreateWithdrawal(ctx context.Context, w *model.Withdrawal, debit model.AccountMutation) error {
	details, err := json.Marshal(w.Details)
	if err != nil {
		return fmt.Errorf("failed to encode withdrawal details: %w", err)
	}

	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := r.mutateAccountTx(ctx, tx, w.TelegramID, debit); err != nil {
			return err
		}

		query, args, err := squirrel.
			Insert("withdrawals").
			SetMap(map[string]interface{}{
				"id":           w.ID,
				"telegram_id":  w.TelegramID,
				"method_id":    w.MethodID,
				"amount":       w.Amount,
				"points_spent": w.PointsSpent,
				"details":      details,
				"status":       string(w.Status),
				"created_at":   w.CreatedAt,
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build withdrawal insert query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return mapPgError(fmt.Errorf("failed to insert withdrawal: %w", err), ErrAlreadyExists)
		}

		return nil
	})
}

// ResolveWithdrawal locks the request and hands it to fn. fn changes the
// status and may return a mutation to apply to the owner's account.
func (r *Repository) ResolveWithdrawal(
	ctx context.Context,
	id uuid.UUID,
	fn func(w *model.Withdrawal) (model.AccountMutation, error),
) (*model.Withdrawal, error) {
	var out *model.Withdrawal

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := withdrawalSelect().
			Where(squirrel.Eq{"w.id": id}).
			Suffix("FOR UPDATE OF w").
			ToSql()
		if err != nil {
			return err
		}

		var row Withdrawal
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		w, err := row.toModel()
		if err != nil {
			return err
		}

		mutation, err := fn(w)
		if err != nil {
			return err
		}

		update, updateArgs, err := squirrel.
			Update("withdrawals").
			SetMap(map[string]interface{}{
				"status":       string(w.Status),
				"completed_at": w.CompletedAt,
			}).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, update, updateArgs...); err != nil {
			return fmt.Errorf("failed to update withdrawal: %w", err)
		}

		if mutation != nil {
			if _, err := r.mutateAccountTx(ctx, tx, w.TelegramID, mutation); err != nil {
				return err
			}
		}

		out = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Repository) GetWithdrawal(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error) {
	query, args, err := withdrawalSelect().Where(squirrel.Eq{"w.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var row Withdrawal
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.toModel()
}

func (r *Repository) ListWithdrawalsByAccount(ctx context.Context, telegramID int64) ([]*model.Withdrawal, error) {
	return r.listWithdrawals(ctx, withdrawalSelect().Where(squirrel.Eq{"w.telegram_id": telegramID}))
}

// ListWithdrawals returns every request, optionally filtered by status.
func (r *Repository) ListWithdrawals(ctx context.Context, status model.WithdrawalStatus) ([]*model.Withdrawal, error) {
	builder := withdrawalSelect()
	if status != "" {
		builder = builder.Where(squirrel.Eq{"w.status": string(status)})
	}
	return r.listWithdrawals(ctx, builder)
}

func (r *Repository) listWithdrawals(ctx context.Context, builder squirrel.SelectBuilder) ([]*model.Withdrawal, error) {
	query, args, err := builder.OrderBy("w.created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	var rows []Withdrawal
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select withdrawals: %w", err)
	}

	out := make([]*model.Withdrawal, 0, len(rows))
	for i := range rows {
		w, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
