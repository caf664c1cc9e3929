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
	"github.com/shopspring/decimal"
)

type Account struct {
	TelegramID           int64           `db:"telegram_id"`
	Username             string          `db:"username"`
	FirstName            string          `db:"first_name"`
	Points               int64           `db:"points"`
	AdsWatchedToday      int             `db:"ads_watched_today"`
	LastAdWatch          *time.Time      `db:"last_ad_watch"`
	LastDailyBonus       *time.Time      `db:"last_daily_bonus"`
	InvestmentUSDBalance decimal.Decimal `db:"investment_usd_balance"`
	InvestmentEGPBalance decimal.Decimal `db:"investment_egp_balance"`
	CreatedAt            time.Time       `db:"created_at"`
}

var accountColumns = []string{
	"telegram_id",
	"username",
	"first_name",
	"points",
	"ads_watched_today",
	"last_ad_watch",
	"last_daily_bonus",
	"investment_usd_balance",
	"investment_egp_balance",
	"created_at",
}

func (a *Account) toModel() *model.Account {
	return &model.Account{
		TelegramID:           a.TelegramID,
		Username:             a.Username,
		FirstName:            a.FirstName,
		Points:               a.Points,
		AdsWatchedToday:      a.AdsWatchedToday,
		LastAdWatch:          a.LastAdWatch,
		LastDailyBonus:       a.LastDailyBonus,
		InvestmentUSDBalance: a.InvestmentUSDBalance,
		InvestmentEGPBalance: a.InvestmentEGPBalance,
		CreatedAt:            a.CreatedAt,
	}
}

// GetOrCreateAccount inserts the account unless one with the same telegram id
// exists. The returned flag reports whether this call created it.
func (r *Repository) GetOrCreateAccount(ctx context.Context, acc *model.Account) (*model.Account, bool, error) {
	query, args, err := squirrel.
		Insert("accounts").
		SetMap(map[string]interface{}{
			"telegram_id":       acc.TelegramID,
			"username":          acc.Username,
			"first_name":        acc.FirstName,
			"points":            acc.Points,
			"ads_watched_today": acc.AdsWatchedToday,
			"last_ad_watch":     acc.LastAdWatch,
		}).
		Suffix("ON CONFLICT (telegram_id) DO NOTHING RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build account insert query: %w", err)
	}

	var row Account
	err = r.db.GetContext(ctx, &row, query, args...)
	if err == nil {
		return row.toModel(), true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to insert account: %w", err)
	}

	existing, err := r.GetAccount(ctx, acc.TelegramID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *Repository) GetAccount(ctx context.Context, telegramID int64) (*model.Account, error) {
	return r.getAccount(ctx, r.db, telegramID, false)
}

func (r *Repository) getAccount(ctx context.Context, q sqlx.QueryerContext, telegramID int64, forUpdate bool) (*model.Account, error) {
	builder := squirrel.
		Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"telegram_id": telegramID}).
		PlaceholderFormat(squirrel.Dollar)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var row Account
	err = sqlx.GetContext(ctx, q, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}

// MutateAccount locks the account row, applies fn and persists the result
// together with the quest progress for every event fn returned.
func (r *Repository) MutateAccount(ctx context.Context, telegramID int64, fn model.AccountMutation) (*model.Account, error) {
	var out *model.Account
	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		acc, err := r.mutateAccountTx(ctx, tx, telegramID, fn)
		if err != nil {
			return err
		}
		out = acc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) mutateAccountTx(ctx context.Context, tx *sqlx.Tx, telegramID int64, fn model.AccountMutation) (*model.Account, error) {
	acc, err := r.getAccount(ctx, tx, telegramID, true)
	if err != nil {
		return nil, err
	}

	events, err := fn(acc)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Update("accounts").
		SetMap(map[string]interface{}{
			"username":               acc.Username,
			"first_name":             acc.FirstName,
			"points":                 acc.Points,
			"ads_watched_today":      acc.AdsWatchedToday,
			"last_ad_watch":          acc.LastAdWatch,
			"last_daily_bonus":       acc.LastDailyBonus,
			"investment_usd_balance": acc.InvestmentUSDBalance,
			"investment_egp_balance": acc.InvestmentEGPBalance,
		}).
		Where(squirrel.Eq{"telegram_id": telegramID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build account update query: %w", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return nil, mapPgError(fmt.Errorf("failed to update account: %w", err), ErrAlreadyExists)
	}

	for _, ev := range events {
		if err := r.advanceQuestsTx(ctx, tx, telegramID, ev); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func (r *Repository) ListAccounts(ctx context.Context, limit, offset uint64) ([]*model.Account, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From("accounts").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.selectAccounts(ctx, query, args)
}

func (r *Repository) GetTopAccounts(ctx context.Context, limit uint64) ([]*model.Account, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From("accounts").
		OrderBy("points DESC", "telegram_id").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.selectAccounts(ctx, query, args)
}

func (r *Repository) selectAccounts(ctx context.Context, query string, args []interface{}) ([]*model.Account, error) {
	var rows []Account
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}

	accounts := make([]*model.Account, len(rows))
	for i := range rows {
		accounts[i] = rows[i].toModel()
	}
	return accounts, nil
}
