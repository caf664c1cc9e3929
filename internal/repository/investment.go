package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rewards_miniapp/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type InvestmentPackage struct {
	ID             uuid.UUID       `db:"id"`
	Title          string          `db:"title"`
	Type           string          `db:"type"`
	Price          decimal.Decimal `db:"price"`
	NumberOfDays   int             `db:"number_of_days"`
	RewardPerTask  decimal.Decimal `db:"reward_per_task"`
	RewardCurrency string          `db:"reward_currency"`
	IsActive       bool            `db:"is_active"`
}

type InvestmentSubscription struct {
	ID             uuid.UUID  `db:"id"`
	TelegramID     int64      `db:"telegram_id"`
	PackageID      uuid.UUID  `db:"package_id"`
	StartedAt      time.Time  `db:"started_at"`
	EndsAt         time.Time  `db:"ends_at"`
	LastTaskAt     *time.Time `db:"last_task_at"`
	TasksCompleted int        `db:"tasks_completed"`

	Package InvestmentPackage `db:"pkg"`
}

var packageColumns = []string{"id", "title", "type", "price", "number_of_days", "reward_per_task", "reward_currency", "is_active"}

func (p *InvestmentPackage) toModel() *model.InvestmentPackage {
	return &model.InvestmentPackage{
		ID:             p.ID,
		Title:          p.Title,
		Type:           model.PackageType(p.Type),
		Price:          p.Price,
		NumberOfDays:   p.NumberOfDays,
		RewardPerTask:  p.RewardPerTask,
		RewardCurrency: model.InvestmentCurrency(p.RewardCurrency),
		IsActive:       p.IsActive,
	}
}

func (s *InvestmentSubscription) toModel() *model.InvestmentSubscription {
	return &model.InvestmentSubscription{
		ID:             s.ID,
		TelegramID:     s.TelegramID,
		PackageID:      s.PackageID,
		Package:        s.Package.toModel(),
		StartedAt:      s.StartedAt,
		EndsAt:         s.EndsAt,
		LastTaskAt:     s.LastTaskAt,
		TasksCompleted: s.TasksCompleted,
	}
}

func subscriptionSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"s.id", "s.telegram_id", "s.package_id", "s.started_at", "s.ends_at", "s.last_task_at", "s.tasks_completed",
			`p.id AS "pkg.id"`, `p.title AS "pkg.title"`, `p.type AS "pkg.type"`, `p.price AS "pkg.price"`,
			`p.number_of_days AS "pkg.number_of_days"`, `p.reward_per_task AS "pkg.reward_per_task"`,
			`p.reward_currency AS "pkg.reward_currency"`, `p.is_active AS "pkg.is_active"`,
		).
		From("investment_subscriptions s").
		Join("investment_packages p ON p.id = s.package_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *Repository) ListInvestmentPackages(ctx context.Context, activeOnly bool) ([]*model.InvestmentPackage, error) {
	builder := squirrel.
		Select(packageColumns...).
		From("investment_packages").
		OrderBy("price", "title").
		PlaceholderFormat(squirrel.Dollar)
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []InvestmentPackage
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select investment packages: %w", err)
	}

	out := make([]*model.InvestmentPackage, len(rows))
	for i := range rows {
		out[i] = rows[i].toModel()
	}
	return out, nil
}

func (r *Repository) GetInvestmentPackage(ctx context.Context, id uuid.UUID) (*model.InvestmentPackage, error) {
	query, args, err := squirrel.
		Select(packageColumns...).
		From("investment_packages").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row InvestmentPackage
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (r *Repository) CreateInvestmentPackage(ctx context.Context, p *model.InvestmentPackage) error {
	values := packageValues(p)
	values["id"] = p.ID

	query, args, err := squirrel.
		Insert("investment_packages").
		SetMap(values).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build investment package insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapPgError(err, ErrAlreadyExists)
	}
	return nil
}

func (r *Repository) UpdateInvestmentPackage(ctx context.Context, p *model.InvestmentPackage) error {
	query, args, err := squirrel.
		Update("investment_packages").
		SetMap(packageValues(p)).
		Where(squirrel.Eq{"id": p.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffectingOne(ctx, query, args)
}

func (r *Repository) DeleteInvestmentPackage(ctx context.Context, id uuid.UUID) error {
	query, args, err := squirrel.
		Delete("investment_packages").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffectingOne(ctx, query, args)
}

// Subscribe applies charge to the locked account and stores the subscription.
// An account may hold one running subscription per package.
func (r *Repository) Subscribe(ctx context.Context, sub *model.InvestmentSubscription, charge model.AccountMutation) error {
	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := r.mutateAccountTx(ctx, tx, sub.TelegramID, charge); err != nil {
			return err
		}

		var running int
		err := tx.GetContext(ctx, &running,
			"SELECT COUNT(*) FROM investment_subscriptions WHERE telegram_id = $1 AND package_id = $2 AND ends_at > $3",
			sub.TelegramID, sub.PackageID, sub.StartedAt)
		if err != nil {
			return err
		}
		if running > 0 {
			return ErrAlreadyExists
		}

		query, args, err := squirrel.
			Insert("investment_subscriptions").
			SetMap(map[string]interface{}{
				"id":          sub.ID,
				"telegram_id": sub.TelegramID,
				"package_id":  sub.PackageID,
				"started_at":  sub.StartedAt,
				"ends_at":     sub.EndsAt,
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build subscription insert query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return mapPgError(err, ErrAlreadyExists)
		}
		return nil
	})
}

func (r *Repository) ListSubscriptions(ctx context.Context, telegramID int64) ([]*model.InvestmentSubscription, error) {
	query, args, err := subscriptionSelect().
		Where(squirrel.Eq{"s.telegram_id": telegramID}).
		OrderBy("s.started_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []InvestmentSubscription
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select subscriptions: %w", err)
	}

	out := make([]*model.InvestmentSubscription, len(rows))
	for i := range rows {
		out[i] = rows[i].toModel()
	}
	return out, nil
}

// CompleteInvestmentTask locks the subscription and the owner's account, then
// lets fn credit the reward. The subscription counters are saved afterwards.
func (r *Repository) CompleteInvestmentTask(
	ctx context.Context,
	telegramID int64,
	subscriptionID uuid.UUID,
	fn func(sub *model.InvestmentSubscription, acc *model.Account) error,
) (*model.Account, *model.InvestmentSubscription, error) {
	var (
		acc *model.Account
		sub *model.InvestmentSubscription
	)

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := subscriptionSelect().
			Where(squirrel.Eq{"s.id": subscriptionID, "s.telegram_id": telegramID}).
			Suffix("FOR UPDATE OF s").
			ToSql()
		if err != nil {
			return err
		}

		var row InvestmentSubscription
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		sub = row.toModel()

		acc, err = r.mutateAccountTx(ctx, tx, telegramID, func(a *model.Account) ([]model.QuestEvent, error) {
			return nil, fn(sub, a)
		})
		if err != nil {
			return err
		}

		update, updateArgs, err := squirrel.
			Update("investment_subscriptions").
			SetMap(map[string]interface{}{
				"last_task_at":    sub.LastTaskAt,
				"tasks_completed": sub.TasksCompleted,
			}).
			Where(squirrel.Eq{"id": sub.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, update, updateArgs...); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return acc, sub, nil
}

func packageValues(p *model.InvestmentPackage) map[string]interface{} {
	return map[string]interface{}{
		"title":           p.Title,
		"type":            string(p.Type),
		"price":           p.Price,
		"number_of_days":  p.NumberOfDays,
		"reward_per_task": p.RewardPerTask,
		"reward_currency": string(p.RewardCurrency),
		"is_active":       p.IsActive,
	}
}
