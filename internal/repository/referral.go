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

type Referral struct {
	ID               int64     `db:"id"`
	ReferrerID       int64     `db:"referrer_id"`
	ReferredID       int64     `db:"referred_id"`
	ReferredUsername string    `db:"referred_username"`
	PointsEarned     int64     `db:"points_earned"`
	CreatedAt        time.Time `db:"created_at"`
}

func (r *Referral) toModel() *model.Referral {
	return &model.Referral{
		ID:               r.ID,
		ReferrerID:       r.ReferrerID,
		ReferredID:       r.ReferredID,
		ReferredUsername: r.ReferredUsername,
		PointsEarned:     r.PointsEarned,
		CreatedAt:        r.CreatedAt,
	}
}

// CreateReferral inserts the edge and applies credit to the referrer in one
// transaction. A second edge for the same referred account fails with
// ErrAlreadyReferred.
func (r *Repository) CreateReferral(ctx context.Context, ref *model.Referral, credit model.AccountMutation) error {
	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := r.getAccount(ctx, tx, ref.ReferredID, false); err != nil {
			return err
		}

		if _, err := r.mutateAccountTx(ctx, tx, ref.ReferrerID, credit); err != nil {
			return err
		}

		query, args, err := squirrel.
			Insert("referrals").
			SetMap(map[string]interface{}{
				"referrer_id":   ref.ReferrerID,
				"referred_id":   ref.ReferredID,
				"points_earned": ref.PointsEarned,
				"created_at":    ref.CreatedAt,
			}).
			Suffix("ON CONFLICT (referred_id) DO NOTHING RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build referral insert query: %w", err)
		}

		err = tx.QueryRowxContext(ctx, query, args...).Scan(&ref.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAlreadyReferred
			}
			return mapPgError(fmt.Errorf("failed to insert referral: %w", err), ErrAlreadyReferred)
		}

		return nil
	})
}

func (r *Repository) ListReferrals(ctx context.Context, referrerID int64) ([]*model.Referral, error) {
	query, args, err := squirrel.
		Select(
			"r.id",
			"r.referrer_id",
			"r.referred_id",
			"COALESCE(NULLIF(a.username, ''), a.first_name) AS referred_username",
			"r.points_earned",
			"r.created_at",
		).
		From("referrals r").
		Join("accounts a ON a.telegram_id = r.referred_id").
		Where(squirrel.Eq{"r.referrer_id": referrerID}).
		OrderBy("r.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []Referral
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get referrals: %w", err)
	}

	refs := make([]*model.Referral, len(rows))
	for i := range rows {
		refs[i] = rows[i].toModel()
	}
	return refs, nil
}
