package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rewards_miniapp/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Currency struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	Code         string          `db:"code"`
	Symbol       string          `db:"symbol"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
	IsActive     bool            `db:"is_active"`
}

type WithdrawalMethod struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	IconURL        string          `db:"icon_url"`
	MinAmount      decimal.Decimal `db:"min_amount"`
	MaxAmount      decimal.Decimal `db:"max_amount"`
	CurrencyID     int64           `db:"currency_id"`
	RequiredFields pq.StringArray  `db:"required_fields"`
	IsActive       bool            `db:"is_active"`

	CurrencyName     string          `db:"currency_name"`
	CurrencyCode     string          `db:"currency_code"`
	CurrencySymbol   string          `db:"currency_symbol"`
	CurrencyRate     decimal.Decimal `db:"currency_rate"`
	CurrencyIsActive bool            `db:"currency_is_active"`
}

var currencyColumns = []string{"id", "name", "code", "symbol", "exchange_rate", "is_active"}

func (c *Currency) toModel() *model.Currency {
	return &model.Currency{
		ID:           c.ID,
		Name:         c.Name,
		Code:         c.Code,
		Symbol:       c.Symbol,
		ExchangeRate: c.ExchangeRate,
		IsActive:     c.IsActive,
	}
}

func (m *WithdrawalMethod) toModel() *model.WithdrawalMethod {
	return &model.WithdrawalMethod{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		IconURL:        m.IconURL,
		MinAmount:      m.MinAmount,
		MaxAmount:      m.MaxAmount,
		CurrencyID:     m.CurrencyID,
		RequiredFields: []string(m.RequiredFields),
		IsActive:       m.IsActive,
		Currency: &model.Currency{
			ID:           m.CurrencyID,
			Name:         m.CurrencyName,
			Code:         m.CurrencyCode,
			Symbol:       m.CurrencySymbol,
			ExchangeRate: m.CurrencyRate,
			IsActive:     m.CurrencyIsActive,
		},
	}
}

func (r *Repository) ListCurrencies(ctx context.Context, activeOnly bool) ([]*model.Currency, error) {
	builder := squirrel.
		Select(currencyColumns...).
		From("currencies").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []Currency
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select currencies: %w", err)
	}

	out := make([]*model.Currency, len(rows))
	for i := range rows {
		out[i] = rows[i].toModel()
	}
	return out, nil
}

func (r *Repository) GetCurrency(ctx context.Context, id int64) (*model.Currency, error) {
	query, args, err := squirrel.
		Select(currencyColumns...).
		From("currencies").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row Currency
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (r *Repository) CreateCurrency(ctx context.Context, c *model.Currency) error {
	query, args, err := squirrel.
		Insert("currencies").
		SetMap(map[string]interface{}{
			"name":          c.Name,
			"code":          c.Code,
			"symbol":        c.Symbol,
			"exchange_rate": c.ExchangeRate,
			"is_active":     c.IsActive,
		}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build currency insert query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&c.ID); err != nil {
		return mapPgError(err, ErrAlreadyExists)
	}
	return nil
}

func (r *Repository) UpdateCurrency(ctx context.Context, c *model.Currency) error {
	query, args, err := squirrel.
		Update("currencies").
		SetMap(map[string]interface{}{
			"name":          c.Name,
			"code":          c.Code,
			"symbol":        c.Symbol,
			"exchange_rate": c.ExchangeRate,
			"is_active":     c.IsActive,
		}).
		Where(squirrel.Eq{"id": c.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, query, args)
}

// DeleteCurrency fails with ErrInUse while a withdrawal method references it.
func (r *Repository) DeleteCurrency(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete("currencies").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, query, args)
}

func methodSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"m.id", "m.name", "m.description", "m.icon_url", "m.min_amount", "m.max_amount",
			"m.currency_id", "m.required_fields", "m.is_active",
			"c.name AS currency_name", "c.code AS currency_code", "c.symbol AS currency_symbol",
			"c.exchange_rate AS currency_rate", "c.is_active AS currency_is_active",
		).
		From("withdrawal_methods m").
		Join("currencies c ON c.id = m.currency_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *Repository) ListWithdrawalMethods(ctx context.Context, activeOnly bool) ([]*model.WithdrawalMethod, error) {
	builder := methodSelect().OrderBy("m.id")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"m.is_active": true, "c.is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []WithdrawalMethod
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select withdrawal methods: %w", err)
	}

	out := make([]*model.WithdrawalMethod, len(rows))
	for i := range rows {
		out[i] = rows[i].toModel()
	}
	return out, nil
}

func (r *Repository) GetWithdrawalMethod(ctx context.Context, id int64) (*model.WithdrawalMethod, error) {
	query, args, err := methodSelect().Where(squirrel.Eq{"m.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var row WithdrawalMethod
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (r *Repository) CreateWithdrawalMethod(ctx context.Context, m *model.WithdrawalMethod) error {
	query, args, err := squirrel.
		Insert("withdrawal_methods").
		SetMap(methodValues(m)).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build withdrawal method insert query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&m.ID); err != nil {
		mapped := mapPgError(err, ErrAlreadyExists)
		if errors.Is(mapped, ErrInUse) {
			return ErrNotFound
		}
		return mapped
	}
	return nil
}

func (r *Repository) UpdateWithdrawalMethod(ctx context.Context, m *model.WithdrawalMethod) error {
	query, args, err := squirrel.
		Update("withdrawal_methods").
		SetMap(methodValues(m)).
		Where(squirrel.Eq{"id": m.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.execAffectingOne(ctx, query, args)
	if errors.Is(err, ErrInUse) {
		return ErrNotFound
	}
	return err
}

func (r *Repository) DeleteWithdrawalMethod(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete("withdrawal_methods").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, query, args)
}

func methodValues(m *model.WithdrawalMethod) map[string]interface{} {
	fields := m.RequiredFields
	if fields == nil {
		fields = []string{}
	}
	return map[string]interface{}{
		"name":            m.Name,
		"description":     m.Description,
		"icon_url":        m.IconURL,
		"min_amount":      m.MinAmount,
		"max_amount":      m.MaxAmount,
		"currency_id":     m.CurrencyID,
		"required_fields": pq.StringArray(fields),
		"is_active":       m.IsActive,
	}
}
