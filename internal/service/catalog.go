package service

import (
	"context"
	"fmt"
	"strings"

	"rewards_miniapp/internal/model"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListCurrencies(ctx context.Context, activeOnly bool) ([]*model.Currency, error) {
	currencies, err := s.repo.ListCurrencies(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

func validateCurrency(c *model.Currency) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case c.Code == "":
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	case !c.ExchangeRate.IsPositive():
		return fmt.Errorf("%w: exchange rate must be positive", ErrInvalidInput)
	}
	return nil
}

func (s *CatalogService) CreateCurrency(ctx context.Context, c *model.Currency) error {
	if err := validateCurrency(c); err != nil {
		return err
	}
	if err := s.repo.CreateCurrency(ctx, c); err != nil {
		return fmt.Errorf("failed to create currency: %w", mapRepoError(err))
	}
	return nil
}

func (s *CatalogService) UpdateCurrency(ctx context.Context, c *model.Currency) error {
	if err := validateCurrency(c); err != nil {
		return err
	}
	if err := s.repo.UpdateCurrency(ctx, c); err != nil {
		return fmt.Errorf("failed to update currency: %w", mapRepoError(err))
	}
	return nil
}

// DeleteCurrency fails with ErrConflict while withdrawal methods still use it.
func (s *CatalogService) DeleteCurrency(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCurrency(ctx, id); err != nil {
		return fmt.Errorf("failed to delete currency: %w", mapRepoError(err))
	}
	return nil
}

func (s *CatalogService) ListWithdrawalMethods(ctx context.Context, activeOnly bool) ([]*model.WithdrawalMethod, error) {
	methods, err := s.repo.ListWithdrawalMethods(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawal methods: %w", err)
	}
	return methods, nil
}

func validateMethod(m *model.WithdrawalMethod) error {
	m.Name = strings.TrimSpace(m.Name)
	switch {
	case m.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case m.CurrencyID <= 0:
		return fmt.Errorf("%w: currency is required", ErrInvalidInput)
	case !m.MinAmount.IsPositive():
		return fmt.Errorf("%w: min amount must be positive", ErrInvalidInput)
	case m.MaxAmount.LessThan(m.MinAmount):
		return fmt.Errorf("%w: max amount must not be below min amount", ErrInvalidInput)
	}

	fields := make([]string, 0, len(m.RequiredFields))
	for _, f := range m.RequiredFields {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	m.RequiredFields = fields
	return nil
}

func (s *CatalogService) CreateWithdrawalMethod(ctx context.Context, m *model.WithdrawalMethod) error {
	if err := validateMethod(m); err != nil {
		return err
	}
	currency, err := s.repo.GetCurrency(ctx, m.CurrencyID)
	if err != nil {
		return fmt.Errorf("failed to get currency: %w", mapRepoError(err))
	}
	m.Currency = currency

	if err := s.repo.CreateWithdrawalMethod(ctx, m); err != nil {
		return fmt.Errorf("failed to create withdrawal method: %w", mapRepoError(err))
	}
	return nil
}

func (s *CatalogService) UpdateWithdrawalMethod(ctx context.Context, m *model.WithdrawalMethod) error {
	if err := validateMethod(m); err != nil {
		return err
	}
	if err := s.repo.UpdateWithdrawalMethod(ctx, m); err != nil {
		return fmt.Errorf("failed to update withdrawal method: %w", mapRepoError(err))
	}
	return nil
}

func (s *CatalogService) DeleteWithdrawalMethod(ctx context.Context, id int64) error {
	if err := s.repo.DeleteWithdrawalMethod(ctx, id); err != nil {
		return fmt.Errorf("failed to delete withdrawal method: %w", mapRepoError(err))
	}
	return nil
}
