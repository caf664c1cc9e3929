package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/repository"

	"github.com/google/uuid"
)

type nopWithdrawalNotifier struct{}

func (nopWithdrawalNotifier) NotifyWithdrawal(context.Context, *model.Withdrawal) {}

type WithdrawalService struct {
	repo     WithdrawalRepository
	policy   RewardPolicy
	notifier AccountNotifier
	resolved WithdrawalNotifier
}

func NewWithdrawalService(
	repo WithdrawalRepository,
	policy RewardPolicy,
	notifier AccountNotifier,
	resolved WithdrawalNotifier,
) *WithdrawalService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if resolved == nil {
		resolved = nopWithdrawalNotifier{}
	}
	return &WithdrawalService{
		repo:     repo,
		policy:   policy,
		notifier: notifier,
		resolved: resolved,
	}
}

// RequestWithdrawal validates the amount against the method bounds, converts it
// into points and debits them together with storing the pending request.
func (s *WithdrawalService) RequestWithdrawal(ctx context.Context, telegramID int64, req model.WithdrawalRequest) (*model.Withdrawal, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if !HasCurrencyPrecision(req.Amount) {
		return nil, fmt.Errorf("%w: amount has more than %d decimal places", ErrInvalidInput, currencyPlaces)
	}

	method, err := s.repo.GetWithdrawalMethod(ctx, req.MethodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal method: %w", mapRepoError(err))
	}
	if !method.IsActive || method.Currency == nil || !method.Currency.IsActive {
		return nil, fmt.Errorf("%w: withdrawal method %d is not available", ErrNotFound, method.ID)
	}

	if req.Amount.LessThan(method.MinAmount) || req.Amount.GreaterThan(method.MaxAmount) {
		return nil, fmt.Errorf("%w: amount must be between %s and %s %s",
			ErrInvalidInput, method.MinAmount, method.MaxAmount, method.Currency.Code)
	}

	details := make(map[string]string, len(method.RequiredFields))
	for _, field := range method.RequiredFields {
		value := strings.TrimSpace(req.Details[field])
		if value == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
		}
		details[field] = value
	}

	cost := PointCost(req.Amount, method.Currency.ExchangeRate)
	if cost <= 0 {
		return nil, fmt.Errorf("%w: amount is too small", ErrInvalidInput)
	}

	w := &model.Withdrawal{
		ID:          uuid.New(),
		TelegramID:  telegramID,
		MethodID:    method.ID,
		MethodName:  method.Name,
		Amount:      req.Amount,
		PointsSpent: cost,
		Details:     details,
		Status:      model.WithdrawalPending,
		CreatedAt:   s.policy.now(),
	}

	var debited *model.Account
	err = s.repo.CreateWithdrawal(ctx, w, func(acc *model.Account) ([]model.QuestEvent, error) {
		if err := DebitForWithdrawal(acc, cost); err != nil {
			return nil, err
		}
		debited = acc
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientBalance) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create withdrawal: %w", mapRepoError(err))
	}

	if debited != nil {
		s.notifier.NotifyAccount(debited)
	}
	return w, nil
}

func (s *WithdrawalService) ListWithdrawalsFor(ctx context.Context, telegramID int64) ([]*model.Withdrawal, error) {
	withdrawals, err := s.repo.ListWithdrawalsByAccount(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return withdrawals, nil
}

func (s *WithdrawalService) ListWithdrawals(ctx context.Context, status model.WithdrawalStatus) ([]*model.Withdrawal, error) {
	switch status {
	case "", model.WithdrawalPending, model.WithdrawalApproved, model.WithdrawalRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	withdrawals, err := s.repo.ListWithdrawals(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return withdrawals, nil
}

func (s *WithdrawalService) Approve(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error) {
	return s.resolve(ctx, id, model.WithdrawalApproved)
}

// Reject marks the request rejected and refunds its points.
func (s *WithdrawalService) Reject(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error) {
	return s.resolve(ctx, id, model.WithdrawalRejected)
}

func (s *WithdrawalService) resolve(ctx context.Context, id uuid.UUID, status model.WithdrawalStatus) (*model.Withdrawal, error) {
	now := s.policy.now()

	var refunded *model.Account
	w, err := s.repo.ResolveWithdrawal(ctx, id, func(w *model.Withdrawal) (model.AccountMutation, error) {
		if w.Status != model.WithdrawalPending {
			return nil, fmt.Errorf("%w: withdrawal is already %s", ErrInvalidState, w.Status)
		}

		w.Status = status
		completedAt := now
		w.CompletedAt = &completedAt

		if status != model.WithdrawalRejected {
			return nil, nil
		}
		points := w.PointsSpent
		return func(acc *model.Account) ([]model.QuestEvent, error) {
			RefundWithdrawal(acc, points)
			refunded = acc
			return nil, nil
		}, nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidState) {
			return nil, err
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: withdrawal %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to resolve withdrawal: %w", err)
	}

	if refunded != nil {
		s.notifier.NotifyAccount(refunded)
	}
	s.resolved.NotifyWithdrawal(ctx, w)
	return w, nil
}
