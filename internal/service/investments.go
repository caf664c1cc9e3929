package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rewards_miniapp/internal/model"

	"github.com/google/uuid"
)

type InvestmentService struct {
	repo     InvestmentRepository
	policy   RewardPolicy
	notifier AccountNotifier
}

func NewInvestmentService(repo InvestmentRepository, policy RewardPolicy, notifier AccountNotifier) *InvestmentService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &InvestmentService{
		repo:     repo,
		policy:   policy,
		notifier: notifier,
	}
}

func (s *InvestmentService) ListPackages(ctx context.Context, activeOnly bool) ([]*model.InvestmentPackage, error) {
	packages, err := s.repo.ListInvestmentPackages(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list investment packages: %w", err)
	}
	return packages, nil
}

// Subscribe charges the package price and opens a subscription window of
// NumberOfDays days starting now.
func (s *InvestmentService) Subscribe(ctx context.Context, telegramID int64, packageID uuid.UUID) (*model.InvestmentSubscription, error) {
	pkg, err := s.repo.GetInvestmentPackage(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get investment package: %w", mapRepoError(err))
	}
	if !pkg.IsActive {
		return nil, fmt.Errorf("%w: investment package %s is not available", ErrNotFound, packageID)
	}

	now := s.policy.now()
	sub := &model.InvestmentSubscription{
		ID:         uuid.New(),
		TelegramID: telegramID,
		PackageID:  pkg.ID,
		Package:    pkg,
		StartedAt:  now,
		EndsAt:     now.Add(time.Duration(pkg.NumberOfDays) * 24 * time.Hour),
	}

	var charged *model.Account
	err = s.repo.Subscribe(ctx, sub, func(acc *model.Account) ([]model.QuestEvent, error) {
		if err := chargePackage(acc, pkg); err != nil {
			return nil, err
		}
		charged = acc
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientBalance) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to subscribe: %w", mapRepoError(err))
	}

	if charged != nil {
		s.notifier.NotifyAccount(charged)
	}
	return sub, nil
}

func chargePackage(acc *model.Account, pkg *model.InvestmentPackage) error {
	if pkg.Type == model.PackagePoints {
		cost := pkg.Price.Floor().IntPart()
		if cost > acc.Points {
			return ErrInsufficientBalance
		}
		acc.Points -= cost
		return nil
	}

	balance := acc.Balance(pkg.RewardCurrency)
	if balance.LessThan(pkg.Price) {
		return ErrInsufficientBalance
	}
	*balance = balance.Sub(pkg.Price)
	return nil
}

// CompleteTask credits one day's reward of a running subscription.
func (s *InvestmentService) CompleteTask(ctx context.Context, telegramID int64, subscriptionID uuid.UUID) (*model.Account, *model.InvestmentSubscription, error) {
	now := s.policy.now()
	acc, sub, err := s.repo.CompleteInvestmentTask(ctx, telegramID, subscriptionID, func(sub *model.InvestmentSubscription, acc *model.Account) error {
		if !sub.ActiveAt(now) {
			return fmt.Errorf("%w: subscription is not running", ErrInvalidState)
		}
		if sub.LastTaskAt != nil && s.policy.SameDay(*sub.LastTaskAt, now) {
			return ErrAlreadyClaimedToday
		}

		balance := acc.Balance(sub.Package.RewardCurrency)
		*balance = balance.Add(sub.Package.RewardPerTask)

		doneAt := now
		sub.LastTaskAt = &doneAt
		sub.TasksCompleted++
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidState) || errors.Is(err, ErrAlreadyClaimedToday) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to complete investment task: %w", mapRepoError(err))
	}

	s.notifier.NotifyAccount(acc)
	return acc, sub, nil
}

func (s *InvestmentService) ListSubscriptions(ctx context.Context, telegramID int64) ([]*model.InvestmentSubscription, error) {
	subs, err := s.repo.ListSubscriptions(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

func validatePackage(p *model.InvestmentPackage) error {
	p.Title = strings.TrimSpace(p.Title)
	switch {
	case p.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	case p.Type != model.PackageOwn && p.Type != model.PackagePoints:
		return fmt.Errorf("%w: unknown package type %q", ErrInvalidInput, p.Type)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	case p.NumberOfDays <= 0:
		return fmt.Errorf("%w: number of days must be positive", ErrInvalidInput)
	case p.RewardPerTask.IsNegative():
		return fmt.Errorf("%w: reward per task must not be negative", ErrInvalidInput)
	case !p.RewardCurrency.Valid():
		return fmt.Errorf("%w: unknown reward currency %q", ErrInvalidInput, p.RewardCurrency)
	}
	return nil
}

func (s *InvestmentService) CreatePackage(ctx context.Context, p *model.InvestmentPackage) error {
	if err := validatePackage(p); err != nil {
		return err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := s.repo.CreateInvestmentPackage(ctx, p); err != nil {
		return fmt.Errorf("failed to create investment package: %w", mapRepoError(err))
	}
	return nil
}

func (s *InvestmentService) UpdatePackage(ctx context.Context, p *model.InvestmentPackage) error {
	if err := validatePackage(p); err != nil {
		return err
	}
	if err := s.repo.UpdateInvestmentPackage(ctx, p); err != nil {
		return fmt.Errorf("failed to update investment package: %w", mapRepoError(err))
	}
	return nil
}

func (s *InvestmentService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteInvestmentPackage(ctx, id); err != nil {
		return fmt.Errorf("failed to delete investment package: %w", mapRepoError(err))
	}
	return nil
}
