package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	leaderboardSize     = 100
	defaultAccountsPage = 50
	maxAccountsPage     = 500

	actionWatchAd = "watch_ad"
)

type nopNotifier struct{}

func (nopNotifier) NotifyAccount(*model.Account) {}

type AccountService struct {
	repo      AccountRepository
	referrals ReferralServiceI
	policy    RewardPolicy
	limiter   *RateLimiter
	notifier  AccountNotifier
}

func NewAccountService(
	repo AccountRepository,
	referrals ReferralServiceI,
	policy RewardPolicy,
	limiter *RateLimiter,
	notifier AccountNotifier,
) *AccountService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &AccountService{
		repo:      repo,
		referrals: referrals,
		policy:    policy,
		limiter:   limiter,
		notifier:  notifier,
	}
}

// Authenticate returns the caller's account, creating it on first contact.
// A new account whose start parameter carries a referral code is linked to
// its referrer. Referral failures never fail the login.
func (s *AccountService) Authenticate(ctx context.Context, identity model.TelegramIdentity) (*model.Account, bool, error) {
	if identity.ID <= 0 {
		return nil, false, fmt.Errorf("%w: telegram id is required", ErrInvalidInput)
	}

	acc, created, err := s.repo.GetOrCreateAccount(ctx, &model.Account{
		TelegramID: identity.ID,
		Username:   identity.Username,
		FirstName:  identity.FirstName,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get or create account: %w", mapRepoError(err))
	}

	if created {
		s.linkReferrer(ctx, acc.TelegramID, identity.StartParam)
		return acc, true, nil
	}

	if identity.Username != "" && identity.Username != acc.Username {
		acc, err = s.repo.MutateAccount(ctx, acc.TelegramID, func(a *model.Account) ([]model.QuestEvent, error) {
			a.Username = identity.Username
			return nil, nil
		})
		if err != nil {
			return nil, false, fmt.Errorf("failed to refresh username: %w", mapRepoError(err))
		}
	}

	return acc, false, nil
}

func (s *AccountService) linkReferrer(ctx context.Context, telegramID int64, startParam string) {
	referrerID, ok := ParseReferralCode(startParam)
	if !ok || s.referrals == nil {
		return
	}

	log := logger.Logger()
	if _, err := s.referrals.CreateReferral(ctx, referrerID, telegramID); err != nil {
		log.Info("referral not recorded",
			zap.Int64("referrer_id", referrerID),
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
	}
}

// GetAccount returns the account and resets a stale daily ad counter.
func (s *AccountService) GetAccount(ctx context.Context, telegramID int64) (*model.Account, error) {
	acc, err := s.repo.GetAccount(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", mapRepoError(err))
	}

	now := s.policy.now()
	probe := *acc
	if !s.policy.ResetAdsIfNewDay(&probe, now) {
		return acc, nil
	}

	acc, err = s.repo.MutateAccount(ctx, telegramID, func(a *model.Account) ([]model.QuestEvent, error) {
		s.policy.ResetAdsIfNewDay(a, now)
		return nil, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset daily ad counter: %w", mapRepoError(err))
	}
	return acc, nil
}

func (s *AccountService) AddPoints(ctx context.Context, telegramID int64, amount int64) (*model.Account, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	acc, err := s.repo.MutateAccount(ctx, telegramID, func(a *model.Account) ([]model.QuestEvent, error) {
		return nil, ApplyAddPoints(a, amount)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add points: %w", mapRepoError(err))
	}

	s.notifier.NotifyAccount(acc)
	return acc, nil
}

func (s *AccountService) RecordWatchedAd(ctx context.Context, telegramID int64) (*model.Account, error) {
	allowed, err := s.limiter.Allow(ctx, telegramID, actionWatchAd, s.policy.AdCooldown)
	if err != nil {
		return nil, err
	}
	if !allowed {
		ttl, err := s.limiter.TTL(ctx, telegramID, actionWatchAd)
		if err != nil {
			logger.Logger().Warn("failed to read ad cooldown", zap.Int64("telegram_id", telegramID), zap.Error(err))
			return nil, fmt.Errorf("%w: ad cooldown is active", ErrRateLimited)
		}
		return nil, fmt.Errorf("%w: next ad available in %s", ErrRateLimited, ttl.Round(time.Second))
	}

	now := s.policy.now()
	acc, err := s.repo.MutateAccount(ctx, telegramID, func(a *model.Account) ([]model.QuestEvent, error) {
		return s.policy.ApplyWatchedAd(a, now)
	})
	if err != nil {
		if clearErr := s.limiter.Clear(ctx, telegramID, actionWatchAd); clearErr != nil {
			logger.Logger().Warn("failed to clear ad cooldown", zap.Error(clearErr))
		}
		if errors.Is(err, ErrDailyLimitExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record watched ad: %w", mapRepoError(err))
	}

	s.notifier.NotifyAccount(acc)
	return acc, nil
}

func (s *AccountService) GetDailyBonusStatus(ctx context.Context, telegramID int64) (*model.DailyBonus, error) {
	acc, err := s.repo.GetAccount(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", mapRepoError(err))
	}

	return s.policy.DailyBonusStatus(acc, s.policy.now()), nil
}

func (s *AccountService) ClaimDailyBonus(ctx context.Context, telegramID int64) (*model.Account, error) {
	now := s.policy.now()
	acc, err := s.repo.MutateAccount(ctx, telegramID, func(a *model.Account) ([]model.QuestEvent, error) {
		return s.policy.ApplyDailyBonus(a, now)
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyClaimedToday) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to claim daily bonus: %w", mapRepoError(err))
	}

	s.notifier.NotifyAccount(acc)
	return acc, nil
}

func (s *AccountService) GetLeaderboard(ctx context.Context) ([]*model.Account, error) {
	accounts, err := s.repo.GetTopAccounts(ctx, leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get top accounts: %w", err)
	}
	return accounts, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, limit, offset uint64) ([]*model.Account, error) {
	if limit == 0 {
		limit = defaultAccountsPage
	}
	if limit > maxAccountsPage {
		limit = maxAccountsPage
	}

	accounts, err := s.repo.ListAccounts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// AdjustInvestmentBalance credits a positive delta or debits a negative one.
// A debit below zero fails with ErrInsufficientBalance.
func (s *AccountService) AdjustInvestmentBalance(
	ctx context.Context,
	telegramID int64,
	currency model.InvestmentCurrency,
	delta decimal.Decimal,
) (*model.Account, error) {
	if !currency.Valid() {
		return nil, fmt.Errorf("%w: unknown currency %q", ErrInvalidInput, currency)
	}
	if delta.IsZero() {
		return nil, fmt.Errorf("%w: amount must not be zero", ErrInvalidInput)
	}
	if !HasCurrencyPrecision(delta) {
		return nil, fmt.Errorf("%w: amount has more than %d decimal places", ErrInvalidInput, currencyPlaces)
	}

	acc, err := s.repo.MutateAccount(ctx, telegramID, func(a *model.Account) ([]model.QuestEvent, error) {
		balance := a.Balance(currency)
		next := balance.Add(delta)
		if next.IsNegative() {
			return nil, ErrInsufficientBalance
		}
		*balance = next
		return nil, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to adjust investment balance: %w", mapRepoError(err))
	}

	s.notifier.NotifyAccount(acc)
	return acc, nil
}
