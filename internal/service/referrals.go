package service

import (
	"context"
	"fmt"

	"rewards_miniapp/internal/model"
)

type ReferralService struct {
	repo     ReferralRepository
	policy   RewardPolicy
	notifier AccountNotifier
}

func NewReferralService(repo ReferralRepository, policy RewardPolicy, notifier AccountNotifier) *ReferralService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &ReferralService{
		repo:     repo,
		policy:   policy,
		notifier: notifier,
	}
}

// CreateReferral links referredID to referrerID and credits the referral bonus
// to the referrer. Each account can be referred only once.
func (s *ReferralService) CreateReferral(ctx context.Context, referrerID, referredID int64) (*model.Referral, error) {
	if referrerID <= 0 || referredID <= 0 {
		return nil, fmt.Errorf("%w: referrer and referred ids are required", ErrInvalidInput)
	}
	if referrerID == referredID {
		return nil, fmt.Errorf("%w: an account cannot refer itself", ErrInvalidInput)
	}

	now := s.policy.now()
	ref := &model.Referral{
		ReferrerID:   referrerID,
		ReferredID:   referredID,
		PointsEarned: s.policy.ReferralBonus,
		CreatedAt:    now,
	}

	var referrer *model.Account
	err := s.repo.CreateReferral(ctx, ref, func(acc *model.Account) ([]model.QuestEvent, error) {
		acc.Points += ref.PointsEarned
		referrer = acc
		return []model.QuestEvent{{Type: model.QuestInviteFriends, Delta: 1, At: now}}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create referral: %w", mapRepoError(err))
	}

	if referrer != nil {
		s.notifier.NotifyAccount(referrer)
	}
	return ref, nil
}

func (s *ReferralService) ListReferrals(ctx context.Context, telegramID int64) (*model.ReferralSummary, error) {
	refs, err := s.repo.ListReferrals(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", mapRepoError(err))
	}

	now := s.policy.now()
	summary := &model.ReferralSummary{
		Referrals: refs,
		Count:     len(refs),
	}
	for _, ref := range refs {
		ref.JoinedLabel = ElapsedLabel(ElapsedDays(ref.CreatedAt, now))
		summary.TotalEarned += ref.PointsEarned
	}

	return summary, nil
}
