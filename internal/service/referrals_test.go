package service

import (
	"context"
	"testing"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/repository"
	"rewards_miniapp/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReferralService_CreateReferral(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		referrerID     int64
		referredID     int64
		mockSetup      func(*mocks.MockReferralRepository, *model.Account, *[]model.QuestEvent)
		expectedError  error
		expectedPoints int64
	}{
		{
			name:           "Self referral",
			referrerID:     10,
			referredID:     10,
			mockSetup:      func(*mocks.MockReferralRepository, *model.Account, *[]model.QuestEvent) {},
			expectedError:  ErrInvalidInput,
			expectedPoints: 200,
		},
		{
			name:           "Missing referrer",
			referrerID:     0,
			referredID:     11,
			mockSetup:      func(*mocks.MockReferralRepository, *model.Account, *[]model.QuestEvent) {},
			expectedError:  ErrInvalidInput,
			expectedPoints: 200,
		},
		{
			name:       "Already referred",
			referrerID: 10,
			referredID: 11,
			mockSetup: func(repo *mocks.MockReferralRepository, _ *model.Account, _ *[]model.QuestEvent) {
				repo.On("CreateReferral", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrAlreadyReferred)
			},
			expectedError:  ErrAlreadyReferred,
			expectedPoints: 200,
		},
		{
			name:       "Unknown referrer",
			referrerID: 999,
			referredID: 11,
			mockSetup: func(repo *mocks.MockReferralRepository, _ *model.Account, _ *[]model.QuestEvent) {
				repo.On("CreateReferral", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrNotFound)
			},
			expectedError:  ErrNotFound,
			expectedPoints: 200,
		},
		{
			name:       "Credits the referrer",
			referrerID: 10,
			referredID: 11,
			mockSetup: func(repo *mocks.MockReferralRepository, referrer *model.Account, events *[]model.QuestEvent) {
				repo.On("CreateReferral", mock.Anything, mock.MatchedBy(func(ref *model.Referral) bool {
					return ref.ReferrerID == 10 && ref.ReferredID == 11 && ref.PointsEarned == DefaultReferralBonus
				}), mock.Anything).
					Return(func(_ context.Context, _ *model.Referral, credit model.AccountMutation) error {
						produced, err := credit(referrer)
						*events = produced
						return err
					})
			},
			expectedPoints: 200 + DefaultReferralBonus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			referrer := &model.Account{TelegramID: tt.referrerID, Points: 200}
			var events []model.QuestEvent

			repo := mocks.NewMockReferralRepository(t)
			tt.mockSetup(repo, referrer, &events)
			notifier := &recordingNotifier{}

			svc := NewReferralService(repo, fixedPolicy(now), notifier)
			ref, err := svc.CreateReferral(context.Background(), tt.referrerID, tt.referredID)

			assert.Equal(t, tt.expectedPoints, referrer.Points)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, ref)
				return
			}

			require.NoError(t, err)
			assert.True(t, ref.CreatedAt.Equal(now))
			assert.Equal(t, []model.QuestEvent{{Type: model.QuestInviteFriends, Delta: 1, At: now}}, events)
			require.Len(t, notifier.accounts, 1)
			assert.Equal(t, referrer, notifier.accounts[0])
		})
	}
}

func TestReferralService_ListReferrals(t *testing.T) {
	now := time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC)

	repo := mocks.NewMockReferralRepository(t)
	repo.On("ListReferrals", mock.Anything, int64(10)).Return([]*model.Referral{
		{ReferredID: 11, ReferredUsername: "a", PointsEarned: 1000, CreatedAt: now.Add(-2 * time.Hour)},
		{ReferredID: 12, ReferredUsername: "b", PointsEarned: 1000, CreatedAt: now.Add(-30 * time.Hour)},
		{ReferredID: 13, ReferredUsername: "c", PointsEarned: 1000, CreatedAt: now.Add(-4 * 24 * time.Hour)},
		{ReferredID: 14, ReferredUsername: "d", PointsEarned: 500, CreatedAt: now.Add(-9 * 24 * time.Hour)},
		{ReferredID: 15, ReferredUsername: "e", PointsEarned: 500, CreatedAt: now.Add(-22 * 24 * time.Hour)},
	}, nil)

	svc := NewReferralService(repo, fixedPolicy(now), nil)
	summary, err := svc.ListReferrals(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Count)
	assert.Equal(t, int64(4000), summary.TotalEarned)

	labels := make([]string, 0, len(summary.Referrals))
	for _, ref := range summary.Referrals {
		labels = append(labels, ref.JoinedLabel)
	}
	assert.Equal(t, []string{"today", "yesterday", "4 days ago", "1 week ago", "3 weeks ago"}, labels)
}

func TestReferralService_ListReferralsEmpty(t *testing.T) {
	repo := mocks.NewMockReferralRepository(t)
	repo.On("ListReferrals", mock.Anything, int64(10)).Return(nil, nil)

	svc := NewReferralService(repo, DefaultRewardPolicy(), nil)
	summary, err := svc.ListReferrals(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, summary.Count)
	assert.Zero(t, summary.TotalEarned)
}
