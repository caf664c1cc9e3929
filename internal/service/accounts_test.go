package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/repository"
	"rewards_miniapp/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	accounts []*model.Account
}

func (n *recordingNotifier) NotifyAccount(acc *model.Account) {
	n.accounts = append(n.accounts, acc)
}

// mutateOn makes a MutateAccount mock apply the mutation to acc, the way the
// repository does under a row lock.
func mutateOn(acc *model.Account, events *[]model.QuestEvent) func(context.Context, int64, model.AccountMutation) (*model.Account, error) {
	return func(_ context.Context, _ int64, fn model.AccountMutation) (*model.Account, error) {
		produced, err := fn(acc)
		if err != nil {
			return nil, err
		}
		if events != nil {
			*events = append(*events, produced...)
		}
		return acc, nil
	}
}

func TestAccountService_Authenticate(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		identity        model.TelegramIdentity
		mockSetup       func(*mocks.MockAccountRepository, *mocks.MockReferralServiceI)
		expectedCreated bool
		expectedError   error
		checkAdditional func(*testing.T, *model.Account)
	}{
		{
			name:          "Missing telegram id",
			identity:      model.TelegramIdentity{},
			mockSetup:     func(*mocks.MockAccountRepository, *mocks.MockReferralServiceI) {},
			expectedError: ErrInvalidInput,
		},
		{
			name:     "New account without referral",
			identity: model.TelegramIdentity{ID: 42, Username: "alice", FirstName: "Alice"},
			mockSetup: func(repo *mocks.MockAccountRepository, _ *mocks.MockReferralServiceI) {
				repo.On("GetOrCreateAccount", mock.Anything, mock.MatchedBy(func(acc *model.Account) bool {
					return acc.TelegramID == 42 && acc.Username == "alice" && acc.FirstName == "Alice"
				})).Return(&model.Account{TelegramID: 42, Username: "alice"}, true, nil)
			},
			expectedCreated: true,
		},
		{
			name:     "New account with referral code",
			identity: model.TelegramIdentity{ID: 43, Username: "bob", StartParam: "ref_42"},
			mockSetup: func(repo *mocks.MockAccountRepository, referrals *mocks.MockReferralServiceI) {
				repo.On("GetOrCreateAccount", mock.Anything, mock.Anything).
					Return(&model.Account{TelegramID: 43, Username: "bob"}, true, nil)
				referrals.On("CreateReferral", mock.Anything, int64(42), int64(43)).
					Return(&model.Referral{ReferrerID: 42, ReferredID: 43}, nil)
			},
			expectedCreated: true,
		},
		{
			name:     "Referral failure does not fail login",
			identity: model.TelegramIdentity{ID: 44, StartParam: "ref_42"},
			mockSetup: func(repo *mocks.MockAccountRepository, referrals *mocks.MockReferralServiceI) {
				repo.On("GetOrCreateAccount", mock.Anything, mock.Anything).
					Return(&model.Account{TelegramID: 44}, true, nil)
				referrals.On("CreateReferral", mock.Anything, int64(42), int64(44)).
					Return(nil, ErrAlreadyReferred)
			},
			expectedCreated: true,
		},
		{
			name:     "Existing account ignores referral code",
			identity: model.TelegramIdentity{ID: 45, Username: "carol", StartParam: "ref_42"},
			mockSetup: func(repo *mocks.MockAccountRepository, _ *mocks.MockReferralServiceI) {
				repo.On("GetOrCreateAccount", mock.Anything, mock.Anything).
					Return(&model.Account{TelegramID: 45, Username: "carol", Points: 900}, false, nil)
			},
			checkAdditional: func(t *testing.T, acc *model.Account) {
				assert.Equal(t, int64(900), acc.Points)
			},
		},
		{
			name:     "Existing account refreshes username",
			identity: model.TelegramIdentity{ID: 46, Username: "dave_new"},
			mockSetup: func(repo *mocks.MockAccountRepository, _ *mocks.MockReferralServiceI) {
				stored := &model.Account{TelegramID: 46, Username: "dave"}
				repo.On("GetOrCreateAccount", mock.Anything, mock.Anything).Return(stored, false, nil)
				repo.On("MutateAccount", mock.Anything, int64(46), mock.Anything).Return(mutateOn(stored, nil))
			},
			checkAdditional: func(t *testing.T, acc *model.Account) {
				assert.Equal(t, "dave_new", acc.Username)
			},
		},
		{
			name:     "Repository failure",
			identity: model.TelegramIdentity{ID: 47},
			mockSetup: func(repo *mocks.MockAccountRepository, _ *mocks.MockReferralServiceI) {
				repo.On("GetOrCreateAccount", mock.Anything, mock.Anything).
					Return(nil, false, errors.New("connection reset"))
			},
			expectedError: errors.New("failed to get or create account: connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository(t)
			referrals := mocks.NewMockReferralServiceI(t)
			tt.mockSetup(repo, referrals)

			svc := NewAccountService(repo, referrals, fixedPolicy(now), nil, nil)
			acc, created, err := svc.Authenticate(context.Background(), tt.identity)

			if tt.expectedError != nil {
				if errors.Is(tt.expectedError, ErrInvalidInput) {
					assert.ErrorIs(t, err, ErrInvalidInput)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				assert.Nil(t, acc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCreated, created)
			assert.Equal(t, tt.identity.ID, acc.TelegramID)
			if tt.checkAdditional != nil {
				tt.checkAdditional(t, acc)
			}
		})
	}
}

func TestAccountService_GetAccount(t *testing.T) {
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetAccount", mock.Anything, int64(1)).Return(nil, repository.ErrNotFound)

		svc := NewAccountService(repo, nil, fixedPolicy(now), nil, nil)
		_, err := svc.GetAccount(context.Background(), 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("same day counter is kept", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetAccount", mock.Anything, int64(2)).Return(&model.Account{
			TelegramID:      2,
			AdsWatchedToday: 3,
			LastAdWatch:     timePtr(now.Add(-time.Hour)),
		}, nil)

		svc := NewAccountService(repo, nil, fixedPolicy(now), nil, nil)
		acc, err := svc.GetAccount(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, 3, acc.AdsWatchedToday)
	})

	t.Run("stale counter is reset", func(t *testing.T) {
		stored := &model.Account{
			TelegramID:      3,
			AdsWatchedToday: 30,
			LastAdWatch:     timePtr(now.Add(-12 * time.Hour)),
		}
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetAccount", mock.Anything, int64(3)).Return(stored, nil)
		repo.On("MutateAccount", mock.Anything, int64(3), mock.Anything).Return(mutateOn(stored, nil))

		svc := NewAccountService(repo, nil, fixedPolicy(now), nil, nil)
		acc, err := svc.GetAccount(context.Background(), 3)
		require.NoError(t, err)
		assert.Zero(t, acc.AdsWatchedToday)
	})
}

func TestAccountService_AddPoints(t *testing.T) {
	tests := []struct {
		name           string
		amount         int64
		mockSetup      func(*mocks.MockAccountRepository)
		expectedError  error
		expectedPoints int64
	}{
		{
			name:          "Zero amount",
			amount:        0,
			mockSetup:     func(*mocks.MockAccountRepository) {},
			expectedError: ErrInvalidInput,
		},
		{
			name:          "Negative amount",
			amount:        -10,
			mockSetup:     func(*mocks.MockAccountRepository) {},
			expectedError: ErrInvalidInput,
		},
		{
			name:   "Unknown account",
			amount: 10,
			mockSetup: func(repo *mocks.MockAccountRepository) {
				repo.On("MutateAccount", mock.Anything, int64(5), mock.Anything).Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrNotFound,
		},
		{
			name:   "Credits the balance",
			amount: 250,
			mockSetup: func(repo *mocks.MockAccountRepository) {
				repo.On("MutateAccount", mock.Anything, int64(5), mock.Anything).
					Return(mutateOn(&model.Account{TelegramID: 5, Points: 100}, nil))
			},
			expectedPoints: 350,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository(t)
			tt.mockSetup(repo)
			notifier := &recordingNotifier{}

			svc := NewAccountService(repo, nil, DefaultRewardPolicy(), nil, notifier)
			acc, err := svc.AddPoints(context.Background(), 5, tt.amount)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, notifier.accounts)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPoints, acc.Points)
			assert.Len(t, notifier.accounts, 1)
		})
	}
}

func TestAccountService_RecordWatchedAd(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	t.Run("credits reward and emits quest event", func(t *testing.T) {
		stored := &model.Account{TelegramID: 9, Points: 1000, AdsWatchedToday: 2, LastAdWatch: timePtr(now.Add(-time.Hour))}
		var events []model.QuestEvent

		repo := mocks.NewMockAccountRepository(t)
		repo.On("MutateAccount", mock.Anything, int64(9), mock.Anything).Return(mutateOn(stored, &events))

		svc := NewAccountService(repo, nil, fixedPolicy(now), nil, nil)
		acc, err := svc.RecordWatchedAd(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, int64(1500), acc.Points)
		assert.Equal(t, 3, acc.AdsWatchedToday)
		assert.Equal(t, []model.QuestEvent{{Type: model.QuestWatchAds, Delta: 1, At: now}}, events)
	})

	t.Run("daily cap", func(t *testing.T) {
		stored := &model.Account{TelegramID: 9, Points: 15000, AdsWatchedToday: 30, LastAdWatch: timePtr(now.Add(-time.Minute))}

		repo := mocks.NewMockAccountRepository(t)
		repo.On("MutateAccount", mock.Anything, int64(9), mock.Anything).Return(mutateOn(stored, nil))

		svc := NewAccountService(repo, nil, fixedPolicy(now), nil, nil)
		_, err := svc.RecordWatchedAd(context.Background(), 9)
		assert.ErrorIs(t, err, ErrDailyLimitExceeded)
		assert.Equal(t, int64(15000), stored.Points)
	})

	t.Run("thirty first ad after midnight", func(t *testing.T) {
		stored := &model.Account{TelegramID: 9, AdsWatchedToday: 30, LastAdWatch: timePtr(now.Add(-20 * time.Hour))}

		repo := mocks.NewMockAccountRepository(t)
		repo.On("MutateAccount", mock.Anything, int64(9), mock.Anything).Return(mutateOn(stored, nil))

		svc := NewAccountService(repo, nil, fixedPolicy(now), nil, nil)
		acc, err := svc.RecordWatchedAd(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, 1, acc.AdsWatchedToday)
		assert.Equal(t, int64(DefaultAdReward), acc.Points)
	})
}

func TestAccountService_DailyBonus(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	stored := &model.Account{TelegramID: 11, Points: 10}

	repo := mocks.NewMockAccountRepository(t)
	repo.On("GetAccount", mock.Anything, int64(11)).Return(stored, nil)
	repo.On("MutateAccount", mock.Anything, int64(11), mock.Anything).Return(mutateOn(stored, nil))

	svc := NewAccountService(repo, nil, fixedPolicy(now), nil, nil)

	status, err := svc.GetDailyBonusStatus(context.Background(), 11)
	require.NoError(t, err)
	assert.True(t, status.IsAvailable)

	acc, err := svc.ClaimDailyBonus(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(10+DefaultDailyBonus), acc.Points)

	_, err = svc.ClaimDailyBonus(context.Background(), 11)
	assert.ErrorIs(t, err, ErrAlreadyClaimedToday)

	status, err = svc.GetDailyBonusStatus(context.Background(), 11)
	require.NoError(t, err)
	assert.False(t, status.IsAvailable)
	require.NotNil(t, status.NextClaimAvailable)
}

func TestAccountService_ListAccountsClampsPage(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	repo.On("ListAccounts", mock.Anything, uint64(defaultAccountsPage), uint64(0)).Return([]*model.Account{}, nil).Once()
	repo.On("ListAccounts", mock.Anything, uint64(maxAccountsPage), uint64(20)).Return([]*model.Account{}, nil).Once()

	svc := NewAccountService(repo, nil, DefaultRewardPolicy(), nil, nil)

	_, err := svc.ListAccounts(context.Background(), 0, 0)
	require.NoError(t, err)
	_, err = svc.ListAccounts(context.Background(), 10_000, 20)
	require.NoError(t, err)
}

func TestAccountService_AdjustInvestmentBalance(t *testing.T) {
	tests := []struct {
		name          string
		currency      model.InvestmentCurrency
		delta         string
		expectedError error
		expectedUSD   string
		expectedEGP   string
	}{
		{name: "Unknown currency", currency: "eur", delta: "5", expectedError: ErrInvalidInput},
		{name: "Zero delta", currency: model.CurrencyUSD, delta: "0", expectedError: ErrInvalidInput},
		{name: "Sub-cent credit", currency: model.CurrencyUSD, delta: "0.001", expectedError: ErrInvalidInput},
		{name: "Sub-cent debit", currency: model.CurrencyEGP, delta: "-1.255", expectedError: ErrInvalidInput},
		{name: "Credit usd", currency: model.CurrencyUSD, delta: "12.5", expectedUSD: "22.5", expectedEGP: "100"},
		{name: "Debit egp", currency: model.CurrencyEGP, delta: "-40", expectedUSD: "10", expectedEGP: "60"},
		{name: "Overdraft", currency: model.CurrencyEGP, delta: "-100.01", expectedError: ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := &model.Account{
				TelegramID:           12,
				InvestmentUSDBalance: decimal.NewFromInt(10),
				InvestmentEGPBalance: decimal.NewFromInt(100),
			}
			repo := &mocks.MockAccountRepository{}
			repo.On("MutateAccount", mock.Anything, int64(12), mock.Anything).Return(mutateOn(stored, nil)).Maybe()

			svc := NewAccountService(repo, nil, DefaultRewardPolicy(), nil, nil)
			acc, err := svc.AdjustInvestmentBalance(context.Background(), 12, tt.currency, decimal.RequireFromString(tt.delta))

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.True(t, acc.InvestmentUSDBalance.Equal(decimal.RequireFromString(tt.expectedUSD)))
			assert.True(t, acc.InvestmentEGPBalance.Equal(decimal.RequireFromString(tt.expectedEGP)))
		})
	}
}
