package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"rewards_miniapp/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func fixedPolicy(now time.Time) RewardPolicy {
	policy := DefaultRewardPolicy()
	policy.Now = func() time.Time { return now }
	return policy
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestRewardPolicy_ApplyWatchedAd(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	policy := fixedPolicy(now)

	tests := []struct {
		name           string
		account        model.Account
		expectedError  error
		expectedAds    int
		expectedPoints int64
	}{
		{
			name:           "First ad ever",
			account:        model.Account{Points: 100},
			expectedAds:    1,
			expectedPoints: 600,
		},
		{
			name: "One below the cap",
			account: model.Account{
				Points:          0,
				AdsWatchedToday: 29,
				LastAdWatch:     timePtr(now.Add(-time.Minute)),
			},
			expectedAds:    30,
			expectedPoints: 500,
		},
		{
			name: "Cap reached today",
			account: model.Account{
				Points:          15000,
				AdsWatchedToday: 30,
				LastAdWatch:     timePtr(now.Add(-time.Hour)),
			},
			expectedError:  ErrDailyLimitExceeded,
			expectedAds:    30,
			expectedPoints: 15000,
		},
		{
			name: "Cap reached yesterday resets",
			account: model.Account{
				Points:          15000,
				AdsWatchedToday: 30,
				LastAdWatch:     timePtr(now.Add(-24 * time.Hour)),
			},
			expectedAds:    1,
			expectedPoints: 15500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := tt.account
			events, err := policy.ApplyWatchedAd(&acc, now)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, events)
			} else {
				require.NoError(t, err)
				require.Len(t, events, 1)
				assert.Equal(t, model.QuestWatchAds, events[0].Type)
				assert.Equal(t, 1, events[0].Delta)
				require.NotNil(t, acc.LastAdWatch)
				assert.True(t, acc.LastAdWatch.Equal(now))
			}
			assert.Equal(t, tt.expectedAds, acc.AdsWatchedToday)
			assert.Equal(t, tt.expectedPoints, acc.Points)
		})
	}
}

func TestRewardPolicy_ApplyWatchedAdProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := DefaultRewardPolicy()
		policy.DailyAdCap = rapid.IntRange(1, 40).Draw(t, "cap")

		acc := &model.Account{}
		now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		perDay := map[string]int{}
		var credited int64

		steps := rapid.IntRange(1, 150).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			now = now.Add(time.Duration(rapid.IntRange(0, 180).Draw(t, "gap")) * time.Minute)
			day := now.Format(time.DateOnly)
			before := acc.Points

			events, err := policy.ApplyWatchedAd(acc, now)
			if perDay[day] >= policy.DailyAdCap {
				if !errors.Is(err, ErrDailyLimitExceeded) {
					t.Fatalf("expected daily limit on %s, got %v", day, err)
				}
				if acc.Points != before {
					t.Fatalf("rejected ad changed points from %d to %d", before, acc.Points)
				}
				continue
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			perDay[day]++
			credited += policy.AdReward
			if acc.AdsWatchedToday != perDay[day] {
				t.Fatalf("ads today = %d, want %d", acc.AdsWatchedToday, perDay[day])
			}
			if len(events) != 1 || events[0].Type != model.QuestWatchAds {
				t.Fatalf("unexpected events %v", events)
			}
		}

		if acc.Points != credited {
			t.Fatalf("points = %d, want %d", acc.Points, credited)
		}
		if acc.AdsWatchedToday > policy.DailyAdCap {
			t.Fatalf("counter %d exceeds cap %d", acc.AdsWatchedToday, policy.DailyAdCap)
		}
	})
}

func TestRewardPolicy_ResetAdsIfNewDay(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 30, 0, 0, time.UTC)
	policy := fixedPolicy(now)

	t.Run("never watched", func(t *testing.T) {
		acc := &model.Account{}
		assert.False(t, policy.ResetAdsIfNewDay(acc, now))
	})

	t.Run("watched earlier today", func(t *testing.T) {
		acc := &model.Account{AdsWatchedToday: 4, LastAdWatch: timePtr(now.Add(-10 * time.Minute))}
		assert.False(t, policy.ResetAdsIfNewDay(acc, now))
		assert.Equal(t, 4, acc.AdsWatchedToday)
	})

	t.Run("watched before midnight", func(t *testing.T) {
		acc := &model.Account{AdsWatchedToday: 4, LastAdWatch: timePtr(now.Add(-time.Hour))}
		assert.True(t, policy.ResetAdsIfNewDay(acc, now))
		assert.Zero(t, acc.AdsWatchedToday)
	})

	t.Run("calendar day follows location", func(t *testing.T) {
		cairo := time.FixedZone("EET", 2*60*60)
		local := policy
		local.Location = cairo

		// 23:00 UTC on the 9th is already the 10th in Cairo.
		acc := &model.Account{AdsWatchedToday: 4, LastAdWatch: timePtr(time.Date(2024, 5, 9, 23, 0, 0, 0, time.UTC))}
		assert.False(t, local.ResetAdsIfNewDay(acc, now))
		assert.True(t, policy.ResetAdsIfNewDay(acc, now))
	})
}

func TestRewardPolicy_DailyBonus(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	policy := fixedPolicy(now)

	tests := []struct {
		name          string
		lastClaimed   *time.Time
		expectedError error
		checkStatus   func(*testing.T, *model.DailyBonus)
	}{
		{
			name: "Never claimed",
			checkStatus: func(t *testing.T, status *model.DailyBonus) {
				assert.True(t, status.IsAvailable)
				assert.True(t, status.HasNeverBeenClaimed)
				assert.Nil(t, status.NextClaimAvailable)
			},
		},
		{
			name:          "Claimed this morning",
			lastClaimed:   timePtr(now.Add(-6 * time.Hour)),
			expectedError: ErrAlreadyClaimedToday,
			checkStatus: func(t *testing.T, status *model.DailyBonus) {
				assert.False(t, status.IsAvailable)
				require.NotNil(t, status.NextClaimAvailable)
				assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), *status.NextClaimAvailable)
			},
		},
		{
			name:        "Claimed yesterday evening",
			lastClaimed: timePtr(now.Add(-16 * time.Hour)),
			checkStatus: func(t *testing.T, status *model.DailyBonus) {
				assert.True(t, status.IsAvailable)
				assert.False(t, status.HasNeverBeenClaimed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &model.Account{TelegramID: 7, Points: 50, LastDailyBonus: tt.lastClaimed}

			status := policy.DailyBonusStatus(acc, now)
			assert.Equal(t, int64(DefaultDailyBonus), status.Reward)
			tt.checkStatus(t, status)

			events, err := policy.ApplyDailyBonus(acc, now)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Equal(t, int64(50), acc.Points)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(50+DefaultDailyBonus), acc.Points)
			assert.Equal(t, []model.QuestEvent{{Type: model.QuestDailyBonus, Delta: 1, At: now}}, events)

			_, err = policy.ApplyDailyBonus(acc, now.Add(time.Hour))
			assert.ErrorIs(t, err, ErrAlreadyClaimedToday)
		})
	}
}

func TestDebitAndRefund(t *testing.T) {
	acc := &model.Account{Points: 1000}

	assert.ErrorIs(t, DebitForWithdrawal(acc, 0), ErrInvalidInput)
	assert.ErrorIs(t, DebitForWithdrawal(acc, 1001), ErrInsufficientBalance)
	assert.Equal(t, int64(1000), acc.Points)

	require.NoError(t, DebitForWithdrawal(acc, 1000))
	assert.Zero(t, acc.Points)

	RefundWithdrawal(acc, 1000)
	assert.Equal(t, int64(1000), acc.Points)

	assert.ErrorIs(t, ApplyAddPoints(acc, -5), ErrInvalidInput)
	require.NoError(t, ApplyAddPoints(acc, 5))
	assert.Equal(t, int64(1005), acc.Points)
}

func TestElapsedLabel(t *testing.T) {
	tests := []struct {
		days     int
		expected string
	}{
		{-3, "today"},
		{0, "today"},
		{1, "yesterday"},
		{2, "2 days ago"},
		{6, "6 days ago"},
		{7, "1 week ago"},
		{13, "1 week ago"},
		{14, "2 weeks ago"},
		{20, "2 weeks ago"},
		{21, "3 weeks ago"},
		{365, "52 weeks ago"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ElapsedLabel(tt.days))
		})
	}
}

func TestElapsedDays(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ElapsedDays(created, created.Add(23*time.Hour)))
	assert.Equal(t, 1, ElapsedDays(created, created.Add(24*time.Hour)))
	assert.Equal(t, 1, ElapsedDays(created, created.Add(47*time.Hour)))
	assert.Equal(t, 0, ElapsedDays(created, created.Add(-72*time.Hour)))
}

func TestElapsedLabelProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		days := rapid.IntRange(14, 5000).Draw(t, "days")
		want := fmt.Sprintf("%d weeks ago", days/7)
		if got := ElapsedLabel(days); got != want {
			t.Fatalf("ElapsedLabel(%d) = %q, want %q", days, got, want)
		}

		hours := rapid.IntRange(0, 24*400).Draw(t, "hours")
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		if got := ElapsedDays(from, from.Add(time.Duration(hours)*time.Hour)); got != hours/24 {
			t.Fatalf("ElapsedDays over %dh = %d", hours, got)
		}
	})
}

func TestPointCost(t *testing.T) {
	tests := []struct {
		amount   string
		rate     string
		expected int64
	}{
		{"10", "1000", 10000},
		{"10.5", "1000", 10500},
		{"0.0015", "1000", 1},
		{"0.0009", "1000", 0},
		{"3.33", "3", 9},
		{"100", "0.5", 50},
	}

	for _, tt := range tests {
		t.Run(tt.amount+"x"+tt.rate, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			rate := decimal.RequireFromString(tt.rate)
			assert.Equal(t, tt.expected, PointCost(amount, rate))
		})
	}
}

func TestPointCostFloorsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		amount := decimal.New(rapid.Int64Range(1, 10_000_000).Draw(t, "amountCents"), -2)
		rate := decimal.New(rapid.Int64Range(1, 1_000_000).Draw(t, "rateMillis"), -3)

		cost := decimal.NewFromInt(PointCost(amount, rate))
		exact := amount.Mul(rate)
		if cost.GreaterThan(exact) {
			t.Fatalf("cost %s exceeds exact value %s", cost, exact)
		}
		if !exact.LessThan(cost.Add(decimal.NewFromInt(1))) {
			t.Fatalf("cost %s is not the floor of %s", cost, exact)
		}
	})
}

func TestReferralCode(t *testing.T) {
	tests := []struct {
		param      string
		expectedID int64
		expectedOK bool
	}{
		{"ref_12345", 12345, true},
		{"ref_", 0, false},
		{"ref_-4", 0, false},
		{"ref_abc", 0, false},
		{"12345", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			id, ok := ParseReferralCode(tt.param)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedID, id)
		})
	}

	rapid.Check(t, func(t *rapid.T) {
		id := rapid.Int64Range(1, 1<<62).Draw(t, "id")
		parsed, ok := ParseReferralCode(ReferralCode(id))
		if !ok || parsed != id {
			t.Fatalf("round trip of %d gave %d, %v", id, parsed, ok)
		}
	})
}

func TestQuestProgressAdvanceProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		target := rapid.IntRange(1, 50).Draw(t, "target")
		deltas := rapid.SliceOfN(rapid.IntRange(-2, 10), 1, 40).Draw(t, "deltas")

		at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		p := &model.QuestProgress{}
		completions := 0
		for i, delta := range deltas {
			before := p.CurrentProgress
			wasCompleted := p.Completed

			changed := p.Advance(target, delta, at.Add(time.Duration(i)*time.Minute))
			if p.CurrentProgress < before {
				t.Fatalf("progress went backwards from %d to %d", before, p.CurrentProgress)
			}
			if p.CurrentProgress > target {
				t.Fatalf("progress %d exceeds target %d", p.CurrentProgress, target)
			}
			if wasCompleted && changed {
				t.Fatalf("completed quest advanced")
			}
			if !wasCompleted && p.Completed {
				completions++
				if p.CompletedAt == nil {
					t.Fatalf("completion without timestamp")
				}
			}
			if p.Completed != (p.CurrentProgress == target) {
				t.Fatalf("completed=%v with progress %d/%d", p.Completed, p.CurrentProgress, target)
			}
		}
		if completions > 1 {
			t.Fatalf("quest completed %d times", completions)
		}
	})
}
