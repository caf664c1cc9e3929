package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rewards_miniapp/internal/model"

	"github.com/shopspring/decimal"
)

const (
	DefaultAdReward      = 500
	DefaultDailyAdCap    = 30
	DefaultDailyBonus    = 1000
	DefaultReferralBonus = 1000

	referralPrefix = "ref_"
)

// RewardPolicy holds the reward amounts and the clock every ledger rule uses.
// Calendar days are evaluated in Location.
type RewardPolicy struct {
	AdReward      int64
	DailyAdCap    int
	DailyBonus    int64
	ReferralBonus int64
	AdCooldown    time.Duration
	Location      *time.Location
	Now           func() time.Time
}

func DefaultRewardPolicy() RewardPolicy {
	return RewardPolicy{
		AdReward:      DefaultAdReward,
		DailyAdCap:    DefaultDailyAdCap,
		DailyBonus:    DefaultDailyBonus,
		ReferralBonus: DefaultReferralBonus,
		Location:      time.UTC,
		Now:           time.Now,
	}
}

func (p RewardPolicy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

func (p RewardPolicy) now() time.Time {
	if p.Now == nil {
		return time.Now().In(p.location())
	}
	return p.Now().In(p.location())
}

func (p RewardPolicy) SameDay(a, b time.Time) bool {
	loc := p.location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// StartOfNextDay returns the first instant of the calendar day after t.
func (p RewardPolicy) StartOfNextDay(t time.Time) time.Time {
	y, m, d := t.In(p.location()).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, p.location())
}

// ResetAdsIfNewDay zeroes the ad counter when the last watch happened on an
// earlier calendar day than now. It reports whether the counter changed.
func (p RewardPolicy) ResetAdsIfNewDay(acc *model.Account, now time.Time) bool {
	if acc.LastAdWatch == nil || p.SameDay(*acc.LastAdWatch, now) || acc.AdsWatchedToday == 0 {
		return false
	}
	acc.AdsWatchedToday = 0
	return true
}

func (p RewardPolicy) ApplyWatchedAd(acc *model.Account, now time.Time) ([]model.QuestEvent, error) {
	p.ResetAdsIfNewDay(acc, now)

	if acc.AdsWatchedToday >= p.DailyAdCap {
		return nil, ErrDailyLimitExceeded
	}

	acc.AdsWatchedToday++
	acc.Points += p.AdReward
	watchedAt := now
	acc.LastAdWatch = &watchedAt

	return []model.QuestEvent{{Type: model.QuestWatchAds, Delta: 1, At: now}}, nil
}

func (p RewardPolicy) ApplyDailyBonus(acc *model.Account, now time.Time) ([]model.QuestEvent, error) {
	if acc.LastDailyBonus != nil && p.SameDay(*acc.LastDailyBonus, now) {
		return nil, ErrAlreadyClaimedToday
	}

	acc.Points += p.DailyBonus
	claimedAt := now
	acc.LastDailyBonus = &claimedAt

	return []model.QuestEvent{{Type: model.QuestDailyBonus, Delta: 1, At: now}}, nil
}

func (p RewardPolicy) DailyBonusStatus(acc *model.Account, now time.Time) *model.DailyBonus {
	status := &model.DailyBonus{
		TelegramID:          acc.TelegramID,
		LastClaimedAt:       acc.LastDailyBonus,
		HasNeverBeenClaimed: acc.LastDailyBonus == nil,
		Reward:              p.DailyBonus,
	}

	if status.HasNeverBeenClaimed || !p.SameDay(*acc.LastDailyBonus, now) {
		status.IsAvailable = true
		return status
	}

	next := p.StartOfNextDay(now)
	status.NextClaimAvailable = &next
	return status
}

func ApplyAddPoints(acc *model.Account, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	acc.Points += amount
	return nil
}

func DebitForWithdrawal(acc *model.Account, points int64) error {
	if points <= 0 {
		return fmt.Errorf("%w: point cost must be positive", ErrInvalidInput)
	}
	if points > acc.Points {
		return ErrInsufficientBalance
	}
	acc.Points -= points
	return nil
}

func RefundWithdrawal(acc *model.Account, points int64) {
	acc.Points += points
}

// ElapsedDays counts whole 24 hour periods between from and to. Negative
// spans count as zero.
func ElapsedDays(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from) / (24 * time.Hour))
}

func ElapsedLabel(days int) string {
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 14:
		return "1 week ago"
	default:
		return fmt.Sprintf("%d weeks ago", days/7)
	}
}

// currencyPlaces matches the NUMERIC(18,2) money columns.
const currencyPlaces = 2

// HasCurrencyPrecision reports whether amount is stored without rounding.
func HasCurrencyPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(currencyPlaces))
}

// PointCost converts a currency amount into points, rounding down.
func PointCost(amount, exchangeRate decimal.Decimal) int64 {
	return amount.Mul(exchangeRate).Floor().IntPart()
}

// ParseReferralCode extracts the referrer id from a "ref_<telegram id>" start
// parameter.
func ParseReferralCode(startParam string) (int64, bool) {
	if !strings.HasPrefix(startParam, referralPrefix) {
		return 0, false
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(startParam, referralPrefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func ReferralCode(telegramID int64) string {
	return referralPrefix + strconv.FormatInt(telegramID, 10)
}
