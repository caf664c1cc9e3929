package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	TelegramID           int64
	Username             string
	FirstName            string
	Points               int64
	AdsWatchedToday      int
	LastAdWatch          *time.Time
	LastDailyBonus       *time.Time
	InvestmentUSDBalance decimal.Decimal
	InvestmentEGPBalance decimal.Decimal
	CreatedAt            time.Time
}

// AccountMutation changes a locked account in place and returns the quest
// events the change produced. Returning an error aborts the whole transaction.
type AccountMutation func(acc *Account) ([]QuestEvent, error)

type DailyBonus struct {
	TelegramID          int64
	LastClaimedAt       *time.Time
	NextClaimAvailable  *time.Time
	IsAvailable         bool
	HasNeverBeenClaimed bool
	Reward              int64
}

type TelegramIdentity struct {
	ID         int64
	Username   string
	FirstName  string
	StartParam string
}
