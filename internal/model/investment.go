package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PackageType string

const (
	PackageOwn    PackageType = "own"
	PackagePoints PackageType = "points"
)

type InvestmentCurrency string

const (
	CurrencyUSD InvestmentCurrency = "usd"
	CurrencyEGP InvestmentCurrency = "egp"
)

func (c InvestmentCurrency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyEGP
}

type InvestmentPackage struct {
	ID             uuid.UUID
	Title          string
	Type           PackageType
	Price          decimal.Decimal
	NumberOfDays   int
	RewardPerTask  decimal.Decimal
	RewardCurrency InvestmentCurrency
	IsActive       bool
}

type InvestmentSubscription struct {
	ID             uuid.UUID
	TelegramID     int64
	PackageID      uuid.UUID
	Package        *InvestmentPackage
	StartedAt      time.Time
	EndsAt         time.Time
	LastTaskAt     *time.Time
	TasksCompleted int
}

func (s *InvestmentSubscription) ActiveAt(t time.Time) bool {
	return !t.Before(s.StartedAt) && t.Before(s.EndsAt)
}

// Balance returns a pointer to the account sub-balance for the given currency.
func (a *Account) Balance(c InvestmentCurrency) *decimal.Decimal {
	if c == CurrencyEGP {
		return &a.InvestmentEGPBalance
	}
	return &a.InvestmentUSDBalance
}
