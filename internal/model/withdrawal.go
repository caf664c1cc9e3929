package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

type Withdrawal struct {
	ID          uuid.UUID
	TelegramID  int64
	MethodID    int64
	MethodName  string
	Amount      decimal.Decimal
	PointsSpent int64
	Details     map[string]string
	Status      WithdrawalStatus
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type WithdrawalRequest struct {
	MethodID int64
	Amount   decimal.Decimal
	Details  map[string]string
}

type Currency struct {
	ID           int64
	Name         string
	Code         string
	Symbol       string
	ExchangeRate decimal.Decimal
	IsActive     bool
}

type WithdrawalMethod struct {
	ID             int64
	Name           string
	Description    string
	IconURL        string
	MinAmount      decimal.Decimal
	MaxAmount      decimal.Decimal
	CurrencyID     int64
	Currency       *Currency
	RequiredFields []string
	IsActive       bool
}
