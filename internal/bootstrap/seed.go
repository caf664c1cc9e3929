package bootstrap

import (
	"context"
	"fmt"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DemoTelegramID = 1000001

	demoPoints          = 12500
	demoAdsWatchedToday = 7
)

// Store is the storage surface seeding needs beyond the services.
type Store interface {
	CountQuests(ctx context.Context) (int, error)
	CountAppTasks(ctx context.Context) (int, error)
	GetOrCreateAccount(ctx context.Context, acc *model.Account) (*model.Account, bool, error)
	MutateAccount(ctx context.Context, telegramID int64, fn model.AccountMutation) (*model.Account, error)
}

type Seeder struct {
	store  Store
	svc    *service.Service
	policy service.RewardPolicy
}

func NewSeeder(store Store, svc *service.Service, policy service.RewardPolicy) *Seeder {
	return &Seeder{
		store:  store,
		svc:    svc,
		policy: policy,
	}
}

// SeedAdmin creates the default super admin on an empty admin table.
func (s *Seeder) SeedAdmin(ctx context.Context, input model.AdminInput) error {
	admin, err := s.svc.AdminService.EnsureDefaultAdmin(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if admin != nil {
		logger.Logger().Info("default admin created", zap.String("username", admin.Username))
	}
	return nil
}

// SeedCatalog fills empty catalogs with the demo quests, tasks and payout
// options, and creates the demo account. Non-empty catalogs are left alone.
func (s *Seeder) SeedCatalog(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"quests", s.seedQuests},
		{"tasks", s.seedTasks},
		{"currencies", s.seedCurrencies},
		{"demo account", s.seedDemoAccount},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.name, err)
		}
	}
	return nil
}

func (s *Seeder) seedQuests(ctx context.Context) error {
	count, err := s.store.CountQuests(ctx)
	if err != nil || count > 0 {
		return err
	}

	quests := []*model.Quest{
		{Title: "Watch 5 ads", Type: model.QuestWatchAds, Points: 1000, TotalProgress: 5, ColorScheme: "purple", IsActive: true},
		{Title: "Invite 2 friends", Type: model.QuestInviteFriends, Points: 2000, TotalProgress: 2, ColorScheme: "green", IsActive: true},
	}
	for _, q := range quests {
		if err := s.svc.QuestService.CreateQuest(ctx, q); err != nil {
			return err
		}
	}

	logger.Logger().Info("quests seeded", zap.Int("count", len(quests)))
	return nil
}

func (s *Seeder) seedTasks(ctx context.Context) error {
	count, err := s.store.CountAppTasks(ctx)
	if err != nil || count > 0 {
		return err
	}

	appTasks := []*model.AppTask{
		{
			Title:                "CryptoBot",
			Description:          "Start the bot and create a wallet",
			Points:               1500,
			EstimatedTimeMinutes: 2,
			TelegramURL:          "https://t.me/CryptoBot",
			IconType:             "robot",
			IsActive:             true,
		},
		{
			Title:                "MiniGames",
			Description:          "Play one round of any game",
			Points:               2000,
			EstimatedTimeMinutes: 5,
			TelegramURL:          "https://t.me/MiniGamesBot",
			IconType:             "gamepad",
			IsActive:             true,
		},
	}
	for _, t := range appTasks {
		if err := s.svc.TaskService.CreateAppTask(ctx, t); err != nil {
			return err
		}
	}

	return s.svc.TaskService.CreateLinkTask(ctx, &model.LinkTask{
		Title:       "BTC News",
		Description: "Read today's bitcoin digest",
		URL:         "https://bitcoin.org/en/news",
		Points:      750,
		IsActive:    true,
	})
}

func (s *Seeder) seedCurrencies(ctx context.Context) error {
	currencies, err := s.svc.CatalogService.ListCurrencies(ctx, false)
	if err != nil || len(currencies) > 0 {
		return err
	}

	usd := &model.Currency{
		Name:         "US Dollar",
		Code:         "USD",
		Symbol:       "$",
		ExchangeRate: decimal.NewFromInt(1000),
		IsActive:     true,
	}
	if err := s.svc.CatalogService.CreateCurrency(ctx, usd); err != nil {
		return err
	}

	return s.svc.CatalogService.CreateWithdrawalMethod(ctx, &model.WithdrawalMethod{
		Name:           "PayPal",
		Description:    "Payout to a PayPal account",
		MinAmount:      decimal.NewFromInt(1),
		MaxAmount:      decimal.NewFromInt(100),
		CurrencyID:     usd.ID,
		RequiredFields: []string{"email"},
		IsActive:       true,
	})
}

func (s *Seeder) seedDemoAccount(ctx context.Context) error {
	_, created, err := s.store.GetOrCreateAccount(ctx, &model.Account{
		TelegramID: DemoTelegramID,
		Username:   "demo",
		FirstName:  "Demo",
	})
	if err != nil || !created {
		return err
	}

	now := time.Now()
	if s.policy.Now != nil {
		now = s.policy.Now()
	}
	_, err = s.store.MutateAccount(ctx, DemoTelegramID, func(acc *model.Account) ([]model.QuestEvent, error) {
		acc.Points = demoPoints
		acc.AdsWatchedToday = demoAdsWatchedToday
		acc.LastAdWatch = &now
		return nil, nil
	})
	return err
}
