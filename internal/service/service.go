package service

import (
	"context"
	"errors"
	"time"

	"rewards_miniapp/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDailyLimitExceeded  = errors.New("daily ad limit reached")
	ErrAlreadyClaimedToday = errors.New("already claimed today")
	ErrAlreadyReferred     = errors.New("account already referred")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidState        = errors.New("invalid state")
	ErrUnauthorized        = errors.New("unauthorized")

	ErrForbidden           = errors.New("forbidden")
	ErrRateLimited         = errors.New("too many requests")
	ErrAlreadyCompleted    = errors.New("task already completed")
	ErrQuestNotCompleted   = errors.New("quest not completed")
	ErrQuestAlreadyClaimed = errors.New("quest reward already claimed")
	ErrConflict            = errors.New("conflict")
)

type Service struct {
	*AccountService
	*QuestService
	*ReferralService
	*WithdrawalService
	*TaskService
	*CatalogService
	*InvestmentService
	*AdminService
}

// AccountNotifier receives every account state produced by a mutation.
type AccountNotifier interface {
	NotifyAccount(acc *model.Account)
}

// WithdrawalNotifier is told about withdrawals that left the pending state.
type WithdrawalNotifier interface {
	NotifyWithdrawal(ctx context.Context, w *model.Withdrawal)
}

type AccountServiceI interface {
	Authenticate(ctx context.Context, identity model.TelegramIdentity) (*model.Account, bool, error)
	GetAccount(ctx context.Context, telegramID int64) (*model.Account, error)
	AddPoints(ctx context.Context, telegramID int64, amount int64) (*model.Account, error)
	RecordWatchedAd(ctx context.Context, telegramID int64) (*model.Account, error)
	GetDailyBonusStatus(ctx context.Context, telegramID int64) (*model.DailyBonus, error)
	ClaimDailyBonus(ctx context.Context, telegramID int64) (*model.Account, error)
	GetLeaderboard(ctx context.Context) ([]*model.Account, error)
	ListAccounts(ctx context.Context, limit, offset uint64) ([]*model.Account, error)
	AdjustInvestmentBalance(ctx context.Context, telegramID int64, currency model.InvestmentCurrency, delta decimal.Decimal) (*model.Account, error)
}

type AccountRepository interface {
	GetOrCreateAccount(ctx context.Context, acc *model.Account) (*model.Account, bool, error)
	GetAccount(ctx context.Context, telegramID int64) (*model.Account, error)
	MutateAccount(ctx context.Context, telegramID int64, fn model.AccountMutation) (*model.Account, error)
	ListAccounts(ctx context.Context, limit, offset uint64) ([]*model.Account, error)
	GetTopAccounts(ctx context.Context, limit uint64) ([]*model.Account, error)
}

type QuestServiceI interface {
	GetQuestsForAccount(ctx context.Context, telegramID int64) ([]*model.AccountQuest, error)
	AdvanceQuestProgress(ctx context.Context, telegramID int64, questType model.QuestType, delta int) error
	ClaimQuestReward(ctx context.Context, telegramID, questID int64) (*model.Account, error)
	ListQuests(ctx context.Context) ([]*model.Quest, error)
	CreateQuest(ctx context.Context, q *model.Quest) error
	UpdateQuest(ctx context.Context, q *model.Quest) error
	DeleteQuest(ctx context.Context, questID int64) error
}

type QuestRepository interface {
	ListQuestsForAccount(ctx context.Context, telegramID int64) ([]*model.AccountQuest, error)
	MutateAccount(ctx context.Context, telegramID int64, fn model.AccountMutation) (*model.Account, error)
	ClaimQuestReward(ctx context.Context, telegramID, questID int64, now time.Time) (*model.Account, *model.Quest, error)
	ListQuests(ctx context.Context) ([]*model.Quest, error)
	CreateQuest(ctx context.Context, q *model.Quest) error
	UpdateQuest(ctx context.Context, q *model.Quest) error
	DeleteQuest(ctx context.Context, questID int64) error
}

type ReferralServiceI interface {
	CreateReferral(ctx context.Context, referrerID, referredID int64) (*model.Referral, error)
	ListReferrals(ctx context.Context, telegramID int64) (*model.ReferralSummary, error)
}

type ReferralRepository interface {
	CreateReferral(ctx context.Context, ref *model.Referral, credit model.AccountMutation) error
	ListReferrals(ctx context.Context, referrerID int64) ([]*model.Referral, error)
}

type WithdrawalServiceI interface {
	RequestWithdrawal(ctx context.Context, telegramID int64, req model.WithdrawalRequest) (*model.Withdrawal, error)
	ListWithdrawalsFor(ctx context.Context, telegramID int64) ([]*model.Withdrawal, error)
	ListWithdrawals(ctx context.Context, status model.WithdrawalStatus) ([]*model.Withdrawal, error)
	Approve(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error)
	Reject(ctx context.Context, id uuid.UUID) (*model.Withdrawal, error)
}

type WithdrawalRepository interface {
	GetWithdrawalMethod(ctx context.Context, id int64) (*model.WithdrawalMethod, error)
	CreateWithdrawal(ctx context.Context, w *model.Withdrawal, debit model.AccountMutation) error
	ResolveWithdrawal(ctx context.Context, id uuid.UUID, fn func(w *model.Withdrawal) (model.AccountMutation, error)) (*model.Withdrawal, error)
	ListWithdrawalsByAccount(ctx context.Context, telegramID int64) ([]*model.Withdrawal, error)
	ListWithdrawals(ctx context.Context, status model.WithdrawalStatus) ([]*model.Withdrawal, error)
}

type TaskServiceI interface {
	ListAppTasks(ctx context.Context, telegramID int64) ([]*model.AppTask, error)
	ListLinkTasks(ctx context.Context, telegramID int64) ([]*model.LinkTask, error)
	CompleteTask(ctx context.Context, telegramID int64, kind model.TaskKind, taskID int64) (*model.Account, error)
	ListAllAppTasks(ctx context.Context) ([]*model.AppTask, error)
	ListAllLinkTasks(ctx context.Context) ([]*model.LinkTask, error)
	CreateAppTask(ctx context.Context, t *model.AppTask) error
	UpdateAppTask(ctx context.Context, t *model.AppTask) error
	CreateLinkTask(ctx context.Context, t *model.LinkTask) error
	UpdateLinkTask(ctx context.Context, t *model.LinkTask) error
	DeleteTask(ctx context.Context, kind model.TaskKind, taskID int64) error
}

type TaskRepository interface {
	ListAppTasks(ctx context.Context, telegramID int64, activeOnly bool) ([]*model.AppTask, error)
	ListLinkTasks(ctx context.Context, telegramID int64, activeOnly bool) ([]*model.LinkTask, error)
	CompleteTask(
		ctx context.Context,
		telegramID int64,
		kind model.TaskKind,
		taskID int64,
		now time.Time,
		credit func(acc *model.Account, reward int64) ([]model.QuestEvent, error),
	) (*model.Account, error)
	CreateAppTask(ctx context.Context, t *model.AppTask) error
	UpdateAppTask(ctx context.Context, t *model.AppTask) error
	CreateLinkTask(ctx context.Context, t *model.LinkTask) error
	UpdateLinkTask(ctx context.Context, t *model.LinkTask) error
	DeleteTask(ctx context.Context, kind model.TaskKind, taskID int64) error
}

type CatalogServiceI interface {
	ListCurrencies(ctx context.Context, activeOnly bool) ([]*model.Currency, error)
	CreateCurrency(ctx context.Context, c *model.Currency) error
	UpdateCurrency(ctx context.Context, c *model.Currency) error
	DeleteCurrency(ctx context.Context, id int64) error
	ListWithdrawalMethods(ctx context.Context, activeOnly bool) ([]*model.WithdrawalMethod, error)
	CreateWithdrawalMethod(ctx context.Context, m *model.WithdrawalMethod) error
	UpdateWithdrawalMethod(ctx context.Context, m *model.WithdrawalMethod) error
	DeleteWithdrawalMethod(ctx context.Context, id int64) error
}

type CatalogRepository interface {
	ListCurrencies(ctx context.Context, activeOnly bool) ([]*model.Currency, error)
	GetCurrency(ctx context.Context, id int64) (*model.Currency, error)
	CreateCurrency(ctx context.Context, c *model.Currency) error
	UpdateCurrency(ctx context.Context, c *model.Currency) error
	DeleteCurrency(ctx context.Context, id int64) error
	ListWithdrawalMethods(ctx context.Context, activeOnly bool) ([]*model.WithdrawalMethod, error)
	CreateWithdrawalMethod(ctx context.Context, m *model.WithdrawalMethod) error
	UpdateWithdrawalMethod(ctx context.Context, m *model.WithdrawalMethod) error
	DeleteWithdrawalMethod(ctx context.Context, id int64) error
}

type InvestmentServiceI interface {
	ListPackages(ctx context.Context, activeOnly bool) ([]*model.InvestmentPackage, error)
	Subscribe(ctx context.Context, telegramID int64, packageID uuid.UUID) (*model.InvestmentSubscription, error)
	CompleteTask(ctx context.Context, telegramID int64, subscriptionID uuid.UUID) (*model.Account, *model.InvestmentSubscription, error)
	ListSubscriptions(ctx context.Context, telegramID int64) ([]*model.InvestmentSubscription, error)
	CreatePackage(ctx context.Context, p *model.InvestmentPackage) error
	UpdatePackage(ctx context.Context, p *model.InvestmentPackage) error
	DeletePackage(ctx context.Context, id uuid.UUID) error
}

type InvestmentRepository interface {
	ListInvestmentPackages(ctx context.Context, activeOnly bool) ([]*model.InvestmentPackage, error)
	GetInvestmentPackage(ctx context.Context, id uuid.UUID) (*model.InvestmentPackage, error)
	CreateInvestmentPackage(ctx context.Context, p *model.InvestmentPackage) error
	UpdateInvestmentPackage(ctx context.Context, p *model.InvestmentPackage) error
	DeleteInvestmentPackage(ctx context.Context, id uuid.UUID) error
	Subscribe(ctx context.Context, sub *model.InvestmentSubscription, charge model.AccountMutation) error
	ListSubscriptions(ctx context.Context, telegramID int64) ([]*model.InvestmentSubscription, error)
	CompleteInvestmentTask(
		ctx context.Context,
		telegramID int64,
		subscriptionID uuid.UUID,
		fn func(sub *model.InvestmentSubscription, acc *model.Account) error,
	) (*model.Account, *model.InvestmentSubscription, error)
}

type AdminServiceI interface {
	Login(ctx context.Context, username, password string) (string, *model.Admin, error)
	Authorize(ctx context.Context, token string) (*model.Admin, error)
	CreateAdmin(ctx context.Context, actor *model.Admin, input model.AdminInput) (*model.Admin, error)
	ListAdmins(ctx context.Context) ([]*model.Admin, error)
	EnsureDefaultAdmin(ctx context.Context, input model.AdminInput) (*model.Admin, error)
}

type AdminRepository interface {
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	GetAdminByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	CreateAdmin(ctx context.Context, a *model.Admin) error
	ListAdmins(ctx context.Context) ([]*model.Admin, error)
	CountAdmins(ctx context.Context) (int, error)
	TouchAdminLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
