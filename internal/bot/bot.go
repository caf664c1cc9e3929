package bot

import (
	"context"
	"fmt"
	"strings"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Config struct {
	Token     string
	Username  string
	WebAppURL string
	Debug     bool
}

// Bot answers chat commands and delivers account notifications.
type Bot struct {
	api      *tgbotapi.BotAPI
	cfg      Config
	accounts service.AccountServiceI
}

func New(cfg Config, accounts service.AccountServiceI) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	api.Debug = cfg.Debug
	if cfg.Username == "" {
		cfg.Username = api.Self.UserName
	}

	return &Bot{
		api:      api,
		cfg:      cfg,
		accounts: accounts,
	}, nil
}

// Run long-polls updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	log := logger.Logger()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			if err := b.handleCommand(ctx, update.Message); err != nil {
				log.Error("failed to handle bot command",
					zap.String("command", update.Message.Command()),
					zap.Error(err))
			}

		case <-ctx.Done():
			return
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "invite":
		if msg.From == nil {
			return nil
		}
		_, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, inviteText(b.cfg.Username, msg.From.ID)))
		return err
	}
	return nil
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	startParam := strings.TrimSpace(msg.CommandArguments())
	if _, ok := service.ParseReferralCode(startParam); ok && b.accounts != nil {
		_, _, err := b.accounts.Authenticate(ctx, model.TelegramIdentity{
			ID:         msg.From.ID,
			Username:   msg.From.UserName,
			FirstName:  msg.From.FirstName,
			StartParam: startParam,
		})
		if err != nil {
			logger.Logger().Warn("failed to register referred user",
				zap.Int64("telegram_id", msg.From.ID),
				zap.Error(err))
		}
	}

	_, err := b.api.Send(startMessage(msg.Chat.ID, msg.From.FirstName, b.cfg.WebAppURL))
	return err
}

// NotifyWithdrawal tells the owner that an admin resolved their withdrawal.
func (b *Bot) NotifyWithdrawal(ctx context.Context, w *model.Withdrawal) {
	text := withdrawalText(w)
	if text == "" {
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(w.TelegramID, text)); err != nil {
		logger.Logger().Warn("failed to send withdrawal notification",
			zap.String("withdrawal_id", w.ID.String()),
			zap.Int64("telegram_id", w.TelegramID),
			zap.Error(err))
	}
}

// AvatarPath returns the file path of the user's most recent profile photo,
// or an empty path when the user has none.
func (b *Bot) AvatarPath(telegramID int64) (string, error) {
	photos, err := b.api.GetUserProfilePhotos(tgbotapi.UserProfilePhotosConfig{
		UserID: telegramID,
		Limit:  1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get user photos: %w", err)
	}

	if len(photos.Photos) == 0 || len(photos.Photos[0]) == 0 {
		return "", nil
	}

	file, err := b.api.GetFile(tgbotapi.FileConfig{
		FileID: photos.Photos[0][0].FileID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get file: %w", err)
	}

	return file.FilePath, nil
}

func InviteLink(botUsername string, telegramID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", botUsername, service.ReferralCode(telegramID))
}

func inviteText(botUsername string, telegramID int64) string {
	return "Invite friends and earn points for every one who joins:\n" + InviteLink(botUsername, telegramID)
}

func startMessage(chatID int64, firstName, webAppURL string) tgbotapi.MessageConfig {
	greeting := "Welcome!"
	if firstName != "" {
		greeting = fmt.Sprintf("Welcome, %s!", firstName)
	}

	msg := tgbotapi.NewMessage(chatID, greeting+" Watch ads, complete quests and invite friends to earn points.")
	if webAppURL != "" {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("Open App", webAppURL),
			),
		)
	}
	return msg
}

func withdrawalText(w *model.Withdrawal) string {
	switch w.Status {
	case model.WithdrawalApproved:
		return fmt.Sprintf("Your withdrawal of %s via %s was approved.", w.Amount.String(), w.MethodName)
	case model.WithdrawalRejected:
		return fmt.Sprintf("Your withdrawal of %s via %s was rejected. %d points were returned to your balance.",
			w.Amount.String(), w.MethodName, w.PointsSpent)
	}
	return ""
}

// InviteLink returns the referral deep link for this bot.
func (b *Bot) InviteLink(telegramID int64) string {
	return InviteLink(b.cfg.Username, telegramID)
}
