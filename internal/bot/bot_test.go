package bot

import (
	"testing"

	"rewards_miniapp/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteLink(t *testing.T) {
	assert.Equal(t, "https://t.me/rewards_bot?start=ref_12345", InviteLink("rewards_bot", 12345))
}

func TestStartMessage(t *testing.T) {
	tests := []struct {
		name       string
		firstName  string
		webAppURL  string
		wantPrefix string
		wantButton bool
	}{
		{
			name:       "with name and app url",
			firstName:  "Alice",
			webAppURL:  "https://app.example.com",
			wantPrefix: "Welcome, Alice!",
			wantButton: true,
		},
		{
			name:       "without app url",
			wantPrefix: "Welcome!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := startMessage(42, tt.firstName, tt.webAppURL)

			assert.Equal(t, int64(42), msg.ChatID)
			assert.Contains(t, msg.Text, tt.wantPrefix)

			if !tt.wantButton {
				assert.Nil(t, msg.ReplyMarkup)
				return
			}

			markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
			require.True(t, ok)
			require.Len(t, markup.InlineKeyboard, 1)
			require.Len(t, markup.InlineKeyboard[0], 1)
			button := markup.InlineKeyboard[0][0]
			assert.Equal(t, "Open App", button.Text)
			require.NotNil(t, button.URL)
			assert.Equal(t, tt.webAppURL, *button.URL)
		})
	}
}

func TestWithdrawalText(t *testing.T) {
	w := &model.Withdrawal{
		ID:          uuid.New(),
		MethodName:  "PayPal",
		Amount:      decimal.RequireFromString("5"),
		PointsSpent: 5000,
	}

	w.Status = model.WithdrawalApproved
	assert.Equal(t, "Your withdrawal of 5 via PayPal was approved.", withdrawalText(w))

	w.Status = model.WithdrawalRejected
	assert.Contains(t, withdrawalText(w), "5000 points were returned")

	w.Status = model.WithdrawalPending
	assert.Empty(t, withdrawalText(w))
}
