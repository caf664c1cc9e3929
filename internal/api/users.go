package api

import (
	"net/http"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/auth"
	"rewards_miniapp/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AvatarResolver looks up a Telegram profile photo path.
type AvatarResolver interface {
	AvatarPath(telegramID int64) (string, error)
}

type accountRoutes struct {
	as      service.AccountServiceI
	avatars AvatarResolver
}

func NewAccountRoutes(handler *gin.RouterGroup, as service.AccountServiceI, avatars AvatarResolver, a *auth.TelegramAuth) {
	r := &accountRoutes{as: as, avatars: avatars}
	mw := a.TelegramAuthMiddleware()

	handler.POST("/auth/telegram", mw, r.Authenticate)
	handler.GET("/leaderboard", mw, r.GetLeaderboard)

	h := handler.Group("/user")
	h.Use(mw)
	{
		h.GET("", r.GetAccount)
		h.POST("/points", r.AddPoints)
		h.POST("/watched-ad", r.RecordWatchedAd)
		h.GET("/daily-bonus", r.GetDailyBonusStatus)
		h.POST("/daily-bonus", r.ClaimDailyBonus)
		h.GET("/avatar", r.GetAvatar)
	}
}

type AccountResponse struct {
	TelegramID           int64           `json:"telegram_id"`
	Username             string          `json:"username"`
	FirstName            string          `json:"first_name"`
	Points               int64           `json:"points"`
	AdsWatchedToday      int             `json:"ads_watched_today"`
	LastAdWatch          *time.Time      `json:"last_ad_watch,omitempty"`
	LastDailyBonus       *time.Time      `json:"last_daily_bonus,omitempty"`
	InvestmentUSDBalance decimal.Decimal `json:"investment_usd_balance"`
	InvestmentEGPBalance decimal.Decimal `json:"investment_egp_balance"`
	ReferralCode         string          `json:"referral_code"`
	CreatedAt            time.Time       `json:"created_at"`
}

func toAccountResponse(acc *model.Account) AccountResponse {
	return AccountResponse{
		TelegramID:           acc.TelegramID,
		Username:             acc.Username,
		FirstName:            acc.FirstName,
		Points:               acc.Points,
		AdsWatchedToday:      acc.AdsWatchedToday,
		LastAdWatch:          acc.LastAdWatch,
		LastDailyBonus:       acc.LastDailyBonus,
		InvestmentUSDBalance: acc.InvestmentUSDBalance,
		InvestmentEGPBalance: acc.InvestmentEGPBalance,
		ReferralCode:         service.ReferralCode(acc.TelegramID),
		CreatedAt:            acc.CreatedAt,
	}
}

type AuthenticateResponse struct {
	User    AccountResponse `json:"user"`
	Created bool            `json:"created"`
}

func identityFromContext(c *gin.Context) (model.TelegramIdentity, bool) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		logger.Logger().Error("telegram user data not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return model.TelegramIdentity{}, false
	}
	return model.TelegramIdentity{
		ID:         user.ID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		StartParam: user.StartParam,
	}, true
}

func (r *accountRoutes) Authenticate(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	acc, created, err := r.as.Authenticate(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "failed to authenticate")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, AuthenticateResponse{User: toAccountResponse(acc), Created: created})
}

// GetAccount returns the caller's account, registering it on first contact.
func (r *accountRoutes) GetAccount(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	if _, _, err := r.as.Authenticate(c.Request.Context(), identity); err != nil {
		respondError(c, err, "failed to get user")
		return
	}

	acc, err := r.as.GetAccount(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err, "failed to get user")
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(acc))
}

type AddPointsRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

func (r *accountRoutes) AddPoints(c *gin.Context) {
	var req AddPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, ok := callerID(c)
	if !ok {
		return
	}

	acc, err := r.as.AddPoints(c.Request.Context(), id, req.Amount)
	if err != nil {
		respondError(c, err, "failed to add points")
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(acc))
}

func (r *accountRoutes) RecordWatchedAd(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	acc, err := r.as.RecordWatchedAd(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to record watched ad")
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(acc))
}

type DailyBonusStatusResponse struct {
	TelegramID          int64      `json:"telegram_id"`
	LastClaimedAt       *time.Time `json:"last_claimed_at,omitempty"`
	NextClaimAvailable  *time.Time `json:"next_claim_available,omitempty"`
	IsAvailable         bool       `json:"is_available"`
	HasNeverBeenClaimed bool       `json:"has_never_been_claimed"`
	Reward              int64      `json:"reward"`
}

func (r *accountRoutes) GetDailyBonusStatus(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	status, err := r.as.GetDailyBonusStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get daily bonus status")
		return
	}

	c.JSON(http.StatusOK, DailyBonusStatusResponse{
		TelegramID:          status.TelegramID,
		LastClaimedAt:       status.LastClaimedAt,
		NextClaimAvailable:  status.NextClaimAvailable,
		IsAvailable:         status.IsAvailable,
		HasNeverBeenClaimed: status.HasNeverBeenClaimed,
		Reward:              status.Reward,
	})
}

func (r *accountRoutes) ClaimDailyBonus(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	acc, err := r.as.ClaimDailyBonus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to claim daily bonus")
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(acc))
}

func (r *accountRoutes) GetLeaderboard(c *gin.Context) {
	accounts, err := r.as.GetLeaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to get leaderboard")
		return
	}

	out := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		out[i] = toAccountResponse(acc)
	}

	c.JSON(http.StatusOK, out)
}

func (r *accountRoutes) GetAvatar(c *gin.Context) {
	log := logger.Logger()

	id, ok := callerID(c)
	if !ok {
		return
	}

	if r.avatars == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no avatar found"})
		return
	}

	avatarFilePath, err := r.avatars.AvatarPath(id)
	if err != nil {
		log.Error("failed to get user avatar",
			zap.Error(err),
			zap.Int64("telegram_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch avatar"})
		return
	}

	if avatarFilePath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no avatar found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"avatar_file_path": avatarFilePath,
	})
}
