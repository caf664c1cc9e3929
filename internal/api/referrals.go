package api

import (
	"net/http"
	"time"

	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/auth"

	"github.com/gin-gonic/gin"
)

type referralRoutes struct {
	rs         service.ReferralServiceI
	inviteLink func(telegramID int64) string
}

// NewReferralRoutes registers the referral endpoints. inviteLink may be nil
// when no bot is configured.
func NewReferralRoutes(handler *gin.RouterGroup, rs service.ReferralServiceI, inviteLink func(int64) string, a *auth.TelegramAuth) {
	r := &referralRoutes{rs: rs, inviteLink: inviteLink}
	h := handler.Group("/referrals")
	h.Use(a.TelegramAuthMiddleware())
	{
		h.GET("", r.GetReferrals)
	}
}

type ReferralResponse struct {
	ID               int64     `json:"id"`
	ReferredID       int64     `json:"referred_id"`
	ReferredUsername string    `json:"referred_username"`
	PointsEarned     int64     `json:"points_earned"`
	CreatedAt        time.Time `json:"created_at"`
	Joined           string    `json:"joined"`
}

type ReferralSummaryResponse struct {
	Referrals    []ReferralResponse `json:"referrals"`
	Count        int                `json:"count"`
	TotalEarned  int64              `json:"total_earned"`
	ReferralCode string             `json:"referral_code"`
	InviteLink   string             `json:"invite_link,omitempty"`
}

func (r *referralRoutes) GetReferrals(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	summary, err := r.rs.ListReferrals(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get referrals")
		return
	}

	out := ReferralSummaryResponse{
		Referrals:    make([]ReferralResponse, len(summary.Referrals)),
		Count:        summary.Count,
		TotalEarned:  summary.TotalEarned,
		ReferralCode: service.ReferralCode(id),
	}
	for i, ref := range summary.Referrals {
		out.Referrals[i] = ReferralResponse{
			ID:               ref.ID,
			ReferredID:       ref.ReferredID,
			ReferredUsername: ref.ReferredUsername,
			PointsEarned:     ref.PointsEarned,
			CreatedAt:        ref.CreatedAt,
			Joined:           ref.JoinedLabel,
		}
	}
	if r.inviteLink != nil {
		out.InviteLink = r.inviteLink(id)
	}

	c.JSON(http.StatusOK, out)
}
