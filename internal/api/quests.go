package api

import (
	"net/http"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/auth"

	"github.com/gin-gonic/gin"
)

type questRoutes struct {
	qs service.QuestServiceI
}

func NewQuestRoutes(handler *gin.RouterGroup, qs service.QuestServiceI, a *auth.TelegramAuth) {
	r := &questRoutes{qs: qs}
	h := handler.Group("/quests")
	h.Use(a.TelegramAuthMiddleware())
	{
		h.GET("", r.GetQuests)
		h.POST("/:id/claim", r.ClaimQuest)
	}
}

type QuestResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Type          string    `json:"type"`
	Points        int64     `json:"points"`
	TotalProgress int       `json:"total_progress"`
	ColorScheme   string    `json:"color_scheme"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type AccountQuestResponse struct {
	QuestResponse
	CurrentProgress int        `json:"current_progress"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	Claimed         bool       `json:"claimed"`
}

func toQuestResponse(q *model.Quest) QuestResponse {
	return QuestResponse{
		ID:            q.ID,
		Title:         q.Title,
		Type:          string(q.Type),
		Points:        q.Points,
		TotalProgress: q.TotalProgress,
		ColorScheme:   q.ColorScheme,
		IsActive:      q.IsActive,
		CreatedAt:     q.CreatedAt,
	}
}

func (r *questRoutes) GetQuests(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	quests, err := r.qs.GetQuestsForAccount(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get quests")
		return
	}

	out := make([]AccountQuestResponse, len(quests))
	for i, q := range quests {
		out[i] = AccountQuestResponse{
			QuestResponse:   toQuestResponse(&q.Quest),
			CurrentProgress: q.Progress.CurrentProgress,
			Completed:       q.Progress.Completed,
			CompletedAt:     q.Progress.CompletedAt,
			Claimed:         q.Progress.ClaimedAt != nil,
		}
	}

	c.JSON(http.StatusOK, out)
}

func (r *questRoutes) ClaimQuest(c *gin.Context) {
	questID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	id, ok := callerID(c)
	if !ok {
		return
	}

	acc, err := r.qs.ClaimQuestReward(c.Request.Context(), id, questID)
	if err != nil {
		respondError(c, err, "failed to claim quest reward")
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(acc))
}
