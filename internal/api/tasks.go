package api

import (
	"net/http"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/auth"

	"github.com/gin-gonic/gin"
)

type taskRoutes struct {
	ts service.TaskServiceI
}

func NewTaskRoutes(handler *gin.RouterGroup, ts service.TaskServiceI, a *auth.TelegramAuth) {
	r := &taskRoutes{ts: ts}
	h := handler.Group("/tasks")
	h.Use(a.TelegramAuthMiddleware())
	{
		h.GET("/app", r.GetAppTasks)
		h.GET("/links", r.GetLinkTasks)
		h.POST("/app/:id/complete", r.completeTask(model.TaskKindApp))
		h.POST("/links/:id/complete", r.completeTask(model.TaskKindLink))
	}
}

type AppTaskResponse struct {
	ID                   int64  `json:"id"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Points               int64  `json:"points"`
	EstimatedTimeMinutes int    `json:"estimated_time_minutes"`
	TelegramURL          string `json:"telegram_url"`
	IconType             string `json:"icon_type"`
	IsActive             bool   `json:"is_active"`
	Completed            bool   `json:"completed"`
}

type LinkTaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Points      int64  `json:"points"`
	IsActive    bool   `json:"is_active"`
	Completed   bool   `json:"completed"`
}

func toAppTaskResponses(tasks []*model.AppTask) []AppTaskResponse {
	out := make([]AppTaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = AppTaskResponse{
			ID:                   t.ID,
			Title:                t.Title,
			Description:          t.Description,
			Points:               t.Points,
			EstimatedTimeMinutes: t.EstimatedTimeMinutes,
			TelegramURL:          t.TelegramURL,
			IconType:             t.IconType,
			IsActive:             t.IsActive,
			Completed:            t.Completed,
		}
	}
	return out
}

func toLinkTaskResponses(tasks []*model.LinkTask) []LinkTaskResponse {
	out := make([]LinkTaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = LinkTaskResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			URL:         t.URL,
			Points:      t.Points,
			IsActive:    t.IsActive,
			Completed:   t.Completed,
		}
	}
	return out
}

func (r *taskRoutes) GetAppTasks(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	tasks, err := r.ts.ListAppTasks(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get app tasks")
		return
	}

	c.JSON(http.StatusOK, toAppTaskResponses(tasks))
}

func (r *taskRoutes) GetLinkTasks(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	tasks, err := r.ts.ListLinkTasks(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get link tasks")
		return
	}

	c.JSON(http.StatusOK, toLinkTaskResponses(tasks))
}

func (r *taskRoutes) completeTask(kind model.TaskKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, ok := int64Param(c, "id")
		if !ok {
			return
		}

		id, ok := callerID(c)
		if !ok {
			return
		}

		acc, err := r.ts.CompleteTask(c.Request.Context(), id, kind, taskID)
		if err != nil {
			respondError(c, err, "failed to complete task")
			return
		}

		c.JSON(http.StatusOK, toAccountResponse(acc))
	}
}
