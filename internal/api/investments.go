package api

import (
	"net/http"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/auth"
	"rewards_miniapp/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type investmentRoutes struct {
	is service.InvestmentServiceI
}

func NewInvestmentRoutes(handler *gin.RouterGroup, is service.InvestmentServiceI, a *auth.TelegramAuth) {
	r := &investmentRoutes{is: is}
	h := handler.Group("/investments")
	h.Use(a.TelegramAuthMiddleware())
	{
		h.GET("/packages", r.GetPackages)
		h.GET("", r.GetSubscriptions)
		h.POST("", r.Subscribe)
		h.POST("/:id/complete-task", r.CompleteTask)
	}
}

type InvestmentPackageResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Type           string          `json:"type"`
	Price          decimal.Decimal `json:"price"`
	NumberOfDays   int             `json:"number_of_days"`
	RewardPerTask  decimal.Decimal `json:"reward_per_task"`
	RewardCurrency string          `json:"reward_currency"`
	IsActive       bool            `json:"is_active"`
}

type SubscriptionResponse struct {
	ID             uuid.UUID                  `json:"id"`
	PackageID      uuid.UUID                  `json:"package_id"`
	Package        *InvestmentPackageResponse `json:"package,omitempty"`
	StartedAt      time.Time                  `json:"started_at"`
	EndsAt         time.Time                  `json:"ends_at"`
	LastTaskAt     *time.Time                 `json:"last_task_at,omitempty"`
	TasksCompleted int                        `json:"tasks_completed"`
}

func toPackageResponse(p *model.InvestmentPackage) InvestmentPackageResponse {
	return InvestmentPackageResponse{
		ID:             p.ID,
		Title:          p.Title,
		Type:           string(p.Type),
		Price:          p.Price,
		NumberOfDays:   p.NumberOfDays,
		RewardPerTask:  p.RewardPerTask,
		RewardCurrency: string(p.RewardCurrency),
		IsActive:       p.IsActive,
	}
}

func toSubscriptionResponse(s *model.InvestmentSubscription) SubscriptionResponse {
	out := SubscriptionResponse{
		ID:             s.ID,
		PackageID:      s.PackageID,
		StartedAt:      s.StartedAt,
		EndsAt:         s.EndsAt,
		LastTaskAt:     s.LastTaskAt,
		TasksCompleted: s.TasksCompleted,
	}
	if s.Package != nil {
		pkg := toPackageResponse(s.Package)
		out.Package = &pkg
	}
	return out
}

func (r *investmentRoutes) GetPackages(c *gin.Context) {
	packages, err := r.is.ListPackages(c.Request.Context(), true)
	if err != nil {
		respondError(c, err, "failed to get investment packages")
		return
	}

	out := make([]InvestmentPackageResponse, len(packages))
	for i, p := range packages {
		out[i] = toPackageResponse(p)
	}
	c.JSON(http.StatusOK, out)
}

func (r *investmentRoutes) GetSubscriptions(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	subs, err := r.is.ListSubscriptions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get subscriptions")
		return
	}

	out := make([]SubscriptionResponse, len(subs))
	for i, s := range subs {
		out[i] = toSubscriptionResponse(s)
	}
	c.JSON(http.StatusOK, out)
}

type SubscribeRequest struct {
	PackageID string `json:"package_id" binding:"required,uuid"`
}

func (r *investmentRoutes) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, ok := callerID(c)
	if !ok {
		return
	}

	sub, err := r.is.Subscribe(c.Request.Context(), id, uuid.MustParse(req.PackageID))
	if err != nil {
		respondError(c, err, "failed to subscribe")
		return
	}

	c.JSON(http.StatusCreated, toSubscriptionResponse(sub))
}

type CompleteInvestmentTaskResponse struct {
	User         AccountResponse      `json:"user"`
	Subscription SubscriptionResponse `json:"subscription"`
}

func (r *investmentRoutes) CompleteTask(c *gin.Context) {
	subID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	id, ok := callerID(c)
	if !ok {
		return
	}

	acc, sub, err := r.is.CompleteTask(c.Request.Context(), id, subID)
	if err != nil {
		respondError(c, err, "failed to complete investment task")
		return
	}

	c.JSON(http.StatusOK, CompleteInvestmentTaskResponse{
		User:         toAccountResponse(acc),
		Subscription: toSubscriptionResponse(sub),
	})
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		logger.Logger().Info("failed to parse path parameter", zap.String("param", name), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
