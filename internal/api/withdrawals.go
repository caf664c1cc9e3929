package api

import (
	"net/http"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type withdrawalRoutes struct {
	ws service.WithdrawalServiceI
	cs service.CatalogServiceI
}

func NewWithdrawalRoutes(handler *gin.RouterGroup, ws service.WithdrawalServiceI, cs service.CatalogServiceI, a *auth.TelegramAuth) {
	r := &withdrawalRoutes{ws: ws, cs: cs}
	mw := a.TelegramAuthMiddleware()

	handler.GET("/currencies", mw, r.GetCurrencies)
	handler.GET("/withdrawal-methods", mw, r.GetWithdrawalMethods)

	h := handler.Group("/withdrawals")
	h.Use(mw)
	{
		h.GET("", r.GetWithdrawals)
		h.POST("", r.RequestWithdrawal)
	}
}

type CurrencyResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	Symbol       string          `json:"symbol"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	IsActive     bool            `json:"is_active"`
}

type WithdrawalMethodResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	IconURL        string            `json:"icon_url,omitempty"`
	MinAmount      decimal.Decimal   `json:"min_amount"`
	MaxAmount      decimal.Decimal   `json:"max_amount"`
	CurrencyID     int64             `json:"currency_id"`
	Currency       *CurrencyResponse `json:"currency,omitempty"`
	RequiredFields []string          `json:"required_fields"`
	IsActive       bool              `json:"is_active"`
}

type WithdrawalResponse struct {
	ID          uuid.UUID         `json:"id"`
	TelegramID  int64             `json:"telegram_id"`
	MethodID    int64             `json:"method_id"`
	MethodName  string            `json:"method_name"`
	Amount      decimal.Decimal   `json:"amount"`
	PointsSpent int64             `json:"points_spent"`
	Details     map[string]string `json:"details"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

func toCurrencyResponse(cur *model.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:           cur.ID,
		Name:         cur.Name,
		Code:         cur.Code,
		Symbol:       cur.Symbol,
		ExchangeRate: cur.ExchangeRate,
		IsActive:     cur.IsActive,
	}
}

func toMethodResponse(m *model.WithdrawalMethod) WithdrawalMethodResponse {
	out := WithdrawalMethodResponse{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		IconURL:        m.IconURL,
		MinAmount:      m.MinAmount,
		MaxAmount:      m.MaxAmount,
		CurrencyID:     m.CurrencyID,
		RequiredFields: m.RequiredFields,
		IsActive:       m.IsActive,
	}
	if out.RequiredFields == nil {
		out.RequiredFields = []string{}
	}
	if m.Currency != nil {
		cur := toCurrencyResponse(m.Currency)
		out.Currency = &cur
	}
	return out
}

func toWithdrawalResponse(w *model.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:          w.ID,
		TelegramID:  w.TelegramID,
		MethodID:    w.MethodID,
		MethodName:  w.MethodName,
		Amount:      w.Amount,
		PointsSpent: w.PointsSpent,
		Details:     w.Details,
		Status:      string(w.Status),
		CreatedAt:   w.CreatedAt,
		CompletedAt: w.CompletedAt,
	}
}

func toWithdrawalResponses(withdrawals []*model.Withdrawal) []WithdrawalResponse {
	out := make([]WithdrawalResponse, len(withdrawals))
	for i, w := range withdrawals {
		out[i] = toWithdrawalResponse(w)
	}
	return out
}

func (r *withdrawalRoutes) GetCurrencies(c *gin.Context) {
	currencies, err := r.cs.ListCurrencies(c.Request.Context(), true)
	if err != nil {
		respondError(c, err, "failed to get currencies")
		return
	}

	out := make([]CurrencyResponse, len(currencies))
	for i, cur := range currencies {
		out[i] = toCurrencyResponse(cur)
	}
	c.JSON(http.StatusOK, out)
}

func (r *withdrawalRoutes) GetWithdrawalMethods(c *gin.Context) {
	methods, err := r.cs.ListWithdrawalMethods(c.Request.Context(), true)
	if err != nil {
		respondError(c, err, "failed to get withdrawal methods")
		return
	}

	out := make([]WithdrawalMethodResponse, len(methods))
	for i, m := range methods {
		out[i] = toMethodResponse(m)
	}
	c.JSON(http.StatusOK, out)
}

func (r *withdrawalRoutes) GetWithdrawals(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	withdrawals, err := r.ws.ListWithdrawalsFor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get withdrawals")
		return
	}

	c.JSON(http.StatusOK, toWithdrawalResponses(withdrawals))
}

type WithdrawalRequest struct {
	MethodID int64             `json:"method_id" binding:"required,gt=0"`
	Amount   decimal.Decimal   `json:"amount"`
	Details  map[string]string `json:"details"`
}

func (r *withdrawalRoutes) RequestWithdrawal(c *gin.Context) {
	var req WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, ok := callerID(c)
	if !ok {
		return
	}

	w, err := r.ws.RequestWithdrawal(c.Request.Context(), id, model.WithdrawalRequest{
		MethodID: req.MethodID,
		Amount:   req.Amount,
		Details:  req.Details,
	})
	if err != nil {
		respondError(c, err, "failed to request withdrawal")
		return
	}

	c.JSON(http.StatusCreated, toWithdrawalResponse(w))
}
