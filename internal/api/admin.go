package api

import (
	"net/http"
	"strconv"
	"time"

	"rewards_miniapp/internal/middleware"
	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdminServices groups the services the admin panel manages.
type AdminServices struct {
	Admins      service.AdminServiceI
	Accounts    service.AccountServiceI
	Quests      service.QuestServiceI
	Tasks       service.TaskServiceI
	Catalog     service.CatalogServiceI
	Withdrawals service.WithdrawalServiceI
	Investments service.InvestmentServiceI
}

type adminRoutes struct {
	svc AdminServices
}

func NewAdminRoutes(handler *gin.RouterGroup, svc AdminServices, authz *middleware.Authorization) {
	r := &adminRoutes{svc: svc}
	h := handler.Group("/admin")

	h.POST("/login", r.Login)

	p := h.Group("")
	p.Use(authz.RequireAdmin())
	{
		p.POST("/logout", r.Logout)
		p.GET("/me", r.Me)
		p.GET("/admins", r.ListAdmins)
		p.POST("/admins", authz.RequireSuperAdmin(), r.CreateAdmin)

		p.GET("/users", r.ListUsers)
		p.POST("/users/:telegram_id/investment", r.AdjustInvestmentBalance)

		p.GET("/app-tasks", r.ListAppTasks)
		p.POST("/app-tasks", r.CreateAppTask)
		p.PUT("/app-tasks/:id", r.UpdateAppTask)
		p.DELETE("/app-tasks/:id", r.deleteTask(model.TaskKindApp))

		p.GET("/link-tasks", r.ListLinkTasks)
		p.POST("/link-tasks", r.CreateLinkTask)
		p.PUT("/link-tasks/:id", r.UpdateLinkTask)
		p.DELETE("/link-tasks/:id", r.deleteTask(model.TaskKindLink))

		p.GET("/quests", r.ListQuests)
		p.POST("/quests", r.CreateQuest)
		p.PUT("/quests/:id", r.UpdateQuest)
		p.DELETE("/quests/:id", r.DeleteQuest)

		p.GET("/currencies", r.ListCurrencies)
		p.POST("/currencies", r.CreateCurrency)
		p.PUT("/currencies/:id", r.UpdateCurrency)
		p.DELETE("/currencies/:id", r.DeleteCurrency)

		p.GET("/withdrawal-methods", r.ListWithdrawalMethods)
		p.POST("/withdrawal-methods", r.CreateWithdrawalMethod)
		p.PUT("/withdrawal-methods/:id", r.UpdateWithdrawalMethod)
		p.DELETE("/withdrawal-methods/:id", r.DeleteWithdrawalMethod)

		p.GET("/investment-packages", r.ListInvestmentPackages)
		p.POST("/investment-packages", r.CreateInvestmentPackage)
		p.PUT("/investment-packages/:id", r.UpdateInvestmentPackage)
		p.DELETE("/investment-packages/:id", r.DeleteInvestmentPackage)

		p.GET("/withdrawals", r.ListWithdrawals)
		p.POST("/withdrawals/:id/approve", r.ApproveWithdrawal)
		p.POST("/withdrawals/:id/reject", r.RejectWithdrawal)
	}
}

type AdminResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toAdminResponse(a *model.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      string(a.Role),
		IsActive:  a.IsActive,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

func (r *adminRoutes) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, admin, err := r.svc.Admins.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "failed to login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Admin: toAdminResponse(admin)})
}

// Logout is a no-op for stateless tokens; clients discard their token.
func (r *adminRoutes) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (r *adminRoutes) Me(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, toAdminResponse(admin))
}

func (r *adminRoutes) ListAdmins(c *gin.Context) {
	admins, err := r.svc.Admins.ListAdmins(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list admins")
		return
	}

	out := make([]AdminResponse, len(admins))
	for i, a := range admins {
		out[i] = toAdminResponse(a)
	}
	c.JSON(http.StatusOK, out)
}

type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super_admin"`
}

func (r *adminRoutes) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actor, _ := middleware.AdminFromContext(c)
	admin, err := r.svc.Admins.CreateAdmin(c.Request.Context(), actor, model.AdminInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     model.AdminRole(req.Role),
	})
	if err != nil {
		respondError(c, err, "failed to create admin")
		return
	}

	c.JSON(http.StatusCreated, toAdminResponse(admin))
}

func (r *adminRoutes) ListUsers(c *gin.Context) {
	limit, _ := strconv.ParseUint(c.Query("limit"), 10, 64)
	offset, _ := strconv.ParseUint(c.Query("offset"), 10, 64)

	accounts, err := r.svc.Accounts.ListAccounts(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err, "failed to list users")
		return
	}

	out := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		out[i] = toAccountResponse(acc)
	}
	c.JSON(http.StatusOK, out)
}

type AdjustInvestmentRequest struct {
	Currency string          `json:"currency" binding:"required,oneof=usd egp"`
	Amount   decimal.Decimal `json:"amount"`
}

// AdjustInvestmentBalance credits a positive amount or debits a negative one.
func (r *adminRoutes) AdjustInvestmentBalance(c *gin.Context) {
	telegramID, ok := int64Param(c, "telegram_id")
	if !ok {
		return
	}

	var req AdjustInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	acc, err := r.svc.Accounts.AdjustInvestmentBalance(c.Request.Context(), telegramID, model.InvestmentCurrency(req.Currency), req.Amount)
	if err != nil {
		respondError(c, err, "failed to adjust investment balance")
		return
	}

	var adminName string
	if admin, ok := middleware.AdminFromContext(c); ok {
		adminName = admin.Username
	}
	logger.Logger().Info("investment balance adjusted",
		zap.String("admin", adminName),
		zap.Int64("telegram_id", telegramID),
		zap.String("currency", req.Currency),
		zap.String("amount", req.Amount.String()))

	c.JSON(http.StatusOK, toAccountResponse(acc))
}

type AppTaskRequest struct {
	Title                string `json:"title" binding:"required"`
	Description          string `json:"description"`
	Points               int64  `json:"points" binding:"gte=0"`
	EstimatedTimeMinutes int    `json:"estimated_time_minutes" binding:"gte=0"`
	TelegramURL          string `json:"telegram_url" binding:"required,url"`
	IconType             string `json:"icon_type"`
	IsActive             *bool  `json:"is_active"`
}

func (req AppTaskRequest) toModel(id int64) *model.AppTask {
	t := &model.AppTask{
		ID:                   id,
		Title:                req.Title,
		Description:          req.Description,
		Points:               req.Points,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
		TelegramURL:          req.TelegramURL,
		IconType:             req.IconType,
		IsActive:             req.IsActive == nil || *req.IsActive,
	}
	if t.IconType == "" {
		t.IconType = "robot"
	}
	return t
}

func (r *adminRoutes) ListAppTasks(c *gin.Context) {
	tasks, err := r.svc.Tasks.ListAllAppTasks(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list app tasks")
		return
	}
	c.JSON(http.StatusOK, toAppTaskResponses(tasks))
}

func (r *adminRoutes) CreateAppTask(c *gin.Context) {
	var req AppTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	t := req.toModel(0)
	if err := r.svc.Tasks.CreateAppTask(c.Request.Context(), t); err != nil {
		respondError(c, err, "failed to create app task")
		return
	}
	c.JSON(http.StatusCreated, toAppTaskResponses([]*model.AppTask{t})[0])
}

func (r *adminRoutes) UpdateAppTask(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req AppTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	t := req.toModel(id)
	if err := r.svc.Tasks.UpdateAppTask(c.Request.Context(), t); err != nil {
		respondError(c, err, "failed to update app task")
		return
	}
	c.JSON(http.StatusOK, toAppTaskResponses([]*model.AppTask{t})[0])
}

type LinkTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required,url"`
	Points      int64  `json:"points" binding:"gte=0"`
	IsActive    *bool  `json:"is_active"`
}

func (req LinkTaskRequest) toModel(id int64) *model.LinkTask {
	return &model.LinkTask{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Points:      req.Points,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
}

func (r *adminRoutes) ListLinkTasks(c *gin.Context) {
	tasks, err := r.svc.Tasks.ListAllLinkTasks(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list link tasks")
		return
	}
	c.JSON(http.StatusOK, toLinkTaskResponses(tasks))
}

func (r *adminRoutes) CreateLinkTask(c *gin.Context) {
	var req LinkTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	t := req.toModel(0)
	if err := r.svc.Tasks.CreateLinkTask(c.Request.Context(), t); err != nil {
		respondError(c, err, "failed to create link task")
		return
	}
	c.JSON(http.StatusCreated, toLinkTaskResponses([]*model.LinkTask{t})[0])
}

func (r *adminRoutes) UpdateLinkTask(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req LinkTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	t := req.toModel(id)
	if err := r.svc.Tasks.UpdateLinkTask(c.Request.Context(), t); err != nil {
		respondError(c, err, "failed to update link task")
		return
	}
	c.JSON(http.StatusOK, toLinkTaskResponses([]*model.LinkTask{t})[0])
}

func (r *adminRoutes) deleteTask(kind model.TaskKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := int64Param(c, "id")
		if !ok {
			return
		}

		if err := r.svc.Tasks.DeleteTask(c.Request.Context(), kind, id); err != nil {
			respondError(c, err, "failed to delete task")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type QuestRequest struct {
	Title         string `json:"title" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=watch_ads invite_friends complete_tasks daily_bonus"`
	Points        int64  `json:"points" binding:"gte=0"`
	TotalProgress int    `json:"total_progress" binding:"required,gt=0"`
	ColorScheme   string `json:"color_scheme"`
	IsActive      *bool  `json:"is_active"`
}

func (req QuestRequest) toModel(id int64) *model.Quest {
	return &model.Quest{
		ID:            id,
		Title:         req.Title,
		Type:          model.QuestType(req.Type),
		Points:        req.Points,
		TotalProgress: req.TotalProgress,
		ColorScheme:   req.ColorScheme,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}
}

func (r *adminRoutes) ListQuests(c *gin.Context) {
	quests, err := r.svc.Quests.ListQuests(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list quests")
		return
	}

	out := make([]QuestResponse, len(quests))
	for i, q := range quests {
		out[i] = toQuestResponse(q)
	}
	c.JSON(http.StatusOK, out)
}

func (r *adminRoutes) CreateQuest(c *gin.Context) {
	var req QuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	q := req.toModel(0)
	if err := r.svc.Quests.CreateQuest(c.Request.Context(), q); err != nil {
		respondError(c, err, "failed to create quest")
		return
	}
	c.JSON(http.StatusCreated, toQuestResponse(q))
}

func (r *adminRoutes) UpdateQuest(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req QuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	q := req.toModel(id)
	if err := r.svc.Quests.UpdateQuest(c.Request.Context(), q); err != nil {
		respondError(c, err, "failed to update quest")
		return
	}
	c.JSON(http.StatusOK, toQuestResponse(q))
}

func (r *adminRoutes) DeleteQuest(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := r.svc.Quests.DeleteQuest(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete quest")
		return
	}
	c.Status(http.StatusNoContent)
}

type CurrencyRequest struct {
	Name         string          `json:"name" binding:"required"`
	Code         string          `json:"code" binding:"required,max=10"`
	Symbol       string          `json:"symbol"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	IsActive     *bool           `json:"is_active"`
}

func (req CurrencyRequest) toModel(id int64) *model.Currency {
	return &model.Currency{
		ID:           id,
		Name:         req.Name,
		Code:         req.Code,
		Symbol:       req.Symbol,
		ExchangeRate: req.ExchangeRate,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
}

func (r *adminRoutes) ListCurrencies(c *gin.Context) {
	currencies, err := r.svc.Catalog.ListCurrencies(c.Request.Context(), false)
	if err != nil {
		respondError(c, err, "failed to list currencies")
		return
	}

	out := make([]CurrencyResponse, len(currencies))
	for i, cur := range currencies {
		out[i] = toCurrencyResponse(cur)
	}
	c.JSON(http.StatusOK, out)
}

func (r *adminRoutes) CreateCurrency(c *gin.Context) {
	var req CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cur := req.toModel(0)
	if err := r.svc.Catalog.CreateCurrency(c.Request.Context(), cur); err != nil {
		respondError(c, err, "failed to create currency")
		return
	}
	c.JSON(http.StatusCreated, toCurrencyResponse(cur))
}

func (r *adminRoutes) UpdateCurrency(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cur := req.toModel(id)
	if err := r.svc.Catalog.UpdateCurrency(c.Request.Context(), cur); err != nil {
		respondError(c, err, "failed to update currency")
		return
	}
	c.JSON(http.StatusOK, toCurrencyResponse(cur))
}

func (r *adminRoutes) DeleteCurrency(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := r.svc.Catalog.DeleteCurrency(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete currency")
		return
	}
	c.Status(http.StatusNoContent)
}

type WithdrawalMethodRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	IconURL        string          `json:"icon_url" binding:"omitempty,url"`
	MinAmount      decimal.Decimal `json:"min_amount"`
	MaxAmount      decimal.Decimal `json:"max_amount"`
	CurrencyID     int64           `json:"currency_id" binding:"required,gt=0"`
	RequiredFields []string        `json:"required_fields"`
	IsActive       *bool           `json:"is_active"`
}

func (req WithdrawalMethodRequest) toModel(id int64) *model.WithdrawalMethod {
	return &model.WithdrawalMethod{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		IconURL:        req.IconURL,
		MinAmount:      req.MinAmount,
		MaxAmount:      req.MaxAmount,
		CurrencyID:     req.CurrencyID,
		RequiredFields: req.RequiredFields,
		IsActive:       req.IsActive == nil || *req.IsActive,
	}
}

func (r *adminRoutes) ListWithdrawalMethods(c *gin.Context) {
	methods, err := r.svc.Catalog.ListWithdrawalMethods(c.Request.Context(), false)
	if err != nil {
		respondError(c, err, "failed to list withdrawal methods")
		return
	}

	out := make([]WithdrawalMethodResponse, len(methods))
	for i, m := range methods {
		out[i] = toMethodResponse(m)
	}
	c.JSON(http.StatusOK, out)
}

func (r *adminRoutes) CreateWithdrawalMethod(c *gin.Context) {
	var req WithdrawalMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	m := req.toModel(0)
	if err := r.svc.Catalog.CreateWithdrawalMethod(c.Request.Context(), m); err != nil {
		respondError(c, err, "failed to create withdrawal method")
		return
	}
	c.JSON(http.StatusCreated, toMethodResponse(m))
}

func (r *adminRoutes) UpdateWithdrawalMethod(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req WithdrawalMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	m := req.toModel(id)
	if err := r.svc.Catalog.UpdateWithdrawalMethod(c.Request.Context(), m); err != nil {
		respondError(c, err, "failed to update withdrawal method")
		return
	}
	c.JSON(http.StatusOK, toMethodResponse(m))
}

func (r *adminRoutes) DeleteWithdrawalMethod(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := r.svc.Catalog.DeleteWithdrawalMethod(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete withdrawal method")
		return
	}
	c.Status(http.StatusNoContent)
}

type InvestmentPackageRequest struct {
	Title          string          `json:"title" binding:"required"`
	Type           string          `json:"type" binding:"required,oneof=own points"`
	Price          decimal.Decimal `json:"price"`
	NumberOfDays   int             `json:"number_of_days" binding:"required,gt=0"`
	RewardPerTask  decimal.Decimal `json:"reward_per_task"`
	RewardCurrency string          `json:"reward_currency" binding:"required,oneof=usd egp"`
	IsActive       *bool           `json:"is_active"`
}

func (req InvestmentPackageRequest) toModel(id uuid.UUID) *model.InvestmentPackage {
	return &model.InvestmentPackage{
		ID:             id,
		Title:          req.Title,
		Type:           model.PackageType(req.Type),
		Price:          req.Price,
		NumberOfDays:   req.NumberOfDays,
		RewardPerTask:  req.RewardPerTask,
		RewardCurrency: model.InvestmentCurrency(req.RewardCurrency),
		IsActive:       req.IsActive == nil || *req.IsActive,
	}
}

func (r *adminRoutes) ListInvestmentPackages(c *gin.Context) {
	packages, err := r.svc.Investments.ListPackages(c.Request.Context(), false)
	if err != nil {
		respondError(c, err, "failed to list investment packages")
		return
	}

	out := make([]InvestmentPackageResponse, len(packages))
	for i, p := range packages {
		out[i] = toPackageResponse(p)
	}
	c.JSON(http.StatusOK, out)
}

func (r *adminRoutes) CreateInvestmentPackage(c *gin.Context) {
	var req InvestmentPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p := req.toModel(uuid.Nil)
	if err := r.svc.Investments.CreatePackage(c.Request.Context(), p); err != nil {
		respondError(c, err, "failed to create investment package")
		return
	}
	c.JSON(http.StatusCreated, toPackageResponse(p))
}

func (r *adminRoutes) UpdateInvestmentPackage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req InvestmentPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p := req.toModel(id)
	if err := r.svc.Investments.UpdatePackage(c.Request.Context(), p); err != nil {
		respondError(c, err, "failed to update investment package")
		return
	}
	c.JSON(http.StatusOK, toPackageResponse(p))
}

func (r *adminRoutes) DeleteInvestmentPackage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := r.svc.Investments.DeletePackage(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete investment package")
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *adminRoutes) ListWithdrawals(c *gin.Context) {
	status := model.WithdrawalStatus(c.Query("status"))

	withdrawals, err := r.svc.Withdrawals.ListWithdrawals(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "failed to list withdrawals")
		return
	}
	c.JSON(http.StatusOK, toWithdrawalResponses(withdrawals))
}

func (r *adminRoutes) ApproveWithdrawal(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	w, err := r.svc.Withdrawals.Approve(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to approve withdrawal")
		return
	}
	c.JSON(http.StatusOK, toWithdrawalResponse(w))
}

func (r *adminRoutes) RejectWithdrawal(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	w, err := r.svc.Withdrawals.Reject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to reject withdrawal")
		return
	}
	c.JSON(http.StatusOK, toWithdrawalResponse(w))
}
