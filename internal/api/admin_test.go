package api

import (
	"net/http"
	"testing"

	"rewards_miniapp/internal/middleware"
	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminToken = "admin-token"

type adminFixture struct {
	router      *gin.Engine
	admins      *mocks.MockAdminServiceI
	accounts    *mocks.MockAccountServiceI
	withdrawals *mocks.MockWithdrawalServiceI
	quests      *mocks.MockQuestServiceI
}

func newAdminFixture(t *testing.T) *adminFixture {
	f := &adminFixture{
		admins:      mocks.NewMockAdminServiceI(t),
		accounts:    mocks.NewMockAccountServiceI(t),
		withdrawals: mocks.NewMockWithdrawalServiceI(t),
		quests:      mocks.NewMockQuestServiceI(t),
	}

	f.router = gin.New()
	NewAdminRoutes(f.router.Group("/api"), AdminServices{
		Admins:      f.admins,
		Accounts:    f.accounts,
		Quests:      f.quests,
		Tasks:       mocks.NewMockTaskServiceI(t),
		Catalog:     mocks.NewMockCatalogServiceI(t),
		Withdrawals: f.withdrawals,
		Investments: mocks.NewMockInvestmentServiceI(t),
	}, middleware.NewAuthorization(f.admins))
	return f
}

func (f *adminFixture) signedIn(role model.AdminRole) *model.Admin {
	admin := &model.Admin{ID: uuid.New(), Username: "ops", Role: role, IsActive: true}
	f.admins.On("Authorize", mock.Anything, adminToken).Return(admin, nil)
	return admin
}

func bearer() string {
	return "Bearer " + adminToken
}

func TestAdminRoutes_Login(t *testing.T) {
	t.Run("bad credentials", func(t *testing.T) {
		f := newAdminFixture(t)
		f.admins.On("Login", mock.Anything, "root", "nope").Return("", nil, service.ErrUnauthorized)

		w := doRequest(t, f.router, http.MethodPost, "/api/admin/login", map[string]string{"username": "root", "password": "nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		f := newAdminFixture(t)

		w := doRequest(t, f.router, http.MethodPost, "/api/admin/login", map[string]string{"username": "root"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("issues a token", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := &model.Admin{ID: uuid.New(), Username: "root", Role: model.RoleSuperAdmin, IsActive: true}
		f.admins.On("Login", mock.Anything, "root", "secret123").Return("signed.jwt.token", admin, nil)

		w := doRequest(t, f.router, http.MethodPost, "/api/admin/login", map[string]string{"username": "root", "password": "secret123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp LoginResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "signed.jwt.token", resp.Token)
		assert.Equal(t, "super_admin", resp.Admin.Role)
	})
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	f := newAdminFixture(t)
	f.admins.On("Authorize", mock.Anything, "stale").Return(nil, service.ErrUnauthorized)

	w := doRequest(t, f.router, http.MethodGet, "/api/admin/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, f.router, http.MethodGet, "/api/admin/me", nil, "Bearer stale")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	admin := f.signedIn(model.RoleAdmin)
	w = doRequest(t, f.router, http.MethodGet, "/api/admin/me", nil, bearer())
	require.Equal(t, http.StatusOK, w.Code)

	var resp AdminResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, admin.ID, resp.ID)
}

func TestAdminRoutes_CreateAdminNeedsSuperAdmin(t *testing.T) {
	body := map[string]string{"username": "helper", "password": "secret123"}

	t.Run("plain admin", func(t *testing.T) {
		f := newAdminFixture(t)
		f.signedIn(model.RoleAdmin)

		w := doRequest(t, f.router, http.MethodPost, "/api/admin/admins", body, bearer())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("super admin", func(t *testing.T) {
		f := newAdminFixture(t)
		actor := f.signedIn(model.RoleSuperAdmin)
		f.admins.On("CreateAdmin", mock.Anything, actor, model.AdminInput{Username: "helper", Password: "secret123"}).
			Return(&model.Admin{ID: uuid.New(), Username: "helper", Role: model.RoleAdmin, IsActive: true}, nil)

		w := doRequest(t, f.router, http.MethodPost, "/api/admin/admins", body, bearer())
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestAdminRoutes_ResolveWithdrawal(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	tests := []struct {
		name           string
		path           string
		mockSetup      func(*mocks.MockWithdrawalServiceI)
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "Malformed id",
			path:           "/api/admin/withdrawals/not-a-uuid/approve",
			mockSetup:      func(*mocks.MockWithdrawalServiceI) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Approve unknown",
			path: "/api/admin/withdrawals/" + id.String() + "/approve",
			mockSetup: func(ws *mocks.MockWithdrawalServiceI) {
				ws.On("Approve", mock.Anything, id).Return(nil, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Approve already resolved",
			path: "/api/admin/withdrawals/" + id.String() + "/approve",
			mockSetup: func(ws *mocks.MockWithdrawalServiceI) {
				ws.On("Approve", mock.Anything, id).Return(nil, service.ErrInvalidState)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Approve pending",
			path: "/api/admin/withdrawals/" + id.String() + "/approve",
			mockSetup: func(ws *mocks.MockWithdrawalServiceI) {
				ws.On("Approve", mock.Anything, id).Return(&model.Withdrawal{ID: id, Status: model.WithdrawalApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedState:  "approved",
		},
		{
			name: "Reject pending",
			path: "/api/admin/withdrawals/" + id.String() + "/reject",
			mockSetup: func(ws *mocks.MockWithdrawalServiceI) {
				ws.On("Reject", mock.Anything, id).Return(&model.Withdrawal{ID: id, Status: model.WithdrawalRejected}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedState:  "rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAdminFixture(t)
			f.signedIn(model.RoleAdmin)
			tt.mockSetup(f.withdrawals)

			w := doRequest(t, f.router, http.MethodPost, tt.path, nil, bearer())
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedState != "" {
				var resp WithdrawalResponse
				decodeBody(t, w, &resp)
				assert.Equal(t, tt.expectedState, resp.Status)
			}
		})
	}
}

func TestAdminRoutes_ListWithdrawalsByStatus(t *testing.T) {
	f := newAdminFixture(t)
	f.signedIn(model.RoleAdmin)
	f.withdrawals.On("ListWithdrawals", mock.Anything, model.WithdrawalPending).
		Return([]*model.Withdrawal{{ID: uuid.New(), Status: model.WithdrawalPending}}, nil)
	f.withdrawals.On("ListWithdrawals", mock.Anything, model.WithdrawalStatus("lost")).
		Return(nil, service.ErrInvalidInput)

	w := doRequest(t, f.router, http.MethodGet, "/api/admin/withdrawals?status=pending", nil, bearer())
	require.Equal(t, http.StatusOK, w.Code)

	var resp []WithdrawalResponse
	decodeBody(t, w, &resp)
	assert.Len(t, resp, 1)

	w = doRequest(t, f.router, http.MethodGet, "/api/admin/withdrawals?status=lost", nil, bearer())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutes_AdjustInvestmentBalance(t *testing.T) {
	t.Run("unknown currency", func(t *testing.T) {
		f := newAdminFixture(t)
		f.signedIn(model.RoleAdmin)

		w := doRequest(t, f.router, http.MethodPost, "/api/admin/users/31/investment",
			map[string]string{"currency": "eur", "amount": "10"}, bearer())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("debit below zero", func(t *testing.T) {
		f := newAdminFixture(t)
		f.signedIn(model.RoleAdmin)
		f.accounts.On("AdjustInvestmentBalance", mock.Anything, int64(31), model.CurrencyUSD, mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.NewFromInt(-10))
		})).Return(nil, service.ErrInsufficientBalance)

		w := doRequest(t, f.router, http.MethodPost, "/api/admin/users/31/investment",
			map[string]string{"currency": "usd", "amount": "-10"}, bearer())
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("credit", func(t *testing.T) {
		f := newAdminFixture(t)
		f.signedIn(model.RoleAdmin)
		f.accounts.On("AdjustInvestmentBalance", mock.Anything, int64(31), model.CurrencyEGP, mock.Anything).
			Return(&model.Account{TelegramID: 31, InvestmentEGPBalance: decimal.NewFromInt(25)}, nil)

		w := doRequest(t, f.router, http.MethodPost, "/api/admin/users/31/investment",
			map[string]string{"currency": "egp", "amount": "25"}, bearer())
		require.Equal(t, http.StatusOK, w.Code)

		var resp AccountResponse
		decodeBody(t, w, &resp)
		assert.True(t, resp.InvestmentEGPBalance.Equal(decimal.NewFromInt(25)))
	})
}

func TestAdminRoutes_CreateQuestValidation(t *testing.T) {
	f := newAdminFixture(t)
	f.signedIn(model.RoleAdmin)

	w := doRequest(t, f.router, http.MethodPost, "/api/admin/quests",
		map[string]any{"title": "Spin", "type": "spin_wheel", "total_progress": 3}, bearer())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
