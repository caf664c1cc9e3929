package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/internal/service/mocks"
	"rewards_miniapp/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID int64 = 777

func init() {
	gin.SetMode(gin.TestMode)
}

func initData(userID int64, startParam string) string {
	values := url.Values{}
	values.Set("auth_date", "1700000000")
	values.Set("user", fmt.Sprintf(`{"id":%d,"username":"alice","first_name":"Alice"}`, userID))
	if startParam != "" {
		values.Set("start_param", startParam)
	}
	return values.Encode()
}

// newTestRouter mounts routes under /api with signature checks disabled.
func newTestRouter(mount func(g *gin.RouterGroup, a *auth.TelegramAuth)) *gin.Engine {
	router := gin.New()
	mount(router.Group("/api"), auth.NewTelegramAuth("", true))
	return router
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func telegramHeader() string {
	return "Telegram " + initData(testUserID, "")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrInvalidInput, http.StatusBadRequest},
		{service.ErrDailyLimitExceeded, http.StatusForbidden},
		{service.ErrAlreadyClaimedToday, http.StatusForbidden},
		{service.ErrAlreadyCompleted, http.StatusForbidden},
		{service.ErrQuestNotCompleted, http.StatusForbidden},
		{service.ErrQuestAlreadyClaimed, http.StatusForbidden},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrAlreadyReferred, http.StatusConflict},
		{service.ErrInvalidState, http.StatusConflict},
		{service.ErrConflict, http.StatusConflict},
		{service.ErrInsufficientBalance, http.StatusPaymentRequired},
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{service.ErrRateLimited, http.StatusTooManyRequests},
		{fmt.Errorf("withdrawal %s: %w", "abc", service.ErrInvalidState), http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, errorStatus(tt.err))
		})
	}
}

func TestAccountRoutes_Authentication(t *testing.T) {
	as := mocks.NewMockAccountServiceI(t)
	router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
		NewAccountRoutes(g, as, nil, a)
	})

	w := doRequest(t, router, http.MethodGet, "/api/user", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/user", nil, "Bearer abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/user", nil, "Telegram auth_date=1700000000&user=not-json")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccountRoutes_Authenticate(t *testing.T) {
	tests := []struct {
		name           string
		created        bool
		err            error
		expectedStatus int
	}{
		{name: "New account", created: true, expectedStatus: http.StatusCreated},
		{name: "Returning account", created: false, expectedStatus: http.StatusOK},
		{name: "Storage failure", err: errors.New("db down"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as := mocks.NewMockAccountServiceI(t)
			identity := model.TelegramIdentity{ID: testUserID, Username: "alice", FirstName: "Alice", StartParam: "ref_42"}
			acc := &model.Account{TelegramID: testUserID, Username: "alice", FirstName: "Alice", Points: 1000}
			if tt.err != nil {
				as.On("Authenticate", mock.Anything, identity).Return(nil, false, tt.err)
			} else {
				as.On("Authenticate", mock.Anything, identity).Return(acc, tt.created, nil)
			}

			router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
				NewAccountRoutes(g, as, nil, a)
			})
			w := doRequest(t, router, http.MethodPost, "/api/auth/telegram", nil, "Telegram "+initData(testUserID, "ref_42"))

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.err != nil {
				assert.Contains(t, w.Body.String(), "failed to authenticate")
				assert.NotContains(t, w.Body.String(), "db down")
				return
			}

			var resp AuthenticateResponse
			decodeBody(t, w, &resp)
			assert.Equal(t, tt.created, resp.Created)
			assert.Equal(t, testUserID, resp.User.TelegramID)
			assert.Equal(t, "ref_777", resp.User.ReferralCode)
		})
	}
}

func TestAccountRoutes_InitDataQueryParam(t *testing.T) {
	as := mocks.NewMockAccountServiceI(t)
	as.On("GetLeaderboard", mock.Anything).Return([]*model.Account{
		{TelegramID: 1, Username: "top", Points: 9000},
		{TelegramID: 2, Username: "next", Points: 800},
	}, nil)

	router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
		NewAccountRoutes(g, as, nil, a)
	})
	w := doRequest(t, router, http.MethodGet, "/api/leaderboard?init_data="+url.QueryEscape(initData(testUserID, "")), nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"top"`)
}

func TestAccountRoutes_AddPoints(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		mockSetup      func(*mocks.MockAccountServiceI)
		expectedStatus int
	}{
		{
			name:           "Missing amount",
			body:           map[string]any{},
			mockSetup:      func(*mocks.MockAccountServiceI) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Negative amount",
			body:           map[string]any{"amount": -5},
			mockSetup:      func(*mocks.MockAccountServiceI) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown account",
			body: map[string]any{"amount": 50},
			mockSetup: func(as *mocks.MockAccountServiceI) {
				as.On("AddPoints", mock.Anything, testUserID, int64(50)).Return(nil, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Credited",
			body: map[string]any{"amount": 50},
			mockSetup: func(as *mocks.MockAccountServiceI) {
				as.On("AddPoints", mock.Anything, testUserID, int64(50)).Return(&model.Account{TelegramID: testUserID, Points: 150}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as := mocks.NewMockAccountServiceI(t)
			tt.mockSetup(as)

			router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
				NewAccountRoutes(g, as, nil, a)
			})
			w := doRequest(t, router, http.MethodPost, "/api/user/points", tt.body, telegramHeader())
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAccountRoutes_RecordWatchedAd(t *testing.T) {
	t.Run("credited", func(t *testing.T) {
		as := mocks.NewMockAccountServiceI(t)
		as.On("RecordWatchedAd", mock.Anything, testUserID).
			Return(&model.Account{TelegramID: testUserID, Points: 500, AdsWatchedToday: 1}, nil)

		router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
			NewAccountRoutes(g, as, nil, a)
		})
		w := doRequest(t, router, http.MethodPost, "/api/user/watched-ad", nil, telegramHeader())

		require.Equal(t, http.StatusOK, w.Code)
		var resp AccountResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, int64(500), resp.Points)
		assert.Equal(t, 1, resp.AdsWatchedToday)
	})

	t.Run("daily cap reached", func(t *testing.T) {
		as := mocks.NewMockAccountServiceI(t)
		as.On("RecordWatchedAd", mock.Anything, testUserID).Return(nil, service.ErrDailyLimitExceeded)

		router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
			NewAccountRoutes(g, as, nil, a)
		})
		w := doRequest(t, router, http.MethodPost, "/api/user/watched-ad", nil, telegramHeader())

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), service.ErrDailyLimitExceeded.Error())
	})
}

func TestAccountRoutes_DailyBonus(t *testing.T) {
	as := mocks.NewMockAccountServiceI(t)
	as.On("ClaimDailyBonus", mock.Anything, testUserID).Return(nil, service.ErrAlreadyClaimedToday).Once()
	as.On("GetDailyBonusStatus", mock.Anything, testUserID).Return(&model.DailyBonus{TelegramID: testUserID, IsAvailable: true, HasNeverBeenClaimed: true, Reward: 1000}, nil).Once()

	router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
		NewAccountRoutes(g, as, nil, a)
	})

	w := doRequest(t, router, http.MethodPost, "/api/user/daily-bonus", nil, telegramHeader())
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/user/daily-bonus", nil, telegramHeader())
	require.Equal(t, http.StatusOK, w.Code)
	var resp DailyBonusStatusResponse
	decodeBody(t, w, &resp)
	assert.True(t, resp.IsAvailable)
	assert.True(t, resp.HasNeverBeenClaimed)
	assert.Nil(t, resp.NextClaimAvailable)
}

type stubAvatars struct {
	path string
	err  error
}

func (s stubAvatars) AvatarPath(int64) (string, error) {
	return s.path, s.err
}

func TestAccountRoutes_GetAvatar(t *testing.T) {
	tests := []struct {
		name           string
		avatars        AvatarResolver
		expectedStatus int
	}{
		{name: "No resolver", avatars: nil, expectedStatus: http.StatusNotFound},
		{name: "No photo", avatars: stubAvatars{}, expectedStatus: http.StatusNotFound},
		{name: "Bot API failure", avatars: stubAvatars{err: errors.New("timeout")}, expectedStatus: http.StatusInternalServerError},
		{name: "Found", avatars: stubAvatars{path: "photos/file_1.jpg"}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as := mocks.NewMockAccountServiceI(t)
			router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
				NewAccountRoutes(g, as, tt.avatars, a)
			})
			w := doRequest(t, router, http.MethodGet, "/api/user/avatar", nil, telegramHeader())
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestReferralRoutes_GetReferrals(t *testing.T) {
	created := time.Date(2024, 5, 9, 8, 0, 0, 0, time.UTC)
	rs := mocks.NewMockReferralServiceI(t)
	rs.On("ListReferrals", mock.Anything, testUserID).Return(&model.ReferralSummary{
		Referrals: []*model.Referral{
			{ID: 1, ReferrerID: testUserID, ReferredID: 42, ReferredUsername: "bob", PointsEarned: 1000, CreatedAt: created, JoinedLabel: "yesterday"},
		},
		Count:       1,
		TotalEarned: 1000,
	}, nil)

	router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
		NewReferralRoutes(g, rs, func(id int64) string {
			return fmt.Sprintf("https://t.me/rewards_bot?startapp=ref_%d", id)
		}, a)
	})
	w := doRequest(t, router, http.MethodGet, "/api/referrals", nil, telegramHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp ReferralSummaryResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, int64(1000), resp.TotalEarned)
	assert.Equal(t, "ref_777", resp.ReferralCode)
	assert.Equal(t, "https://t.me/rewards_bot?startapp=ref_777", resp.InviteLink)
	require.Len(t, resp.Referrals, 1)
	assert.Equal(t, "yesterday", resp.Referrals[0].Joined)
}

func TestQuestRoutes_ClaimQuest(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockSetup      func(*mocks.MockQuestServiceI)
		expectedStatus int
	}{
		{
			name:           "Malformed id",
			path:           "/api/quests/abc/claim",
			mockSetup:      func(*mocks.MockQuestServiceI) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Not completed",
			path: "/api/quests/3/claim",
			mockSetup: func(qs *mocks.MockQuestServiceI) {
				qs.On("ClaimQuestReward", mock.Anything, testUserID, int64(3)).Return(nil, service.ErrQuestNotCompleted)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Unknown quest",
			path: "/api/quests/3/claim",
			mockSetup: func(qs *mocks.MockQuestServiceI) {
				qs.On("ClaimQuestReward", mock.Anything, testUserID, int64(3)).Return(nil, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Claimed",
			path: "/api/quests/3/claim",
			mockSetup: func(qs *mocks.MockQuestServiceI) {
				qs.On("ClaimQuestReward", mock.Anything, testUserID, int64(3)).Return(&model.Account{TelegramID: testUserID, Points: 2000}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := mocks.NewMockQuestServiceI(t)
			tt.mockSetup(qs)

			router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
				NewQuestRoutes(g, qs, a)
			})
			w := doRequest(t, router, http.MethodPost, tt.path, nil, telegramHeader())
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestQuestRoutes_GetQuests(t *testing.T) {
	completedAt := time.Date(2024, 5, 9, 8, 0, 0, 0, time.UTC)
	qs := mocks.NewMockQuestServiceI(t)
	qs.On("GetQuestsForAccount", mock.Anything, testUserID).Return([]*model.AccountQuest{
		{
			Quest:    model.Quest{ID: 1, Title: "Watch 5 ads", Type: model.QuestWatchAds, Points: 2500, TotalProgress: 5, IsActive: true},
			Progress: model.QuestProgress{CurrentProgress: 5, Completed: true, CompletedAt: &completedAt},
		},
	}, nil)

	router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
		NewQuestRoutes(g, qs, a)
	})
	w := doRequest(t, router, http.MethodGet, "/api/quests", nil, telegramHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp []AccountQuestResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp, 1)
	assert.True(t, resp[0].Completed)
	assert.False(t, resp[0].Claimed)
	assert.Equal(t, "watch_ads", resp[0].Type)
}

func TestWithdrawalRoutes_RequestWithdrawal(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		mockSetup      func(*mocks.MockWithdrawalServiceI)
		expectedStatus int
	}{
		{
			name:           "Missing method",
			body:           map[string]any{"amount": "10"},
			mockSetup:      func(*mocks.MockWithdrawalServiceI) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Below minimum",
			body: map[string]any{"method_id": 1, "amount": "0.5"},
			mockSetup: func(ws *mocks.MockWithdrawalServiceI) {
				ws.On("RequestWithdrawal", mock.Anything, testUserID, mock.Anything).Return(nil, service.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Insufficient points",
			body: map[string]any{"method_id": 1, "amount": "10"},
			mockSetup: func(ws *mocks.MockWithdrawalServiceI) {
				ws.On("RequestWithdrawal", mock.Anything, testUserID, mock.Anything).Return(nil, service.ErrInsufficientBalance)
			},
			expectedStatus: http.StatusPaymentRequired,
		},
		{
			name: "Created",
			body: map[string]any{"method_id": 1, "amount": "10.5555", "details": map[string]string{"email": "a@b.c"}},
			mockSetup: func(ws *mocks.MockWithdrawalServiceI) {
				ws.On("RequestWithdrawal", mock.Anything, testUserID, mock.MatchedBy(func(req model.WithdrawalRequest) bool {
					return req.MethodID == 1 && req.Amount.Equal(decimal.RequireFromString("10.5555")) && req.Details["email"] == "a@b.c"
				})).Return(&model.Withdrawal{
					ID:          uuid.New(),
					TelegramID:  testUserID,
					MethodID:    1,
					Amount:      decimal.RequireFromString("10.5555"),
					PointsSpent: 10555,
					Status:      model.WithdrawalPending,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := mocks.NewMockWithdrawalServiceI(t)
			cs := mocks.NewMockCatalogServiceI(t)
			tt.mockSetup(ws)

			router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
				NewWithdrawalRoutes(g, ws, cs, a)
			})
			w := doRequest(t, router, http.MethodPost, "/api/withdrawals", tt.body, telegramHeader())

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				var resp WithdrawalResponse
				decodeBody(t, w, &resp)
				assert.Equal(t, int64(10555), resp.PointsSpent)
				assert.Equal(t, "pending", resp.Status)
			}
		})
	}
}

func TestWithdrawalRoutes_Catalog(t *testing.T) {
	ws := mocks.NewMockWithdrawalServiceI(t)
	cs := mocks.NewMockCatalogServiceI(t)
	cs.On("ListCurrencies", mock.Anything, true).Return([]*model.Currency{
		{ID: 1, Name: "US Dollar", Code: "USD", Symbol: "$", ExchangeRate: decimal.NewFromInt(1000), IsActive: true},
	}, nil)
	cs.On("ListWithdrawalMethods", mock.Anything, true).Return(nil, errors.New("db down"))

	router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
		NewWithdrawalRoutes(g, ws, cs, a)
	})

	w := doRequest(t, router, http.MethodGet, "/api/currencies", nil, telegramHeader())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"USD"`)

	w = doRequest(t, router, http.MethodGet, "/api/withdrawal-methods", nil, telegramHeader())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTaskRoutes_CompleteTask(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockSetup      func(*mocks.MockTaskServiceI)
		expectedStatus int
	}{
		{
			name:           "Malformed id",
			path:           "/api/tasks/app/0/complete",
			mockSetup:      func(*mocks.MockTaskServiceI) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Already completed",
			path: "/api/tasks/links/4/complete",
			mockSetup: func(ts *mocks.MockTaskServiceI) {
				ts.On("CompleteTask", mock.Anything, testUserID, model.TaskKindLink, int64(4)).Return(nil, service.ErrAlreadyCompleted)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Credited",
			path: "/api/tasks/app/4/complete",
			mockSetup: func(ts *mocks.MockTaskServiceI) {
				ts.On("CompleteTask", mock.Anything, testUserID, model.TaskKindApp, int64(4)).Return(&model.Account{TelegramID: testUserID, Points: 850}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := mocks.NewMockTaskServiceI(t)
			tt.mockSetup(ts)

			router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
				NewTaskRoutes(g, ts, a)
			})
			w := doRequest(t, router, http.MethodPost, tt.path, nil, telegramHeader())
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestInvestmentRoutes_Subscribe(t *testing.T) {
	packageID := uuid.MustParse("8f14e45f-ceea-467f-a0e6-2f5b6f4b9d10")

	t.Run("package id must be a uuid", func(t *testing.T) {
		is := mocks.NewMockInvestmentServiceI(t)
		router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
			NewInvestmentRoutes(g, is, a)
		})
		w := doRequest(t, router, http.MethodPost, "/api/investments", map[string]string{"package_id": "gold"}, telegramHeader())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("running subscription", func(t *testing.T) {
		is := mocks.NewMockInvestmentServiceI(t)
		is.On("Subscribe", mock.Anything, testUserID, packageID).Return(nil, service.ErrConflict)

		router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
			NewInvestmentRoutes(g, is, a)
		})
		w := doRequest(t, router, http.MethodPost, "/api/investments", map[string]string{"package_id": packageID.String()}, telegramHeader())
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("subscribed", func(t *testing.T) {
		is := mocks.NewMockInvestmentServiceI(t)
		now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
		is.On("Subscribe", mock.Anything, testUserID, packageID).Return(&model.InvestmentSubscription{
			ID:         uuid.New(),
			TelegramID: testUserID,
			PackageID:  packageID,
			StartedAt:  now,
			EndsAt:     now.Add(7 * 24 * time.Hour),
		}, nil)

		router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
			NewInvestmentRoutes(g, is, a)
		})
		w := doRequest(t, router, http.MethodPost, "/api/investments", map[string]string{"package_id": packageID.String()}, telegramHeader())
		require.Equal(t, http.StatusCreated, w.Code)

		var resp SubscriptionResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, packageID, resp.PackageID)
	})
}

func TestInvestmentRoutes_CompleteTask(t *testing.T) {
	subID := uuid.MustParse("c9f0f895-fb98-4b91-9f2f-4e5a6b7c8d90")
	is := mocks.NewMockInvestmentServiceI(t)
	is.On("CompleteTask", mock.Anything, testUserID, subID).Return(nil, nil, service.ErrAlreadyClaimedToday)

	router := newTestRouter(func(g *gin.RouterGroup, a *auth.TelegramAuth) {
		NewInvestmentRoutes(g, is, a)
	})

	w := doRequest(t, router, http.MethodPost, "/api/investments/"+subID.String()+"/complete-task", nil, telegramHeader())
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/investments/nope/complete-task", nil, telegramHeader())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
