package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInitData() string {
	values := url.Values{}
	values.Set("auth_date", "1700000000")
	values.Set("user", `{"id":777,"username":"alice","first_name":"Alice"}`)
	values.Set("start_param", "ref_42")
	return values.Encode()
}

func TestExtractTelegramData(t *testing.T) {
	data, err := ExtractTelegramData(testInitData())
	require.NoError(t, err)

	assert.Equal(t, int64(777), data.ID)
	assert.Equal(t, "alice", data.Username)
	assert.Equal(t, "Alice", data.FirstName)
	assert.Equal(t, "ref_42", data.StartParam)
	assert.Equal(t, time.Unix(1700000000, 0), data.AuthDate)
}

func TestExtractTelegramData_Invalid(t *testing.T) {
	_, err := ExtractTelegramData("auth_date=abc")
	assert.Error(t, err)

	_, err = ExtractTelegramData("auth_date=1700000000&user=not-json")
	assert.Error(t, err)
}

func TestTelegramAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		debug      bool
		header     string
		query      string
		wantStatus int
	}{
		{name: "missing header", debug: true, wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", debug: true, header: "Bearer abc", wantStatus: http.StatusUnauthorized},
		{name: "debug mode header", debug: true, header: "Telegram " + testInitData(), wantStatus: http.StatusOK},
		{name: "debug mode query", debug: true, query: "?init_data=" + url.QueryEscape(testInitData()), wantStatus: http.StatusOK},
		{name: "unsigned data rejected", header: "Telegram " + testInitData(), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewTelegramAuth("123:token", tt.debug)

			router := gin.New()
			router.GET("/me", a.TelegramAuthMiddleware(), func(c *gin.Context) {
				user, ok := UserFromContext(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"id": user.ID})
			})

			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
