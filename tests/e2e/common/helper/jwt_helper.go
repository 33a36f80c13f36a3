//go:build e2e

package helper

import (
	"net/http"
	"testing"
	"time"

	"renthub/internal/handler/dto/request"
	"renthub/internal/pkg/config"
	"renthub/internal/pkg/cookie"
	"renthub/internal/pkg/jwt"
	"renthub/tests/common/dbtest"
	apptest "renthub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

func (h *JWTTestHelper) CreateTestUser(t *testing.T, db dbtest.DBLike, email, name string) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, db, email, name)
}

func (h *JWTTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := apptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := apptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "access token cookie not set")
	require.NotEmpty(t, accessCookie.Value, "access token cookie is empty")

	return accessCookie.Value
}

func (h *JWTTestHelper) CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, name string) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, name)
	return userID, h.LoginUser(t, router, email, "password123")
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessDuration, h.cfg.RefreshDuration)
	token, err := service.GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, h.cfg.RefreshDuration)
	token, err := service.GenerateAccessToken(userID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
