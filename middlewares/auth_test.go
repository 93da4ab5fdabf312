package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c)})
	})
	r.GET("/admin", AuthMiddleware(testSecret, "admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": utils.CurrentRole(c)})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingToken(t *testing.T) {
	r := testRouter()
	w := doGet(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGarbageToken(t *testing.T) {
	r := testRouter()
	w := doGet(r, "/me", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidToken(t *testing.T) {
	r := testRouter()
	token, err := utils.GenerateToken(7, "customer", testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestCustomerBlockedFromAdmin(t *testing.T) {
	r := testRouter()
	token, err := utils.GenerateToken(7, "customer", testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminAllowed(t *testing.T) {
	r := testRouter()
	token, err := utils.GenerateToken(1, "admin", testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExpiredToken(t *testing.T) {
	r := testRouter()
	token, err := utils.GenerateToken(7, "customer", testSecret, -time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWrongSecret(t *testing.T) {
	r := testRouter()
	token, err := utils.GenerateToken(7, "admin", "other-secret", time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/admin", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
