package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/artclub/backoffice-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func rolesRouter(roles []string, required ...string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if roles != nil {
			c.Set("admin_roles", roles)
		}
		c.Next()
	})
	router.PUT("/settings/seller", RequireRole(required...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	router := rolesRouter([]string{"staff", "admin"}, "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/settings/seller", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_RejectsMissingRole(t *testing.T) {
	router := rolesRouter([]string{"staff"}, "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/settings/seller", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_RejectsWithoutRolesInContext(t *testing.T) {
	router := rolesRouter(nil, "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/settings/seller", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_PopulatesAdminContext(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour)
	adminID := uuid.New()

	token, err := manager.GenerateAccessToken(adminID, "admin@artclub.example", []string{"admin"})
	require.NoError(t, err)

	router := gin.New()
	router.Use(AuthMiddleware(manager))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": GetAdminID(c).String()})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), adminID.String())
}

func TestAuthMiddleware_RejectsBadToken(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour)

	router := gin.New()
	router.Use(AuthMiddleware(manager))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Token abc",
		"garbage token":  "Bearer not-a-jwt",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}
