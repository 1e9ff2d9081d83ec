package middlewares

import (
	"MediPoint/models"
	"MediPoint/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleGateRouter(allowedRoles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded",
		func(c *gin.Context) {
			if role := c.GetHeader("X-Test-Role"); role != "" {
				c.Set(claimsContextKey, &utils.TokenClaims{UserID: "u1", Role: role})
			}
			c.Next()
		},
		RoleAuthMiddleware(allowedRoles...),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		},
	)
	return router
}

func requestWithRole(t *testing.T, router *gin.Engine, role string) int {
	t.Helper()
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	router.ServeHTTP(recorder, req)
	return recorder.Code
}

func TestRoleAuthMiddlewareAllowsListedRoles(t *testing.T) {
	router := roleGateRouter(models.RoleDoctor, models.RoleLaboratory)

	assert.Equal(t, http.StatusOK, requestWithRole(t, router, models.RoleDoctor))
	assert.Equal(t, http.StatusOK, requestWithRole(t, router, models.RoleLaboratory))
}

func TestRoleAuthMiddlewareRejectsOtherRoles(t *testing.T) {
	router := roleGateRouter(models.RoleDoctor, models.RoleLaboratory)

	assert.Equal(t, http.StatusForbidden, requestWithRole(t, router, models.RolePharmacist))
	assert.Equal(t, http.StatusForbidden, requestWithRole(t, router, models.RolePatient))
}

func TestRoleAuthMiddlewareRequiresClaims(t *testing.T) {
	router := roleGateRouter(models.RoleDoctor)

	assert.Equal(t, http.StatusUnauthorized, requestWithRole(t, router, ""))
}
