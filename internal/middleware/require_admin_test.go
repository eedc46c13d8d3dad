package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"laundry_express_back_end/internal/models"
)

func roleTestRouter(role string, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", func(c *gin.Context) {
		c.Set("role", role)
	}, guard, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{models.RoleCustomer, http.StatusForbidden},
		{models.RoleBusinessAdmin, http.StatusOK},
		{models.RolePlatformAdmin, http.StatusOK},
		{models.RoleSuperAdmin, http.StatusOK},
		{"", http.StatusForbidden},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		roleTestRouter(tc.role, RequireAdmin()).ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, "role=%q", tc.role)
	}
}

func TestRequirePlatformAdmin(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{models.RoleCustomer, http.StatusForbidden},
		{models.RoleBusinessAdmin, http.StatusForbidden},
		{models.RolePlatformAdmin, http.StatusOK},
		{models.RoleSuperAdmin, http.StatusOK},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		roleTestRouter(tc.role, RequirePlatformAdmin()).ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, "role=%q", tc.role)
	}
}
