package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api/v1")
	SetupSessionRoutes(api, NewController())
	return engine
}

func postNormalizeRole(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/normalize-role", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestNormalizeRoleEndpoint(t *testing.T) {
	engine := setupRouter()

	cases := []struct {
		name     string
		body     string
		role     string
		path     string
	}{
		{"plain string", `{"role":"admin"}`, "ADMIN", "/admin/dashboard"},
		{"prefixed string", `{"role":"ROLE_SUPER_ADMIN"}`, "SUPER_ADMIN", "/super-admin/dashboard"},
		{"authority array", `{"role":["booking:create","ROLE_ADMIN"]}`, "ADMIN", "/admin/dashboard"},
		{"unknown defaults to user", `{"role":["unknown_thing"]}`, "USER", "/"},
		{"missing role defaults to user", `{}`, "USER", "/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postNormalizeRole(t, engine, tc.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var envelope struct {
				Data NormalizeRoleResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, Role(tc.role), envelope.Data.Role)
			assert.Equal(t, tc.path, envelope.Data.DefaultPath)
		})
	}

	t.Run("malformed body is rejected", func(t *testing.T) {
		rec := postNormalizeRole(t, engine, `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
