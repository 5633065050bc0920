package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/session"
)

func tokenWithClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return signed
}

func gatedEngine(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handlers := append([]gin.HandlerFunc{RequireToken()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		c.JSON(http.StatusOK, gin.H{
			"session_id": GetSessionID(c),
			"token":      GetToken(c),
			"role":       role,
		})
	})
	engine.GET("/secure", handlers...)
	return engine
}

func TestRequireToken(t *testing.T) {
	t.Run("missing token answers 401 with login redirect and origin", func(t *testing.T) {
		engine := gatedEngine()

		req := httptest.NewRequest(http.MethodGet, "/secure?tab=2", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var envelope struct {
			Errors struct {
				Redirect string `json:"redirect"`
				From     string `json:"from"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "/login", envelope.Errors.Redirect)
		assert.Equal(t, "/secure?tab=2", envelope.Errors.From)
	})

	t.Run("any bearer token passes, expired included", func(t *testing.T) {
		engine := gatedEngine()
		expired := tokenWithClaims(t, jwt.MapClaims{
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed authorization header is treated as missing", func(t *testing.T) {
		engine := gatedEngine()

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("role claim is normalized into the context", func(t *testing.T) {
		engine := gatedEngine()
		token := tokenWithClaims(t, jwt.MapClaims{
			"role": []interface{}{"booking:create", "ROLE_ADMIN"},
		})

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ADMIN", body["role"])
	})
}

func TestRequireRoles(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		engine := gatedEngine(RequireRoles(session.RoleAdmin, session.RoleSuperAdmin))
		token := tokenWithClaims(t, jwt.MapClaims{"role": "ADMIN"})

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("disallowed role gets 403 with its own landing path", func(t *testing.T) {
		engine := gatedEngine(RequireRoles(session.RoleSuperAdmin))
		token := tokenWithClaims(t, jwt.MapClaims{"role": "ADMIN"})

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)

		var envelope struct {
			Errors struct {
				Redirect string `json:"redirect"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "/admin/dashboard", envelope.Errors.Redirect)
	})

	t.Run("token without role claim is treated as USER", func(t *testing.T) {
		engine := gatedEngine(RequireRoles(session.RoleAdmin))
		token := tokenWithClaims(t, jwt.MapClaims{"user_id": "u-1"})

		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)

		var envelope struct {
			Errors struct {
				Redirect string `json:"redirect"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "/", envelope.Errors.Redirect)
	})
}

func TestSessionID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(SessionID())
	engine.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, GetSessionID(c))
	})

	t.Run("uses the header when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Set("X-Session-ID", "spa-abc")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, "spa-abc", rec.Body.String())
	})

	t.Run("falls back to a client ip key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Contains(t, rec.Body.String(), "ip:")
	})
}
