package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/salon-next/internal/authz"
	"github.com/salon-next/internal/config"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestCORSPolicyAllowOrigin(t *testing.T) {
	cases := []struct {
		cfg    config.CORSConfig
		origin string
		want   string
	}{
		{config.CORSConfig{}, "https://example.com", "*"},
		{config.CORSConfig{AllowCredentials: true}, "https://example.com", "https://example.com"},
		{config.CORSConfig{AllowedOrigins: []string{"https://a.example.com", "https://b.example.com"}}, "https://A.example.com", "https://A.example.com"},
		{config.CORSConfig{AllowedOrigins: []string{"https://a.example.com"}}, "https://x.example.com", ""},
		{config.CORSConfig{AllowedOrigins: []string{"https://a.example.com"}}, "", ""},
	}
	for _, tc := range cases {
		if got := newCORSPolicy(tc.cfg).allowOrigin(tc.origin); got != tc.want {
			t.Fatalf("origins=%v origin=%q: want %q got %q", tc.cfg.AllowedOrigins, tc.origin, tc.want, got)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(config.CORSConfig{AllowedOrigins: []string{"https://salon.vn"}, MaxAge: 600}))
	r.POST("/api/v1/public/bookings", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/public/bookings", nil)
	req.Header.Set("Origin", "https://salon.vn")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight want 204 got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "https://salon.vn" || w.Header().Get("Access-Control-Max-Age") != "600" {
		t.Fatalf("unexpected cors headers: %v", w.Header())
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header, token, key string
	}{
		{"", "", "error.auth_header_missing"},
		{"Token abc", "", "error.auth_header_invalid"},
		{"Bearer   ", "", "error.auth_header_invalid"},
		{"Bearer abc.def", "abc.def", ""},
	}
	for _, tc := range cases {
		token, key := bearerToken(tc.header)
		if token != tc.token || key != tc.key {
			t.Fatalf("header %q: got (%q,%q)", tc.header, token, key)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	generated := w2.Header().Get(requestIDHeader)
	if generated == "" {
		t.Fatalf("generated request id should not be empty")
	}
	if resp := strings.TrimSpace(generated); resp == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func setupRouterTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func decodeStatusCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(JWTAuthMiddleware(nil))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if code := decodeStatusCode(t, w); code != 401 {
		t.Fatalf("status_code want 401 got %d", code)
	}
}

func TestJWTAuthMiddlewareTokenLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupRouterTestDB(t)

	authService := service.NewAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "router-secret", ExpireHours: 1},
	}, repository.NewAdminRepository(db))
	admin := &models.Admin{Username: "desk", PasswordHash: "x"}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	token, _, err := authService.IssueToken(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	r := gin.New()
	r.Use(JWTAuthMiddleware(authService))
	r.GET("/admin/ping", func(c *gin.Context) {
		value, _ := c.Get(adminIDContextKey)
		c.JSON(http.StatusOK, gin.H{"status_code": 0, "admin_id": value})
	})

	call := func(header string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		return w
	}

	if code := decodeStatusCode(t, call("")); code != 401 {
		t.Fatalf("missing header want 401 got %d", code)
	}
	if code := decodeStatusCode(t, call("Token "+token)); code != 401 {
		t.Fatalf("malformed header want 401 got %d", code)
	}
	if code := decodeStatusCode(t, call("Bearer not-a-jwt")); code != 401 {
		t.Fatalf("garbage token want 401 got %d", code)
	}

	w := call("Bearer " + token)
	if code := decodeStatusCode(t, w); code != 0 {
		t.Fatalf("valid token want 0 got %d body=%s", code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), fmt.Sprintf(`"admin_id":%d`, admin.ID)) {
		t.Fatalf("admin id should be placed in context, got %s", w.Body.String())
	}

	if err := db.Model(&models.Admin{}).Where("id = ?", admin.ID).Update("token_version", 1).Error; err != nil {
		t.Fatalf("bump token version failed: %v", err)
	}
	if code := decodeStatusCode(t, call("Bearer "+token)); code != 401 {
		t.Fatalf("revoked token want 401 got %d", code)
	}
}

func TestAdminRBACMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupRouterTestDB(t)

	authzService, err := authz.NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap roles failed: %v", err)
	}
	if err := authzService.SetAdminRoles(7, []string{authz.RoleFrontDesk}); err != nil {
		t.Fatalf("set roles failed: %v", err)
	}

	newEngine := func(adminID uint, isSuper bool) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(adminIDContextKey, adminID)
			c.Set(adminIsSuperContextKey, isSuper)
			c.Next()
		})
		r.Use(AdminRBACMiddleware(authzService))
		ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status_code": 0}) }
		r.GET("/api/v1/admin/services", ok)
		r.POST("/api/v1/admin/services", ok)
		r.PUT("/api/v1/admin/bookings/:id", ok)
		return r
	}

	cases := []struct {
		name    string
		adminID uint
		isSuper bool
		method  string
		path    string
		want    int
	}{
		{name: "front desk reads catalog", adminID: 7, method: http.MethodGet, path: "/api/v1/admin/services", want: 0},
		{name: "front desk cannot edit catalog", adminID: 7, method: http.MethodPost, path: "/api/v1/admin/services", want: 403},
		{name: "front desk updates booking", adminID: 7, method: http.MethodPut, path: "/api/v1/admin/bookings/b-1", want: 0},
		{name: "no role", adminID: 8, method: http.MethodGet, path: "/api/v1/admin/services", want: 403},
		{name: "super bypass", adminID: 9, isSuper: true, method: http.MethodPost, path: "/api/v1/admin/services", want: 0},
		{name: "missing admin", adminID: 0, method: http.MethodGet, path: "/api/v1/admin/services", want: 401},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newEngine(tc.adminID, tc.isSuper).ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if code := decodeStatusCode(t, w); code != tc.want {
				t.Fatalf("status_code want %d got %d", tc.want, code)
			}
		})
	}
}
