package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/salon-next/internal/authz"
	"github.com/salon-next/internal/cache"
	"github.com/salon-next/internal/config"
	adminhandlers "github.com/salon-next/internal/http/handlers/admin"
	publichandlers "github.com/salon-next/internal/http/handlers/public"
	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/metrics"
	"github.com/salon-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.Z()
	RegisterValidators()
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "salon"
	}
	redisClient := cache.Client()
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	publicWriteRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:public_write", redisPrefix),
		WindowSeconds: cfg.Security.PublicWriteLimit.WindowSeconds,
		MaxRequests:   cfg.Security.PublicWriteLimit.MaxAttempts,
		MessageKey:    "error.too_many_requests",
	}
	publicWriteLimit := RateLimitMiddleware(redisClient, publicWriteRule, KeyByIP)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled {
		r.Use(metrics.NewHTTPMetrics(cfg.Metrics.Namespace, prometheus.DefaultRegisterer).Middleware())
	}

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/services", publicHandler.ListServices)
			public.GET("/services/:id", publicHandler.GetService)
			public.GET("/services/:id/price", publicHandler.GetServicePrice)
			public.GET("/promotions", publicHandler.ListActivePromotions)
			public.GET("/staff", publicHandler.ListStaff)
			public.GET("/gallery", publicHandler.ListGallery)
			public.GET("/feedback", publicHandler.ListFeedback)
			public.GET("/content-settings", publicHandler.GetContentSettings)

			public.POST("/bookings", publicWriteLimit, publicHandler.CreateBooking)
			public.POST("/feedback", publicWriteLimit, publicHandler.SubmitFeedback)
			public.POST("/contact", publicWriteLimit, publicHandler.SubmitContact)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("username")), adminHandler.Login)

			// 需要鉴权的接口
			authorized := admin.Group("", JWTAuthMiddleware(c.AuthService), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/me", adminHandler.Me)
				authorized.PUT("/password", adminHandler.ChangePassword)

				// 仪表盘
				authorized.GET("/dashboard/overview", adminHandler.GetDashboardOverview)

				// 服务目录
				authorized.GET("/categories", adminHandler.ListCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)
				authorized.GET("/services", adminHandler.ListServices)
				authorized.GET("/services/:id", adminHandler.GetService)
				authorized.POST("/services", adminHandler.CreateService)
				authorized.PUT("/services/:id", adminHandler.UpdateService)
				authorized.DELETE("/services/:id", adminHandler.DeleteService)

				// 活动
				authorized.GET("/promotions", adminHandler.ListPromotions)
				authorized.GET("/promotions/:id", adminHandler.GetPromotion)
				authorized.GET("/promotions/:id/preview", adminHandler.PreviewPromotion)
				authorized.POST("/promotions", adminHandler.CreatePromotion)
				authorized.PUT("/promotions/:id", adminHandler.UpdatePromotion)
				authorized.DELETE("/promotions/:id", adminHandler.DeletePromotion)

				// 预约
				authorized.GET("/bookings", adminHandler.ListBookings)
				authorized.GET("/bookings/:id", adminHandler.GetBooking)
				authorized.PUT("/bookings/:id", adminHandler.UpdateBooking)
				authorized.DELETE("/bookings/:id", adminHandler.DeleteBooking)

				// 技师
				authorized.GET("/staff", adminHandler.ListStaff)
				authorized.GET("/staff/:id", adminHandler.GetStaff)
				authorized.POST("/staff", adminHandler.CreateStaff)
				authorized.PUT("/staff/:id", adminHandler.UpdateStaff)
				authorized.DELETE("/staff/:id", adminHandler.DeleteStaff)
				authorized.PUT("/staff/:id/availability", adminHandler.ReplaceStaffAvailability)
				authorized.PUT("/staff/:id/services", adminHandler.ReplaceStaffServices)

				// 图库
				authorized.GET("/gallery", adminHandler.ListGallery)
				authorized.POST("/gallery", adminHandler.CreateGalleryImage)
				authorized.PUT("/gallery/:id", adminHandler.UpdateGalleryImage)
				authorized.DELETE("/gallery/:id", adminHandler.DeleteGalleryImage)

				// 评价与留言
				authorized.GET("/feedback", adminHandler.ListFeedback)
				authorized.PUT("/feedback/:id", adminHandler.UpdateFeedback)
				authorized.DELETE("/feedback/:id", adminHandler.DeleteFeedback)
				authorized.GET("/contact-messages", adminHandler.ListContactMessages)
				authorized.PUT("/contact-messages/:id", adminHandler.UpdateContactMessage)
				authorized.DELETE("/contact-messages/:id", adminHandler.DeleteContactMessage)

				// 站点内容
				authorized.GET("/content-settings", adminHandler.GetContentSettings)
				authorized.PUT("/content-settings", adminHandler.UpdateContentSettings)

				// 后台账号与权限
				authorized.GET("/admins", adminHandler.ListAdmins)
				authorized.POST("/admins", adminHandler.CreateAdmin)
				authorized.PUT("/admins/:id/roles", adminHandler.SetAdminRoles)
				authorized.GET("/roles", adminHandler.ListRoles)
				authorized.GET("/audit-logs", adminHandler.ListAuditLogs)
				authorized.GET("/permissions/catalog", func(ctx *gin.Context) {
					response.Success(ctx, buildAdminPermissionCatalog(r))
				})
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if cfg.Metrics.Enabled {
		path := strings.TrimSpace(cfg.Metrics.Path)
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.Handler()))
	}

	return r
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

// buildAdminPermissionCatalog 从已注册路由生成可授权的后台权限清单
func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") || item.Path == "/api/v1/admin/login" {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module != items[j].Module {
			return items[i].Module < items[j].Module
		}
		if items[i].Object != items[j].Object {
			return items[i].Object < items[j].Object
		}
		return items[i].Method < items[j].Method
	})
	return items
}

func deriveAdminPermissionModule(object string) string {
	segments := strings.Split(strings.TrimPrefix(strings.TrimSpace(object), "/"), "/")
	if len(segments) < 2 || segments[0] != "admin" {
		if segments[0] == "" {
			return "system"
		}
		return segments[0]
	}
	return segments[1]
}
