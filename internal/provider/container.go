package provider

import (
	"context"
	"time"

	"github.com/salon-next/internal/authz"
	"github.com/salon-next/internal/cache"
	"github.com/salon-next/internal/config"
	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/queue"
	"github.com/salon-next/internal/repository"
	"github.com/salon-next/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo          repository.AdminRepository
	AdminAuditRepo     repository.AdminAuditLogRepository
	CategoryRepo       repository.CategoryRepository
	ServiceRepo        repository.ServiceRepository
	PromotionRepo      repository.PromotionRepository
	BookingRepo        repository.BookingRepository
	StaffRepo          repository.StaffRepository
	GalleryRepo        repository.GalleryRepository
	FeedbackRepo       repository.FeedbackRepository
	ContactRepo        repository.ContactRepository
	ContentSettingRepo repository.ContentSettingRepository
	DashboardRepo      repository.DashboardRepository

	// Services
	AuthzService          *authz.Service
	AuthService           *service.AuthService
	AdminService          *service.AdminService
	PricingService        *service.PricingService
	CategoryService       *service.CategoryService
	CatalogService        *service.CatalogService
	PromotionService      *service.PromotionService
	PromotionAdminService *service.PromotionAdminService
	BookingService        *service.BookingService
	StaffService          *service.StaffService
	GalleryService        *service.GalleryService
	FeedbackService       *service.FeedbackService
	ContactService        *service.ContactService
	ContentService        *service.ContentService
	DashboardService      *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.Connect(context.Background(), &cfg.Redis); err != nil {
		logger.Warnw("provider_redis_unreachable", "addr", cfg.Redis.Host, "error", err)
	}

	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient = nil
	}

	c, err := NewContainerWith(cfg, models.DB, queueClient)
	if err != nil {
		logger.Errorw("provider_init_failed", "error", err)
		panic(err)
	}
	return c
}

// NewContainerWith 使用指定数据库与队列客户端构建容器
func NewContainerWith(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) (*Container, error) {
	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	if err := c.initServices(db); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.AdminRepo = repository.NewAdminRepository(db)
	c.AdminAuditRepo = repository.NewAdminAuditLogRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ServiceRepo = repository.NewServiceRepository(db)
	c.PromotionRepo = repository.NewPromotionRepository(db)
	c.BookingRepo = repository.NewBookingRepository(db)
	c.StaffRepo = repository.NewStaffRepository(db)
	c.GalleryRepo = repository.NewGalleryRepository(db)
	c.FeedbackRepo = repository.NewFeedbackRepository(db)
	c.ContactRepo = repository.NewContactRepository(db)
	c.ContentSettingRepo = repository.NewContentSettingRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices(db *gorm.DB) error {
	authzService, err := authz.NewService(db)
	if err != nil {
		return err
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		return err
	}

	cacheTTL := time.Duration(c.Config.Pricing.ActivePromotionCacheSeconds) * time.Second
	reminderLead := time.Duration(c.Config.Booking.ReminderLeadMinutes) * time.Minute

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.AdminService = service.NewAdminService(c.AdminRepo, c.AdminAuditRepo, c.AuthService, c.AuthzService)
	c.PricingService = service.NewPricingService(c.PromotionRepo, cacheTTL)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CatalogService = service.NewCatalogService(c.ServiceRepo, c.CategoryRepo, c.PricingService)
	c.PromotionService = service.NewPromotionService(c.PricingService)
	c.PromotionAdminService = service.NewPromotionAdminService(c.PromotionRepo, c.ServiceRepo, c.CategoryRepo, c.PricingService)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.ServiceRepo, c.StaffRepo, c.PricingService, c.QueueClient, reminderLead)
	c.StaffService = service.NewStaffService(c.StaffRepo, c.ServiceRepo)
	c.GalleryService = service.NewGalleryService(c.GalleryRepo)
	c.FeedbackService = service.NewFeedbackService(c.FeedbackRepo)
	c.ContactService = service.NewContactService(c.ContactRepo)
	c.ContentService = service.NewContentService(c.ContentSettingRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
	return nil
}
