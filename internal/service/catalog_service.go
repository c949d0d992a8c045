package service

import (
	"context"
	"strings"

	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/pricing"
	"github.com/salon-next/internal/repository"
)

// CatalogService 服务项目目录
type CatalogService struct {
	repo         repository.ServiceRepository
	categoryRepo repository.CategoryRepository
	pricing      *PricingService
}

// NewCatalogService 创建服务目录
func NewCatalogService(repo repository.ServiceRepository, categoryRepo repository.CategoryRepository, pricingService *PricingService) *CatalogService {
	return &CatalogService{
		repo:         repo,
		categoryRepo: categoryRepo,
		pricing:      pricingService,
	}
}

// PricedService 附带实际价格的服务
type PricedService struct {
	models.Service
	OriginalPrice      models.Money `json:"original_price"`
	EffectivePrice     models.Money `json:"effective_price"`
	Discount           models.Money `json:"discount"`
	HasDiscount        bool         `json:"has_discount"`
	AppliedPromotionID *string      `json:"applied_promotion_id,omitempty"`
}

func newPricedService(svc models.Service, price pricing.EffectivePrice) PricedService {
	item := PricedService{
		Service:        svc,
		OriginalPrice:  price.Original,
		EffectivePrice: price.Final,
		Discount:       price.Discount,
		HasDiscount:    price.HasDiscount,
	}
	if price.AppliedPromo != nil {
		id := price.AppliedPromo.ID
		item.AppliedPromotionID = &id
	}
	return item
}

// ServiceInput 创建/更新服务输入
type ServiceInput struct {
	CategoryID   string
	Name         string
	Slug         string
	Description  string
	BasePrice    models.Money
	DurationMins int
	IsActive     *bool
}

// ListPublic 前台服务列表（仅上架，附带实际价格）
func (s *CatalogService) ListPublic(ctx context.Context, filter repository.ServiceListFilter) ([]PricedService, int64, error) {
	filter.OnlyActive = true
	filter.WithCategory = true
	services, total, err := s.repo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	prices, err := s.pricing.QuoteMany(ctx, services)
	if err != nil {
		return nil, 0, err
	}
	items := make([]PricedService, 0, len(services))
	for i := range services {
		items = append(items, newPricedService(services[i], prices[i]))
	}
	return items, total, nil
}

// GetPublic 前台服务详情
func (s *CatalogService) GetPublic(ctx context.Context, id string) (*PricedService, error) {
	svc, err := s.repo.GetByID(strings.TrimSpace(id), true)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	price, err := s.pricing.Quote(ctx, svc)
	if err != nil {
		return nil, err
	}
	item := newPricedService(*svc, price)
	return &item, nil
}

// GetPrice 服务价格明细（含命中的活动）
func (s *CatalogService) GetPrice(ctx context.Context, id string) (*pricing.EffectivePrice, error) {
	svc, err := s.repo.GetByID(strings.TrimSpace(id), true)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	price, err := s.pricing.Quote(ctx, svc)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// ListAdmin 后台服务列表
func (s *CatalogService) ListAdmin(filter repository.ServiceListFilter) ([]models.Service, int64, error) {
	filter.WithCategory = true
	return s.repo.List(filter)
}

// GetAdmin 后台服务详情
func (s *CatalogService) GetAdmin(id string) (*models.Service, error) {
	svc, err := s.repo.GetByID(id, false)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// Create 创建服务
func (s *CatalogService) Create(input ServiceInput) (*models.Service, error) {
	if err := s.validateInput(&input, ""); err != nil {
		return nil, err
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	svc := models.Service{
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Slug:         input.Slug,
		Description:  input.Description,
		BasePrice:    input.BasePrice,
		DurationMins: input.DurationMins,
		IsActive:     isActive,
	}
	if err := s.repo.Create(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Update 更新服务
func (s *CatalogService) Update(id string, input ServiceInput) (*models.Service, error) {
	svc, err := s.repo.GetByID(id, false)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if err := s.validateInput(&input, id); err != nil {
		return nil, err
	}

	svc.CategoryID = input.CategoryID
	svc.Name = input.Name
	svc.Slug = input.Slug
	svc.Description = input.Description
	svc.BasePrice = input.BasePrice
	svc.DurationMins = input.DurationMins
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}
	svc.Category = nil
	if err := s.repo.Update(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Delete 删除服务
func (s *CatalogService) Delete(id string) error {
	svc, err := s.repo.GetByID(id, false)
	if err != nil {
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}
	return s.repo.Delete(id)
}

func (s *CatalogService) validateInput(input *ServiceInput, exceptID string) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Slug = strings.TrimSpace(input.Slug)
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	if input.Name == "" || input.Slug == "" || input.CategoryID == "" {
		return ErrServiceInvalid
	}
	if input.BasePrice.Decimal.IsNegative() || input.DurationMins <= 0 {
		return ErrServiceInvalid
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	taken, err := s.repo.SlugTaken(input.Slug, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugExists
	}
	input.BasePrice = models.NewMoneyFromDecimal(input.BasePrice.Decimal)
	return nil
}
