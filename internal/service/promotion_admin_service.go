package service

import (
	"context"
	"strings"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/pricing"
	"github.com/salon-next/internal/repository"

	"github.com/shopspring/decimal"
)

// PromotionAdminService 活动管理服务
type PromotionAdminService struct {
	repo         repository.PromotionRepository
	serviceRepo  repository.ServiceRepository
	categoryRepo repository.CategoryRepository
	pricing      *PricingService
}

// NewPromotionAdminService 创建活动管理服务
func NewPromotionAdminService(
	repo repository.PromotionRepository,
	serviceRepo repository.ServiceRepository,
	categoryRepo repository.CategoryRepository,
	pricingService *PricingService,
) *PromotionAdminService {
	return &PromotionAdminService{
		repo:         repo,
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
		pricing:      pricingService,
	}
}

// PromotionInput 创建/更新活动输入
type PromotionInput struct {
	Title        string
	Description  string
	DiscountType string
	Value        models.Money
	ScopeType    string
	ScopeID      *string
	StartAt      time.Time
	EndAt        time.Time
	IsActive     *bool
}

// PromotionPreviewItem 活动对单个服务的试算结果
type PromotionPreviewItem struct {
	ServiceID   string       `json:"service_id"`
	ServiceName string       `json:"service_name"`
	BasePrice   models.Money `json:"base_price"`
	Discount    models.Money `json:"discount"`
	FinalPrice  models.Money `json:"final_price"`
}

// List 获取活动列表
func (s *PromotionAdminService) List(filter repository.PromotionListFilter) ([]models.Promotion, int64, error) {
	filter.ScopeType = strings.ToUpper(strings.TrimSpace(filter.ScopeType))
	filter.DiscountType = strings.ToUpper(strings.TrimSpace(filter.DiscountType))
	return s.repo.List(filter)
}

// Get 获取活动详情
func (s *PromotionAdminService) Get(id string) (*models.Promotion, error) {
	promotion, err := s.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, ErrPromotionNotFound
	}
	return promotion, nil
}

// Create 创建活动
func (s *PromotionAdminService) Create(ctx context.Context, input PromotionInput) (*models.Promotion, error) {
	if err := s.normalizeInput(&input); err != nil {
		return nil, err
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	promotion := &models.Promotion{
		Title:        input.Title,
		Description:  input.Description,
		DiscountType: input.DiscountType,
		Value:        input.Value,
		ScopeType:    input.ScopeType,
		ScopeID:      input.ScopeID,
		StartAt:      input.StartAt,
		EndAt:        input.EndAt,
		IsActive:     isActive,
	}
	if err := s.repo.Create(promotion); err != nil {
		return nil, err
	}
	s.pricing.InvalidateActivePromotions(ctx)
	return promotion, nil
}

// Update 更新活动
func (s *PromotionAdminService) Update(ctx context.Context, id string, input PromotionInput) (*models.Promotion, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.normalizeInput(&input); err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.DiscountType = input.DiscountType
	existing.Value = input.Value
	existing.ScopeType = input.ScopeType
	existing.ScopeID = input.ScopeID
	existing.StartAt = input.StartAt
	existing.EndAt = input.EndAt
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	s.pricing.InvalidateActivePromotions(ctx)
	return existing, nil
}

// Delete 删除活动
func (s *PromotionAdminService) Delete(ctx context.Context, id string) error {
	existing, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(existing.ID); err != nil {
		return err
	}
	s.pricing.InvalidateActivePromotions(ctx)
	return nil
}

// Preview 试算活动在各上架服务上的折扣，不考虑时间窗口与其他活动
func (s *PromotionAdminService) Preview(id string) ([]PromotionPreviewItem, error) {
	promotion, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	services, _, err := s.serviceRepo.List(repository.ServiceListFilter{OnlyActive: true})
	if err != nil {
		return nil, err
	}

	items := make([]PromotionPreviewItem, 0)
	for i := range services {
		if !pricing.IsApplicable(&services[i], promotion) {
			continue
		}
		base := services[i].BasePrice.Decimal
		discount := pricing.CandidateDiscount(base, promotion)
		final := base.Sub(discount)
		if final.IsNegative() {
			final = decimal.Zero
		}
		items = append(items, PromotionPreviewItem{
			ServiceID:   services[i].ID,
			ServiceName: services[i].Name,
			BasePrice:   services[i].BasePrice,
			Discount:    models.Money{Decimal: discount},
			FinalPrice:  models.Money{Decimal: final},
		})
	}
	return items, nil
}

func (s *PromotionAdminService) normalizeInput(input *PromotionInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.DiscountType = strings.ToUpper(strings.TrimSpace(input.DiscountType))
	input.ScopeType = strings.ToUpper(strings.TrimSpace(input.ScopeType))

	if input.Title == "" {
		return ErrPromotionTitleRequired
	}
	if input.DiscountType != constants.DiscountTypePercent && input.DiscountType != constants.DiscountTypeAmount {
		return ErrPromotionTypeInvalid
	}
	if input.Value.Decimal.LessThanOrEqual(decimal.Zero) {
		return ErrPromotionValueInvalid
	}
	if input.DiscountType == constants.DiscountTypePercent && input.Value.Decimal.GreaterThan(decimal.NewFromInt(100)) {
		return ErrPromotionPercentInvalid
	}
	if input.StartAt.IsZero() || input.EndAt.IsZero() || input.EndAt.Before(input.StartAt) {
		return ErrPromotionWindowInvalid
	}

	var scopeID string
	if input.ScopeID != nil {
		scopeID = strings.TrimSpace(*input.ScopeID)
	}
	switch input.ScopeType {
	case constants.ScopeTypeGlobal:
		input.ScopeID = nil
	case constants.ScopeTypeCategory:
		if scopeID == "" {
			return ErrPromotionScopeInvalid
		}
		category, err := s.categoryRepo.GetByID(scopeID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrPromotionScopeTargetNotFound
		}
		input.ScopeID = &scopeID
	case constants.ScopeTypeService:
		if scopeID == "" {
			return ErrPromotionScopeInvalid
		}
		svc, err := s.serviceRepo.GetByID(scopeID, false)
		if err != nil {
			return err
		}
		if svc == nil {
			return ErrPromotionScopeTargetNotFound
		}
		input.ScopeID = &scopeID
	default:
		return ErrPromotionScopeInvalid
	}
	return nil
}
