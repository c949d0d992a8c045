package service

import (
	"strings"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
)

// GalleryService 作品图库
type GalleryService struct {
	repo repository.GalleryRepository
}

// NewGalleryService 创建图库服务
func NewGalleryService(repo repository.GalleryRepository) *GalleryService {
	return &GalleryService{repo: repo}
}

// GalleryInput 创建/更新图片输入
type GalleryInput struct {
	URL       string
	Category  string
	Caption   string
	SortOrder int
}

// List 图片列表，分类为空时返回全部
func (s *GalleryService) List(filter repository.GalleryListFilter) ([]models.GalleryImage, int64, error) {
	if raw := strings.TrimSpace(filter.Category); raw != "" {
		category, ok := normalizeGalleryCategory(raw)
		if !ok {
			return nil, 0, ErrGalleryCategory
		}
		filter.Category = category
	}
	return s.repo.List(filter)
}

// Create 新增图片
func (s *GalleryService) Create(input GalleryInput) (*models.GalleryImage, error) {
	image := &models.GalleryImage{}
	if err := applyGalleryInput(image, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

// Update 更新图片
func (s *GalleryService) Update(id string, input GalleryInput) (*models.GalleryImage, error) {
	image, err := s.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrGalleryNotFound
	}
	if err := applyGalleryInput(image, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(image); err != nil {
		return nil, err
	}
	return image, nil
}

// Delete 删除图片
func (s *GalleryService) Delete(id string) error {
	image, err := s.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if image == nil {
		return ErrGalleryNotFound
	}
	return s.repo.Delete(image.ID)
}

func applyGalleryInput(image *models.GalleryImage, input GalleryInput) error {
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return ErrGalleryInvalid
	}
	category := constants.GalleryCategoryGeneral
	if raw := strings.TrimSpace(input.Category); raw != "" {
		normalized, ok := normalizeGalleryCategory(raw)
		if !ok {
			return ErrGalleryCategory
		}
		category = normalized
	}
	image.URL = url
	image.Category = category
	image.Caption = strings.TrimSpace(input.Caption)
	image.SortOrder = input.SortOrder
	return nil
}

// normalizeGalleryCategory 大小写不敏感匹配图库分类
func normalizeGalleryCategory(raw string) (string, bool) {
	for _, category := range []string{
		constants.GalleryCategoryNail,
		constants.GalleryCategoryEyelash,
		constants.GalleryCategoryFacial,
		constants.GalleryCategoryGeneral,
	} {
		if strings.EqualFold(raw, category) {
			return category, true
		}
	}
	return "", false
}
