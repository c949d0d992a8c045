package service

import (
	"strings"

	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
)

// CategoryService 服务分类
type CategoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput 名称与 slug 必填，slug 全局唯一
type CategoryInput struct {
	Name      string
	Slug      string
	SortOrder int
}

func (in CategoryInput) normalized() (CategoryInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Name == "" || in.Slug == "" {
		return in, ErrCategoryInvalid
	}
	return in, nil
}

func (s *CategoryService) List() ([]models.ServiceCategory, error) {
	return s.repo.List()
}

func (s *CategoryService) Create(input CategoryInput) (*models.ServiceCategory, error) {
	category := &models.ServiceCategory{}
	if err := s.save(category, input, ""); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(id string, input CategoryInput) (*models.ServiceCategory, error) {
	category, err := s.mustGet(id)
	if err != nil {
		return nil, err
	}
	if err := s.save(category, input, id); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 分类下仍有服务项目时返回 ErrCategoryInUse
func (s *CategoryService) Delete(id string) error {
	if _, err := s.mustGet(id); err != nil {
		return err
	}
	inUse, err := s.repo.HasServices(id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCategoryInUse
	}
	return s.repo.Delete(id)
}

func (s *CategoryService) mustGet(id string) (*models.ServiceCategory, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// save 校验后写入；category.ID 为空时新建
func (s *CategoryService) save(category *models.ServiceCategory, input CategoryInput, exceptID string) error {
	input, err := input.normalized()
	if err != nil {
		return err
	}
	taken, err := s.repo.SlugTaken(input.Slug, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugExists
	}

	category.Name, category.Slug, category.SortOrder = input.Name, input.Slug, input.SortOrder
	if category.ID == "" {
		return s.repo.Create(category)
	}
	return s.repo.Update(category)
}
