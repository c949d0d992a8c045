package service

import (
	"strings"

	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
)

// ContactService 联系留言
type ContactService struct {
	repo repository.ContactRepository
}

// NewContactService 创建留言服务
func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// ContactInput 前台留言输入
type ContactInput struct {
	Name    string
	Phone   string
	Message string
}

// Submit 提交留言
func (s *ContactService) Submit(input ContactInput) (*models.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	message := strings.TrimSpace(input.Message)
	if name == "" || message == "" {
		return nil, ErrContactInvalid
	}
	record := &models.ContactMessage{
		Name:    name,
		Phone:   strings.TrimSpace(input.Phone),
		Message: message,
	}
	if err := s.repo.Create(record); err != nil {
		return nil, err
	}
	logger.Infow("contact_message_received", "contact_id", record.ID)
	return record, nil
}

// List 后台留言列表
func (s *ContactService) List(filter repository.ContactListFilter) ([]models.ContactMessage, int64, error) {
	return s.repo.List(filter)
}

// SetHandled 标记处理状态
func (s *ContactService) SetHandled(id string, handled bool) (*models.ContactMessage, error) {
	record, err := s.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrContactNotFound
	}
	record.Handled = handled
	if err := s.repo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete 删除留言
func (s *ContactService) Delete(id string) error {
	record, err := s.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if record == nil {
		return ErrContactNotFound
	}
	return s.repo.Delete(record.ID)
}
