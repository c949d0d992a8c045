package service

import (
	"strings"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
)

// FeedbackService 客户评价
type FeedbackService struct {
	repo repository.FeedbackRepository
}

// NewFeedbackService 创建评价服务
func NewFeedbackService(repo repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// CreateFeedbackInput 前台提交评价
type CreateFeedbackInput struct {
	Rating       int
	Title        string
	Comment      string
	ImageURLs    []string
	CustomerName string
}

// UpdateFeedbackInput 后台审核评价
type UpdateFeedbackInput struct {
	Status     *string
	IsFeatured *bool
}

// Submit 提交评价，始终进入待审核
func (s *FeedbackService) Submit(input CreateFeedbackInput) (*models.Feedback, error) {
	if input.Rating < constants.FeedbackRatingMin || input.Rating > constants.FeedbackRatingMax {
		return nil, ErrFeedbackRating
	}
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, ErrFeedbackInvalid
	}
	feedback := &models.Feedback{
		Rating:       input.Rating,
		Title:        strings.TrimSpace(input.Title),
		Comment:      comment,
		ImageURLs:    models.StringArray(uniqueTrimmed(input.ImageURLs)),
		Status:       constants.FeedbackStatusPending,
		CustomerName: strings.TrimSpace(input.CustomerName),
	}
	if err := s.repo.Create(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// ListPublic 前台展示已通过的评价
func (s *FeedbackService) ListPublic(filter repository.FeedbackListFilter) ([]models.Feedback, int64, error) {
	filter.Status = constants.FeedbackStatusApproved
	return s.repo.List(filter)
}

// List 后台评价列表
func (s *FeedbackService) List(filter repository.FeedbackListFilter) ([]models.Feedback, int64, error) {
	if raw := strings.TrimSpace(filter.Status); raw != "" {
		status := strings.ToUpper(raw)
		if !isValidFeedbackStatus(status) {
			return nil, 0, ErrFeedbackStatus
		}
		filter.Status = status
	}
	return s.repo.List(filter)
}

// Update 审核评价
func (s *FeedbackService) Update(id string, input UpdateFeedbackInput) (*models.Feedback, error) {
	feedback, err := s.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}
	if input.Status != nil {
		status := strings.ToUpper(strings.TrimSpace(*input.Status))
		if !isValidFeedbackStatus(status) {
			return nil, ErrFeedbackStatus
		}
		feedback.Status = status
	}
	if input.IsFeatured != nil {
		feedback.IsFeatured = *input.IsFeatured
	}
	if err := s.repo.Update(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// Delete 删除评价
func (s *FeedbackService) Delete(id string) error {
	feedback, err := s.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if feedback == nil {
		return ErrFeedbackNotFound
	}
	return s.repo.Delete(feedback.ID)
}

func isValidFeedbackStatus(status string) bool {
	return status == constants.FeedbackStatusPending ||
		status == constants.FeedbackStatusApproved ||
		status == constants.FeedbackStatusRejected
}
