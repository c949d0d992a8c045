package service

import (
	"strings"

	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
)

// ContentService 站点内容设置
type ContentService struct {
	repo repository.ContentSettingRepository
}

// NewContentService 创建内容设置服务
func NewContentService(repo repository.ContentSettingRepository) *ContentService {
	return &ContentService{repo: repo}
}

// ContentInput 内容设置输入
type ContentInput struct {
	Slogans      []string
	Address      string
	FacebookURL  string
	ZaloURL      string
	InstagramURL string
	Phone        string
	OpeningHours map[string]interface{}
	HeroImages   []string
	SEO          map[string]interface{}
}

// Get 获取内容设置，未初始化时返回空设置
func (s *ContentService) Get() (*models.ContentSetting, error) {
	setting, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &models.ContentSetting{
			ID:           models.ContentSettingSingletonID,
			Slogans:      models.StringArray{},
			HeroImages:   models.StringArray{},
			OpeningHours: models.JSON{},
			SEO:          models.JSON{},
		}, nil
	}
	return setting, nil
}

// Update 覆盖写入内容设置
func (s *ContentService) Update(input ContentInput) (*models.ContentSetting, error) {
	setting := &models.ContentSetting{
		ID:           models.ContentSettingSingletonID,
		Slogans:      models.StringArray(uniqueTrimmed(input.Slogans)),
		Address:      strings.TrimSpace(input.Address),
		FacebookURL:  strings.TrimSpace(input.FacebookURL),
		ZaloURL:      strings.TrimSpace(input.ZaloURL),
		InstagramURL: strings.TrimSpace(input.InstagramURL),
		Phone:        strings.TrimSpace(input.Phone),
		OpeningHours: models.JSON(input.OpeningHours),
		HeroImages:   models.StringArray(uniqueTrimmed(input.HeroImages)),
		SEO:          models.JSON(input.SEO),
	}
	if setting.OpeningHours == nil {
		setting.OpeningHours = models.JSON{}
	}
	if setting.SEO == nil {
		setting.SEO = models.JSON{}
	}
	return s.repo.Upsert(setting)
}
