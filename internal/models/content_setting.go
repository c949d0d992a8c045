package models

import "time"

// ContentSettingSingletonID 站点内容设置的固定主键
const ContentSettingSingletonID = "default"

// ContentSetting 站点内容设置（单行）
type ContentSetting struct {
	ID           string      `gorm:"primaryKey;type:varchar(36)" json:"id"` // 固定为 default
	Slogans      StringArray `gorm:"type:json" json:"slogans"`              // 标语
	Address      string      `gorm:"type:text" json:"address"`              // 地址
	FacebookURL  string      `json:"facebook_url"`                          // Facebook 主页
	ZaloURL      string      `json:"zalo_url"`                              // Zalo 主页
	InstagramURL string      `json:"instagram_url"`                         // Instagram 主页
	Phone        string      `json:"phone"`                                 // 联系电话
	OpeningHours JSON        `gorm:"type:json" json:"opening_hours"`        // 营业时间
	HeroImages   StringArray `gorm:"type:json" json:"hero_images"`          // 首屏图片
	SEO          JSON        `gorm:"type:json" json:"seo"`                  // SEO 配置
	UpdatedAt    time.Time   `json:"updated_at"`                            // 更新时间
}

// TableName 指定表名
func (ContentSetting) TableName() string {
	return "content_settings"
}
