package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"
)

const adminSessionTTL = 10 * time.Minute

// AdminSession 校验管理员令牌所需的账号状态
type AdminSession struct {
	AdminID       uint   `json:"admin_id"`
	Username      string `json:"username"`
	IsSuper       bool   `json:"is_super"`
	TokenVersion  uint64 `json:"token_version"`
	RevokedBefore int64  `json:"revoked_before"` // Unix 秒，此前签发的令牌无效；0 表示未吊销
}

// NewAdminSession 由账号记录生成会话状态
func NewAdminSession(admin *models.Admin) *AdminSession {
	if admin == nil {
		return nil
	}
	session := &AdminSession{
		AdminID:      admin.ID,
		Username:     admin.Username,
		IsSuper:      admin.IsSuper,
		TokenVersion: admin.TokenVersion,
	}
	if admin.TokenInvalidBefore != nil {
		session.RevokedBefore = admin.TokenInvalidBefore.Unix()
	}
	return session
}

// Accepts 令牌版本一致且签发时间不早于吊销点
func (s *AdminSession) Accepts(version uint64, issuedAt *time.Time) bool {
	if s == nil || version != s.TokenVersion {
		return false
	}
	if s.RevokedBefore <= 0 {
		return true
	}
	return issuedAt != nil && issuedAt.Unix() >= s.RevokedBefore
}

func adminSessionKey(adminID uint) string {
	return constants.CacheKeyAdminSessionPrefix + strconv.FormatUint(uint64(adminID), 10)
}

// LoadAdminSession 读取缓存的会话状态
func LoadAdminSession(ctx context.Context, adminID uint) (*AdminSession, bool, error) {
	if adminID == 0 {
		return nil, false, nil
	}
	session := &AdminSession{}
	hit, err := GetJSON(ctx, adminSessionKey(adminID), session)
	if err != nil || !hit {
		return nil, hit, err
	}
	return session, true, nil
}

// StoreAdminSession 缓存会话状态
func StoreAdminSession(ctx context.Context, session *AdminSession) error {
	if session == nil || session.AdminID == 0 {
		return nil
	}
	return SetJSON(ctx, adminSessionKey(session.AdminID), session, adminSessionTTL)
}

// ForgetAdminSession 账号权限变更后丢弃缓存
func ForgetAdminSession(ctx context.Context, adminID uint) error {
	if adminID == 0 {
		return nil
	}
	return Del(ctx, adminSessionKey(adminID))
}
