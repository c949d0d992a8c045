package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/salon-next/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer        = "salon-next"
	defaultTokenExpiry = 24 * time.Hour
)

var errTokenClaims = errors.New("token claims invalid")

// AdminClaims 后台令牌声明，TokenVersion 与账号当前版本不一致即视为吊销
type AdminClaims struct {
	AdminID      uint   `json:"admin_id"`
	Username     string `json:"username"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

func (s *AuthService) tokenTTL() time.Duration {
	if s.cfg.JWT.ExpireHours > 0 {
		return time.Duration(s.cfg.JWT.ExpireHours) * time.Hour
	}
	return defaultTokenExpiry
}

// IssueToken 为账号签发 HS256 令牌
func (s *AuthService) IssueToken(admin *models.Admin) (string, time.Time, error) {
	issuedAt := time.Now()
	expiresAt := issuedAt.Add(s.tokenTTL())
	claims := AdminClaims{
		AdminID:      admin.ID,
		Username:     admin.Username,
		TokenVersion: admin.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(admin.ID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken 校验签名、签发方与有效期；过期错误可用 errors.Is(err, jwt.ErrTokenExpired) 识别
func (s *AuthService) ParseToken(raw string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, err
	}
	if claims.AdminID == 0 {
		return nil, errTokenClaims
	}
	return claims, nil
}
