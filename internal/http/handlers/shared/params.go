package shared

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ParsePagination 读取 page / page_size，非法值回落到第一页与默认页长
func ParsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.Query("page_size"))
	switch {
	case err != nil || size <= 0:
		size = defaultPageSize
	case size > maxPageSize:
		size = maxPageSize
	}
	return page, size
}

// ParseOptionalPagination 未带 page 与 page_size 时 paged 为 false，pageSize 为 0 表示不分页
func ParseOptionalPagination(c *gin.Context) (page, pageSize int, paged bool) {
	if c.Query("page") == "" && c.Query("page_size") == "" {
		return 1, 0, false
	}
	page, pageSize = ParsePagination(c)
	return page, pageSize, true
}

// ParseTime 解析 RFC3339 时间，兼容不带时区的本地时间。
func ParseTime(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
}

// ParseTimeNullable 解析可选时间参数，空串返回 nil。
func ParseTimeNullable(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := ParseTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseBoolNullable 解析可选布尔参数，空串返回 nil。
func ParseBoolNullable(raw string) (*bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
