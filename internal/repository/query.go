package repository

import (
	"database/sql"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// paginate 分页 scope，pageSize 不大于 0 时不分页
func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		return db.Offset((max(page, 1) - 1) * pageSize).Limit(pageSize)
	}
}

// firstOrNil 取第一条记录，未找到时返回 (nil, nil)
func firstOrNil[T any](query *gorm.DB, conds ...interface{}) (*T, error) {
	var row T
	err := query.First(&row, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// applySearch 多列模糊匹配任一命中即可；postgres 用 ILIKE 忽略大小写
func applySearch(query *gorm.DB, keyword string, columns ...string) *gorm.DB {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || len(columns) == 0 {
		return query
	}
	return query.Where(searchClause(query.Dialector.Name(), columns), sql.Named("kw", "%"+keyword+"%"))
}

func searchClause(dialect string, columns []string) string {
	op := "LIKE"
	if dialect == "postgres" {
		op = "ILIKE"
	}
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = col + " " + op + " @kw"
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// slugTaken slug 是否已被 exceptID 以外的记录占用
func slugTaken(db *gorm.DB, model interface{}, slug, exceptID string) (bool, error) {
	query := db.Model(model).Where("slug = ?", slug)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	var n int64
	err := query.Count(&n).Error
	return n > 0, err
}
