package repository

import (
	"github.com/caffe-pos/internal/constants"

	"gorm.io/gorm"
)

// applyPagination 应用分页参数，非法页码回退到第一页，页大小封顶。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
