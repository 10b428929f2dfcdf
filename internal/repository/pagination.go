package repository

import "gorm.io/gorm"

// maxPageSize 列表查询单页上限，防止后台导出式大分页拖垮数据库。
const maxPageSize = 100

// applyPagination 统一套用分页；pageSize<=0 表示不分页。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
