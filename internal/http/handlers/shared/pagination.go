package shared

// 列表接口的分页约定：缺省每页 20 条，上限 100 条。
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePagination 归一化分页参数
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
