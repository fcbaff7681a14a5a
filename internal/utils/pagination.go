package utils

// 分页默认值
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination 分页参数
type Pagination struct {
	CurrentPage int   `json:"current_page"` // 当前页码
	PageSize    int   `json:"page_size"`    // 每页数量
	Total       int64 `json:"total"`        // 总记录数
	Pages       int   `json:"pages"`        // 总页数
}

// NewPagination 规范化分页参数，非法值使用默认值
func NewPagination(page, pageSize int) *Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	// 限制每页最大数量
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return &Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
	}
}

// SetTotal 设置总记录数并计算总页数
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	p.Pages = int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// GetPaginationResult 获取分页结果
func GetPaginationResult(p *Pagination, list interface{}) map[string]interface{} {
	return map[string]interface{}{
		"list":         list,
		"current_page": p.CurrentPage,
		"page_size":    p.PageSize,
		"total":        p.Total,
		"pages":        p.Pages,
	}
}
