package helpers

import (
	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page    int
	PerPage int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ParsePagination reads page/per_page query params: page >= 1 (default 1),
// per_page 1-100 (default 20). Out-of-range values are clamped.
func ParsePagination(c *gin.Context) Pagination {
	page, err := StringToInt(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := StringToInt(c.DefaultQuery("per_page", "20"))
	if err != nil {
		perPage = 20
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > 100 {
		perPage = 100
	}

	return Pagination{Page: page, PerPage: perPage}
}

func PaginationMeta(p Pagination, total int64) gin.H {
	pages := (total + int64(p.PerPage) - 1) / int64(p.PerPage)
	return gin.H{
		"page":     p.Page,
		"per_page": p.PerPage,
		"total":    total,
		"pages":    pages,
	}
}
