package util

import (
	"net/url"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
)

type PageQuery struct {
	Page  int
	Limit int
}

func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageQuery 從query string取page/limit, 不合法值回到預設
func ParsePageQuery(q url.Values, defaultLimit int) PageQuery {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = constants.DefaultPaging
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > constants.MaxPagingSize {
		limit = constants.MaxPagingSize
	}
	return PageQuery{Page: page, Limit: limit}
}

type PageLink struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Pagination struct {
	Next *PageLink `json:"next,omitempty"`
	Prev *PageLink `json:"prev,omitempty"`
}

// BuildPagination 依總數產生上一頁/下一頁
func BuildPagination(p PageQuery, total int64) Pagination {
	var pagination Pagination
	endIndex := int64(p.Page * p.Limit)
	if endIndex < total {
		pagination.Next = &PageLink{Page: p.Page + 1, Limit: p.Limit}
	}
	if p.Offset() > 0 {
		pagination.Prev = &PageLink{Page: p.Page - 1, Limit: p.Limit}
	}
	return pagination
}

// ParseOptionalBool "true"/"false" 以外回傳nil
func ParseOptionalBool(v string) *bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}
