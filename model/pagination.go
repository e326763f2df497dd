package model

import (
	"fmt"
	"net/url"
	"strconv"
)

// PaginationMeta mirrors the paginator meta block the mobile clients consume.
type PaginationMeta struct {
	Total           int64             `json:"total"`
	PerPage         int               `json:"per_page"`
	CurrentPage     int               `json:"current_page"`
	LastPage        int               `json:"last_page"`
	FirstPage       int               `json:"first_page"`
	FirstPageURL    string            `json:"first_page_url"`
	LastPageURL     string            `json:"last_page_url"`
	NextPageURL     *string           `json:"next_page_url"`
	PreviousPageURL *string           `json:"previous_page_url"`
	QueryString     map[string]string `json:"query_string"`
}

// NewPaginationMeta builds page links from baseURL and the echoed query.
// The page parameter of query is overwritten per link.
func NewPaginationMeta(total int64, page, perPage int, baseURL string, query url.Values) PaginationMeta {
	if perPage <= 0 {
		perPage = 1
	}
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	qs := make(map[string]string, len(query))
	for k := range query {
		if k == "page" {
			continue
		}
		qs[k] = query.Get(k)
	}

	link := func(p int) string {
		q := url.Values{}
		for k, v := range qs {
			q.Set(k, v)
		}
		q.Set("page", strconv.Itoa(p))
		return fmt.Sprintf("%s?%s", baseURL, q.Encode())
	}

	meta := PaginationMeta{
		Total:        total,
		PerPage:      perPage,
		CurrentPage:  page,
		LastPage:     lastPage,
		FirstPage:    1,
		FirstPageURL: link(1),
		LastPageURL:  link(lastPage),
		QueryString:  qs,
	}
	if page < lastPage {
		next := link(page + 1)
		meta.NextPageURL = &next
	}
	if page > 1 {
		prev := link(page - 1)
		meta.PreviousPageURL = &prev
	}
	return meta
}

// Offset converts page/limit into a SQL offset.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// PageLink is the request URL the pagination links are built from.
type PageLink struct {
	BaseURL string
	Query   url.Values
}

// NormalizePage applies the page default and clamps limit to (0, maxLimit].
func NormalizePage(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
