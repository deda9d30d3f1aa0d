package queries

import (
	"strconv"
	"strings"

	"car-rental-api/internal/pkg/errs"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type PageRequest struct {
	Page    int
	PerPage int
}

func (p PageRequest) Limit() int64 {
	return int64(p.PerPage)
}

func (p PageRequest) Offset() int64 {
	return int64(p.Page-1) * int64(p.PerPage)
}

type PageInfo struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}

type Page[T any] struct {
	Items      []T      `json:"items"`
	Pagination PageInfo `json:"pagination"`
}

// NewPage never returns nil Items so an out-of-range page renders as [].
func NewPage[T any](items []T, req PageRequest, totalItems int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := int((totalItems + int64(req.PerPage) - 1) / int64(req.PerPage))
	return &Page[T]{
		Items: items,
		Pagination: PageInfo{
			Page:       req.Page,
			PerPage:    req.PerPage,
			TotalPages: totalPages,
			TotalItems: totalItems,
		},
	}
}

// IsEmptyFirstPage distinguishes "nothing matches at all" from "page beyond range".
func (p *Page[T]) IsEmptyFirstPage() bool {
	return p.Pagination.Page == 1 && len(p.Items) == 0
}

// ParsePageRequest reads page and per_page. per_page is clamped to MaxPerPage.
func ParsePageRequest(params map[string]string) (PageRequest, error) {
	req := PageRequest{Page: DefaultPage, PerPage: DefaultPerPage}

	page, ok, err := positiveInt(params, "page")
	if err != nil {
		return PageRequest{}, err
	}
	if ok {
		req.Page = page
	}

	perPage, ok, err := positiveInt(params, "per_page")
	if err != nil {
		return PageRequest{}, err
	}
	if ok {
		req.PerPage = min(perPage, MaxPerPage)
	}

	return req, nil
}

func positiveInt(params map[string]string, name string) (int, bool, error) {
	raw, ok := lookup(params, name)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 1 {
		return 0, false, errs.Validation(name, "'"+name+"' must be a positive integer")
	}
	return int(n), true, nil
}

// lookup treats blank values as absent.
func lookup(params map[string]string, name string) (string, bool) {
	raw, ok := params[name]
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	return raw, true
}
