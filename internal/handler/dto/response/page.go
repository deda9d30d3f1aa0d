package response

import (
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/queries"
)

var errUnexpectedSource = errs.New("unexpected source type")

type PageResponse[T any] struct {
	Items      []T              `json:"items"`
	Pagination queries.PageInfo `json:"pagination"`
}
