package response

import (
	"errors"
	"math"

	"github.com/nekogravitycat/queryshape/pkg/apperror"
)

var (
	ErrPageSizeInvalid   = errors.New("page size must be greater than zero")
	ErrTotalCountInvalid = errors.New("total count must not be negative")
)

// Metadata describes the pagination, sorting and filtering context of a list result.
// It is computed once at construction and must be treated as read-only afterwards.
type Metadata struct {
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
	SortOrder  string `json:"sort_order,omitempty"`
	Filter     string `json:"filter,omitempty"`
}

// NewMetadata builds totals-only metadata.
func NewMetadata(totalCount, page, pageSize int) (*Metadata, error) {
	return NewMetadataWithQuery(totalCount, page, pageSize, "", "")
}

// NewMetadataWithQuery builds metadata that also echoes the sort order and filter
// that produced the result set.
func NewMetadataWithQuery(totalCount, page, pageSize int, sortOrder, filter string) (*Metadata, error) {
	if pageSize <= 0 {
		return nil, apperror.Argument(ErrPageSizeInvalid, ErrPageSizeInvalid.Error())
	}
	if totalCount < 0 {
		return nil, apperror.Argument(ErrTotalCountInvalid, ErrTotalCountInvalid.Error())
	}

	return &Metadata{
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(pageSize))),
		SortOrder:  sortOrder,
		Filter:     filter,
	}, nil
}
