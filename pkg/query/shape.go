package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/nekogravitycat/queryshape/pkg/apperror"
	"github.com/nekogravitycat/queryshape/pkg/response"
)

// Page is one page of shaped records together with its metadata.
type Page[T any] struct {
	Items []T
	Meta  *response.Metadata
}

// Execute runs the shaping pipeline: filter, sort, count, paginate.
//
// Every returned error is an *apperror.AppError:
//   - KindArgument when the filter or sort could not be built;
//   - KindInvalidOperation when the source failed to execute the query;
//   - KindUnclassified for anything else, carrying the cause's message.
func Execute[T any](ctx context.Context, src Queryable[T], params Params) (*Page[T], error) {
	params = params.withDefaults()

	q := src
	var err error

	if params.Filter != "" && params.SortingProperty != "" {
		q, err = q.Where(params.SortingProperty, params.Filter)
		if err != nil {
			return nil, apperror.Argument(err, fmt.Sprintf("invalid filter: %v", err))
		}
	}

	if strings.TrimSpace(params.SortOrder) != "" {
		field, dir := ParseSort(params.SortOrder)
		q, err = q.OrderBy(field, dir)
		if err != nil {
			return nil, apperror.Argument(err, fmt.Sprintf("invalid sort order: %v", err))
		}
	}

	// Count before pagination so the total reflects every matching record.
	total, err := q.Count(ctx)
	if err != nil {
		return nil, apperror.InvalidOperation(err, fmt.Sprintf("query execution failed: %v", err))
	}

	items, err := q.Skip(params.Offset()).Take(params.PageSize).List(ctx)
	if err != nil {
		return nil, apperror.InvalidOperation(err, fmt.Sprintf("query execution failed: %v", err))
	}

	meta, err := response.NewMetadataWithQuery(total, params.Page, params.PageSize, params.SortOrder, params.Filter)
	if err != nil {
		return nil, apperror.Unclassified(err)
	}

	return &Page[T]{Items: items, Meta: meta}, nil
}

// Shape runs Execute and wraps the outcome in a response envelope.
// It never panics and never returns an error: every failure becomes a failure envelope.
func Shape[T any](ctx context.Context, src Queryable[T], params Params) (env response.Envelope[[]T]) {
	defer func() {
		if r := recover(); r != nil {
			env = response.FromError[[]T](apperror.Unclassified(fmt.Errorf("%v", r)))
		}
	}()

	page, err := Execute(ctx, src, params)
	if err != nil {
		return response.FromError[[]T](err)
	}

	env, err = response.SuccessList(page.Items, page.Meta)
	if err != nil {
		return response.FromError[[]T](apperror.Unclassified(err))
	}
	return env
}
