package query

import "strings"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Params are the shaping parameters of a list request.
// A zero Page or PageSize means "not supplied" and falls back to the defaults;
// negative values are passed through to the source unchanged.
type Params struct {
	Page            int
	PageSize        int
	SortOrder       string // "<field>[ asc|desc]"
	Filter          string // substring matched against SortingProperty
	SortingProperty string
}

func (p Params) withDefaults() Params {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset is the number of records skipped before the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParseSort splits a sort order such as "Name desc" on single spaces into its
// field and direction. Only the second token decides the direction, so
// "Name  desc" (two spaces) sorts ascending; a missing or unrecognised
// direction sorts ascending too.
func ParseSort(sortOrder string) (string, Direction) {
	field, rest, found := strings.Cut(sortOrder, " ")
	if !found {
		return field, Ascending
	}
	dir, _, _ := strings.Cut(rest, " ")
	return field, ParseDirection(dir)
}
