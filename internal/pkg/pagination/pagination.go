package pagination

import (
	"net/url"
	"strconv"
)

// DefaultSize is the default number of items per page
const DefaultSize = 20

// MaxSize is the maximum number of items per page
const MaxSize = 100

// Params represents the pagination and search parameters accepted by
// list endpoints.
type Params struct {
	Page   int
	Size   int
	Sort   string
	Search string
}

// Normalize clamps page and size to the backend's accepted ranges.
func (p Params) Normalize() Params {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size < 1 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// Values encodes the parameters as a query string.
func (p Params) Values() url.Values {
	p = p.Normalize()

	values := url.Values{}
	values.Set("page", strconv.Itoa(p.Page))
	values.Set("size", strconv.Itoa(p.Size))
	if p.Sort != "" {
		values.Set("sort", p.Sort)
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	return values
}

// Page is the envelope every list endpoint returns. List operations that
// fall back to client-side filtering still produce this shape, so callers
// never learn which path served them.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}
