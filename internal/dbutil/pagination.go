package dbutil

import "math"

// PaginationParams holds the LIMIT/OFFSET pair derived from a page request.
type PaginationParams struct {
	Limit  int
	Offset int
}

// NewPaginationParams clamps pageSize into [1,100] and page to >= 1, then
// computes the zero-based row offset. Out-of-range inputs are corrected
// silently, never rejected.
func NewPaginationParams(page, pageSize int) PaginationParams {
	limit := pageSize
	if limit > 100 {
		limit = 100
	}
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	return PaginationParams{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// PaginationMeta carries the paging metadata for a list response.
type PaginationMeta struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// PaginationResponse is the standard envelope for paginated list endpoints.
type PaginationResponse struct {
	Data       any            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// NewPaginationResponse shapes already-fetched data plus counts into the
// response envelope. It performs no fetching itself.
func NewPaginationResponse(data any, totalItems, page, pageSize int) PaginationResponse {
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	return PaginationResponse{
		Data: data,
		Pagination: PaginationMeta{
			Page:        page,
			PageSize:    pageSize,
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	}
}
