package dto

// APIResponse is the uniform envelope every endpoint returns, success or
// failure. Error internals never cross this boundary.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Pagination is the metadata block accompanying every paginated listing.
type Pagination struct {
	TotalPage    int `json:"totalPage"`
	TotalItems   int `json:"totalItems"`
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// NewPagination derives the metadata block from a total row count.
func NewPagination(total, page, limit int) Pagination {
	totalPage := 0
	if limit > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return Pagination{
		TotalPage:    totalPage,
		TotalItems:   total,
		CurrentPage:  page,
		ItemsPerPage: limit,
	}
}

// PageParams are the common query parameters for paginated listings.
type PageParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// Normalize clamps page/limit to sane values.
func (p *PageParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
}

// Offset converts page/limit into a SQL offset.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
