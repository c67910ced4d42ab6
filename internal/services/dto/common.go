package dto

// Pagination is the shared query shape for list endpoints.
type Pagination struct {
	Page    int `form:"page,default=1" validate:"gte=1"`
	PerPage int `form:"per_page,default=20" validate:"gte=1,lte=100"`
}

func (p Pagination) Limit() int  { return p.PerPage }
func (p Pagination) Offset() int { return (p.Page - 1) * p.PerPage }

// ListMeta accompanies every paginated response.
type ListMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}
