package http

type CreateProductBody struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category"`
	PriceCents *int64 `json:"price_cents" binding:"required,min=0"`
}

// ListProductsQuery binds the shaping parameters of the list endpoint.
type ListProductsQuery struct {
	Page            int    `form:"page" binding:"omitempty,min=1"`
	PageSize        int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortOrder       string `form:"sort_order"`
	Filter          string `form:"filter"`
	SortingProperty string `form:"sorting_property"`
}
