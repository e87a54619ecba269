package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nekogravitycat/queryshape/internal/auth"
	"github.com/nekogravitycat/queryshape/internal/product"
	"github.com/nekogravitycat/queryshape/pkg/query"
	"github.com/nekogravitycat/queryshape/pkg/response"
)

type ProductHandler struct {
	service product.Service
}

func NewHandler(service product.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// List retrieves a shaped (filtered, sorted, paginated) list of products.
func (h *ProductHandler) List(c *gin.Context) {
	var q ListProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.JSON(c, response.Failure[[]product.Product]("invalid query parameters: "+err.Error()))
		return
	}

	env := h.service.List(c.Request.Context(), query.Params{
		Page:            q.Page,
		PageSize:        q.PageSize,
		SortOrder:       q.SortOrder,
		Filter:          q.Filter,
		SortingProperty: q.SortingProperty,
	})
	response.JSON(c, env)
}

// Get retrieves a single product.
func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")

	// Validate UUID format
	if _, err := uuid.Parse(id); err != nil {
		response.JSON(c, response.Failure[product.Product]("invalid UUID"))
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			response.JSON(c, response.NotFound[product.Product]("product not found", nil))
			return
		}
		response.JSON(c, response.InternalError[product.Product]("failed to get product", nil))
		return
	}

	response.JSON(c, response.Success(*p))
}

// Create adds a new product on behalf of the authenticated user.
func (h *ProductHandler) Create(c *gin.Context) {
	var body CreateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.JSON(c, response.Failure[product.Product]("invalid request body: "+err.Error()))
		return
	}

	p, err := h.service.Create(c.Request.Context(), product.CreateProductRequest{
		Name:       body.Name,
		Category:   body.Category,
		PriceCents: *body.PriceCents,
		CreatedBy:  auth.GetUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNameRequired), errors.Is(err, product.ErrPriceInvalid):
			response.JSON(c, response.Failure[product.Product](err.Error()))
		case errors.Is(err, product.ErrNameTaken):
			response.JSON(c, response.Failure[product.Product](err.Error(), response.WithStatus(http.StatusConflict)))
		default:
			response.JSON(c, response.InternalError[product.Product]("failed to create product", nil))
		}
		return
	}

	response.JSON(c, response.Success(*p,
		response.WithStatus(http.StatusCreated),
		response.WithHeader("Location", c.FullPath()+"/"+p.ID),
	))
}
