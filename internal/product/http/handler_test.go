package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/queryshape/internal/product"
	"github.com/nekogravitycat/queryshape/pkg/response"
)

const existingID = "6f1c1f39-2a4c-4a55-9d0c-8f7c5f0d2a11"

type listBody struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    []product.Product  `json:"data"`
	Meta    *response.Metadata `json:"meta"`
}

type itemBody struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    *product.Product `json:"data"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := product.NewMemoryRepository(
		product.Product{ID: existingID, Name: "Item1", Category: "a", PriceCents: 100},
		product.Product{ID: "b", Name: "Item2", Category: "b", PriceCents: 200},
		product.Product{ID: "c", Name: "Item3", Category: "a", PriceCents: 300},
	)
	h := NewHandler(product.NewService(repo, 10))

	// Stand-in for the JWT middleware.
	fakeAuth := func(c *gin.Context) {
		c.Set("userID", "tester")
		c.Next()
	}

	r := gin.New()
	RegisterRoutes(r.Group("/v1"), h, fakeAuth)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	r := newTestRouter()

	t.Run("filter", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/products?filter=Item1&sorting_property=Name", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body listBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Item1", body.Data[0].Name)
		assert.Equal(t, 1, body.Meta.TotalCount)
		assert.Equal(t, "Item1", body.Meta.Filter)
	})

	t.Run("sort and paginate", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/products?sort_order=Name+desc&page=2&page_size=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body listBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Item1", body.Data[0].Name)
		assert.Equal(t, 3, body.Meta.TotalCount)
		assert.Equal(t, 2, body.Meta.TotalPages)
	})

	t.Run("unknown sort field", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/products?sort_order=Colour", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body listBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Nil(t, body.Data)
		assert.Nil(t, body.Meta)
	})

	t.Run("invalid page", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/products?page=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGet(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/v1/products/"+existingID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body itemBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Data)
	assert.Equal(t, "Item1", body.Data.Name)
	assert.Equal(t, response.SuccessMessage, body.Message)

	w = do(r, http.MethodGet, "/v1/products/1b4e28ba-2fa1-11d2-883f-0016d3cca427", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/v1/products/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/v1/products", gin.H{"name": "Item4", "category": "c", "price_cents": 400})
	require.Equal(t, http.StatusCreated, w.Code)

	var body itemBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Data)
	assert.Equal(t, "tester", body.Data.CreatedBy)
	assert.Equal(t, "/v1/products/"+body.Data.ID, w.Header().Get("Location"))

	w = do(r, http.MethodPost, "/v1/products", gin.H{"name": "Item4", "price_cents": 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/v1/products", gin.H{"name": "NoPrice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/v1/products", gin.H{"name": "Negative", "price_cents": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
